package enginetest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DoyleJ11/freecell-client/pkg/protocol"
)

func (e *Engine) Router() http.Handler {
	r := chi.NewRouter()

	r.Post(protocol.OpStart.Path(), e.instrument(protocol.OpStart, e.Start))
	r.Get(protocol.OpGameState.Path(), e.instrument(protocol.OpGameState, e.GameState))
	r.Get(protocol.OpIsGameWon.Path(), e.instrument(protocol.OpIsGameWon, e.IsGameWon))
	r.Post(protocol.OpMoveColumn.Path(), e.instrument(protocol.OpMoveColumn, e.MoveColumn))
	r.Post(protocol.OpMoveToFree.Path(), e.instrument(protocol.OpMoveToFree, e.MoveToFree))
	r.Post(protocol.OpMoveFromFree.Path(), e.instrument(protocol.OpMoveFromFree, e.MoveFromFree))
	r.Post(protocol.OpColumnToHome.Path(), e.instrument(protocol.OpColumnToHome, e.ColumnToHome))
	r.Post(protocol.OpFreeToHome.Path(), e.instrument(protocol.OpFreeToHome, e.FreeToHome))
	r.Get(protocol.OpComputerPlay.Path(), e.instrument(protocol.OpComputerPlay, e.ComputerPlay))
	r.Post(protocol.OpUndo.Path(), e.instrument(protocol.OpUndo, e.Undo))
	return r
}

// instrument counts the call and short-circuits scripted HTTP failures.
func (e *Engine) instrument(op protocol.Operation, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if status, failing := e.record(op, r); failing {
			http.Error(w, http.StatusText(status), status)
			return
		}
		next(w, r)
	}
}
