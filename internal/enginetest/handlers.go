package enginetest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/DoyleJ11/freecell-client/internal/types"
	"github.com/DoyleJ11/freecell-client/pkg/protocol"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func intParam(r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	return n, err == nil
}

func (e *Engine) Start(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	e.state = clone(e.initial)
	e.history = nil
	e.won = false
	e.mu.Unlock()
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("null"))
}

func (e *Engine) GameState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, e.State())
}

func (e *Engine) IsGameWon(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	won := e.won
	e.mu.Unlock()
	writeJSON(w, won)
}

func (e *Engine) MoveColumn(w http.ResponseWriter, r *http.Request) {
	src, ok1 := intParam(r, protocol.ParamSrc)
	dst, ok2 := intParam(r, protocol.ParamDst)
	if !ok1 || !ok2 {
		http.Error(w, "src and dst are required", http.StatusUnprocessableEntity)
		return
	}
	e.apply(w, protocol.OpMoveColumn, func(gs *types.GameState) bool {
		card, ok := popColumn(gs, src)
		if !ok || dst < 0 || dst >= len(gs.Table) {
			return false
		}
		gs.Table[dst] = append(gs.Table[dst], card)
		return true
	})
}

func (e *Engine) MoveToFree(w http.ResponseWriter, r *http.Request) {
	src, ok := intParam(r, protocol.ParamSrc)
	if !ok {
		http.Error(w, "src is required", http.StatusUnprocessableEntity)
		return
	}
	e.apply(w, protocol.OpMoveToFree, func(gs *types.GameState) bool {
		gs.Free = packFree(gs.Free)
		if len(gs.Free) >= 4 {
			return false
		}
		card, ok := popColumn(gs, src)
		if !ok {
			return false
		}
		gs.Free = append(gs.Free, &card)
		return true
	})
}

func (e *Engine) MoveFromFree(w http.ResponseWriter, r *http.Request) {
	src, ok1 := intParam(r, protocol.ParamSrc)
	dst, ok2 := intParam(r, protocol.ParamDst)
	if !ok1 || !ok2 {
		http.Error(w, "src and dst are required", http.StatusUnprocessableEntity)
		return
	}
	e.apply(w, protocol.OpMoveFromFree, func(gs *types.GameState) bool {
		card, ok := takeFree(gs, src)
		if !ok || dst < 0 || dst >= len(gs.Table) {
			return false
		}
		gs.Table[dst] = append(gs.Table[dst], card)
		return true
	})
}

func (e *Engine) ColumnToHome(w http.ResponseWriter, r *http.Request) {
	src, ok := intParam(r, protocol.ParamSrc)
	if !ok {
		http.Error(w, "src is required", http.StatusUnprocessableEntity)
		return
	}
	e.apply(w, protocol.OpColumnToHome, func(gs *types.GameState) bool {
		card, ok := popColumn(gs, src)
		if !ok {
			return false
		}
		pushHome(gs, card)
		return true
	})
}

func (e *Engine) FreeToHome(w http.ResponseWriter, r *http.Request) {
	src, ok := intParam(r, protocol.ParamSrc)
	if !ok {
		http.Error(w, "src is required", http.StatusUnprocessableEntity)
		return
	}
	e.apply(w, protocol.OpFreeToHome, func(gs *types.GameState) bool {
		card, ok := takeFree(gs, src)
		if !ok {
			return false
		}
		pushHome(gs, card)
		return true
	})
}

func (e *Engine) ComputerPlay(w http.ResponseWriter, r *http.Request) {
	if _, ok := intParam(r, protocol.ParamSim); !ok {
		http.Error(w, "sim is required", http.StatusUnprocessableEntity)
		return
	}
	e.mu.Lock()
	body := e.computer
	e.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (e *Engine) Undo(w http.ResponseWriter, r *http.Request) {
	e.mu.Lock()
	ok := e.result(protocol.OpUndo) && len(e.history) > 0
	if ok {
		last := len(e.history) - 1
		e.state = e.history[last]
		e.history = e.history[:last]
	}
	e.mu.Unlock()
	writeJSON(w, ok)
}

// apply runs a scripted-success move against a copy of the state and keeps
// the copy only if the move could be carried out.
func (e *Engine) apply(w http.ResponseWriter, op protocol.Operation, move func(*types.GameState) bool) {
	e.mu.Lock()
	ok := e.result(op)
	if ok {
		next := clone(e.state)
		ok = move(&next)
		if ok {
			e.history = append(e.history, e.state)
			e.state = next
		}
	}
	e.mu.Unlock()
	writeJSON(w, ok)
}

func popColumn(gs *types.GameState, col int) (string, bool) {
	if col < 0 || col >= len(gs.Table) || len(gs.Table[col]) == 0 {
		return "", false
	}
	c := gs.Table[col]
	card := c[len(c)-1]
	gs.Table[col] = c[:len(c)-1]
	return card, true
}

func takeFree(gs *types.GameState, i int) (string, bool) {
	if i < 0 || i >= len(gs.Free) || gs.Free[i] == nil {
		return "", false
	}
	card := *gs.Free[i]
	gs.Free = append(gs.Free[:i], gs.Free[i+1:]...)
	return card, true
}

// packFree drops empty entries. The engine keeps free cells as a list and
// removes a card by index, so later cards shift down.
func packFree(free []*string) []*string {
	out := free[:0]
	for _, c := range free {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// pushHome places the card on the pile of its suit, or the first pile that
// holds only the sentinel.
func pushHome(gs *types.GameState, card string) {
	for len(gs.Home) < 4 {
		gs.Home = append(gs.Home, []string{sentinel})
	}
	for i, pile := range gs.Home {
		if len(pile) > 1 && suitOf(pile[len(pile)-1]) == suitOf(card) {
			gs.Home[i] = append(pile, card)
			return
		}
	}
	for i, pile := range gs.Home {
		if len(pile) <= 1 {
			gs.Home[i] = append([]string{sentinel}, card)
			return
		}
	}
}

func suitOf(card string) byte {
	if card == "" {
		return 0
	}
	return card[len(card)-1]
}
