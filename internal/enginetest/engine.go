// Package enginetest is an in-memory stand-in for the remote FreeCell engine.
// It moves cards mechanically and never judges legality: each operation
// answers with whatever result the test scripted.
package enginetest

import (
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/DoyleJ11/freecell-client/internal/types"
	"github.com/DoyleJ11/freecell-client/pkg/protocol"
)

type Engine struct {
	mu       sync.Mutex
	state    types.GameState
	initial  types.GameState
	won      bool
	results  map[protocol.Operation]bool
	failures map[protocol.Operation]int
	computer string
	calls    map[protocol.Operation]int
	queries  map[protocol.Operation][]string
	history  []types.GameState
}

func New(initial types.GameState) *Engine {
	return &Engine{
		state:    clone(initial),
		initial:  clone(initial),
		results:  map[protocol.Operation]bool{},
		failures: map[protocol.Operation]int{},
		computer: "null",
		calls:    map[protocol.Operation]int{},
		queries:  map[protocol.Operation][]string{},
	}
}

// Serve starts an httptest server and registers its shutdown with cleanup.
func (e *Engine) Serve(cleanup func(func())) *httptest.Server {
	srv := httptest.NewServer(e.Router())
	cleanup(srv.Close)
	return srv
}

// SetResult scripts the boolean the engine answers for a move or undo.
// Operations left unscripted answer true.
func (e *Engine) SetResult(op protocol.Operation, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.results[op] = ok
}

// FailWith makes every call to op answer with the given HTTP status.
func (e *Engine) FailWith(op protocol.Operation, status int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failures[op] = status
}

func (e *Engine) ClearFailure(op protocol.Operation) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.failures, op)
}

func (e *Engine) SetWon(won bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.won = won
}

// SetComputerMove sets the raw JSON body returned by computer_play.
func (e *Engine) SetComputerMove(body string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.computer = body
}

func (e *Engine) SetState(gs types.GameState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = clone(gs)
}

func (e *Engine) State() types.GameState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return clone(e.state)
}

func (e *Engine) Calls(op protocol.Operation) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls[op]
}

func (e *Engine) TotalCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := 0
	for _, c := range e.calls {
		n += c
	}
	return n
}

// Queries returns the raw query strings received for op, in order.
func (e *Engine) Queries(op protocol.Operation) []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.queries[op]...)
}

func (e *Engine) ResetCalls() {
	e.mu.Lock()
	defer e.mu.Unlock()
	clear(e.calls)
	clear(e.queries)
}

func (e *Engine) record(op protocol.Operation, r *http.Request) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls[op]++
	e.queries[op] = append(e.queries[op], r.URL.RawQuery)
	status, failing := e.failures[op]
	return status, failing
}

func (e *Engine) result(op protocol.Operation) bool {
	ok, scripted := e.results[op]
	return !scripted || ok
}

func clone(gs types.GameState) types.GameState {
	out := types.GameState{
		Free:  make([]*string, len(gs.Free)),
		Home:  make([][]string, len(gs.Home)),
		Table: make([][]string, len(gs.Table)),
	}
	for i, c := range gs.Free {
		if c != nil {
			v := *c
			out.Free[i] = &v
		}
	}
	for i, pile := range gs.Home {
		out.Home[i] = append([]string(nil), pile...)
	}
	for i, col := range gs.Table {
		out.Table[i] = append([]string(nil), col...)
	}
	return out
}
