package enginetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoyleJ11/freecell-client/pkg/protocol"
)

func call(t *testing.T, e *Engine, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.Router().ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeBool(t *testing.T, rec *httptest.ResponseRecorder) bool {
	t.Helper()
	var ok bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ok))
	return ok
}

func TestMoveAndUndo(t *testing.T) {
	e := New(MidGame())

	rec := call(t, e, http.MethodPost, "/move_column?src=1&dst=0")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decodeBool(t, rec))
	assert.Equal(t, []string{"Kd", "Qs", "Jh", "8h"}, e.State().Table[0])

	rec = call(t, e, http.MethodPost, "/undo")
	assert.True(t, decodeBool(t, rec))
	assert.Equal(t, []string{"Kd", "Qs", "Jh"}, e.State().Table[0])

	rec = call(t, e, http.MethodPost, "/undo")
	assert.False(t, decodeBool(t, rec), "nothing left to undo")
}

func TestScriptedRejectionKeepsState(t *testing.T) {
	e := New(MidGame())
	e.SetResult(protocol.OpColumnToHome, false)

	rec := call(t, e, http.MethodPost, "/column_to_home?src=2")
	assert.False(t, decodeBool(t, rec))
	assert.Equal(t, MidGame().Table, e.State().Table)
	assert.Equal(t, 1, e.Calls(protocol.OpColumnToHome))
	assert.Equal(t, []string{"src=2"}, e.Queries(protocol.OpColumnToHome))
}

func TestFreeCellMoves(t *testing.T) {
	e := New(MidGame())

	rec := call(t, e, http.MethodPost, "/move_to_free?src=0")
	assert.True(t, decodeBool(t, rec))
	gs := e.State()
	require.Len(t, gs.Free, 3)
	assert.Equal(t, "Jh", *gs.Free[2])

	rec = call(t, e, http.MethodPost, "/free_to_home?src=2")
	assert.True(t, decodeBool(t, rec))
	gs = e.State()
	assert.Len(t, gs.Free, 2)
	assert.Equal(t, []string{"0c", "Jh"}, gs.Home[1])

	rec = call(t, e, http.MethodPost, "/move_from_free?src=1&dst=1")
	assert.True(t, decodeBool(t, rec))
	assert.Equal(t, []string{"9s", "8h", "Qh"}, e.State().Table[1])
}

func TestFreeCellsShiftDownWhenEmptied(t *testing.T) {
	e := New(MidGame())

	rec := call(t, e, http.MethodPost, "/move_from_free?src=0&dst=1")
	assert.True(t, decodeBool(t, rec))
	gs := e.State()
	require.Len(t, gs.Free, 1)
	assert.Equal(t, "Qh", *gs.Free[0])

	rec = call(t, e, http.MethodPost, "/undo")
	assert.True(t, decodeBool(t, rec))
	assert.Equal(t, MidGame().Free, e.State().Free)
}

func TestMoveToFullFreeCellsFails(t *testing.T) {
	gs := MidGame()
	gs.Free = []*string{str("7c"), str("Qh"), str("2s"), str("3s")}
	e := New(gs)

	rec := call(t, e, http.MethodPost, "/move_to_free?src=0")
	assert.False(t, decodeBool(t, rec))
	assert.Equal(t, gs.Table, e.State().Table)
}

func TestScriptedFailure(t *testing.T) {
	e := New(MidGame())
	e.FailWith(protocol.OpGameState, http.StatusServiceUnavailable)

	rec := call(t, e, http.MethodGet, "/get_game_state")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	e.ClearFailure(protocol.OpGameState)
	rec = call(t, e, http.MethodGet, "/get_game_state")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, e.Calls(protocol.OpGameState))
}

func TestMissingParams(t *testing.T) {
	e := New(MidGame())
	rec := call(t, e, http.MethodPost, "/move_column?src=1")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
