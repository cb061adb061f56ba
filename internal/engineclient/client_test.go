package engineclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/DoyleJ11/freecell-client/internal/cards"
	"github.com/DoyleJ11/freecell-client/internal/enginetest"
	"github.com/DoyleJ11/freecell-client/internal/selection"
	"github.com/DoyleJ11/freecell-client/pkg/protocol"
)

func newClient(t *testing.T, e *enginetest.Engine) *Client {
	t.Helper()
	srv := e.Serve(t.Cleanup)
	opts := DefaultOptions()
	opts.BaseURL = srv.URL
	opts.Logger = zaptest.NewLogger(t)
	c, err := New(opts)
	require.NoError(t, err)
	return c
}

func TestNewRejectsBadURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8000", "://nope"} {
		opts := DefaultOptions()
		opts.BaseURL = raw
		_, err := New(opts)
		assert.Error(t, err, "url %q", raw)
	}
}

func TestState(t *testing.T) {
	e := enginetest.New(enginetest.MidGame())
	c := newClient(t, e)

	snap, err := c.State(context.Background())
	require.NoError(t, err)

	require.NotNil(t, snap.Free[0])
	assert.Equal(t, cards.Card("7c"), *snap.Free[0])
	require.NotNil(t, snap.Free[1])
	assert.Equal(t, cards.Card("Qh"), *snap.Free[1])
	assert.Nil(t, snap.Free[2])
	assert.Len(t, snap.Table, 3)
	top, ok := snap.HomeTop(0)
	require.True(t, ok)
	assert.Equal(t, cards.Card("2d"), top)
}

func TestIsWon(t *testing.T) {
	e := enginetest.New(enginetest.MidGame())
	c := newClient(t, e)

	won, err := c.IsWon(context.Background())
	require.NoError(t, err)
	assert.False(t, won)

	e.SetWon(true)
	won, err = c.IsWon(context.Background())
	require.NoError(t, err)
	assert.True(t, won)
}

func TestMoveSendsOperationAndParams(t *testing.T) {
	cases := []struct {
		req   selection.MoveRequest
		op    protocol.Operation
		query string
	}{
		{selection.MoveRequest{Kind: selection.ColumnToColumn, Src: 1, Dst: 0}, protocol.OpMoveColumn, "dst=0&src=1"},
		{selection.MoveRequest{Kind: selection.ColumnToFree, Src: 2}, protocol.OpMoveToFree, "src=2"},
		{selection.MoveRequest{Kind: selection.FreeToColumn, Src: 0, Dst: 2}, protocol.OpMoveFromFree, "dst=2&src=0"},
		{selection.MoveRequest{Kind: selection.ColumnToHome, Src: 1}, protocol.OpColumnToHome, "src=1"},
		{selection.MoveRequest{Kind: selection.FreeToHome, Src: 2}, protocol.OpFreeToHome, "src=2"},
	}

	for _, tc := range cases {
		t.Run(string(tc.req.Kind), func(t *testing.T) {
			e := enginetest.New(enginetest.MidGame())
			c := newClient(t, e)

			ok, err := c.Move(context.Background(), tc.req)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, []string{tc.query}, e.Queries(tc.op))
			assert.Equal(t, 1, e.TotalCalls())
		})
	}
}

func TestMoveEngineRejection(t *testing.T) {
	e := enginetest.New(enginetest.MidGame())
	e.SetResult(protocol.OpColumnToHome, false)
	c := newClient(t, e)

	ok, err := c.Move(context.Background(), selection.MoveRequest{Kind: selection.ColumnToHome, Src: 0})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMoveUnknownKind(t *testing.T) {
	e := enginetest.New(enginetest.MidGame())
	c := newClient(t, e)

	_, err := c.Move(context.Background(), selection.MoveRequest{Kind: "free_to_free"})
	assert.ErrorIs(t, err, ErrUnknownMove)
	assert.Zero(t, e.TotalCalls())
}

func TestStatusError(t *testing.T) {
	e := enginetest.New(enginetest.MidGame())
	e.FailWith(protocol.OpUndo, http.StatusInternalServerError)
	c := newClient(t, e)

	_, err := c.Undo(context.Background())
	var se *StatusError
	require.True(t, errors.As(err, &se), "want *StatusError, got %T", err)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, protocol.OpUndo, se.Op)
	assert.Contains(t, err.Error(), "status: 500")
}

func TestMalformedJSONIsAFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	t.Cleanup(srv.Close)

	opts := DefaultOptions()
	opts.BaseURL = srv.URL
	c, err := New(opts)
	require.NoError(t, err)

	_, err = c.IsWon(context.Background())
	assert.ErrorContains(t, err, "decode response")
}

func TestComputerPlay(t *testing.T) {
	e := enginetest.New(enginetest.MidGame())
	c := newClient(t, e)

	mv, err := c.ComputerPlay(context.Background(), 100)
	require.NoError(t, err)
	assert.False(t, mv.Found())
	assert.Equal(t, []string{"sim=100"}, e.Queries(protocol.OpComputerPlay))

	e.SetComputerMove(`["column_to_home", 2]`)
	mv, err = c.ComputerPlay(context.Background(), 25)
	require.NoError(t, err)
	assert.True(t, mv.Found())
	assert.Equal(t, "column_to_home 2", mv.Describe())
}

func TestStartAndSessionHeader(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/start", r.URL.Path)
		got = append(got, r.Header.Get(SessionHeader))
	}))
	t.Cleanup(srv.Close)

	opts := DefaultOptions()
	opts.BaseURL = srv.URL + "/"
	c, err := New(opts)
	require.NoError(t, err)

	require.NoError(t, c.Start(context.Background()))
	require.NoError(t, c.Start(context.Background()))
	assert.Equal(t, []string{c.SessionID(), c.SessionID()}, got)
	assert.NotEmpty(t, c.SessionID())
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	opts := DefaultOptions()
	opts.BaseURL = url
	opts.Timeout = time.Second
	c, err := New(opts)
	require.NoError(t, err)

	_, err = c.State(context.Background())
	assert.Error(t, err)
}
