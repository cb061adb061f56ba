package render

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoyleJ11/freecell-client/internal/board"
	"github.com/DoyleJ11/freecell-client/internal/cards"
	"github.com/DoyleJ11/freecell-client/internal/enginetest"
	"github.com/DoyleJ11/freecell-client/internal/selection"
	"github.com/DoyleJ11/freecell-client/internal/types"
)

func TestBuildMidGame(t *testing.T) {
	v := Build(board.FromWire(enginetest.MidGame()))
	require.True(t, v.Started)

	var freeCards, freeEmpty int
	for i, s := range v.Free {
		assert.Equal(t, board.Free(i), s.Target.Location)
		if s.Empty() {
			freeEmpty++
		} else {
			freeCards++
		}
	}
	assert.Equal(t, 2, freeCards)
	assert.Equal(t, 2, freeEmpty)

	var homeCards, homeEmpty int
	for i, s := range v.Home {
		assert.Equal(t, board.Home(i), s.Target.Location)
		if s.Empty() {
			homeEmpty++
		} else {
			homeCards++
		}
	}
	assert.Equal(t, 1, homeCards)
	assert.Equal(t, 3, homeEmpty)
	assert.Equal(t, cards.Card("2d"), *v.Home[0].Target.Card)

	require.Len(t, v.Columns, 3)
	for ci, col := range v.Columns {
		assert.Nil(t, col.Placeholder)
		exposed := 0
		for pos, c := range col.Cards {
			assert.Equal(t, board.Column(ci), c.Location)
			assert.Equal(t, pos, c.Position)
			if c.Exposed {
				exposed++
				assert.Equal(t, len(col.Cards)-1, pos, "only the last card is exposed")
			}
		}
		assert.Equal(t, 1, exposed)
	}
}

func TestSentinelOnlyHomePileShowsNothing(t *testing.T) {
	v := Build(board.FromWire(types.GameState{Home: [][]string{{"0c"}}}))
	assert.True(t, v.Home[0].Empty())
	assert.Equal(t, board.Home(0), v.Home[0].Target.Location)
}

func TestEmptyColumnPlaceholder(t *testing.T) {
	v := Build(board.FromWire(enginetest.WithEmptyColumn()))
	require.Len(t, v.Columns, 4)
	ph := v.Columns[3].Placeholder
	require.NotNil(t, ph)
	assert.True(t, ph.Empty())
	assert.Equal(t, board.Column(3), ph.Location)
	assert.Empty(t, v.Columns[3].Cards)
	assert.Equal(t, "Col 3", v.Columns[3].Header)
}

func TestNoColumns(t *testing.T) {
	v := Build(board.Snapshot{})
	assert.True(t, v.NoColumns)
	assert.Len(t, v.Targets(), board.FreeCells+board.HomeCells)
}

func TestTargetsOrder(t *testing.T) {
	v := Build(board.FromWire(enginetest.WithEmptyColumn()))
	ts := v.Targets()
	// 4 free + 4 home + 3 + 2 + 4 cards + 1 placeholder
	require.Len(t, ts, 18)
	assert.Equal(t, board.Free(0), ts[0].Location)
	assert.Equal(t, board.Home(0), ts[4].Location)
	assert.Equal(t, board.Column(0), ts[8].Location)
	assert.Equal(t, board.Column(3), ts[17].Location)
	assert.True(t, ts[17].Empty())

	assert.Nil(t, NotStarted().Targets())
}

func TestBuiltTargetsDriveTheStateMachine(t *testing.T) {
	v := Build(board.FromWire(enginetest.MidGame()))

	buried := v.Columns[0].Cards[0]
	res, st := selection.Apply(selection.Idle(), buried)
	assert.ErrorIs(t, res.Err, selection.ErrNotExposed)
	assert.True(t, st.IsIdle())

	res, st = selection.Apply(selection.Idle(), v.Home[0].Target)
	assert.ErrorIs(t, res.Err, selection.ErrHomeSource)
	assert.True(t, st.IsIdle())

	exposed := v.Columns[0].Cards[2]
	_, st = selection.Apply(selection.Idle(), exposed)
	require.False(t, st.IsIdle())
	res, st = selection.Apply(st, v.Home[0].Target)
	require.NotNil(t, res.Move)
	assert.Equal(t, selection.MoveRequest{Kind: selection.ColumnToHome, Src: 0}, *res.Move)
	assert.True(t, st.IsIdle())
}

type stubEngine struct {
	snap     board.Snapshot
	won      bool
	stateErr error
	wonErr   error
}

func (s stubEngine) State(context.Context) (board.Snapshot, error) { return s.snap, s.stateErr }
func (s stubEngine) IsWon(context.Context) (bool, error)           { return s.won, s.wonErr }

func TestRender(t *testing.T) {
	boom := errors.New("boom")
	snap := board.FromWire(enginetest.MidGame())

	cases := []struct {
		name    string
		engine  stubEngine
		wantErr bool
		wantWon bool
	}{
		{name: "ok", engine: stubEngine{snap: snap}},
		{name: "won", engine: stubEngine{snap: snap, won: true}, wantWon: true},
		{name: "state fails", engine: stubEngine{stateErr: boom}, wantErr: true},
		{name: "win check fails", engine: stubEngine{snap: snap, wonErr: boom}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := New(tc.engine).Render(context.Background())
			if tc.wantErr {
				require.ErrorIs(t, err, boom)
				assert.False(t, res.View.Started)
				return
			}
			require.NoError(t, err)
			assert.True(t, res.View.Started)
			assert.Equal(t, tc.wantWon, res.Won)
			assert.Len(t, res.View.Columns, 3)
		})
	}
}

func TestWireTenShowsAsTen(t *testing.T) {
	v := Build(board.FromWire(types.GameState{Table: [][]string{{"10h"}}}))
	require.Len(t, v.Columns, 1)
	require.Len(t, v.Columns[0].Cards, 1)
	c := v.Columns[0].Cards[0].Card
	require.NotNil(t, c)
	assert.Equal(t, "10♥", c.Label())
}
