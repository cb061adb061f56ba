// Package render rebuilds the visible board from an engine snapshot.
//
// A View is never patched: every pass discards the previous one and builds
// a fresh structure in which each clickable element carries its own typed
// selection.Target.
package render

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/DoyleJ11/freecell-client/internal/board"
	"github.com/DoyleJ11/freecell-client/internal/selection"
)

const (
	PlaceholderCells   = "Empty"
	PlaceholderTable   = "Game not started."
	PlaceholderEmpty   = "Empty"
	PlaceholderNoTable = "No columns to display."
)

// Slot is a free cell or home cell position.
type Slot struct {
	Target selection.Target
}

func (s Slot) Empty() bool { return s.Target.Empty() }

// ColumnView is one table column. Empty columns have a single placeholder
// target and no cards.
type ColumnView struct {
	Index       int
	Header      string
	Cards       []selection.Target
	Placeholder *selection.Target
}

type View struct {
	Started   bool
	Free      [board.FreeCells]Slot
	Home      [board.HomeCells]Slot
	Columns   []ColumnView
	NoColumns bool
}

// NotStarted is the board shown before the first successful load and after quitting.
func NotStarted() View { return View{} }

// Build lays out a snapshot.
func Build(s board.Snapshot) View {
	v := View{Started: true}

	for i := range v.Free {
		loc := board.Free(i)
		if c := s.Free[i]; c != nil {
			v.Free[i] = Slot{Target: selection.CardAt(loc, *c, 0, false)}
		} else {
			v.Free[i] = Slot{Target: selection.EmptySlot(loc)}
		}
	}

	// Home cards answer to Home(i) both as a destination and when clicked
	// first; the state machine rejects them as sources.
	for i := range v.Home {
		loc := board.Home(i)
		if top, ok := s.HomeTop(i); ok {
			v.Home[i] = Slot{Target: selection.CardAt(loc, top, len(s.Home[i])-1, false)}
		} else {
			v.Home[i] = Slot{Target: selection.EmptySlot(loc)}
		}
	}

	if len(s.Table) == 0 {
		v.NoColumns = true
		return v
	}
	v.Columns = make([]ColumnView, len(s.Table))
	for ci, col := range s.Table {
		cv := ColumnView{Index: ci, Header: fmt.Sprintf("Col %d", ci)}
		if len(col) == 0 {
			ph := selection.EmptySlot(board.Column(ci))
			cv.Placeholder = &ph
		}
		for pos, c := range col {
			cv.Cards = append(cv.Cards, selection.CardAt(board.Column(ci), c, pos, pos == len(col)-1))
		}
		v.Columns[ci] = cv
	}
	return v
}

// Targets lists every clickable element: free cells, home cells, then
// columns left to right, each top to bottom.
func (v View) Targets() []selection.Target {
	if !v.Started {
		return nil
	}
	var out []selection.Target
	for _, s := range v.Free {
		out = append(out, s.Target)
	}
	for _, s := range v.Home {
		out = append(out, s.Target)
	}
	for _, col := range v.Columns {
		if col.Placeholder != nil {
			out = append(out, *col.Placeholder)
			continue
		}
		out = append(out, col.Cards...)
	}
	return out
}

// Engine is what a render pass needs from the remote engine.
type Engine interface {
	State(ctx context.Context) (board.Snapshot, error)
	IsWon(ctx context.Context) (bool, error)
}

type Renderer struct {
	Engine Engine
}

func New(e Engine) *Renderer { return &Renderer{Engine: e} }

// Result of one pass.
type Result struct {
	View View
	Won  bool
}

// Render fetches the snapshot and the win flag. If either fetch fails the
// pass is abandoned and the caller keeps whatever it last drew.
func (r *Renderer) Render(ctx context.Context) (Result, error) {
	var (
		snap board.Snapshot
		won  bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap, err = r.Engine.State(gctx)
		if err != nil {
			return fmt.Errorf("fetch game state: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		won, err = r.Engine.IsWon(gctx)
		if err != nil {
			return fmt.Errorf("check win: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return Result{View: Build(snap), Won: won}, nil
}
