package board

import (
	"fmt"

	"github.com/DoyleJ11/freecell-client/internal/cards"
	"github.com/DoyleJ11/freecell-client/internal/types"
)

const (
	FreeCells = 4
	HomeCells = 4
)

type Kind string

const (
	KindColumn Kind = "column"
	KindFree   Kind = "free"
	KindHome   Kind = "home"
)

// Location is where a card sits: a table column, a free cell or a home pile.
type Location struct {
	Kind  Kind
	Index int
}

func Column(i int) Location { return Location{Kind: KindColumn, Index: i} }
func Free(i int) Location   { return Location{Kind: KindFree, Index: i} }
func Home(i int) Location   { return Location{Kind: KindHome, Index: i} }

func (l Location) String() string { return fmt.Sprintf("%s %d", l.Kind, l.Index) }

// Snapshot is the engine's full board. Table columns run from the bottom of
// the stack (index 0) to the exposed card.
type Snapshot struct {
	Free  [FreeCells]*cards.Card
	Home  [HomeCells][]cards.Card
	Table [][]cards.Card

	// Malformed holds free cell and table codes that failed to parse and
	// were left off the board.
	Malformed []string
}

// FromWire converts the engine's JSON body. Free cells beyond the array are
// empty, as are null entries. Free and table codes go through cards.Parse,
// so "10h" becomes "Th". Home piles keep their sentinel.
func FromWire(gs types.GameState) Snapshot {
	var s Snapshot
	for i, code := range gs.Free {
		if i >= FreeCells {
			break
		}
		if code == nil || *code == "" {
			continue
		}
		c, err := cards.Parse(*code)
		if err != nil {
			s.Malformed = append(s.Malformed, *code)
			continue
		}
		s.Free[i] = &c
	}
	for i, pile := range gs.Home {
		if i >= HomeCells {
			break
		}
		s.Home[i] = homePile(pile)
	}
	s.Table = make([][]cards.Card, len(gs.Table))
	for i, col := range gs.Table {
		out := make([]cards.Card, 0, len(col))
		for _, code := range col {
			c, err := cards.Parse(code)
			if err != nil {
				s.Malformed = append(s.Malformed, code)
				continue
			}
			out = append(out, c)
		}
		s.Table[i] = out
	}
	return s
}

func homePile(codes []string) []cards.Card {
	out := make([]cards.Card, len(codes))
	for i, code := range codes {
		if c, err := cards.Parse(code); err == nil {
			out[i] = c
		} else {
			out[i] = cards.Card(code)
		}
	}
	return out
}

// HomeTop returns the visible card of a home pile. The first element of a
// pile is the sentinel (cards.Sentinel), which is never shown.
func (s Snapshot) HomeTop(i int) (cards.Card, bool) {
	if i < 0 || i >= HomeCells {
		return "", false
	}
	pile := s.Home[i]
	if len(pile) == 0 {
		return "", false
	}
	top := pile[len(pile)-1]
	if !top.Valid() {
		return "", false
	}
	return top, true
}
