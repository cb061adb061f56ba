package enginetest

import (
	"github.com/DoyleJ11/freecell-client/internal/cards"
	"github.com/DoyleJ11/freecell-client/internal/types"
)

var sentinel = string(cards.Sentinel)

func str(s string) *string { return &s }

// MidGame has 2 occupied free cells, one home pile with a card on it and
// three non-empty columns. Free cells are packed, as the engine sends them.
func MidGame() types.GameState {
	return types.GameState{
		Free: []*string{str("7c"), str("Qh")},
		Home: [][]string{{sentinel, "Ad", "2d"}, {sentinel}, {sentinel}, {sentinel}},
		Table: [][]string{
			{"Kd", "Qs", "Jh"},
			{"9s", "8h"},
			{"5c", "4d", "3s", "Th"},
		},
	}
}

// WithEmptyColumn is MidGame plus a fourth, empty column.
func WithEmptyColumn() types.GameState {
	gs := MidGame()
	gs.Table = append(gs.Table, []string{})
	return gs
}

// Fresh is an unplayed board with empty cells.
func Fresh() types.GameState {
	return types.GameState{
		Free: []*string{},
		Home: [][]string{{sentinel}, {sentinel}, {sentinel}, {sentinel}},
		Table: [][]string{
			{"Kd", "2c", "9h", "Js", "4d", "Ac", "7s"},
			{"Qs", "3c", "Th", "6d", "8c", "5h", "2s"},
			{"Jh", "4c", "Td", "9s", "Ah", "Kc", "3d"},
			{"Ts", "5c", "8h", "7d", "As", "Qc", "6s"},
			{"9d", "6c", "7h", "Kh", "3s", "Jc"},
			{"8s", "7c", "6h", "2d", "Qd", "4s"},
			{"5d", "8d", "2h", "4h", "Tc", "Ad"},
			{"3h", "9c", "Ks", "Jd", "5s", "Qh"},
		},
	}
}
