// Package protocol names the HTTP contract of the remote FreeCell engine.
//
// Engine -> Client
// get_game_state:
//   free:  string[]            // up to 4 cards, index = free cell
//   home:  string[][]          // 4 piles, element 0 is a sentinel ("0c")
//   table: string[][]          // columns, index 0 = bottom of stack
//
// is_game_won, move_*, *_to_home, undo:
//   boolean
//
// computer_play:
//   ["column_to_column", 2, 5] | null
package protocol

import "net/http"

// Operation is the engine's name for a remote call.
type Operation string

const (
	OpStart        Operation = "start"
	OpGameState    Operation = "get_game_state"
	OpIsGameWon    Operation = "is_game_won"
	OpMoveColumn   Operation = "move_column"
	OpMoveToFree   Operation = "move_to_free"
	OpMoveFromFree Operation = "move_from_free"
	OpColumnToHome Operation = "column_to_home"
	OpFreeToHome   Operation = "free_to_home"
	OpComputerPlay Operation = "computer_play"
	OpUndo         Operation = "undo"
)

// Query parameter names.
const (
	ParamSrc = "src"
	ParamDst = "dst"
	ParamSim = "sim"
)

// Path returns the URL path of the operation.
func (o Operation) Path() string { return "/" + string(o) }

// Method returns the HTTP method the engine expects.
func (o Operation) Method() string {
	switch o {
	case OpGameState, OpIsGameWon, OpComputerPlay:
		return http.MethodGet
	default:
		return http.MethodPost
	}
}

// Operations lists every operation the engine exposes.
var Operations = []Operation{
	OpStart, OpGameState, OpIsGameWon,
	OpMoveColumn, OpMoveToFree, OpMoveFromFree, OpColumnToHome, OpFreeToHome,
	OpComputerPlay, OpUndo,
}
