package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// GameState is the body of GET /get_game_state.
type GameState struct {
	Free  []*string  `json:"free"`
	Home  [][]string `json:"home"`
	Table [][]string `json:"table"`
}

// ComputerMove is the body of GET /computer_play: a JSON move description
// such as ["column_to_column", 2, 5], or null when no move was found.
type ComputerMove struct {
	Raw json.RawMessage
}

func (m *ComputerMove) UnmarshalJSON(data []byte) error {
	m.Raw = append(m.Raw[:0], data...)
	return nil
}

func (m ComputerMove) MarshalJSON() ([]byte, error) {
	if len(m.Raw) == 0 {
		return []byte("null"), nil
	}
	return m.Raw, nil
}

// Found reports whether the engine returned a move.
func (m ComputerMove) Found() bool {
	trimmed := bytes.TrimSpace(m.Raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// Describe renders the move for a status line. Array moves become
// "column_to_column 2 5"; anything else is shown as compact JSON.
func (m ComputerMove) Describe() string {
	if !m.Found() {
		return ""
	}
	var parts []any
	if err := json.Unmarshal(m.Raw, &parts); err == nil && len(parts) > 0 {
		words := make([]string, 0, len(parts))
		for _, p := range parts {
			words = append(words, fmt.Sprint(p))
		}
		return strings.Join(words, " ")
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, m.Raw); err != nil {
		return string(m.Raw)
	}
	return buf.String()
}
