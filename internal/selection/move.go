package selection

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/DoyleJ11/freecell-client/internal/board"
	"github.com/DoyleJ11/freecell-client/pkg/protocol"
)

type MoveKind string

const (
	ColumnToColumn MoveKind = "column_to_column"
	ColumnToFree   MoveKind = "column_to_free"
	FreeToColumn   MoveKind = "free_to_column"
	ColumnToHome   MoveKind = "column_to_home"
	FreeToHome     MoveKind = "free_to_home"
)

// MoveRequest is a structurally valid move. Dst is only meaningful for
// moves that land on a column; the engine picks the free cell or home pile.
type MoveRequest struct {
	Kind MoveKind
	Src  int
	Dst  int
}

// Resolve maps a (source, destination) pair onto one of the five engine
// moves. Everything else is rejected before it reaches the network.
func Resolve(src, dst board.Location) (MoveRequest, error) {
	switch {
	case src.Kind == board.KindColumn && dst.Kind == board.KindColumn:
		return MoveRequest{Kind: ColumnToColumn, Src: src.Index, Dst: dst.Index}, nil
	case src.Kind == board.KindColumn && dst.Kind == board.KindFree:
		return MoveRequest{Kind: ColumnToFree, Src: src.Index}, nil
	case src.Kind == board.KindFree && dst.Kind == board.KindColumn:
		return MoveRequest{Kind: FreeToColumn, Src: src.Index, Dst: dst.Index}, nil
	case src.Kind == board.KindColumn && dst.Kind == board.KindHome:
		return MoveRequest{Kind: ColumnToHome, Src: src.Index}, nil
	case src.Kind == board.KindFree && dst.Kind == board.KindHome:
		return MoveRequest{Kind: FreeToHome, Src: src.Index}, nil
	default:
		return MoveRequest{}, fmt.Errorf("%w: %s to %s", ErrInvalidCombination, src.Kind, dst.Kind)
	}
}

// Operation is the engine call that performs the move.
func (m MoveRequest) Operation() protocol.Operation {
	switch m.Kind {
	case ColumnToColumn:
		return protocol.OpMoveColumn
	case ColumnToFree:
		return protocol.OpMoveToFree
	case FreeToColumn:
		return protocol.OpMoveFromFree
	case ColumnToHome:
		return protocol.OpColumnToHome
	case FreeToHome:
		return protocol.OpFreeToHome
	}
	return ""
}

// Params holds src, plus dst for moves onto a column.
func (m MoveRequest) Params() url.Values {
	v := url.Values{}
	v.Set(protocol.ParamSrc, strconv.Itoa(m.Src))
	if m.Kind == ColumnToColumn || m.Kind == FreeToColumn {
		v.Set(protocol.ParamDst, strconv.Itoa(m.Dst))
	}
	return v
}
