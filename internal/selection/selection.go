package selection

import (
	"errors"
	"fmt"

	"github.com/DoyleJ11/freecell-client/internal/board"
	"github.com/DoyleJ11/freecell-client/internal/cards"
)

var ErrNotExposed = errors.New("only the bottom-most card of a column can be selected")
var ErrHomeSource = errors.New("cards cannot leave a home cell")
var ErrFreeCellTarget = errors.New("an occupied free cell is not a destination")
var ErrInvalidCombination = errors.New("invalid move combination")

const (
	PromptDefault  = "Click a card to start a move."
	MsgNotExposed  = "You can only select the bottom-most card in a column."
	MsgHomeSource  = "Cards cannot be moved out of Home Cells."
	MsgFreeTarget  = "Cannot move a card to another FreeCell card."
	MsgInvalidPair = "Invalid move combination."
)

// Target is what a click lands on. Empty slots have no Card. Position and
// Exposed only mean something for column cards.
type Target struct {
	Location board.Location
	Card     *cards.Card
	Position int
	Exposed  bool
}

func CardAt(loc board.Location, c cards.Card, pos int, exposed bool) Target {
	return Target{Location: loc, Card: &c, Position: pos, Exposed: exposed}
}

func EmptySlot(loc board.Location) Target {
	return Target{Location: loc}
}

func (t Target) Empty() bool { return t.Card == nil }

// Same reports whether two targets are the same element on the board.
func (t Target) Same(o Target) bool {
	if t.Location != o.Location || t.Position != o.Position {
		return false
	}
	if t.Card == nil || o.Card == nil {
		return t.Card == nil && o.Card == nil
	}
	return *t.Card == *o.Card
}

// Selection is an armed move source.
type Selection struct {
	Target Target
}

func (s Selection) Card() cards.Card {
	if s.Target.Card == nil {
		return ""
	}
	return *s.Target.Card
}

// State is Idle when Armed is nil.
type State struct {
	Armed *Selection
}

func Idle() State { return State{} }

func (s State) IsIdle() bool { return s.Armed == nil }

// Notice is the status line a transition leaves behind.
type Notice struct {
	Text    string
	IsError bool
}

// Result of a click. Move is set when a destination completed a valid pair.
type Result struct {
	Notice Notice
	Move   *MoveRequest
	Err    error
	NoOp   bool
}

// Apply runs one click through the state machine.
func Apply(s State, t Target) (Result, State) {
	if s.Armed == nil {
		return selectSource(t)
	}

	armed := *s.Armed
	if armed.Target.Same(t) {
		return Result{Notice: Notice{Text: PromptDefault}}, Idle()
	}

	if !t.Empty() && t.Location.Kind == board.KindFree {
		return Result{Notice: Notice{Text: MsgFreeTarget, IsError: true}, Err: ErrFreeCellTarget}, Idle()
	}

	req, err := Resolve(armed.Target.Location, t.Location)
	if err != nil {
		return Result{Notice: Notice{Text: MsgInvalidPair, IsError: true}, Err: err}, Idle()
	}
	return Result{
		Notice: Notice{Text: fmt.Sprintf("Moving %s from %s to %s...", armed.Card(), armed.Target.Location, t.Location)},
		Move:   &req,
	}, Idle()
}

func selectSource(t Target) (Result, State) {
	// Empty slots only matter as destinations.
	if t.Empty() {
		return Result{NoOp: true}, Idle()
	}

	switch t.Location.Kind {
	case board.KindColumn:
		if !t.Exposed {
			return Result{Notice: Notice{Text: MsgNotExposed, IsError: true}, Err: ErrNotExposed}, Idle()
		}
	case board.KindHome:
		return Result{Notice: Notice{Text: MsgHomeSource, IsError: true}, Err: ErrHomeSource}, Idle()
	}

	sel := Selection{Target: t}
	return Result{
		Notice: Notice{Text: fmt.Sprintf("Selected %s from %s. Now click a destination.", sel.Card(), t.Location)},
	}, State{Armed: &sel}
}
