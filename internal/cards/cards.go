package cards

import (
	"errors"
	"strings"
)

var ErrBadCard = errors.New("malformed card code")

// Card is a two-character code: rank then suit letter, e.g. "Ah", "Tc".
type Card string

// Sentinel is what the engine puts at the bottom of every home pile.
const Sentinel Card = "0c"

const (
	Clubs    = 'c'
	Diamonds = 'd'
	Hearts   = 'h'
	Spades   = 's'
)

const ranks = "A23456789TJQK"

// Parse validates a card code. "10h" is accepted and normalised to "Th".
func Parse(code string) (Card, error) {
	if len(code) == 3 && strings.HasPrefix(code, "10") {
		code = "T" + code[2:]
	}
	if len(code) != 2 {
		return "", ErrBadCard
	}
	if !strings.ContainsRune(ranks, rune(code[0])) {
		return "", ErrBadCard
	}
	switch code[1] {
	case Clubs, Diamonds, Hearts, Spades:
	default:
		return "", ErrBadCard
	}
	return Card(code), nil
}

// Valid reports whether c is a real playing card (the sentinel is not).
func (c Card) Valid() bool {
	_, err := Parse(string(c))
	return err == nil
}

// Rank returns the display rank. Ten is shown as "10".
func (c Card) Rank() string {
	if len(c) == 0 {
		return ""
	}
	if c[0] == 'T' {
		return "10"
	}
	return string(c[0])
}

// Suit returns the suit letter, or 0 for codes too short to carry one.
func (c Card) Suit() byte {
	if len(c) < 2 {
		return 0
	}
	return c[len(c)-1]
}

// Symbol returns the suit glyph. Unknown suit letters have no symbol.
func (c Card) Symbol() string {
	switch c.Suit() {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return ""
	}
}

func (c Card) Red() bool {
	s := c.Suit()
	return s == Diamonds || s == Hearts
}

func (c Card) Black() bool {
	s := c.Suit()
	return s == Clubs || s == Spades
}

// Label is rank followed by suit symbol, e.g. "10♥".
func (c Card) Label() string { return c.Rank() + c.Symbol() }

func (c Card) String() string { return string(c) }
