package duel

import (
	"fmt"
	"strings"
)

// ActionID names one of the four turn actions.
type ActionID int

const (
	Forage ActionID = iota + 1
	Invest
	Overcharge
	Sabotage
)

// AllActions lists every action in menu order.
var AllActions = []ActionID{Forage, Invest, Overcharge, Sabotage}

func (a ActionID) String() string {
	switch a {
	case Forage:
		return "forage"
	case Invest:
		return "invest"
	case Overcharge:
		return "overcharge"
	case Sabotage:
		return "sabotage"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction accepts the menu number ("1".."4") or the action name.
func ParseAction(s string) (ActionID, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "forage":
		return Forage, true
	case "2", "invest":
		return Invest, true
	case "3", "overcharge":
		return Overcharge, true
	case "4", "sabotage":
		return Sabotage, true
	}
	return 0, false
}

// Side identifies a seat in the match.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Outcome of a finished match.
type Outcome int

const (
	Tie Outcome = iota
	WinA
	WinB
)

func (o Outcome) String() string {
	switch o {
	case WinA:
		return "a"
	case WinB:
		return "b"
	default:
		return "tie"
	}
}

// Judge compares final masses: strictly greater wins, equal is a tie.
func Judge(a, b *Contestant) Outcome {
	switch {
	case a.Mass > b.Mass:
		return WinA
	case b.Mass > a.Mass:
		return WinB
	default:
		return Tie
	}
}
