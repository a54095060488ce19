package duel

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

var (
	ErrUnknownPolicy = errors.New("unknown policy")
	ErrNoPrompter    = errors.New("interactive policy needs a prompter")
)

// Policy picks the next action for self. It must return a member of
// self.Eligible().
type Policy interface {
	Decide(self, opponent *Contestant) ActionID
}

// Prompter collects a human choice. PromptAction blocks until it has a value
// from eligible and never returns anything outside it.
type Prompter interface {
	PromptAction(eligible []ActionID) ActionID
}

// Interactive defers the choice to a human through a Prompter.
type Interactive struct {
	Prompt Prompter
}

func (p Interactive) Decide(self, _ *Contestant) ActionID {
	return p.Prompt.PromptAction(self.Eligible())
}

// UniformRandom picks uniformly among the eligible actions.
type UniformRandom struct {
	Rng *rand.Rand
}

func (p UniformRandom) Decide(self, _ *Contestant) ActionID {
	eligible := self.Eligible()
	return eligible[p.Rng.Intn(len(eligible))]
}

// Greedy always forages.
type Greedy struct{}

func (Greedy) Decide(_, _ *Contestant) ActionID { return Forage }

// Strategic applies a fixed priority list: invest while the board is young,
// sabotage an opponent with better income, charge up, otherwise forage.
type Strategic struct{}

func (Strategic) Decide(self, opponent *Contestant) ActionID {
	eligible := self.Eligible()
	if slices.Contains(eligible, Invest) && self.Mass+opponent.Mass < self.rules.StrategicInvestCeiling {
		return Invest
	}
	if slices.Contains(eligible, Sabotage) && opponent.PassiveIncome > self.PassiveIncome {
		return Sabotage
	}
	if slices.Contains(eligible, Overcharge) && self.Multiplier() == 1.0 {
		return Overcharge
	}
	return Forage
}

// PolicyKind names a selectable policy.
type PolicyKind string

const (
	KindHuman     PolicyKind = "human"
	KindRandom    PolicyKind = "random"
	KindGreedy    PolicyKind = "greedy"
	KindStrategic PolicyKind = "strategic"
)

// NewPolicy builds the policy for kind. rng is used by KindRandom, prompt by
// KindHuman.
func NewPolicy(kind PolicyKind, rng *rand.Rand, prompt Prompter) (Policy, error) {
	switch kind {
	case KindHuman:
		if prompt == nil {
			return nil, ErrNoPrompter
		}
		return Interactive{Prompt: prompt}, nil
	case KindRandom:
		if rng == nil {
			return nil, fmt.Errorf("%s policy: nil rng", kind)
		}
		return UniformRandom{Rng: rng}, nil
	case KindGreedy:
		return Greedy{}, nil
	case KindStrategic:
		return Strategic{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(kind))
}
