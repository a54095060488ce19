package duel

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"massduel/internal/config"
)

type fixedPrompter struct {
	choice ActionID
	seen   [][]ActionID
}

func (p *fixedPrompter) PromptAction(eligible []ActionID) ActionID {
	p.seen = append(p.seen, eligible)
	return p.choice
}

func TestGreedyAlwaysForages(t *testing.T) {
	self, opp := newPair()
	for _, mass := range []int{0, 15, 20, 100, 1000} {
		self.Mass = mass
		if got := (Greedy{}).Decide(self, opp); got != Forage {
			t.Fatalf("mass %d: expected forage, got %s", mass, got)
		}
	}
}

func TestStrategicEarlyGameInvests(t *testing.T) {
	self, opp := newPair()
	self.Mass, opp.Mass = 20, 20
	if got := (Strategic{}).Decide(self, opp); got != Invest {
		t.Fatalf("expected invest, got %s", got)
	}
}

func TestStrategicInvestBeatsSabotage(t *testing.T) {
	self, opp := newPair()
	self.Mass, opp.Mass = 20, 20
	opp.PassiveIncome = 10
	if got := (Strategic{}).Decide(self, opp); got != Invest {
		t.Fatalf("expected invest to take priority, got %s", got)
	}
}

func TestStrategicSabotagesBetterIncome(t *testing.T) {
	self, opp := newPair()
	self.Mass, opp.Mass = 200, 200
	opp.PassiveIncome = 10
	self.PassiveIncome = 2
	if got := (Strategic{}).Decide(self, opp); got != Sabotage {
		t.Fatalf("expected sabotage, got %s", got)
	}
}

func TestStrategicOverchargesThenForages(t *testing.T) {
	self, opp := newPair()
	self.Mass, opp.Mass = 200, 200
	if got := (Strategic{}).Decide(self, opp); got != Overcharge {
		t.Fatalf("expected overcharge, got %s", got)
	}
	self.Execute(Overcharge, opp)
	if got := (Strategic{}).Decide(self, opp); got != Forage {
		t.Fatalf("expected forage while charged, got %s", got)
	}
}

func TestStrategicPoorEarlyGameOvercharges(t *testing.T) {
	self, opp := newPair()
	self.Mass = 14
	if got := (Strategic{}).Decide(self, opp); got != Overcharge {
		t.Fatalf("expected overcharge when invest unaffordable, got %s", got)
	}
}

func TestUniformRandomStaysEligible(t *testing.T) {
	self, opp := newPair()
	p := UniformRandom{Rng: rand.New(rand.NewSource(7))}
	seen := map[ActionID]bool{}
	for _, mass := range []int{0, 14, 15, 19, 20, 300} {
		self.Mass = mass
		eligible := self.Eligible()
		for i := 0; i < 200; i++ {
			got := p.Decide(self, opp)
			if !slices.Contains(eligible, got) {
				t.Fatalf("mass %d: %s not in %v", mass, got, eligible)
			}
			seen[got] = true
		}
	}
	for _, a := range AllActions {
		if !seen[a] {
			t.Errorf("expected %s to be drawn at least once", a)
		}
	}
}

func TestInteractiveDefersToPrompter(t *testing.T) {
	self, opp := newPair()
	self.Mass = 15
	prompt := &fixedPrompter{choice: Invest}

	got := Interactive{Prompt: prompt}.Decide(self, opp)
	if got != Invest {
		t.Fatalf("expected invest, got %s", got)
	}
	if len(prompt.seen) != 1 || !slices.Equal(prompt.seen[0], []ActionID{Forage, Invest, Overcharge}) {
		t.Fatalf("unexpected eligible set passed to prompter: %v", prompt.seen)
	}
}

func TestActExecutesDecision(t *testing.T) {
	rules := config.DefaultRules()
	prompt := &fixedPrompter{choice: Overcharge}
	self := NewContestant("Human", "X", rules, Interactive{Prompt: prompt})
	opp := NewContestant("Bot", "O", rules, Greedy{})

	choice, text := self.Act(opp)
	if choice != Overcharge || self.Multiplier() != 2.0 {
		t.Fatalf("expected overcharge applied, got %s mult %g", choice, self.Multiplier())
	}
	if text == "" {
		t.Fatal("expected description")
	}
}

func TestNewPolicy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		kind    PolicyKind
		prompt  Prompter
		want    Policy
		wantErr error
	}{
		{kind: KindGreedy, want: Greedy{}},
		{kind: KindStrategic, want: Strategic{}},
		{kind: KindRandom, want: UniformRandom{Rng: rng}},
		{kind: KindHuman, prompt: &fixedPrompter{}, want: nil},
		{kind: KindHuman, wantErr: ErrNoPrompter},
		{kind: "chaotic", wantErr: ErrUnknownPolicy},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := NewPolicy(tt.kind, rng, tt.prompt)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("new policy: %v", err)
			}
			if tt.kind == KindHuman {
				if _, ok := got.(Interactive); !ok {
					t.Fatalf("expected Interactive, got %T", got)
				}
				return
			}
			if got != tt.want {
				t.Fatalf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}
