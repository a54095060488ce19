package main

import (
	"errors"
	"math/rand"
	"testing"

	"massduel/internal/config"
	"massduel/internal/duel"
)

type scriptedPrompter struct{ calls int }

func (p *scriptedPrompter) PromptAction(eligible []duel.ActionID) duel.ActionID {
	p.calls++
	return eligible[0]
}

func TestNewSeatsRoutesHumanThroughPrompter(t *testing.T) {
	prompt := &scriptedPrompter{}
	human, bot, err := newSeats(duel.KindStrategic, config.DefaultRules(), rand.New(rand.NewSource(1)), prompt)
	if err != nil {
		t.Fatalf("new seats: %v", err)
	}
	if bot.Name != "Computer (Strategic)" {
		t.Fatalf("unexpected opponent name %q", bot.Name)
	}
	if choice, _ := human.Act(bot); choice != duel.Forage || prompt.calls != 1 {
		t.Fatalf("expected human to ask the prompter once, got %s after %d calls", choice, prompt.calls)
	}
}

func TestNewSeatsRequiresPrompter(t *testing.T) {
	_, _, err := newSeats(duel.KindGreedy, config.DefaultRules(), nil, nil)
	if !errors.Is(err, duel.ErrNoPrompter) {
		t.Fatalf("expected ErrNoPrompter, got %v", err)
	}
}

func TestNewSeatsRejectsUnknownOpponent(t *testing.T) {
	_, _, err := newSeats("chaotic", config.DefaultRules(), nil, &scriptedPrompter{})
	if !errors.Is(err, duel.ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}
