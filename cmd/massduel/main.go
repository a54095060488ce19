package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"golang.org/x/text/language"

	"massduel/internal/board"
	"massduel/internal/config"
	"massduel/internal/duel"
	"massduel/internal/sim"
	"massduel/internal/ui"
	"massduel/internal/util"
)

var opponentNames = map[duel.PolicyKind]string{
	duel.KindRandom:    "Computer (Random)",
	duel.KindGreedy:    "Computer (Greedy)",
	duel.KindStrategic: "Computer (Strategic)",
}

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[MASSDUEL] ")

	rules, err := config.LoadRules(cfg.RulesPath)
	if err != nil {
		log.Fatalf("rules: %v", err)
	}

	if cfg.Sim {
		if err := runBatch(cfg, rules); err != nil {
			log.Fatalf("sim: %v", err)
		}
		return
	}
	if err := runInteractive(cfg, rules); err != nil {
		log.Fatalf("play: %v", err)
	}
}

func runBatch(cfg config.Config, rules config.Rules) error {
	seed := cfg.Seed
	if seed == 0 {
		s, err := util.NewSeed()
		if err != nil {
			return err
		}
		seed = s
	}
	sum, err := sim.Run(sim.Spec{
		SideA:   duel.PolicyKind(cfg.SideA),
		SideB:   duel.PolicyKind(cfg.SideB),
		Rules:   rules,
		Runs:    cfg.Runs,
		Workers: cfg.Workers,
		Seed:    seed,
	})
	if err != nil {
		return err
	}

	out := sim.MarshalPretty(sum)
	if cfg.Out == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(cfg.Out, out, 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	fmt.Printf("Batch %d done (seed %d) -> %s\n", cfg.Runs, seed, filepath.Base(cfg.Out))
	return nil
}

func runInteractive(cfg config.Config, rules config.Rules) error {
	tag, err := language.Parse(cfg.Lang)
	if err != nil {
		return fmt.Errorf("lang %q: %w", cfg.Lang, err)
	}
	rng, seed, err := util.New(cfg.Seed)
	if err != nil {
		return err
	}

	var events *log.Logger
	if cfg.LogPath != "" {
		f, err := os.OpenFile(cfg.LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		events = log.New(f, "", log.LstdFlags)
		events.Printf("session seed=%d", seed)
	}

	term := ui.NewTerminal(os.Stdin, os.Stdout, ui.Options{Lang: tag, Color: cfg.Color, Clear: true})
	for game := 1; ; game++ {
		kind, ok := term.ChooseOpponent()
		if !ok {
			break
		}
		human, bot, err := newSeats(kind, rules, rng, term)
		if err != nil {
			return err
		}

		m := duel.NewMatch(board.New(), human, bot, term)
		if events != nil {
			m.Emit = eventLogger(events, game)
		}
		m.Run()

		if term.Err() != nil || !term.ConfirmReplay() {
			break
		}
	}
	term.Message("Thanks for playing!")
	return nil
}

// newSeats builds the human seat on prompt and the computer opponent of kind.
func newSeats(kind duel.PolicyKind, rules config.Rules, rng *rand.Rand, prompt duel.Prompter) (human, bot *duel.Contestant, err error) {
	seat, err := duel.NewPolicy(duel.KindHuman, nil, prompt)
	if err != nil {
		return nil, nil, fmt.Errorf("human seat: %w", err)
	}
	policy, err := duel.NewPolicy(kind, rng, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("opponent: %w", err)
	}
	return duel.NewContestant("Player", "X", rules, seat),
		duel.NewContestant(opponentNames[kind], "O", rules, policy), nil
}

func eventLogger(l *log.Logger, game int) func(duel.Event) {
	return func(ev duel.Event) {
		payload, _ := json.Marshal(ev.Payload)
		l.Printf("game=%d turn=%d type=%s payload=%s", game, ev.Turn, ev.Type, payload)
	}
}
