// Package sim plays many automated duels in parallel and aggregates the
// outcomes.
package sim

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"massduel/internal/board"
	"massduel/internal/config"
	"massduel/internal/duel"
)

// ErrInteractive is returned when a batch is asked to seat a human.
var ErrInteractive = errors.New("batch matches cannot seat a human")

type Spec struct {
	SideA   duel.PolicyKind
	SideB   duel.PolicyKind
	Rules   config.Rules
	Runs    int
	Workers int
	Seed    int64
}

type SideStats struct {
	Policy      string             `json:"policy"`
	Wins        int                `json:"wins"`
	WinRate     float64            `json:"win_rate"`
	AvgMass     float64            `json:"avg_mass"`
	AvgIncome   float64            `json:"avg_income"`
	Actions     map[string]int     `json:"actions"`
	ActionShare map[string]float64 `json:"action_share"`
}

type Summary struct {
	Runs     int       `json:"runs"`
	Seed     int64     `json:"seed"`
	Ties     int       `json:"ties"`
	TieRate  float64   `json:"tie_rate"`
	AvgTurns float64   `json:"avg_turns"`
	A        SideStats `json:"a"`
	B        SideStats `json:"b"`
}

type totals struct {
	wins, mass, income int
	actions            map[duel.ActionID]int
}

// jobSeed spaces job seeds apart so each match draws its own stream. It
// depends on the job index only, so the summary is the same for any worker
// count.
func jobSeed(seed int64, i int) int64 {
	return seed + int64(i)*7919
}

func newContestant(name, symbol string, kind duel.PolicyKind, rules config.Rules, rng *rand.Rand) (*duel.Contestant, error) {
	if kind == duel.KindHuman {
		return nil, ErrInteractive
	}
	policy, err := duel.NewPolicy(kind, rng, nil)
	if err != nil {
		return nil, err
	}
	return duel.NewContestant(name, symbol, rules, policy), nil
}

// Play runs a single headless match for job i of spec.
func Play(spec Spec, i int) (duel.Result, error) {
	rng := rand.New(rand.NewSource(jobSeed(spec.Seed, i)))
	a, err := newContestant("Alpha", "X", spec.SideA, spec.Rules, rng)
	if err != nil {
		return duel.Result{}, fmt.Errorf("side a: %w", err)
	}
	b, err := newContestant("Beta", "O", spec.SideB, spec.Rules, rng)
	if err != nil {
		return duel.Result{}, fmt.Errorf("side b: %w", err)
	}
	return duel.NewMatch(board.New(), a, b, nil).Run(), nil
}

// Run plays spec.Runs matches on spec.Workers goroutines.
func Run(spec Spec) (Summary, error) {
	if spec.Runs < 1 {
		return Summary{}, fmt.Errorf("runs must be >= 1, got %d", spec.Runs)
	}
	workers := spec.Workers
	if workers < 1 {
		workers = 1
	}
	if err := spec.Rules.Validate(); err != nil {
		return Summary{}, err
	}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
		ties     int
		turns    int
		sideA    = totals{actions: map[duel.ActionID]int{}}
		sideB    = totals{actions: map[duel.ActionID]int{}}
		jobs     = make(chan int, spec.Runs)
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := Play(spec, i)

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = fmt.Errorf("match %d: %w", i, err)
					}
					mu.Unlock()
					continue
				}
				switch res.Outcome {
				case duel.WinA:
					sideA.wins++
				case duel.WinB:
					sideB.wins++
				default:
					ties++
				}
				turns += res.Turns
				sideA.mass += res.MassA
				sideB.mass += res.MassB
				sideA.income += res.IncomeA
				sideB.income += res.IncomeB
				for k, v := range res.ActionsA {
					sideA.actions[k] += v
				}
				for k, v := range res.ActionsB {
					sideB.actions[k] += v
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < spec.Runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	if firstErr != nil {
		return Summary{}, firstErr
	}

	n := float64(spec.Runs)
	return Summary{
		Runs:     spec.Runs,
		Seed:     spec.Seed,
		Ties:     ties,
		TieRate:  float64(ties) / n,
		AvgTurns: float64(turns) / n,
		A:        sideA.stats(spec.SideA, n),
		B:        sideB.stats(spec.SideB, n),
	}, nil
}

func (t totals) stats(kind duel.PolicyKind, n float64) SideStats {
	total := 0
	for _, v := range t.actions {
		total += v
	}
	st := SideStats{
		Policy:      string(kind),
		Wins:        t.wins,
		WinRate:     float64(t.wins) / n,
		AvgMass:     float64(t.mass) / n,
		AvgIncome:   float64(t.income) / n,
		Actions:     map[string]int{},
		ActionShare: map[string]float64{},
	}
	for _, a := range duel.AllActions {
		v := t.actions[a]
		st.Actions[a.String()] = v
		share := 0.0
		if total > 0 {
			share = float64(v) / float64(total)
		}
		st.ActionShare[a.String()] = share
	}
	return st
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
