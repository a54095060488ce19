package config

import (
	"errors"
	"fmt"
)

// ErrInvalidRules reports a rules value outside its allowed range.
var ErrInvalidRules = errors.New("invalid rules")

// Rules holds the numeric constants of a duel.
type Rules struct {
	StartMass              int     `yaml:"start_mass"`
	StartIncome            int     `yaml:"start_income"`
	ForageGain             int     `yaml:"forage_gain"`
	InvestCost             int     `yaml:"invest_cost"`
	InvestIncome           int     `yaml:"invest_income"`
	OverchargeFactor       float64 `yaml:"overcharge_factor"`
	SabotageCost           int     `yaml:"sabotage_cost"`
	SabotageDamage         int     `yaml:"sabotage_damage"`
	StrategicInvestCeiling int     `yaml:"strategic_invest_ceiling"`
}

func DefaultRules() Rules {
	return Rules{
		StartMass:              10,
		StartIncome:            2,
		ForageGain:             12,
		InvestCost:             15,
		InvestIncome:           4,
		OverchargeFactor:       2.0,
		SabotageCost:           20,
		SabotageDamage:         25,
		StrategicInvestCeiling: 200,
	}
}

// Validate checks that every amount is non-negative, that overcharging
// doubles the next action, and that both sides gain mass every turn so a
// match always fills the board.
func (r Rules) Validate() error {
	ints := []struct {
		name string
		v    int
	}{
		{"start_mass", r.StartMass},
		{"start_income", r.StartIncome},
		{"forage_gain", r.ForageGain},
		{"invest_cost", r.InvestCost},
		{"invest_income", r.InvestIncome},
		{"sabotage_cost", r.SabotageCost},
		{"sabotage_damage", r.SabotageDamage},
		{"strategic_invest_ceiling", r.StrategicInvestCeiling},
	}
	for _, f := range ints {
		if f.v < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %d", ErrInvalidRules, f.name, f.v)
		}
	}
	if r.OverchargeFactor != 2.0 {
		return fmt.Errorf("%w: overcharge_factor must be 2, got %g", ErrInvalidRules, r.OverchargeFactor)
	}
	if r.StartIncome == 0 {
		return fmt.Errorf("%w: start_income must be > 0", ErrInvalidRules)
	}
	if r.ForageGain == 0 {
		return fmt.Errorf("%w: forage_gain must be > 0", ErrInvalidRules)
	}
	return nil
}
