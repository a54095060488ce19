package duel

import (
	"fmt"
	"math"

	"massduel/internal/config"
)

// Contestant is one side's resource state. Name and Symbol are fixed at
// creation; Mass and PassiveIncome change only through the methods below and
// an opponent's Sabotage.
type Contestant struct {
	Name          string
	Symbol        string
	Mass          int
	PassiveIncome int

	multiplier float64
	rules      config.Rules
	policy     Policy
}

func NewContestant(name, symbol string, rules config.Rules, policy Policy) *Contestant {
	return &Contestant{
		Name:          name,
		Symbol:        symbol,
		Mass:          rules.StartMass,
		PassiveIncome: rules.StartIncome,
		multiplier:    1.0,
		rules:         rules,
		policy:        policy,
	}
}

// Multiplier reports the pending factor for the next action without
// consuming it.
func (c *Contestant) Multiplier() float64 { return c.multiplier }

func (c *Contestant) Rules() config.Rules { return c.rules }

func (c *Contestant) ApplyPassiveIncome() {
	c.Mass += c.PassiveIncome
}

// Eligible returns the actions affordable at the current mass, in menu order.
func (c *Contestant) Eligible() []ActionID {
	out := make([]ActionID, 0, len(AllActions))
	out = append(out, Forage)
	if c.Mass >= c.rules.InvestCost {
		out = append(out, Invest)
	}
	out = append(out, Overcharge)
	if c.Mass >= c.rules.SabotageCost {
		out = append(out, Sabotage)
	}
	return out
}

func (c *Contestant) consumeMultiplier() float64 {
	mult := c.multiplier
	c.multiplier = 1.0
	return mult
}

// Execute applies choice and returns a line describing what happened.
// Costs are not checked: choice must come from Eligible. The pending
// multiplier is consumed by every call, whatever the choice. An unknown
// choice changes nothing else and returns "".
func (c *Contestant) Execute(choice ActionID, opponent *Contestant) string {
	mult := c.consumeMultiplier()

	switch choice {
	case Forage:
		gain := scaled(c.rules.ForageGain, mult)
		c.Mass += gain
		return fmt.Sprintf("%s foraged for %d mass.", c.Name, gain)
	case Invest:
		c.Mass -= c.rules.InvestCost
		gain := scaled(c.rules.InvestIncome, mult)
		c.PassiveIncome += gain
		return fmt.Sprintf("%s invested %d mass to gain +%d passive income.", c.Name, c.rules.InvestCost, gain)
	case Overcharge:
		c.multiplier = c.rules.OverchargeFactor
		return fmt.Sprintf("%s overcharged! Their next action is %gx stronger.", c.Name, c.rules.OverchargeFactor)
	case Sabotage:
		c.Mass -= c.rules.SabotageCost
		dmg := scaled(c.rules.SabotageDamage, mult)
		opponent.Mass -= dmg
		if opponent.Mass < 0 {
			opponent.Mass = 0
		}
		return fmt.Sprintf("%s sabotaged %s for %d mass!", c.Name, opponent.Name, dmg)
	}
	return ""
}

// Act asks the bound policy for a choice and executes it.
func (c *Contestant) Act(opponent *Contestant) (ActionID, string) {
	choice := c.policy.Decide(c, opponent)
	return choice, c.Execute(choice, opponent)
}

func scaled(base int, mult float64) int {
	return int(math.Floor(float64(base) * mult))
}
