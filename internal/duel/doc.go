// Package duel implements the mass duel turn engine.
//
// Two contestants grow a mass value and a passive income. Each turn both
// collect income, then A and B in that order pick one of four actions
// through their bound Policy. The match ends as soon as the combined mass
// reaches the board capacity; the larger mass wins.
package duel
