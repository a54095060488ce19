// Package ui is the terminal front end for a duel: menus, turn renders, the
// action prompt and the final board.
package ui

import (
	"bufio"
	"io"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"massduel/internal/board"
	"massduel/internal/config"
	"massduel/internal/duel"
)

const (
	green    = "\033[92m"
	red      = "\033[91m"
	reset    = "\033[0m"
	clearSeq = "\033[H\033[2J"

	invalidActionText = "Invalid choice or not enough mass. Try again."
)

type Options struct {
	Lang  language.Tag
	Color bool
	// Clear wipes the screen before each full render.
	Clear bool
}

// Terminal reads choices from in and draws to out.
type Terminal struct {
	in   *bufio.Scanner
	out  io.Writer
	p    *message.Printer
	opts Options

	last *duel.State
	err  error
}

func NewTerminal(in io.Reader, out io.Writer, opts Options) *Terminal {
	return &Terminal{
		in:   bufio.NewScanner(in),
		out:  out,
		p:    message.NewPrinter(opts.Lang),
		opts: opts,
	}
}

// Err reports why input stopped, if it did.
func (t *Terminal) Err() error { return t.err }

func (t *Terminal) readLine() (string, bool) {
	if t.err != nil {
		return "", false
	}
	if !t.in.Scan() {
		t.err = t.in.Err()
		if t.err == nil {
			t.err = io.EOF
		}
		return "", false
	}
	return strings.TrimSpace(t.in.Text()), true
}

func (t *Terminal) printf(format string, args ...any) {
	t.p.Fprintf(t.out, format, args...)
}

func (t *Terminal) clearScreen() {
	if t.opts.Clear {
		io.WriteString(t.out, clearSeq)
	}
}

func (t *Terminal) paint(s, color string) string {
	if !t.opts.Color {
		return s
	}
	return color + s + reset
}

func (t *Terminal) Message(msg string) {
	t.printf("%s\n", msg)
}

// ChooseOpponent shows the main menu until a valid entry is read. ok is false
// when the player quits or input ends.
func (t *Terminal) ChooseOpponent() (kind duel.PolicyKind, ok bool) {
	for {
		t.clearScreen()
		t.printf("========================\n")
		t.printf("    MASS DUEL V1.0      \n")
		t.printf("========================\n")
		t.printf("Choose your opponent:\n")
		t.printf("1. Random AI (Easy)\n")
		t.printf("2. Greedy AI (Easy)\n")
		t.printf("3. Strategic AI (Hard)\n")
		t.printf("4. Quit\n")
		t.printf("\nEnter choice (1-4): ")

		line, read := t.readLine()
		if !read {
			return "", false
		}
		switch line {
		case "1":
			return duel.KindRandom, true
		case "2":
			return duel.KindGreedy, true
		case "3":
			return duel.KindStrategic, true
		case "4":
			return "", false
		}
		t.printf("Invalid choice. Press Enter to try again.")
		if _, read := t.readLine(); !read {
			return "", false
		}
	}
}

// ConfirmReplay asks whether to play again.
func (t *Terminal) ConfirmReplay() bool {
	t.printf("\nWould you like to play again? (y/n): ")
	line, ok := t.readLine()
	return ok && strings.ToLower(line) == "y"
}

// RenderState draws the turn header, both sides, the last two log lines and
// the board. The state is kept so PromptAction can redraw it.
func (t *Terminal) RenderState(s duel.State, errText string) {
	t.last = &s

	t.clearScreen()
	t.printf("--- TURN %d ---\n", s.Turn)
	t.renderStats(s.A)
	t.renderStats(s.B)
	t.printf("%s\n", strings.Repeat("-", 25))
	t.printf("Log: %s\n", s.LogA)
	t.printf("Log: %s\n", s.LogB)
	t.renderBoard(s.Board, s.A, s.B)
	if errText != "" {
		t.printf("\n%s\n", t.paint(errText, red))
	}
}

func (t *Terminal) renderStats(c *duel.Contestant) {
	t.printf("%s (%s) | Mass: %d | Passive: +%d/turn | Mult: %.1fx\n",
		c.Name, c.Symbol, c.Mass, c.PassiveIncome, c.Multiplier())
}

// PromptAction reads until a line names an action in eligible. If input
// ends first it returns Forage, which is always eligible.
func (t *Terminal) PromptAction(eligible []duel.ActionID) duel.ActionID {
	rules := config.DefaultRules()
	if t.last != nil && t.last.A != nil {
		rules = t.last.A.Rules()
	}
	errText := ""
	for {
		if errText != "" && t.last != nil {
			t.RenderState(*t.last, errText)
		}
		t.printf("\nActions: [1] Forage (+%d Mass) | [2] Invest (Cost: %d, +%d Passive) | [3] Overcharge (%gx Next Turn) | [4] Sabotage (Cost: %d, -%d Enemy Mass)\n",
			rules.ForageGain, rules.InvestCost, rules.InvestIncome, rules.OverchargeFactor, rules.SabotageCost, rules.SabotageDamage)
		t.printf("Choose your action (1-4): ")

		line, ok := t.readLine()
		if !ok {
			return duel.Forage
		}
		if choice, ok := duel.ParseAction(line); ok && slices.Contains(eligible, choice) {
			return choice
		}
		errText = invalidActionText
	}
}

func (t *Terminal) RenderFinalBoard(cp duel.CapacityProvider, a, b *duel.Contestant) {
	t.clearScreen()
	t.renderBoard(cp, a, b)
}

func (t *Terminal) RenderOutcome(a, b *duel.Contestant) {
	t.printf("\n--- GAME OVER ---\n")
	switch duel.Judge(a, b) {
	case duel.WinA:
		t.printf("You have overtaken the board! YOU WIN!\n")
	case duel.WinB:
		t.printf("The computer has overtaken the board! YOU LOSE!\n")
	default:
		t.printf("It's a perfect tie!\n")
	}
}

func (t *Terminal) renderBoard(cp duel.CapacityProvider, a, b *duel.Contestant) {
	capacity := cp.Capacity()
	width := board.Width
	if d, ok := cp.(interface{ Dims() (int, int) }); ok {
		width, _ = d.Dims()
	}
	if width <= 0 {
		width = 1
	}

	glyphA := t.paint(a.Symbol, green)
	glyphB := t.paint(b.Symbol, red)
	cells := board.Layout(capacity, a.Mass, b.Mass)

	border := "+" + strings.Repeat("-", width*2+1) + "+"
	t.printf("\n%s\n", border)
	row := make([]string, 0, width)
	for start := 0; start < len(cells); start += width {
		row = row[:0]
		for _, c := range cells[start:min(start+width, len(cells))] {
			switch c {
			case board.SideA:
				row = append(row, glyphA)
			case board.SideB:
				row = append(row, glyphB)
			default:
				row = append(row, ".")
			}
		}
		t.printf("| %s |\n", strings.Join(row, " "))
	}
	t.printf("%s\n", border)
}
