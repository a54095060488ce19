package duel

// CapacityProvider supplies the board's total cell count.
type CapacityProvider interface {
	Capacity() int
}

// State is what a presenter needs for one turn render.
type State struct {
	Board CapacityProvider
	Turn  int
	A, B  *Contestant
	LogA  string
	LogB  string
}

// Presenter is the display side of a match. Implementations must not mutate
// the contestants they are handed.
type Presenter interface {
	RenderState(s State, errText string)
	RenderFinalBoard(board CapacityProvider, a, b *Contestant)
	RenderOutcome(a, b *Contestant)
}

// NopPresenter renders nothing. Used for headless matches.
type NopPresenter struct{}

func (NopPresenter) RenderState(State, string)                                   {}
func (NopPresenter) RenderFinalBoard(CapacityProvider, *Contestant, *Contestant) {}
func (NopPresenter) RenderOutcome(*Contestant, *Contestant)                      {}

const (
	openingLogA = "Game started."
	openingLogB = "Opponent is ready."
)

type Result struct {
	Outcome  Outcome
	Turns    int
	MassA    int
	MassB    int
	IncomeA  int
	IncomeB  int
	ActionsA map[ActionID]int
	ActionsB map[ActionID]int
	Events   []Event
}

// Match runs one game between A and B. Create a fresh Match per game.
type Match struct {
	Board CapacityProvider
	A, B  *Contestant
	Turn  int

	// Emit, when set, receives every event as it happens.
	Emit func(Event)
	// Record keeps events in Result.Events.
	Record bool

	view   Presenter
	events []Event
	counts map[Side]map[ActionID]int
	done   bool
	result Result
}

func NewMatch(board CapacityProvider, a, b *Contestant, view Presenter) *Match {
	if view == nil {
		view = NopPresenter{}
	}
	return &Match{
		Board:  board,
		A:      a,
		B:      b,
		Turn:   1,
		view:   view,
		counts: map[Side]map[ActionID]int{SideA: {}, SideB: {}},
	}
}

func (m *Match) full() bool {
	return m.A.Mass+m.B.Mass >= m.Board.Capacity()
}

func (m *Match) emit(typ string, payload map[string]any) {
	ev := Event{Turn: m.Turn, Type: typ, Payload: payload}
	if m.Record {
		m.events = append(m.events, ev)
	}
	if m.Emit != nil {
		m.Emit(ev)
	}
}

func (m *Match) act(side Side, self, opponent *Contestant) string {
	choice, text := self.Act(opponent)
	m.counts[side][choice]++
	m.emit("action", map[string]any{
		"side": string(side), "actor": self.Name, "action": choice.String(), "text": text,
		"mass_a": m.A.Mass, "mass_b": m.B.Mass,
	})
	return text
}

// Run plays turns until the combined mass reaches capacity, then renders the
// final board and outcome. Capacity is checked after income and after each
// side's action, so B does not act on a turn where A fills the board.
// Calling Run again returns the same result without replaying.
func (m *Match) Run() Result {
	if m.done {
		return m.result
	}
	logA, logB := openingLogA, openingLogB
	for {
		m.A.ApplyPassiveIncome()
		m.B.ApplyPassiveIncome()
		m.emit("income", map[string]any{"mass_a": m.A.Mass, "mass_b": m.B.Mass})
		if m.full() {
			break
		}

		m.emit("render", nil)
		m.view.RenderState(State{Board: m.Board, Turn: m.Turn, A: m.A, B: m.B, LogA: logA, LogB: logB}, "")

		logA = m.act(SideA, m.A, m.B)
		if m.full() {
			break
		}
		logB = m.act(SideB, m.B, m.A)
		if m.full() {
			break
		}
		m.Turn++
	}
	return m.finish()
}

func (m *Match) finish() Result {
	outcome := Judge(m.A, m.B)
	m.emit("terminal", map[string]any{
		"outcome": outcome.String(), "mass_a": m.A.Mass, "mass_b": m.B.Mass,
	})
	m.view.RenderFinalBoard(m.Board, m.A, m.B)
	m.view.RenderOutcome(m.A, m.B)

	m.result = Result{
		Outcome:  outcome,
		Turns:    m.Turn,
		MassA:    m.A.Mass,
		MassB:    m.B.Mass,
		IncomeA:  m.A.PassiveIncome,
		IncomeB:  m.B.PassiveIncome,
		ActionsA: m.counts[SideA],
		ActionsB: m.counts[SideB],
		Events:   m.events,
	}
	m.done = true
	return m.result
}
