package game

import rand "math/rand/v2"

// Agent picks one action from the legal set, given a redacted view of
// the board. Agents only decide; the engine owns all state mutation.
type Agent interface {
	Act(view BoardState, legal []Action) Action
}

// RandomAgent plays a uniformly random legal move
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent creates an agent drawing from the given RNG
func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	return &RandomAgent{rng: rng}
}

func (a *RandomAgent) Act(view BoardState, legal []Action) Action {
	return legal[a.rng.IntN(len(legal))]
}

// ScriptedAgent follows a predetermined move list, falling back to the
// first legal move once the script runs out
type ScriptedAgent struct {
	moves []Action
	index int
}

// NewScriptedAgent creates an agent that plays the given moves in order
func NewScriptedAgent(moves ...Action) *ScriptedAgent {
	return &ScriptedAgent{moves: moves}
}

func (a *ScriptedAgent) Act(view BoardState, legal []Action) Action {
	if a.index >= len(a.moves) {
		return legal[0]
	}
	move := a.moves[a.index]
	a.index++
	return move
}
