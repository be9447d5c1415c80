package game

// Maximizer is the agent whose value the adversarial searches optimize. Every
// other turn index belongs to an adversary (minimax) or to chance (expectimax).
const Maximizer = 0

// Game is a turn-based game with any number of agents.
type Game[S any, A any] interface {
	// Turn returns the index of the agent acting at state
	Turn(state S) int
	// IsTerminal reports whether state ends the game, with one value per agent
	IsTerminal(state S) (bool, []float64)
	// Actions may be empty at a non-terminal state
	Actions(state S) []A
	Successor(state S, action A) S
}

// Heuristic estimates the value of state for agent.
type Heuristic[S any, A any] func(g Game[S, A], state S, agent int) float64

func NullHeuristic[S any, A any](Game[S, A], S, int) float64 {
	return 0
}
