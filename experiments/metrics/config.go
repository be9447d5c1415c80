package metrics

// AgentConfig describes one participant of a match experiment.
type AgentConfig struct {
	ID        int
	Algorithm string // A game search name, or "random"
	MaxDepth  int
	Seed      uint64 // Used by random agents only
}
