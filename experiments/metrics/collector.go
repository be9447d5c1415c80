package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Algorithm   string
	Duration    time.Duration
	Expanded    int
	Generated   int
	Pruned      int
	MaxFrontier int
	Found       bool
}

type MoveMetric struct {
	Step   int
	Player int // Agent index
	SearchMetric
}

type GameMetric struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Values     []float64 // Terminal values per agent, nil if the move limit was hit
}

// Collector records the work done by a single search call.
//
// Graph searches call AddExpansion once per expanded state and AddGenerated
// once per successor pushed on the frontier. Tree searches call AddExpansion
// once per visited node and AddPrune once per cut-off.
type Collector interface {
	Start(algorithm string)
	AddExpansion()
	AddGenerated()
	AddPrune()
	ObserveFrontier(size int)
	Complete(found bool) SearchMetric
}

type collector struct {
	algorithm   string
	startTime   time.Time
	expanded    atomic.Int64
	generated   atomic.Int64
	pruned      atomic.Int64
	maxFrontier atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(algorithm string) {
	m.algorithm = algorithm
	m.startTime = time.Now()
	m.expanded.Store(0)
	m.generated.Store(0)
	m.pruned.Store(0)
	m.maxFrontier.Store(0)
}

func (m *collector) AddExpansion() {
	m.expanded.Add(1)
}

func (m *collector) AddGenerated() {
	m.generated.Add(1)
}

func (m *collector) AddPrune() {
	m.pruned.Add(1)
}

func (m *collector) ObserveFrontier(size int) {
	for {
		current := m.maxFrontier.Load()
		if int64(size) <= current || m.maxFrontier.CompareAndSwap(current, int64(size)) {
			return
		}
	}
}

func (m *collector) Complete(found bool) SearchMetric {
	return SearchMetric{
		Algorithm:   m.algorithm,
		Duration:    time.Since(m.startTime),
		Expanded:    int(m.expanded.Load()),
		Generated:   int(m.generated.Load()),
		Pruned:      int(m.pruned.Load()),
		MaxFrontier: int(m.maxFrontier.Load()),
		Found:       found,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(algorithm string)           {}
func (m *dummyCollector) AddExpansion()                    {}
func (m *dummyCollector) AddGenerated()                    {}
func (m *dummyCollector) AddPrune()                        {}
func (m *dummyCollector) ObserveFrontier(size int)         {}
func (m *dummyCollector) Complete(found bool) SearchMetric { return SearchMetric{Found: found} }
