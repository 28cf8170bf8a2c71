package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	FanOut         int
	DepthThreshold int
	Duration       time.Duration
	Iterations     int
	Rollouts       int
	Nodes          int
	RootTries      int
	RootWinRate    float64
}

type MoveMetric struct {
	Step   int
	Player string // Color name
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Empty when the turn limit was reached
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(fanOut, depthThreshold int)
	AddIteration()
	AddRollouts(n int)
	AddNode()
	Complete(rootTries int, rootWinRate float64) SearchMetric
}

type collector struct {
	fanOut         int
	depthThreshold int
	startTime      time.Time
	iterations     atomic.Int32
	rollouts       atomic.Int32
	nodes          atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(fanOut, depthThreshold int) {
	m.startTime = time.Now()
	m.fanOut = fanOut
	m.depthThreshold = depthThreshold
	m.iterations.Store(0)
	m.rollouts.Store(0)
	m.nodes.Store(1) // Root
}

func (m *collector) AddIteration() {
	m.iterations.Add(1)
}

func (m *collector) AddRollouts(n int) {
	m.rollouts.Add(int32(n))
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) Complete(rootTries int, rootWinRate float64) SearchMetric {
	return SearchMetric{
		FanOut:         m.fanOut,
		DepthThreshold: m.depthThreshold,
		Duration:       time.Since(m.startTime),
		Iterations:     int(m.iterations.Load()),
		Rollouts:       int(m.rollouts.Load()),
		Nodes:          int(m.nodes.Load()),
		RootTries:      rootTries,
		RootWinRate:    rootWinRate,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(fanOut, depthThreshold int) {}
func (m *dummyCollector) AddIteration()                    {}
func (m *dummyCollector) AddRollouts(n int)                {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) Complete(rootTries int, rootWinRate float64) SearchMetric {
	return SearchMetric{}
}
