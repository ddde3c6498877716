package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Difficulty string
	Depth      int
	Pruning    bool
	Duration   time.Duration
	Nodes      int
	Leaves     int
	Cutoffs    int
	CacheHits  int
	Score      float64
}

type MoveMetric struct {
	Step   int
	Player int // game.Player
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingAgent int    // AgentConfig.ID
	Winner        string // game.Player name, or "none" when the turn limit was hit
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
	TotalMoves    int
}

// AgentConfig describes one contestant in a self-play experiment.
type AgentConfig struct {
	ID         int
	Kind       string // "search" or "random"
	Difficulty string
	Pruning    bool
	EvalCache  int
	Seed       uint64
}

type Collector interface {
	Start(depth int, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	AddCacheHit()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	pruning   bool
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
	cacheHits atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(depth int, pruning bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.pruning = pruning
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
	m.cacheHits.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) AddCacheHit() {
	m.cacheHits.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		Pruning:   m.pruning,
		Duration:  time.Since(m.startTime),
		Nodes:     int(m.nodes.Load()),
		Leaves:    int(m.leaves.Load()),
		Cutoffs:   int(m.cutoffs.Load()),
		CacheHits: int(m.cacheHits.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, pruning bool) {}
func (m *dummyCollector) AddNode()                      {}
func (m *dummyCollector) AddLeaf()                      {}
func (m *dummyCollector) AddCutoff()                    {}
func (m *dummyCollector) AddCacheHit()                  {}
func (m *dummyCollector) Complete() SearchMetric        { return SearchMetric{} }
