package metrics

import (
	"math"
	"time"
)

type DecisionMetric struct {
	Duration    time.Duration
	Candidates  int // legal actions scored
	BestScore   float64
	CacheHits   int // Cumulative over the agent's match
	CacheMisses int
	CacheSize   int
}

type MoveMetric struct {
	Step   int
	Agent  int // Engine slot
	Role   string
	Action string
	DecisionMetric
}

type GameMetric struct {
	MatchID    string
	Red        string // Profile name
	Blue       string // Profile name
	Winner     string // "Red", "Blue" or "" for a tie
	Score      int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start()
	AddCandidate(score float64)
	SetCache(hits, misses, size int)
	Complete() DecisionMetric
}

type collector struct {
	startTime  time.Time
	candidates int
	best       float64
	hits       int
	misses     int
	size       int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	*m = collector{startTime: time.Now(), best: math.Inf(-1)}
}

func (m *collector) AddCandidate(score float64) {
	m.candidates++
	if score > m.best {
		m.best = score
	}
}

func (m *collector) SetCache(hits, misses, size int) {
	m.hits = hits
	m.misses = misses
	m.size = size
}

func (m *collector) Complete() DecisionMetric {
	return DecisionMetric{
		Duration:    time.Since(m.startTime),
		Candidates:  m.candidates,
		BestScore:   m.best,
		CacheHits:   m.hits,
		CacheMisses: m.misses,
		CacheSize:   m.size,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                          {}
func (m *dummyCollector) AddCandidate(score float64)      {}
func (m *dummyCollector) SetCache(hits, misses, size int) {}
func (m *dummyCollector) Complete() DecisionMetric        { return DecisionMetric{} }
