package searcher

import "time"

// SearchMetric describes one GetMove call.
type SearchMetric struct {
	Method    Method
	Iterative bool
	Duration  time.Duration
	Nodes     int
	Depth     int // deepest completed depth
	TimedOut  bool
}

type Collector interface {
	Start(method Method, iterative bool)
	AddNodes(n int)
	CompleteDepth(depth int)
	SetTimedOut()
	Complete() SearchMetric
}

type collector struct {
	method    Method
	iterative bool
	startTime time.Time
	nodes     int
	depth     int
	timedOut  bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(method Method, iterative bool) {
	*m = collector{
		method:    method,
		iterative: iterative,
		startTime: time.Now(),
	}
}

func (m *collector) AddNodes(n int) {
	m.nodes += n
}

func (m *collector) CompleteDepth(depth int) {
	if depth > m.depth {
		m.depth = depth
	}
}

func (m *collector) SetTimedOut() {
	m.timedOut = true
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Method:    m.method,
		Iterative: m.iterative,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		Depth:     m.depth,
		TimedOut:  m.timedOut,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(method Method, iterative bool) {}
func (m *dummyCollector) AddNodes(n int)                      {}
func (m *dummyCollector) CompleteDepth(depth int)             {}
func (m *dummyCollector) SetTimedOut()                        {}
func (m *dummyCollector) Complete() SearchMetric              { return SearchMetric{} }
