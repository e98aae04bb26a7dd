package searcher

import "time"

// SearchMetric summarizes one completed search.
type SearchMetric struct {
	StartTime    time.Time
	Duration     time.Duration
	Iterations   int
	FullPlayouts int
}

// Collector gathers search statistics. The no-op variant keeps the hot loop
// free of bookkeeping when metrics are not wanted.
type Collector interface {
	Start()
	AddIteration()
	AddFullPlayout()
	Complete() SearchMetric
}

type collector struct {
	startTime    time.Time
	iterations   int
	fullPlayouts int
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.iterations = 0
	c.fullPlayouts = 0
}

func (c *collector) AddIteration() {
	c.iterations++
}

func (c *collector) AddFullPlayout() {
	c.fullPlayouts++
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		StartTime:    c.startTime,
		Duration:     time.Since(c.startTime),
		Iterations:   c.iterations,
		FullPlayouts: c.fullPlayouts,
	}
}

type noopCollector struct{}

func NewNoopCollector() Collector {
	return noopCollector{}
}

func (noopCollector) Start()                 {}
func (noopCollector) AddIteration()          {}
func (noopCollector) AddFullPlayout()        {}
func (noopCollector) Complete() SearchMetric { return SearchMetric{} }
