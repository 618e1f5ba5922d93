package deployer

import (
	"sync"
	"sync/atomic"

	"github.com/eopatcher/eopatcher/internal/updatemanager/status"
)

// progress counts copied files and reports floor(100 * completed / total) after every copy.
// Increment and report happen under one lock so reported values never go backwards.
type progress struct {
	mu        sync.Mutex
	completed atomic.Int64
	total     int64
	sink      status.Sink
}

func newProgress(total int, sink status.Sink) *progress {
	return &progress{
		total: int64(total),
		sink:  sink,
	}
}

func percent(completed, total int64) int {
	if total <= 0 {
		return 100
	}
	return int(completed * 100 / total)
}

func (p *progress) start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sink(status.Progress(0))
}

func (p *progress) fileDone() {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := p.completed.Add(1)
	p.sink(status.Progress(percent(n, p.total)))
}

func (p *progress) done() int64 {
	return p.completed.Load()
}
