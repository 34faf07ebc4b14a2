package renderer

import (
	"sync/atomic"
	"time"

	"github.com/df07/go-shadow-raytracer/pkg/core"
	"golang.org/x/time/rate"
)

// ProgressReporter logs how many rows remain, at most once per interval.
// The final row is always reported.
type ProgressReporter struct {
	logger    core.Logger
	limiter   *rate.Limiter
	totalRows int64
	doneRows  int64
}

// NewProgressReporter creates a reporter for a pass of totalRows rows.
// A non-positive interval reports every row.
func NewProgressReporter(logger core.Logger, totalRows int, interval time.Duration) *ProgressReporter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &ProgressReporter{
		logger:    logger,
		limiter:   rate.NewLimiter(limit, 1),
		totalRows: int64(totalRows),
	}
}

// RowDone records a finished row. It is safe for concurrent use.
func (p *ProgressReporter) RowDone() {
	done := atomic.AddInt64(&p.doneRows, 1)
	remaining := p.totalRows - done
	if remaining == 0 || p.limiter.Allow() {
		p.logger.Printf("Scanlines remaining: %d", remaining)
	}
}

// Remaining returns the number of rows not yet finished
func (p *ProgressReporter) Remaining() int {
	return int(p.totalRows - atomic.LoadInt64(&p.doneRows))
}
