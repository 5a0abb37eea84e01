// Package observability provides the progress accounting of a pairing run.
package observability

import (
	"fmt"
	"log/slog"

	"github.com/gookit/color"
)

// ProgressTracker tracks how much of the roster has been consumed: one unit
// for a member handled alone, two for a committed pair. The total always
// lands on 100% because the odd leftover is accounted for at the end.
type ProgressTracker struct {
	log   *slog.Logger
	label string
	total int
	done  int
}

func NewProgressTracker(log *slog.Logger, label string) *ProgressTracker {
	return &ProgressTracker{log: log, label: label}
}

func (p *ProgressTracker) Start(total int) {
	p.total = total
	p.done = 0
	p.render()
}

func (p *ProgressTracker) Add(n int) {
	p.done += n
	if p.done > p.total {
		p.done = p.total
	}
	p.render()
}

func (p *ProgressTracker) Done() {
	fmt.Println()
	p.log.Debug("progress complete", "label", p.label, "total", p.total)
}

func (p *ProgressTracker) render() {
	percent := 100
	if p.total > 0 {
		percent = p.done * 100 / p.total
	}
	fmt.Printf("\r%s %3d%% (%d/%d)",
		color.Green.Render(p.label), percent, p.done, p.total)
}

// NoopReporter discards all progress updates. Used by tests and by runs
// where no terminal feedback is wanted.
type NoopReporter struct{}

func (NoopReporter) Start(int) {}
func (NoopReporter) Add(int)   {}
func (NoopReporter) Done()     {}
