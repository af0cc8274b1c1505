package worker

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const barWidth = 24

// Progress tracks swatch rendering progress and redraws a single-line
// bar on output as tasks complete.
type Progress struct {
	start     time.Time
	output    io.Writer
	total     int
	completed int
	failed    int
	mu        sync.Mutex
	enabled   bool
}

// NewProgress creates a progress tracker for total tasks. When enabled
// is false the tracker still counts but never writes.
func NewProgress(total int, enabled bool) *Progress {
	return &Progress{
		total:   total,
		start:   time.Now(),
		output:  os.Stderr,
		enabled: enabled,
	}
}

// Update records the completion of a task and redraws the bar.
func (p *Progress) Update(completed, total, failed int) {
	p.mu.Lock()
	p.completed = completed
	p.total = total
	p.failed = failed
	line := p.line()
	p.mu.Unlock()

	if p.enabled {
		fmt.Fprint(p.output, "\r"+line)
	}
}

// Callback returns a ProgressFunc suitable for Pool.Config.
func (p *Progress) Callback() ProgressFunc {
	return p.Update
}

// line renders the current bar. Callers hold p.mu.
func (p *Progress) line() string {
	filled := 0
	if p.total > 0 {
		filled = p.completed * barWidth / p.total
	}
	line := fmt.Sprintf("[%s%s] %d/%d swatches",
		strings.Repeat("#", filled), strings.Repeat("-", barWidth-filled),
		p.completed, p.total)
	if p.failed > 0 {
		line += fmt.Sprintf(", %d failed", p.failed)
	}
	return line
}

// Done redraws the final bar and terminates the line.
func (p *Progress) Done() {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	line := p.line()
	p.mu.Unlock()
	fmt.Fprintf(p.output, "\r%s\n", line)
}

// Summary returns a one-line report of the completed work.
func (p *Progress) Summary() string {
	p.mu.Lock()
	completed, total, failed := p.completed, p.total, p.failed
	p.mu.Unlock()

	elapsed := time.Since(p.start).Round(time.Millisecond)
	return fmt.Sprintf("rendered %d/%d swatches (%d failed) in %s",
		completed-failed, total, failed, elapsed)
}
