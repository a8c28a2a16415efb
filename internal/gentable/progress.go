package gentable

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Progress reports generator progress to the caller. A Build run calls
// Start once, Increment once per level-5 tile visited, then Finish.
// Adapted from the teacher's internal/tile progress bar, generalized from
// "tiles resampled" to "tiles classified".
type Progress interface {
	Start(label string, total int64)
	Increment()
	Finish()
}

// NilProgress discards all progress reporting.
type NilProgress struct{}

func (NilProgress) Start(string, int64) {}
func (NilProgress) Increment()          {}
func (NilProgress) Finish()             {}

// BarProgress renders an in-place terminal progress bar, refreshed on a
// fixed interval and safe for concurrent Increment calls.
type BarProgress struct {
	total     int64
	processed atomic.Int64
	label     string
	barWidth  int
	start     time.Time
	done      chan struct{}
	mu        sync.Mutex
}

func (p *BarProgress) Start(label string, total int64) {
	p.total = total
	p.label = label
	p.barWidth = 30
	p.start = time.Now()
	p.done = make(chan struct{})
	go p.run()
}

func (p *BarProgress) Increment() {
	p.processed.Add(1)
}

func (p *BarProgress) Finish() {
	close(p.done)
	p.draw()
	fmt.Fprint(os.Stderr, "\n")
}

func (p *BarProgress) run() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			p.draw()
		}
	}
}

func (p *BarProgress) draw() {
	p.mu.Lock()
	defer p.mu.Unlock()

	processed := p.processed.Load()
	total := p.total

	var frac float64
	if total > 0 {
		frac = float64(processed) / float64(total)
	}
	if frac > 1 {
		frac = 1
	}

	filled := int(float64(p.barWidth) * frac)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", p.barWidth-filled)

	elapsed := time.Since(p.start)
	rate := float64(0)
	if secs := elapsed.Seconds(); secs > 0 {
		rate = float64(processed) / secs
	}

	fmt.Fprintf(os.Stderr, "\r%s [%s] %3.0f%%  %d/%d tiles  %.0f/s  %s\033[K",
		p.label, bar, frac*100, processed, total, rate, formatDuration(elapsed))
}

func formatDuration(d time.Duration) string {
	d = d.Truncate(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	m := int(d.Minutes())
	s := int(d.Seconds()) - m*60
	return fmt.Sprintf("%dm%02ds", m, s)
}
