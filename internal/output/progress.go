package output

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// Progress is a single rewritten terminal line tracking completed tasks.
// Outcomes land in arbitrary completion order, so all state changes go
// through the mutex.
type Progress struct {
	mu      sync.Mutex
	total   int
	done    int
	start   time.Time
	enabled bool
}

// NewProgress is a noop when color is off or stdout is not a terminal; the
// \r rewrite would garble piped output.
func NewProgress(total int) *Progress {
	return &Progress{
		total:   total,
		start:   time.Now(),
		enabled: colorEnabled && term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (p *Progress) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	if p.enabled {
		p.draw()
	}
}

// Finish redraws one last time and moves past the progress line.
func (p *Progress) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	p.draw()
	fmt.Println()
}

func (p *Progress) draw() {
	width := 30
	if termWidth, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && termWidth < 60 {
		width = max(termWidth-30, 10)
	}
	elapsed := time.Since(p.start).Seconds()
	rate := "0.0 files/s"
	if elapsed > 0 {
		rate = fmt.Sprintf("%.1f files/s", float64(p.done)/elapsed)
	}
	fmt.Printf("\r\033[K  %s %d/%d %s %s",
		progressBar(p.done, p.total, width),
		p.done, p.total,
		StyleSymbols["bullet"],
		FDebug(fmt.Sprintf("[%s @ %s]", time.Since(p.start).Round(time.Second), rate)))
}

func progressBar(current, total, width int) string {
	if total <= 0 {
		total = 1
	}
	percent := float64(current) / float64(total)
	filled := max(0, min(int(percent*float64(width)), width))
	bar := StyleSymbols["bullet"]
	bar += strings.Repeat(StyleSymbols["hline"], filled)
	if filled < width {
		bar += strings.Repeat(" ", width-filled)
	}
	bar += StyleSymbols["bullet"]
	return FDebug(fmt.Sprintf("%s %.1f%%", bar, percent*100))
}
