// Package progress reports planning progress to the terminal while a
// job's operations are computed. Updates are throttled so a fast job
// doesn't flood the terminal and a slow one still shows signs of life.
package progress

import (
	"fmt"
	"io"
	"time"
)

// Reporter tracks how many planning units (Z levels, operations) have
// completed and prints a throttled status line for each update.
type Reporter struct {
	total      int
	done       int
	out        io.Writer
	startTime  time.Time
	lastUpdate time.Time

	// now is swappable for tests.
	now func() time.Time
}

// NewReporter creates a reporter for total planning units writing to out.
// A zero total displays progress without a percentage.
func NewReporter(total int, out io.Writer) *Reporter {
	r := &Reporter{total: total, out: out, now: time.Now}
	r.startTime = r.now()
	r.lastUpdate = r.startTime
	return r
}

// Update records that done units have completed and prints a status line
// if 2 seconds have elapsed since the last print or done differs from the
// value passed in the previous call.
func (r *Reporter) Update(done int) {
	prev := r.done
	r.done = done
	now := r.now()

	shouldUpdate := now.Sub(r.lastUpdate) >= 2*time.Second || done != prev
	if !shouldUpdate {
		return
	}
	r.lastUpdate = now

	if r.total > 0 {
		percent := float64(done) / float64(r.total) * 100
		fmt.Fprintf(r.out, "\rPlanned: %d/%d levels (%.1f%%)    ", done, r.total, percent)
	} else {
		elapsed := now.Sub(r.startTime)
		fmt.Fprintf(r.out, "\rPlanned: %d levels (%.1fs elapsed)    ", done, elapsed.Seconds())
	}
}

// Finish prints the final summary line, terminated with a newline.
func (r *Reporter) Finish() {
	if r.done == 0 {
		return
	}
	elapsed := r.now().Sub(r.startTime)
	fmt.Fprintf(r.out, "\rPlanned: %d levels in %.1fs\n", r.done, elapsed.Seconds())
}
