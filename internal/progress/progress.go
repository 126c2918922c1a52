// Package progress renders a single-line activity indicator while a scan
// is running. The indicator only animates when the writer is a terminal,
// so redirected or piped stderr stays clean.
package progress

import (
	"fmt"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

var frames = []string{"|", "/", "-", "\\"}

const frameDelay = 100 * time.Millisecond

// Start begins the indicator on f and returns a stop function that halts
// the animation and clears the line. When f is not a terminal, Start does
// nothing and the returned function is a no-op. The stop function is safe
// to call exactly once.
func Start(f *os.File, message string) func() {
	if !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(frameDelay)
		defer ticker.Stop()

		frame := 0
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Fprintf(f, "\r%s %s", frames[frame%len(frames)], message)
				frame++
			}
		}
	}()

	return func() {
		close(done)
		wg.Wait()
		fmt.Fprint(f, "\r\033[2K")
	}
}
