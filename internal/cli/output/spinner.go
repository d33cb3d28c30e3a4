package output

import (
	"fmt"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows an animated progress indicator for long operations.
// Outside a terminal it stays silent until the finishing status line.
type Spinner struct {
	r   *Renderer
	msg string

	mu     sync.Mutex
	active bool
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewSpinner creates a spinner with the given in-progress message.
// Call Start to begin animating and Success or Fail to finish.
func (r *Renderer) NewSpinner(msg string) *Spinner {
	return &Spinner{r: r, msg: msg}
}

// Start begins the animation. No-op outside a terminal or when already
// running.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active || !s.r.IsTTY() {
		return
	}
	s.active = true
	s.done = make(chan struct{})
	s.wg.Add(1)
	go s.spin()
}

func (s *Spinner) spin() {
	defer s.wg.Done()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-s.done:
			// Clear the animation line.
			fmt.Fprint(s.r.errOut, "\r\033[K")
			return
		case <-ticker.C:
			fmt.Fprintf(s.r.errOut, "\r%s %s", spinnerFrames[frame%len(spinnerFrames)], s.msg)
			frame++
		}
	}
}

// Success stops the spinner and prints a success line.
func (s *Spinner) Success(msg string) {
	s.stop()
	s.r.Success(msg)
}

// Fail stops the spinner and prints a failure line.
func (s *Spinner) Fail(msg string) {
	s.stop()
	s.r.Println(s.r.styles.StatusFailed.String() + " " + msg)
}

func (s *Spinner) stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	close(s.done)
	s.mu.Unlock()
	s.wg.Wait()
}
