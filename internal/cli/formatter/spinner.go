package formatter

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Spinner draws a one-line progress indicator on w while a blocking call
// such as a location lookup runs. It uses the watch view's dot frames and
// shows the elapsed seconds once a call takes longer than a second.
type Spinner struct {
	w       io.Writer
	message string
	frames  spinner.Spinner
	started time.Time

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// StartSpinner starts a spinner and returns the function that stops it and
// clears its line. The returned function may be called more than once.
func StartSpinner(w io.Writer, message string) func() {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Spinner{
		w:       w,
		message: message,
		frames:  spinner.Dot,
		started: time.Now(),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go s.run(ctx)
	return s.Stop
}

func (s *Spinner) run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.frames.FPS)
	defer ticker.Stop()

	for i := 0; ; i++ {
		s.draw(s.frames.Frames[i%len(s.frames.Frames)])
		select {
		case <-ctx.Done():
			fmt.Fprint(s.w, "\r\033[K")
			return
		case <-ticker.C:
		}
	}
}

func (s *Spinner) draw(frame string) {
	line := StylePurple.Render(frame) + Dim(s.message)
	if elapsed := time.Since(s.started); elapsed >= time.Second {
		line += Dim(fmt.Sprintf(" %ds", int(elapsed/time.Second)))
	}
	fmt.Fprintf(s.w, "\r  %s", line)
}

// Stop ends the animation and waits for the line to be cleared.
func (s *Spinner) Stop() {
	s.once.Do(s.cancel)
	<-s.done
}
