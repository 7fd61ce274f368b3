package utils

import (
	"fmt"
	"os"
	"time"
)

// Spinner initializes the process indicator.
type Spinner struct {
	stopChan chan struct{}
	// Silent suppresses the animation, for non-terminal output.
	Silent bool
}

// NewSpinner instantiates a new Spinner struct.
func NewSpinner(silent bool) *Spinner {
	return &Spinner{Silent: silent}
}

// Start starts the process indicator.
func (s *Spinner) Start(message string) {
	s.stopChan = make(chan struct{}, 1)
	if s.Silent {
		return
	}

	go func() {
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					return
				default:
					fmt.Fprintf(os.Stderr, "\r%s%s %c%s", message, SuccessColor, r, DefaultColor)
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Stop stops the process indicator.
func (s *Spinner) Stop() {
	if s.Silent {
		return
	}
	s.stopChan <- struct{}{}
}
