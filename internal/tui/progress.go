// Copyright 2025
// SPDX-License-Identifier: Apache-2.0

// Package tui renders transfer and hashing progress on the terminal:
// a bounded byte bar when the total size is known, a bouncing-bar spinner
// when it is not. Output degrades to silence on non-interactive stdout.
package tui

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"
)

// spinnerFrames is the bouncing-bar animation cycle.
var spinnerFrames = [...]string{
	"[    ]", "[=   ]", "[==  ]", "[=== ]", "[====]", "[ ===]", "[  ==]", "[   =]",
	"[    ]", "[   =]", "[  ==]", "[ ===]", "[====]", "[=== ]", "[==  ]", "[=   ]",
}

// Interactive reports whether stdout is a terminal.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// NewByteBar starts a bounded progress bar over total bytes.
func NewByteBar(total int64) *pb.ProgressBar {
	bar := pb.Full.Start64(total)
	bar.Set(pb.Bytes, true)
	return bar
}

// Spinner is an unbounded progress indicator for work of unknown length.
// It animates on its own goroutine; the owner updates the message and
// calls Stop exactly once.
type Spinner struct {
	mu          sync.Mutex
	msg         string
	done        chan struct{}
	stopped     bool
	interactive bool
}

// NewSpinner starts a spinner with an initial message.
func NewSpinner(msg string) *Spinner {
	s := &Spinner{
		msg:         msg,
		done:        make(chan struct{}),
		interactive: Interactive(),
	}
	if s.interactive {
		go s.loop()
	}
	return s
}

// SetMessage replaces the text shown next to the spinner.
func (s *Spinner) SetMessage(msg string) {
	s.mu.Lock()
	s.msg = msg
	s.mu.Unlock()
}

// Stop halts the animation and clears the spinner line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.done)
	if s.interactive {
		fmt.Fprint(os.Stdout, "\r\x1b[K")
	}
}

func (s *Spinner) loop() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	frame := 0
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			msg := s.msg
			s.mu.Unlock()
			fmt.Fprintf(os.Stdout, "\r\x1b[K%s %s", spinnerFrames[frame%len(spinnerFrames)], msg)
			frame++
		}
	}
}
