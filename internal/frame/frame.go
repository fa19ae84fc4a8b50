// Package frame coalesces redraw requests onto display frame boundaries.
package frame

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const DefaultFPS = 60

// Msg is delivered when a scheduled frame is due.
type Msg struct {
	id uint64
	At time.Time
}

// Scheduler holds at most one pending redraw. Requesting a new frame cancels
// the previous request, so the last scheduled redraw wins.
type Scheduler struct {
	interval time.Duration
	next     uint64
	pending  uint64 // 0 when nothing is scheduled
}

func New(fps int) Scheduler {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return Scheduler{interval: time.Second / time.Duration(fps)}
}

func (s Scheduler) Interval() time.Duration { return s.interval }

// Pending reports whether a redraw is scheduled.
func (s Scheduler) Pending() bool { return s.pending != 0 }

// Request cancels any pending redraw and schedules a new one for the next
// frame boundary. Requests within one frame all land on the same boundary.
func (s *Scheduler) Request() tea.Cmd {
	s.Cancel()
	s.next++
	id := s.next
	s.pending = id
	return tea.Every(s.interval, func(t time.Time) tea.Msg {
		return Msg{id: id, At: t}
	})
}

func (s *Scheduler) Cancel() { s.pending = 0 }

// Accept reports whether m is the pending frame and clears it. Frames from
// cancelled requests are rejected.
func (s *Scheduler) Accept(m Msg) bool {
	if s.pending == 0 || m.id != s.pending {
		return false
	}
	s.pending = 0
	return true
}
