package state

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/smsportal/portal-console/internal/toast"
)

// ToastsChangedMsg carries the latest toast state into the event loop.
type ToastsChangedMsg struct {
	State toast.State
}

// toastFeed turns store notifications into bubbletea messages. The store
// notifies listeners while it holds its dispatch lock, so the listener must
// never block: the feed keeps only the newest state and the event loop
// pulls it with wait.
type toastFeed struct {
	ch        chan toast.State
	done      chan struct{}
	closeOnce sync.Once
}

func newToastFeed() *toastFeed {
	return &toastFeed{
		ch:   make(chan toast.State, 1),
		done: make(chan struct{}),
	}
}

// offer replaces any pending state with s without blocking.
func (f *toastFeed) offer(s toast.State) {
	for {
		select {
		case f.ch <- s:
			return
		default:
		}
		select {
		case <-f.ch:
		default:
		}
	}
}

// wait returns a command that delivers the next state change.
func (f *toastFeed) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-f.ch:
			return ToastsChangedMsg{State: s}
		case <-f.done:
			return nil
		}
	}
}

// close releases a pending wait. ch stays open because a dispatch already
// in flight may still offer to it.
func (f *toastFeed) close() {
	f.closeOnce.Do(func() { close(f.done) })
}
