package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hollis/peel/internal/content"
	"github.com/hollis/peel/internal/swipe"
)

// ToastMsg displays a temporary status message in the status bar.
type ToastMsg struct {
	Message  string
	Duration time.Duration
	IsError  bool
}

// Message types
type (
	// tickMsg drives periodic housekeeping such as toast expiry.
	tickMsg time.Time

	// settleTickMsg drives animation frames while a snap transition or
	// shimmer is active.
	settleTickMsg time.Time

	// scanDoneMsg carries the result of a document rescan.
	scanDoneMsg struct {
		Docs []content.Document
		Err  error
	}

	// docLoadedMsg carries a loaded document body.
	docLoadedMsg struct {
		ID   string
		Body string
		Err  error
	}

	// watchStartedMsg delivers the running file watcher.
	watchStartedMsg struct {
		Watcher *content.Watcher
	}

	// watchEventMsg signals a debounced file system change.
	watchEventMsg struct{}
)

// tickCmd schedules the next housekeeping tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// settleTick schedules the next animation frame.
func settleTick() tea.Cmd {
	return tea.Tick(swipe.TickInterval, func(t time.Time) tea.Msg {
		return settleTickMsg(t)
	})
}

// toastCmd emits a toast message.
func toastCmd(message string, duration time.Duration, isError bool) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Duration: duration, IsError: isError}
	}
}

// scanCmd rescans the document store.
func scanCmd(store *content.Store) tea.Cmd {
	return func() tea.Msg {
		docs, err := store.Rescan()
		return scanDoneMsg{Docs: docs, Err: err}
	}
}

// loadDocCmd loads one document body.
func loadDocCmd(store *content.Store, doc content.Document) tea.Cmd {
	return func() tea.Msg {
		body, err := store.Load(doc)
		return docLoadedMsg{ID: doc.ID, Body: body, Err: err}
	}
}

// startWatcherCmd brings up the file watcher.
func startWatcherCmd(root string) tea.Cmd {
	return func() tea.Msg {
		w, err := content.NewWatcher(root)
		if err != nil {
			return ToastMsg{Message: "File watching unavailable: " + err.Error(), Duration: 3 * time.Second, IsError: true}
		}
		return watchStartedMsg{Watcher: w}
	}
}

// listenWatchCmd waits for the next debounced file system event.
func listenWatchCmd(w *content.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-w.Events(); !ok {
			return nil
		}
		return watchEventMsg{}
	}
}
