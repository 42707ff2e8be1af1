package notify

import (
	"time"

	"github.com/smsportal/portal-console/internal/toast"
)

// Level is the severity of a message.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelSuccess
)

// Variant maps a level to the toast variant used to show it.
func (l Level) Variant() toast.Variant {
	switch l {
	case LevelError:
		return toast.VariantDestructive
	case LevelSuccess:
		return toast.VariantSuccess
	default:
		return toast.VariantDefault
	}
}

// Message is one report raised through a ToastHandler.
type Message struct {
	Text        string
	Description string
	Level       Level
	ToastID     string
	Timestamp   time.Time
}

// ToastHandler shows messages as toasts.
type ToastHandler struct {
	store *toast.Store
}

var _ Handler = (*ToastHandler)(nil)

// NewToastHandler returns a handler raising toasts on store.
func NewToastHandler(store *toast.Store) *ToastHandler {
	return &ToastHandler{store: store}
}

func (h *ToastHandler) Error(msg string)   { h.Raise(LevelError, msg, "") }
func (h *ToastHandler) Warning(msg string) { h.Raise(LevelWarning, msg, "") }
func (h *ToastHandler) Info(msg string)    { h.Raise(LevelInfo, msg, "") }
func (h *ToastHandler) Success(msg string) { h.Raise(LevelSuccess, msg, "") }

// Raise shows a toast for msg and returns the message bound to it.
func (h *ToastHandler) Raise(level Level, msg, description string) Message {
	handle := h.store.Toast(toast.Props{
		Title:       msg,
		Description: description,
		Variant:     level.Variant(),
	})
	return Message{
		Text:        msg,
		Description: description,
		Level:       level,
		ToastID:     handle.ID,
		Timestamp:   time.Now(),
	}
}
