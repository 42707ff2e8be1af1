// Package toast implements the transient notification store: a bounded,
// newest-first list of toasts advanced through open, dismissing and removed
// states by a reducer and two per-toast timers.
package toast

import (
	"errors"
	"fmt"
	"time"
)

// Variant selects how a renderer styles a toast.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
	VariantSuccess     Variant = "success"
)

// IsValid checks if the variant is known.
func (v Variant) IsValid() bool {
	switch v {
	case VariantDefault, VariantDestructive, VariantSuccess:
		return true
	default:
		return false
	}
}

// String returns the string representation of the variant.
func (v Variant) String() string {
	return string(v)
}

// ErrInvalidVariant is returned by ParseVariant for unknown names.
var ErrInvalidVariant = errors.New("invalid variant")

// ParseVariant parses a variant name. An empty name is VariantDefault.
func ParseVariant(s string) (Variant, error) {
	if s == "" {
		return VariantDefault, nil
	}
	v := Variant(s)
	if !v.IsValid() {
		return "", fmt.Errorf("%w %q (want default, destructive or success)", ErrInvalidVariant, s)
	}
	return v, nil
}

const (
	// DefaultLimit is the maximum number of toasts held at once.
	DefaultLimit = 3
	// DefaultDuration is how long a toast stays open when Props.Duration is nil.
	DefaultDuration = 5 * time.Second
	// DefaultRemoveDelay is the grace period between closing and deletion.
	DefaultRemoveDelay = 5 * time.Second
)

// Toast is a single notification record owned by a Store.
type Toast struct {
	ID          string
	Title       string
	Description string
	Variant     Variant
	// Duration is the resolved auto-dismiss delay; 0 means the toast stays
	// open until dismissed.
	Duration time.Duration
	Open     bool
	// OnOpenChange is wired by the store; calling it with false dismisses
	// the toast. Renderers call it when the user closes the element.
	OnOpenChange func(open bool)
}

// Props are the caller-supplied fields of a new toast.
type Props struct {
	Title       string
	Description string
	Variant     Variant
	// Duration overrides the store default when non-nil. A value <= 0
	// disables auto-dismiss.
	Duration *time.Duration
}

// Partial carries the fields to merge in an update. Nil fields are left
// alone. Duration is fixed when the toast is created, with its timer.
type Partial struct {
	Title       *string
	Description *string
	Variant     *Variant
}

// For returns a duration pointer for Props.Duration.
func For(d time.Duration) *time.Duration {
	return &d
}

// Ptr returns a pointer to v, for building Partial values.
func Ptr[T any](v T) *T {
	return &v
}

// apply merges p into t. Open and timers are never touched.
func (p Partial) apply(t Toast) Toast {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Variant != nil {
		t.Variant = *p.Variant
	}
	return t
}

func normalizeDuration(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	return d
}

// Handle is returned by Store.Toast and is bound to one toast id.
type Handle struct {
	ID    string
	store *Store
}

// Dismiss closes the toast.
func (h Handle) Dismiss() {
	if h.store != nil {
		h.store.Dismiss(h.ID)
	}
}

// Update merges p into the toast.
func (h Handle) Update(p Partial) {
	if h.store != nil {
		h.store.Update(h.ID, p)
	}
}
