package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(id string, open bool) Toast {
	return Toast{ID: id, Title: "t" + id, Open: open}
}

func TestReduceAddPrependsAndTruncates(t *testing.T) {
	state := State{}
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		state = Reduce(state, Action{Type: ActionAdd, Toast: plain(id, true)})
		require.LessOrEqual(t, len(state.Toasts), DefaultLimit)
	}

	ids := []string{}
	for _, toast := range state.Toasts {
		ids = append(ids, toast.ID)
	}
	assert.Equal(t, []string{"5", "4", "3"}, ids)
}

func TestReduceAddDropsOpenToastsPastLimit(t *testing.T) {
	state := State{Toasts: []Toast{plain("3", true), plain("2", true), plain("1", true)}}

	next := reduce(state, Action{Type: ActionAdd, Toast: plain("4", true)}, 3)

	require.Len(t, next.Toasts, 3)
	assert.Equal(t, "4", next.Toasts[0].ID)
	assert.Equal(t, "2", next.Toasts[2].ID)
}

func TestReduceUpdateMergesWithoutTouchingOpen(t *testing.T) {
	state := State{Toasts: []Toast{plain("1", false), plain("2", true)}}
	state.Toasts[0].Duration = time.Second

	next := Reduce(state, Action{
		Type:    ActionUpdate,
		ToastID: "1",
		Patch: Partial{
			Title:   Ptr("renamed"),
			Variant: Ptr(VariantDestructive),
		},
	})

	assert.Equal(t, "renamed", next.Toasts[0].Title)
	assert.Equal(t, VariantDestructive, next.Toasts[0].Variant)
	assert.Equal(t, time.Second, next.Toasts[0].Duration, "duration is fixed at creation")
	assert.False(t, next.Toasts[0].Open)
	assert.Empty(t, next.Toasts[0].Description, "description untouched")
	assert.Equal(t, "t2", next.Toasts[1].Title)
	assert.Equal(t, "t1", state.Toasts[0].Title, "input state must not be mutated")
}

func TestReduceDismiss(t *testing.T) {
	state := State{Toasts: []Toast{plain("1", true), plain("2", true)}}

	one := Reduce(state, Action{Type: ActionDismiss, ToastID: "2"})
	assert.True(t, one.Toasts[0].Open)
	assert.False(t, one.Toasts[1].Open)
	assert.True(t, state.Toasts[1].Open, "input state must not be mutated")

	all := Reduce(state, Action{Type: ActionDismiss})
	for _, toast := range all.Toasts {
		assert.False(t, toast.Open)
	}

	missing := Reduce(state, Action{Type: ActionDismiss, ToastID: "99"})
	assert.Equal(t, state, missing)
}

func TestReduceRemove(t *testing.T) {
	state := State{Toasts: []Toast{plain("1", false), plain("2", true)}}

	one := Reduce(state, Action{Type: ActionRemove, ToastID: "1"})
	require.Len(t, one.Toasts, 1)
	assert.Equal(t, "2", one.Toasts[0].ID)

	all := Reduce(state, Action{Type: ActionRemove})
	assert.Empty(t, all.Toasts)
	assert.Len(t, state.Toasts, 2)
}

func TestReduceUnknownActionIsNoop(t *testing.T) {
	state := State{Toasts: []Toast{plain("1", true), plain("2", false)}}

	next := Reduce(state, Action{Type: "SHUFFLE_TOASTS", ToastID: "1"})

	assert.Equal(t, state, next)
}
