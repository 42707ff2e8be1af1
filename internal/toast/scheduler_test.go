package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSchedulerRunsOnce(t *testing.T) {
	clock := NewManualClock()
	s := NewScheduler(clock)
	runs := 0

	assert.True(t, s.Schedule("a", time.Second, func() { runs++ }))
	assert.False(t, s.Schedule("a", time.Second, func() { runs += 10 }), "second schedule is a no-op")
	assert.True(t, s.Pending("a"))

	clock.Advance(999 * time.Millisecond)
	assert.Equal(t, 0, runs)

	clock.Advance(time.Millisecond)
	assert.Equal(t, 1, runs)
	assert.False(t, s.Pending("a"))
	assert.Equal(t, 0, s.Len())
}

func TestSchedulerCancel(t *testing.T) {
	clock := NewManualClock()
	s := NewScheduler(clock)
	ran := false

	s.Schedule("a", time.Second, func() { ran = true })
	assert.True(t, s.Cancel("a"))
	assert.False(t, s.Cancel("a"))

	clock.Advance(time.Minute)
	assert.False(t, ran)
	assert.Equal(t, 0, clock.Pending())
}

func TestSchedulerRescheduleAfterCancel(t *testing.T) {
	clock := NewManualClock()
	s := NewScheduler(clock)
	var order []string

	s.Schedule("a", time.Second, func() { order = append(order, "first") })
	s.Cancel("a")
	s.Schedule("a", 2*time.Second, func() { order = append(order, "second") })

	clock.Advance(3 * time.Second)
	assert.Equal(t, []string{"second"}, order)
}

func TestSchedulerCallbackMayReschedule(t *testing.T) {
	clock := NewManualClock()
	s := NewScheduler(clock)
	runs := 0

	var tick func()
	tick = func() {
		runs++
		if runs < 3 {
			s.Schedule("tick", time.Second, tick)
		}
	}
	s.Schedule("tick", time.Second, tick)

	clock.Advance(10 * time.Second)
	assert.Equal(t, 3, runs)
}

func TestSchedulerCancelAll(t *testing.T) {
	clock := NewManualClock()
	s := NewScheduler(clock)
	ran := 0
	s.Schedule("a", time.Second, func() { ran++ })
	s.Schedule("b", time.Second, func() { ran++ })

	s.CancelAll()
	clock.Advance(time.Minute)

	assert.Equal(t, 0, ran)
	assert.Equal(t, 0, s.Len())
}

func TestManualClockOrdersByDeadline(t *testing.T) {
	clock := NewManualClock()
	var order []string
	clock.AfterFunc(2*time.Second, func() { order = append(order, "late") })
	clock.AfterFunc(time.Second, func() { order = append(order, "early") })
	clock.AfterFunc(time.Second, func() { order = append(order, "early-2") })

	clock.Advance(5 * time.Second)

	assert.Equal(t, []string{"early", "early-2", "late"}, order)
	assert.Equal(t, 5*time.Second, clock.Now())
}

func TestSystemClockFires(t *testing.T) {
	s := NewScheduler(nil)
	done := make(chan struct{})

	s.Schedule("a", time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled action did not run")
	}
}
