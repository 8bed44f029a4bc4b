package game_test

import (
	"testing"
	"time"

	"classic-snake/game"
)

func TestClockDue(t *testing.T) {
	c := game.NewClock(80 * time.Millisecond)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if c.Due(base) {
		t.Fatal("first call only arms the clock")
	}
	if c.Due(base.Add(79 * time.Millisecond)) {
		t.Fatal("due before a full interval elapsed")
	}
	if !c.Due(base.Add(80 * time.Millisecond)) {
		t.Fatal("not due after a full interval")
	}
	if c.Due(base.Add(100 * time.Millisecond)) {
		t.Fatal("due twice within one interval")
	}
	if !c.Due(base.Add(200 * time.Millisecond)) {
		t.Fatal("not due after the second interval")
	}
}

func TestClockStopIsPermanent(t *testing.T) {
	c := game.NewClock(10 * time.Millisecond)
	base := time.Now()
	c.Due(base)
	c.Stop()

	for i := 1; i <= 10; i++ {
		if c.Due(base.Add(time.Duration(i) * time.Second)) {
			t.Fatalf("stopped clock reported due after %ds", i)
		}
	}
	if !c.Stopped() {
		t.Fatal("Stopped() = false after Stop")
	}
}
