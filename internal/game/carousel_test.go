package game

import (
	"fmt"
	"testing"
)

func testReasons(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("reason %d", i+1)
	}
	return out
}

func TestCarouselStartShowsFirstAndPreAdvances(t *testing.T) {
	c := newCarousel(testReasons(15), "final")

	if c.active() || c.exhausted() {
		t.Fatalf("fresh carousel should be idle")
	}

	c.start()
	if !c.active() {
		t.Fatalf("start should activate")
	}
	if c.message != "reason 1" {
		t.Errorf("message: got %q, want %q", c.message, "reason 1")
	}
	if c.counter != "1 / 15" {
		t.Errorf("counter: got %q, want %q", c.counter, "1 / 15")
	}
	if c.index != 1 {
		t.Errorf("index: got %d, want 1", c.index)
	}
}

func TestCarouselAdvanceSequence(t *testing.T) {
	reasons := testReasons(15)
	c := newCarousel(reasons, "final")
	c.start()

	// After the k-th advance the panel shows reasons[k] with a 1-based
	// counter of k+1.
	for k := 1; k < len(reasons); k++ {
		c.advance()
		if c.message != reasons[k] {
			t.Fatalf("advance %d: message %q, want %q", k, c.message, reasons[k])
		}
		want := fmt.Sprintf("%d / 15", k+1)
		if c.counter != want {
			t.Fatalf("advance %d: counter %q, want %q", k, c.counter, want)
		}
	}

	if c.label != terminalLabel {
		t.Errorf("after last message the control should carry the terminal label, got %q", c.label)
	}
	if c.exhausted() {
		t.Errorf("not yet exhausted before the final press")
	}
}

func TestCarouselExhaustion(t *testing.T) {
	reasons := testReasons(15)
	c := newCarousel(reasons, "final")
	c.start()

	// list length + 1 advances from a fresh start: 14 content advances plus
	// the terminal press.
	for i := 0; i < len(reasons); i++ {
		c.advance()
	}

	if !c.exhausted() {
		t.Fatalf("expected exhausted state")
	}
	if !c.overlay {
		t.Fatalf("overlay should be revealed")
	}
	last := c.message

	// Further presses have no defined effect: state frozen.
	c.advance()
	c.advance()
	if !c.exhausted() || c.message != last || !c.overlay {
		t.Errorf("exhausted carousel must not respond further")
	}
}

func TestCarouselAdvanceBeforeStart(t *testing.T) {
	c := newCarousel(testReasons(3), "final")
	c.advance()
	if c.active() || c.exhausted() || c.message != "" {
		t.Errorf("advance in idle must be a no-op")
	}
}

func TestCarouselStartTwice(t *testing.T) {
	c := newCarousel(testReasons(3), "final")
	c.start()
	c.advance()
	msg, idx := c.message, c.index

	c.start()
	if c.message != msg || c.index != idx {
		t.Errorf("second start must not rewind")
	}
}

func TestCarouselSingleReason(t *testing.T) {
	c := newCarousel(testReasons(1), "final")
	c.start()
	if c.label != terminalLabel {
		t.Errorf("single-entry list should relabel immediately, got %q", c.label)
	}
	if c.counter != "1 / 1" {
		t.Errorf("counter: got %q, want %q", c.counter, "1 / 1")
	}
	c.advance()
	if !c.exhausted() || !c.overlay {
		t.Errorf("one press after a single reason should exhaust")
	}
}
