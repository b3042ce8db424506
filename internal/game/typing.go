package game

import "time"

// typingEffect reveals a fixed string one rune per delay tick. It terminates
// at the full string; there is no loop or restart.
type typingEffect struct {
	runes  []rune
	delay  time.Duration
	start  time.Time
	cursor int
}

func newTypingEffect(text string, delay time.Duration) *typingEffect {
	return &typingEffect{runes: []rune(text), delay: delay}
}

// update advances the cursor to match elapsed time since the first call,
// clamped to the string length. The cursor never moves backwards.
func (t *typingEffect) update(now time.Time) {
	if t.start.IsZero() {
		t.start = now
		return
	}
	if t.delay <= 0 {
		t.cursor = len(t.runes)
		return
	}
	n := int(now.Sub(t.start) / t.delay)
	if n > len(t.runes) {
		n = len(t.runes)
	}
	if n > t.cursor {
		t.cursor = n
	}
}

// text returns the revealed prefix.
func (t *typingEffect) text() string {
	return string(t.runes[:t.cursor])
}

func (t *typingEffect) done() bool {
	return t.cursor == len(t.runes)
}
