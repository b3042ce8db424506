package game

import "fmt"

const (
	advanceLabel  = "Another reason <3"
	terminalLabel = "One last thing..."
)

type carouselState uint8

const (
	carouselIdle carouselState = iota
	carouselActive
	carouselExhausted
)

// carousel walks a fixed ordered list of messages one click at a time and
// reveals a final overlay once the list is spent. There is no way back to
// idle; replay is a non-goal.
type carousel struct {
	reasons []string
	final   string

	state carouselState
	index int

	message string
	counter string
	label   string
	overlay bool
}

func newCarousel(reasons []string, final string) *carousel {
	return &carousel{reasons: reasons, final: final, label: advanceLabel}
}

// start reveals the first message and pre-advances the index, so the counter
// begins at "1 / N" rather than an empty panel.
func (c *carousel) start() {
	if c.state != carouselIdle || len(c.reasons) == 0 {
		return
	}
	c.state = carouselActive
	c.show(0)
	c.index = 1
	if c.index == len(c.reasons) {
		c.label = terminalLabel
	}
}

// advance shows the next message. Once the index has run past the list the
// control is relabeled; the press after that exhausts the carousel and
// reveals the overlay. Further presses do nothing.
func (c *carousel) advance() {
	if c.state != carouselActive {
		return
	}
	if c.index < len(c.reasons) {
		c.show(c.index)
		c.index++
		if c.index == len(c.reasons) {
			c.label = terminalLabel
		}
		return
	}
	c.state = carouselExhausted
	c.overlay = true
}

func (c *carousel) show(i int) {
	c.message = c.reasons[i]
	c.counter = fmt.Sprintf("%d / %d", i+1, len(c.reasons))
}

func (c *carousel) active() bool    { return c.state == carouselActive }
func (c *carousel) exhausted() bool { return c.state == carouselExhausted }
