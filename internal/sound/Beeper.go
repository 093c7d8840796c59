// Package sound plays audio cues through the terminal bell. The bell is
// the only audio device a plain terminal offers; when the output is not
// a terminal the beeper stays silent instead of failing.
package sound

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const bell = "\a"

// Beeper writes bell characters for game events. Toggle tracks the
// player's preference; an unavailable output keeps the beeper silent
// regardless of it.
type Beeper struct {
	out       io.Writer
	available bool
	enabled   bool
}

// NewBeeper probes out for terminal-ness and starts enabled when the
// probe succeeds. Non-file writers count as available, which keeps the
// beeper testable against a buffer.
func NewBeeper(out io.Writer) *Beeper {
	b := &Beeper{out: out, available: true}
	if f, ok := out.(*os.File); ok {
		b.available = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	b.enabled = b.available
	return b
}

// Available reports whether the output can ring a bell at all.
func (b *Beeper) Available() bool {
	return b.available
}

// Enabled reports whether cues will actually sound.
func (b *Beeper) Enabled() bool {
	return b.enabled && b.available
}

// Toggle flips the sound preference and reports the effective state.
func (b *Beeper) Toggle() bool {
	b.enabled = !b.enabled
	return b.Enabled()
}

// SetEnabled forces the preference, used by the --no-sound flag.
func (b *Beeper) SetEnabled(on bool) {
	b.enabled = on
}

// Eat sounds the food-eaten cue.
func (b *Beeper) Eat() {
	b.ring(1)
}

// GameOver sounds the death cue.
func (b *Beeper) GameOver() {
	b.ring(2)
}

// ring writes n bell characters. Write errors are ignored; a lost beep
// must never interrupt the game.
func (b *Beeper) ring(n int) {
	if !b.Enabled() {
		return
	}
	io.WriteString(b.out, strings.Repeat(bell, n))
}
