// Package render writes cell diffs to a terminal as cursor-addressed
// single-character updates. The cost of a repaint is proportional to the
// number of changed cells, never to the grid size.
package render

import (
	"bufio"
	"io"

	"github.com/san-kum/lifelab/internal/life"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiCursorPos = []byte("\x1b[") // followed by row;colH
	csiClear     = []byte("\x1b[2J\x1b[H")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")

	// Press/release + button-drag reporting, SGR extended coordinates.
	csiMouseOn  = []byte("\x1b[?1000h\x1b[?1002h\x1b[?1006h")
	csiMouseOff = []byte("\x1b[?1006l\x1b[?1002l\x1b[?1000l")
)

// Glyphs maps the two cell states to the characters drawn for them.
type Glyphs struct {
	Alive byte
	Dead  byte
}

// DefaultGlyphs matches the classic 'o' on blank rendering.
var DefaultGlyphs = Glyphs{Alive: 'o', Dead: ' '}

// ANSI renders cell updates onto a single output sink. Writes are buffered
// and flushed once per Apply batch.
type ANSI struct {
	w      *bufio.Writer
	glyphs Glyphs
}

func NewANSI(w io.Writer, glyphs Glyphs) *ANSI {
	if glyphs.Alive == 0 {
		glyphs = DefaultGlyphs
	}
	return &ANSI{w: bufio.NewWriter(w), glyphs: glyphs}
}

// Apply writes one cursor move plus one glyph per update, then flushes.
func (r *ANSI) Apply(ups []life.CellUpdate) error {
	for _, u := range ups {
		r.w.Write(csiCursorPos)
		writeInt(r.w, u.Y)
		r.w.WriteByte(';')
		writeInt(r.w, u.X)
		r.w.WriteByte('H')
		if u.State == life.Alive {
			r.w.WriteByte(r.glyphs.Alive)
		} else {
			r.w.WriteByte(r.glyphs.Dead)
		}
	}
	return r.w.Flush()
}

// EnterScreen switches to the alternate screen, clears it, hides the
// cursor, and enables mouse reporting.
func (r *ANSI) EnterScreen() error {
	r.w.Write(csiAltScreenEnter)
	r.w.Write(csiClear)
	r.w.Write(csiCursorHide)
	r.w.Write(csiMouseOn)
	return r.w.Flush()
}

// ExitScreen restores the main screen and the cursor. Safe to call on
// error paths; it is the counterpart of EnterScreen.
func (r *ANSI) ExitScreen() error {
	r.w.Write(csiMouseOff)
	r.w.Write(csiCursorShow)
	r.w.Write(csiAltScreenExit)
	return r.w.Flush()
}

// writeInt writes a non-negative integer without allocation. Terminal
// coordinates rarely exceed three digits.
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [8]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}
