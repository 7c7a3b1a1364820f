// Package input translates raw terminal bytes into simulation commands.
// The listener owns the input stream; the engine only ever sees intents.
package input

import (
	"github.com/san-kum/lifelab/internal/life"
)

const (
	keyCtrlC = 0x03
	keyEsc   = 0x1b
)

// Parser is an incremental decoder for the raw-mode byte stream: plain key
// presses plus X10 and SGR mouse reports. Sequences split across reads are
// carried over to the next Feed. Mouse reports outside the board bounds
// are dropped, so every ToggleCell it emits is within [1,W]x[1,H]. After
// producing Quit the parser is done and ignores everything further.
type Parser struct {
	buf    []byte
	width  int
	height int
	done   bool
}

// NewParser decodes input for a width x height board. Clicks landing
// outside it produce no command.
func NewParser(width, height int) *Parser {
	return &Parser{width: width, height: height}
}

// Feed consumes raw bytes and returns the commands they complete, in input
// order. A Quit command is always the last command returned.
func (p *Parser) Feed(data []byte) []life.Command {
	if p.done {
		return nil
	}
	p.buf = append(p.buf, data...)

	var cmds []life.Command
	for len(p.buf) > 0 {
		cmd, n, ok := p.next()
		if n == 0 {
			break // incomplete sequence, wait for more bytes
		}
		p.buf = p.buf[n:]
		if !ok {
			continue
		}
		cmds = append(cmds, cmd)
		if cmd.Kind == life.Quit {
			p.done = true
			p.buf = nil
			break
		}
	}
	return cmds
}

// next decodes one token from the front of the buffer. It returns the
// number of bytes consumed (0 if the buffer holds an incomplete sequence)
// and whether a command was produced.
func (p *Parser) next() (cmd life.Command, n int, ok bool) {
	b := p.buf[0]
	switch {
	case b == 'q' || b == 'Q' || b == keyCtrlC:
		return life.QuitCommand(), 1, true
	case b == ' ':
		return life.TogglePlaybackCommand(), 1, true
	case b == keyEsc:
		return p.escape()
	default:
		return life.Command{}, 1, false
	}
}

func (p *Parser) escape() (life.Command, int, bool) {
	// ESC at the end of the buffer is ambiguous: the quit key, or the
	// first byte of a sequence a read boundary split. Hold it until the
	// next byte decides.
	if len(p.buf) < 2 {
		return life.Command{}, 0, false
	}
	if p.buf[1] != '[' {
		return life.QuitCommand(), 1, true
	}
	if len(p.buf) < 3 {
		return life.Command{}, 0, false
	}
	switch p.buf[2] {
	case '<':
		return p.sgrMouse()
	case 'M':
		return p.x10Mouse()
	default:
		// Some other CSI sequence (arrows etc.): skip to its final byte.
		for i := 2; i < len(p.buf); i++ {
			if p.buf[i] >= 0x40 && p.buf[i] <= 0x7e {
				return life.Command{}, i + 1, false
			}
		}
		return life.Command{}, 0, false
	}
}

// sgrMouse decodes ESC [ < Cb ; Cx ; Cy (M|m). Press and drag of a plain
// button toggle the cell under the pointer; release and wheel are ignored.
func (p *Parser) sgrMouse() (life.Command, int, bool) {
	params := [3]int{}
	idx := 0
	i := 3
	for ; i < len(p.buf); i++ {
		b := p.buf[i]
		switch {
		case b >= '0' && b <= '9':
			params[idx] = params[idx]*10 + int(b-'0')
		case b == ';':
			idx++
			if idx > 2 {
				return life.Command{}, i + 1, false
			}
		case b == 'M' || b == 'm':
			cb, x, y := params[0], params[1], params[2]
			if b == 'm' || cb&64 != 0 { // release or wheel
				return life.Command{}, i + 1, false
			}
			if cb&3 == 3 { // motion with no button
				return life.Command{}, i + 1, false
			}
			if !p.onBoard(x, y) {
				return life.Command{}, i + 1, false
			}
			return life.ToggleCellCommand(x, y), i + 1, true
		default:
			return life.Command{}, i + 1, false
		}
	}
	return life.Command{}, 0, false
}

// x10Mouse decodes ESC [ M Cb Cx Cy with all three bytes offset by 32.
func (p *Parser) x10Mouse() (life.Command, int, bool) {
	if len(p.buf) < 6 {
		return life.Command{}, 0, false
	}
	cb := int(p.buf[3]) - 32
	x := int(p.buf[4]) - 32
	y := int(p.buf[5]) - 32
	if cb&64 != 0 || cb&3 == 3 { // wheel, release, or bare motion
		return life.Command{}, 6, false
	}
	if !p.onBoard(x, y) {
		return life.Command{}, 6, false
	}
	return life.ToggleCellCommand(x, y), 6, true
}

// onBoard reports whether a 1-based terminal coordinate lands on the
// board. The board can be smaller than the terminal.
func (p *Parser) onBoard(x, y int) bool {
	return x >= 1 && x <= p.width && y >= 1 && y <= p.height
}
