package input

import (
	"io"

	"github.com/san-kum/lifelab/internal/life"
)

// Listen reads raw terminal bytes from r and delivers commands on out in
// input order, FIFO. Mouse clicks outside the width x height board are
// discarded. It returns after sending Quit and sends nothing further; a
// read failure is reported as Quit so the engine still terminates. Meant
// to run on its own goroutine while the engine polls the channel without
// blocking.
func Listen(r io.Reader, out chan<- life.Command, width, height int) {
	p := NewParser(width, height)
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			for _, cmd := range p.Feed(buf[:n]) {
				out <- cmd
				if cmd.Kind == life.Quit {
					return
				}
			}
		}
		if err != nil {
			out <- life.QuitCommand()
			return
		}
	}
}
