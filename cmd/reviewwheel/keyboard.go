package main

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// rawTerminal is stdin switched to raw mode. Restore is safe to call more than once.
type rawTerminal struct {
	restore func()
	once    sync.Once
}

// makeRaw puts stdin into raw mode. It returns nil when stdin is not a terminal.
func makeRaw() *rawTerminal {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil
	}
	return &rawTerminal{restore: func() { term.Restore(fd, oldState) }}
}

// Restore puts the terminal back the way it was
func (r *rawTerminal) Restore() {
	if r == nil {
		return
	}
	r.once.Do(r.restore)
}

// listenForKeyboard reads single key presses from stdin. On a quit key it
// restores the terminal and calls stop.
func listenForKeyboard(raw *rawTerminal, c *console, stop func()) {
	c.newline = "\r\n"
	quit := readKeys(os.Stdin, c)

	raw.Restore()
	c.newline = "\n"
	if quit {
		stop()
	}
}

// readKeys feeds every byte from r to the console. It reports whether a quit key ended the loop.
func readKeys(r io.Reader, c *console) bool {
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if err != nil {
			return false
		}
		if n > 0 && !c.handleKey(buf[0]) {
			return true
		}
	}
}
