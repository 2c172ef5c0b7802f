package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abrezinsky/reviewwheel/internal/logger"
)

// console maps single key presses to server actions
type console struct {
	out      io.Writer
	log      logger.Logger
	wheel    wheelControl
	open     func(url string) error
	wheelURL string
	staffURL string
	// newline is "\r\n" while the terminal is in raw mode
	newline string
}

func (c *console) printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if c.newline != "\n" {
		msg = strings.ReplaceAll(msg, "\n", c.newline)
	}
	fmt.Fprint(c.out, msg)
}

// printHelp displays all available keyboard shortcuts
func (c *console) printHelp() {
	c.printf("\n%s%s  Keyboard Shortcuts:%s\n", bold, green, reset)
	c.printf("    %so%s      - Open wheel page in browser\n", cyan, reset)
	c.printf("    %ss%s      - Open staff page in browser\n", cyan, reset)
	c.printf("    %sr%s      - Reset the wheel for the next customer\n", cyan, reset)
	c.printf("    %si%s      - Show current wheel state\n", cyan, reset)
	c.printf("    %sh%s      - Toggle HTTP request logging\n", cyan, reset)
	c.printf("    %sl%s      - Cycle log level (debug → info → warn → error)\n", cyan, reset)
	c.printf("    %sq%s      - Quit server\n", cyan, reset)
	c.printf("    %s?%s      - Show this help\n\n", cyan, reset)
}

// handleKey runs the action bound to key. It returns false when the server should stop.
func (c *console) handleKey(key byte) bool {
	switch strings.ToLower(string(key)) {
	case "o":
		c.openPage("wheel", c.wheelURL)
	case "s":
		c.openPage("staff", c.staffURL)
	case "r":
		snap := c.wheel.Reset(context.Background())
		c.printf("%sWheel reset, state %s%s\n", green, snap.State, reset)
	case "i":
		snap := c.wheel.Snapshot()
		if snap.Prize != nil {
			c.printf("%sState %s, prize %s%s\n", cyan, snap.State, snap.Prize.Name, reset)
		} else {
			c.printf("%sState %s%s\n", cyan, snap.State, reset)
		}
	case "h":
		if c.log.IsHTTPLoggingEnabled() {
			c.log.DisableHTTPLogging()
			c.printf("%sHTTP logging disabled%s\n", yellow, reset)
		} else {
			c.log.EnableHTTPLogging()
			c.printf("%sHTTP logging enabled%s\n", green, reset)
		}
	case "l":
		next := logger.NextLevel(c.log.GetLevel())
		c.log.SetLevel(next)
		c.printf("%sLog level: %s%s%s\n", green, yellow, strings.ToLower(next.String()), reset)
	case "q", "\x03":
		return false
	case "?":
		c.printHelp()
	}
	return true
}

func (c *console) openPage(name, url string) {
	c.printf("%sOpening %s page in browser...%s\n", cyan, name, reset)
	if err := c.open(url); err != nil {
		c.printf("%sError opening browser: %v%s\n", red, err, reset)
	}
}
