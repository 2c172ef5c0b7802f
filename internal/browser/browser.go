// Package browser opens pages in the kiosk machine's default browser.
package browser

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"sync"

	"github.com/abrezinsky/reviewwheel/internal/logger"
)

// Commander is an interface for executing commands (for testing)
type Commander interface {
	Start(name string, args ...string) error
}

// RealCommander executes actual commands
type RealCommander struct{}

// Start executes a command and starts it
func (RealCommander) Start(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

var defaultCommander Commander = RealCommander{}

// Open opens the specified URL in the default browser
func Open(url string) error {
	return OpenWithCommander(url, defaultCommander, runtime.GOOS)
}

// OpenWithCommander opens the URL using the specified commander and OS (for testing)
func OpenWithCommander(url string, commander Commander, goos string) error {
	switch goos {
	case "linux", "freebsd", "openbsd":
		return commander.Start("xdg-open", url)
	case "darwin":
		return commander.Start("open", url)
	case "windows":
		return commander.Start("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", goos)
	}
}

// Navigator opens external links on the kiosk itself. Each Navigate call
// returns immediately; the opener runs in its own goroutine.
type Navigator struct {
	log       logger.Logger
	commander Commander
	goos      string
	wg        sync.WaitGroup
}

// NewNavigator creates a Navigator for the current platform
func NewNavigator(log logger.Logger) *Navigator {
	return NewNavigatorWithCommander(log, defaultCommander, runtime.GOOS)
}

// NewNavigatorWithCommander creates a Navigator with an explicit commander and OS (for testing)
func NewNavigatorWithCommander(log logger.Logger, commander Commander, goos string) *Navigator {
	return &Navigator{log: log, commander: commander, goos: goos}
}

// Navigate opens rawURL. Only absolute http and https URLs are handed to the OS.
func (n *Navigator) Navigate(rawURL string) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		n.log.Warn("Refusing to open non-web URL", "url", rawURL)
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := OpenWithCommander(rawURL, n.commander, n.goos); err != nil {
			n.log.Error("Failed to open browser", "url", rawURL, "error", err)
			return
		}
		n.log.Info("Opened review page", "url", rawURL)
	}()
}

// Wait blocks until every pending open has finished
func (n *Navigator) Wait() {
	n.wg.Wait()
}
