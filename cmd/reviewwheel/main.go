package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/abrezinsky/reviewwheel/internal/app"
	"github.com/abrezinsky/reviewwheel/internal/auth"
	"github.com/abrezinsky/reviewwheel/internal/browser"
	"github.com/abrezinsky/reviewwheel/internal/config"
	"github.com/abrezinsky/reviewwheel/internal/logger"
	"github.com/abrezinsky/reviewwheel/internal/models"
	"github.com/abrezinsky/reviewwheel/web"
)

// ANSI escape codes
const (
	clearLine = "\033[2K"
	reset     = "\033[0m"
	yellow    = "\033[33m"
	red       = "\033[31m"
	green     = "\033[32m"
	cyan      = "\033[36m"
	bold      = "\033[1m"
)

var (
	version = "dev"
)

// showBanner prints the logo, optionally with a short spinning pointer underneath
func showBanner(animate bool) {
	width := 52
	border := strings.Repeat("═", width)

	logo := []string{
		"   ___          _            __      ___           _ ",
		"  | _ \\_____ _(_)_____ __ __ \\ \\    / / |_  ___ ___| |",
		"  |   / -_) V / / -_) V  V /  \\ \\/\\/ /| ' \\/ -_) -_) |",
		"  |_|_\\___|\\_/|_\\___|\\_/\\_/    \\_/\\_/ |_||_\\___\\___|_|",
	}

	fmt.Printf("\n  %s╔%s╗%s\n", cyan, border, reset)
	for _, line := range logo {
		if n := len([]rune(line)); n < width {
			line += strings.Repeat(" ", width-n)
		}
		fmt.Printf("  %s║%s%s%s║%s\n", cyan, yellow, line, cyan, reset)
	}
	fmt.Printf("  %s╚%s╝%s\n", cyan, border, reset)

	if !animate {
		fmt.Print("\n")
		return
	}

	frames := []string{"◐", "◓", "◑", "◒"}
	for i := 0; i < 16; i++ {
		fmt.Printf("%s  %s%s spinning up...%s\r", clearLine, green, frames[i%len(frames)], reset)
		time.Sleep(60 * time.Millisecond)
	}
	fmt.Printf("%s\n", clearLine)
}

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatal("Failed to read .env:", err)
	}
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal(err)
	}

	var corsOrigins string
	flag.IntVar(&cfg.Port, "port", cfg.Port, "HTTP server port")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	flag.StringVar(&cfg.PrizesPath, "prizes", cfg.PrizesPath, "Prize table YAML file (built-in table if not set)")
	flag.StringVar(&cfg.ReviewURL, "review-url", cfg.ReviewURL, "Review page opened when the coupon is unlocked")
	flag.DurationVar(&cfg.SpinDuration, "spin-duration", cfg.SpinDuration, "How long the wheel spins")
	flag.StringVar(&cfg.Navigate, "navigate", cfg.Navigate, "Where the review page opens: browser or client")
	flag.StringVar(&cfg.StaffPassword, "staffpw", cfg.StaffPassword, "Staff password (auto-generated if not set)")
	flag.StringVar(&corsOrigins, "cors-origins", strings.Join(cfg.CORSOrigins, ","), "Comma separated allowed CORS origins")
	flag.StringVar(&cfg.LogLevel, "loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.BoolVar(&cfg.Kiosk, "kiosk", false, "Open the wheel page in the local browser on start")
	flag.BoolVar(&cfg.NoKeyboard, "nokeyboard", false, "Disable keyboard shortcuts")
	noAnimate := flag.Bool("noanimate", false, "Show logo only, skip animation")
	showVersion := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `ReviewWheel - review prize wheel for the counter tablet

Usage:
  reviewwheel [options]

Options:
  -port int          HTTP server port (default %d)
  -db string         SQLite database path (default %q)
  -prizes string     Prize table YAML file (built-in table if not set)
  -review-url str    Review page opened when the coupon is unlocked
  -spin-duration d   How long the wheel spins (default %s)
  -navigate str      Where the review page opens: browser or client (default "browser")
  -staffpw str       Staff password (auto-generated if not set)
  -cors-origins str  Comma separated allowed CORS origins (default "*")
  -loglevel str      Log level: debug, info, warn, error (default "info")
  -kiosk             Open the wheel page in the local browser on start
  -noanimate         Show logo only, skip animation
  -nokeyboard        Disable keyboard shortcuts
  -version           Show version and exit
  -help              Show this help message

Every option can also be set with a REVIEWWHEEL_* environment variable
or in a .env file in the working directory.

Keyboard Shortcuts (when enabled):
  o              Open wheel page in browser
  s              Open staff page in browser
  r              Reset the wheel for the next customer
  i              Show current wheel state
  h              Toggle HTTP request logging
  l              Cycle log level (debug → info → warn → error)
  q              Quit server
  ?              Show keyboard help

Examples:
  reviewwheel                                  # Run on port %d
  reviewwheel -prizes prizes.yaml              # Use a custom prize table
  reviewwheel -navigate client                 # Open the review page on the tablet
  reviewwheel -staffpw latte-mocha-scone-42    # Use a specific staff password

`, config.DefaultPort, config.DefaultDBPath, config.DefaultSpinDuration, config.DefaultPort)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("reviewwheel %s\n", version)
		os.Exit(0)
	}

	cfg.CORSOrigins = config.SplitList(corsOrigins)
	if err := cfg.LoadPrizeTable(); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if err := web.Check(); err != nil {
		log.Fatal("Embedded web bundle is incomplete: ", err)
	}

	showBanner(!*noAnimate)

	// Setup staff authentication
	password := cfg.StaffPassword
	if password == "" {
		password = auth.GeneratePassword()
	}
	staffAuth := auth.New(password)

	appLog := logger.NewWithLevel(logger.ParseLevel(cfg.LogLevel))

	a, err := app.New(appLog, cfg, web.GetTemplatesFS(), web.GetStaticFS(), staffAuth, app.Options{})
	if err != nil {
		log.Fatal("Failed to initialize application:", err)
	}

	appLog.Info("Staff password", "password", password)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.Run(fmt.Sprintf(":%d", cfg.Port))
	}()

	// Wait a moment for server to start
	time.Sleep(100 * time.Millisecond)

	wheelURL := fmt.Sprintf("http://localhost:%d/", cfg.Port)
	if cfg.Kiosk {
		if err := browser.Open(wheelURL); err != nil {
			appLog.Warn("Could not open wheel page", "error", err)
		}
	}

	quit := make(chan struct{})
	var raw *rawTerminal
	if !cfg.NoKeyboard {
		c := &console{
			out:      os.Stdout,
			log:      appLog,
			wheel:    a,
			open:     browser.Open,
			wheelURL: wheelURL,
			staffURL: wheelURL + "staff",
			newline:  "\n",
		}
		c.printHelp()
		if raw = makeRaw(); raw != nil {
			go listenForKeyboard(raw, c, func() { close(quit) })
		}
	} else {
		fmt.Printf("\n%sKeyboard shortcuts disabled (use -nokeyboard=false to enable)%s\n\n", yellow, reset)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			raw.Restore()
			a.Close()
			log.Fatal(err)
		}
	case <-signals:
	case <-quit:
	}

	raw.Restore()
	fmt.Printf("%sShutting down server...%s\n", yellow, reset)
	a.Close()
}

// wheelControl is the part of the app the console drives
type wheelControl interface {
	Reset(ctx context.Context) models.Snapshot
	Snapshot() models.Snapshot
}
