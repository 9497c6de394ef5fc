/*
Command mailfill runs the email domain autocomplete.

By default it opens a terminal form with a single email field. Typing past an
`@` lists matching domains below the field; up and down move the highlight,
enter accepts it (or submits the form when nothing is highlighted), esc
dismisses the list and a click on a row accepts that row.

With -serve it runs headless instead and answers msgpack requests on stdin,
see package ipc.

# Flags

	-config string
	    Path to the TOML config (default "$XDG_CONFIG_HOME/mailfill/config.toml")
	-d  Enable debug logging
	-serve
	    Run the msgpack suggestion service on stdin/stdout
	-version
	    Show current version

The config file is created with defaults when it does not exist. In the form,
ctrl+r reloads it and ctrl+c quits.
*/
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/iw2rmb/mailfill"
	"github.com/iw2rmb/mailfill/config"
	"github.com/iw2rmb/mailfill/internal/logger"
	"github.com/iw2rmb/mailfill/ipc"
)

const (
	appName  = "mailfill"
	debugLog = "mailfill-debug.log"
)

func main() {
	configPath := flag.String("config", defaultConfigPath(), "Path to the TOML config")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serveMode := flag.Bool("serve", false, "Run the msgpack suggestion service on stdin/stdout")
	showVersion := flag.Bool("version", false, "Show current version")

	flag.Parse()

	if *showVersion {
		printVersion()
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Warn("Using default config", "err", err)
		cfg = config.DefaultConfig()
	}

	level := logger.ParseLevel(cfg.Log.Level)
	if *debugMode {
		level = log.DebugLevel
	}

	if *serveMode {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := ipc.NewServer(cfg.Domains, os.Stdin, os.Stdout, logger.New(os.Stderr, appName, level))
		if err := srv.Serve(ctx); err != nil && ctx.Err() == nil {
			log.Fatal("Server stopped", "err", err)
		}
		return
	}

	var out io.Writer = io.Discard
	if *debugMode {
		f, err := os.OpenFile(debugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal("Failed to open debug log", "err", err)
		}
		defer f.Close()
		out = f
	}

	m := newModel(cfg, *configPath, logger.New(out, appName, level))
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("Program failed", "err", err)
	}
}

// loadConfig creates the config with defaults on first run. An empty path
// skips the file entirely.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	return config.InitConfig(path)
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, "config.toml")
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("[ mailfill ] email domain autocomplete")
	l.Print("", "version", mailfill.VersionTag())
	l.Print("use -h to see available options")
}
