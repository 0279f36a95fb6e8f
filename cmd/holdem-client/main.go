package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lllllan02/holdem/internal/client"
	"github.com/lllllan02/holdem/internal/profile"
	"github.com/lllllan02/holdem/internal/state"
	"github.com/lllllan02/holdem/internal/tui"
)

var CLI struct {
	Config   string `short:"c" default:"holdem-client.hcl" help:"Path to HCL configuration file"`
	Server   string `short:"s" help:"Server URL to connect to (overrides config)"`
	Name     string `short:"n" help:"Update the display name before joining"`
	Avatar   string `help:"Update the avatar reference before joining"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
	LogFile  string `help:"Log file path (overrides config)"`
}

func main() {
	kctx := kong.Parse(&CLI)

	cfg, err := client.LoadConfig(CLI.Config)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		kctx.Exit(1)
	}

	if CLI.Server != "" {
		cfg.Server.URL = CLI.Server
	}
	if CLI.LogLevel != "" {
		cfg.UI.LogLevel = CLI.LogLevel
	}
	if CLI.LogFile != "" {
		cfg.UI.LogFile = CLI.LogFile
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("Invalid config: %v\n", err)
		kctx.Exit(1)
	}

	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		kctx.Exit(1)
	}
	defer logFile.Close()

	level, err := log.ParseLevel(cfg.UI.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	logger := log.NewWithOptions(logFile, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The viewer identity comes from the collaborator endpoint once at
	// startup; seats are matched by this id, never by index.
	profiles := profile.NewClient(cfg.Server.URL)
	user, err := profiles.Fetch(ctx)
	if err != nil {
		fmt.Printf("Error fetching identity: %v\n", err)
		kctx.Exit(1)
	}
	if CLI.Name != "" {
		if user, err = profiles.UpdateName(ctx, CLI.Name); err != nil {
			fmt.Printf("Error updating name: %v\n", err)
			kctx.Exit(1)
		}
	}
	if CLI.Avatar != "" {
		if user, err = profiles.UpdateAvatar(ctx, CLI.Avatar); err != nil {
			fmt.Printf("Error updating avatar: %v\n", err)
			kctx.Exit(1)
		}
	}
	logger.Info("identity resolved", "id", user.ID, "name", user.Name)

	store := state.NewStore(user.ID)
	conn := client.New(cfg.Server.URL, logger, quartz.NewReal())
	defer conn.Close()

	model := tui.NewModel(store, conn, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())

	detach := tui.Attach(program, conn)
	defer detach()

	// A failed dial schedules its own retry; the UI starts regardless.
	_ = conn.Connect()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer stop()
		_, err := program.Run()
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		program.Quit()
		return nil
	})

	if err := g.Wait(); err != nil {
		fmt.Printf("Error running client: %v\n", err)
		kctx.Exit(1)
	}
}
