package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/foto/internal/adapter"
	"github.com/mmcdole/foto/internal/adapter/api"
	"github.com/mmcdole/foto/internal/domain"
	"github.com/mmcdole/foto/internal/prefs"
	"github.com/mmcdole/foto/internal/state"
	"github.com/mmcdole/foto/internal/store"
	"github.com/mmcdole/foto/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var (
		showVersion bool
		configPath  string
		profileID   string
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&configPath, "config", "", "config file (default ~/.config/foto/config.yaml)")
	flag.StringVar(&profileID, "user", "", "profile to open")
	flag.Parse()

	if showVersion {
		fmt.Printf("foto %s\n", Version)
		return
	}

	if err := run(configPath, profileID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, profileID string) error {
	// Load configuration
	cfg, err := adapter.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting foto", "version", Version)

	// Check if configured
	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger)
	}

	client := api.NewClient(cfg.API.URL, api.Options{
		Timeout:          cfg.API.Timeout,
		PhotoField:       cfg.API.PhotoField,
		LegacyPhotoField: cfg.API.LegacyPhotoField,
		Logger:           logger,
	})

	cache, err := store.NewCacheStore(cfg.CachePath(), cfg.API.URL)
	if err != nil {
		// The app works without a cache
		logger.Warn("cache unavailable", "error", err)
		cache, _ = store.NewCacheStore("", cfg.API.URL)
	}
	defer cache.Close()

	session := adapter.NewConfigSession(cfg)

	engine := state.NewEngine(state.Options{
		Users:        client,
		Photos:       client,
		Session:      session,
		Cache:        cache,
		Timeout:      cfg.API.Timeout,
		MessageDelay: cfg.UI.MessageDelay,
		Logger:       logger,
	})

	prefsPath := prefs.DefaultPath()
	p, err := prefs.Load(prefsPath)
	if err != nil {
		logger.Warn("failed to load prefs", "error", err)
	}
	profileID = pickProfile(profileID, p.LastProfile, session.UserID())

	model := tui.NewModel(engine, tui.Options{
		UploadURL: cfg.API.UploadURL,
		ProfileID: profileID,
	})

	// Run the TUI
	program := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI", "profile", profileID)

	if _, err := program.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	p.LastProfile = engine.Viewing()
	if err := prefs.Save(prefsPath, p); err != nil {
		logger.Warn("failed to save prefs", "error", err)
	}

	logger.Info("shutting down")
	return nil
}

// pickProfile chooses the startup profile: the flag, then the last
// viewed profile, then the session owner
func pickProfile(flagValue, last, owner string) string {
	for _, id := range []string{flagValue, last, owner} {
		if id = strings.TrimSpace(id); id != "" {
			return id
		}
	}
	return ""
}

// runSetupFlow handles the initial setup when not configured
func runSetupFlow(cfg *adapter.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to Foto!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	for cfg.API.URL == "" {
		input, err := prompt(reader, "Enter the API URL (e.g., http://localhost:5000/api): ")
		if err != nil {
			return err
		}
		cfg.API.URL = input
	}

	var user domain.User
	for {
		userID, err := prompt(reader, "Enter your user ID: ")
		if err != nil {
			return err
		}
		if userID == "" {
			fmt.Println("User ID cannot be empty. Please try again.")
			continue
		}

		client := api.NewClient(cfg.API.URL, api.Options{Logger: logger})
		user, err = checkUser(client, userID)
		if err != nil {
			fmt.Printf("✗ Could not load profile: %v\n", err)
			fmt.Println("Please check the URL and user ID and try again.")
			fmt.Println()
			continue
		}
		cfg.Session.UserID = user.ID
		break
	}

	fmt.Print("Enter your access token: ")
	tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}
	cfg.Session.Token = strings.TrimSpace(string(tokenBytes))
	if cfg.Session.Token == "" {
		return errors.New("access token cannot be empty")
	}

	if err := adapter.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Printf("✓ Signed in as %s\n", user.Name)
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run foto again to start the application.")

	return nil
}

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Print(label)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(input), nil
}

// checkUser confirms the API is reachable and the user exists
func checkUser(client *api.Client, userID string) (domain.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	user, err := client.GetUser(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	if user.ID == "" {
		user.ID = userID
	}
	return user, nil
}
