// Command sagra-demo drives the navigation core from a terminal: it mounts a
// host, prints the active screen after every change, and turns typed
// commands into the same stack mutations and bridge requests a real UI
// would issue.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/sagra/pkg/sagra"
	"github.com/BrandonKowalski/sagra/pkg/sagra/bridge"
	"github.com/BrandonKowalski/sagra/pkg/sagra/config"
	"github.com/BrandonKowalski/sagra/pkg/sagra/i18n"
	"github.com/BrandonKowalski/sagra/pkg/sagra/navigation"
	"github.com/BrandonKowalski/sagra/pkg/sagra/screens"
)

// stdoutLinks stands in for the native link opener.
type stdoutLinks struct{}

func (stdoutLinks) OpenURL(url string) error {
	fmt.Printf("[link] %s\n", url)
	return nil
}

// fixedStore resolves a static store page.
type fixedStore struct{}

func (fixedStore) StoreURL() (string, bool) {
	return "https://store.example.com/sagra", true
}

type notificationSupport struct{ supported bool }

func (n notificationSupport) Supported() bool { return n.supported }

func main() {
	var configPath string
	var verbose bool

	root := &cobra.Command{
		Use:   "sagra-demo",
		Short: "Interactive walkthrough of the sagra navigation core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, verbose)
		},
	}
	root.Flags().StringVar(&configPath, "config", "sagra.toml", "path to the TOML configuration file")
	root.Flags().BoolVar(&verbose, "verbose", false, "enable framework diagnostics")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(configPath string, verbose bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	sagra.Init(sagra.Options{
		LogPath:  cfg.LogPath,
		LogLevel: "info",
		Verbose:  verbose,
	})
	defer sagra.Close()

	deps := screens.Deps{
		Links:         stdoutLinks{},
		Store:         fixedStore{},
		Notifications: notificationSupport{supported: cfg.NotificationsSupported},
		Localizer:     i18n.NewLocalizer(cfg.Locale),
		Licenses: []screens.License{
			{LibraryName: "go-i18n", LicenseText: "MIT License"},
			{LibraryName: "toml", LicenseText: "MIT License"},
		},
	}

	registry, err := navigation.NewRegistry(screens.Entries(deps))
	if err != nil {
		return err
	}

	var persisted []byte
	if data, err := os.ReadFile(cfg.StackStatePath); err == nil {
		persisted = data
	}

	host, err := navigation.NewHost(navigation.HostOptions{
		OnboardingComplete: cfg.OnboardingComplete,
		Persisted:          persisted,
		Registry:           registry,
		Requests:           bridge.Default(),
	})
	if err != nil {
		return err
	}
	host.Mount()
	defer host.Close()

	fmt.Println("commands: open <type>:<id> | back | stack | quit")
	printCurrent(host)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		verb, arg, _ := strings.Cut(line, " ")

		switch verb {
		case "":
		case "open":
			bridge.NavigateByExternalID(arg)
			// The listener applies the push asynchronously; unrecognized
			// ids are silently ignored and produce no change at all.
			select {
			case <-host.Changed():
			case <-time.After(200 * time.Millisecond):
				fmt.Println("(no navigation)")
			}
			printCurrent(host)
		case "back":
			host.GoBack()
			printCurrent(host)
		case "stack":
			for i, r := range host.Stack().Routes() {
				fmt.Printf("  %d: %s\n", i, r.Kind())
			}
		case "quit":
			return saveStack(host, cfg.StackStatePath)
		default:
			fmt.Printf("unknown command %q\n", verb)
		}
	}
	return saveStack(host, cfg.StackStatePath)
}

func printCurrent(host *navigation.Host) {
	screen, err := host.Render()
	if err != nil {
		fmt.Printf("render error: %v\n", err)
		return
	}
	fmt.Printf("[screen] %s (depth %d)\n", screen.ScreenKind(), host.Stack().Len())
}

func saveStack(host *navigation.Host, path string) error {
	data, err := host.Stack().Save()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
