package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/ncmnjgf/ai-book-explore/internal/catalog"
	"github.com/ncmnjgf/ai-book-explore/internal/catalog/openlibrary"
	"github.com/ncmnjgf/ai-book-explore/internal/config"
	"github.com/ncmnjgf/ai-book-explore/internal/log"
	"github.com/ncmnjgf/ai-book-explore/internal/qa"
	"github.com/ncmnjgf/ai-book-explore/internal/store"
	"github.com/ncmnjgf/ai-book-explore/internal/tui"
)

var version = "dev"

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.BoolVar(showVersion, "v", false, "print version and exit (shorthand)")
	setup := flag.Bool("setup", false, "run assistant setup again")
	flag.Parse()

	if *showVersion {
		fmt.Printf("bookexplore %s\n", version)
		os.Exit(0)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = log.NullLogger()
	}

	if !cfg.HasAPIKey() || *setup {
		if err := runSetup(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Setup failed: %v\n", err)
			os.Exit(1)
		}
	}

	client := openlibrary.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.CoversURL, logger)
	catalogSvc := catalog.NewService(client, logger)

	answerer, err := qa.NewAnswerer(context.Background(), cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: assistant unavailable: %v\n", err)
		answerer = nil
	}
	qaSvc := qa.NewService(answerer, logger)

	favorites, err := store.NewFavoriteStore(cfg.Favorites.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: favorites will not persist: %v\n", err)
		favorites, _ = store.NewFavoriteStore("")
	}
	defer favorites.Close()

	logger.Info("starting bookexplore",
		"version", version,
		"catalog", cfg.Catalog.BaseURL,
		"assistant", qaSvc.Backend())

	model := tui.NewModel(catalogSvc, qaSvc, favorites, cfg.Catalog.PageSize, cfg.UI.ShowDegraded)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runSetup interactively collects the assistant credentials. The key is
// read without echo and written to the config file, never baked into
// the binary. Skipping the prompt leaves the app in offline mode.
func runSetup(cfg *config.Config) error {
	fmt.Println("bookexplore setup")
	fmt.Println()
	fmt.Println("A Google generative language API key enables the ask feature.")
	fmt.Println("Leave it empty to browse without the assistant.")
	fmt.Println()

	fmt.Print("API key (hidden): ")
	keyBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("reading key: %w", err)
	}

	key := strings.TrimSpace(string(keyBytes))
	if key == "" {
		fmt.Println("No key entered, continuing offline.")
		return nil
	}
	cfg.QA.APIKey = key

	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("Backend [rest/sdk] (default %s): ", config.QABackendREST)
	backend, _ := reader.ReadString('\n')
	backend = strings.TrimSpace(backend)
	switch backend {
	case "":
	case string(config.QABackendREST), string(config.QABackendSDK):
		cfg.QA.Backend = config.QABackend(backend)
	default:
		return fmt.Errorf("unknown backend %q", backend)
	}

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Println("Saved.")
	return nil
}
