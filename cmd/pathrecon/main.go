package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/Unsaif/pathrecon"
	"github.com/Unsaif/pathrecon/annotate"
	"github.com/Unsaif/pathrecon/gemini"
	"github.com/Unsaif/pathrecon/match"
	recslog "github.com/Unsaif/pathrecon/slog"
	"github.com/Unsaif/pathrecon/sqlite"
	"github.com/Unsaif/pathrecon/tabula"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	AnalysisService pathrecon.AnalysisService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pathrecon"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pathrecon --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PATHRECON_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.AnalysisService = sqlite.NewAnalysisService(m.DB)
	deps.DB = m.DB
	deps.Analyses = m.AnalysisService

	logger := stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{
		Level: logLevel(cli.Verbose),
	}))

	deps.Extractor = tabula.NewExtractor()
	deps.Locator = recslog.NewLoggingLocator(&match.Matcher{}, logger)
	deps.Runner = &annotate.Runner{
		Extractor: deps.Extractor,
		Locator:   deps.Locator,
	}

	if cmd == "analyze" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Analyzer = recslog.NewLoggingAnalyzer(gemini.NewAnalyzer(client, gemini.DefaultModel), logger)
	}

	return kongCtx.Run(deps)
}

// logLevel returns the slog level for the given verbosity.
func logLevel(verbose bool) stdslog.Level {
	if verbose {
		return stdslog.LevelInfo
	}
	return stdslog.LevelWarn
}

func defaultDBPath() string {
	if path := os.Getenv("PATHRECON_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pathrecon.db"
	}
	dir := filepath.Join(home, ".pathrecon")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pathrecon.db")
}
