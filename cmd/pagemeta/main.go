package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/jwiater/pagemeta"
	pmgoquery "github.com/jwiater/pagemeta/goquery"
	pmhttp "github.com/jwiater/pagemeta/http"
	pmzerolog "github.com/jwiater/pagemeta/zerolog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	Verbose bool          `short:"v" help:"Enable debug logging"`
	URL     string        `arg:"" required:"" help:"Page URL to analyze"`
}

// errorOutput is the JSON shape written to stderr on failure.
type errorOutput struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// output is the JSON document written to stdout on success.
type output struct {
	*pagemeta.PageRecord
	LoadDuration float64 `json:"loadDuration"`
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemeta"),
		kong.Description("Fetch a web page and extract structured metadata as JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		fmt.Fprintln(stderr, "pagemeta: expected a page URL argument")
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = pmhttp.DefaultFetchTimeout
	}

	// Progress and diagnostics go to stderr; stdout carries only the
	// result document.
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	if cli.Verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	fetcher := pmhttp.NewFetcher(pmhttp.WithTimeout(timeout))
	defer fetcher.Close()

	svc := pagemeta.NewService(
		pmzerolog.NewLoggingFetcher(fetcher, logger),
		pmgoquery.NewExtractor(),
	)

	logger.Info().Str("url", cli.URL).Msg("analyzing page")

	start := time.Now()
	record, err := svc.Analyze(ctx, cli.URL)
	if err != nil {
		writeError(stderr, err)
		return err
	}
	loadDuration := time.Since(start)

	logger.Info().
		Dur("duration", loadDuration).
		Int("links", record.Links.Summary.Total).
		Int("images", record.Images.Total).
		Msg("analysis complete")

	out := output{
		PageRecord:   record,
		LoadDuration: roundSeconds(loadDuration),
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		writeError(stderr, err)
		return err
	}

	fmt.Fprintln(stdout, string(encoded))
	return nil
}

// writeError reports a failure as structured JSON on the diagnostic stream.
func writeError(stderr io.Writer, err error) {
	message := pagemeta.ErrorMessage(err)
	if message == "" {
		message = err.Error()
	}

	encoded, marshalErr := json.MarshalIndent(errorOutput{
		Status:    "error",
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	}, "", "  ")
	if marshalErr != nil {
		fmt.Fprintln(stderr, err)
		return
	}
	fmt.Fprintln(stderr, string(encoded))
}

// roundSeconds converts a duration to seconds rounded to two decimals.
func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
