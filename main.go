package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/mcncl/echartsopt/internal/analyzer"
	"github.com/mcncl/echartsopt/internal/color"
	"github.com/mcncl/echartsopt/internal/config"
	"github.com/mcncl/echartsopt/internal/errors"
	"github.com/mcncl/echartsopt/internal/option"
	"github.com/mcncl/echartsopt/internal/parser"
	"github.com/mcncl/echartsopt/internal/series"
)

// CLI defines the command-line interface
var CLI struct {
	Input        string `help:"Path to input option JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	URL          string `help:"URL to fetch the option document from (http or https)." short:"u"`
	Output       string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config       string `help:"Path to config file. Defaults to the nearest .echartsopt.yml." short:"c" type:"path"`
	Compact      bool   `help:"Write compact JSON instead of indented output."`
	StrictJSON   bool   `help:"Write function strings as quoted strings so the output is strict JSON." name:"strict-json"`
	StrictSeries bool   `help:"Reject a bare series object where an array is expected." name:"strict-series"`
	Classify     bool   `help:"Print the token kind of every top-level key instead of normalizing."`
	ListSeries   bool   `help:"List the supported series types and exit." name:"list-series"`
	Gradient     string `help:"Convert a gradient expression such as 'new LinearGradient(0, 0, 0, 1, [...])' to option JSON."`
	Debug        bool   `help:"Enable debug logging." short:"d"`
	Version      bool   `help:"Show version information." short:"v"`
	Interactive  bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug  bool
	Config *config.Config
	Logger *slog.Logger
}

// Version information
const (
	Version = "0.1.0"
)

// fetchTimeout bounds a --url request.
const fetchTimeout = 30 * time.Second

func main() {
	parser := kong.Must(&CLI,
		kong.Name("echartsopt"),
		kong.Description("Normalize and inspect chart option documents"),
		kong.UsageOnError(),
	)

	// No arguments at all means interactive mode
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("echartsopt version %s\n", Version)
		return
	}

	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfigWithCLI(configPath, config.CLIOverrides{
		Compact:      CLI.Compact,
		StrictJSON:   CLI.StrictJSON,
		StrictSeries: CLI.StrictSeries,
		Debug:        CLI.Debug,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(errors.NewConfigError("failed to load configuration", err)))
		os.Exit(1)
	}

	ctx := &Context{
		Debug:  cfg.Dev.Debug,
		Config: cfg,
		Logger: newLogger(cfg.Dev.Debug),
	}
	if configPath != "" {
		ctx.Logger.Debug("loaded config", "path", configPath)
	}

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: echartsopt --help\n")
		os.Exit(1)
	}
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// run executes the main program logic
func run(ctx *Context) error {
	if ctx.Config == nil {
		ctx.Config = config.NewConfig()
	}
	if ctx.Logger == nil {
		ctx.Logger = newLogger(ctx.Debug)
	}

	switch {
	case CLI.ListSeries:
		return writeOutput([]byte(listSeries()))
	case CLI.Gradient != "":
		return convertGradient(ctx, CLI.Gradient)
	}

	data, err := readInput()
	if err != nil {
		return err
	}
	ctx.Logger.Debug("read input", "bytes", len(data))

	if CLI.Classify {
		return classify(data)
	}

	// 1. Decode the option document
	opts := ctx.Config.DecodeOptions()
	doc, err := option.DecodeWith(data, opts)
	if err != nil {
		return err
	}
	ctx.Logger.Debug("decoded option",
		"series", strings.Join(doc.Series.Types(), ","),
		"extra_members", len(doc.Extra),
		"allow_single_series", opts.AllowSingleSeries,
	)

	// 2. Write the canonical wire form
	out, err := ctx.Config.Formatter().Format(doc)
	if err != nil {
		return err
	}
	return writeOutput(out)
}

// classify prints one line per top-level key with its token kind
func classify(data []byte) error {
	doc, err := parser.ParseBytes(data)
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, r := range analyzer.Summarize(doc) {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return writeOutput([]byte(b.String()))
}

// listSeries renders the series discriminator table
func listSeries() string {
	var b strings.Builder
	for _, t := range series.Types() {
		fmt.Fprintf(&b, "%-14s %s\n", t, series.TypeName(t))
	}
	return b.String()
}

// convertGradient turns a gradient constructor or object literal into option JSON
func convertGradient(ctx *Context, expr string) error {
	c, err := color.ParseExpression(expr)
	if err != nil {
		return err
	}
	ctx.Logger.Debug("parsed gradient", "kind", c.Kind().String())

	out, err := ctx.Config.Formatter().Format(c)
	if err != nil {
		return err
	}
	return writeOutput(out)
}

// readInput reads the option document from a file, a URL or stdin
func readInput() ([]byte, error) {
	if CLI.Input != "" && CLI.URL != "" {
		return nil, errors.NewInputError("cannot specify both --input and --url", nil)
	}

	if CLI.Input != "" {
		return parser.ReadFile(CLI.Input)
	}

	if CLI.URL != "" {
		return fetchURL(CLI.URL)
	}

	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}

	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			return readInteractiveInput()
		}
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}
	if len(data) == 0 {
		return nil, errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return data, nil
}

// fetchURL downloads an option document over http or https
func fetchURL(rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("invalid URL '%s'", rawURL), err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, errors.NewInputError(fmt.Sprintf("invalid URL scheme '%s': only http and https are supported", u.Scheme), nil)
	}

	reqCtx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.NewInputError("failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to fetch '%s'", rawURL), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewInputError(fmt.Sprintf("failed to fetch '%s': %s", rawURL, resp.Status), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewInputError("failed to read response body", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.NewInputError("empty response body", errors.ErrEmptyInput)
	}
	return data, nil
}

// writeOutput writes data to file or stdout
func writeOutput(data []byte) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, data, 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", CLI.Output)
		return nil
	}

	_, err := fmt.Println(strings.TrimSpace(string(data)))
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() ([]byte, error) {
	fmt.Fprintln(os.Stderr, "echartsopt Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste an option document below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		jsonBuilder.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewInputError("error reading input", err)
		}
	}

	jsonData := jsonBuilder.String()
	if strings.TrimSpace(jsonData) == "" {
		return nil, errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return []byte(jsonData), nil
}
