// Command plagiarism-check compares two text files with the LCS similarity
// metric and writes the score as a percentage to a third file.
//
//	plagiarism-check [flags] <original_file> <candidate_file> <output_file>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	lcssimilarity "github.com/baditaflorin/go_lcs_similarity"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/sink"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/source"
	"github.com/baditaflorin/go_lcs_similarity/internal/config"
	"github.com/baditaflorin/go_lcs_similarity/internal/core/domain"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
	"github.com/baditaflorin/l"
)

const (
	exitOK    = 0
	exitError = 1
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("plagiarism-check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to a YAML configuration file")
	logFile := fs.String("log-file", "", "Write logs to this file")
	verbose := fs.Bool("verbose", false, "Log to stderr and print score details")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: plagiarism-check [options] <original_file_path> <plagiarized_file_path> <output_file_path>\n")
		fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return exitError
	}
	originalPath, candidatePath, outputPath := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	// A missing .env file is normal.
	envErr := config.LoadEnv()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if err := cfg.ValidateCore(); err != nil {
		fmt.Fprintf(stderr, "Error: invalid configuration: %v\n", err)
		return exitError
	}

	lg, err := createLogger(cfg.Log, *verbose, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
		return exitError
	}
	defer lg.Close()
	log := logger.FromExisting(lg)
	if envErr != nil {
		log.Debug("No .env file loaded", "error", envErr)
	}

	opts := []lcssimilarity.Option{
		lcssimilarity.WithLogger(lg),
		lcssimilarity.WithThreshold(cfg.Threshold),
	}
	if cfg.FastNormalizer {
		opts = append(opts, lcssimilarity.WithFastNormalizer())
	}
	ls, err := lcssimilarity.New(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}

	c := &checker{
		source:     source.NewFileSource(log, cfg.MaxDocumentRunes),
		sink:       sink.NewFileSink(log),
		similarity: ls,
		logger:     log,
	}
	result, formatted, err := c.check(ctx, originalPath, candidatePath, outputPath)
	if err != nil {
		return fail(stderr, err)
	}

	if *verbose {
		fmt.Fprintf(stdout, "Similarity: %s (lcs=%d, original=%d, candidate=%d, flagged=%v)\n",
			formatted, result.LCSLength, result.OriginalLength, result.CandidateLength, result.Flagged)
	}
	fmt.Fprintf(stdout, "Plagiarism check completed. Result written to: %s\n", outputPath)
	return exitOK
}

// checker reads both documents, scores them once and writes the percentage.
type checker struct {
	source     ports.DocumentSource
	sink       ports.ResultSink
	similarity *lcssimilarity.LCSSimilarity
	logger     ports.Logger
}

func (c *checker) check(ctx context.Context, originalPath, candidatePath, outputPath string) (lcssimilarity.Result, string, error) {
	original, err := c.source.Read(ctx, originalPath)
	if err != nil {
		return lcssimilarity.Result{}, "", err
	}
	candidate, err := c.source.Read(ctx, candidatePath)
	if err != nil {
		return lcssimilarity.Result{}, "", err
	}

	result := c.similarity.ComputeDocuments(ctx, original, candidate)
	formatted := lcssimilarity.FormatResult(result.Score)
	c.logger.Info("Plagiarism check computed",
		"original", originalPath,
		"candidate", candidatePath,
		"score", result.Score,
		"formatted", formatted,
		"flagged", result.Flagged,
	)

	if err := c.sink.Write(ctx, outputPath, formatted); err != nil {
		return result, "", err
	}
	return result, formatted, nil
}

// fail reports an I/O error on stderr and returns the exit code.
func fail(stderr io.Writer, err error) int {
	var inErr *domain.InputUnreadableError
	var outErr *domain.OutputUnwritableError
	switch {
	case errors.As(err, &inErr):
		fmt.Fprintf(stderr, "File operation error: cannot read %s: %s\n", inErr.Path, causeOf(inErr.Msg, inErr.Err))
	case errors.As(err, &outErr):
		fmt.Fprintf(stderr, "File operation error: cannot write %s: %s\n", outErr.Path, causeOf(outErr.Msg, outErr.Err))
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return exitError
}

func causeOf(msg string, err error) string {
	if err == nil {
		return msg
	}
	return fmt.Sprintf("%s: %v", msg, err)
}

// createLogger writes to the configured file, to stderr when verbose, and
// nowhere otherwise so stdout stays reserved for the completion message.
func createLogger(cfg config.LogConfig, verbose bool, stderr io.Writer) (l.Logger, error) {
	var output io.Writer = io.Discard
	if verbose {
		output = stderr
	}
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	lg, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  cfg.JSON,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,      // 1MB
		MaxFileSize: 10 * 1024 * 1024, // 10MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return lg, nil
}
