package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	lcssimilarity "github.com/baditaflorin/go_lcs_similarity"
	"github.com/baditaflorin/go_lcs_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_lcs_similarity/internal/config"
	"github.com/baditaflorin/go_lcs_similarity/internal/ports"
	"github.com/baditaflorin/l"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// Default configuration
const (
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means use GOMAXPROCS
	limiterIdleTTL        = time.Hour
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML configuration file")
	port := flag.Int("port", 0, "HTTP server port (overrides config)")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	warmUp := flag.Bool("warm-up", false, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "No .env file loaded, using system environment variables\n")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if *warmUp {
		cfg.Server.WarmUp = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := createLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting similarity HTTP server",
		"port", cfg.Server.Port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
		"threshold", cfg.Threshold,
		"max_document_runes", cfg.Server.MaxDocumentRunes,
		"log_backend", cfg.Log.Backend,
	)

	opts := []lcssimilarity.Option{
		lcssimilarity.WithCustomLogger(log),
		lcssimilarity.WithThreshold(cfg.Threshold),
	}
	if cfg.FastNormalizer {
		opts = append(opts, lcssimilarity.WithFastNormalizer())
	}
	if cfg.Server.WarmUp {
		opts = append(opts, lcssimilarity.WithWarmUp(true))
	}
	similarity, err := lcssimilarity.New(opts...)
	if err != nil {
		log.Error("Failed to initialize LCS similarity", "error", err)
		os.Exit(1)
	}
	log.Info("Similarity calculator initialized",
		"warm_up", cfg.Server.WarmUp,
		"cpus", runtime.NumCPU(),
	)

	limiter := newIPRateLimiter(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	srv := newServer(similarity, log, limiter, cfg.Server.MaxDocumentRunes)

	server := &fasthttp.Server{
		Handler:               srv.handle,
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
		Name:                  "SimilarityServer",
	}

	stopSweep := make(chan struct{})
	go func() {
		ticker := time.NewTicker(limiterIdleTTL / 4)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				limiter.cleanup(limiterIdleTTL)
			case <-stopSweep:
				return
			}
		}
	}()

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		log.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			log.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Server listening", "address", addr)
	if err := server.ListenAndServe(addr); err != nil {
		log.Error("Server error", "error", err)
		close(stopSweep)
		return
	}

	<-idleConnsClosed
	close(stopSweep)
	log.Info("Server stopped")
}

// createLogger creates and configures a logger for the selected backend
func createLogger(cfg config.LogConfig) (ports.Logger, error) {
	var output io.Writer = os.Stdout
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	if cfg.Backend == config.LogBackendZerolog {
		return logger.NewZerologLogger(output, zerolog.InfoLevel), nil
	}

	lg, err := logger.NewCustomStdLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return lg, nil
}
