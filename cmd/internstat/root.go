package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/hupe1980/rangeintern"
	"github.com/hupe1980/rangeintern/codec"
	"github.com/hupe1980/rangeintern/internal/corpus"
)

type config struct {
	format      string
	unique      bool
	split       string
	sequences   bool
	normalize   string
	verify      bool
	maxLine     int
	concurrency int

	logFormat string
	verbose   bool

	s3Region   string
	s3Endpoint string

	minioEndpoint  string
	minioAccessKey string
	minioSecretKey string
	minioSecure    bool
}

func newRootCmd() *cobra.Command {
	var cfg config

	cmd := &cobra.Command{
		Use:   "internstat [flags] INPUT...",
		Short: "Report deduplication statistics for text inputs",
		Long: `internstat splits every input into lines or words, interns the tokens into
one arena and reports how many were distinct and how many bytes the arena saved.

Inputs are local paths, "-" for stdin, s3://bucket/key (default AWS credential
chain) or minio://bucket/key (--minio-* flags). Names ending in .zst, .gz or
.lz4 are decompressed. Inputs are fetched concurrently but interned in argument
order, so the output is deterministic.

Example:
  internstat --split words notes.txt
  internstat --format json --unique s3://corpora/day1.txt.zst s3://corpora/day2.txt.zst
  cat words.txt | internstat -`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, cfg, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.format, "format", "text", "Output format: text, json or go-json")
	f.BoolVar(&cfg.unique, "unique", false, "Include the distinct tokens in first-seen order")
	f.StringVar(&cfg.split, "split", "lines", "Tokenization: lines or words")
	f.BoolVar(&cfg.sequences, "sequences", false, "Also intern each line's word sequence (with --split words)")
	f.StringVar(&cfg.normalize, "normalize", "none", "Unicode normalization: none, nfc or nfkc")
	f.BoolVar(&cfg.verify, "verify", false, "Compare content on fingerprint hits instead of trusting the hash")
	f.IntVar(&cfg.maxLine, "max-line", 16<<20, "Longest accepted line in bytes")
	f.IntVarP(&cfg.concurrency, "concurrency", "c", 4, "Inputs fetched in parallel")

	f.StringVar(&cfg.logFormat, "log-format", "text", "Log format on stderr: text or json")
	f.BoolVarP(&cfg.verbose, "verbose", "v", false, "Enable debug logging")

	f.StringVar(&cfg.s3Region, "s3-region", "", "Region for s3:// inputs (default from AWS config)")
	f.StringVar(&cfg.s3Endpoint, "s3-endpoint", "", "Custom endpoint for s3:// inputs")

	f.StringVar(&cfg.minioEndpoint, "minio-endpoint", "localhost:9000", "Endpoint (host:port) for minio:// inputs")
	f.StringVar(&cfg.minioAccessKey, "minio-access-key", "", "Access key for minio:// inputs")
	f.StringVar(&cfg.minioSecretKey, "minio-secret-key", "", "Secret key for minio:// inputs")
	f.BoolVar(&cfg.minioSecure, "minio-secure", false, "Use HTTPS for minio:// inputs")

	return cmd
}

func (c config) validate() error {
	if c.format != "text" {
		if _, ok := codec.ByName(c.format); !ok {
			return fmt.Errorf("unknown format %q (want text or one of %v)", c.format, codec.Names())
		}
	}
	if !slices.Contains([]string{"text", "json"}, c.logFormat) {
		return fmt.Errorf("unknown log format %q (want text or json)", c.logFormat)
	}
	if c.concurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1, got %d", c.concurrency)
	}
	return nil
}

func (c config) logger(cmd *cobra.Command) *rangeintern.Logger {
	level := slog.LevelWarn
	if c.verbose {
		level = slog.LevelDebug
	}
	if c.logFormat == "json" {
		return rangeintern.NewJSONLogger(cmd.ErrOrStderr(), level)
	}
	return rangeintern.NewTextLogger(cmd.ErrOrStderr(), level)
}

func (c config) builderOptions(logger *rangeintern.Logger) ([]corpus.Option, error) {
	split, err := corpus.ParseSplit(c.split)
	if err != nil {
		return nil, err
	}
	normalization, err := corpus.ParseNormalization(c.normalize)
	if err != nil {
		return nil, err
	}

	opts := []corpus.Option{
		corpus.WithSplit(split),
		corpus.WithNormalization(normalization),
		corpus.WithSequences(c.sequences),
		corpus.WithMaxLine(c.maxLine),
		corpus.WithLogger(logger),
	}
	if c.verify {
		opts = append(opts, corpus.WithInternOptions(rangeintern.WithContentVerification()))
	}
	return opts, nil
}
