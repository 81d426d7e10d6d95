package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/rangeintern/blobstore"
	"github.com/hupe1980/rangeintern/codec"
	"github.com/hupe1980/rangeintern/internal/corpus"
)

func run(cmd *cobra.Command, cfg config, args []string) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := cfg.logger(cmd)
	opts, err := cfg.builderOptions(logger)
	if err != nil {
		return err
	}

	r := newResolver(cfg, cmd.InOrStdin())
	sources := make([]source, len(args))
	for i, arg := range args {
		if sources[i], err = r.resolve(ctx, arg); err != nil {
			return err
		}
	}

	contents, err := fetchAll(ctx, sources, cfg.concurrency)
	if err != nil {
		return err
	}

	b := corpus.NewBuilder(opts...)
	for i, data := range contents {
		if _, err := b.Add(ctx, args[i], bytes.NewReader(data)); err != nil {
			return err
		}
	}
	b.LogStats(ctx)

	return writeReport(cmd.OutOrStdout(), cfg.format, b.Report(cfg.unique))
}

// fetchAll reads every source fully, at most limit at a time. The result is
// indexed like sources.
func fetchAll(ctx context.Context, sources []source, limit int) ([][]byte, error) {
	contents := make([][]byte, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, src := range sources {
		g.Go(func() error {
			rc, err := blobstore.Open(gctx, src.store, src.name)
			if err != nil {
				return fmt.Errorf("open %s: %w", src.input, err)
			}
			defer rc.Close()

			data, err := io.ReadAll(rc)
			if err != nil {
				return fmt.Errorf("read %s: %w", src.input, err)
			}
			contents[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return contents, nil
}

func writeReport(w io.Writer, format string, report corpus.Report) error {
	if format == "text" {
		return report.WriteText(w)
	}

	c, ok := codec.ByName(format)
	if !ok {
		return fmt.Errorf("unknown format %q", format)
	}
	data, err := c.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
