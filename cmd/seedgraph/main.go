// SPDX-License-Identifier: MIT
// Package: seedgraph/cmd/seedgraph
//
// main.go - entry point.

// Command seedgraph renders seeded fully-connected dot patterns.
//
// Every dot is joined to every other dot by a thin line; the seed alone fixes
// where the dots land. The summary line of each pattern is printed to stdout
// and the image is written to -out as pattern_seed<seed>.png (or .svg).
//
//	seedgraph -seed 1 -dots 3
//	seedgraph -random -colorful-lines -format svg
//	seedgraph -seed 100 -batch 50 -workers 8 -out ./patterns
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	log := newLogger(stderr, cfg.logLevel, cfg.logJSON)

	if err := os.MkdirAll(cfg.outDir, 0o755); err != nil {
		log.Error("create output directory", "dir", cfg.outDir, "err", err)
		return 1
	}
	log.Info("rendering",
		"seed", cfg.seed,
		"batch", cfg.batch,
		"format", cfg.format,
		"size", fmt.Sprintf("%dx%d", cfg.width, cfg.height),
	)

	outcomes, err := renderBatch(ctx, cfg, log)
	if err != nil {
		log.Error("render failed", "err", err)
		return 1
	}
	for _, o := range outcomes {
		fmt.Fprintln(stdout, o.result.Summary)
		if cfg.stats {
			log.Info("stats",
				"file", o.path,
				"edges", o.edges,
				"total_length", o.weight,
				"mst_length", o.mst,
			)
		}
	}
	log.Info("done", "files", len(outcomes), "dir", cfg.outDir)
	return 0
}

// newLogger returns a text or JSON slog logger writing to w.
func newLogger(w io.Writer, level slog.Level, asJSON bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
