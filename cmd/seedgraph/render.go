// SPDX-License-Identifier: MIT
// Package: seedgraph/cmd/seedgraph
//
// render.go - one pass to one file, and the concurrent batch driver.

package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seedgraph/pattern"
	"github.com/katalvlaran/seedgraph/prim_kruskal"
	"github.com/katalvlaran/seedgraph/raster"
	"github.com/katalvlaran/seedgraph/svgout"
)

// outcome describes one written pattern.
type outcome struct {
	path    string
	size    int
	result  *pattern.Result
	edges   int
	weight  int64
	mst     int64
	elapsed time.Duration
}

// renderBatch renders cfg.batch consecutive seeds with at most cfg.workers
// passes in flight. Outcomes are returned in seed order.
func renderBatch(ctx context.Context, cfg cliConfig, log *slog.Logger) ([]outcome, error) {
	out := make([]outcome, cfg.batch)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for i := 0; i < cfg.batch; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o, err := renderOne(cfg, i)
			if err != nil {
				return fmt.Errorf("seed %d: %w", cfg.seed+uint32(i), err)
			}
			out[i] = o

			attrs := []any{
				"seed", o.result.Config.Seed,
				"file", o.path,
				"size", humanize.Bytes(uint64(o.size)),
				"elapsed", o.elapsed,
			}
			if cfg.stats {
				attrs = append(attrs, "edges", o.edges, "total_length", o.weight, "mst_length", o.mst)
			}
			log.Debug("pattern written", attrs...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// renderOne runs the i-th pass on a fresh surface and writes the file.
func renderOne(cfg cliConfig, i int) (outcome, error) {
	start := time.Now()
	pcfg := cfg.patternConfig(i)
	name := pattern.ExportFileName(cfg.fileSeedText(i), cfg.format)

	var (
		buf bytes.Buffer
		res *pattern.Result
		err error
	)
	switch cfg.format {
	case formatSVG:
		res, err = renderSVG(&buf, cfg, pcfg, name)
	default:
		res, err = renderPNG(&buf, cfg, pcfg)
	}
	if err != nil {
		return outcome{}, err
	}

	path := filepath.Join(cfg.outDir, name)
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return outcome{}, fmt.Errorf("write %s: %w", path, err)
	}

	o := outcome{path: path, size: buf.Len(), result: res}
	if cfg.stats {
		g, err := pattern.Graph(res.Points)
		if err != nil {
			return outcome{}, fmt.Errorf("graph: %w", err)
		}
		o.edges, o.weight = g.EdgeCount(), g.TotalWeight()
		if g.VertexCount() > 0 {
			if _, o.mst, err = prim_kruskal.Kruskal(g); err != nil {
				return outcome{}, fmt.Errorf("spanning tree: %w", err)
			}
		}
	}
	o.elapsed = time.Since(start)
	return o, nil
}

func renderPNG(buf *bytes.Buffer, cfg cliConfig, pcfg pattern.Config) (*pattern.Result, error) {
	canvas := raster.New(cfg.width, cfg.height)
	res, err := pattern.Generate(canvas, pcfg, cfg.patternOptions()...)
	if err != nil {
		return nil, err
	}

	var opts []raster.ExportOption
	if cfg.caption {
		opts = append(opts, raster.WithCaption(res.Summary))
	}
	if err = raster.Export(buf, canvas.Image(), opts...); err != nil {
		return nil, err
	}
	return res, nil
}

func renderSVG(buf *bytes.Buffer, cfg cliConfig, pcfg pattern.Config, title string) (*pattern.Result, error) {
	opts := []svgout.Option{svgout.WithTitle(title)}
	if cfg.caption {
		opts = append(opts, svgout.WithCaption(pcfg.Summary()))
	}
	canvas := svgout.New(buf, cfg.width, cfg.height, opts...)
	res, err := pattern.Generate(canvas, pcfg, cfg.patternOptions()...)
	if err != nil {
		return nil, err
	}
	if err = canvas.Close(); err != nil {
		return nil, err
	}
	return res, nil
}
