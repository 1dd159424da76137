package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/posetviz/pkg/cache"
	apperrors "github.com/matzehuels/posetviz/pkg/errors"
	"github.com/matzehuels/posetviz/pkg/observability"
	"github.com/matzehuels/posetviz/pkg/render/hasse"
)

// artifactTTL bounds how long rendered diagrams are kept in the cache.
const artifactTTL = 30 * 24 * time.Hour

// newRenderCmd creates the "render" command: build a poset and render its
// Hasse diagram as DOT, SVG, or PNG. Finished SVG and PNG artifacts are
// cached by the hash of the DOT text, so re-rendering an unchanged
// description skips Graphviz.
func newRenderCmd() *cobra.Command {
	var (
		output    string
		format    string
		highlight bool
		noCache   bool
		cacheDir  string
	)

	cmd := &cobra.Command{
		Use:   "render <poset.toml>",
		Short: "Render a poset's Hasse diagram as DOT, SVG, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(output), ".")
			}
			if format != "dot" && format != "svg" && format != "png" {
				return apperrors.New(apperrors.ErrCodeUnsupported, "unsupported format: %s", format)
			}

			inst, err := buildInstance(ctx, args[0])
			if err != nil {
				return err
			}

			title := inst.Name
			dot := instanceDOT(inst, hasse.Options{Name: title, Highlight: highlight})

			if format == "dot" {
				if err := os.WriteFile(output, []byte(dot), 0644); err != nil {
					return apperrors.Wrap(apperrors.ErrCodeInternal, err, "write %s", output)
				}
				prog.done(fmt.Sprintf("Rendered %d elements", inst.Size()))
				printFile(output)
				printStats(inst.Size(), instanceCovers(inst), false)
				return nil
			}

			store := openCache(noCache, cacheDir, logger)
			defer store.Close()

			key := cache.Key(format, []byte(dot))
			data, hit, err := store.Get(ctx, key)
			if err != nil {
				logger.Debug("cache read failed", "err", err)
			}
			if hit {
				observability.Cache().OnCacheHit(ctx, format)
			} else {
				observability.Cache().OnCacheMiss(ctx, format)
				observability.Build().OnRenderStart(ctx, format)
				renderStart := time.Now()
				switch format {
				case "svg":
					data, err = hasse.RenderSVG(dot)
				case "png":
					data, err = hasse.RenderPNG(dot)
				}
				observability.Build().OnRenderComplete(ctx, format, time.Since(renderStart), err)
				if err != nil {
					return apperrors.Wrap(apperrors.ErrCodeInternal, err, "render %s", format)
				}
				if err := store.Set(ctx, key, data, artifactTTL); err != nil {
					logger.Debug("cache write failed", "err", err)
				} else {
					observability.Cache().OnCacheSet(ctx, format, len(data))
				}
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return apperrors.Wrap(apperrors.ErrCodeInternal, err, "write %s", output)
			}
			prog.done(fmt.Sprintf("Rendered %d elements", inst.Size()))
			printFile(output)
			printStats(inst.Size(), instanceCovers(inst), hit)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "hasse.svg", "output file")
	cmd.Flags().StringVar(&format, "format", "", "output format: dot, svg, or png (default: from extension)")
	cmd.Flags().BoolVar(&highlight, "highlight", false, "highlight maximal and minimal elements")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the artifact cache")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "artifact cache directory (default: user cache dir)")
	return cmd
}

// openCache returns the artifact cache selected by the flags, falling back
// to a null cache when the file cache cannot be created.
func openCache(disabled bool, dir string, logger *log.Logger) cache.Cache {
	if disabled {
		return cache.NewNullCache()
	}
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			logger.Debug("no user cache dir", "err", err)
			return cache.NewNullCache()
		}
		dir = filepath.Join(base, "posetviz")
	}
	store, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Debug("file cache unavailable", "err", err)
		return cache.NewNullCache()
	}
	return store
}
