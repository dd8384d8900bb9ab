package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codelift/sandpath/config"
	"github.com/codelift/sandpath/errors"
	"github.com/codelift/sandpath/logger"
	"github.com/codelift/sandpath/manifest"
	"github.com/codelift/sandpath/variant"
)

var (
	resolveFormat          string
	resolveMetadataPrefix  string
	resolveFailOnCollision bool
	resolveWatch           bool
)

// ResolveCmd resolves every variant in a manifest and prints the
// assigned flat paths.
var ResolveCmd = &cobra.Command{
	Use:   "resolve <manifest>",
	Short: "Resolve a manifest's variants into flat virtual paths",
	Long: `Resolve reads a JSON or YAML manifest of variants and assigns
every file a flat root-relative path.

The text format prints one block per variant with each file's key and
resolved path. The json format emits the full resolved manifest for
consumption by other tools.

With --watch, sandpath re-resolves whenever the manifest file changes
on disk and keeps running until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	ResolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", "", "Output format: text or json (default from config)")
	ResolveCmd.Flags().StringVar(&resolveMetadataPrefix, "metadata-prefix", "", "Default metadata prefix for variants that do not set one")
	ResolveCmd.Flags().BoolVar(&resolveFailOnCollision, "fail-on-collision", false, "Exit non-zero when any variant's paths collide")
	ResolveCmd.Flags().BoolVar(&resolveWatch, "watch", false, "Re-resolve whenever the manifest changes")
}

func runResolve(cmd *cobra.Command, args []string) error {
	manifestPath := args[0]
	log := logger.ComponentLogger("resolve")

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	format := resolveFormat
	if format == "" {
		format = cfg.Output.Format
	}
	if format != "text" && format != "json" {
		return errors.Newf("unknown output format %q (expected text or json)", format)
	}

	prefix := resolveMetadataPrefix
	if prefix == "" {
		prefix = cfg.Resolve.MetadataPrefix
	}

	failOnCollision := resolveFailOnCollision || cfg.Resolve.FailOnCollision

	run := func() error {
		return resolveOnce(manifestPath, format, prefix, failOnCollision, log)
	}

	if !resolveWatch {
		return run()
	}

	if err := run(); err != nil {
		// In watch mode a bad first pass is reported but not fatal:
		// the next save may fix it.
		logger.Errorf("resolution failed: %v", err)
	}
	return watchManifest(manifestPath, run, log)
}

func resolveOnce(manifestPath, format, prefix string, failOnCollision bool, log *zap.SugaredLogger) error {
	start := time.Now()

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	names := m.Names()
	resolved := make(map[string]variant.WithPaths, len(names))
	collisionTotal := 0

	for _, name := range names {
		code := m[name]
		if code.MetadataPrefix == "" && prefix != "" {
			code.MetadataPrefix = prefix
		}
		wp := variant.AddPathsToVariant(code)
		resolved[name] = wp

		groups := variant.Collisions(wp)
		collisionTotal += len(groups)
		for _, group := range groups {
			log.Warnw("path collision",
				logger.FieldVariant, name,
				logger.FieldCollisions, len(group),
				logger.FieldPath, collisionPath(wp, group))
		}
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(resolved, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode resolved manifest")
		}
		fmt.Println(string(data))
	default:
		printResolvedText(names, resolved)
	}

	log.Infow("manifest resolved",
		logger.FieldManifest, manifestPath,
		logger.FieldCount, len(names),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	if failOnCollision && collisionTotal > 0 {
		return errors.Newf("%d path collision(s) detected", collisionTotal)
	}
	return nil
}

// collisionPath returns the shared path of a collision group. The main
// file key maps to the top-level Path rather than an ExtraFiles entry.
func collisionPath(wp variant.WithPaths, group []string) string {
	for _, k := range group {
		if k != variant.MainFileKey {
			return wp.ExtraFiles[k].Path
		}
	}
	return wp.Path
}

func printResolvedText(names []string, resolved map[string]variant.WithPaths) {
	for _, name := range names {
		wp := resolved[name]
		fmt.Printf("%s\n", name)
		if wp.Path != "" {
			fmt.Printf("  %-32s -> %s\n", "(main)", wp.Path)
		}
		keys := make([]string, 0, len(wp.ExtraFiles))
		for k := range wp.ExtraFiles {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %-32s -> %s\n", k, wp.ExtraFiles[k].Path)
		}
		fmt.Println()
	}
}

// watchManifest blocks, re-running run whenever the manifest file is
// written. Editors often replace files via rename, so the parent
// directory is watched and events filtered by name.
func watchManifest(manifestPath string, run func() error, log *zap.SugaredLogger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create file watcher")
	}
	defer watcher.Close()

	abs, err := filepath.Abs(manifestPath)
	if err != nil {
		return errors.Wrap(err, "failed to resolve manifest path")
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrap(err, "failed to watch manifest directory")
	}

	logger.Infof("watching %s for changes", manifestPath)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	var debounce *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(abs) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Debugw("manifest changed", logger.FieldManifest, event.Name)
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(500*time.Millisecond, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			if err := run(); err != nil {
				logger.Errorf("resolution failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warnf("watcher error: %v", err)
		case <-interrupt:
			fmt.Fprintln(os.Stderr, "\nStopping watch")
			return nil
		}
	}
}
