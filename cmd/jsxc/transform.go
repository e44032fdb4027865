package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"jsxc/internal/diag"
	"jsxc/internal/diagfmt"
	"jsxc/internal/driver"
	"jsxc/internal/observ"
	"jsxc/internal/project"
	"jsxc/internal/source"
	"jsxc/internal/ui"
)

var transformCmd = &cobra.Command{
	Use:   "transform [flags] <file-or-directory>",
	Short: "Transform JSX in a file or directory",
	Long: `Transform rewrites every JSX element into a factory call. A file argument
writes to stdout (or --output); a directory argument transforms every .jsx
and .js file under it into --out-dir.`,
	Args: cobra.ExactArgs(1),
	RunE: runTransform,
}

func init() {
	transformCmd.Flags().StringP("output", "o", "", "output file (single-file mode, default stdout)")
	transformCmd.Flags().String("out-dir", "", "output directory (directory mode)")
	transformCmd.Flags().String("pragma", "", "element factory expression (default React.createElement)")
	transformCmd.Flags().Bool("production", false, "omit __self/__source debug props")
	transformCmd.Flags().Int("jobs", 0, "parallel workers for directory mode (0 = GOMAXPROCS)")
	transformCmd.Flags().Bool("cache", false, "reuse cached outputs for unchanged files")
}

// transformConfig is the merged manifest-and-flags configuration.
type transformConfig struct {
	opts     driver.TransformOptions
	outDir   string
	useCache bool
}

// resolveConfig loads the nearest jsxc.toml above target and overlays the
// explicitly set command-line flags on top of it.
func resolveConfig(cmd *cobra.Command, target string) (transformConfig, error) {
	var cfg transformConfig

	manifest, _, err := project.DiscoverManifest(filepath.Dir(target))
	if err != nil {
		return cfg, err
	}
	if manifest != nil {
		cfg.opts.Pragma = manifest.Transform.Pragma
		cfg.opts.Production = manifest.Transform.Production
		cfg.outDir = manifest.Transform.OutDir
		cfg.useCache = manifest.Cache.Enabled
	}

	flags := cmd.Flags()
	if flags.Changed("pragma") {
		cfg.opts.Pragma, _ = flags.GetString("pragma")
	}
	if flags.Changed("production") {
		cfg.opts.Production, _ = flags.GetBool("production")
	}
	if flags.Changed("out-dir") {
		cfg.outDir, _ = flags.GetString("out-dir")
	}
	if flags.Changed("cache") {
		cfg.useCache, _ = flags.GetBool("cache")
	}
	cfg.opts.MaxDiagnostics, _ = cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	return cfg, nil
}

func runTransform(cmd *cobra.Command, args []string) error {
	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cmd, target)
	if err != nil {
		return err
	}

	if info.IsDir() {
		return transformDirectory(cmd, target, cfg)
	}
	return transformSingleFile(cmd, target, cfg)
}

func printBag(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		PathMode:  diagfmt.PathModeRelative,
		ShowNotes: true,
	})
}

func transformSingleFile(cmd *cobra.Command, path string, cfg transformConfig) error {
	result, err := driver.TransformFile(path, cfg.opts)
	if err != nil {
		return fmt.Errorf("transform failed: %w", err)
	}

	printBag(cmd, result.Bag, result.FileSet)
	if result.Bag.HasErrors() {
		return fmt.Errorf("%s: transform aborted", path)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		_, err := os.Stdout.WriteString(result.Output)
		return err
	}
	return writeOutputFile(output, result.Output)
}

func transformDirectory(cmd *cobra.Command, dir string, cfg transformConfig) error {
	if cfg.outDir == "" {
		return fmt.Errorf("directory mode needs --out-dir (or out_dir in jsxc.toml)")
	}

	var cache *driver.DiskCache
	if cfg.useCache {
		var err error
		cache, err = driver.OpenDiskCache("jsxc")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}

	timer := observ.NewTimer()

	jobs, _ := cmd.Flags().GetInt("jobs")
	stopTransform := timer.Begin("transform")
	fileSet, results, err := driver.TransformDir(cmd.Context(), dir, cfg.opts, jobs, cache)
	stopTransform(fmt.Sprintf("%d files", len(results)))
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	styled := useColor(cmd, os.Stdout)

	pathWidth := 0
	relPaths := make([]string, len(results))
	for i, r := range results {
		rel, relErr := filepath.Rel(dir, r.Path)
		if relErr != nil {
			rel = r.Path
		}
		relPaths[i] = rel
		if w := len(rel); w > pathWidth {
			pathWidth = w
		}
	}

	stopWrite := timer.Begin("write")
	var summary ui.Summary
	for i, r := range results {
		printBag(cmd, r.Bag, fileSet)

		status := "ok"
		switch {
		case r.Bag.HasErrors():
			summary.Failed++
			status = "failed"
		case r.FromCache:
			summary.Cached++
			status = "cached"
		default:
			summary.Transformed++
		}

		if status != "failed" {
			outPath := filepath.Join(cfg.outDir, outputName(relPaths[i]))
			if writeErr := writeOutputFile(outPath, r.Output); writeErr != nil {
				return writeErr
			}
		}

		if !quiet {
			ui.RenderFileLine(os.Stdout, relPaths[i], status, pathWidth, styled)
		}
	}

	stopWrite("")

	if !quiet {
		summary.Render(os.Stdout, styled)
	}
	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d file(s) failed", summary.Failed)
	}
	return nil
}

// outputName maps a source path to its output path: .jsx becomes .js,
// anything else keeps its extension.
func outputName(rel string) string {
	if strings.HasSuffix(rel, ".jsx") {
		return strings.TrimSuffix(rel, ".jsx") + ".js"
	}
	return rel
}

func writeOutputFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
