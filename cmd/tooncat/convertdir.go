package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/toon-go/toon"
)

const ignoreFileName = ".tooncatignore"

// loadIgnoreMatcher reads dir's .tooncatignore, if any, the way the
// teacher's Harvx-derived discovery package reads .gitignore: a missing
// file is not an error, it just means nothing is excluded.
func loadIgnoreMatcher(dir string) (*gitignore.GitIgnore, error) {
	path := filepath.Join(dir, ignoreFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return gitignore.CompileIgnoreLines(), nil
	}
	return gitignore.CompileIgnoreFile(path)
}

// discoverJSONFiles globs dir for pattern (default "**/*.json") and drops
// any match the ignore file excludes.
func discoverJSONFiles(dir, pattern string) ([]string, error) {
	matcher, err := loadIgnoreMatcher(dir)
	if err != nil {
		return nil, fmt.Errorf("tooncat: reading %s: %w", ignoreFileName, err)
	}
	matches, err := doublestar.Glob(os.DirFS(dir), pattern)
	if err != nil {
		return nil, fmt.Errorf("tooncat: invalid glob %q: %w", pattern, err)
	}
	var out []string
	for _, m := range matches {
		if matcher.MatchesPath(m) {
			continue
		}
		out = append(out, filepath.Join(dir, m))
	}
	return out, nil
}

// convertDir converts every matched JSON file under dir to a sibling
// .toon file, bounded to concurrency parallel conversions at once.
func convertDir(dir, pattern string, concurrency int) error {
	files, err := discoverJSONFiles(dir, pattern)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "tooncat: no files matched %q under %s\n", pattern, dir)
		return nil
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	var mu sync.Mutex
	var converted []string

	for _, path := range files {
		path := path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			var v interface{}
			if err := json.Unmarshal(data, &v); err != nil {
				return fmt.Errorf("parsing %s: %w", path, err)
			}
			out, err := toon.Marshal(v)
			if err != nil {
				return fmt.Errorf("encoding %s: %w", path, err)
			}
			dest := strings.TrimSuffix(path, filepath.Ext(path)) + ".toon"
			if err := os.WriteFile(dest, out, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", dest, err)
			}
			mu.Lock()
			converted = append(converted, dest)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	for _, dest := range converted {
		fmt.Println(dest)
	}
	return nil
}

func newConvertDirCmd() *cobra.Command {
	var pattern string
	var concurrency int
	cmd := &cobra.Command{
		Use:   "convert-dir <directory>",
		Short: "convert every matching JSON file under a directory to TOON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return convertDir(args[0], pattern, concurrency)
		},
	}
	cmd.Flags().StringVar(&pattern, "glob", "**/*.json", "doublestar glob pattern of files to convert, relative to directory")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "maximum number of files converted at once")
	return cmd
}
