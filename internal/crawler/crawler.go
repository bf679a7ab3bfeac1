package crawler

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"caseview/internal/graph"
)

// Crawler scans a directory tree for evidence documents.
type Crawler struct {
	opts       graph.Options
	ignored    []string
	extensions []string
}

// Result is the outcome of loading one document.
type Result struct {
	Path  string
	Stats graph.LoadStats
	Err   error
}

// NewCrawler creates a crawler that loads every document with opts.
func NewCrawler(opts graph.Options) *Crawler {
	return &Crawler{
		opts:       opts,
		ignored:    []string{".git", "node_modules"},
		extensions: []string{".json", ".jsonld"},
	}
}

// IsEvidence reports whether name looks like a JSON-LD document.
func (c *Crawler) IsEvidence(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range c.extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Scan walks root and loads each document found, streaming one Result per
// file. A document that fails to load is reported in its Result and the
// walk continues.
func (c *Crawler) Scan(ctx context.Context, root string, onResult func(Result)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !c.IsEvidence(d.Name()) {
			return nil
		}

		res := Result{Path: path}
		reg, err := graph.LoadFile(ctx, path, c.opts)
		if err != nil {
			res.Err = err
		} else {
			res.Stats = graph.Stats(reg)
		}
		onResult(res)
		return nil
	})
}
