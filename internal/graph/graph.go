package graph

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"caseview/internal/caseerr"
	"caseview/internal/extractor"
	"caseview/internal/jsonld"
	"caseview/internal/logger"
	"caseview/internal/model"
	"caseview/internal/resolver"
)

// Options tune a load.
type Options struct {
	// Strict aborts the load on the first per-record schema problem.
	Strict bool
	// SkipResolve leaves reference fields unresolved.
	SkipResolve bool
	// Extractor overrides the default facet dispatch table.
	Extractor *extractor.Extractor
}

// Walker visits the observables of one document and fills a registry.
type Walker struct {
	ext    *extractor.Extractor
	strict bool
}

// NewWalker creates a walker using opts.Extractor or the default table.
func NewWalker(opts Options) *Walker {
	ext := opts.Extractor
	if ext == nil {
		ext = extractor.NewExtractor()
	}
	return &Walker{ext: ext, strict: opts.Strict}
}

// Walk builds a new registry from doc. References are left unresolved.
func (w *Walker) Walk(ctx context.Context, doc jsonld.Value) (*model.Registry, error) {
	nodes, err := rootNodes(doc)
	if err != nil {
		return nil, err
	}

	reg := model.NewRegistry()
	for _, node := range nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		reg.Objects++

		before := len(reg.Issues)
		w.visit(reg, node)
		for _, issue := range reg.Issues[before:] {
			if w.fatal(issue) {
				return nil, issue
			}
		}
	}
	return reg, nil
}

// fatal reports whether issue aborts the load. A typed literal without
// @value always does; other schema problems only in strict mode.
func (w *Walker) fatal(issue *caseerr.Error) bool {
	if errors.Is(issue, jsonld.ErrMissingValue) {
		return true
	}
	return w.strict && issue.Kind == caseerr.SchemaKind
}

func rootNodes(doc jsonld.Value) ([]jsonld.Value, error) {
	if doc.Kind() != jsonld.Object {
		return nil, caseerr.New(caseerr.SchemaKind, "document root is %s, not an object", doc.Kind())
	}
	for _, key := range []string{keyObjects, keyGraph} {
		if v := doc.Field(key); v.Kind() == jsonld.List {
			return v.Items(), nil
		}
	}
	return nil, caseerr.New(caseerr.SchemaKind, "document has neither a %s nor a %s array", keyObjects, keyGraph)
}

func (w *Walker) visit(reg *model.Registry, node jsonld.Value) {
	if node.Kind() != jsonld.Object {
		reg.Issues.Addf(caseerr.TypeKind, "", "", "observable is %s, not an object", node.Kind())
		return
	}

	nodeID, hasID := jsonld.RefID(node)

	typ, err := jsonld.PrimaryType(node)
	reg.Issues.Add(caseerr.Locate(err, nodeID))
	if typ == relationshipType {
		relate(reg, node, &reg.Issues)
	}

	facets := jsonld.AsList(node.Field(keyHasFacet))
	if len(facets) == 0 {
		return
	}
	if !hasID {
		reg.Issues.Addf(caseerr.SchemaKind, "", jsonld.KeyID, "observable with facets has no @id")
		return
	}
	for _, facet := range facets {
		w.ext.Classify(reg, nodeID, facet, &reg.Issues)
	}
}

// Load walks doc and runs the cross-reference pass over the result. Document
// problems and typed literals without @value are returned as errors; other
// per-record problems are collected in Registry.Issues.
func Load(ctx context.Context, doc jsonld.Value, opts Options) (*model.Registry, error) {
	reg, err := NewWalker(opts).Walk(ctx, doc)
	if err != nil {
		return nil, err
	}

	if !opts.SkipResolve {
		for _, stage := range resolver.NewDefaultChain().Run(reg) {
			logger.Debug("cross-reference stage",
				"stage", stage.Resolver,
				"attempted", stage.Stats.Attempted,
				"resolved", stage.Stats.Resolved,
				"skipped", stage.Stats.Skipped,
			)
			if stage.Err != nil {
				return nil, fmt.Errorf("resolve %s: %w", stage.Resolver, stage.Err)
			}
		}
	}

	for _, issue := range reg.Issues {
		logger.Debug("record issue", "kind", string(issue.Kind), "node", issue.NodeID, "detail", issue.Error())
	}
	if n := len(reg.Issues); n > 0 {
		logger.Warn("evidence loaded with issues", "objects", reg.Objects, "issues", n)
	}
	return reg, nil
}

// LoadReader decodes a document from r and loads it.
func LoadReader(ctx context.Context, r io.Reader, opts Options) (*model.Registry, error) {
	doc, err := jsonld.Decode(r)
	if err != nil {
		return nil, err
	}
	return Load(ctx, doc, opts)
}

// LoadFile loads the document stored at path.
func LoadFile(ctx context.Context, path string, opts Options) (*model.Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return LoadReader(ctx, f, opts)
}
