// Package export writes and reads JSON snapshots of a resolved registry.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"caseview/internal/caseerr"
	"caseview/internal/model"
	"caseview/internal/view"
)

// Document is the JSON form of one load.
type Document struct {
	Source     string      `json:"source,omitempty"`
	Objects    int         `json:"objects"`
	Tree       *view.Node  `json:"tree,omitempty"`
	Categories []Category  `json:"categories"`
	Issues     []IssueJSON `json:"issues,omitempty"`
}

// Category holds the records of one category in registry order.
type Category struct {
	Name    model.Category `json:"name"`
	Headers []string       `json:"headers"`
	Records []model.Record `json:"records"`
}

type IssueJSON struct {
	Kind     caseerr.Kind `json:"kind"`
	NodeID   string       `json:"node,omitempty"`
	Property string       `json:"property,omitempty"`
	Message  string       `json:"message"`
}

// Build collects the non-empty categories of reg.
func Build(source string, reg *model.Registry, tree *view.Node) *Document {
	doc := &Document{Source: source, Objects: reg.Objects, Tree: tree, Categories: []Category{}}
	for _, c := range model.AllCategories {
		recs := reg.Records(c)
		if len(recs) == 0 {
			continue
		}
		out := Category{Name: c, Headers: model.Headers(c), Records: make([]model.Record, len(recs))}
		for i, r := range recs {
			out.Records[i] = r.Record()
		}
		doc.Categories = append(doc.Categories, out)
	}
	for _, issue := range reg.Issues {
		doc.Issues = append(doc.Issues, IssueJSON{
			Kind:     issue.Kind,
			NodeID:   issue.NodeID,
			Property: issue.Property,
			Message:  issue.Message,
		})
	}
	return doc
}

// Records returns the records stored for category c.
func (d *Document) Records(c model.Category) []model.Record {
	for _, cat := range d.Categories {
		if cat.Name == c {
			return cat.Records
		}
	}
	return nil
}

// Write encodes doc as indented JSON.
func Write(w io.Writer, doc *Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// Read decodes a document written by Write.
func Read(r io.Reader) (*Document, error) {
	doc := &Document{}
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return doc, nil
}

// SaveFile writes doc to path.
func SaveFile(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()
	if err := Write(f, doc); err != nil {
		return err
	}
	return f.Close()
}

// LoadFile reads a snapshot from path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()
	return Read(f)
}
