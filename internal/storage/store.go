package storage

import (
	"context"

	"caseview/internal/caseerr"
	"caseview/internal/model"
	"caseview/internal/view"
)

// Snapshot is everything exported from one load.
type Snapshot struct {
	Source   string
	Registry *model.Registry
	Tree     *view.Node
}

// Store persists resolved evidence snapshots.
type Store interface {
	// SaveSnapshot replaces whatever snapshot was stored before.
	SaveSnapshot(ctx context.Context, s Snapshot) error

	// LoadRecords returns the records of one category in registry order.
	LoadRecords(ctx context.Context, c model.Category) ([]model.Record, error)

	// LoadTree rebuilds the category tree.
	LoadTree(ctx context.Context) (*view.Node, error)

	// LoadIssues returns the per-record problems of the snapshot.
	LoadIssues(ctx context.Context) (caseerr.List, error)

	Close() error
}
