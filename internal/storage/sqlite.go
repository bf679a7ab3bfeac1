package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"

	"caseview/internal/caseerr"
	"caseview/internal/model"
	"caseview/internal/view"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS records (
			category TEXT,
			position INTEGER,
			id TEXT,
			fields JSON,
			PRIMARY KEY (category, position)
		);`,
		`CREATE TABLE IF NOT EXISTS summary (
			position INTEGER PRIMARY KEY,
			id TEXT,
			parent_id TEXT,
			label TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS issues (
			position INTEGER PRIMARY KEY,
			kind TEXT,
			node_id TEXT,
			property TEXT,
			message TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_records_id ON records(id);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) SaveSnapshot(ctx context.Context, snap Snapshot) error {
	if snap.Registry == nil {
		return fmt.Errorf("snapshot has no registry")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"records", "summary", "issues", "meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	// 1. Records
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (category, position, id, fields) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range model.AllCategories {
		for i, r := range snap.Registry.Records(c) {
			fields, err := json.Marshal(r.Record())
			if err != nil {
				return fmt.Errorf("failed to encode %s record %d: %w", c, i, err)
			}
			if _, err := stmt.ExecContext(ctx, string(c), i, r.RecordID(), fields); err != nil {
				return err
			}
		}
	}

	// 2. Summary tree, flattened parent-first
	if snap.Tree != nil {
		nodeStmt, err := tx.PrepareContext(ctx, `INSERT INTO summary (position, id, parent_id, label) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer nodeStmt.Close()

		pos := 0
		var insert func(n *view.Node, parent string) error
		insert = func(n *view.Node, parent string) error {
			if _, err := nodeStmt.ExecContext(ctx, pos, n.ID, parent, n.Label); err != nil {
				return err
			}
			pos++
			for _, c := range n.Children {
				if err := insert(c, n.ID); err != nil {
					return err
				}
			}
			return nil
		}
		if err := insert(snap.Tree, ""); err != nil {
			return err
		}
	}

	// 3. Issues
	issueStmt, err := tx.PrepareContext(ctx, `INSERT INTO issues (position, kind, node_id, property, message) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer issueStmt.Close()

	for i, issue := range snap.Registry.Issues {
		if _, err := issueStmt.ExecContext(ctx, i, string(issue.Kind), issue.NodeID, issue.Property, issue.Message); err != nil {
			return err
		}
	}

	meta := map[string]string{
		"source":  snap.Source,
		"objects": strconv.Itoa(snap.Registry.Objects),
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadRecords(ctx context.Context, c model.Category) ([]model.Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT fields FROM records WHERE category = ? ORDER BY position", string(c))
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var out []model.Record
	for rows.Next() {
		var fields []byte
		if err := rows.Scan(&fields); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		var rec model.Record
		if err := json.Unmarshal(fields, &rec); err != nil {
			return nil, fmt.Errorf("failed to decode %s record: %w", c, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) LoadTree(ctx context.Context) (*view.Node, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, parent_id, label FROM summary ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query summary: %w", err)
	}
	defer rows.Close()

	var root *view.Node
	byID := make(map[string]*view.Node)
	for rows.Next() {
		n := &view.Node{}
		var parent string
		if err := rows.Scan(&n.ID, &parent, &n.Label); err != nil {
			return nil, fmt.Errorf("failed to scan summary node: %w", err)
		}
		if p, ok := byID[parent]; ok && parent != "" {
			p.Children = append(p.Children, n)
		} else if root == nil {
			root = n
		}
		byID[n.ID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, caseerr.New(caseerr.LookupKind, "no snapshot stored")
	}
	return root, nil
}

func (s *SQLiteStore) LoadIssues(ctx context.Context) (caseerr.List, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT kind, node_id, property, message FROM issues ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query issues: %w", err)
	}
	defer rows.Close()

	var out caseerr.List
	for rows.Next() {
		var kind string
		e := &caseerr.Error{}
		if err := rows.Scan(&kind, &e.NodeID, &e.Property, &e.Message); err != nil {
			return nil, fmt.Errorf("failed to scan issue: %w", err)
		}
		e.Kind = caseerr.Kind(kind)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Meta returns a snapshot attribute such as "source" or "objects".
func (s *SQLiteStore) Meta(ctx context.Context, key string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM meta WHERE key = ?", key).Scan(&v)
	return v, err
}
