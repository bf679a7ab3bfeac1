package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseview/internal/export"
	"caseview/internal/model"
	"caseview/internal/storage"
)

const phone = "../../internal/graph/testdata/phone.jsonld"

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cfg := filepath.Join(t.TempDir(), "missing.yaml")
	code := runWithArgs(append([]string{"--config", cfg}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestTree(t *testing.T) {
	code, out, errOut := runCLI(t, "tree", phone)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Cyber items")
	assert.Contains(t, out, "Accounts (2)")
	assert.Contains(t, out, "chat N. 1 (1)")
	assert.Contains(t, out, "kb:thread-1")
}

func TestTree_DryRun(t *testing.T) {
	code, out, errOut := runCLI(t, "tree", "--dry-run", phone)
	require.Equal(t, 0, code, errOut)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "exiting dry run")
}

func TestTree_SchemaError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonld")
	require.NoError(t, os.WriteFile(path, []byte(`{"@id": "kb:bundle"}`), 0o644))

	code, _, errOut := runCLI(t, "tree", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "[schema]")
	assert.Contains(t, errOut, "uco-core:object")
}

func TestTableAndShow(t *testing.T) {
	code, out, errOut := runCLI(t, "table", phone, "kb:thread-1")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Attachments")
	assert.Contains(t, out, "photo.jpg;")

	code, out, errOut = runCLI(t, "show", phone, ":Bluetooths", "0")
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "00:11:22:33:44:55")

	code, _, errOut = runCLI(t, "show", phone, ":Bluetooths", "5")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "out of range")

	code, _, _ = runCLI(t, "show", phone, ":Bluetooths", "first")
	assert.Equal(t, 1, code)
}

func TestExport(t *testing.T) {
	dir := t.TempDir()

	t.Run("sqlite", func(t *testing.T) {
		db := filepath.Join(dir, "out.db")
		code, _, errOut := runCLI(t, "export", phone, "--out", db)
		require.Equal(t, 0, code, errOut)

		store, err := storage.NewSQLiteStore(db)
		require.NoError(t, err)
		defer store.Close()
		recs, err := store.LoadRecords(context.Background(), model.Accounts)
		require.NoError(t, err)
		assert.Len(t, recs, 2)
	})

	t.Run("json", func(t *testing.T) {
		out := filepath.Join(dir, "out.json")
		code, _, errOut := runCLI(t, "export", phone, "--format", "json", "--out", out)
		require.Equal(t, 0, code, errOut)

		doc, err := export.LoadFile(out)
		require.NoError(t, err)
		assert.Equal(t, 16, doc.Objects)
		assert.Len(t, doc.Records(model.ChatThreads), 1)
	})

	t.Run("unknown format", func(t *testing.T) {
		code, _, errOut := runCLI(t, "export", phone, "--format", "xml")
		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "unknown format")
	})
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	data, err := os.ReadFile(phone)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "phone.jsonld"), data, 0o644))

	code, out, errOut := runCLI(t, "scan", dir)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "16 objects")
	assert.Contains(t, out, "accounts=2")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`[`), 0o644))
	code, out, errOut = runCLI(t, "scan", dir)
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, errOut, "failed to load evidence")
	assert.Contains(t, errOut, "broken.json")
}
