package export

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseview/internal/caseerr"
	"caseview/internal/graph"
	"caseview/internal/model"
	"caseview/internal/view"
)

func TestSnapshotRoundTrip(t *testing.T) {
	reg, err := graph.LoadFile(context.Background(), "../graph/testdata/phone.jsonld", graph.Options{})
	require.NoError(t, err)
	tree := view.Tree(reg, view.NewPrinter("en"))

	doc := Build("phone.jsonld", reg, tree)
	path := filepath.Join(t.TempDir(), "snap.json")
	require.NoError(t, SaveFile(path, doc))

	back, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "phone.jsonld", back.Source)
	assert.Equal(t, 16, back.Objects)
	assert.Equal(t, tree, back.Tree)
	assert.Equal(t, doc.Categories, back.Categories)

	for c, n := range reg.Counts() {
		assert.Len(t, back.Records(c), n, "category %s", c)
	}
	assert.Nil(t, back.Records(model.Cookies))

	msgs := back.Records(model.ChatMessages)
	require.Len(t, msgs, 1)
	assert.Equal(t, "photo.jpg;", msgs[0].Text("attachedFiles"))
}

func TestBuild_Issues(t *testing.T) {
	reg := model.NewRegistry()
	reg.Issues.Addf(caseerr.LookupKind, "kb:m", "from", "dangling reference to %s", "kb:x")

	doc := Build("", reg, nil)
	assert.Empty(t, doc.Categories)
	require.Len(t, doc.Issues, 1)
	assert.Equal(t, "kb:m", doc.Issues[0].NodeID)
	assert.Equal(t, "dangling reference to kb:x", doc.Issues[0].Message)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
