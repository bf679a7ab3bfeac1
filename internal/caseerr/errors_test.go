package caseerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	err := New(TypeKind, "expected string, got %s", "int").At(":m1", "uco-observable:messageText")
	assert.Equal(t, "[type] expected string, got int (property uco-observable:messageText) at :m1", err.Error())

	wrapped := Wrap(SchemaKind, errors.New("unexpected EOF"), "decode document")
	assert.Equal(t, "[schema] decode document: unexpected EOF", wrapped.Error())
}

func TestKindOfThroughWrapping(t *testing.T) {
	base := New(LookupKind, "no account")
	err := fmt.Errorf("resolve messages: %w", base)

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, LookupKind, kind)
	assert.True(t, Is(err, LookupKind))
	assert.False(t, Is(err, SchemaKind))
	assert.False(t, Is(errors.New("plain"), LookupKind))
}

func TestAtKeepsOriginal(t *testing.T) {
	base := New(ValueKind, "not numeric")
	located := base.At(":f1", "size")
	assert.Empty(t, base.NodeID)
	assert.Equal(t, ":f1", located.NodeID)
	assert.Equal(t, "size", located.Property)
}

func TestList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var l List
		assert.NoError(t, l.Err())
		assert.Equal(t, "no problems", l.Error())
	})

	t.Run("summary", func(t *testing.T) {
		var l List
		l.Add(nil)
		l.Addf(TypeKind, ":a", "p", "first")
		l.Add(New(ValueKind, "second"))
		l.Add(errors.New("third"))

		require.Len(t, l, 3)
		assert.Equal(t, "[type] first (property p) at :a (and 2 more)", l.Error())
		assert.Equal(t, 2, l.Count(TypeKind))
		assert.Equal(t, map[Kind]int{TypeKind: 2, ValueKind: 1}, l.Counts())
		assert.Error(t, l.Err())
	})
}
