package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupIn(m map[string]string) func(string) (string, bool) {
	return func(id string) (string, bool) {
		v, ok := m[id]
		return v, ok
	}
}

func TestRef(t *testing.T) {
	apps := lookupIn(map[string]string{":app1": "WhatsApp"})

	t.Run("unresolved shows id", func(t *testing.T) {
		r := NewRef(":app1")
		assert.Equal(t, ":app1", r.Display())
	})

	t.Run("resolve is repeatable", func(t *testing.T) {
		r := NewRef(":app1")
		assert.True(t, r.Resolve(apps, "-"))
		assert.Equal(t, "WhatsApp", r.Display())
		assert.True(t, r.Resolve(apps, "-"))
		assert.Equal(t, "WhatsApp", r.Display())
		assert.Equal(t, ":app1", r.ID)
	})

	t.Run("dangling takes placeholder", func(t *testing.T) {
		r := NewRef(":nope")
		assert.False(t, r.Resolve(apps, "-"))
		assert.Equal(t, "-", r.Display())

		empty := NewRef("")
		assert.False(t, empty.Resolve(apps, "?"))
		assert.Equal(t, "?", empty.Display())
	})

	t.Run("fixed ref is untouched", func(t *testing.T) {
		r := FixedRef("Native")
		assert.True(t, r.Resolve(apps, "-"))
		assert.Equal(t, "Native", r.Display())
	})
}

func TestRefList(t *testing.T) {
	accounts := lookupIn(map[string]string{":a": "A", ":b": "B"})

	l := NewRefList([]string{":a", ":x", ":b"})
	assert.Equal(t, []string{":a", ":x", ":b"}, l.Display())

	assert.Equal(t, 2, l.Resolve(accounts, "", true))
	assert.Equal(t, []string{"A", "B"}, l.Display())

	assert.Equal(t, 2, l.Resolve(accounts, "-", false))
	assert.Equal(t, []string{"A", "-", "B"}, l.Display())

	assert.Equal(t, []string{}, NewRefList(nil).Display())
}

func TestCollectionFirstWins(t *testing.T) {
	var c Collection[*Application]
	c.Add(&Application{ID: ":app", Name: "first"})
	c.Add(&Application{ID: ":app", Name: "second"})

	assert.Equal(t, 2, c.Len())
	got, ok := c.Lookup(":app")
	require.True(t, ok)
	assert.Equal(t, "first", got.Name)

	_, ok = c.Lookup(":missing")
	assert.False(t, ok)
}

func TestRegistryRecords(t *testing.T) {
	reg := NewRegistry()
	reg.Bluetooths.Add(&Bluetooth{ID: ":bt1", Address: "AA:BB:CC:DD:EE:FF"})
	reg.AddFile(FilesImage, &File{ID: ":f1", Name: "a.jpg"})
	reg.AddFile(Accounts, &File{ID: ":ignored"})

	recs := reg.Records(Bluetooths)
	require.Len(t, recs, 1)
	assert.Equal(t, map[string]any{"@id": ":bt1", "addressValue": "AA:BB:CC:DD:EE:FF"}, recs[0].Record().Map())

	assert.Equal(t, 1, reg.FileCount())
	assert.Equal(t, map[Category]int{Bluetooths: 1, FilesImage: 1}, reg.Counts())
}

func TestColumnsReferToSchemaFields(t *testing.T) {
	for _, c := range AllCategories {
		schema := Schema(c)
		require.NotEmpty(t, schema, c)
		assert.Equal(t, "@id", schema[0], c)

		cols := Columns(c)
		require.NotEmpty(t, cols, c)
		for _, col := range cols {
			assert.Contains(t, schema, col.Field, "%s column %s", c, col.Header)
		}
		assert.Len(t, Headers(c), len(cols))
	}
}

func TestRow(t *testing.T) {
	rec := (&EmailMessage{
		ID:      ":e1",
		From:    NewRef(":acc"),
		To:      NewRefList([]string{":x", ":y"}),
		Subject: "hi",
	}).Record()
	assert.Equal(t, []string{":acc", ":x, :y", "", "hi"}, Row(rec, Columns(EmailMessages)))
}

func TestRecordJSON(t *testing.T) {
	rec := Record{
		{Name: "@id", Value: "x"},
		{Name: "to", Value: []string{"a", "b"}},
		{Name: "cc", Value: []string{}},
	}
	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"name":"@id","value":"x"},{"name":"to","value":["a","b"]},{"name":"cc","value":[]}]`, string(data))

	var back Record
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, rec, back)

	require.NoError(t, json.Unmarshal([]byte(`[{"name":"n","value":null}]`), &back))
	assert.Equal(t, Record{{Name: "n", Value: ""}}, back)

	assert.Error(t, json.Unmarshal([]byte(`[{"name":"n","value":3}]`), &back))
}
