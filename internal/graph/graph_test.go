package graph

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseview/internal/caseerr"
	"caseview/internal/jsonld"
	"caseview/internal/model"
)

func loadString(t *testing.T, doc string, opts Options) (*model.Registry, error) {
	t.Helper()
	return LoadReader(context.Background(), strings.NewReader(doc), opts)
}

func TestLoadFile_Phone(t *testing.T) {
	reg, err := LoadFile(context.Background(), "testdata/phone.jsonld", Options{})
	require.NoError(t, err)
	require.NotNil(t, reg)

	assert.Equal(t, 16, reg.Objects)
	assert.Empty(t, reg.Issues, reg.Issues.Error())

	t.Run("Accounts merge facets", func(t *testing.T) {
		require.Equal(t, 2, reg.Accounts.Len())
		a, _ := reg.Accounts.Lookup("kb:acc-1")
		assert.Equal(t, "alice", a.Identifier)
		assert.Equal(t, "+39111", a.Phone)
		assert.Equal(t, "WhatsApp", a.Application.Display())
	})

	t.Run("Messages are resolved", func(t *testing.T) {
		m, ok := reg.ChatMessages.Lookup("kb:msg-1")
		require.True(t, ok)
		rec := m.Record()
		assert.Equal(t, "hello", rec.Text("messageText"))
		assert.Equal(t, "WhatsApp", rec.Text("application"))
		assert.Equal(t, "2021-03-01T09:00:00Z", rec.Text("sentTime"))
		assert.Equal(t, "+39111 alice / alice", rec.Text("from"))
		assert.Equal(t, " bob / Bob", rec.Text("to"))
		assert.Equal(t, "photo.jpg;", rec.Text("attachedFiles"))

		s, ok := reg.SMSMessages.Lookup("kb:sms-1")
		require.True(t, ok)
		assert.Equal(t, "Native", s.Application.Display())
	})

	t.Run("Thread", func(t *testing.T) {
		th, ok := reg.Threads.Lookup("kb:thread-1")
		require.True(t, ok)
		assert.Equal(t, "1", th.Size)
		assert.Equal(t, []string{"kb:msg-1"}, th.Messages)
		assert.Equal(t, []string{"kb:acc-1", "kb:acc-2"}, th.Participants)
	})

	t.Run("Files and calls", func(t *testing.T) {
		f, ok := reg.Files(model.FilesImage).Lookup("kb:file-1")
		require.True(t, ok)
		assert.Equal(t, "2048", f.Size)

		c, _ := reg.Calls.Lookup("kb:call-1")
		assert.Equal(t, "42", c.Duration)
		assert.Equal(t, "+39111 / alice", c.From.Display())
	})

	t.Run("Web", func(t *testing.T) {
		h, ok := reg.URLHistories.Lookup("kb:hist-1")
		require.True(t, ok)
		assert.Equal(t, "https://example.org", h.URL.Display())
		assert.Equal(t, jsonld.NoTime, h.LastVisit)

		term, ok := reg.WebSearchTerms.Lookup("kb:search-1")
		require.True(t, ok)
		assert.Equal(t, "weather tomorrow", term.Term)
	})

	t.Run("Mapped_By sees only coordinates walked before it", func(t *testing.T) {
		require.Equal(t, 2, reg.LocationDevices.Len())
		early, late := reg.LocationDevices.All()[0], reg.LocationDevices.All()[1]
		assert.Empty(t, early.Latitude)
		assert.Equal(t, "2021-03-01T10:00:00Z", early.StartTime)
		assert.Equal(t, "45.4642", late.Latitude)
		assert.Equal(t, "9.19", late.Longitude)
		assert.Equal(t, jsonld.NoTime, late.StartTime)
	})
}

func TestLoad_EveryRecordMatchesItsSchema(t *testing.T) {
	reg, err := LoadFile(context.Background(), "testdata/phone.jsonld", Options{})
	require.NoError(t, err)

	for _, c := range model.AllCategories {
		for _, r := range reg.Records(c) {
			assert.Equal(t, model.Schema(c), r.Record().Names(), "category %s", c)
		}
	}
}

func TestLoad_EveryKindRoundTrip(t *testing.T) {
	reg, err := LoadFile(context.Background(), "testdata/every_kind.jsonld", Options{})
	require.NoError(t, err)
	assert.Equal(t, 27, reg.Objects)
	assert.Empty(t, reg.Issues, reg.Issues.Error())

	want := map[model.Category]int{
		model.Accounts:              1,
		model.ChatMessages:          1,
		model.SMSMessages:           1,
		model.ChatThreads:           1,
		model.Calls:                 1,
		model.Calendars:             1,
		model.CellSites:             1,
		model.Bluetooths:            1,
		model.Cookies:               1,
		model.Coordinates:           1,
		model.Applications:          1,
		model.EmailAddresses:        1,
		model.EmailAccounts:         1,
		model.EmailMessages:         1,
		model.FilesVideo:            1,
		model.URLs:                  1,
		model.URLHistories:          1,
		model.WebSearchTerms:        1,
		model.Bookmarks:             1,
		model.WirelessNetworks:      1,
		model.Events:                1,
		model.SocialMediaActivities: 1,
		model.SearchedItems:         2,
		model.LocationDevices:       1,
		model.Connections:           1,
	}
	for _, c := range model.AllCategories {
		assert.Equal(t, want[c], reg.Len(c), "category %s", c)
		for _, r := range reg.Records(c) {
			assert.Equal(t, model.Schema(c), r.Record().Names(), "category %s", c)
		}
	}

	t.Run("cross references", func(t *testing.T) {
		m, _ := reg.ChatMessages.Lookup("kb:msg")
		assert.Equal(t, "com.example.chat", m.Application.Display())
		assert.Equal(t, "+39333 carol / Carol", m.From.Display())
		assert.Equal(t, "clip.mp4;", m.AttachedFiles)

		e, _ := reg.EmailMessages.Lookup("kb:email-msg")
		assert.Equal(t, "carol@example.org", e.From.Display())

		b, _ := reg.Bookmarks.Lookup("kb:bookmark")
		assert.Equal(t, "https://example.org/news", b.URL.Display())

		s, _ := reg.SocialMediaActivities.Lookup("kb:social")
		assert.Equal(t, "drafting:SocialMediaActivityFacet", s.ActivityType)
		assert.Equal(t, "com.example.chat", s.Application.Display())

		f, _ := reg.Files(model.FilesVideo).Lookup("kb:file")
		assert.Equal(t, "99999999999999999999", f.Size)
	})

	t.Run("relationships", func(t *testing.T) {
		conn := reg.Connections.All()[0]
		assert.Equal(t, "kb:bt", conn.Source)
		assert.Equal(t, "kb:wifi", conn.Target)
		assert.Equal(t, "2022-05-03T07:00:00Z", conn.StartTime)
		assert.Equal(t, jsonld.NoTime, conn.EndTime)

		loc := reg.LocationDevices.All()[0]
		assert.Equal(t, "41.9028", loc.Latitude)
		assert.Equal(t, "12.4964", loc.Longitude)
	})
}

func TestLoad_DocumentErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no object array", `{"@id": "kb:b"}`},
		{"array root", `[]`},
		{"object is not a list", `{"uco-core:object": {"@id": "x"}}`},
		{"trailing data", `{"uco-core:object": []} {}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := loadString(t, tt.doc, Options{})
			assert.Nil(t, reg)
			assert.True(t, caseerr.Is(err, caseerr.SchemaKind), "got %v", err)
		})
	}
}

func TestLoad_EmptyAndGraphRoot(t *testing.T) {
	reg, err := loadString(t, `{"uco-core:object": []}`, Options{})
	require.NoError(t, err)
	assert.Zero(t, reg.Objects)
	assert.Empty(t, reg.Counts())

	reg, err = loadString(t, `{"@graph": [{"@id": "kb:bt", "uco-core:hasFacet": {"@type": "uco-observable:BluetoothAddressFacet", "uco-observable:addressValue": "aa"}}]}`, Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Bluetooths.Len())
}

const badRelation = `{"uco-core:object": [
	{"@id": "kb:r1", "@type": "uco-observable:ObservableRelationship",
	 "uco-core:kindOfRelationship": "Attached_To", "uco-core:target": {"@id": "kb:m"}},
	{"@id": "kb:r2", "@type": "uco-observable:ObservableRelationship",
	 "uco-core:kindOfRelationship": "Contained_Within", "uco-core:source": {"@id": "kb:a"}},
	{"@id": "kb:bt", "uco-core:hasFacet": {"@type": "uco-observable:BluetoothAddressFacet", "uco-observable:addressValue": "aa"}}
]}`

func TestLoad_RelationshipWithoutSource(t *testing.T) {
	reg, err := loadString(t, badRelation, Options{})
	require.NoError(t, err)
	assert.Zero(t, reg.Attachments.Len())
	assert.Equal(t, 1, reg.Bluetooths.Len(), "later observables are still walked")
	require.Len(t, reg.Issues, 1)
	assert.Equal(t, caseerr.SchemaKind, reg.Issues[0].Kind)
	assert.Equal(t, "kb:r1", reg.Issues[0].NodeID)

	_, err = loadString(t, badRelation, Options{Strict: true})
	assert.True(t, caseerr.Is(err, caseerr.SchemaKind))
}

func TestLoad_RecordProblemsAreCollected(t *testing.T) {
	doc := `{"uco-core:object": [
		"not a node",
		{"uco-core:hasFacet": {"@type": "uco-observable:URLFacet"}},
		{"@id": "kb:u", "uco-core:hasFacet": [{"@type": "uco-observable:UnknownFacet"}, 7]},
		{"@id": "kb:c", "uco-core:hasFacet": {"@type": "uco-observable:CallFacet", "uco-observable:duration": "soon"}}
	]}`
	reg, err := loadString(t, doc, Options{})
	require.NoError(t, err)

	assert.Equal(t, 4, reg.Objects)
	assert.Zero(t, reg.URLs.Len())
	require.Equal(t, 1, reg.Calls.Len())
	assert.Equal(t, "soon", reg.Calls.All()[0].Duration)

	counts := reg.Issues.Counts()
	assert.Equal(t, 2, counts[caseerr.TypeKind])
	assert.Equal(t, 1, counts[caseerr.SchemaKind])
}

func TestLoad_TypedLiteralWithoutValueIsFatal(t *testing.T) {
	doc := `{"uco-core:object": [
		{"@id": "kb:bt", "uco-core:hasFacet": {"@type": "uco-observable:BluetoothAddressFacet", "uco-observable:addressValue": "aa"}},
		{"@id": "kb:f", "uco-core:hasFacet": {"@type": "uco-observable:FileFacet", "uco-observable:sizeInBytes": {"@type": "xsd:integer"}}}
	]}`
	for _, strict := range []bool{false, true} {
		reg, err := loadString(t, doc, Options{Strict: strict})
		assert.Nil(t, reg)
		require.Error(t, err)
		assert.ErrorIs(t, err, jsonld.ErrMissingValue)
		assert.True(t, caseerr.Is(err, caseerr.SchemaKind))
		assert.Contains(t, err.Error(), "kb:f")
	}
}

func TestLoad_SkipResolve(t *testing.T) {
	reg, err := LoadFile(context.Background(), "testdata/phone.jsonld", Options{SkipResolve: true})
	require.NoError(t, err)

	m, _ := reg.ChatMessages.Lookup("kb:msg-1")
	assert.Equal(t, "kb:acc-1", m.From.Display())
	assert.Empty(t, m.AttachedFiles)
}

func TestLoad_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reg, err := LoadFile(ctx, "testdata/phone.jsonld", Options{})
	assert.Nil(t, reg)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStats(t *testing.T) {
	reg, err := LoadFile(context.Background(), "testdata/phone.jsonld", Options{})
	require.NoError(t, err)

	st := Stats(reg)
	assert.Equal(t, 16, st.Objects)
	assert.Equal(t, 1, st.Categories[model.FilesImage])
	assert.Equal(t, 2, st.Categories[model.Accounts])
	assert.NotContains(t, st.Categories, model.Cookies)

	assert.Zero(t, Stats(nil).Records)
}
