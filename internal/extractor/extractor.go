package extractor

import (
	"sort"

	"caseview/internal/caseerr"
	"caseview/internal/jsonld"
	"caseview/internal/model"
)

// Facet types understood by the default extractor.
const (
	MessageFacet                   = "uco-observable:MessageFacet"
	SMSMessageFacet                = "uco-observable:SMSMessageFacet"
	MessageThreadFacet             = "uco-observable:MessageThreadFacet"
	AccountFacet                   = "uco-observable:AccountFacet"
	ApplicationAccountFacet        = "uco-observable:ApplicationAccountFacet"
	PhoneAccountFacet              = "uco-observable:PhoneAccountFacet"
	DigitalAccountFacet            = "uco-observable:DigitalAccountFacet"
	ApplicationFacet               = "uco-observable:ApplicationFacet"
	EmailAddressFacet              = "uco-observable:EmailAddressFacet"
	EmailAccountFacet              = "uco-observable:EmailAccountFacet"
	EmailMessageFacet              = "uco-observable:EmailMessageFacet"
	CallFacet                      = "uco-observable:CallFacet"
	CalendarEntryFacet             = "uco-observable:CalendarEntryFacet"
	CellSiteFacet                  = "uco-observable:CellSiteFacet"
	BluetoothAddressFacet          = "uco-observable:BluetoothAddressFacet"
	BrowserCookieFacet             = "uco-observable:BrowserCookieFacet"
	LatLongCoordinatesFacet        = "uco-location:LatLongCoordinatesFacet"
	FileFacet                      = "uco-observable:FileFacet"
	URLFacet                       = "uco-observable:URLFacet"
	URLHistoryFacet                = "uco-observable:URLHistoryFacet"
	BrowserBookmarkFacet           = "uco-observable:BrowserBookmarkFacet"
	WirelessNetworkConnectionFacet = "uco-observable:WirelessNetworkConnectionFacet"
	EventRecordFacet               = "uco-observable:EventRecordFacet"
	SocialMediaActivityFacet       = "drafting:SocialMediaActivityFacet"
	SearchedItemFacet              = "uco-observable:SearchedItemFacet"
	DraftingSearchedItemFacet      = "drafting:SearchedItemFacet"
)

// Classifier turns one facet into registry records.
type Classifier func(reg *model.Registry, f *Facet)

// Extractor dispatches facets to classifiers by their @type.
type Extractor struct {
	classifiers map[string]Classifier
}

// NewExtractor returns an extractor with every known facet type registered.
func NewExtractor() *Extractor {
	e := &Extractor{classifiers: make(map[string]Classifier)}

	e.Register(MessageFacet, classifyMessage)
	e.Register(SMSMessageFacet, classifyMessage)
	e.Register(MessageThreadFacet, classifyThread)

	e.Register(AccountFacet, classifyAccount)
	e.Register(ApplicationAccountFacet, classifyApplicationAccount)
	e.Register(PhoneAccountFacet, classifyPhoneAccount)
	e.Register(DigitalAccountFacet, classifyDigitalAccount)
	e.Register(ApplicationFacet, classifyApplication)
	e.Register(EmailAddressFacet, classifyEmailAddress)
	e.Register(EmailAccountFacet, classifyEmailAccount)
	e.Register(EmailMessageFacet, classifyEmailMessage)

	e.Register(CallFacet, classifyCall)
	e.Register(CalendarEntryFacet, classifyCalendar)
	e.Register(CellSiteFacet, classifyCellSite)
	e.Register(BluetoothAddressFacet, classifyBluetooth)
	e.Register(WirelessNetworkConnectionFacet, classifyWirelessNetwork)
	e.Register(LatLongCoordinatesFacet, classifyCoordinate)
	e.Register(EventRecordFacet, classifyEvent)

	e.Register(FileFacet, classifyFile)

	e.Register(URLFacet, classifyURL)
	e.Register(URLHistoryFacet, classifyURLHistory)
	e.Register(BrowserBookmarkFacet, classifyBookmark)
	e.Register(BrowserCookieFacet, classifyCookie)
	e.Register(SocialMediaActivityFacet, classifySocialMediaActivity)
	e.Register(SearchedItemFacet, classifySearchedItem)
	e.Register(DraftingSearchedItemFacet, classifySearchedItem)

	return e
}

// Register binds a facet type to a classifier, replacing any previous one.
func (e *Extractor) Register(facetType string, c Classifier) {
	e.classifiers[facetType] = c
}

// Types lists the registered facet types.
func (e *Extractor) Types() []string {
	out := make([]string, 0, len(e.classifiers))
	for t := range e.classifiers {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Classify dispatches one facet carried by node nodeID. It reports whether a
// classifier handled it; unknown facet types are skipped.
func (e *Extractor) Classify(reg *model.Registry, nodeID string, facet jsonld.Value, issues *caseerr.List) bool {
	if facet.Kind() != jsonld.Object {
		issues.Addf(caseerr.TypeKind, nodeID, "uco-core:hasFacet", "facet is %s, not an object", facet.Kind())
		return false
	}
	f := newFacet(nodeID, facet, issues)
	typ, err := jsonld.PrimaryType(facet)
	f.note(err)
	if typ == "" {
		return false
	}
	c, ok := e.classifiers[typ]
	if !ok {
		return false
	}
	f.Type = typ
	c(reg, f)
	return true
}
