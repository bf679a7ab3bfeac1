package model

import "caseview/internal/caseerr"

// Collection is an ordered list of records with a first-wins id index.
type Collection[T Recorder] struct {
	items []T
	byID  map[string]int
}

func (c *Collection[T]) Add(item T) {
	if c.byID == nil {
		c.byID = make(map[string]int)
	}
	if _, ok := c.byID[item.RecordID()]; !ok {
		c.byID[item.RecordID()] = len(c.items)
	}
	c.items = append(c.items, item)
}

// Lookup returns the first record added with id.
func (c *Collection[T]) Lookup(id string) (T, bool) {
	var zero T
	if c == nil || c.byID == nil {
		return zero, false
	}
	i, ok := c.byID[id]
	if !ok {
		return zero, false
	}
	return c.items[i], true
}

func (c *Collection[T]) All() []T {
	if c == nil {
		return nil
	}
	return c.items
}

func (c *Collection[T]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

func (c *Collection[T]) recorders() []Recorder {
	if c == nil {
		return nil
	}
	out := make([]Recorder, len(c.items))
	for i, item := range c.items {
		out[i] = item
	}
	return out
}

// Registry holds every record extracted from one document. A new Registry is
// built per load and is read-only once the load returns.
type Registry struct {
	Accounts              Collection[*Account]
	ChatMessages          Collection[*Message]
	SMSMessages           Collection[*Message]
	Threads               Collection[*Thread]
	Calls                 Collection[*Call]
	Calendars             Collection[*Calendar]
	CellSites             Collection[*CellSite]
	Bluetooths            Collection[*Bluetooth]
	Cookies               Collection[*Cookie]
	Coordinates           Collection[*Coordinate]
	Applications          Collection[*Application]
	EmailAddresses        Collection[*EmailAddress]
	EmailAccounts         Collection[*EmailAccount]
	EmailMessages         Collection[*EmailMessage]
	URLs                  Collection[*URL]
	URLHistories          Collection[*URLHistory]
	WebSearchTerms        Collection[*WebSearchTerm]
	Bookmarks             Collection[*Bookmark]
	WirelessNetworks      Collection[*WirelessNetwork]
	Events                Collection[*Event]
	SocialMediaActivities Collection[*SocialMediaActivity]
	SearchedItems         Collection[*SearchedItem]
	LocationDevices       Collection[*LocationDevice]
	Connections           Collection[*Connection]
	Attachments           Collection[*Attachment]

	files map[Category]*Collection[*File]

	// Objects counts the elements of the root array.
	Objects int
	// Issues collects the non-fatal problems of the load.
	Issues caseerr.List
}

func NewRegistry() *Registry {
	r := &Registry{files: make(map[Category]*Collection[*File], len(FileCategories))}
	for _, c := range FileCategories {
		r.files[c] = &Collection[*File]{}
	}
	return r
}

// Files returns the bucket for a file category, or nil for other categories.
func (r *Registry) Files(c Category) *Collection[*File] {
	return r.files[c]
}

// AddFile appends f to bucket c.
func (r *Registry) AddFile(c Category, f *File) {
	if b := r.files[c]; b != nil {
		b.Add(f)
	}
}

// FileCount sums every file bucket.
func (r *Registry) FileCount() int {
	n := 0
	for _, c := range FileCategories {
		n += r.files[c].Len()
	}
	return n
}

// Records returns the records of category c in insertion order.
func (r *Registry) Records(c Category) []Recorder {
	if c.IsFile() {
		return r.files[c].recorders()
	}
	switch c {
	case Accounts:
		return r.Accounts.recorders()
	case ChatMessages:
		return r.ChatMessages.recorders()
	case SMSMessages:
		return r.SMSMessages.recorders()
	case ChatThreads:
		return r.Threads.recorders()
	case Calls:
		return r.Calls.recorders()
	case Calendars:
		return r.Calendars.recorders()
	case CellSites:
		return r.CellSites.recorders()
	case Bluetooths:
		return r.Bluetooths.recorders()
	case Cookies:
		return r.Cookies.recorders()
	case Coordinates:
		return r.Coordinates.recorders()
	case Applications:
		return r.Applications.recorders()
	case EmailAddresses:
		return r.EmailAddresses.recorders()
	case EmailAccounts:
		return r.EmailAccounts.recorders()
	case EmailMessages:
		return r.EmailMessages.recorders()
	case URLs:
		return r.URLs.recorders()
	case URLHistories:
		return r.URLHistories.recorders()
	case WebSearchTerms:
		return r.WebSearchTerms.recorders()
	case Bookmarks:
		return r.Bookmarks.recorders()
	case WirelessNetworks:
		return r.WirelessNetworks.recorders()
	case Events:
		return r.Events.recorders()
	case SocialMediaActivities:
		return r.SocialMediaActivities.recorders()
	case SearchedItems:
		return r.SearchedItems.recorders()
	case LocationDevices:
		return r.LocationDevices.recorders()
	case Connections:
		return r.Connections.recorders()
	}
	return nil
}

// Len returns the number of records in category c.
func (r *Registry) Len(c Category) int {
	return len(r.Records(c))
}

// Counts returns the size of every non-empty category.
func (r *Registry) Counts() map[Category]int {
	out := make(map[Category]int)
	for _, c := range AllCategories {
		if n := r.Len(c); n > 0 {
			out[c] = n
		}
	}
	return out
}
