package model

// Account merges the account facets found on one observable.
type Account struct {
	ID          string
	Identifier  string
	Phone       string
	DisplayName string
	Application Ref
}

func (a *Account) RecordID() string { return a.ID }

func (a *Account) Record() Record {
	return Record{
		{"@id", a.ID},
		{"accountIdentifier", a.Identifier},
		{"phoneAccount", a.Phone},
		{"displayName", a.DisplayName},
		{"application", a.Application.Display()},
	}
}

// Message is a chat message or an SMS.
type Message struct {
	ID               string
	Text             string
	Application      Ref
	SentTime         string
	From             Ref
	To               RefList
	AttachedFiles    string
	MessageType      string
	AllocationStatus string
}

func (m *Message) RecordID() string { return m.ID }

func (m *Message) Record() Record {
	return Record{
		{"@id", m.ID},
		{"messageText", m.Text},
		{"application", m.Application.Display()},
		{"sentTime", m.SentTime},
		{"from", m.From.Display()},
		{"to", m.To.Display()},
		{"attachedFiles", m.AttachedFiles},
		{"messageType", m.MessageType},
		{"allocationStatus", m.AllocationStatus},
	}
}

// Thread groups chat messages. Size is the declared size text, "-" when
// absent.
type Thread struct {
	ID           string
	Participants []string
	Size         string
	Messages     []string
}

func (t *Thread) RecordID() string { return t.ID }

func (t *Thread) Record() Record {
	return Record{
		{"@id", t.ID},
		{"participants", nonNil(t.Participants)},
		{"size", t.Size},
		{"messages", nonNil(t.Messages)},
	}
}

type Call struct {
	ID          string
	From        Ref
	To          Ref
	Application Ref
	StartTime   string
	Duration    string
}

func (c *Call) RecordID() string { return c.ID }

func (c *Call) Record() Record {
	return Record{
		{"@id", c.ID},
		{"from", c.From.Display()},
		{"to", c.To.Display()},
		{"application", c.Application.Display()},
		{"startTime", c.StartTime},
		{"duration", c.Duration},
	}
}

type Calendar struct {
	ID          string
	Subject     string
	Recurrence  string
	StartTime   string
	EndTime     string
	EventStatus string
}

func (c *Calendar) RecordID() string { return c.ID }

func (c *Calendar) Record() Record {
	return Record{
		{"@id", c.ID},
		{"subject", c.Subject},
		{"recurrence", c.Recurrence},
		{"startTime", c.StartTime},
		{"endTime", c.EndTime},
		{"eventStatus", c.EventStatus},
	}
}

type CellSite struct {
	ID               string
	CountryCode      string
	NetworkCode      string
	LocationAreaCode string
	Identifier       string
	Type             string
}

func (c *CellSite) RecordID() string { return c.ID }

func (c *CellSite) Record() Record {
	return Record{
		{"@id", c.ID},
		{"cellSiteCountryCode", c.CountryCode},
		{"cellSiteNetworkCode", c.NetworkCode},
		{"cellSiteLocationAreaCode", c.LocationAreaCode},
		{"cellSiteIdentifier", c.Identifier},
		{"cellSiteType", c.Type},
	}
}

type Bluetooth struct {
	ID      string
	Address string
}

func (b *Bluetooth) RecordID() string { return b.ID }

func (b *Bluetooth) Record() Record {
	return Record{
		{"@id", b.ID},
		{"addressValue", b.Address},
	}
}

type Cookie struct {
	ID             string
	Application    Ref
	Name           string
	Path           string
	CreatedTime    string
	AccessedTime   string
	ExpirationTime string
}

func (c *Cookie) RecordID() string { return c.ID }

func (c *Cookie) Record() Record {
	return Record{
		{"@id", c.ID},
		{"application", c.Application.Display()},
		{"cookieName", c.Name},
		{"cookiePath", c.Path},
		{"observableCreatedTime", c.CreatedTime},
		{"accessedTime", c.AccessedTime},
		{"expirationTime", c.ExpirationTime},
	}
}

type Coordinate struct {
	ID        string
	Latitude  string
	Longitude string
	Altitude  string
}

func (c *Coordinate) RecordID() string { return c.ID }

func (c *Coordinate) Record() Record {
	return Record{
		{"@id", c.ID},
		{"latitude", c.Latitude},
		{"longitude", c.Longitude},
		{"altitude", c.Altitude},
	}
}

type Application struct {
	ID   string
	Name string
}

func (a *Application) RecordID() string { return a.ID }

func (a *Application) Record() Record {
	return Record{
		{"@id", a.ID},
		{"name", a.Name},
	}
}

type EmailAddress struct {
	ID      string
	Address string
}

func (e *EmailAddress) RecordID() string { return e.ID }

func (e *EmailAddress) Record() Record {
	return Record{
		{"@id", e.ID},
		{"addressValue", e.Address},
	}
}

// EmailAccount points to an EmailAddress.
type EmailAccount struct {
	ID      string
	Address Ref
}

func (e *EmailAccount) RecordID() string { return e.ID }

func (e *EmailAccount) Record() Record {
	return Record{
		{"@id", e.ID},
		{"emailAddress", e.Address.Display()},
	}
}

type EmailMessage struct {
	ID       string
	From     Ref
	To       RefList
	CC       RefList
	BCC      RefList
	SentTime string
	Subject  string
	Body     string
}

func (e *EmailMessage) RecordID() string { return e.ID }

func (e *EmailMessage) Record() Record {
	return Record{
		{"@id", e.ID},
		{"from", e.From.Display()},
		{"to", e.To.Display()},
		{"cc", e.CC.Display()},
		{"bcc", e.BCC.Display()},
		{"sentTime", e.SentTime},
		{"subject", e.Subject},
		{"body", e.Body},
	}
}

type File struct {
	ID       string
	MimeType string
	Name     string
	Path     string
	Size     string
}

func (f *File) RecordID() string { return f.ID }

func (f *File) Record() Record {
	return Record{
		{"@id", f.ID},
		{"mimeType", f.MimeType},
		{"fileName", f.Name},
		{"filePath", f.Path},
		{"sizeInBytes", f.Size},
	}
}

type URL struct {
	ID    string
	Value string
}

func (u *URL) RecordID() string { return u.ID }

func (u *URL) Record() Record {
	return Record{
		{"@id", u.ID},
		{"fullValue", u.Value},
	}
}

type URLHistory struct {
	ID         string
	Browser    Ref
	URL        Ref
	Title      string
	FirstVisit string
	LastVisit  string
}

func (u *URLHistory) RecordID() string { return u.ID }

func (u *URLHistory) Record() Record {
	return Record{
		{"@id", u.ID},
		{"browserInformation", u.Browser.Display()},
		{"url", u.URL.Display()},
		{"pageTitle", u.Title},
		{"firstVisit", u.FirstVisit},
		{"lastVisited", u.LastVisit},
	}
}

type WebSearchTerm struct {
	ID   string
	Term string
}

func (w *WebSearchTerm) RecordID() string { return w.ID }

func (w *WebSearchTerm) Record() Record {
	return Record{
		{"@id", w.ID},
		{"keywordSearchTerm", w.Term},
	}
}

type Bookmark struct {
	ID          string
	Application Ref
	URL         Ref
	Path        string
	CreatedTime string
}

func (b *Bookmark) RecordID() string { return b.ID }

func (b *Bookmark) Record() Record {
	return Record{
		{"@id", b.ID},
		{"application", b.Application.Display()},
		{"urlTargeted", b.URL.Display()},
		{"bookmarkPath", b.Path},
		{"observableCreatedTime", b.CreatedTime},
	}
}

type WirelessNetwork struct {
	ID          string
	SSID        string
	BaseStation string
}

func (w *WirelessNetwork) RecordID() string { return w.ID }

func (w *WirelessNetwork) Record() Record {
	return Record{
		{"@id", w.ID},
		{"ssid", w.SSID},
		{"baseStation", w.BaseStation},
	}
}

type Event struct {
	ID          string
	CreatedTime string
	Type        string
	Text        string
}

func (e *Event) RecordID() string { return e.ID }

func (e *Event) Record() Record {
	return Record{
		{"@id", e.ID},
		{"observableCreatedTime", e.CreatedTime},
		{"eventType", e.Type},
		{"eventText", e.Text},
	}
}

type SocialMediaActivity struct {
	ID                string
	Body              string
	Title             string
	CreatedTime       string
	Application       Ref
	AuthorIdentifier  string
	AuthorName        string
	AccountIdentifier string
	ActivityType      string
}

func (s *SocialMediaActivity) RecordID() string { return s.ID }

func (s *SocialMediaActivity) Record() Record {
	return Record{
		{"@id", s.ID},
		{"body", s.Body},
		{"pageTitle", s.Title},
		{"observableCreatedTime", s.CreatedTime},
		{"application", s.Application.Display()},
		{"authorIdentifier", s.AuthorIdentifier},
		{"authorName", s.AuthorName},
		{"accountIdentifier", s.AccountIdentifier},
		{"activityType", s.ActivityType},
	}
}

type SearchedItem struct {
	ID           string
	Source       Ref
	LaunchedTime string
	Value        string
}

func (s *SearchedItem) RecordID() string { return s.ID }

func (s *SearchedItem) Record() Record {
	return Record{
		{"@id", s.ID},
		{"searchSource", s.Source.Display()},
		{"searchLaunchedTime", s.LaunchedTime},
		{"searchValue", s.Value},
	}
}

// LocationDevice is a Mapped_By relationship joined with its coordinate.
type LocationDevice struct {
	ID        string
	Target    string
	Latitude  string
	Longitude string
	StartTime string
}

func (l *LocationDevice) RecordID() string { return l.ID }

func (l *LocationDevice) Record() Record {
	return Record{
		{"@id", l.ID},
		{"target", l.Target},
		{"latitude", l.Latitude},
		{"longitude", l.Longitude},
		{"startTime", l.StartTime},
	}
}

// Connection is a Connected_To relationship.
type Connection struct {
	ID        string
	Source    string
	Target    string
	StartTime string
	EndTime   string
}

func (c *Connection) RecordID() string { return c.ID }

func (c *Connection) Record() Record {
	return Record{
		{"@id", c.ID},
		{"source", c.Source},
		{"target", c.Target},
		{"startTime", c.StartTime},
		{"endTime", c.EndTime},
	}
}

// Attachment is an Attached_To relationship: file Source attached to message
// Target.
type Attachment struct {
	ID     string
	Source string
	Target string
}

func (a *Attachment) RecordID() string { return a.ID }

func (a *Attachment) Record() Record {
	return Record{
		{"@id", a.ID},
		{"source", a.Source},
		{"target", a.Target},
	}
}
