package model

// Column maps a table header to a record field.
type Column struct {
	Header string
	Field  string
}

// ThreadColumns is the table layout for the messages of one chat thread.
var ThreadColumns = []Column{
	{"Date", "sentTime"},
	{"From", "from"},
	{"Message", "messageText"},
	{"Attachments", "attachedFiles"},
}

var fileColumns = []Column{
	{"Name", "fileName"},
	{"Path", "filePath"},
	{"Size", "sizeInBytes"},
}

var columns = map[Category][]Column{
	Accounts: {
		{"Identifier", "accountIdentifier"},
		{"Phone", "phoneAccount"},
		{"Display name", "displayName"},
		{"Application", "application"},
	},
	ChatMessages: ThreadColumns,
	SMSMessages: {
		{"From", "from"},
		{"To", "to"},
		{"Date", "sentTime"},
		{"Text", "messageText"},
		{"Status", "allocationStatus"},
	},
	ChatThreads: {
		{"Participants", "participants"},
		{"Messages", "size"},
	},
	Calls: {
		{"From", "from"},
		{"To", "to"},
		{"Date", "startTime"},
		{"Duration", "duration"},
	},
	Calendars: {
		{"Subject", "subject"},
		{"Repeat", "recurrence"},
		{"Start time", "startTime"},
		{"End time", "endTime"},
		{"Status", "eventStatus"},
	},
	CellSites: {
		{"MCC", "cellSiteCountryCode"},
		{"MNC", "cellSiteNetworkCode"},
		{"LAC", "cellSiteLocationAreaCode"},
		{"CID", "cellSiteIdentifier"},
		{"Type", "cellSiteType"},
	},
	Bluetooths: {
		{"Address", "addressValue"},
	},
	Cookies: {
		{"Name", "cookieName"},
		{"Path", "cookiePath"},
		{"Application", "application"},
		{"Created time", "observableCreatedTime"},
		{"Expiration time", "expirationTime"},
	},
	Coordinates: {
		{"Latitude", "latitude"},
		{"Longitude", "longitude"},
		{"Altitude", "altitude"},
	},
	Applications: {
		{"Name", "name"},
	},
	EmailAddresses: {
		{"Address", "addressValue"},
	},
	EmailAccounts: {
		{"Address", "emailAddress"},
	},
	EmailMessages: {
		{"From", "from"},
		{"To", "to"},
		{"Date", "sentTime"},
		{"Subject", "subject"},
	},
	FilesImage:         fileColumns,
	FilesAudio:         fileColumns,
	FilesText:          fileColumns,
	FilesPDF:           fileColumns,
	FilesWord:          fileColumns,
	FilesRTF:           fileColumns,
	FilesVideo:         fileColumns,
	FilesArchive:       fileColumns,
	FilesDatabase:      fileColumns,
	FilesApplication:   fileColumns,
	FilesUncategorized: fileColumns,
	URLs: {
		{"Url", "fullValue"},
	},
	URLHistories: {
		{"Url", "url"},
		{"Title", "pageTitle"},
		{"Last visited", "lastVisited"},
		{"App", "browserInformation"},
	},
	WebSearchTerms: {
		{"Web search term", "keywordSearchTerm"},
	},
	Bookmarks: {
		{"Url", "urlTargeted"},
		{"App", "application"},
		{"Path", "bookmarkPath"},
		{"Created date", "observableCreatedTime"},
	},
	WirelessNetworks: {
		{"SSID", "ssid"},
		{"BSID", "baseStation"},
	},
	Events: {
		{"Date Time", "observableCreatedTime"},
		{"Type", "eventType"},
		{"Text", "eventText"},
	},
	SocialMediaActivities: {
		{"Body", "body"},
		{"Title", "pageTitle"},
		{"Date", "observableCreatedTime"},
		{"App", "application"},
		{"Author Identifier", "authorIdentifier"},
		{"Name", "authorName"},
		{"Type", "activityType"},
		{"Account identifier", "accountIdentifier"},
	},
	SearchedItems: {
		{"Source", "searchSource"},
		{"Launched time", "searchLaunchedTime"},
		{"Value", "searchValue"},
	},
	LocationDevices: {
		{"Latitude", "latitude"},
		{"Longitude", "longitude"},
		{"Start date", "startTime"},
	},
	Connections: {
		{"Source", "source"},
		{"Target", "target"},
		{"Start time", "startTime"},
		{"End time", "endTime"},
	},
}

// Columns returns the table layout of category c.
func Columns(c Category) []Column {
	return columns[c]
}

// Headers returns the table headers of category c.
func Headers(c Category) []string {
	return headersOf(columns[c])
}

// Row renders rec using cols.
func Row(rec Record, cols []Column) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i] = rec.Text(col.Field)
	}
	return out
}

func headersOf(cols []Column) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i] = col.Header
	}
	return out
}

// Schema returns the field names shared by every record of category c.
func Schema(c Category) []string {
	if c.IsFile() {
		return (&File{}).Record().Names()
	}
	var r Recorder
	switch c {
	case Accounts:
		r = &Account{}
	case ChatMessages, SMSMessages:
		r = &Message{}
	case ChatThreads:
		r = &Thread{}
	case Calls:
		r = &Call{}
	case Calendars:
		r = &Calendar{}
	case CellSites:
		r = &CellSite{}
	case Bluetooths:
		r = &Bluetooth{}
	case Cookies:
		r = &Cookie{}
	case Coordinates:
		r = &Coordinate{}
	case Applications:
		r = &Application{}
	case EmailAddresses:
		r = &EmailAddress{}
	case EmailAccounts:
		r = &EmailAccount{}
	case EmailMessages:
		r = &EmailMessage{}
	case URLs:
		r = &URL{}
	case URLHistories:
		r = &URLHistory{}
	case WebSearchTerms:
		r = &WebSearchTerm{}
	case Bookmarks:
		r = &Bookmark{}
	case WirelessNetworks:
		r = &WirelessNetwork{}
	case Events:
		r = &Event{}
	case SocialMediaActivities:
		r = &SocialMediaActivity{}
	case SearchedItems:
		r = &SearchedItem{}
	case LocationDevices:
		r = &LocationDevice{}
	case Connections:
		r = &Connection{}
	default:
		return nil
	}
	return r.Record().Names()
}
