package model

// Category names one registry collection.
type Category string

const (
	Accounts              Category = "accounts"
	ChatMessages          Category = "chat-messages"
	SMSMessages           Category = "sms-messages"
	ChatThreads           Category = "chat-threads"
	Calls                 Category = "calls"
	Calendars             Category = "calendars"
	CellSites             Category = "cell-sites"
	Bluetooths            Category = "bluetooths"
	Cookies               Category = "cookies"
	Coordinates           Category = "coordinates"
	Applications          Category = "applications"
	EmailAddresses        Category = "email-addresses"
	EmailAccounts         Category = "email-accounts"
	EmailMessages         Category = "email-messages"
	FilesImage            Category = "files-image"
	FilesAudio            Category = "files-audio"
	FilesText             Category = "files-text"
	FilesPDF              Category = "files-pdf"
	FilesWord             Category = "files-word"
	FilesRTF              Category = "files-rtf"
	FilesVideo            Category = "files-video"
	FilesArchive          Category = "files-archive"
	FilesDatabase         Category = "files-database"
	FilesApplication      Category = "files-application"
	FilesUncategorized    Category = "files-uncategorized"
	URLs                  Category = "urls"
	URLHistories          Category = "url-histories"
	WebSearchTerms        Category = "web-search-terms"
	Bookmarks             Category = "bookmarks"
	WirelessNetworks      Category = "wireless-networks"
	Events                Category = "events"
	SocialMediaActivities Category = "social-media-activities"
	SearchedItems         Category = "searched-items"
	LocationDevices       Category = "location-devices"
	Connections           Category = "connections"
)

// FileCategories lists the file buckets in display order.
var FileCategories = []Category{
	FilesImage,
	FilesAudio,
	FilesText,
	FilesPDF,
	FilesWord,
	FilesRTF,
	FilesVideo,
	FilesArchive,
	FilesDatabase,
	FilesApplication,
	FilesUncategorized,
}

// AllCategories lists every category in registry order.
var AllCategories = append([]Category{
	Accounts,
	ChatMessages,
	SMSMessages,
	ChatThreads,
	Calls,
	Calendars,
	CellSites,
	Bluetooths,
	Cookies,
	Coordinates,
	Applications,
	EmailAddresses,
	EmailAccounts,
	EmailMessages,
}, append(FileCategories,
	URLs,
	URLHistories,
	WebSearchTerms,
	Bookmarks,
	WirelessNetworks,
	Events,
	SocialMediaActivities,
	SearchedItems,
	LocationDevices,
	Connections,
)...)

// IsFile reports whether c is one of the file buckets.
func (c Category) IsFile() bool {
	for _, f := range FileCategories {
		if f == c {
			return true
		}
	}
	return false
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, k := range AllCategories {
		if k == c {
			return true
		}
	}
	return false
}
