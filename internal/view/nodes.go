package view

import "caseview/internal/model"

// RootID is the id of the tree root.
const RootID = ":00000000"

const (
	ChatsID = ":ChatMessages"
	FilesID = ":Files"
)

type entry struct {
	id       string
	name     string
	category model.Category
}

// topLevel is the order of the root's children. Chats and Files are built
// separately and spliced in at their positions.
var topLevel = []entry{
	{":Accounts", "Accounts", model.Accounts},
	{":Calendars", "Calendars", model.Calendars},
	{":Calls", "Calls", model.Calls},
	{":CellSites", "CellSite", model.CellSites},
	{ChatsID, "Chats", model.ChatThreads},
	{":Cookies", "Cookies", model.Cookies},
	{":Bluetooths", "Device connection (Bluetooth)", model.Bluetooths},
	{":EmailMessages", "Emails", model.EmailMessages},
	{":Events", "Events", model.Events},
	{FilesID, "Files", ""},
	{":LocationDevice", "Location device", model.LocationDevices},
	{":SearchedItems", "Searched items", model.SearchedItems},
	{":SocialMediaActivities", "Social media activities", model.SocialMediaActivities},
	{":Sms", "SMSs", model.SMSMessages},
	{":WebBookmarks", "Web Bookmarks", model.Bookmarks},
	{":WebHistories", "Web Histories", model.URLHistories},
	{":WirelessNet", "Wireless Net", model.WirelessNetworks},
	{":WebSearchTerms", "Web Search Terms", model.WebSearchTerms},
}

var fileNodes = []entry{
	{":Images", "Images", model.FilesImage},
	{":Audios", "Audios", model.FilesAudio},
	{":Texts", "Texts", model.FilesText},
	{":PDFs", "PDFs", model.FilesPDF},
	{":Words", "Words", model.FilesWord},
	{":RTFs", "RTFs", model.FilesRTF},
	{":Videos", "Videos", model.FilesVideo},
	{":Archives", "Archives", model.FilesArchive},
	{":Databases", "Databases", model.FilesDatabase},
	{":Applications", "Applications", model.FilesApplication},
	{":Uncategorized", "Uncategorized", model.FilesUncategorized},
}

var byID = func() map[string]model.Category {
	m := make(map[string]model.Category)
	for _, e := range append(append([]entry{}, topLevel...), fileNodes...) {
		if e.category != "" {
			m[e.id] = e.category
		}
	}
	return m
}()

// Categories lists the ids of every node that has a table, in tree order.
func Categories() []string {
	var out []string
	for _, e := range topLevel {
		if e.id == FilesID {
			for _, f := range fileNodes {
				out = append(out, f.id)
			}
			continue
		}
		out = append(out, e.id)
	}
	return out
}

// CategoryOf maps a node id to its category. Category names are accepted as
// well, which reaches the categories the tree does not show.
func CategoryOf(nodeID string) (model.Category, bool) {
	if c, ok := byID[nodeID]; ok {
		return c, true
	}
	c := model.Category(nodeID)
	return c, c.Valid()
}
