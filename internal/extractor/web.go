package extractor

import (
	"strings"

	"caseview/internal/model"
)

var searchTermCleaner = strings.NewReplacer("\n", "", "\r", "", "\t", " ")

func classifyURL(reg *model.Registry, f *Facet) {
	reg.URLs.Add(&model.URL{
		ID:    f.NodeID,
		Value: f.String(observable("fullValue"), ""),
	})
}

// classifyURLHistory reads the first history entry. An entry carrying a
// keyword search term is a web search, not a visit.
func classifyURLHistory(reg *model.Registry, f *Facet) {
	entry := f.Sub(observable("urlHistoryEntry"))

	if term := entry.String(observable("keywordSearchTerm"), ""); term != "" {
		reg.WebSearchTerms.Add(&model.WebSearchTerm{
			ID:   f.NodeID,
			Term: searchTermCleaner.Replace(term),
		})
		return
	}

	reg.URLHistories.Add(&model.URLHistory{
		ID:         f.NodeID,
		Browser:    model.NewRef(f.Ref(observable("browserInformation"))),
		URL:        model.NewRef(entry.Ref(observable("url"))),
		Title:      entry.String(observable("pageTitle"), ""),
		FirstVisit: entry.Time(observable("firstVisit")),
		LastVisit:  entry.Time(observable("lastVisit")),
	})
}

func classifyBookmark(reg *model.Registry, f *Facet) {
	reg.Bookmarks.Add(&model.Bookmark{
		ID:          f.NodeID,
		Application: model.NewRef(f.Ref(observable("application"))),
		URL:         model.NewRef(f.Ref(observable("urlTargeted"))),
		Path:        f.String(observable("bookmarkPath"), ""),
		CreatedTime: f.Time(observable("observableCreatedTime")),
	})
}

func classifyCookie(reg *model.Registry, f *Facet) {
	reg.Cookies.Add(&model.Cookie{
		ID:             f.NodeID,
		Application:    model.NewRef(f.Ref(observable("application"))),
		Name:           f.String(observable("cookieName"), ""),
		Path:           f.String(observable("cookiePath"), ""),
		CreatedTime:    f.Time(observable("observableCreatedTime")),
		AccessedTime:   f.Time(observable("accessedTime")),
		ExpirationTime: f.Time(observable("expirationTime")),
	})
}

func classifySocialMediaActivity(reg *model.Registry, f *Facet) {
	activity := f.String("drafting:activityType", "")
	if activity == "" {
		activity = f.Type
	}
	reg.SocialMediaActivities.Add(&model.SocialMediaActivity{
		ID:                f.NodeID,
		Body:              f.String(observable("body"), ""),
		Title:             f.String(observable("pageTitle"), ""),
		CreatedTime:       f.Time(observable("observableCreatedTime")),
		Application:       model.NewRef(f.Ref(observable("application"))),
		AuthorIdentifier:  f.String("drafting:authorIdentifier", ""),
		AuthorName:        f.String("drafting:authorName", ""),
		AccountIdentifier: f.String(observable("accountIdentifier"), ""),
		ActivityType:      activity,
	})
}

func classifySearchedItem(reg *model.Registry, f *Facet) {
	reg.SearchedItems.Add(&model.SearchedItem{
		ID:           f.NodeID,
		Source:       model.NewRef(f.Ref(observable("application"))),
		LaunchedTime: f.Time("drafting:searchLaunchedTime"),
		Value:        f.String("drafting:searchValue", ""),
	})
}
