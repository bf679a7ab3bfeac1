package resolver

import (
	"strings"

	"caseview/internal/caseerr"
	"caseview/internal/model"
)

// tally resolves references for one stage, counting outcomes and recording
// dangling ids as lookup issues.
type tally struct {
	reg   *model.Registry
	stats ResolveStats
}

type lookupFunc func(id string) (string, bool)

func (t *tally) ref(ownerID, property string, r *model.Ref, lookup lookupFunc, placeholder string) {
	id := r.ID
	found := r.Resolve(lookup, placeholder)
	if id == "" {
		return
	}
	t.count(ownerID, property, id, found)
}

func (t *tally) refs(ownerID, property string, r *model.RefList, lookup lookupFunc, placeholder string, drop bool) {
	r.Resolve(lookup, placeholder, drop)
	for _, id := range r.IDs {
		_, found := lookup(id)
		t.count(ownerID, property, id, found)
	}
}

func (t *tally) count(ownerID, property, id string, found bool) {
	t.stats.Attempted++
	if found {
		t.stats.Resolved++
		return
	}
	t.stats.Skipped++
	t.reg.Issues.Addf(caseerr.LookupKind, ownerID, property, "dangling reference to %s", id)
}

func applicationName(reg *model.Registry) lookupFunc {
	return func(id string) (string, bool) {
		a, ok := reg.Applications.Lookup(id)
		if !ok {
			return "", false
		}
		return a.Name, true
	}
}

// messageParty renders an account as "<phone> <identifier> / <display name>".
func messageParty(reg *model.Registry) lookupFunc {
	return func(id string) (string, bool) {
		a, ok := reg.Accounts.Lookup(id)
		if !ok {
			return "", false
		}
		return a.Phone + " " + a.Identifier + " / " + a.DisplayName, true
	}
}

// callParty renders an account as "<phone> / <identifier>".
func callParty(reg *model.Registry) lookupFunc {
	return func(id string) (string, bool) {
		a, ok := reg.Accounts.Lookup(id)
		if !ok {
			return "", false
		}
		return a.Phone + " / " + a.Identifier, true
	}
}

func urlValue(reg *model.Registry) lookupFunc {
	return func(id string) (string, bool) {
		u, ok := reg.URLs.Lookup(id)
		if !ok {
			return "", false
		}
		return u.Value, true
	}
}

func resolveAccounts(t *tally) {
	apps := applicationName(t.reg)
	for _, a := range t.reg.Accounts.All() {
		t.ref(a.ID, "application", &a.Application, apps, "?")
	}
}

func resolveMessages(t *tally) {
	apps := applicationName(t.reg)
	party := messageParty(t.reg)
	for _, m := range t.reg.ChatMessages.All() {
		t.ref(m.ID, "application", &m.Application, apps, "-")
		t.ref(m.ID, "from", &m.From, party, "-")
		t.refs(m.ID, "to", &m.To, party, "", true)
	}
	for _, m := range t.reg.SMSMessages.All() {
		t.ref(m.ID, "application", &m.Application, apps, "-")
		t.ref(m.ID, "from", &m.From, party, "-")
		t.refs(m.ID, "to", &m.To, party, "", true)
	}
}

func resolveCookies(t *tally) {
	apps := applicationName(t.reg)
	for _, c := range t.reg.Cookies.All() {
		t.ref(c.ID, "application", &c.Application, apps, "-")
	}
}

func resolveEmailAccounts(t *tally) {
	addresses := func(id string) (string, bool) {
		a, ok := t.reg.EmailAddresses.Lookup(id)
		if !ok {
			return "", false
		}
		return a.Address, true
	}
	for _, e := range t.reg.EmailAccounts.All() {
		t.ref(e.ID, "emailAddress", &e.Address, addresses, "-")
	}
}

func resolveEmailMessages(t *tally) {
	accounts := func(id string) (string, bool) {
		a, ok := t.reg.EmailAccounts.Lookup(id)
		if !ok {
			return "", false
		}
		return a.Address.Display(), true
	}
	for _, m := range t.reg.EmailMessages.All() {
		t.ref(m.ID, "from", &m.From, accounts, "")
		t.refs(m.ID, "to", &m.To, accounts, "", true)
		t.refs(m.ID, "cc", &m.CC, accounts, "", true)
		t.refs(m.ID, "bcc", &m.BCC, accounts, "", true)
	}
}

func resolveCalls(t *tally) {
	apps := applicationName(t.reg)
	party := callParty(t.reg)
	for _, c := range t.reg.Calls.All() {
		t.ref(c.ID, "from", &c.From, party, "-")
		t.ref(c.ID, "to", &c.To, party, "-")
		t.ref(c.ID, "application", &c.Application, apps, "-")
	}
}

func resolveWeb(t *tally) {
	apps := applicationName(t.reg)
	urls := urlValue(t.reg)
	for _, b := range t.reg.Bookmarks.All() {
		t.ref(b.ID, "application", &b.Application, apps, "")
		t.ref(b.ID, "urlTargeted", &b.URL, urls, "-")
	}
	for _, h := range t.reg.URLHistories.All() {
		t.ref(h.ID, "browserInformation", &h.Browser, apps, "-")
		t.ref(h.ID, "url", &h.URL, urls, "-")
	}
}

func resolveActivities(t *tally) {
	apps := applicationName(t.reg)
	for _, s := range t.reg.SocialMediaActivities.All() {
		t.ref(s.ID, "application", &s.Application, apps, "")
	}
	for _, s := range t.reg.SearchedItems.All() {
		t.ref(s.ID, "searchSource", &s.Source, apps, "")
	}
}

// attachmentBuckets are searched in order; each contributes its first match.
var attachmentBuckets = []model.Category{model.FilesImage, model.FilesVideo, model.FilesAudio}

// resolveAttachments rebuilds the attached file list of every chat message
// from the Attached_To relationships targeting it.
func resolveAttachments(t *tally) {
	byTarget := make(map[string][]*model.Attachment)
	for _, a := range t.reg.Attachments.All() {
		byTarget[a.Target] = append(byTarget[a.Target], a)
	}

	for _, m := range t.reg.ChatMessages.All() {
		var b strings.Builder
		for _, a := range byTarget[m.ID] {
			t.stats.Attempted++
			found := false
			for _, c := range attachmentBuckets {
				if f, ok := t.reg.Files(c).Lookup(a.Source); ok {
					b.WriteString(f.Name)
					b.WriteString(";")
					found = true
				}
			}
			if found {
				t.stats.Resolved++
			} else {
				t.stats.Skipped++
				t.reg.Issues.Addf(caseerr.LookupKind, m.ID, "attachedFiles", "attachment %s is not a media file", a.Source)
			}
		}
		m.AttachedFiles = b.String()
	}
}
