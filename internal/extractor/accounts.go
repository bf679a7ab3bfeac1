package extractor

import "caseview/internal/model"

// accountFor returns the account already built for id, creating an empty one
// on first sight. Account facets of one observable merge into one record.
func accountFor(reg *model.Registry, id string) *model.Account {
	if a, ok := reg.Accounts.Lookup(id); ok {
		return a
	}
	a := &model.Account{ID: id, Application: model.FixedRef("")}
	reg.Accounts.Add(a)
	return a
}

func classifyAccount(reg *model.Registry, f *Facet) {
	accountFor(reg, f.NodeID).Identifier = f.String(observable("accountIdentifier"), "")
}

func classifyApplicationAccount(reg *model.Registry, f *Facet) {
	accountFor(reg, f.NodeID).Application = model.NewRef(f.Ref(observable("application")))
}

func classifyPhoneAccount(reg *model.Registry, f *Facet) {
	a := accountFor(reg, f.NodeID)
	a.Phone = f.String(observable("phoneNumber"), "")
	a.DisplayName = f.String(observable("accountIdentifier"), "")
}

func classifyDigitalAccount(reg *model.Registry, f *Facet) {
	accountFor(reg, f.NodeID).DisplayName = f.String(observable("displayName"), "")
}

// classifyApplication names an application after uco-core:name, falling back
// to its identifier.
func classifyApplication(reg *model.Registry, f *Facet) {
	name := f.String("uco-core:name", "")
	if name == "" {
		name = f.String(observable("applicationIdentifier"), "")
	}
	reg.Applications.Add(&model.Application{ID: f.NodeID, Name: name})
}

func classifyEmailAddress(reg *model.Registry, f *Facet) {
	reg.EmailAddresses.Add(&model.EmailAddress{
		ID:      f.NodeID,
		Address: f.String(observable("addressValue"), ""),
	})
}

func classifyEmailAccount(reg *model.Registry, f *Facet) {
	reg.EmailAccounts.Add(&model.EmailAccount{
		ID:      f.NodeID,
		Address: model.NewRef(f.Ref(observable("emailAddress"))),
	})
}

func classifyEmailMessage(reg *model.Registry, f *Facet) {
	reg.EmailMessages.Add(&model.EmailMessage{
		ID:       f.NodeID,
		From:     model.NewRef(f.Ref(observable("from"))),
		To:       model.NewRefList(f.Refs(observable("to"))),
		CC:       model.NewRefList(f.Refs(observable("cc"))),
		BCC:      model.NewRefList(f.Refs(observable("bcc"))),
		SentTime: f.Time(observable("sentTime")),
		Subject:  f.String(observable("subject"), ""),
		Body:     f.String(observable("body"), ""),
	})
}
