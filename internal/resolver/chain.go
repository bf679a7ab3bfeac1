package resolver

import (
	"caseview/internal/caseerr"
	"caseview/internal/model"
)

type ResolveStats struct {
	Attempted int
	Resolved  int
	Skipped   int
}

// GraphResolver is one stage of the cross-reference pass.
type GraphResolver interface {
	Name() string
	Resolve(reg *model.Registry) (ResolveStats, error)
}

type StageResult struct {
	Resolver       string
	Stats          ResolveStats
	DanglingBefore int
	DanglingAfter  int
	Err            error
}

type ResolverChain struct {
	resolvers []GraphResolver
}

func NewResolverChain(resolvers ...GraphResolver) *ResolverChain {
	return &ResolverChain{resolvers: resolvers}
}

// NewDefaultChain returns the stages in dependency order: email messages read
// the addresses resolved by the email-accounts stage.
func NewDefaultChain() *ResolverChain {
	return NewResolverChain(
		stage{"accounts", resolveAccounts},
		stage{"messages", resolveMessages},
		stage{"cookies", resolveCookies},
		stage{"email-accounts", resolveEmailAccounts},
		stage{"email-messages", resolveEmailMessages},
		stage{"calls", resolveCalls},
		stage{"web", resolveWeb},
		stage{"activities", resolveActivities},
		stage{"attachments", resolveAttachments},
	)
}

// Run executes every stage in order and stops at the first error. Dangling
// references found by an earlier run are dropped first, so running a chain
// twice leaves the registry unchanged.
func (c *ResolverChain) Run(reg *model.Registry) []StageResult {
	if reg == nil {
		return nil
	}
	reg.Issues = dropLookups(reg.Issues)

	var out []StageResult
	for _, r := range c.resolvers {
		before := reg.Issues.Count(caseerr.LookupKind)
		stats, err := r.Resolve(reg)
		out = append(out, StageResult{
			Resolver:       r.Name(),
			Stats:          stats,
			DanglingBefore: before,
			DanglingAfter:  reg.Issues.Count(caseerr.LookupKind),
			Err:            err,
		})
		if err != nil {
			break
		}
	}
	return out
}

func dropLookups(issues caseerr.List) caseerr.List {
	kept := issues[:0]
	for _, issue := range issues {
		if issue.Kind != caseerr.LookupKind {
			kept = append(kept, issue)
		}
	}
	return kept
}

type stage struct {
	name string
	fn   func(t *tally)
}

func (s stage) Name() string { return s.name }

func (s stage) Resolve(reg *model.Registry) (ResolveStats, error) {
	t := &tally{reg: reg}
	s.fn(t)
	return t.stats, nil
}
