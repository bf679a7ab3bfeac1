package graph

import (
	"caseview/internal/caseerr"
	"caseview/internal/model"
)

// LoadStats summarizes a registry for reporting.
type LoadStats struct {
	Objects    int
	Records    int
	Categories map[model.Category]int
	Issues     map[caseerr.Kind]int
}

// Stats counts records per category and issues per kind. A file listed in
// several buckets counts once per bucket.
func Stats(reg *model.Registry) LoadStats {
	if reg == nil {
		return LoadStats{Categories: map[model.Category]int{}, Issues: map[caseerr.Kind]int{}}
	}
	st := LoadStats{
		Objects:    reg.Objects,
		Categories: reg.Counts(),
		Issues:     reg.Issues.Counts(),
	}
	for _, n := range st.Categories {
		st.Records += n
	}
	return st
}
