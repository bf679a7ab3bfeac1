package graph

import (
	"caseview/internal/caseerr"
	"caseview/internal/jsonld"
	"caseview/internal/model"
)

// relate records one relationship node. Unknown kinds are ignored; a known
// kind missing @id, source or target is reported and skipped.
func relate(reg *model.Registry, node jsonld.Value, issues *caseerr.List) {
	nodeID, _ := jsonld.RefID(node)

	kind, err := jsonld.GetString(node, keyKind, "")
	if err != nil {
		issues.Add(caseerr.Locate(err, nodeID))
		return
	}
	switch RelationKind(kind) {
	case RelationAttachedTo, RelationMappedBy, RelationConnectedTo:
	default:
		return
	}

	sources, srcErr := jsonld.GetRefs(node, keySource)
	targets, tgtErr := jsonld.GetRefs(node, keyTarget)
	switch {
	case nodeID == "":
		issues.Addf(caseerr.SchemaKind, "", jsonld.KeyID, "%s relationship without @id", kind)
		return
	case len(sources) == 0:
		issues.Add(missing(nodeID, keySource, kind, srcErr))
		return
	case len(targets) == 0:
		issues.Add(missing(nodeID, keyTarget, kind, tgtErr))
		return
	}

	switch RelationKind(kind) {
	case RelationAttachedTo:
		for _, src := range sources {
			for _, tgt := range targets {
				reg.Attachments.Add(&model.Attachment{ID: nodeID, Source: src, Target: tgt})
			}
		}

	case RelationConnectedTo:
		start := relationTime(node, nodeID, keyStartTime, issues)
		end := relationTime(node, nodeID, keyEndTime, issues)
		for _, src := range sources {
			for _, tgt := range targets {
				reg.Connections.Add(&model.Connection{
					ID:        nodeID,
					Source:    src,
					Target:    tgt,
					StartTime: start,
					EndTime:   end,
				})
			}
		}

	case RelationMappedBy:
		start := relationTime(node, nodeID, keyStartTime, issues)
		for _, tgt := range targets {
			loc := &model.LocationDevice{ID: nodeID, Target: tgt, StartTime: start}
			// Only coordinates already walked are visible here.
			if c, ok := reg.Coordinates.Lookup(tgt); ok {
				loc.Latitude = c.Latitude
				loc.Longitude = c.Longitude
			}
			reg.LocationDevices.Add(loc)
		}
	}
}

func missing(nodeID, property, kind string, cause error) *caseerr.Error {
	e := caseerr.New(caseerr.SchemaKind, "%s relationship without %s", kind, property).At(nodeID, property)
	e.Err = cause
	return e
}

func relationTime(node jsonld.Value, nodeID, key string, issues *caseerr.List) string {
	s, err := jsonld.GetTime(node, key)
	if err != nil {
		issues.Add(caseerr.Locate(err, nodeID))
	}
	return s
}
