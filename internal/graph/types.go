package graph

// RelationKind is the uco-core:kindOfRelationship of a relationship node.
type RelationKind string

const (
	RelationAttachedTo  RelationKind = "Attached_To"
	RelationMappedBy    RelationKind = "Mapped_By"
	RelationConnectedTo RelationKind = "Connected_To"
)

const (
	keyObjects       = "uco-core:object"
	keyGraph         = "@graph"
	keyHasFacet      = "uco-core:hasFacet"
	keyKind          = "uco-core:kindOfRelationship"
	keySource        = "uco-core:source"
	keyTarget        = "uco-core:target"
	keyStartTime     = "uco-observable:startTime"
	keyEndTime       = "uco-observable:endTime"
	relationshipType = "uco-observable:ObservableRelationship"
)
