package domain

// SpatialRelIntersects is the only spatial predicate the core issues.
const SpatialRelIntersects = "intersects"

// FeatureQueryResult is a remote endpoint's answer to one spatial query:
// a feature count plus the attribute records of the matching features.
type FeatureQueryResult struct {
	Count   int             `json:"count"`
	Records []FeatureRecord `json:"records"`
}
