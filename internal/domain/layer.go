package domain

// LayerKindFeature is the type tag a map context uses for feature-typed
// layers. Only feature-typed layers with a remote queryable endpoint are
// eligible for intersection queries.
const LayerKindFeature = "feature"

// MapLayer is a raw layer entry as reported by the host map context. Title
// and URL are optional; non-feature or non-queryable entries are filtered
// out silently during discovery.
type MapLayer struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Kind      string `json:"kind"`
	URL       string `json:"url"`
	Queryable bool   `json:"queryable"`
}

// MapContext is the host-bound context the registry discovers layers from.
// Binding is single-assignment with explicit rebind semantics: a rebind
// replaces the whole registry and selection state.
type MapContext struct {
	ID     string     `json:"id"`
	Layers []MapLayer `json:"layers"`
}

// LayerDescriptor is the metadata handle for a queryable remote feature
// source. Immutable once discovered.
type LayerDescriptor struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Endpoint string `json:"endpoint"`
}
