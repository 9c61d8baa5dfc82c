package ports

// EndpointSource is one lookup strategy in the endpoint resolution chain.
type EndpointSource interface {
	// Name identifies the source in diagnostics ("buildinfo", "settings").
	Name() string
	// Lookup returns the candidate URL, or "" when this source has nothing.
	Lookup() string
}

// EndpointResolver resolves the backend URL. An empty result means "not
// configured" and is not an error; callers decide how to surface it.
type EndpointResolver interface {
	Resolve() string
}
