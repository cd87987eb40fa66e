package titulares

// Source identifies a supported news site.
type Source string

// Known sources. The set is closed: adding a source means adding a new
// adapter variant, not modifying existing ones.
const (
	SourceUnknown    Source = ""
	SourceElTiempo   Source = "eltiempo"
	SourcePublimetro Source = "publimetro"
)

// Site pairs a source with the URL its front page is downloaded from.
type Site struct {
	Source Source `yaml:"source"`
	URL    string `yaml:"url"`
}

// DefaultSites lists the sites the downloader visits when no configuration
// is supplied.
func DefaultSites() []Site {
	return []Site{
		{Source: SourceElTiempo, URL: "https://www.eltiempo.com"},
		{Source: SourcePublimetro, URL: "https://www.publimetro.co"},
	}
}

// SiteAdapter extracts headline records from one source's known markup
// shape. Adapters return raw (un-normalized) titles; normalization is the
// extractor's responsibility.
type SiteAdapter interface {
	// Source returns the source this adapter handles.
	Source() Source

	// ExtractHeadlines parses the page HTML and returns headlines in
	// document order. Article nodes missing a required child element are
	// skipped, not reported as errors.
	ExtractHeadlines(html string) ([]Headline, error)
}

// AdapterRegistry maps an object key to the adapter for its source.
type AdapterRegistry interface {
	// Resolve matches known source identifiers against the object key
	// (case-insensitive substring match) and returns the adapter.
	// Returns EUNSUPPORTED when no identifier matches.
	Resolve(objectKey string) (SiteAdapter, error)

	// Register adds an adapter for a source, replacing any existing one.
	Register(source Source, adapter SiteAdapter)

	// List returns all registered sources.
	List() []Source
}
