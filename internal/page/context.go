// Package page defines the per-render input model: the logical page
// identity, navigation links, display flags, and the ordered script asset
// list mutated during composition.
package page

// Link describes one navigation entry as supplied by the documentation
// pipeline. PathSegments are joined by the asset resolver into a site URL.
type Link struct {
	Label        string
	PathSegments []string
}

// Flags gates the optional footer attribution lines. Absent flags default to
// false.
type Flags struct {
	ShowCopyright   bool
	ShowLastUpdated bool
	ShowBuiltWith   bool
}

// Context carries everything one render needs. It is constructed once per
// render and treated as immutable, with the exception of Scripts which the
// composition pipeline appends to (order-preserving, duplicate-free).
type Context struct {
	// PageID is the logical page identity, e.g. "index" or
	// "nb_tutorials/index". It drives conditional head injection.
	PageID string

	// NavLinks is the ordered navigation bar content. Order is
	// caller-significant.
	NavLinks []Link

	// Scripts is the ordered list of script asset paths queued for the
	// document head. Never nil after NewContext.
	Scripts *ScriptList

	Flags Flags

	// Footer attribution inputs; each only consulted when the matching
	// flag is set.
	CopyrightText    string
	CopyrightPage    string // optional page id the copyright line links to
	LastUpdatedText  string
	BuiltWithVersion string

	// Strings holds translated UI strings keyed by message id. Missing
	// keys fall back to the built-in English text.
	Strings map[string]string
}

// NewContext returns a Context for the given page with an empty script list.
func NewContext(pageID string) *Context {
	return &Context{
		PageID:  pageID,
		Scripts: NewScriptList(),
	}
}

// Text returns the translated string for key, or fallback when the context
// carries no translation.
func (c *Context) Text(key, fallback string) string {
	if c.Strings != nil {
		if s, ok := c.Strings[key]; ok && s != "" {
			return s
		}
	}
	return fallback
}
