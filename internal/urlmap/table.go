package urlmap

import (
	"fmt"
	"iter"
	"net/url"
	"strings"
	"unicode"
)

// Entry is a single namespace to base URL mapping.
type Entry struct {
	// Namespace identifies a group of API symbols (e.g., "GLib")
	Namespace string `yaml:"namespace" json:"namespace"`

	// BaseURL is the documentation root for the namespace, ending in "/"
	BaseURL string `yaml:"base_url" json:"base_url"`
}

// String returns the entry as "Namespace -> BaseURL".
func (e Entry) String() string {
	return e.Namespace + " -> " + e.BaseURL
}

// Table holds an ordered, immutable set of entries.
type Table struct {
	// entries keeps definition order
	entries []Entry

	// index maps namespaces to positions in entries
	index map[string]int
}

// New builds a table from entries in the order given.
// Every entry is validated; a namespace appearing twice is rejected.
func New(entries []Entry) (*Table, error) {
	t := &Table{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for i, e := range entries {
		if err := validateEntry(i, e); err != nil {
			return nil, err
		}

		if prev, exists := t.index[e.Namespace]; exists {
			return nil, &EntryError{
				Row:       i,
				Namespace: e.Namespace,
				Reason:    fmt.Sprintf("already defined by entry %d", prev),
				Err:       ErrDuplicateNamespace,
			}
		}

		t.index[e.Namespace] = len(t.entries)
		t.entries = append(t.entries, e)
	}

	return t, nil
}

// validateEntry checks the namespace and base URL of a single row.
func validateEntry(row int, e Entry) error {
	invalid := func(reason string) error {
		return &EntryError{Row: row, Namespace: e.Namespace, Reason: reason, Err: ErrInvalidEntry}
	}

	if e.Namespace == "" {
		return invalid("namespace is empty")
	}
	if strings.IndexFunc(e.Namespace, unicode.IsSpace) >= 0 {
		return invalid("namespace contains whitespace")
	}
	if e.BaseURL == "" {
		return invalid("base URL is empty")
	}

	u, err := url.Parse(e.BaseURL)
	if err != nil {
		return invalid(fmt.Sprintf("base URL does not parse: %v", err))
	}
	if u.Scheme == "" || u.Host == "" {
		return invalid(fmt.Sprintf("base URL %q is not absolute", e.BaseURL))
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return invalid(fmt.Sprintf("base URL %q has a query or fragment", e.BaseURL))
	}
	if !strings.HasSuffix(e.BaseURL, "/") {
		return invalid(fmt.Sprintf("base URL %q must end with a trailing slash", e.BaseURL))
	}

	return nil
}

// Lookup returns the base URL for namespace.
// The second result is false when the namespace is not in the table.
func (t *Table) Lookup(namespace string) (string, bool) {
	i, ok := t.index[namespace]
	if !ok {
		return "", false
	}
	return t.entries[i].BaseURL, true
}

// Get is Lookup for callers that propagate errors.
// Returns an error wrapping ErrNamespaceNotFound when the namespace is absent.
func (t *Table) Get(namespace string) (string, error) {
	base, ok := t.Lookup(namespace)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNamespaceNotFound, namespace)
	}
	return base, nil
}

// Contains reports whether namespace is in the table.
func (t *Table) Contains(namespace string) bool {
	_, ok := t.index[namespace]
	return ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of all entries in definition order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// All iterates namespace and base URL pairs in definition order.
func (t *Table) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, e := range t.entries {
			if !yield(e.Namespace, e.BaseURL) {
				return
			}
		}
	}
}

// Namespaces returns the namespaces in definition order.
func (t *Table) Namespaces() []string {
	names := make([]string, 0, len(t.entries))
	for _, e := range t.entries {
		names = append(names, e.Namespace)
	}
	return names
}

// Resolve appends a page path to the namespace's base URL.
//
// An empty page returns the base URL itself. Leading slashes are dropped and
// ".." segments are rejected, so the page always lands under the base.
// Absolute URLs are rejected with ErrInvalidPath.
func (t *Table) Resolve(namespace, page string) (string, error) {
	base, err := t.Get(namespace)
	if err != nil {
		return "", err
	}
	if page == "" {
		return base, nil
	}

	ref, err := url.Parse(page)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidPath, page, err)
	}
	if ref.IsAbs() || ref.Host != "" {
		return "", fmt.Errorf("%w: %q is not a relative path", ErrInvalidPath, page)
	}
	// ref.Path is decoded, so "%2e%2e" is caught here too
	for _, seg := range strings.Split(ref.Path, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q leaves the namespace base URL", ErrInvalidPath, page)
		}
	}

	return base + strings.TrimLeft(page, "/"), nil
}

// Source is a table tagged with the name reported in merge conflicts,
// typically the file it was loaded from.
type Source struct {
	Name  string
	Table *Table
}

// MergeSources concatenates the tables of sources in order. Sources with a
// nil table are skipped. A namespace defined by more than one source is
// rejected with an *EntryError naming both sources and their rows.
func MergeSources(sources ...Source) (*Table, error) {
	type origin struct {
		source string
		row    int
	}

	t := &Table{index: make(map[string]int)}
	seen := make(map[string]origin)

	for _, src := range sources {
		if src.Table == nil {
			continue
		}
		for row, e := range src.Table.entries {
			if prev, exists := seen[e.Namespace]; exists {
				return nil, &EntryError{
					Source:    src.Name,
					Row:       row,
					Namespace: e.Namespace,
					Reason:    fmt.Sprintf("already defined by %s entry %d", prev.source, prev.row),
					Err:       ErrDuplicateNamespace,
				}
			}
			seen[e.Namespace] = origin{source: src.Name, row: row}
			t.index[e.Namespace] = len(t.entries)
			t.entries = append(t.entries, e)
		}
	}

	return t, nil
}

// Merge returns a new table holding the receiver's entries followed by the
// entries of others. Nil tables are skipped. Conflicts name tables by
// position: "table 0" is the receiver, "table 1" the first of others.
func (t *Table) Merge(others ...*Table) (*Table, error) {
	sources := make([]Source, 0, len(others)+1)
	sources = append(sources, Source{Name: "table 0", Table: t})
	for i, o := range others {
		sources = append(sources, Source{Name: fmt.Sprintf("table %d", i+1), Table: o})
	}
	return MergeSources(sources...)
}
