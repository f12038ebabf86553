// Package urlmap maps documentation namespaces to the base URLs where their
// online API reference is published.
//
// A documentation generator uses the table to turn a cross-reference such as
// "GLib.Variant" into a link: the namespace selects the base URL and the
// symbol page is appended to it.
//
// # Data Format
//
// A map is a list of two-element string arrays, one [namespace, base_url]
// pair per row. YAML and JSON documents of that shape are both accepted:
//
//	[
//	  ["GLib", "https://docs.gtk.org/glib/"],
//	  ["Gio", "https://docs.gtk.org/gio/"],
//	  ["GObject", "https://docs.gtk.org/gobject/"]
//	]
//
// The built-in table is embedded from urlmap.yaml and returned by Default.
//
// # Validation
//
// Namespaces are case-sensitive and unique. A table containing the same
// namespace twice is rejected with ErrDuplicateNamespace; rows are never
// merged or shadowed. Base URLs must be absolute (scheme and host) and end
// with a trailing slash.
//
// # Usage
//
//	base, ok := urlmap.Default().Lookup("GLib")
//	if !ok {
//	    // unresolved namespace; the caller decides how to report it
//	}
//
//	page, err := urlmap.Default().Resolve("Gio", "class.File.html")
//
// # Thread Safety
//
// Tables are immutable after construction and may be shared between
// goroutines without locking.
package urlmap
