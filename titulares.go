// Package titulares extracts news headlines from a fixed set of Colombian
// news sites. It downloads each site's front page as raw HTML, maps the
// site-specific markup into a uniform headline record, normalizes the
// headline text, and writes the result as partitioned CSV objects.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, http/).
package titulares
