// Package pagemd converts saved webpage bundles (an HTML file plus the
// browser's local assets folder) into single, self-contained Markdown
// documents with a YAML-style metadata header.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, fs/).
package pagemd
