// Package citeneeded finds "citation needed" passages in a Wikipedia article.
// It fetches a single page, locates the inline citation-needed markers, and
// reports the paragraph around each marker, optionally grouped by section.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, rod/).
package citeneeded
