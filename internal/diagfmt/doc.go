// Package diagfmt renders diagnostic records into human-readable text, JSON,
// and the short one-line-per-record form.
//
// Rendering is pure with respect to the diagnostic store: RenderAll walks the
// records in insertion order and never mutates them. The only IO beyond the
// output sink is the cross-referencer (xref.go), which reopens original
// source files to print "this line originated from ..." notes; all of its
// failures are absorbed into inline annotations so a broken include file can
// never abort rendering.
package diagfmt
