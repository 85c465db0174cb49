// Package libdiff computes a minimal patch describing the
// transformation from one document to another.
//
// The resulting patch contains only add, remove and replace
// operations; applying it to the left document yields a document
// deep-equal to the right one.
package libdiff
