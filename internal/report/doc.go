// Package report renders the two outputs of an indexing run: a JSON
// duplicate report mapping colliding study identifiers to their file
// paths, and a CSV coverage matrix showing which repositories carry
// which studies and in what detail.
//
// Both renderers are pure functions of the index; all the grouping
// decisions (what counts as a duplicate, which paths are offending)
// live in the index package.
package report
