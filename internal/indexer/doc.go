// Package indexer orchestrates one indexing run: for each configured
// repository reference, walk its object tree, parse every data
// dictionary file, checksum the raw content, and record the resulting
// study in the cross-repository index.
//
// Repositories are processed strictly in the order given, one file at a
// time. Any store, parse, or read error aborts the whole run.
package indexer
