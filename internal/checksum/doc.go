// Package checksum computes content digests for indexed dictionary files.
//
// Two digests are recorded per file: one over the raw bytes, and one over
// whitespace-normalized content. Comparing them across files that declare
// the same study_id tells a duplicate apart from a reformatted copy.
package checksum
