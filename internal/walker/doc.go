// Package walker traverses a repository's object tree and yields the
// content of every data dictionary file it contains.
//
// The traversal is depth-first and strictly sequential: entries are
// visited in the order the store lists them, one at a time. Objects
// whose path does not end in ".xml" (case-insensitively) are skipped
// with a verbose log line. A listing entry whose type is neither an
// object nor a directory aborts the traversal, because guessing at an
// unknown store entry could silently drop dictionary files from the
// index.
package walker
