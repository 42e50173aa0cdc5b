// Package retry provides backoff and retry execution for object store
// requests.
//
// Retrying lives entirely inside the storage client: the indexing walk
// itself never retries, because a partially-indexed repository would
// silently under-report duplicates. A request that still fails after the
// configured attempts surfaces as a fatal connectivity error for the run.
package retry
