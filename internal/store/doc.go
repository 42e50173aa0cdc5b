// Package store provides ddindex.ObjectStore implementations.
//
// Available implementations:
//   - LakeFSClient: reads repositories through the lakeFS REST API
//   - MemoryStore: in-memory repository fixtures for testing
//
// Both are read-only; nothing in this tool ever writes to a repository.
package store
