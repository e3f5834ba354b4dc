// Package catalog owns the in-memory collection of catalog entries.
//
// A Catalog is a single-writer cache over a storage.Collection. Every
// mutation rewrites the whole collection through SaveAll; when that fails
// the in-memory change is rolled back so the session never drifts from
// durable storage. Refresh re-reads the collection explicitly.
//
// Mutations are serialized by a mutex inside one Catalog. Two Catalogs (or
// processes) sharing one store still race at whole-collection granularity
// and the last SaveAll wins.
package catalog
