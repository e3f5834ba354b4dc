// Package importer moves catalogs in and out of capdex.
//
// Run reads a JSON array of entries, either a capdex export or the photo
// list kept by the original mobile app (which names the photo "uri", the
// alcohol content "percentage" and the production year "year"), and adds
// every entry that is valid and not already cataloged. Entries keep their
// ids and creation times. Batches that fail to persist are retried with
// exponential backoff.
//
// Export writes the collection as indented JSON in the capdex format.
package importer
