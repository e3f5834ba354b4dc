// Package ingestion provides the thumbnail pipeline for captured photos.
//
// The Pipeline type renders a downscaled JPEG for each catalog entry:
//   - Reading the photo referenced by the entry
//   - Skipping photos whose thumbnail is already current
//   - Decoding, orienting, resizing and re-encoding the image
//   - Storing the result in a thumbnail repository
//
// Processing is performed concurrently using a worker pool.
// Errors during async processing are logged but never reach the catalog;
// an entry without a thumbnail is still a valid entry.
package ingestion
