package badger

// Key prefixes for different data types
const (
	kvPrefix        = "kv"
	thumbnailPrefix = "thumb"
)

// makeKVKey generates the badger key for a storage.KV key.
// KV keys get their own namespace so they never collide with internal records.
func makeKVKey(key string) []byte {
	prefix := kvPrefix + ":"
	buf := make([]byte, len(prefix)+len(key))
	offset := copy(buf, prefix)
	copy(buf[offset:], key)
	return buf
}

// makeThumbnailKey generates a key for a thumbnail by entry ID.
func makeThumbnailKey(entryID string) []byte {
	return []byte(thumbnailPrefix + ":" + entryID)
}
