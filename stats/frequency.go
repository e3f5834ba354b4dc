package stats

import (
	"cmp"
	"slices"
)

// FrequencyTable maps a dimension value to the number of entries sharing it.
type FrequencyTable map[string]int

// Bucket is one row of a FrequencyTable.
type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Add increments key by one.
func (t FrequencyTable) Add(key string) {
	t[key]++
}

// Total returns the sum of all counts.
func (t FrequencyTable) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Sorted returns the buckets by count descending, then key ascending.
func (t FrequencyTable) Sorted() []Bucket {
	buckets := make([]Bucket, 0, len(t))
	for k, n := range t {
		buckets = append(buckets, Bucket{Key: k, Count: n})
	}
	slices.SortFunc(buckets, func(a, b Bucket) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return buckets
}

// Ordered returns a bucket for each of keys, in that order.
// Keys missing from the table are reported with a zero count.
func (t FrequencyTable) Ordered(keys []string) []Bucket {
	buckets := make([]Bucket, len(keys))
	for i, k := range keys {
		buckets[i] = Bucket{Key: k, Count: t[k]}
	}
	return buckets
}
