// Package report accumulates per-runtime-version statistics over a
// walk and writes the optional workbook export.
package report

import (
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Entry is one collection inside a version bucket.
type Entry struct {
	Name      string // fully qualified collection name
	Downloads int    // lifetime download count
}

// Aggregator groups collections into buckets keyed by their minimum
// required runtime version ("major.minor"). Buckets are created on
// first use and never removed; within a bucket, entries keep arrival
// order. Not safe for concurrent use.
type Aggregator struct {
	buckets map[string][]Entry
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{buckets: make(map[string][]Entry)}
}

// Record appends a collection to the bucket for version, creating the
// bucket if it does not exist yet.
func (a *Aggregator) Record(version, name string, downloads int) {
	a.buckets[version] = append(a.buckets[version], Entry{Name: name, Downloads: downloads})
}

// Bucket returns the entries recorded under version, in arrival order.
// It returns nil for a version that was never recorded.
func (a *Aggregator) Bucket(version string) []Entry {
	return a.buckets[version]
}

// Versions returns all bucket keys in ascending version order.
// Keys that do not parse as versions sort last, alphabetically.
func (a *Aggregator) Versions() []string {
	keys := make([]string, 0, len(a.buckets))
	for k := range a.buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		vi, erri := semver.NewVersion(keys[i])
		vj, errj := semver.NewVersion(keys[j])
		if erri != nil || errj != nil {
			if (erri == nil) != (errj == nil) {
				return erri == nil
			}
			return keys[i] < keys[j]
		}
		return vi.LessThan(vj)
	})
	return keys
}

// Total returns the number of entries across all buckets. It equals
// the number of Record calls made.
func (a *Aggregator) Total() int {
	n := 0
	for _, entries := range a.buckets {
		n += len(entries)
	}
	return n
}
