package report

import (
	"reflect"
	"testing"
)

func TestAggregatorRecord(t *testing.T) {
	agg := NewAggregator()

	// Two constraints differing only in upper bound land in one bucket.
	agg.Record("2.16", "acme.tools", 100)
	agg.Record("2.16", "acme.extras", 50)
	agg.Record("2.9", "legacy.stuff", 7)

	bucket := agg.Bucket("2.16")
	want := []Entry{
		{Name: "acme.tools", Downloads: 100},
		{Name: "acme.extras", Downloads: 50},
	}
	if !reflect.DeepEqual(bucket, want) {
		t.Errorf("Bucket(2.16) = %+v, want %+v (arrival order)", bucket, want)
	}

	if agg.Total() != 3 {
		t.Errorf("Total() = %d, want 3", agg.Total())
	}
}

func TestAggregatorTotalMatchesRecordCount(t *testing.T) {
	agg := NewAggregator()
	versions := []string{"2.9", "2.10", "2.9", "2.16", "2.10", "2.9"}
	for i, v := range versions {
		agg.Record(v, "ns.name", i)
	}
	if agg.Total() != len(versions) {
		t.Errorf("Total() = %d, want %d", agg.Total(), len(versions))
	}
}

func TestAggregatorUnknownBucket(t *testing.T) {
	agg := NewAggregator()
	if got := agg.Bucket("3.0"); got != nil {
		t.Errorf("Bucket(3.0) = %v, want nil", got)
	}
	if agg.Total() != 0 {
		t.Errorf("Total() = %d, want 0", agg.Total())
	}
}

func TestAggregatorVersionsSortedNumerically(t *testing.T) {
	agg := NewAggregator()
	for _, v := range []string{"2.16", "2.9", "2.10"} {
		agg.Record(v, "ns.name", 0)
	}

	got := agg.Versions()
	want := []string{"2.9", "2.10", "2.16"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Versions() = %v, want %v", got, want)
	}
}
