package scan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSet() FileSet {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return fileSetOf([]FileDescriptor{
		{Path: "/in/c.png", BaseName: "c.png", Size: 300, Created: base.Add(2 * time.Hour), Modified: base.Add(1 * time.Minute)},
		{Path: "/in/a.png", BaseName: "a.png", Size: 100, Created: base, Modified: base.Add(3 * time.Minute)},
		{Path: "/in/b.png", BaseName: "b.png", Size: 300, Created: base.Add(1 * time.Hour), Modified: base.Add(2 * time.Minute)},
		{Path: "/in/d.png", BaseName: "d.png", Size: 100, Created: base.Add(3 * time.Hour), Modified: base},
	})
}

func TestSortNoneKeepsScanOrder(t *testing.T) {
	set := sampleSet()
	sorted := Sort(set, SortKey{})
	assert.Equal(t, set.Paths(), sorted.Paths())
}

func TestSortByName(t *testing.T) {
	sorted := Sort(sampleSet(), SortKey{Field: SortName})
	assert.Equal(t, []string{"/in/a.png", "/in/b.png", "/in/c.png", "/in/d.png"}, sorted.Paths())

	sorted = Sort(sampleSet(), SortKey{Field: SortName, Direction: Descending})
	assert.Equal(t, []string{"/in/d.png", "/in/c.png", "/in/b.png", "/in/a.png"}, sorted.Paths())
}

func TestSortBySizeIsStable(t *testing.T) {
	sorted := Sort(sampleSet(), SortKey{Field: SortSize})
	assert.Equal(t, []string{"/in/a.png", "/in/d.png", "/in/c.png", "/in/b.png"}, sorted.Paths())
}

func TestSortBySizeDescendingKeepsGroupOrder(t *testing.T) {
	sorted := Sort(sampleSet(), SortKey{Field: SortSize, Direction: Descending})
	assert.Equal(t, []string{"/in/c.png", "/in/b.png", "/in/a.png", "/in/d.png"}, sorted.Paths())
}

func TestSortSizeIsNumeric(t *testing.T) {
	set := fileSetOf([]FileDescriptor{
		{Path: "/in/big", Size: 10},
		{Path: "/in/small", Size: 9},
	})
	sorted := Sort(set, SortKey{Field: SortSize})
	assert.Equal(t, []string{"/in/small", "/in/big"}, sorted.Paths())
}

func TestSortByTimes(t *testing.T) {
	sorted := Sort(sampleSet(), SortKey{Field: SortCreation})
	assert.Equal(t, []string{"/in/a.png", "/in/b.png", "/in/c.png", "/in/d.png"}, sorted.Paths())

	sorted = Sort(sampleSet(), SortKey{Field: SortModified, Direction: Descending})
	assert.Equal(t, []string{"/in/a.png", "/in/b.png", "/in/c.png", "/in/d.png"}, sorted.Paths())
}

func TestSortDoesNotMutateInput(t *testing.T) {
	set := sampleSet()
	before := set.Paths()
	_ = Sort(set, SortKey{Field: SortName})
	assert.Equal(t, before, set.Paths())
}

func TestParseSortSpec(t *testing.T) {
	cases := []struct {
		spec string
		want SortKey
	}{
		{"name", SortKey{Field: SortName}},
		{"SIZE", SortKey{Field: SortSize}},
		{" creation , desc ", SortKey{Field: SortCreation, Direction: Descending}},
		{"modify,asc", SortKey{Field: SortModified}},
	}
	for _, tc := range cases {
		got, err := ParseSortSpec(tc.spec)
		require.NoError(t, err, tc.spec)
		assert.Equal(t, tc.want, got, tc.spec)
	}
}

func TestParseSortSpecRejectsUnknownWords(t *testing.T) {
	_, err := ParseSortSpec("colour")
	assert.ErrorIs(t, err, ErrInvalidSortTarget)

	_, err = ParseSortSpec("")
	assert.ErrorIs(t, err, ErrInvalidSortTarget)

	_, err = ParseSortSpec("name,sideways")
	assert.ErrorIs(t, err, ErrInvalidSortOrder)
}

func TestSortKeyString(t *testing.T) {
	assert.Equal(t, "none", SortKey{}.String())
	assert.Equal(t, "size,desc", SortKey{Field: SortSize, Direction: Descending}.String())
}
