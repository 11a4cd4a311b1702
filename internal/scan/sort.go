package scan

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrInvalidSortTarget = errors.New("invalid sort target")
	ErrInvalidSortOrder  = errors.New("invalid sort order")
)

// SortField selects the descriptor field a FileSet is ordered by.
type SortField int

const (
	SortNone SortField = iota
	SortName
	SortSize
	SortCreation
	SortModified
)

func (f SortField) String() string {
	switch f {
	case SortName:
		return "name"
	case SortSize:
		return "size"
	case SortCreation:
		return "creation"
	case SortModified:
		return "modify"
	default:
		return "none"
	}
}

type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortKey pairs a field with a direction. The zero value keeps scan order.
type SortKey struct {
	Field     SortField
	Direction Direction
}

func (k SortKey) String() string {
	if k.Field == SortNone {
		return "none"
	}
	return k.Field.String() + "," + k.Direction.String()
}

// ParseSortKey maps the words name|size|creation|modify and asc|desc to a
// key. An empty order means ascending.
func ParseSortKey(target, order string) (SortKey, error) {
	key := SortKey{}

	switch strings.ToLower(strings.TrimSpace(target)) {
	case "name":
		key.Field = SortName
	case "size":
		key.Field = SortSize
	case "creation":
		key.Field = SortCreation
	case "modify":
		key.Field = SortModified
	default:
		return SortKey{}, fmt.Errorf("%w: %q", ErrInvalidSortTarget, target)
	}

	switch strings.ToLower(strings.TrimSpace(order)) {
	case "", "asc":
		key.Direction = Ascending
	case "desc":
		key.Direction = Descending
	default:
		return SortKey{}, fmt.Errorf("%w: %q", ErrInvalidSortOrder, order)
	}

	return key, nil
}

// ParseSortSpec parses the combined "target[,order]" form of the -s flag.
func ParseSortSpec(spec string) (SortKey, error) {
	target, order, _ := strings.Cut(spec, ",")
	return ParseSortKey(target, order)
}

// Sort returns set reordered by key. Entries with equal key values keep
// their relative order in either direction; set itself is not modified.
func Sort(set FileSet, key SortKey) FileSet {
	entries := set.Entries()

	compare := comparator(key.Field)
	if compare == nil {
		return fileSetOf(entries)
	}
	if key.Direction == Descending {
		asc := compare
		compare = func(a, b FileDescriptor) int { return asc(b, a) }
	}

	slices.SortStableFunc(entries, compare)
	return fileSetOf(entries)
}

func comparator(field SortField) func(a, b FileDescriptor) int {
	switch field {
	case SortName:
		return func(a, b FileDescriptor) int { return strings.Compare(a.BaseName, b.BaseName) }
	case SortSize:
		return func(a, b FileDescriptor) int { return cmp.Compare(a.Size, b.Size) }
	case SortCreation:
		return func(a, b FileDescriptor) int { return a.Created.Compare(b.Created) }
	case SortModified:
		return func(a, b FileDescriptor) int { return a.Modified.Compare(b.Modified) }
	default:
		return nil
	}
}
