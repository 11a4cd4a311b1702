package scan

// FileSet is an ordered mapping from absolute path to FileDescriptor. The
// order is the scan order until Sort returns a reordered copy.
type FileSet struct {
	order  []string
	byPath map[string]FileDescriptor
}

// NewFileSet returns an empty set.
func NewFileSet() FileSet {
	return FileSet{byPath: make(map[string]FileDescriptor)}
}

// Add appends d keyed by d.Path. A path already present is left untouched
// and Add reports false.
func (s *FileSet) Add(d FileDescriptor) bool {
	if s.byPath == nil {
		s.byPath = make(map[string]FileDescriptor)
	}
	if _, ok := s.byPath[d.Path]; ok {
		return false
	}
	s.byPath[d.Path] = d
	s.order = append(s.order, d.Path)
	return true
}

// Merge appends every entry of other in its order.
func (s *FileSet) Merge(other FileSet) {
	for _, path := range other.order {
		if d, ok := other.get(path); ok {
			s.Add(d)
		}
	}
}

func (s FileSet) Len() int {
	return len(s.order)
}

func (s FileSet) get(path string) (FileDescriptor, bool) {
	d, ok := s.byPath[path]
	return d, ok
}

// Paths returns the keys in set order.
func (s FileSet) Paths() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Entries returns the descriptors in set order.
func (s FileSet) Entries() []FileDescriptor {
	out := make([]FileDescriptor, 0, len(s.order))
	for _, path := range s.order {
		out = append(out, s.byPath[path])
	}
	return out
}

func fileSetOf(entries []FileDescriptor) FileSet {
	set := FileSet{
		order:  make([]string, 0, len(entries)),
		byPath: make(map[string]FileDescriptor, len(entries)),
	}
	for _, d := range entries {
		set.Add(d)
	}
	return set
}
