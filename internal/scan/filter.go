package scan

import "strings"

// Filter restricts which image files a scan keeps. The zero value keeps
// every image.
type Filter struct {
	// Extensions is matched against the raw extension, case-sensitively.
	Extensions map[string]struct{}
	// Names are substrings matched case-insensitively against the base name
	// without extension; any one match is enough.
	Names []string
}

// NewFilter builds a filter from CLI-style token lists. Tokens are trimmed
// and empty ones dropped.
func NewFilter(extensions, names []string) Filter {
	f := Filter{}
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if f.Extensions == nil {
			f.Extensions = make(map[string]struct{})
		}
		f.Extensions[ext] = struct{}{}
	}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		f.Names = append(f.Names, strings.ToLower(name))
	}
	return f
}

// Match applies the mime, extension and name rules to d.
func (f Filter) Match(d FileDescriptor) bool {
	if !d.IsImage() {
		return false
	}
	if len(f.Extensions) > 0 {
		if _, ok := f.Extensions[d.Extension]; !ok {
			return false
		}
	}
	if len(f.Names) == 0 {
		return true
	}
	name := strings.ToLower(d.BaseNameNoExt)
	for _, token := range f.Names {
		if strings.Contains(name, strings.ToLower(token)) {
			return true
		}
	}
	return false
}
