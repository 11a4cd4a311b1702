package processor

import (
	"img2pdf/internal/scan"
	"img2pdf/pkg/imgutil"
)

// Result describes what happened to one input file.
type Result struct {
	Path   string
	File   scan.FileDescriptor
	Kind   imgutil.Kind
	Width  int
	Height int
	Placed Size
	Added  bool
	Err    error
}

type Summary struct {
	Found   int
	Added   int
	Skipped int
	// Pages is the page count read back from the written document.
	Pages int
}

// ProgressUpdate is streamed to the presentation layer while pages are
// assembled. Current is set once per processed file.
type ProgressUpdate struct {
	TotalDelta   int
	AddedDelta   int
	SkippedDelta int
	Current      *Result
}
