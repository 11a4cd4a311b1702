package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/djherbis/times"
	"github.com/gabriel-vasile/mimetype"
)

// FileDescriptor holds the metadata of one discovered file. Values are
// created once by Describe and never modified afterwards.
type FileDescriptor struct {
	Path          string
	BaseName      string
	BaseNameNoExt string
	Extension     string
	MimeType      string
	Size          int64
	Created       time.Time
	Modified      time.Time
	Accessed      time.Time
}

// IsImage reports whether the sniffed mime type is an image type.
func (d FileDescriptor) IsImage() bool {
	return strings.HasPrefix(d.MimeType, "image")
}

// Describe stats and sniffs the file at path. An error means the file can no
// longer be read, which callers treat as a reason to skip it.
func Describe(path string) (FileDescriptor, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return FileDescriptor{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return FileDescriptor{}, err
	}
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return FileDescriptor{}, fmt.Errorf("detect mime type: %w", err)
	}

	base := filepath.Base(path)
	ext := filepath.Ext(base)

	return FileDescriptor{
		Path:          path,
		BaseName:      base,
		BaseNameNoExt: strings.TrimSuffix(base, ext),
		Extension:     strings.TrimPrefix(ext, "."),
		MimeType:      mime.String(),
		Size:          info.Size(),
		Created:       creationTime(ts),
		Modified:      ts.ModTime(),
		Accessed:      ts.AccessTime(),
	}, nil
}

func creationTime(ts times.Timespec) time.Time {
	if ts.HasBirthTime() {
		return ts.BirthTime()
	}
	if ts.HasChangeTime() {
		return ts.ChangeTime()
	}
	return ts.ModTime()
}

// Properties lists the descriptor fields for plain-text reports.
func (d FileDescriptor) Properties() []string {
	return []string{
		d.BaseName,
		d.Extension,
		d.MimeType,
		fmt.Sprintf("%d bytes", d.Size),
		"created " + d.Created.Format(time.DateTime),
		"modified " + d.Modified.Format(time.DateTime),
	}
}
