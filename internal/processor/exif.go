package processor

import (
	"errors"
	"io"
	"strings"

	exif "github.com/dsoprea/go-exif/v3"
)

// ExifSummary holds the camera details printed in debug page headers.
type ExifSummary struct {
	Device   string
	Captured string
}

func (s ExifSummary) Empty() bool {
	return s.Device == "" && s.Captured == ""
}

func (s ExifSummary) String() string {
	return strings.TrimSpace(s.Device + " " + s.Captured)
}

func analyzeExif(rs io.ReadSeeker) (ExifSummary, error) {
	summary := ExifSummary{}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return summary, err
	}

	raw, err := exif.SearchAndExtractExifWithReader(rs)
	if errors.Is(err, exif.ErrNoExif) {
		return summary, nil
	}
	if err != nil {
		return summary, err
	}

	tags, _, err := exif.GetFlatExifData(raw, nil)
	if err != nil {
		return summary, err
	}

	values := make(map[string]string)
	for _, tag := range tags {
		if _, seen := values[tag.TagName]; seen {
			continue
		}
		values[tag.TagName] = strings.TrimSpace(tag.FormattedFirst)
	}

	device := strings.TrimSpace(values["Make"] + " " + values["Model"])
	if device == "" {
		device = values["CameraModelName"]
	}
	summary.Device = device

	for _, name := range []string{"DateTimeOriginal", "DateTimeDigitized", "DateTime"} {
		if ts := values[name]; ts != "" {
			summary.Captured = replaceFirstN(ts, ":", "-", 2)
			break
		}
	}

	return summary, nil
}

func replaceFirstN(s, old, new string, n int) string {
	if n <= 0 || old == "" {
		return s
	}
	out := s
	for i := 0; i < n; i++ {
		if idx := strings.Index(out, old); idx >= 0 {
			out = out[:idx] + new + out[idx+len(old):]
		} else {
			break
		}
	}
	return out
}
