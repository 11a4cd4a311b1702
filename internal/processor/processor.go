package processor

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"img2pdf/internal/config"
	"img2pdf/internal/scan"
)

// Run builds the output document described by cfg: one page per supported
// image under cfg.Input, in cfg.Sort order. The temp folder lives for the
// duration of the call and is removed on every return path. Files that
// cannot be decoded are skipped and counted; only a missing or unreadable
// input folder, a cancelled ctx, or a failure to write the document is
// returned as an error, and only the last of these can leave an output
// file behind.
func Run(ctx context.Context, cfg config.Config, updates chan<- ProgressUpdate) (Summary, error) {
	summary := Summary{}

	temp, err := AcquireTempDir(cfg.TempDir)
	if err != nil {
		return summary, err
	}
	defer func() {
		if err := temp.Release(); err != nil {
			slog.Warn("Failed to remove temp folder", "path", temp.Path(), "error", err)
		}
	}()

	set, err := scan.Scan(cfg.Input, cfg.Recursive, cfg.Filter)
	if err != nil {
		return summary, err
	}
	files := scan.Sort(set, cfg.Sort).Entries()
	summary.Found = len(files)
	slog.Debug("Scanned input folder", "path", cfg.Input, "files", len(files), "sort", cfg.Sort.String())

	if updates != nil {
		updates <- ProgressUpdate{TotalDelta: len(files)}
	}

	asm := &assembler{cfg: cfg, doc: NewDocument(), temp: temp}
	for _, file := range files {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return summary, err
			}
		}

		res, err := asm.addFile(file)
		if err != nil {
			return summary, err
		}

		update := ProgressUpdate{Current: &res}
		if res.Added {
			summary.Added++
			update.AddedDelta = 1
		} else {
			summary.Skipped++
			update.SkippedDelta = 1
		}
		if updates != nil {
			updates <- update
		}
	}

	if err := asm.doc.Finalize(cfg.Output); err != nil {
		return summary, err
	}

	pages, err := VerifyDocument(cfg.Output)
	if err != nil {
		return summary, err
	}
	summary.Pages = pages

	return summary, nil
}

type assembler struct {
	cfg  config.Config
	doc  Document
	temp *TempDir
}

// addFile turns one file into one page. Per-file problems are reported in
// the Result; the returned error is reserved for a document that can no
// longer be written.
func (a *assembler) addFile(file scan.FileDescriptor) (Result, error) {
	res := Result{Path: file.Path, File: file}

	decoded, err := decodeImage(file.Path)
	res.Kind = decoded.kind
	if err != nil {
		return a.skip(res, err), nil
	}
	res.Width = decoded.width
	res.Height = decoded.height

	size := ComputeScaledImageSize(a.cfg.Page.MaxWidth, a.cfg.Page.MaxHeight, float64(decoded.width), float64(decoded.height))
	res.Placed = size

	tmp := a.temp.NewFile(".jpg")
	if err := encodeJPEG(decoded.img, tmp, a.cfg.JPEGQuality); err != nil {
		return a.skip(res, fmt.Errorf("encode: %w", err)), nil
	}
	if err := a.doc.RegisterImage(tmp); err != nil {
		return a.skip(res, err), nil
	}

	a.doc.AddPage()
	if a.cfg.Debug {
		a.doc.WriteLine(a.header(res))
	} else {
		a.doc.NewLine()
	}

	var width, height float64
	if size.Scaled(decoded.width, decoded.height) {
		width, height = size.Width, size.Height
	}
	if err := a.doc.PlaceImage(tmp, width, height); err != nil {
		return res, err
	}

	res.Added = true
	slog.Debug("Added page", "path", file.Path, "kind", decoded.kind.String(),
		"width", decoded.width, "height", decoded.height,
		"placed_width", size.Width, "placed_height", size.Height)
	return res, nil
}

func (a *assembler) skip(res Result, err error) Result {
	res.Err = err
	slog.Debug("Skipping file", "path", res.Path, "mime", res.File.MimeType, "error", err)
	return res
}

// header is the debug line printed above each image.
func (a *assembler) header(res Result) string {
	line := fmt.Sprintf("N:%s D:%dx%d T:%s MT:%s",
		res.File.BaseName, res.Width, res.Height, res.Kind, res.File.MimeType)

	file, err := os.Open(res.Path)
	if err != nil {
		return line
	}
	defer file.Close()

	summary, err := analyzeExif(file)
	if err != nil {
		slog.Debug("Unreadable EXIF data", "path", res.Path, "error", err)
		return line
	}
	if !summary.Empty() {
		line += " EXIF:" + summary.String()
	}
	return line
}
