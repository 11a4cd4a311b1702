package processor

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Document is the page sink the assembler writes to.
type Document interface {
	// RegisterImage loads an image file so later pages can show it. A
	// failure leaves the document usable.
	RegisterImage(path string) error
	AddPage()
	// WriteLine writes text at the cursor and moves to the next line.
	WriteLine(text string)
	// NewLine moves the cursor down by the height of the last line written.
	NewLine()
	// PlaceImage draws a registered image at the cursor. Zero width and
	// height mean the image's natural size.
	PlaceImage(path string, width, height float64) error
	// Finalize writes the document to path. It is called once.
	Finalize(path string) error
}

const (
	lineHeight = 4.0
	fontSize   = 8.0
	imageType  = "JPG"
)

type pdfDocument struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
}

// NewDocument returns an A4 portrait document measured in millimetres.
func NewDocument() Document {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("helvetica", "", fontSize)
	return &pdfDocument{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (d *pdfDocument) RegisterImage(path string) error {
	d.pdf.RegisterImageOptions(path, gofpdf.ImageOptions{ImageType: imageType})
	if err := d.pdf.Error(); err != nil {
		d.pdf.ClearError()
		return fmt.Errorf("register image: %w", err)
	}
	return nil
}

func (d *pdfDocument) AddPage() {
	d.pdf.AddPage()
	d.pdf.SetFont("helvetica", "", fontSize)
}

func (d *pdfDocument) WriteLine(text string) {
	d.pdf.Write(lineHeight, d.translate(text))
	d.pdf.Ln(-1)
}

func (d *pdfDocument) NewLine() {
	d.pdf.Ln(-1)
}

func (d *pdfDocument) PlaceImage(path string, width, height float64) error {
	x, y := d.pdf.GetXY()
	d.pdf.ImageOptions(path, x, y, width, height, false, gofpdf.ImageOptions{ImageType: imageType}, 0, "")
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("place image: %w", err)
	}
	return nil
}

func (d *pdfDocument) Finalize(path string) error {
	if err := d.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
