package processor

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Keep pdfcpu from creating its config folder under the user's home.
	api.DisableConfigDir()
}

// VerifyDocument validates the PDF at path and returns its page count.
func VerifyDocument(path string) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	if err := api.ValidateFile(path, conf); err != nil {
		return 0, fmt.Errorf("validate %s: %w", path, err)
	}

	pages, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("count pages of %s: %w", path, err)
	}
	return pages, nil
}
