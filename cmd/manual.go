package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"img2pdf/internal/config"
	"img2pdf/internal/tui"
)

type manualSection struct {
	title string
	body  []string
}

var manualSections = []manualSection{
	{"NAME", []string{
		"img2pdf - collect the images of a folder into one PDF document",
	}},
	{"DESCRIPTION", []string{
		"Scanned paper documents usually end up as a folder of image files. img2pdf",
		"walks that folder, optionally with every subfolder, and writes each image it",
		"finds on its own A4 page. Images larger than the printable area are scaled",
		"down keeping their aspect ratio; smaller images keep their natural size.",
		"GIF, JPEG, PNG and BMP files are supported; anything else is skipped.",
	}},
	{"FILTERS", []string{
		"-x keeps only files whose extension matches one of the given tokens exactly.",
		"-n keeps only files whose name contains one of the given tokens, ignoring case.",
		"Both filters can be combined; a file must then pass both.",
	}},
	{"SORTING", []string{
		"-s orders pages by name, size, creation or modify time, followed by an",
		"optional asc or desc. Without -s pages follow the order in which files",
		"were discovered. Files with equal keys keep that discovery order.",
	}},
	{"TEMPORARY FILES", []string{
		"Every image is re-encoded as JPEG in a temporary folder before it is placed.",
		"When -t is given a \"temp\" folder is created inside the chosen location,",
		"otherwise " + config.DefaultTemp + " is used. The folder is emptied when a run starts",
		"and removed when it ends.",
	}},
	{"CONFIGURATION", []string{
		"Defaults can be kept in a YAML file passed with -c or named by $" + config.EnvConfigPath + ",",
		"which may also be set in a .env file. Flags given on the command line win.",
	}},
	{"DEBUG MODE", []string{
		"-d raises log verbosity and prints file name, dimensions, format, mime type",
		"and available EXIF camera details above each image.",
	}},
}

func renderManual() string {
	heading := lipgloss.NewStyle().Bold(true).Foreground(tui.ColorAccent)
	body := lipgloss.NewStyle().Foreground(tui.ColorInk).PaddingLeft(4)

	var b strings.Builder
	for i, section := range manualSections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(heading.Render(section.title))
		b.WriteString("\n")
		b.WriteString(body.Render(strings.Join(section.body, "\n")))
	}
	return b.String()
}
