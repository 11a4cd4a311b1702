package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding a default config
// file path. It may be set in a .env file.
const EnvConfigPath = "IMG2PDF_CONFIG"

// FileConfig mirrors the YAML config file. Pointer fields distinguish
// "absent" from zero values.
type FileConfig struct {
	Input       *string  `yaml:"input"`
	Output      *string  `yaml:"output"`
	Temp        *string  `yaml:"temp"`
	Extensions  []string `yaml:"extensions"`
	Names       []string `yaml:"names"`
	Sort        *string  `yaml:"sort"`
	Recursive   *bool    `yaml:"recursive"`
	Debug       *bool    `yaml:"debug"`
	JPEGQuality *int     `yaml:"jpeg_quality"`
	Page        struct {
		MaxWidth  *float64 `yaml:"max_width"`
		MaxHeight *float64 `yaml:"max_height"`
	} `yaml:"page"`
}

// LoadFile reads a YAML config file. A missing file yields an empty
// FileConfig without error; a malformed one yields ErrConfigFile.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	if path == "" {
		return fc, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fc, nil
	}
	if err != nil {
		return fc, fmt.Errorf("%w: %v", ErrConfigFile, err)
	}

	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("%w: %s: %v", ErrConfigFile, path, err)
	}
	return fc, nil
}

// Apply copies the values present in fc onto o. Temp paths from a file are
// used as given, without the temp subfolder a -t flag gets.
func (fc FileConfig) Apply(o Options) Options {
	if fc.Input != nil {
		o.Input = *fc.Input
	}
	if fc.Output != nil {
		o.Output = *fc.Output
	}
	if fc.Temp != nil {
		o.Temp = *fc.Temp
		o.TempSet = false
	}
	if fc.Extensions != nil {
		o.Extensions = fc.Extensions
	}
	if fc.Names != nil {
		o.Names = fc.Names
	}
	if fc.Sort != nil {
		o.Sort = *fc.Sort
	}
	if fc.Recursive != nil {
		o.Recursive = *fc.Recursive
	}
	if fc.Debug != nil {
		o.Debug = *fc.Debug
	}
	if fc.JPEGQuality != nil {
		o.Quality = *fc.JPEGQuality
	}
	if fc.Page.MaxWidth != nil {
		o.MaxWidth = *fc.Page.MaxWidth
	}
	if fc.Page.MaxHeight != nil {
		o.MaxHeight = *fc.Page.MaxHeight
	}
	return o
}
