// Package config builds the immutable run configuration from command-line
// options and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"img2pdf/internal/scan"
)

var (
	ErrInvalidInput      = errors.New("invalid input folder")
	ErrOutputUncreatable = errors.New("unable to create output file")
	ErrTempUncreatable   = errors.New("unable to create temp folder")
	ErrConfigFile        = errors.New("invalid config file")
)

const (
	DefaultInput       = "."
	DefaultOutput      = "./output.pdf"
	DefaultTemp        = "./temp"
	DefaultMaxWidth    = 180.0
	DefaultMaxHeight   = 260.0
	DefaultJPEGQuality = 75

	// tempSubdir is appended to an explicitly chosen temp location so the
	// user's own folder is never cleared.
	tempSubdir = "temp"
)

// PageBox is the largest area, in millimetres, an image may cover on a page
// before it is scaled down.
type PageBox struct {
	MaxWidth  float64
	MaxHeight float64
}

// Config is assembled once by Options.Validate and read-only afterwards.
type Config struct {
	Input       string
	Output      string
	TempDir     string
	Recursive   bool
	Debug       bool
	Filter      scan.Filter
	Sort        scan.SortKey
	Page        PageBox
	JPEGQuality int
}

// Options carries raw user input before validation.
type Options struct {
	Input      string
	Output     string
	Temp       string
	TempSet    bool
	Extensions []string
	Names      []string
	Sort       string
	SortSet    bool
	Recursive  bool
	Debug      bool
	MaxWidth   float64
	MaxHeight  float64
	Quality    int
}

// DefaultOptions returns options matching the documented flag defaults.
func DefaultOptions() Options {
	return Options{
		Input:     DefaultInput,
		Output:    DefaultOutput,
		Temp:      DefaultTemp,
		MaxWidth:  DefaultMaxWidth,
		MaxHeight: DefaultMaxHeight,
		Quality:   DefaultJPEGQuality,
	}
}

// Validate checks every option and returns the run configuration. The output
// folder is created when missing; the temp folder is only checked, never
// created, so a rejected configuration leaves nothing behind.
func (o Options) Validate() (Config, error) {
	cfg := Config{
		Recursive: o.Recursive,
		Debug:     o.Debug,
		Filter:    scan.NewFilter(o.Extensions, o.Names),
		Page:      PageBox{MaxWidth: o.MaxWidth, MaxHeight: o.MaxHeight},
	}

	info, err := os.Stat(o.Input)
	if err != nil || !info.IsDir() {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidInput, o.Input)
	}
	cfg.Input = o.Input

	if o.Output == "" {
		return Config{}, fmt.Errorf("%w: empty path", ErrOutputUncreatable)
	}
	if info, err := os.Stat(o.Output); err == nil && info.IsDir() {
		return Config{}, fmt.Errorf("%w: %s is a folder", ErrOutputUncreatable, o.Output)
	}
	if err := os.MkdirAll(filepath.Dir(o.Output), 0o755); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrOutputUncreatable, err)
	}
	cfg.Output = o.Output

	temp := o.Temp
	if temp == "" {
		temp = DefaultTemp
	} else if o.TempSet {
		temp = filepath.Join(temp, tempSubdir)
	}
	if err := checkCreatable(temp); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrTempUncreatable, err)
	}
	cfg.TempDir = temp

	if o.Sort != "" || o.SortSet {
		key, err := scan.ParseSortSpec(o.Sort)
		if err != nil {
			return Config{}, err
		}
		cfg.Sort = key
	}

	if cfg.Page.MaxWidth <= 0 || cfg.Page.MaxHeight <= 0 {
		cfg.Page = PageBox{MaxWidth: DefaultMaxWidth, MaxHeight: DefaultMaxHeight}
	}

	cfg.JPEGQuality = o.Quality
	if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		cfg.JPEGQuality = DefaultJPEGQuality
	}

	return cfg, nil
}

// checkCreatable reports whether dir exists as a folder or could be created:
// its nearest existing ancestor must be a writable folder.
func checkCreatable(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	if info, err := os.Stat(abs); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s is not a folder", dir)
		}
		return nil
	}

	for parent := filepath.Dir(abs); ; parent = filepath.Dir(parent) {
		info, err := os.Stat(parent)
		if err == nil {
			if !info.IsDir() {
				return fmt.Errorf("%s is not a folder", parent)
			}
			probe, err := os.CreateTemp(parent, ".img2pdf-probe-*")
			if err != nil {
				return err
			}
			name := probe.Name()
			_ = probe.Close()
			return os.Remove(name)
		}
		if filepath.Dir(parent) == parent {
			return err
		}
	}
}
