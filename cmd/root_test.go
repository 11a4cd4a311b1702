package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"img2pdf/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigPath, "")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 10), G: 120, B: uint8(y * 10), A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestVersionFlag(t *testing.T) {
	stdout, _, err := execute(t, "-v")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", stdout)
}

func TestManualFlagPrintsManualAndHelp(t *testing.T) {
	stdout, _, err := execute(t, "-m")
	require.NoError(t, err)
	assert.Contains(t, stdout, "TEMPORARY FILES")
	assert.Contains(t, stdout, "Usage:")
}

func TestSetupErrorShowsHelpAndCreatesNothing(t *testing.T) {
	dir := t.TempDir()
	work := filepath.Join(dir, "work")

	stdout, stderr, err := execute(t,
		"-i", filepath.Join(dir, "missing"),
		"-o", filepath.Join(dir, "out.pdf"),
		"-t", work)
	require.ErrorIs(t, err, errReported)

	assert.Contains(t, stderr, "invalid input folder")
	assert.Contains(t, stdout, "Usage:")
	assert.NoDirExists(t, work)
	assert.NoFileExists(t, filepath.Join(dir, "out.pdf"))
}

func TestInvalidSortIsSetupError(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := execute(t, "-i", dir, "-o", filepath.Join(dir, "out.pdf"), "-t", dir, "-s", "colour")
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "invalid sort target")
	assert.NoDirExists(t, filepath.Join(dir, "temp"))
}

func TestConvertFolder(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "scans")
	require.NoError(t, os.MkdirAll(in, 0o755))
	writePNG(t, filepath.Join(in, "page-2.png"), 8, 4)
	writePNG(t, filepath.Join(in, "page-1.png"), 4, 8)
	require.NoError(t, os.WriteFile(filepath.Join(in, "readme.txt"), []byte("not an image"), 0o644))

	out := filepath.Join(dir, "pdf", "scans.pdf")
	stdout, stderr, err := execute(t, "-i", in, "-o", out, "-t", dir, "-s", "name,desc")
	require.NoError(t, err, stderr)

	assert.FileExists(t, out)
	assert.NoDirExists(t, filepath.Join(dir, "temp"))
	assert.Contains(t, stdout, "Input folder:")
	assert.Contains(t, stdout, "page-1.png")
	assert.Contains(t, stdout, "Pages in document")
	assert.NotContains(t, stdout, "readme.txt")
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), 4, 4)
	out := filepath.Join(dir, "from-config.pdf")

	cfgPath := filepath.Join(dir, "img2pdf.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input: "+dir+"\noutput: "+out+"\ntemp: "+filepath.Join(dir, "work")+"\n"), 0o644))

	_, stderr, err := execute(t, "-c", cfgPath)
	require.NoError(t, err, stderr)
	assert.FileExists(t, out)
}

func TestMissingConfigFileIsSetupError(t *testing.T) {
	dir := t.TempDir()

	_, stderr, err := execute(t, "-c", filepath.Join(dir, "nope.yaml"), "-i", dir)
	require.ErrorIs(t, err, errReported)
	assert.Contains(t, stderr, "invalid config file")
}
