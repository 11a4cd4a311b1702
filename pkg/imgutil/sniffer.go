package imgutil

import (
	"errors"
	"io"
)

// Kind identifies an image container format.
type Kind int

const (
	KindUnknown Kind = iota
	KindGIF
	KindJPEG
	KindPNG
	KindBMP
	KindTIFF
	KindWEBP
)

func (k Kind) String() string {
	switch k {
	case KindGIF:
		return "GIF"
	case KindJPEG:
		return "JPEG"
	case KindPNG:
		return "PNG"
	case KindBMP:
		return "BMP"
	case KindTIFF:
		return "TIFF"
	case KindWEBP:
		return "WEBP"
	default:
		return "UNKNOWN"
	}
}

// Supported reports whether pages can be built from images of this kind.
func (k Kind) Supported() bool {
	switch k {
	case KindGIF, KindJPEG, KindPNG, KindBMP:
		return true
	default:
		return false
	}
}

const headerLen = 12

var (
	pngSig    = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	jpegSig   = []byte{0xff, 0xd8, 0xff}
	gif87Sig  = []byte("GIF87a")
	gif89Sig  = []byte("GIF89a")
	bmpSig    = []byte("BM")
	tiffSigLE = []byte{0x49, 0x49, 0x2a, 0x00}
	tiffSigBE = []byte{0x4d, 0x4d, 0x00, 0x2a}
	riffSig   = []byte("RIFF")
	webpSig   = []byte("WEBP")
)

// DetectHeader inspects the first bytes of a file for known signatures.
func DetectHeader(header []byte) (Kind, error) {
	if len(header) < len(jpegSig) {
		return KindUnknown, errors.New("header too short")
	}

	switch {
	case hasPrefix(header, jpegSig):
		return KindJPEG, nil
	case hasPrefix(header, pngSig):
		return KindPNG, nil
	case hasPrefix(header, gif87Sig), hasPrefix(header, gif89Sig):
		return KindGIF, nil
	case hasPrefix(header, tiffSigLE), hasPrefix(header, tiffSigBE):
		return KindTIFF, nil
	case hasPrefix(header, riffSig) && len(header) >= headerLen && hasPrefix(header[8:], webpSig):
		return KindWEBP, nil
	case hasPrefix(header, bmpSig):
		return KindBMP, nil
	}

	return KindUnknown, nil
}

// SniffReader reads up to 12 bytes from r and determines its type. Short
// inputs are accepted as long as they cover the shortest signature.
func SniffReader(r io.Reader) (Kind, error) {
	header := make([]byte, headerLen)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return KindUnknown, err
	}

	return DetectHeader(header[:n])
}

func hasPrefix(buf, prefix []byte) bool {
	if len(buf) < len(prefix) {
		return false
	}
	for i := range prefix {
		if buf[i] != prefix[i] {
			return false
		}
	}
	return true
}
