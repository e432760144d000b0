package shaderplay

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// FlipRows reverses the row order of a pixel buffer in place. OpenGL returns
// framebuffer rows bottom to top while images store them top to bottom.
func FlipRows(pix []byte, stride, height int) {
	if stride <= 0 || height <= 1 || len(pix) < stride*height {
		return
	}
	tmp := make([]byte, stride)
	for top, bot := 0, height-1; top < bot; top, bot = top+1, bot-1 {
		rt := pix[top*stride : (top+1)*stride]
		rb := pix[bot*stride : (bot+1)*stride]
		copy(tmp, rt)
		copy(rt, rb)
		copy(rb, tmp)
	}
}

// EncodeImage writes img to w in the named format: png, bmp or tiff.
func EncodeImage(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "", "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff", "tif":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("unsupported snapshot format %q", format)
}

func snapshotExt(format string) (string, error) {
	switch strings.ToLower(format) {
	case "", "png":
		return ".png", nil
	case "bmp":
		return ".bmp", nil
	case "tiff", "tif":
		return ".tiff", nil
	}
	return "", fmt.Errorf("unsupported snapshot format %q, want png, bmp or tiff", format)
}

// SnapshotPath returns the file path for a snapshot taken at t.
func SnapshotPath(dir, format string, t time.Time) (string, error) {
	ext, err := snapshotExt(format)
	if err != nil {
		return "", err
	}
	name := "shaderplay-" + t.Format("20060102-150405.000") + ext
	return filepath.Join(dir, name), nil
}
