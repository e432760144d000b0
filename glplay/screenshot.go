//go:build !tinygo && cgo

package glplay

import (
	"errors"
	"fmt"
	"image"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/soypat/glgl/v4.1-core/glgl"
	"github.com/soypat/shaderplay"
)

// readFramebuffer reads the back buffer of the current context.
func readFramebuffer(vp shaderplay.Viewport) (*image.RGBA, error) {
	if vp.Empty() {
		return nil, errors.New("empty framebuffer")
	}
	img := image.NewRGBA(image.Rect(0, 0, int(vp.Width), int(vp.Height)))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, vp.Width, vp.Height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&img.Pix[0]))
	if err := glgl.Err(); err != nil {
		return nil, fmt.Errorf("reading framebuffer: %w", err)
	}
	shaderplay.FlipRows(img.Pix, img.Stride, int(vp.Height))
	return img, nil
}

func saveSnapshot(cfg shaderplay.SnapshotConfig, vp shaderplay.Viewport) (string, error) {
	img, err := readFramebuffer(vp)
	if err != nil {
		return "", err
	}
	path, err := shaderplay.SnapshotPath(cfg.Dir, cfg.Format, time.Now())
	if err != nil {
		return "", err
	}
	fp, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer fp.Close()
	err = shaderplay.EncodeImage(fp, img, cfg.Format)
	if err != nil {
		return "", err
	}
	return path, fp.Sync()
}
