// Package asset loads wall textures from image files
package asset

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/lixenwraith/raycaster/core"
)

// LoadTexture decodes an image file and scales it to a size×size texture
func LoadTexture(path string, size int) (*core.Texture, error) {
	if size <= 0 {
		return nil, fmt.Errorf("texture size %d", size)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromImage(img, size), nil
}

// FromImage scales img with nearest-neighbor sampling and packs it into a texture
func FromImage(img image.Image, size int) *core.Texture {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	tex := core.NewTexture(size)
	for y := 0; y < size; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+size*4]
		for x := 0; x < size; x++ {
			p := row[x*4 : x*4+4]
			tex.Pix[y*size+x] = core.RGBA(p[0], p[1], p[2], p[3])
		}
	}
	return tex
}

// LoadTextures loads files from dir in order, index i serving cell code i+1.
// An unreadable file yields a blank texture and a warning, loading continues.
func LoadTextures(dir string, files []string, size int, logger *zap.SugaredLogger) []*core.Texture {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	textures := make([]*core.Texture, len(files))
	loaded := 0
	for i, name := range files {
		path := filepath.Join(dir, name)
		tex, err := LoadTexture(path, size)
		if err != nil {
			logger.Warnw("texture unavailable, using blank", "file", path, "error", err)
			textures[i] = core.NewTexture(size)
			continue
		}
		textures[i] = tex
		loaded++
	}
	logger.Infow("textures loaded", "dir", dir, "loaded", loaded, "total", len(files))
	return textures
}
