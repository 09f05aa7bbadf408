package render

import (
	"bytes"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
)

// SheetBytes is the narrow seam into internal/resources this package
// needs: raw encoded sheet bytes plus frame geometry. Decoding those
// bytes into GPU-backed images happens here, not in internal/resources,
// so that package stays usable without an ebiten graphics driver.
type SheetBytes interface {
	SheetImageBytes(spriteID string) ([]byte, error)
	FrameSize(spriteID string) (width, height int, err error)
}

// SheetCache decodes and slices a SheetBytes source's raw sprite sheets
// into ebiten frames on first use per actor ID, mirroring
// internal/assets.Sheet's left-to-right, top-to-bottom slicing order.
type SheetCache struct {
	src    SheetBytes
	sheets map[string][]*ebiten.Image
}

// NewSheetCache creates a cache backed by src.
func NewSheetCache(src SheetBytes) *SheetCache {
	return &SheetCache{src: src, sheets: make(map[string][]*ebiten.Image)}
}

// Frame returns the ebiten image for spriteID's frame index, or nil if
// the sprite or frame is unknown.
func (c *SheetCache) Frame(spriteID string, index int) *ebiten.Image {
	frames, err := c.load(spriteID)
	if err != nil || index < 0 || index >= len(frames) {
		return nil
	}
	return frames[index]
}

// FrameCount returns how many frames spriteID's sheet holds.
func (c *SheetCache) FrameCount(spriteID string) int {
	frames, err := c.load(spriteID)
	if err != nil {
		return 0
	}
	return len(frames)
}

func (c *SheetCache) load(spriteID string) ([]*ebiten.Image, error) {
	if frames, ok := c.sheets[spriteID]; ok {
		return frames, nil
	}
	raw, err := c.src.SheetImageBytes(spriteID)
	if err != nil {
		return nil, err
	}
	fw, fh, err := c.src.FrameSize(spriteID)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	atlas := ebiten.NewImageFromImage(img)
	bounds := atlas.Bounds()
	cols := bounds.Dx() / fw
	rows := bounds.Dy() / fh

	frames := make([]*ebiten.Image, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x, y := col*fw, row*fh
			frame := atlas.SubImage(image.Rect(x, y, x+fw, y+fh)).(*ebiten.Image)
			frames = append(frames, frame)
		}
	}
	c.sheets[spriteID] = frames
	return frames, nil
}
