package main

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phanxgames/tilescroll"
)

func TestDrawSheet(t *testing.T) {
	dc := drawSheet(tilescroll.DefaultRenderOptions(), 32, 1)
	assert.Equal(t, 96, dc.Width())
	assert.Equal(t, 32, dc.Height())

	img := dc.Image()
	// Swatch centers carry the kind colors.
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, color.RGBAModel.Convert(img.At(16, 16)))
	assert.Equal(t, color.RGBA{0, 128, 0, 255}, color.RGBAModel.Convert(img.At(48, 16)))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, color.RGBAModel.Convert(img.At(80, 16)))
}
