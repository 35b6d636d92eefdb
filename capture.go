package movingquad

import (
	"fmt"
	"image"
	"image/jpeg"
	"io"
)

// FlipRows reverses the row order of a tightly packed RGBA pixel buffer in
// place. OpenGL reads pixels bottom-up; images are stored top-down.
func FlipRows(pixels []byte, width, height int) {
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}
}

// FrameImage converts a bottom-up RGBA framebuffer read into an image.
// The pixel slice is flipped in place.
func FrameImage(pixels []byte, width, height int) (*image.RGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("frame buffer is %d bytes, want %d for %dx%d", len(pixels), width*height*4, width, height)
	}
	FlipRows(pixels, width, height)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)
	return img, nil
}

// EncodeJPEG writes img as a JPEG.
func EncodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
}
