package extract

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// Prepared holds the temp files fed to the OCR engine: the cropped
// original and an enhanced variant. The enhanced read supplements the
// original, never replaces it — sharpening can turn thin chart gridlines
// into false digits, so both are OCR'd and the fragments pooled.
type Prepared struct {
	Original string
	Enhanced string
}

// Cleanup removes the temp files. Safe to call on a partially built value.
func (p *Prepared) Cleanup() {
	if p.Original != "" {
		_ = os.Remove(p.Original)
	}
	if p.Enhanced != "" {
		_ = os.Remove(p.Enhanced)
	}
}

// PrepareImage crops the configured top/bottom fractions, bounds the
// width, and writes the cropped original plus an enhanced variant to temp
// PNGs for OCR.
func PrepareImage(path string, opts Options) (*Prepared, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	crop := cropWindow(img, opts)
	crop = boundWidth(crop, opts.MaxOCRWidth)
	enhanced := enhance(crop)

	p := &Prepared{}
	if p.Original, err = saveTemp(crop, "shot-orig-*.png"); err != nil {
		return nil, err
	}
	if p.Enhanced, err = saveTemp(enhanced, "shot-enh-*.png"); err != nil {
		p.Cleanup()
		return nil, err
	}
	return p, nil
}

// cropWindow removes the taskbar / browser-chrome bands.
func cropWindow(img image.Image, opts Options) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	top := int(float64(h) * opts.CropTop)
	bottom := h - int(float64(h)*opts.CropBottom)
	if bottom <= top {
		return img
	}
	return imaging.Crop(img, image.Rect(0, top, w, bottom))
}

// boundWidth downscales proportionally when wider than maxW; never upscales.
func boundWidth(img image.Image, maxW int) image.Image {
	if maxW <= 0 || img.Bounds().Dx() <= maxW {
		return img
	}
	return imaging.Resize(img, maxW, 0, imaging.Lanczos)
}

func enhance(img image.Image) image.Image {
	out := imaging.Grayscale(img)
	out = imaging.AdjustContrast(out, 15)
	return imaging.Sharpen(out, 0.7)
}

func saveTemp(img image.Image, pattern string) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("temp image: %w", err)
	}
	_ = f.Close()
	if err := imaging.Save(img, f.Name()); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("save temp image: %w", err)
	}
	return f.Name(), nil
}
