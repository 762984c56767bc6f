package extract

import (
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

func TestCropWindowFractions(t *testing.T) {
	img := imaging.New(1000, 1000, color.NRGBA{255, 255, 255, 255})
	opts := DefaultOptions()
	crop := cropWindow(img, opts)
	if got := crop.Bounds().Dy(); got != 720 {
		t.Fatalf("expected 720 rows after 8%%/20%% crop, got %d", got)
	}
	if got := crop.Bounds().Dx(); got != 1000 {
		t.Fatalf("width changed by crop: %d", got)
	}
}

func TestBoundWidthNeverUpscales(t *testing.T) {
	img := imaging.New(800, 600, color.NRGBA{0, 0, 0, 255})
	if got := boundWidth(img, 1600); got.Bounds().Dx() != 800 {
		t.Fatalf("small image was rescaled to %d", got.Bounds().Dx())
	}
	wide := imaging.New(3200, 1000, color.NRGBA{0, 0, 0, 255})
	out := boundWidth(wide, 1600)
	if out.Bounds().Dx() != 1600 {
		t.Fatalf("expected downscale to 1600, got %d", out.Bounds().Dx())
	}
	// aspect ratio preserved
	if got := out.Bounds().Dy(); got != 500 {
		t.Fatalf("aspect ratio lost: height %d", got)
	}
}

func TestPrepareImageVariants(t *testing.T) {
	prep, err := PrepareImage(tempShot(t), DefaultOptions())
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	defer prep.Cleanup()
	if prep.Original == "" || prep.Enhanced == "" || prep.Original == prep.Enhanced {
		t.Fatalf("bad variants: %+v", prep)
	}
	if _, err := imaging.Open(prep.Enhanced); err != nil {
		t.Fatalf("enhanced not decodable: %v", err)
	}
}

func TestPrepareImageLoadError(t *testing.T) {
	if _, err := PrepareImage("does-not-exist.png", DefaultOptions()); err == nil {
		t.Fatalf("expected error")
	}
}
