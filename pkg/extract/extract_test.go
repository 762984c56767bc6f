package extract

import (
	"errors"
	"image/color"
	"os"
	"testing"

	"github.com/disintegration/imaging"
)

// stubDetector returns canned fragments for the cropped original and
// nothing extra for the enhanced variant.
type stubDetector struct {
	frags []Fragment
	calls int
}

func (s *stubDetector) Detect(path string) ([]Fragment, error) {
	s.calls++
	if s.calls == 1 {
		return s.frags, nil
	}
	return nil, nil
}

func tempShot(t *testing.T) string {
	t.Helper()
	img := imaging.New(800, 600, color.NRGBA{255, 255, 255, 255})
	f, err := os.CreateTemp("", "shot-*.png")
	if err != nil {
		t.Fatal(err)
	}
	_ = f.Close()
	if err := imaging.Save(img, f.Name()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}

func TestExtractRecordEndToEnd(t *testing.T) {
	det := &stubDetector{frags: []Fragment{
		frag("PFC", 10, 0.95),
		frag("400", 80, 0.9),
		frag("PE", 150, 0.9),
		frag("14:35", 220, 0.85),
	}}
	p := NewPipeline(DefaultOptions(), testCompanies(), det)
	res, err := p.ExtractRecord(tempShot(t), "07-08-2025")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if res.Rejection != nil {
		t.Fatalf("rejected: %v", res.Rejection)
	}
	want := TradeRecord{Date: "07-08-2025", Company: "PFC", Strike: 400, OptionType: "PE", Time: "14:35"}
	if *res.Record != want {
		t.Fatalf("got %+v want %+v", *res.Record, want)
	}
	if res.Strategy != "direct" {
		t.Fatalf("strategy %q", res.Strategy)
	}
}

func TestExtractRecordRejection(t *testing.T) {
	det := &stubDetector{frags: []Fragment{
		frag("400", 80, 0.9),
		frag("PE", 150, 0.9),
		frag("14:35", 220, 0.85),
	}}
	p := NewPipeline(DefaultOptions(), testCompanies(), det)
	res, err := p.ExtractRecord(tempShot(t), "07-08-2025")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if res.Rejection == nil || res.Rejection.Reason != RejectMissingCompany {
		t.Fatalf("expected missing company, got %v", res.Rejection)
	}
}

func TestExtractRecordImageLoadError(t *testing.T) {
	p := NewPipeline(DefaultOptions(), testCompanies(), &stubDetector{})
	_, err := p.ExtractRecord("nonexistent.png", "07-08-2025")
	if err == nil || !errors.Is(err, ErrImageLoad) {
		t.Fatalf("expected ErrImageLoad, got %v", err)
	}
}

func TestExtractRecordNoText(t *testing.T) {
	p := NewPipeline(DefaultOptions(), testCompanies(), &stubDetector{})
	_, err := p.ExtractRecord(tempShot(t), "07-08-2025")
	if err == nil || !errors.Is(err, ErrNoText) {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}
