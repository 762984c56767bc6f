package extract

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Characters worth reading on a trading screenshot: tickers, strikes,
// CE/PE markers and clock text (with the separators OCR tends to emit).
const fragmentWhitelist = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz.:;,&()- "

// TesseractDetector reads word-level fragments via Tesseract. A fresh
// client is created per call (the gosseract client is not safe for
// concurrent use), so one detector may be shared across goroutines.
//
// The preferred configuration is the LSTM engine with sparse-text page
// segmentation; when that yields nothing the detector falls back once to
// the default engine with automatic segmentation before giving up.
type TesseractDetector struct {
	lang string
}

func NewTesseractDetector() *TesseractDetector {
	return &TesseractDetector{lang: "eng"}
}

func (d *TesseractDetector) Detect(path string) ([]Fragment, error) {
	frags, err := d.detectOnce(path, false)
	if err == nil && len(frags) > 0 {
		return frags, nil
	}
	frags, err2 := d.detectOnce(path, true)
	if err2 != nil {
		if err != nil {
			return nil, fmt.Errorf("ocr: %w", err)
		}
		return nil, fmt.Errorf("ocr fallback: %w", err2)
	}
	return frags, nil
}

func (d *TesseractDetector) detectOnce(path string, fallback bool) ([]Fragment, error) {
	cl := gosseract.NewClient()
	defer cl.Close()
	_ = cl.SetLanguage(d.lang)
	_ = cl.SetWhitelist(fragmentWhitelist)
	if fallback {
		_ = cl.SetPageSegMode(gosseract.PSM_AUTO)
	} else {
		_ = cl.SetPageSegMode(gosseract.PSM_SPARSE_TEXT)
		_ = cl.SetVariable(gosseract.SettableVariable("tessedit_ocr_engine_mode"), "1")
	}
	if err := cl.SetImage(path); err != nil {
		return nil, err
	}
	boxes, err := cl.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, err
	}
	out := make([]Fragment, 0, len(boxes))
	for _, b := range boxes {
		if b.Word == "" {
			continue
		}
		conf := b.Confidence / 100
		if conf < 0 {
			conf = 0
		}
		if conf > 1 {
			conf = 1
		}
		out = append(out, Fragment{Text: b.Word, Box: b.Box, Confidence: conf})
	}
	return out, nil
}
