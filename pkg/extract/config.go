package extract

// Options carries the tunables for one batch run. Values are fixed at
// construction and shared read-only by all workers.
type Options struct {
	// CropTop and CropBottom are fractions of the image height removed
	// before OCR (taskbar / browser chrome produce digit-like noise).
	CropTop    float64
	CropBottom float64
	// MaxOCRWidth bounds OCR latency on very wide captures. Images wider
	// than this are downscaled proportionally; never upscaled.
	MaxOCRWidth int
	// AdjacencyGapPx is the maximum horizontal gap between two numeric
	// fragments merged into one timestamp candidate.
	AdjacencyGapPx int
	// HourMin/HourMax bound accepted trade timestamps (trading window).
	HourMin int
	HourMax int
	// StrikeMin/StrikeMax bound plausible strike values.
	StrikeMin int
	StrikeMax int
}

// DefaultOptions returns the production defaults.
func DefaultOptions() Options {
	return Options{
		CropTop:        0.08,
		CropBottom:     0.20,
		MaxOCRWidth:    1600,
		AdjacencyGapPx: 48,
		HourMin:        9,
		HourMax:        15,
		StrikeMin:      50,
		StrikeMax:      100000,
	}
}
