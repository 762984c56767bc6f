package extract

import "image"

// Fragment is one OCR read: a piece of text, where it sits in the image,
// and the engine-reported confidence normalized to [0,1].
type Fragment struct {
	Text       string
	Box        image.Rectangle
	Confidence float64
}

// Detector is the OCR engine boundary. Implementations must be safe for
// repeated calls; one image in, ranked word fragments out.
type Detector interface {
	Detect(path string) ([]Fragment, error)
}
