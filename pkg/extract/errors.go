package extract

import "errors"

// ErrImageLoad is returned when an input file cannot be decoded as an image.
var ErrImageLoad = errors.New("image unreadable")

// ErrNoText is returned when OCR produced no fragments even after the
// fallback engine configuration.
var ErrNoText = errors.New("no text detected")
