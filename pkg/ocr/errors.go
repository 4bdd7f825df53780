package ocr

import "errors"

// ErrDecode is returned when the image source cannot be decoded.
var ErrDecode = errors.New("image decode failed")

// ErrRecognize is returned when the recognition engine fails or times out.
var ErrRecognize = errors.New("recognition failed")
