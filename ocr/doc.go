// Package ocr turns scanned page images into positioned glyphs.
//
// Recognition wraps the Tesseract OCR engine via gosseract and is only
// compiled with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Without the tag every recognition call returns ErrOCRNotEnabled. The
// conversion from symbol boxes to glyphs ([GlyphsFromSymbols]) and image
// measurement ([ImageSize]) work either way.
package ocr
