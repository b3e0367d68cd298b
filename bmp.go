package gazoshori

import (
	"io"

	"github.com/kyasu0118/gazoshori/internal/bmp"
)

// EncodeGrayBMP serializes img as an 8-bit BMP with a 256-entry gray
// palette.
func EncodeGrayBMP(img GrayImage) []byte { return bmp.EncodeGray(img) }

// EncodeRGBBMP serializes img as a 24-bit BGR BMP.
func EncodeRGBBMP(img RGBImage) []byte { return bmp.EncodeRGB(img) }

// DecodeGrayBMP parses an 8-bit grayscale BMP byte buffer.
func DecodeGrayBMP(data []byte) (GrayImage, error) { return bmp.DecodeGray(data) }

// DecodeRGBBMP parses a 24-bit BGR BMP byte buffer.
func DecodeRGBBMP(data []byte) (RGBImage, error) { return bmp.DecodeRGB(data) }

// WriteGrayBMP writes img as an 8-bit BMP to w.
func WriteGrayBMP(w io.Writer, img GrayImage) error { return bmp.WriteGray(w, img) }

// WriteRGBBMP writes img as a 24-bit BMP to w.
func WriteRGBBMP(w io.Writer, img RGBImage) error { return bmp.WriteRGB(w, img) }

// ReadGrayBMP reads an 8-bit grayscale BMP from r.
func ReadGrayBMP(r io.Reader) (GrayImage, error) { return bmp.ReadGray(r) }

// ReadRGBBMP reads a 24-bit BGR BMP from r.
func ReadRGBBMP(r io.Reader) (RGBImage, error) { return bmp.ReadRGB(r) }
