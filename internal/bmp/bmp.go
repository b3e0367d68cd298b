// Package bmp implements the library's only supported file format: an
// uncompressed BITMAPFILEHEADER+BITMAPINFOHEADER BMP, 8-bit grayscale
// (with a 256-entry gray palette) or 24-bit BGR truecolor, bottom-up
// rows padded to a 4-byte boundary. There is no compression support and
// no other bit depth.
package bmp

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/kyasu0118/gazoshori/internal/color"
	"github.com/kyasu0118/gazoshori/internal/gserr"
	"github.com/kyasu0118/gazoshori/internal/image"
)

const headerSize = 54

// header mirrors BITMAPFILEHEADER+BITMAPINFOHEADER packed with no
// padding; it is marshaled/unmarshaled field by field rather than via
// encoding/binary's struct support, since Go would otherwise insert
// alignment padding the wire format does not have.
type header struct {
	bfType1         uint8
	bfType2         uint8
	bfSize          uint32
	bfReserved1     uint16
	bfReserved2     uint16
	bfOffBits       uint32
	biSize          uint32
	biWidth         int32
	biHeight        int32
	biPlanes        uint16
	biBitCount      uint16
	biCompression   uint32
	biSizeImage     uint32
	biXPelsPerMeter int32
	biYPelsPerMeter int32
	biClrUsed       uint32
	biClrImportant  uint32
}

func (h header) marshal() []byte {
	buf := make([]byte, headerSize)
	buf[0] = h.bfType1
	buf[1] = h.bfType2
	binary.LittleEndian.PutUint32(buf[2:], h.bfSize)
	binary.LittleEndian.PutUint16(buf[6:], h.bfReserved1)
	binary.LittleEndian.PutUint16(buf[8:], h.bfReserved2)
	binary.LittleEndian.PutUint32(buf[10:], h.bfOffBits)
	binary.LittleEndian.PutUint32(buf[14:], h.biSize)
	binary.LittleEndian.PutUint32(buf[18:], uint32(h.biWidth))
	binary.LittleEndian.PutUint32(buf[22:], uint32(h.biHeight))
	binary.LittleEndian.PutUint16(buf[26:], h.biPlanes)
	binary.LittleEndian.PutUint16(buf[28:], h.biBitCount)
	binary.LittleEndian.PutUint32(buf[30:], h.biCompression)
	binary.LittleEndian.PutUint32(buf[34:], h.biSizeImage)
	binary.LittleEndian.PutUint32(buf[38:], uint32(h.biXPelsPerMeter))
	binary.LittleEndian.PutUint32(buf[42:], uint32(h.biYPelsPerMeter))
	binary.LittleEndian.PutUint32(buf[46:], h.biClrUsed)
	binary.LittleEndian.PutUint32(buf[50:], h.biClrImportant)
	return buf
}

func unmarshalHeader(buf []byte) (header, error) {
	if len(buf) < headerSize {
		return header{}, gserr.IOError
	}
	var h header
	h.bfType1 = buf[0]
	h.bfType2 = buf[1]
	h.bfSize = binary.LittleEndian.Uint32(buf[2:])
	h.bfReserved1 = binary.LittleEndian.Uint16(buf[6:])
	h.bfReserved2 = binary.LittleEndian.Uint16(buf[8:])
	h.bfOffBits = binary.LittleEndian.Uint32(buf[10:])
	h.biSize = binary.LittleEndian.Uint32(buf[14:])
	h.biWidth = int32(binary.LittleEndian.Uint32(buf[18:]))
	h.biHeight = int32(binary.LittleEndian.Uint32(buf[22:]))
	h.biPlanes = binary.LittleEndian.Uint16(buf[26:])
	h.biBitCount = binary.LittleEndian.Uint16(buf[28:])
	h.biCompression = binary.LittleEndian.Uint32(buf[30:])
	h.biSizeImage = binary.LittleEndian.Uint32(buf[34:])
	h.biXPelsPerMeter = int32(binary.LittleEndian.Uint32(buf[38:]))
	h.biYPelsPerMeter = int32(binary.LittleEndian.Uint32(buf[42:]))
	h.biClrUsed = binary.LittleEndian.Uint32(buf[46:])
	h.biClrImportant = binary.LittleEndian.Uint32(buf[50:])
	if h.bfType1 != 'B' || h.bfType2 != 'M' {
		return header{}, gserr.IOError
	}
	return h, nil
}

func rowPadding(width, bytesPerPixel int) int {
	return (4 - (width*bytesPerPixel)%4) % 4
}

// EncodeGray serializes a grayscale image as an 8-bit BMP with a
// 256-entry gray palette.
func EncodeGray(img image.Image[color.Gray]) []byte {
	width, height := img.Width(), img.Height()
	padding := rowPadding(width, 1)
	sizeImage := width * height
	offBits := uint32(headerSize + 4*256)

	h := header{
		bfType1:    'B',
		bfType2:    'M',
		bfOffBits:  offBits,
		biSize:     40,
		biWidth:    int32(width),
		biHeight:   int32(height),
		biPlanes:   1,
		biBitCount: 8,
		biSizeImage: uint32(sizeImage),
	}
	h.bfSize = h.bfOffBits + h.biSizeImage

	var buf bytes.Buffer
	buf.Write(h.marshal())
	for i := 0; i < 256; i++ {
		buf.Write([]byte{byte(i), byte(i), byte(i), 255})
	}

	padBytes := make([]byte, padding)
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			buf.WriteByte(img.At(x, y).L)
		}
		if padding != 0 {
			buf.Write(padBytes)
		}
	}
	return buf.Bytes()
}

// EncodeRGB serializes a truecolor image as a 24-bit BGR BMP.
func EncodeRGB(img image.Image[color.RGB]) []byte {
	width, height := img.Width(), img.Height()
	padding := rowPadding(width, 3)
	sizeImage := width * height * 3

	h := header{
		bfType1:    'B',
		bfType2:    'M',
		bfOffBits:  headerSize,
		biSize:     40,
		biWidth:    int32(width),
		biHeight:   int32(height),
		biPlanes:   1,
		biBitCount: 24,
		biSizeImage: uint32(sizeImage),
	}
	h.bfSize = h.bfOffBits + h.biSizeImage

	var buf bytes.Buffer
	buf.Write(h.marshal())

	padBytes := make([]byte, padding)
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			p := img.At(x, y)
			buf.WriteByte(p.B)
			buf.WriteByte(p.G)
			buf.WriteByte(p.R)
		}
		if padding != 0 {
			buf.Write(padBytes)
		}
	}
	return buf.Bytes()
}

// DecodeGray parses an 8-bit grayscale BMP.
func DecodeGray(data []byte) (image.Image[color.Gray], error) {
	_, width, height, pixelOffset, err := decodeHeader(data, 8)
	if err != nil {
		return image.Empty[color.Gray](), err
	}

	padding := rowPadding(width, 1)
	out := image.New[color.Gray](width, height)
	pos := pixelOffset
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			if pos >= len(data) {
				return image.Empty[color.Gray](), gserr.IOError
			}
			out.Set(x, y, color.Gray{L: data[pos]})
			pos++
		}
		pos += padding
	}
	return out, nil
}

// DecodeRGB parses a 24-bit BGR BMP.
func DecodeRGB(data []byte) (image.Image[color.RGB], error) {
	_, width, height, pixelOffset, err := decodeHeader(data, 24)
	if err != nil {
		return image.Empty[color.RGB](), err
	}

	padding := rowPadding(width, 3)
	out := image.New[color.RGB](width, height)
	pos := pixelOffset
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < width; x++ {
			if pos+2 >= len(data) {
				return image.Empty[color.RGB](), gserr.IOError
			}
			b, g, r := data[pos], data[pos+1], data[pos+2]
			out.Set(x, y, color.RGB{R: r, G: g, B: b})
			pos += 3
		}
		pos += padding
	}
	return out, nil
}

// decodeHeader parses and validates the BMP header, returning the pixel
// data's start offset. wantBitCount must be 8 or 24; anything else is
// rejected as an unsupported bit depth.
func decodeHeader(data []byte, wantBitCount uint16) (header, int, int, int, error) {
	h, err := unmarshalHeader(data)
	if err != nil {
		return header{}, 0, 0, 0, err
	}
	if h.biBitCount != 8 && h.biBitCount != 24 {
		return header{}, 0, 0, 0, gserr.IOError
	}
	if h.biBitCount != wantBitCount {
		return header{}, 0, 0, 0, gserr.IOError
	}

	offset := headerSize
	if h.biBitCount == 8 {
		offset += 4 * 256
	}
	if h.bfOffBits != 0 {
		offset = int(h.bfOffBits)
	}
	return h, int(h.biWidth), int(h.biHeight), offset, nil
}

// WriteGray writes img as an 8-bit BMP to w.
func WriteGray(w io.Writer, img image.Image[color.Gray]) error {
	_, err := w.Write(EncodeGray(img))
	if err != nil {
		return gserr.IOError
	}
	return nil
}

// WriteRGB writes img as a 24-bit BMP to w.
func WriteRGB(w io.Writer, img image.Image[color.RGB]) error {
	_, err := w.Write(EncodeRGB(img))
	if err != nil {
		return gserr.IOError
	}
	return nil
}

// ReadGray reads an 8-bit BMP from r.
func ReadGray(r io.Reader) (image.Image[color.Gray], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Empty[color.Gray](), gserr.IOError
	}
	return DecodeGray(data)
}

// ReadRGB reads a 24-bit BMP from r.
func ReadRGB(r io.Reader) (image.Image[color.RGB], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Empty[color.RGB](), gserr.IOError
	}
	return DecodeRGB(data)
}
