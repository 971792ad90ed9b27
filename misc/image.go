package misc

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
)

// EncodeGray writes pixels as an 8 bit grayscale png. The pixels are row
// major with exactly width*height intensity bytes.
func EncodeGray(w io.Writer, pixels []byte, width int, height int) error {
	if len(pixels) != width*height {
		return fmt.Errorf("pixel buffer has %d bytes, bounds %dx%d need %d", len(pixels), width, height, width*height)
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)

	return png.Encode(w, img)
}

// WriteImage encodes pixels as a grayscale png and saves it to fileName
func WriteImage(fileName string, pixels []byte, width int, height int) error {
	var buffer bytes.Buffer
	if err := EncodeGray(&buffer, pixels, width, height); err != nil {
		return err
	}

	bytesWritten, err := WriteFile(fileName, buffer.Bytes())
	if err != nil {
		return err
	}
	if bytesWritten == 0 {
		return fmt.Errorf("wrote no bytes to %s", fileName)
	}
	return nil
}
