// This file is part of Gopherduino.
//
// Gopherduino is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherduino is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherduino.  If not, see <https://www.gnu.org/licenses/>.

package imageloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopherduino/gopherduino/curated"
	"github.com/gopherduino/gopherduino/logger"
)

// Sentinel error patterns.
const (
	FileError       = "imageloader: %v"
	ImageTooLarge   = "imageloader: image too large for %d byte buffer"
	MalformedRecord = "imageloader: line %d: malformed record"
	BadChecksum     = "imageloader: line %d: bad checksum"
	UnsupportedType = "imageloader: line %d: unsupported record type (%02x)"
)

// Format of an image.
type Format int

// List of valid Format values.
const (
	Binary Format = iota
	Hex
)

func (f Format) String() string {
	switch f {
	case Binary:
		return "binary"
	case Hex:
		return "hex"
	}
	return "unknown format"
}

// Image is a loaded image.
type Image struct {
	// filename of the image. empty if the image was not loaded from a file
	Filename string

	Format Format

	// the image data. the length of Data is one more than the highest
	// address written to. addresses not written to by a hex record are zero
	Data []uint8

	// SHA1 of the file contents
	Hash string
}

func (img Image) String() string {
	return fmt.Sprintf("%s (%s, %d bytes)", img.ShortName(), img.Format, len(img.Data))
}

// ShortName returns the base of the image filename.
func (img Image) ShortName() string {
	if img.Filename == "" {
		return "image"
	}
	return filepath.Base(img.Filename)
}

// Load the image file. The size argument is the size of the buffer the image
// is to be loaded into. Images that do not fit into the buffer are rejected.
func Load(filename string, size int) (Image, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Image{}, curated.Errorf(FileError, err)
	}

	img, err := Parse(data, size)
	if err != nil {
		return Image{}, err
	}
	img.Filename = filename

	logger.Logf(logger.Allow, "imageloader", "loaded %s", img)

	return img, nil
}

// Parse image data. The format is decided by the content of the first line of
// the data.
func Parse(data []uint8, size int) (Image, error) {
	img := Image{
		Hash: fmt.Sprintf("%x", sha1.Sum(data)),
	}

	if isHex(data) {
		img.Format = Hex
		buf := make([]uint8, size)
		n, err := parseHex(data, buf)
		if err != nil {
			return Image{}, err
		}
		img.Data = buf[:n]
		return img, nil
	}

	if len(data) > size {
		return Image{}, curated.Errorf(ImageTooLarge, size)
	}
	img.Format = Binary
	img.Data = make([]uint8, len(data))
	copy(img.Data, data)

	return img, nil
}
