package pptx

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
)

// imageContentTypes maps image filename extensions to content types.
var imageContentTypes = map[string]string{
	"png":  CTPNG,
	"jpg":  CTJPEG,
	"jpeg": CTJPEG,
	"gif":  CTGIF,
	"bmp":  CTBMP,
	"tiff": CTTIFF,
}

// Image is one picture part. Image bytes round-trip unchanged; identity
// for deduplication purposes is the SHA1 of the bytes.
type Image struct {
	BasePart
	sha1 string
}

func loadImage(partName PackURI, contentType string, blob []byte) (Part, error) {
	return &Image{
		BasePart: *NewBasePart(partName, contentType, blob),
		sha1:     hashBlob(blob),
	}, nil
}

// SHA1 returns the hex SHA1 digest of the image bytes.
func (img *Image) SHA1() string { return img.sha1 }

// Ext returns the image's filename extension.
func (img *Image) Ext() string { return img.partName.Ext() }

func hashBlob(blob []byte) string {
	digest := sha1.Sum(blob)
	return hex.EncodeToString(digest[:])
}

// ImageCollection holds a reference to each image part in one package so
// the same picture is stored once no matter how many slides use it.
type ImageCollection struct {
	images []*Image
}

// NewImageCollection creates an empty image collection.
func NewImageCollection() *ImageCollection {
	return &ImageCollection{}
}

// Load gathers the image parts out of a package's walked part list.
// Called from the package's post-load hook once the full graph exists.
func (ic *ImageCollection) Load(parts []Part) {
	ic.images = ic.images[:0]
	for _, part := range parts {
		if img, ok := part.(*Image); ok {
			ic.images = append(ic.images, img)
		}
	}
}

// Len returns the number of distinct images in the collection.
func (ic *ImageCollection) Len() int { return len(ic.images) }

// All returns the images in the collection.
func (ic *ImageCollection) All() []*Image { return ic.images }

// AddImage returns the image part for blob, reusing an existing part when
// one with the same SHA1 is already in the package.
func (ic *ImageCollection) AddImage(blob []byte, ext string) (*Image, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return nil, NewNotFoundError("content type for image extension", ext)
	}

	digest := hashBlob(blob)
	for _, img := range ic.images {
		if img.sha1 == digest {
			return img, nil
		}
	}

	img := &Image{
		BasePart: *NewBasePart(ic.nextPartName(ext), contentType, blob),
		sha1:     digest,
	}
	ic.images = append(ic.images, img)
	logger.Debug("image added", "partname", img.PartName(), "sha1", digest)
	return img, nil
}

// nextPartName returns /ppt/media/imageN.ext for the lowest index N unused
// by any image in the collection, whatever its extension.
func (ic *ImageCollection) nextPartName(ext string) PackURI {
	used := make(map[int]bool, len(ic.images))
	for _, img := range ic.images {
		var n int
		if _, err := fmt.Sscanf(img.PartName().Filename(), "image%d", &n); err == nil {
			used[n] = true
		}
	}
	for n := 1; ; n++ {
		if !used[n] {
			return PackURI(fmt.Sprintf("/ppt/media/image%d.%s", n, ext))
		}
	}
}
