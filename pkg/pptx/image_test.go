package pptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageCollection_AddImageDeduplicates(t *testing.T) {
	ic := NewImageCollection()

	first, err := ic.AddImage([]byte("pixels"), "png")
	require.NoError(t, err)
	assert.Equal(t, PackURI("/ppt/media/image1.png"), first.PartName())
	assert.Equal(t, CTPNG, first.ContentType())

	// same bytes, even with a different extension spelling, reuse the part
	again, err := ic.AddImage([]byte("pixels"), ".PNG")
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, 1, ic.Len())

	second, err := ic.AddImage([]byte("other pixels"), "jpeg")
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, PackURI("/ppt/media/image2.jpeg"), second.PartName())
	assert.Equal(t, CTJPEG, second.ContentType())
	assert.Equal(t, 2, ic.Len())
}

func TestImageCollection_NumbersAcrossExtensions(t *testing.T) {
	ic := NewImageCollection()

	first, err := ic.AddImage([]byte("one"), "png")
	require.NoError(t, err)
	second, err := ic.AddImage([]byte("two"), "gif")
	require.NoError(t, err)
	third, err := ic.AddImage([]byte("three"), "jpg")
	require.NoError(t, err)

	// indices advance over the whole collection, never per extension
	assert.Equal(t, PackURI("/ppt/media/image1.png"), first.PartName())
	assert.Equal(t, PackURI("/ppt/media/image2.gif"), second.PartName())
	assert.Equal(t, PackURI("/ppt/media/image3.jpg"), third.PartName())
}

func TestImageCollection_NumberingFillsGaps(t *testing.T) {
	one, err := loadImage("/ppt/media/image1.png", CTPNG, []byte("one"))
	require.NoError(t, err)
	three, err := loadImage("/ppt/media/image3.gif", CTGIF, []byte("three"))
	require.NoError(t, err)

	ic := NewImageCollection()
	ic.Load([]Part{one, three})

	img, err := ic.AddImage([]byte("two"), "jpeg")
	require.NoError(t, err)
	assert.Equal(t, PackURI("/ppt/media/image2.jpeg"), img.PartName())
}

func TestImageCollection_AddImageUnknownExtension(t *testing.T) {
	ic := NewImageCollection()
	_, err := ic.AddImage([]byte("vector"), "svg")
	assert.True(t, IsNotFound(err))
}

func TestImageCollection_Load(t *testing.T) {
	img, err := loadImage("/ppt/media/image1.png", CTPNG, []byte("pixels"))
	require.NoError(t, err)
	slide := NewBasePart("/ppt/slides/slide1.xml", CTSlide, nil)

	ic := NewImageCollection()
	ic.Load([]Part{slide, img})

	require.Equal(t, 1, ic.Len())
	assert.Same(t, img, Part(ic.All()[0]))
}

func TestImage_SHA1(t *testing.T) {
	img, err := loadImage("/ppt/media/image1.png", CTPNG, []byte("pixels"))
	require.NoError(t, err)
	image := img.(*Image)

	assert.Equal(t, hashBlob([]byte("pixels")), image.SHA1())
	assert.Len(t, image.SHA1(), 40)
	assert.Equal(t, "png", image.Ext())
}
