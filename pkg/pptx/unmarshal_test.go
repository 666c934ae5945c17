package pptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	pr := &PackageReader{
		Parts: []StoredPart{
			{PartName: "/ppt/presentation.xml", ContentType: "application/xml", Blob: []byte("<p:presentation/>")},
			{PartName: "/ppt/slides/slide1.xml", ContentType: "application/xml", Blob: []byte("<p:sld/>")},
		},
		Rels: []RelationshipRecord{
			{SourcePartName: PackageURI, RID: "rId1", RelType: RTOfficeDocument, Target: "/ppt/presentation.xml"},
			{SourcePartName: "/ppt/presentation.xml", RID: "rId1", RelType: RTSlide, Target: "/ppt/slides/slide1.xml"},
			{SourcePartName: "/ppt/slides/slide1.xml", RID: "rId1", RelType: RTHyperlink, Target: "https://example.com/", IsExternal: true},
		},
	}

	pkg := newPackage()
	require.NoError(t, Unmarshal(pr, pkg, NewPartFactory(false)))

	pres, err := pkg.Rels().PartWithRelType(RTOfficeDocument)
	require.NoError(t, err)
	assert.Equal(t, PackURI("/ppt/presentation.xml"), pres.PartName())

	slide, err := pres.Rels().PartWithRelType(RTSlide)
	require.NoError(t, err)
	assert.Equal(t, PackURI("/ppt/slides/slide1.xml"), slide.PartName())

	link, err := slide.Rels().Get("rId1")
	require.NoError(t, err)
	assert.True(t, link.IsExternal())
	assert.Equal(t, "https://example.com/", link.TargetRef())
}

func TestUnmarshal_SharedTargetBuiltOnce(t *testing.T) {
	pr := &PackageReader{
		Parts: []StoredPart{
			{PartName: "/ppt/slides/slide1.xml", ContentType: "application/xml"},
			{PartName: "/ppt/slides/slide2.xml", ContentType: "application/xml"},
			{PartName: "/ppt/media/image1.png", ContentType: CTPNG, Blob: []byte("pixels")},
		},
		Rels: []RelationshipRecord{
			{SourcePartName: PackageURI, RID: "rId1", RelType: RTSlide, Target: "/ppt/slides/slide1.xml"},
			{SourcePartName: PackageURI, RID: "rId2", RelType: RTSlide, Target: "/ppt/slides/slide2.xml"},
			{SourcePartName: "/ppt/slides/slide1.xml", RID: "rId1", RelType: RTImage, Target: "/ppt/media/image1.png"},
			{SourcePartName: "/ppt/slides/slide2.xml", RID: "rId1", RelType: RTImage, Target: "/ppt/media/image1.png"},
		},
	}

	pkg := newPackage()
	require.NoError(t, Unmarshal(pr, pkg, NewPartFactory(false)))

	slides := pkg.Rels().PartsWithRelType(RTSlide)
	require.Len(t, slides, 2)
	img1, err := slides[0].Rels().PartWithRelType(RTImage)
	require.NoError(t, err)
	img2, err := slides[1].Rels().PartWithRelType(RTImage)
	require.NoError(t, err)
	assert.Same(t, img1, img2)
}

func TestUnmarshal_DuplicatePartName(t *testing.T) {
	pr := &PackageReader{
		Parts: []StoredPart{
			{PartName: "/ppt/slides/slide1.xml", ContentType: "application/xml"},
			{PartName: "/ppt/slides/slide1.xml", ContentType: "application/xml"},
		},
	}

	err := Unmarshal(pr, newPackage(), NewPartFactory(false))
	assert.True(t, IsKeyConflict(err))
}

func TestUnmarshal_DanglingTarget(t *testing.T) {
	pr := &PackageReader{
		Rels: []RelationshipRecord{
			{SourcePartName: PackageURI, RID: "rId1", RelType: RTOfficeDocument, Target: "/ppt/presentation.xml"},
		},
	}

	err := Unmarshal(pr, newPackage(), NewPartFactory(false))
	assert.True(t, IsDanglingReference(err))
}

func TestUnmarshal_DanglingSource(t *testing.T) {
	pr := &PackageReader{
		Parts: []StoredPart{
			{PartName: "/ppt/slides/slide1.xml", ContentType: "application/xml"},
		},
		Rels: []RelationshipRecord{
			{SourcePartName: "/ppt/presentation.xml", RID: "rId1", RelType: RTSlide, Target: "/ppt/slides/slide1.xml"},
		},
	}

	err := Unmarshal(pr, newPackage(), NewPartFactory(false))
	assert.True(t, IsDanglingReference(err))
}
