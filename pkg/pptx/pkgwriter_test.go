package pptx

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readZipMembers(t *testing.T, blob []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	require.NoError(t, err)
	members := make(map[string]string, len(zr.File))
	for _, file := range zr.File {
		rc, err := file.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		members[file.Name] = string(content)
	}
	return members
}

func TestWritePackage(t *testing.T) {
	parts := []StoredPart{
		{PartName: "/ppt/presentation.xml", ContentType: CTPresentation, Blob: []byte("<p:presentation/>")},
		{PartName: "/ppt/slides/slide1.xml", ContentType: CTSlide, Blob: []byte("<p:sld/>")},
		{PartName: "/ppt/media/image1.png", ContentType: CTPNG, Blob: []byte("pngbytes")},
	}
	rels := []RelationshipRecord{
		{SourcePartName: PackageURI, RID: "rId1", RelType: RTOfficeDocument, Target: "/ppt/presentation.xml"},
		{SourcePartName: "/ppt/presentation.xml", RID: "rId1", RelType: RTSlide, Target: "/ppt/slides/slide1.xml"},
		{SourcePartName: "/ppt/slides/slide1.xml", RID: "rId1", RelType: RTImage, Target: "/ppt/media/image1.png"},
		{SourcePartName: "/ppt/slides/slide1.xml", RID: "rId2", RelType: RTHyperlink, Target: "https://example.com/", IsExternal: true},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePackage(&buf, parts, rels))

	members := readZipMembers(t, buf.Bytes())

	ct := members["[Content_Types].xml"]
	require.NotEmpty(t, ct)
	assert.True(t, strings.HasPrefix(ct, xmlDeclaration))
	// png is covered by a Default row, the XML parts need Overrides
	assert.Contains(t, ct, `Extension="png"`)
	assert.Contains(t, ct, `PartName="/ppt/presentation.xml"`)
	assert.Contains(t, ct, `PartName="/ppt/slides/slide1.xml"`)
	assert.NotContains(t, ct, `PartName="/ppt/media/image1.png"`)

	assert.Equal(t, "<p:presentation/>", members["ppt/presentation.xml"])
	assert.Equal(t, "pngbytes", members["ppt/media/image1.png"])

	// internal targets are written relative to the source's base URI
	assert.Contains(t, members["_rels/.rels"], `Target="ppt/presentation.xml"`)
	assert.Contains(t, members["ppt/_rels/presentation.xml.rels"], `Target="slides/slide1.xml"`)
	slideRels := members["ppt/slides/_rels/slide1.xml.rels"]
	assert.Contains(t, slideRels, `Target="../media/image1.png"`)
	assert.Contains(t, slideRels, `Target="https://example.com/"`)
	assert.Contains(t, slideRels, `TargetMode="External"`)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	parts := []StoredPart{
		{PartName: "/ppt/presentation.xml", ContentType: CTPresentation, Blob: []byte("<p:presentation/>")},
		{PartName: "/ppt/slides/slide1.xml", ContentType: CTSlide, Blob: []byte("<p:sld/>")},
		{PartName: "/ppt/media/image1.png", ContentType: CTPNG, Blob: []byte("pngbytes")},
	}
	rels := []RelationshipRecord{
		{SourcePartName: PackageURI, RID: "rId1", RelType: RTOfficeDocument, Target: "/ppt/presentation.xml"},
		{SourcePartName: "/ppt/presentation.xml", RID: "rId1", RelType: RTSlide, Target: "/ppt/slides/slide1.xml"},
		{SourcePartName: "/ppt/slides/slide1.xml", RID: "rId1", RelType: RTImage, Target: "/ppt/media/image1.png"},
		{SourcePartName: "/ppt/slides/slide1.xml", RID: "rId2", RelType: RTHyperlink, Target: "https://example.com/", IsExternal: true},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePackage(&buf, parts, rels))

	pr, err := ReadPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	assert.ElementsMatch(t, parts, pr.Parts)
	assert.ElementsMatch(t, rels, pr.Rels)
}
