package pptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackURI_Components(t *testing.T) {
	tests := []struct {
		name     string
		uri      PackURI
		baseURI  string
		filename string
		ext      string
		relsURI  PackURI
	}{
		{
			name:     "nested part",
			uri:      "/ppt/slides/slide1.xml",
			baseURI:  "/ppt/slides",
			filename: "slide1.xml",
			ext:      "xml",
			relsURI:  "/ppt/slides/_rels/slide1.xml.rels",
		},
		{
			name:     "top-level part",
			uri:      "/ppt/presentation.xml",
			baseURI:  "/ppt",
			filename: "presentation.xml",
			ext:      "xml",
			relsURI:  "/ppt/_rels/presentation.xml.rels",
		},
		{
			name:     "package root",
			uri:      PackageURI,
			baseURI:  "/",
			filename: "",
			ext:      "",
			relsURI:  "/_rels/.rels",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.baseURI, tt.uri.BaseURI())
			assert.Equal(t, tt.filename, tt.uri.Filename())
			assert.Equal(t, tt.ext, tt.uri.Ext())
			assert.Equal(t, tt.relsURI, tt.uri.RelsURI())
		})
	}
}

func TestPackURI_RelativeRef(t *testing.T) {
	tests := []struct {
		name    string
		uri     PackURI
		baseURI string
		want    string
	}{
		{
			name:    "from package root",
			uri:     "/ppt/presentation.xml",
			baseURI: "/",
			want:    "ppt/presentation.xml",
		},
		{
			name:    "same directory subtree",
			uri:     "/ppt/slideMasters/slideMaster1.xml",
			baseURI: "/ppt",
			want:    "slideMasters/slideMaster1.xml",
		},
		{
			name:    "sibling directory",
			uri:     "/ppt/slideMasters/slideMaster1.xml",
			baseURI: "/ppt/slideLayouts",
			want:    "../slideMasters/slideMaster1.xml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.uri.RelativeRef(tt.baseURI)
			assert.Equal(t, tt.want, got)

			// relative refs must resolve back to the absolute partname
			assert.Equal(t, tt.uri, resolveRelativeRef(tt.baseURI, got))
		})
	}
}

func TestResolveRelativeRef(t *testing.T) {
	tests := []struct {
		name    string
		baseURI string
		ref     string
		want    PackURI
	}{
		{"relative", "/ppt", "slides/slide1.xml", "/ppt/slides/slide1.xml"},
		{"parent hop", "/ppt/slides", "../media/image1.png", "/ppt/media/image1.png"},
		{"absolute ref ignores base", "/ppt", "/ppt/slides/slide1.xml", "/ppt/slides/slide1.xml"},
		{"absolute ref from root", "/", "/docProps/core.xml", "/docProps/core.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveRelativeRef(tt.baseURI, tt.ref))
		})
	}
}

func TestRelsSourceURI(t *testing.T) {
	source, err := relsSourceURI("_rels/.rels")
	require.NoError(t, err)
	assert.Equal(t, PackageURI, source)

	source, err = relsSourceURI("ppt/_rels/presentation.xml.rels")
	require.NoError(t, err)
	assert.Equal(t, PackURI("/ppt/presentation.xml"), source)

	_, err = relsSourceURI("ppt/presentation.xml")
	assert.Error(t, err)
}

func TestNewPackURI(t *testing.T) {
	uri, err := NewPackURI("/ppt/presentation.xml")
	require.NoError(t, err)
	assert.Equal(t, PackURI("/ppt/presentation.xml"), uri)

	_, err = NewPackURI("ppt/presentation.xml")
	assert.Error(t, err)
}
