package pptx

// Relationship types used within a presentation package. Each value is the
// schema URI that classifies an edge in the relationship graph.
const (
	RTOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RTCoreProperties = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RTSlide          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	RTSlideMaster    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	RTSlideLayout    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	RTImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RTTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RTChart          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart"
	RTHyperlink      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

// Content types of the part kinds this model gives a typed subtype.
// Anything else becomes a generic opaque-blob part (see PartFactory).
const (
	CTPresentation   = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	CTSlide          = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	CTSlideMaster    = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	CTSlideLayout    = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	CTCoreProperties = "application/vnd.openxmlformats-package.core-properties+xml"
	CTChart          = "application/vnd.openxmlformats-officedocument.drawingml.chart+xml"
	CTTheme          = "application/vnd.openxmlformats-officedocument.theme+xml"

	CTPNG  = "image/png"
	CTJPEG = "image/jpeg"
	CTGIF  = "image/gif"
	CTBMP  = "image/bmp"
	CTTIFF = "image/tiff"
)

// XML namespace URIs that show up in the package-level tables.
const (
	nsContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
)
