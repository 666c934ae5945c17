package pptx

import (
	"strings"
)

// Part is a named, typed unit of content within a package. A part owns its
// outgoing relationships; identity is by reference, so two Parts are the
// same node iff they are the same value.
type Part interface {
	// PartName returns the part's unique path-like identifier.
	PartName() PackURI
	// ContentType returns the part's MIME-like type tag.
	ContentType() string
	// Blob serializes the part's current in-memory state back to bytes.
	// Structured parts re-marshal their element handle; binary parts
	// return their stored bytes.
	Blob() ([]byte, error)
	// Rels returns the part's outgoing relationship collection.
	Rels() *RelationshipCollection
	// AfterUnmarshal is invoked exactly once, after the full graph of
	// parts and relationships has been constructed, to perform any
	// post-load linking that depends on sibling parts already existing.
	AfterUnmarshal() error
}

// partCore carries the attributes every part shares. Concrete part types
// embed it and add their own content handle.
type partCore struct {
	partName    PackURI
	contentType string
	rels        *RelationshipCollection
}

func newPartCore(partName PackURI, contentType string) partCore {
	return partCore{
		partName:    partName,
		contentType: contentType,
		rels:        NewRelationshipCollection(partName.BaseURI()),
	}
}

func (p *partCore) PartName() PackURI             { return p.partName }
func (p *partCore) ContentType() string           { return p.contentType }
func (p *partCore) Rels() *RelationshipCollection { return p.rels }
func (p *partCore) AfterUnmarshal() error         { return nil }

// BasePart is the generic opaque-blob part used for every content type
// without a typed subtype. Its blob round-trips unchanged.
type BasePart struct {
	partCore
	blob []byte
}

// NewBasePart creates a generic binary part holding blob.
func NewBasePart(partName PackURI, contentType string, blob []byte) *BasePart {
	return &BasePart{partCore: newPartCore(partName, contentType), blob: blob}
}

// Blob returns the part's stored bytes unchanged.
func (p *BasePart) Blob() ([]byte, error) { return p.blob, nil }

// SetBlob replaces the part's stored bytes.
func (p *BasePart) SetBlob(blob []byte) { p.blob = blob }

// PartLoader constructs a concrete part from one stored-part record.
type PartLoader func(partName PackURI, contentType string, blob []byte) (Part, error)

// PartFactory selects a part constructor by content type. Exact matches
// win; "image/*" types map to Image; everything else falls back to the
// generic BasePart unless strict mode makes unknown types a load failure.
type PartFactory struct {
	loaders map[string]PartLoader
	strict  bool
}

// NewPartFactory creates an empty factory. Unknown content types fall back
// to BasePart unless strict is set.
func NewPartFactory(strict bool) *PartFactory {
	return &PartFactory{loaders: make(map[string]PartLoader), strict: strict}
}

// Register maps contentType to loader, replacing any previous mapping.
func (f *PartFactory) Register(contentType string, loader PartLoader) {
	f.loaders[contentType] = loader
}

// Load constructs the part for one stored-part record.
func (f *PartFactory) Load(partName PackURI, contentType string, blob []byte) (Part, error) {
	if loader, ok := f.loaders[contentType]; ok {
		return loader(partName, contentType, blob)
	}
	if strings.HasPrefix(contentType, "image/") {
		return loadImage(partName, contentType, blob)
	}
	if f.strict {
		return nil, NewNotFoundError("part loader for content type", contentType)
	}
	logger.Debug("no typed loader, using generic part",
		"partname", partName, "content_type", contentType)
	return NewBasePart(partName, contentType, blob), nil
}

// DefaultPartFactory returns a factory with loaders registered for every
// part kind this model gives a typed subtype.
func DefaultPartFactory() *PartFactory {
	f := NewPartFactory(GetGlobalConfig().StrictContentTypes)
	f.Register(CTPresentation, loadPresentation)
	f.Register(CTSlide, loadSlide)
	f.Register(CTSlideMaster, loadSlideMaster)
	f.Register(CTSlideLayout, loadSlideLayout)
	f.Register(CTCoreProperties, loadCoreProperties)
	f.Register(CTChart, loadChart)
	return f
}
