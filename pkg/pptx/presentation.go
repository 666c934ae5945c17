package pptx

import (
	"github.com/benjaminschreck/go-pptx/pkg/pptx/oxml"
)

// Presentation is the top-level part of the object model, representing the
// contents of the /ppt directory of a .pptx file. Its slide master and
// slide collections are built lazily from the live relationship graph on
// first access, not eagerly during unmarshalling.
type Presentation struct {
	partCore
	element *oxml.Presentation
	masters *Lazy[[]*SlideMaster]
	slides  *Lazy[*SlideCollection]
}

func loadPresentation(partName PackURI, contentType string, blob []byte) (Part, error) {
	element, err := oxml.ParsePresentation(blob)
	if err != nil {
		return nil, err
	}
	return newPresentation(partName, contentType, element), nil
}

func newPresentation(partName PackURI, contentType string, element *oxml.Presentation) *Presentation {
	p := &Presentation{
		partCore: newPartCore(partName, contentType),
		element:  element,
	}
	p.masters = NewLazy(p.loadSlideMasters)
	p.slides = NewLazy(p.loadSlides)
	return p
}

// Blob serializes the presentation element back to part bytes.
func (p *Presentation) Blob() ([]byte, error) {
	return p.element.Serialize()
}

// Element returns the presentation's element handle.
func (p *Presentation) Element() *oxml.Presentation { return p.element }

// SlideMasters returns the slide masters belonging to this presentation,
// in relationship insertion order. Built on first access and cached.
func (p *Presentation) SlideMasters() ([]*SlideMaster, error) {
	return p.masters.Value()
}

func (p *Presentation) loadSlideMasters() ([]*SlideMaster, error) {
	var masters []*SlideMaster
	for _, part := range p.rels.PartsWithRelType(RTSlideMaster) {
		master, ok := part.(*SlideMaster)
		if !ok {
			return nil, NewInvalidStateError(
				"slideMaster relationship targets a non-master part: " + string(part.PartName()),
			)
		}
		masters = append(masters, master)
	}
	return masters, nil
}

// Slides returns the slide collection of this presentation, bound to the
// element's sldIdLst and the part's relationships. Built on first access
// and cached.
func (p *Presentation) Slides() (*SlideCollection, error) {
	return p.slides.Value()
}

func (p *Presentation) loadSlides() (*SlideCollection, error) {
	return &SlideCollection{
		sldIdLst: p.element.GetOrAddSldIdLst(),
		rels:     p.rels,
		pres:     p,
	}, nil
}
