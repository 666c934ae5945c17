package pptx

import (
	"fmt"

	"github.com/benjaminschreck/go-pptx/pkg/pptx/oxml"
)

// Slide is one slide part. Its markup is carried opaquely; the object
// model works with slides through the presentation's relationship graph
// and sldIdLst.
type Slide struct {
	BasePart
}

func loadSlide(partName PackURI, contentType string, blob []byte) (Part, error) {
	return &Slide{BasePart: *NewBasePart(partName, contentType, blob)}, nil
}

// SlideMaster is one slide master part.
type SlideMaster struct {
	BasePart
}

func loadSlideMaster(partName PackURI, contentType string, blob []byte) (Part, error) {
	return &SlideMaster{BasePart: *NewBasePart(partName, contentType, blob)}, nil
}

// SlideLayout is one slide layout part.
type SlideLayout struct {
	BasePart
}

func loadSlideLayout(partName PackURI, contentType string, blob []byte) (Part, error) {
	return &SlideLayout{BasePart: *NewBasePart(partName, contentType, blob)}, nil
}

// minimalSlideXML is the markup of a freshly added, empty slide.
const minimalSlideXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"><p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr><p:grpSpPr/></p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`

// SlideCollection presents the slides of one presentation in sldIdLst
// order, resolving each entry's rId through the presentation's
// relationship collection.
type SlideCollection struct {
	sldIdLst *oxml.SldIdLst
	rels     *RelationshipCollection
	pres     *Presentation
}

// Len returns the number of slides.
func (sc *SlideCollection) Len() int {
	return len(sc.sldIdLst.Entries)
}

// Slides returns the slides in presentation order.
func (sc *SlideCollection) Slides() ([]*Slide, error) {
	slides := make([]*Slide, 0, len(sc.sldIdLst.Entries))
	for _, entry := range sc.sldIdLst.Entries {
		slide, err := sc.slideForEntry(entry)
		if err != nil {
			return nil, err
		}
		slides = append(slides, slide)
	}
	return slides, nil
}

// Slide returns the idx-th slide in presentation order.
func (sc *SlideCollection) Slide(idx int) (*Slide, error) {
	if idx < 0 || idx >= len(sc.sldIdLst.Entries) {
		return nil, NewNotFoundError("slide at index", fmt.Sprintf("%d", idx))
	}
	return sc.slideForEntry(sc.sldIdLst.Entries[idx])
}

func (sc *SlideCollection) slideForEntry(entry oxml.SldID) (*Slide, error) {
	rel, err := sc.rels.Get(entry.RID)
	if err != nil {
		return nil, err
	}
	slide, ok := rel.TargetPart().(*Slide)
	if !ok {
		return nil, NewInvalidStateError(
			"sldId entry " + entry.RID + " targets a non-slide part",
		)
	}
	return slide, nil
}

// AddSlide appends a new empty slide based on layout: a fresh slide part,
// a slide relationship from the presentation, a layout relationship from
// the slide, and a new sldIdLst entry.
func (sc *SlideCollection) AddSlide(layout *SlideLayout) (*Slide, error) {
	partName := sc.nextSlidePartName()
	slide := &Slide{BasePart: *NewBasePart(partName, CTSlide, []byte(minimalSlideXML))}

	if layout != nil {
		if _, err := slide.Rels().AddRelationship(RTSlideLayout, layout, "rId1"); err != nil {
			return nil, err
		}
	}
	rel, err := sc.rels.AddRelationship(RTSlide, slide, sc.rels.nextRID())
	if err != nil {
		return nil, err
	}
	sc.sldIdLst.Entries = append(sc.sldIdLst.Entries, oxml.SldID{
		ID:  sc.pres.element.NextSlideID(),
		RID: rel.RID(),
	})
	logger.Debug("slide added", "partname", partName, "rId", rel.RID())
	return slide, nil
}

// nextSlidePartName returns the lowest unused /ppt/slides/slideN.xml.
func (sc *SlideCollection) nextSlidePartName() PackURI {
	used := make(map[PackURI]bool)
	for _, part := range sc.rels.PartsWithRelType(RTSlide) {
		used[part.PartName()] = true
	}
	for n := 1; ; n++ {
		candidate := PackURI(fmt.Sprintf("/ppt/slides/slide%d.xml", n))
		if !used[candidate] {
			return candidate
		}
	}
}
