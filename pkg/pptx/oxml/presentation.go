package oxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// Namespace URIs used by presentation part markup.
const (
	NSPresentationML = "http://schemas.openxmlformats.org/presentationml/2006/main"
	NSDrawingML      = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NSRelationships  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// xmlDecl is written ahead of every serialized part.
const xmlDecl = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Presentation is the element handle for the presentation part
// (ppt/presentation.xml). Only the children the object model works with
// are modelled; root attributes and every other child (notesMasterIdLst,
// defaultTextStyle, extLst, ...) are preserved verbatim across the round
// trip.
type Presentation struct {
	Attrs          []xml.Attr
	SldMasterIdLst *SldMasterIdLst
	SldIdLst       *SldIdLst
	SldSz          *SlideSize
	NotesSz        *SlideSize

	// children records the element's child sequence in document order:
	// modelled children by local name, everything else as a raw fragment.
	children []presentationChild
}

// presentationChild is one child slot of the presentation element. A
// non-empty kind names a modelled child emitted from its current handle;
// otherwise raw holds the source markup unchanged.
type presentationChild struct {
	kind string
	raw  []byte
}

// SldMasterIdLst lists the slide masters of a presentation in order.
type SldMasterIdLst struct {
	Entries []SldMasterID
}

// SldMasterID is one sldMasterId entry: a numeric id and the rId of the
// relationship pointing at the slide master part.
type SldMasterID struct {
	ID  string
	RID string
}

// UnmarshalXML separates the plain id attribute from r:id by namespace;
// both carry the local name "id".
func (s *SldMasterID) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	s.ID, s.RID = idAttrs(start)
	return d.Skip()
}

// SldIdLst lists the slides of a presentation in presentation order.
type SldIdLst struct {
	Entries []SldID
}

// SldID is one sldId entry: a numeric id (256 or greater) and the rId of
// the relationship pointing at the slide part.
type SldID struct {
	ID  string
	RID string
}

// UnmarshalXML separates the plain id attribute from r:id by namespace.
func (s *SldID) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	s.ID, s.RID = idAttrs(start)
	return d.Skip()
}

func idAttrs(start xml.StartElement) (id, rID string) {
	for _, attr := range start.Attr {
		if attr.Name.Local != "id" {
			continue
		}
		switch attr.Name.Space {
		case "":
			id = attr.Value
		case NSRelationships:
			rID = attr.Value
		}
	}
	return id, rID
}

// SlideSize carries the cx/cy extents of sldSz and notesSz elements.
type SlideSize struct {
	CX   int64  `xml:"cx,attr"`
	CY   int64  `xml:"cy,attr"`
	Type string `xml:"type,attr,omitempty"`
}

// ParsePresentation parses the blob of a presentation part. Modelled
// children are decoded into their handles; any other child element is kept
// as a raw source fragment so re-serialization never drops it.
func ParsePresentation(blob []byte) (*Presentation, error) {
	p := &Presentation{Attrs: rootAttrs(blob)}
	decoder := xml.NewDecoder(bytes.NewReader(blob))
	depth := 0
	sawRoot := false
	for {
		offset := decoder.InputOffset()
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse presentation element: %w", err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			depth++
			sawRoot = true
			if depth != 2 {
				continue
			}
			if err := p.parseChild(decoder, t, blob, offset); err != nil {
				return nil, fmt.Errorf("failed to parse presentation element: %w", err)
			}
			// parseChild consumed through the child's end element
			depth--
		case xml.EndElement:
			depth--
		}
	}
	if !sawRoot {
		return nil, fmt.Errorf("failed to parse presentation element: no root element")
	}
	return p, nil
}

func (p *Presentation) parseChild(decoder *xml.Decoder, start xml.StartElement, blob []byte, offset int64) error {
	switch start.Name.Local {
	case "sldMasterIdLst":
		var lst struct {
			Entries []SldMasterID `xml:"sldMasterId"`
		}
		if err := decoder.DecodeElement(&lst, &start); err != nil {
			return err
		}
		p.SldMasterIdLst = &SldMasterIdLst{Entries: lst.Entries}
	case "sldIdLst":
		var lst struct {
			Entries []SldID `xml:"sldId"`
		}
		if err := decoder.DecodeElement(&lst, &start); err != nil {
			return err
		}
		p.SldIdLst = &SldIdLst{Entries: lst.Entries}
	case "sldSz":
		var sz SlideSize
		if err := decoder.DecodeElement(&sz, &start); err != nil {
			return err
		}
		p.SldSz = &sz
	case "notesSz":
		var sz SlideSize
		if err := decoder.DecodeElement(&sz, &start); err != nil {
			return err
		}
		p.NotesSz = &sz
	default:
		if err := decoder.Skip(); err != nil {
			return err
		}
		end := decoder.InputOffset()
		raw := append([]byte(nil), blob[offset:end]...)
		p.children = append(p.children, presentationChild{raw: raw})
		return nil
	}
	p.children = append(p.children, presentationChild{kind: start.Name.Local})
	return nil
}

// GetOrAddSldIdLst returns the slide id list, creating an empty one if the
// element is absent.
func (p *Presentation) GetOrAddSldIdLst() *SldIdLst {
	if p.SldIdLst == nil {
		p.SldIdLst = &SldIdLst{}
	}
	return p.SldIdLst
}

// NextSlideID returns the next free numeric slide id, 256 or greater.
func (p *Presentation) NextSlideID() string {
	max := int64(255)
	if p.SldIdLst != nil {
		for _, entry := range p.SldIdLst.Entries {
			var id int64
			if _, err := fmt.Sscanf(entry.ID, "%d", &id); err == nil && id > max {
				max = id
			}
		}
	}
	return fmt.Sprintf("%d", max+1)
}

// Serialize marshals the element back to part bytes with conventional
// prefixes and the preserved root attributes. Children keep their source
// document order; unmodelled children are emitted verbatim.
func (p *Presentation) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlDecl)
	buf.WriteString("<p:presentation")
	writeAttrs(&buf, p.Attrs, [][2]string{
		{"xmlns:a", NSDrawingML},
		{"xmlns:r", NSRelationships},
		{"xmlns:p", NSPresentationML},
	})
	buf.WriteString(">")

	for _, c := range p.orderedChildren() {
		switch c.kind {
		case "sldMasterIdLst":
			if p.SldMasterIdLst == nil {
				continue
			}
			buf.WriteString("<p:sldMasterIdLst>")
			for _, entry := range p.SldMasterIdLst.Entries {
				fmt.Fprintf(&buf, `<p:sldMasterId id="%s" r:id="%s"/>`,
					escapeAttr(entry.ID), escapeAttr(entry.RID))
			}
			buf.WriteString("</p:sldMasterIdLst>")
		case "sldIdLst":
			if p.SldIdLst == nil {
				continue
			}
			buf.WriteString("<p:sldIdLst>")
			for _, entry := range p.SldIdLst.Entries {
				fmt.Fprintf(&buf, `<p:sldId id="%s" r:id="%s"/>`,
					escapeAttr(entry.ID), escapeAttr(entry.RID))
			}
			buf.WriteString("</p:sldIdLst>")
		case "sldSz":
			if p.SldSz != nil {
				writeSlideSize(&buf, "p:sldSz", p.SldSz)
			}
		case "notesSz":
			if p.NotesSz != nil {
				// notesSz carries no type attribute
				fmt.Fprintf(&buf, `<p:notesSz cx="%d" cy="%d"/>`, p.NotesSz.CX, p.NotesSz.CY)
			}
		default:
			buf.Write(c.raw)
		}
	}

	buf.WriteString("</p:presentation>")
	return buf.Bytes(), nil
}

// orderedChildren returns the child slots to emit. A parsed element keeps
// its document order, with a sldIdLst created after parse slotted in right
// after the sldMasterIdLst. A programmatically built element gets the
// schema order of its non-nil handles.
func (p *Presentation) orderedChildren() []presentationChild {
	if p.children == nil {
		var cs []presentationChild
		for _, kind := range []string{"sldMasterIdLst", "sldIdLst", "sldSz", "notesSz"} {
			cs = append(cs, presentationChild{kind: kind})
		}
		return cs
	}
	if p.SldIdLst == nil {
		return p.children
	}
	for _, c := range p.children {
		if c.kind == "sldIdLst" {
			return p.children
		}
	}
	cs := make([]presentationChild, 0, len(p.children)+1)
	inserted := false
	for _, c := range p.children {
		cs = append(cs, c)
		if c.kind == "sldMasterIdLst" {
			cs = append(cs, presentationChild{kind: "sldIdLst"})
			inserted = true
		}
	}
	if !inserted {
		cs = append([]presentationChild{{kind: "sldIdLst"}}, p.children...)
	}
	return cs
}

func writeSlideSize(buf *bytes.Buffer, name string, sz *SlideSize) {
	fmt.Fprintf(buf, `<%s cx="%d" cy="%d"`, name, sz.CX, sz.CY)
	if sz.Type != "" {
		fmt.Fprintf(buf, ` type="%s"`, escapeAttr(sz.Type))
	}
	buf.WriteString("/>")
}

// rootAttrs extracts the attributes of a blob's root element.
func rootAttrs(blob []byte) []xml.Attr {
	decoder := xml.NewDecoder(bytes.NewReader(blob))
	for {
		token, err := decoder.Token()
		if err != nil {
			return nil
		}
		if start, ok := token.(xml.StartElement); ok {
			attrs := make([]xml.Attr, len(start.Attr))
			copy(attrs, start.Attr)
			return attrs
		}
	}
}

// writeAttrs writes the preserved root attributes, or the fallback
// declarations when the element was built programmatically.
func writeAttrs(buf *bytes.Buffer, attrs []xml.Attr, fallback [][2]string) {
	if len(attrs) == 0 {
		for _, attr := range fallback {
			fmt.Fprintf(buf, ` %s="%s"`, attr[0], escapeAttr(attr[1]))
		}
		return
	}
	for _, attr := range attrs {
		fmt.Fprintf(buf, ` %s="%s"`, attrName(attr.Name), escapeAttr(attr.Value))
	}
}

// attrName renders an attribute name back to its prefixed source form.
// The decoder reports xmlns declarations with Space "xmlns"; anything else
// prefixed resolves to a namespace URI we map back to its conventional
// prefix.
func attrName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	if name.Space == "xmlns" {
		return "xmlns:" + name.Local
	}
	if prefix, ok := namespacePrefixes[name.Space]; ok {
		return prefix + ":" + name.Local
	}
	return name.Local
}

// namespacePrefixes maps namespace URIs to their conventional prefixes.
var namespacePrefixes = map[string]string{
	NSPresentationML: "p",
	NSDrawingML:      "a",
	NSRelationships:  "r",
	"http://www.w3.org/XML/1998/namespace":                         "xml",
	"http://schemas.openxmlformats.org/markup-compatibility/2006":  "mc",
	"http://www.w3.org/2001/XMLSchema-instance":                    "xsi",
	"http://purl.org/dc/elements/1.1/":                             "dc",
	"http://purl.org/dc/terms/":                                    "dcterms",
	"http://purl.org/dc/dcmitype/":                                 "dcmitype",
	"http://schemas.openxmlformats.org/package/2006/metadata/core-properties": "cp",
}

func escapeAttr(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
