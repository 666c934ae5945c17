package oxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"
)

// Namespace URIs used by the core properties part.
const (
	NSCoreProperties = "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
	NSDublinCore     = "http://purl.org/dc/elements/1.1/"
	NSDublinTerms    = "http://purl.org/dc/terms/"
	NSDublinMIType   = "http://purl.org/dc/dcmitype/"
	NSXSI            = "http://www.w3.org/2001/XMLSchema-instance"
)

// w3cdtf is the Dublin Core timestamp layout (W3C date/time format).
const w3cdtf = "2006-01-02T15:04:05Z"

// CoreProperties is the element handle for the Dublin Core document
// properties part (docProps/core.xml).
type CoreProperties struct {
	Title          string `xml:"http://purl.org/dc/elements/1.1/ title"`
	Subject        string `xml:"http://purl.org/dc/elements/1.1/ subject"`
	Creator        string `xml:"http://purl.org/dc/elements/1.1/ creator"`
	Description    string `xml:"http://purl.org/dc/elements/1.1/ description"`
	Keywords       string `xml:"http://schemas.openxmlformats.org/package/2006/metadata/core-properties keywords"`
	Category       string `xml:"http://schemas.openxmlformats.org/package/2006/metadata/core-properties category"`
	LastModifiedBy string `xml:"http://schemas.openxmlformats.org/package/2006/metadata/core-properties lastModifiedBy"`
	Revision       string `xml:"http://schemas.openxmlformats.org/package/2006/metadata/core-properties revision"`
	Created        string `xml:"http://purl.org/dc/terms/ created"`
	Modified       string `xml:"http://purl.org/dc/terms/ modified"`
}

// ParseCoreProperties parses the blob of a core properties part.
func ParseCoreProperties(blob []byte) (*CoreProperties, error) {
	props := &CoreProperties{}
	if err := xml.Unmarshal(blob, props); err != nil {
		return nil, fmt.Errorf("failed to parse core properties element: %w", err)
	}
	return props, nil
}

// SetCreated stores t in W3CDTF form.
func (cp *CoreProperties) SetCreated(t time.Time) {
	cp.Created = t.UTC().Format(w3cdtf)
}

// SetModified stores t in W3CDTF form.
func (cp *CoreProperties) SetModified(t time.Time) {
	cp.Modified = t.UTC().Format(w3cdtf)
}

// Serialize marshals the element back to part bytes with the conventional
// cp/dc/dcterms prefixes.
func (cp *CoreProperties) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlDecl)
	buf.WriteString(`<cp:coreProperties`)
	writeAttrs(&buf, nil, [][2]string{
		{"xmlns:cp", NSCoreProperties},
		{"xmlns:dc", NSDublinCore},
		{"xmlns:dcterms", NSDublinTerms},
		{"xmlns:dcmitype", NSDublinMIType},
		{"xmlns:xsi", NSXSI},
	})
	buf.WriteString(">")

	writeTextElement(&buf, "dc:title", cp.Title)
	writeTextElement(&buf, "dc:subject", cp.Subject)
	writeTextElement(&buf, "dc:creator", cp.Creator)
	writeTextElement(&buf, "cp:keywords", cp.Keywords)
	writeTextElement(&buf, "dc:description", cp.Description)
	writeTextElement(&buf, "cp:lastModifiedBy", cp.LastModifiedBy)
	writeTextElement(&buf, "cp:revision", cp.Revision)
	writeTextElement(&buf, "cp:category", cp.Category)
	if cp.Created != "" {
		fmt.Fprintf(&buf, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`,
			escapeText(cp.Created))
	}
	if cp.Modified != "" {
		fmt.Fprintf(&buf, `<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`,
			escapeText(cp.Modified))
	}

	buf.WriteString("</cp:coreProperties>")
	return buf.Bytes(), nil
}

func writeTextElement(buf *bytes.Buffer, name, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(buf, "<%s>%s</%s>", name, escapeText(value), name)
}

func escapeText(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
