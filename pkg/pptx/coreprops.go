package pptx

import (
	"time"

	"github.com/benjaminschreck/go-pptx/pkg/pptx/oxml"
)

// corePropsPartName is the fixed partname of the core properties part.
const corePropsPartName = PackURI("/docProps/core.xml")

// CoreProperties is the part holding the read/write Dublin Core document
// properties of a presentation.
type CoreProperties struct {
	partCore
	element *oxml.CoreProperties
}

func loadCoreProperties(partName PackURI, contentType string, blob []byte) (Part, error) {
	element, err := oxml.ParseCoreProperties(blob)
	if err != nil {
		return nil, err
	}
	return &CoreProperties{
		partCore: newPartCore(partName, contentType),
		element:  element,
	}, nil
}

// DefaultCoreProperties returns the part materialized when a package has
// no core properties of its own.
func DefaultCoreProperties() *CoreProperties {
	element := &oxml.CoreProperties{
		Title:          "PowerPoint Presentation",
		LastModifiedBy: "go-pptx",
		Revision:       "1",
	}
	now := time.Now()
	element.SetCreated(now)
	element.SetModified(now)
	return &CoreProperties{
		partCore: newPartCore(corePropsPartName, CTCoreProperties),
		element:  element,
	}
}

// Blob serializes the properties element back to part bytes.
func (cp *CoreProperties) Blob() ([]byte, error) {
	return cp.element.Serialize()
}

// Title returns the dc:title property.
func (cp *CoreProperties) Title() string { return cp.element.Title }

// SetTitle sets the dc:title property.
func (cp *CoreProperties) SetTitle(title string) { cp.element.Title = title }

// Creator returns the dc:creator property.
func (cp *CoreProperties) Creator() string { return cp.element.Creator }

// SetCreator sets the dc:creator property.
func (cp *CoreProperties) SetCreator(creator string) { cp.element.Creator = creator }

// Subject returns the dc:subject property.
func (cp *CoreProperties) Subject() string { return cp.element.Subject }

// SetSubject sets the dc:subject property.
func (cp *CoreProperties) SetSubject(subject string) { cp.element.Subject = subject }

// Keywords returns the cp:keywords property.
func (cp *CoreProperties) Keywords() string { return cp.element.Keywords }

// SetKeywords sets the cp:keywords property.
func (cp *CoreProperties) SetKeywords(keywords string) { cp.element.Keywords = keywords }

// Revision returns the cp:revision property.
func (cp *CoreProperties) Revision() string { return cp.element.Revision }

// SetRevision sets the cp:revision property.
func (cp *CoreProperties) SetRevision(revision string) { cp.element.Revision = revision }

// LastModifiedBy returns the cp:lastModifiedBy property.
func (cp *CoreProperties) LastModifiedBy() string { return cp.element.LastModifiedBy }

// SetLastModifiedBy sets the cp:lastModifiedBy property.
func (cp *CoreProperties) SetLastModifiedBy(name string) { cp.element.LastModifiedBy = name }

// SetModified stamps the dcterms:modified property with t.
func (cp *CoreProperties) SetModified(t time.Time) { cp.element.SetModified(t) }
