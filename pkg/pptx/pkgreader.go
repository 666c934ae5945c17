package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// StoredPart is one part record as read from or written to a container:
// the raw bytes plus the identity the content-types table assigns them.
type StoredPart struct {
	PartName    PackURI
	ContentType string
	Blob        []byte
}

// RelationshipRecord is one relationship row of a container's .rels
// tables. Target holds the absolute partname of the target for internal
// relationships and the raw URI for external ones.
type RelationshipRecord struct {
	SourcePartName PackURI
	RID            string
	RelType        string
	Target         string
	IsExternal     bool
}

// PackageReader holds the flat stored-part and relationship records of one
// container file, ready for the Unmarshaller to rebuild the live graph.
type PackageReader struct {
	Parts []StoredPart
	Rels  []RelationshipRecord
}

// relationshipXML mirrors one Relationship element of a .rels file.
type relationshipXML struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// relationshipsXML mirrors the root element of a .rels file.
type relationshipsXML struct {
	XMLName      xml.Name          `xml:"Relationships"`
	Namespace    string            `xml:"xmlns,attr"`
	Relationship []relationshipXML `xml:"Relationship"`
}

// contentTypesXML mirrors [Content_Types].xml.
type contentTypesXML struct {
	XMLName   xml.Name              `xml:"Types"`
	Namespace string                `xml:"xmlns,attr"`
	Defaults  []contentTypeDefault  `xml:"Default"`
	Overrides []contentTypeOverride `xml:"Override"`
}

type contentTypeDefault struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentTypeOverride struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// contentTypeMap resolves a partname to its declared content type.
type contentTypeMap struct {
	defaults  map[string]string // lowercased extension -> content type
	overrides map[PackURI]string
}

func (m *contentTypeMap) lookup(partName PackURI) (string, error) {
	if ct, ok := m.overrides[partName]; ok {
		return ct, nil
	}
	if ct, ok := m.defaults[strings.ToLower(partName.Ext())]; ok {
		return ct, nil
	}
	return "", NewNotFoundError("content type for part", string(partName))
}

// ReadPackage reads the container at r and returns its stored-part and
// relationship records. Parts without a .rels file simply contribute no
// relationship records; a part without a declared content type is a
// corrupt container and fails the read.
func ReadPackage(r io.ReaderAt, size int64) (*PackageReader, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	ctMap, err := readContentTypes(zipReader)
	if err != nil {
		return nil, err
	}

	pr := &PackageReader{}
	for _, file := range zipReader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		name := file.Name
		switch {
		case name == "[Content_Types].xml":
			// already consumed
		case strings.HasSuffix(name, ".rels"):
			source, err := relsSourceURI(name)
			if err != nil {
				return nil, fmt.Errorf("failed to place relationships member: %w", err)
			}
			records, err := readRelationships(file, source)
			if err != nil {
				return nil, err
			}
			pr.Rels = append(pr.Rels, records...)
		default:
			partName := PackURI("/" + name)
			contentType, err := ctMap.lookup(partName)
			if err != nil {
				return nil, fmt.Errorf("part %s has no declared content type: %w", partName, err)
			}
			blob, err := readMember(file)
			if err != nil {
				return nil, err
			}
			pr.Parts = append(pr.Parts, StoredPart{
				PartName:    partName,
				ContentType: contentType,
				Blob:        blob,
			})
		}
	}

	logger.Debug("container read",
		"parts", len(pr.Parts), "relationships", len(pr.Rels))
	return pr, nil
}

// ReadPackageFile reads the container at path.
func ReadPackageFile(path string) (*PackageReader, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ReadPackage(bytes.NewReader(content), int64(len(content)))
}

func readContentTypes(zipReader *zip.Reader) (*contentTypeMap, error) {
	var ctFile *zip.File
	for _, file := range zipReader.File {
		if file.Name == "[Content_Types].xml" {
			ctFile = file
			break
		}
	}
	if ctFile == nil {
		return nil, fmt.Errorf("not a valid package: missing [Content_Types].xml")
	}

	content, err := readMember(ctFile)
	if err != nil {
		return nil, err
	}

	var types contentTypesXML
	if err := xml.Unmarshal(content, &types); err != nil {
		return nil, fmt.Errorf("failed to parse [Content_Types].xml: %w", err)
	}

	ctMap := &contentTypeMap{
		defaults:  make(map[string]string, len(types.Defaults)),
		overrides: make(map[PackURI]string, len(types.Overrides)),
	}
	for _, d := range types.Defaults {
		ctMap.defaults[strings.ToLower(d.Extension)] = d.ContentType
	}
	for _, o := range types.Overrides {
		ctMap.overrides[PackURI(o.PartName)] = o.ContentType
	}
	return ctMap, nil
}

func readRelationships(file *zip.File, source PackURI) ([]RelationshipRecord, error) {
	content, err := readMember(file)
	if err != nil {
		return nil, err
	}

	var rels relationshipsXML
	if err := xml.Unmarshal(content, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships of %s: %w", source, err)
	}

	records := make([]RelationshipRecord, 0, len(rels.Relationship))
	for _, rel := range rels.Relationship {
		record := RelationshipRecord{
			SourcePartName: source,
			RID:            rel.ID,
			RelType:        rel.Type,
			IsExternal:     rel.TargetMode == "External",
		}
		if record.IsExternal {
			record.Target = rel.Target
		} else {
			record.Target = string(resolveRelativeRef(source.BaseURI(), rel.Target))
		}
		records = append(records, record)
	}
	return records, nil
}

func readMember(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", file.Name, err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file.Name, err)
	}
	return content, nil
}
