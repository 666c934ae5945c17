package pptx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// xmlDeclaration is written ahead of every XML member; standalone="yes" is
// required by PowerPoint.
const xmlDeclaration = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// defaultExtensionTypes are the content types implied by a member's
// extension when no Override row names the part explicitly.
var defaultExtensionTypes = map[string]string{
	"rels": "application/vnd.openxmlformats-package.relationships+xml",
	"xml":  "application/xml",
	"png":  CTPNG,
	"jpg":  CTJPEG,
	"jpeg": CTJPEG,
	"gif":  CTGIF,
	"bmp":  CTBMP,
	"tiff": CTTIFF,
}

// WritePackage writes a fresh container holding the given stored parts and
// relationship records: the content-types table, every part blob, and one
// .rels member per relationship source. This is a one-shot full rewrite.
func WritePackage(w io.Writer, parts []StoredPart, rels []RelationshipRecord) error {
	zw := zip.NewWriter(w)

	if err := writeContentTypes(zw, parts); err != nil {
		return err
	}

	// group relationship records by source, preserving record order
	relsBySource := make(map[PackURI][]RelationshipRecord)
	for _, record := range rels {
		relsBySource[record.SourcePartName] = append(relsBySource[record.SourcePartName], record)
	}

	if err := writeRelationships(zw, PackageURI, relsBySource[PackageURI]); err != nil {
		return err
	}

	for _, part := range parts {
		if err := writeMember(zw, part.PartName.MemberName(), part.Blob); err != nil {
			return err
		}
		if records := relsBySource[part.PartName]; len(records) > 0 {
			if err := writeRelationships(zw, part.PartName, records); err != nil {
				return err
			}
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize container: %w", err)
	}
	logger.Debug("container written",
		"parts", len(parts), "relationships", len(rels))
	return nil
}

// WritePackageFile writes the container to path, truncating any existing
// file.
func WritePackageFile(path string, parts []StoredPart, rels []RelationshipRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WritePackage(f, parts, rels); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeContentTypes(zw *zip.Writer, parts []StoredPart) error {
	types := contentTypesXML{Namespace: nsContentTypes}

	// Default rows for every extension whose implied type matches, an
	// Override row for every part it does not cover.
	usedDefaults := map[string]bool{"rels": true}
	for _, part := range parts {
		ext := strings.ToLower(part.PartName.Ext())
		if defaultExtensionTypes[ext] == part.ContentType {
			usedDefaults[ext] = true
			continue
		}
		types.Overrides = append(types.Overrides, contentTypeOverride{
			PartName:    string(part.PartName),
			ContentType: part.ContentType,
		})
	}

	extensions := make([]string, 0, len(usedDefaults))
	for ext := range usedDefaults {
		extensions = append(extensions, ext)
	}
	sort.Strings(extensions)
	for _, ext := range extensions {
		types.Defaults = append(types.Defaults, contentTypeDefault{
			Extension:   ext,
			ContentType: defaultExtensionTypes[ext],
		})
	}

	// compact XML, matching what Office producers emit
	output, err := xml.Marshal(&types)
	if err != nil {
		return fmt.Errorf("failed to marshal [Content_Types].xml: %w", err)
	}
	return writeMember(zw, "[Content_Types].xml", append([]byte(xmlDeclaration), output...))
}

func writeRelationships(zw *zip.Writer, source PackURI, records []RelationshipRecord) error {
	rels := relationshipsXML{Namespace: nsRelationships}
	for _, record := range records {
		rel := relationshipXML{
			ID:     record.RID,
			Type:   record.RelType,
			Target: record.Target,
		}
		if record.IsExternal {
			rel.TargetMode = "External"
		} else {
			rel.Target = PackURI(record.Target).RelativeRef(source.BaseURI())
		}
		rels.Relationship = append(rels.Relationship, rel)
	}

	output, err := xml.Marshal(&rels)
	if err != nil {
		return fmt.Errorf("failed to marshal relationships of %s: %w", source, err)
	}
	return writeMember(zw, source.RelsURI().MemberName(), append([]byte(xmlDeclaration), output...))
}

func writeMember(zw *zip.Writer, name string, content []byte) error {
	fw, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if _, err := fw.Write(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
