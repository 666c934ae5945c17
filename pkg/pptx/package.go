package pptx

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"weak"
)

// Package is the root container of a presentation file: it owns the
// package-level relationship collection and orchestrates load and save.
// The part graph is derived by walking relationships from the root, never
// stored.
type Package struct {
	rels      *RelationshipCollection
	images    *ImageCollection
	coreProps *Lazy[*CoreProperties]
	pres      *Lazy[*Presentation]
}

// Process-wide registry of live packages. Entries are weak so the registry
// never keeps a package alive past its last external reference; dead
// entries are pruned on the next Instances call. It exists solely to
// support reverse part-to-package lookup, since parts hold no back
// reference to their package.
var (
	instancesMu  sync.Mutex
	instanceRefs []weak.Pointer[Package]
)

func newPackage() *Package {
	pkg := &Package{
		rels:   NewRelationshipCollection(PackageURI.BaseURI()),
		images: NewImageCollection(),
	}
	pkg.coreProps = NewLazy(pkg.loadCoreProps)
	pkg.pres = NewLazy(pkg.loadPresentation)

	instancesMu.Lock()
	instanceRefs = append(instanceRefs, weak.Make(pkg))
	instancesMu.Unlock()
	return pkg
}

// Instances returns every live Package in this process, pruning entries
// whose package has been collected.
func Instances() []*Package {
	instancesMu.Lock()
	defer instancesMu.Unlock()

	live := instanceRefs[:0]
	var pkgs []*Package
	for _, ref := range instanceRefs {
		if pkg := ref.Value(); pkg != nil {
			live = append(live, ref)
			pkgs = append(pkgs, pkg)
		}
	}
	instanceRefs = live
	return pkgs
}

// Containing returns the package whose part graph contains part. It fails
// with a NotFoundError when no live package does.
func Containing(part Part) (*Package, error) {
	for _, pkg := range Instances() {
		for _, candidate := range pkg.Parts() {
			if candidate == part {
				return pkg, nil
			}
		}
	}
	return nil, NewNotFoundError("package containing part", string(part.PartName()))
}

// Open loads the package at path, or the bundled default presentation
// template when path is empty. A structurally invalid container fails the
// whole call; no partially loaded package is ever returned.
func Open(path string) (*Package, error) {
	if path == "" {
		blob := defaultTemplate()
		pkg, err := OpenReader(bytes.NewReader(blob), int64(len(blob)))
		if err != nil {
			return nil, NewPackageError("open", "default template", err)
		}
		return pkg, nil
	}
	pr, err := ReadPackageFile(path)
	if err != nil {
		return nil, NewPackageError("open", path, err)
	}
	pkg, err := open(pr)
	if err != nil {
		return nil, NewPackageError("open", path, err)
	}
	return pkg, nil
}

// OpenReader loads a package from an in-memory or seekable container.
func OpenReader(r io.ReaderAt, size int64) (*Package, error) {
	pr, err := ReadPackage(r, size)
	if err != nil {
		return nil, NewPackageError("open", "", err)
	}
	return open(pr)
}

func open(pr *PackageReader) (*Package, error) {
	pkg := newPackage()
	if err := Unmarshal(pr, pkg, DefaultPartFactory()); err != nil {
		return nil, err
	}
	return pkg, nil
}

// Rels returns the package-level relationship collection.
func (pkg *Package) Rels() *RelationshipCollection { return pkg.rels }

// AfterUnmarshal gathers the package's image parts into its image
// collection once the full graph exists.
func (pkg *Package) AfterUnmarshal() error {
	pkg.images.Load(pkg.Parts())
	return nil
}

// Parts returns every part in the package, discovered by a depth-first
// walk of the relationship graph from the package root. The graph may be
// cyclic (slides refer back to their masters), so a visited set guarantees
// each part appears exactly once, in first-encounter order.
func (pkg *Package) Parts() []Part {
	var parts []Part
	visited := make(map[Part]bool)
	walkParts(pkg.rels, visited, &parts)
	return parts
}

func walkParts(rels *RelationshipCollection, visited map[Part]bool, parts *[]Part) {
	for _, rel := range rels.All() {
		if rel.IsExternal() {
			continue
		}
		part := rel.TargetPart()
		if visited[part] {
			continue
		}
		visited[part] = true
		*parts = append(*parts, part)
		walkParts(part.Rels(), visited, parts)
	}
}

// Save walks the live part graph and writes a fresh container to w: each
// visited part's current blob plus relationship tables rebuilt from every
// collection. A full rewrite, not an incremental diff.
func (pkg *Package) Save(w io.Writer) error {
	parts := pkg.Parts()

	stored := make([]StoredPart, 0, len(parts))
	records := marshalRelationships(PackageURI, pkg.rels)
	for _, part := range parts {
		blob, err := part.Blob()
		if err != nil {
			return NewPackageError("save", string(part.PartName()), err)
		}
		stored = append(stored, StoredPart{
			PartName:    part.PartName(),
			ContentType: part.ContentType(),
			Blob:        blob,
		})
		records = append(records, marshalRelationships(part.PartName(), part.Rels())...)
	}

	if err := WritePackage(w, stored, records); err != nil {
		return NewPackageError("save", "", err)
	}
	return nil
}

// SaveFile saves the package to path, truncating any existing file.
func (pkg *Package) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return NewPackageError("save", path, err)
	}
	if err := pkg.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// marshalRelationships flattens one collection back to records.
func marshalRelationships(source PackURI, rels *RelationshipCollection) []RelationshipRecord {
	records := make([]RelationshipRecord, 0, rels.Len())
	for _, rel := range rels.All() {
		record := RelationshipRecord{
			SourcePartName: source,
			RID:            rel.RID(),
			RelType:        rel.RelType(),
			IsExternal:     rel.IsExternal(),
		}
		if rel.IsExternal() {
			record.Target = rel.TargetRef()
		} else {
			record.Target = string(rel.TargetPart().PartName())
		}
		records = append(records, record)
	}
	return records
}

// Presentation returns the presentation part of this package, the target
// of the package's officeDocument relationship. Cached after first access.
func (pkg *Package) Presentation() (*Presentation, error) {
	return pkg.pres.Value()
}

func (pkg *Package) loadPresentation() (*Presentation, error) {
	part, err := pkg.rels.PartWithRelType(RTOfficeDocument)
	if err != nil {
		return nil, err
	}
	pres, ok := part.(*Presentation)
	if !ok {
		return nil, NewInvalidStateError(fmt.Sprintf(
			"officeDocument part %s is not a presentation", part.PartName(),
		))
	}
	return pres, nil
}

// CoreProperties returns the package's core document properties part,
// materializing a default one on first access if the package has none.
// Cached after first access.
func (pkg *Package) CoreProperties() (*CoreProperties, error) {
	return pkg.coreProps.Value()
}

func (pkg *Package) loadCoreProps() (*CoreProperties, error) {
	part, err := pkg.rels.PartWithRelType(RTCoreProperties)
	if err == nil {
		props, ok := part.(*CoreProperties)
		if !ok {
			return nil, NewInvalidStateError(fmt.Sprintf(
				"core-properties part %s has unexpected type", part.PartName(),
			))
		}
		return props, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}
	props := DefaultCoreProperties()
	pkg.rels.GetOrAdd(RTCoreProperties, props)
	return props, nil
}

// Images returns the package's image collection, populated after load and
// extended by AddImage.
func (pkg *Package) Images() *ImageCollection { return pkg.images }
