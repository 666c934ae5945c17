package pptx

import (
	"fmt"
	"path"
	"strings"
)

// PackURI is the pack-relative identifier of a part, always starting with
// a slash, e.g. "/ppt/slides/slide1.xml". The package root itself is
// identified by PackageURI.
type PackURI string

// PackageURI identifies the package root, the owner of the package-level
// relationship collection stored at "_rels/.rels".
const PackageURI = PackURI("/")

// NewPackURI validates s as a partname and returns it as a PackURI.
func NewPackURI(s string) (PackURI, error) {
	if !strings.HasPrefix(s, "/") {
		return "", fmt.Errorf("partname must begin with a slash: %q", s)
	}
	return PackURI(path.Clean(s)), nil
}

// BaseURI returns the directory portion of the partname, "/" for top-level
// parts and for the package root itself.
func (u PackURI) BaseURI() string {
	if u == PackageURI {
		return "/"
	}
	return path.Dir(string(u))
}

// Filename returns the last path segment of the partname, empty for the
// package root.
func (u PackURI) Filename() string {
	if u == PackageURI {
		return ""
	}
	return path.Base(string(u))
}

// Ext returns the partname's extension without the leading dot.
func (u PackURI) Ext() string {
	return strings.TrimPrefix(path.Ext(string(u)), ".")
}

// RelsURI returns the partname of the .rels file holding this part's
// outgoing relationships, e.g. "/ppt/_rels/presentation.xml.rels". The
// package root maps to "/_rels/.rels".
func (u PackURI) RelsURI() PackURI {
	if u == PackageURI {
		return PackURI("/_rels/.rels")
	}
	return PackURI(path.Join(u.BaseURI(), "_rels", u.Filename()+".rels"))
}

// MemberName returns the zip member name for this part, the partname
// without its leading slash.
func (u PackURI) MemberName() string {
	return strings.TrimPrefix(string(u), "/")
}

// RelativeRef returns this partname expressed relative to baseURI, the
// form relationship targets take inside a .rels file.
func (u PackURI) RelativeRef(baseURI string) string {
	if baseURI == "/" {
		return u.MemberName()
	}
	baseSegs := strings.Split(strings.Trim(baseURI, "/"), "/")
	uriSegs := strings.Split(u.MemberName(), "/")

	// drop the shared leading segments
	common := 0
	for common < len(baseSegs) && common < len(uriSegs)-1 && baseSegs[common] == uriSegs[common] {
		common++
	}

	var segs []string
	for i := common; i < len(baseSegs); i++ {
		segs = append(segs, "..")
	}
	segs = append(segs, uriSegs[common:]...)
	return strings.Join(segs, "/")
}

// resolveRelativeRef resolves a relationship target ref found in a .rels
// file against the base URI of the source part, yielding the absolute
// partname of the target. A ref may itself be absolute, in which case the
// base URI does not participate.
func resolveRelativeRef(baseURI, relativeRef string) PackURI {
	if strings.HasPrefix(relativeRef, "/") {
		return PackURI(path.Clean(relativeRef))
	}
	return PackURI(path.Clean(path.Join(baseURI, relativeRef)))
}

// relsSourceURI maps a .rels member name back to the partname whose
// relationships it stores; "_rels/.rels" maps to the package root.
func relsSourceURI(relsMemberName string) (PackURI, error) {
	if relsMemberName == "_rels/.rels" {
		return PackageURI, nil
	}
	dir, file := path.Split(relsMemberName)
	dir = strings.TrimSuffix(dir, "/")
	if !strings.HasSuffix(dir, "_rels") || !strings.HasSuffix(file, ".rels") {
		return "", fmt.Errorf("not a relationships member name: %q", relsMemberName)
	}
	parent := strings.TrimSuffix(dir, "_rels")
	source := path.Join("/", parent, strings.TrimSuffix(file, ".rels"))
	return PackURI(source), nil
}
