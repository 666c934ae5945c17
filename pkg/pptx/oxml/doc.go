// Package oxml provides XML structure definitions for the parts of a
// presentation package.
//
// PPTX files are ZIP archives of XML parts. This package holds the element
// handles the structured parts of the object model parse their blobs into
// and serialize back out of on save:
//
//   - presentation.go: the presentation part's root element with its slide
//     master and slide id lists
//   - coreprops.go: the Dublin Core document properties element
//   - chart.go: chart plot elements and their optional data labels
//
// Unmarshalling matches elements by local name so any namespace prefix the
// producer chose is accepted; marshalling writes the conventional prefixes
// (p:, a:, r:, cp:, dc:, dcterms:) that Office itself emits. Root element
// attributes are preserved across the round trip so namespace declarations
// survive.
//
// This package is used internally by the pptx package. Most users interact
// with these types through part accessors rather than directly.
package oxml
