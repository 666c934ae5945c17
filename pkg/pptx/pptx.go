// Package pptx provides an object model over OOXML presentation packages
// (.pptx files): a container of interrelated parts (presentation, slides,
// slide masters, images, core properties) connected by typed
// relationships, lazily unmarshalled from the container and re-marshalled
// on save.
//
// Basic Usage:
//
//	// Open a presentation package (or pptx.New() for an empty one)
//	pkg, err := pptx.Open("deck.pptx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Walk the object model
//	pres, err := pkg.Presentation()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	masters, _ := pres.SlideMasters()
//	fmt.Printf("%d slide masters\n", len(masters))
//
//	// Mutate and save
//	props, _ := pkg.CoreProperties()
//	props.SetTitle("Quarterly Review")
//	if err := pkg.SaveFile("out.pptx"); err != nil {
//	    log.Fatal(err)
//	}
//
// The part graph is derived by walking relationships from the package
// root; it may contain cycles (layouts refer back to their masters), and
// every traversal visits each part exactly once. Save is a one-shot full
// rewrite of the container, never an incremental diff.
//
// The object model is single-threaded: a Package and its parts must not
// be mutated from more than one goroutine at a time.
package pptx

// New returns a Package loaded from the bundled baseline empty
// presentation, the starting point for building a deck from scratch.
func New() (*Package, error) {
	return Open("")
}
