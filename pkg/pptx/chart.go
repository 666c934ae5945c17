package pptx

import (
	"github.com/benjaminschreck/go-pptx/pkg/pptx/oxml"
)

// Chart is one chart part. The plot structure is parsed for read access;
// the stored markup round-trips unchanged.
type Chart struct {
	BasePart
	element *oxml.ChartSpace
}

func loadChart(partName PackURI, contentType string, blob []byte) (Part, error) {
	element, err := oxml.ParseChartSpace(blob)
	if err != nil {
		return nil, err
	}
	return &Chart{
		BasePart: *NewBasePart(partName, contentType, blob),
		element:  element,
	}, nil
}

// Plots returns the chart's plot groups in document order. A chart may
// carry more than one plot, in which case they render as superimposed
// layers, such as a line plot on top of a bar chart.
func (c *Chart) Plots() []*Plot {
	plots := make([]*Plot, 0, len(c.element.Plots))
	for _, elm := range c.element.Plots {
		plots = append(plots, &Plot{element: elm})
	}
	return plots
}

// Plot is a distinct plot appearing in the plot area of a chart.
type Plot struct {
	element *oxml.PlotElement
}

// Tag returns the plot's chart-group element name, such as "barChart".
func (p *Plot) Tag() string { return p.element.Tag }

// HasDataLabels reports whether the plot carries a data labels element.
func (p *Plot) HasDataLabels() bool { return p.element.DLbls != nil }

// DataLabels returns the data labels of this plot. It fails with an
// InvalidStateError when the plot has no data labels element; callers must
// enable data labels before asking for them.
func (p *Plot) DataLabels() (*DataLabels, error) {
	if p.element.DLbls == nil {
		return nil, NewInvalidStateError("plot has no data labels element")
	}
	return &DataLabels{element: p.element.DLbls}, nil
}

// DataLabels wraps the collection of data labels associated with a plot.
type DataLabels struct {
	element *oxml.DLbls
}

// ShowValue reports whether data labels display the point value.
func (d *DataLabels) ShowValue() bool { return d.element.ShowValue }
