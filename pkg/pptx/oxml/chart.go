package oxml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// plotTags are the chart-group element names recognized inside plotArea.
var plotTags = map[string]bool{
	"barChart":      true,
	"bar3DChart":    true,
	"lineChart":     true,
	"pieChart":      true,
	"doughnutChart": true,
	"areaChart":     true,
	"radarChart":    true,
	"scatterChart":  true,
}

// ChartSpace is the element handle for a chart part (the c:chartSpace
// root). Only the plot structure is modelled.
type ChartSpace struct {
	Plots []*PlotElement
}

// PlotElement is one chart group inside the plot area, such as barChart or
// lineChart. DLbls is nil when the plot carries no data labels element.
type PlotElement struct {
	Tag   string
	DLbls *DLbls
}

// DLbls marks the presence of a data labels element on a plot.
type DLbls struct {
	ShowValue bool
}

// ParseChartSpace parses the blob of a chart part, collecting its plot
// elements in document order.
func ParseChartSpace(blob []byte) (*ChartSpace, error) {
	cs := &ChartSpace{}
	decoder := xml.NewDecoder(bytes.NewReader(blob))
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse chart element: %w", err)
		}
		start, ok := token.(xml.StartElement)
		if !ok || !plotTags[start.Name.Local] {
			continue
		}
		plot, err := parsePlot(decoder, start)
		if err != nil {
			return nil, err
		}
		cs.Plots = append(cs.Plots, plot)
	}
	return cs, nil
}

// parsePlot consumes one chart-group element, noting whether a dLbls child
// is present.
func parsePlot(decoder *xml.Decoder, start xml.StartElement) (*PlotElement, error) {
	plot := &PlotElement{Tag: start.Name.Local}
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s element: %w", start.Name.Local, err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			// dLbls only counts at plot level, not under a series
			if t.Name.Local == "dLbls" && depth == 1 {
				dLbls, err := parseDLbls(decoder, t)
				if err != nil {
					return nil, err
				}
				plot.DLbls = dLbls
				continue
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return plot, nil
}

func parseDLbls(decoder *xml.Decoder, start xml.StartElement) (*DLbls, error) {
	dLbls := &DLbls{}
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse dLbls element: %w", err)
		}
		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "showVal" {
				for _, attr := range t.Attr {
					if attr.Name.Local == "val" && (attr.Value == "1" || attr.Value == "true") {
						dLbls.ShowValue = true
					}
				}
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return dLbls, nil
}
