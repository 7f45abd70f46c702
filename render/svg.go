package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// CoordinateError reports a canvas coordinate that is NaN or infinite, usually a finite value
// that overflowed when scaled.
type CoordinateError struct {
	Attr  string
	Value float64
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("svg: %s coordinate %v is not finite", e.Attr, e.Value)
}

func finite(name string, fs ...float64) error {
	for _, f := range fs {
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return &CoordinateError{Attr: name, Value: f}
		}
	}
	return nil
}

// check rejects the diagram if any coordinate would be written as NaN or Inf.
func (d *Diagram) check(box Rect) error {
	if err := finite("viewBox", box.MinX, box.MinY, box.Width(), box.Height()); err != nil {
		return err
	}
	for _, p := range d.Primitives {
		var err error
		switch p := p.(type) {
		case *Line:
			err = finite("line", p.X1, p.Y1, p.X2, p.Y2)
		case *Circle:
			err = finite("circle", p.Cx, p.Cy, p.R)
		case *Text:
			err = finite("text", p.X, p.Y, p.Size)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func attr(name, value string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: name}, Value: value}
}

func fattr(name string, f float64) xml.Attr {
	return attr(name, fmtcoord(f))
}

func fmtcoord(f float64) string {
	if f == 0 {
		// no "-0"
		f = 0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WriteSVG writes the diagram as a single SVG document. The viewBox is the bounding box of the
// primitives padded by the diagram's margin. Coordinates are written exactly as computed; if
// any is not finite a *CoordinateError is returned and nothing is written.
func (d *Diagram) WriteSVG(w io.Writer) error {
	box, ok := d.Bounds()
	if !ok {
		box = Rect{}
	}
	box = box.Pad(d.Margin)
	if err := d.check(box); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	enc := xml.NewEncoder(bw)
	enc.Indent("", "  ")

	viewBox := strings.Join([]string{
		fmtcoord(box.MinX), fmtcoord(box.MinY), fmtcoord(box.Width()), fmtcoord(box.Height()),
	}, " ")
	svg := xml.StartElement{
		Name: xml.Name{Local: "svg"},
		Attr: []xml.Attr{
			attr("xmlns", svgNamespace),
			attr("viewBox", viewBox),
			fattr("width", box.Width()),
			fattr("height", box.Height()),
		},
	}
	group := xml.StartElement{
		Name: xml.Name{Local: "g"},
		Attr: []xml.Attr{
			attr("fill", "none"),
			attr("stroke", "black"),
			attr("stroke-width", "1"),
		},
	}

	if err := enc.EncodeToken(svg); err != nil {
		return err
	}
	if err := enc.EncodeToken(group); err != nil {
		return err
	}
	for _, p := range d.Primitives {
		if err := encodePrimitive(enc, p); err != nil {
			return err
		}
	}
	if err := enc.EncodeToken(group.End()); err != nil {
		return err
	}
	if err := enc.EncodeToken(svg.End()); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	return bw.Flush()
}

func encodePrimitive(enc *xml.Encoder, p Primitive) error {
	var (
		start xml.StartElement
		body  string
	)
	switch p := p.(type) {
	case *Line:
		start.Name.Local = "line"
		start.Attr = []xml.Attr{fattr("x1", p.X1), fattr("y1", p.Y1), fattr("x2", p.X2), fattr("y2", p.Y2)}
	case *Circle:
		start.Name.Local = "circle"
		start.Attr = []xml.Attr{fattr("cx", p.Cx), fattr("cy", p.Cy), fattr("r", p.R)}
	case *Text:
		start.Name.Local = "text"
		start.Attr = []xml.Attr{
			fattr("x", p.X), fattr("y", p.Y), fattr("font-size", p.Size),
			attr("fill", "black"), attr("stroke", "none"),
		}
		body = p.Body
	}

	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if body != "" {
		if err := enc.EncodeToken(xml.CharData(body)); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
