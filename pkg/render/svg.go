package render

import (
	"bytes"
	"fmt"
	"image/color"
)

// SVG is the vector canvas backend. Elements are appended to a buffer in
// draw order, which matches SVG's painter model, so the compositor's
// ordering carries over without any z-index bookkeeping.
type SVG struct {
	buf           bytes.Buffer
	width, height float64
}

// NewSVG allocates a vector canvas of the given size.
func NewSVG(width, height float64) *SVG {
	s := &SVG{width: width, height: height}
	fmt.Fprintf(&s.buf, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(&s.buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(width), num(height), num(width), num(height))
	return s
}

// Bytes closes the document and returns the full SVG markup.
func (s *SVG) Bytes() []byte {
	out := make([]byte, s.buf.Len(), s.buf.Len()+len("</svg>\n"))
	copy(out, s.buf.Bytes())
	return append(out, "</svg>\n"...)
}

// Clear implements [Canvas].
func (s *SVG) Clear(c color.Color) {
	fmt.Fprintf(&s.buf, `<rect x="0" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
		num(s.width), num(s.height), hexColor(c))
}

// Line implements [Canvas].
func (s *SVG) Line(x1, y1, x2, y2, width float64, c color.Color) {
	fmt.Fprintf(&s.buf,
		`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s"/>`+"\n",
		num(x1), num(y1), num(x2), num(y2), hexColor(c), num(width))
}

// FillCircle implements [Canvas].
func (s *SVG) FillCircle(x, y, r float64, c color.Color) {
	fmt.Fprintf(&s.buf, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`+"\n",
		num(x), num(y), num(r), hexColor(c))
}

// StrokeCircle implements [Canvas].
func (s *SVG) StrokeCircle(x, y, r, width float64, c color.Color) {
	fmt.Fprintf(&s.buf,
		`<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
		num(x), num(y), num(r), hexColor(c), num(width))
}

// FillRect implements [Canvas].
func (s *SVG) FillRect(x, y, w, h float64, c color.Color) {
	fmt.Fprintf(&s.buf, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
		num(x), num(y), num(w), num(h), hexColor(c))
}

// Text implements [Canvas].
func (s *SVG) Text(x, y float64, text string, size float64, c color.Color) {
	fmt.Fprintf(&s.buf,
		`<text x="%s" y="%s" font-family="Helvetica, Arial, sans-serif" font-size="%s" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		num(x), num(y), num(size), hexColor(c), escapeText(text))
}

// num formats a coordinate compactly, trimming trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}

// hexColor formats a color as #rrggbb for SVG attributes.
func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// escapeText escapes the XML special characters that can occur in labels.
func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
