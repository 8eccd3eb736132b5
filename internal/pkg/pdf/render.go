// Package pdf fills fixed-layout internship document templates. Each
// template is a single page carrying two identical regions (stacked for
// certificates, side by side for attendance sheets); field coordinates are
// expressed relative to a region and drawn once per region with that
// region's base offset.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
)

// A4 in points.
const (
	pageWidthPortrait  = 595.28
	pageHeightPortrait = 841.89
)

// field is one piece of text at a region-relative position.
type field struct {
	text   string
	x, y   float64
	size   float64
	style  string
	center bool
}

// overlay is a one-page document built from an imported template page.
type overlay struct {
	pdf *fpdf.Fpdf
	w   float64
	h   float64
}

// newOverlay starts a page in the given orientation ("P" or "L") with the
// template rendered underneath. Streams stay uncompressed so the output is
// inspectable.
func newOverlay(template []byte, orientation string) (*overlay, error) {
	doc := fpdf.New(orientation, "pt", "A4", "")
	doc.SetCompression(false)
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	doc.AddPage()

	w, h := doc.GetPageSize()
	if err := importTemplatePage(doc, template, w, h); err != nil {
		return nil, err
	}

	doc.SetTextColor(0, 0, 0)
	return &overlay{pdf: doc, w: w, h: h}, nil
}

// importTemplatePage places page 1 of the template PDF as the page
// background. gofpdi signals parse failures by panicking, so recover into an
// error here.
func importTemplatePage(doc *fpdf.Fpdf, template []byte, w, h float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("importing template page: %v", r)
		}
	}()

	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(template))
	tpl := importer.ImportPageFromStream(doc, &rs, 1, "/MediaBox")
	importer.UseImportedTemplate(doc, tpl, 0, 0, w, h)
	return nil
}

// drawFields writes one region's worth of fields, shifted by the region base
// offset. Empty values are skipped entirely: nothing is drawn and no error is
// raised. Centered fields anchor on x, shifting left by half the rendered
// string width.
func (o *overlay) drawFields(fields []field, dx, dy float64) {
	for _, f := range fields {
		if f.text == "" {
			continue
		}
		o.pdf.SetFont("Helvetica", f.style, f.size)
		x := f.x + dx
		if f.center {
			x -= o.pdf.GetStringWidth(f.text) / 2
		}
		o.pdf.Text(x, f.y+dy, f.text)
	}
}

// bytes serializes the filled document.
func (o *overlay) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := o.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}
	return buf.Bytes(), nil
}

// formatDate renders a date as dd/mm/yyyy regardless of locale.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// formatPeriod renders "start to end", or nothing when either date is unset.
func formatPeriod(start, end time.Time) string {
	if start.IsZero() || end.IsZero() {
		return ""
	}
	return formatDate(start) + " to " + formatDate(end)
}

// formatHours renders an hour count without trailing zeros (8, 7.5).
func formatHours(h float64) string {
	return trimFloat(h)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	if len(s) > 2 && s[len(s)-2:] == ".0" {
		return s[:len(s)-2]
	}
	return s
}
