// Package report renders a consultation record as a one-page PDF.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/signintech/gopdf"

	"github.com/nens2012/life-aid-nexus/internal/consultation"
)

const (
	fontFamily = "DejaVu"
	textWidth  = 500
	pageBottom = 780
)

// DefaultFontPaths are tried in order after any configured path.
var DefaultFontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

var ErrNoFont = errors.New("no usable font found")

type Renderer struct {
	fontPaths []string
}

// NewRenderer tries fontPath first when set.
func NewRenderer(fontPath string) *Renderer {
	paths := make([]string, 0, len(DefaultFontPaths)+1)
	if fontPath != "" {
		paths = append(paths, fontPath)
	}
	return &Renderer{fontPaths: append(paths, DefaultFontPaths...)}
}

// Render returns the PDF bytes for rec.
func (r *Renderer) Render(rec *consultation.Record) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range r.fontPaths {
		if err := pdf.AddTTFFont(fontFamily, path); err != nil {
			fontErr = err
			continue
		}
		fontLoaded = true
		break
	}
	if !fontLoaded {
		return nil, fmt.Errorf("%w (last error: %v)", ErrNoFont, fontErr)
	}

	w := &writer{pdf: &pdf}
	w.font(20)
	w.line("Wellness Consultation Report")
	pdf.Br(30)

	w.font(12)
	w.line(fmt.Sprintf("Date: %s", rec.CreatedAt.Format("02.01.2006 15:04 MST")))
	w.line(fmt.Sprintf("Session: %s", rec.SessionID))
	w.line(fmt.Sprintf("Language: %s", rec.Language))
	w.line(fmt.Sprintf("Safety level: %s", strings.ToUpper(rec.SafetyLevel.String())))
	pdf.Br(10)

	w.section("Possible conditions", rec.Conditions)
	w.section("Advice", rec.Advice)
	if rec.Summary != "" {
		w.section("Summary", []string{rec.Summary})
	}

	w.font(9)
	w.paragraph(rec.Disclaimer)

	if w.err != nil {
		return nil, w.err
	}
	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// writer keeps the first error so layout code stays linear.
type writer struct {
	pdf *gopdf.GoPdf
	err error
}

func (w *writer) font(size int) {
	if w.err == nil {
		w.err = w.pdf.SetFont(fontFamily, "", size)
	}
}

func (w *writer) line(s string) {
	if w.err != nil {
		return
	}
	if w.pdf.GetY() > pageBottom {
		w.pdf.AddPage()
	}
	w.err = w.pdf.Cell(nil, s)
	w.pdf.Br(15)
}

func (w *writer) paragraph(s string) {
	if w.err != nil || s == "" {
		return
	}
	lines, err := w.pdf.SplitText(s, textWidth)
	if err != nil {
		w.err = err
		return
	}
	for _, l := range lines {
		w.line(l)
	}
}

func (w *writer) section(title string, items []string) {
	w.font(14)
	w.line(title + ":")
	w.font(11)
	if len(items) == 0 {
		w.line("- none")
	}
	for _, item := range items {
		w.paragraph("- " + item)
	}
	if w.err == nil {
		w.pdf.Br(10)
	}
}
