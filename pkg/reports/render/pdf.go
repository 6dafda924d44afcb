package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Bhautik-2004/FMS-sub001/pkg/reports/format"
)

// The corpus of PDF readers this application targets all accept minimal
// PDF 1.4, so documents are written directly: catalog, page tree, two Type1
// fonts with WinAnsi encoding, one content stream per page, xref, trailer.
const (
	pdfLetterW = 612.0
	pdfLetterH = 792.0
	pdfMargin  = 48.0

	fontRegular = "F1"
	fontBold    = "F2"

	pdfRowH    = 16.0
	pdfHeaderH = 18.0
	pdfCellPad = 4.0
)

// Align controls horizontal cell alignment in PDF tables.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// TableOptions configures a table written by AddTable.
type TableOptions struct {
	// Aligns sets per-column alignment; missing entries default to left.
	Aligns []Align
	// FooterRows are rendered after the body with the footer fill and bold
	// text (totals rows).
	FooterRows [][]string
}

// TextOptions configures a free-text line.
type TextOptions struct {
	Bold bool
	Size float64
}

// PDFOptions configures a new document.
type PDFOptions struct {
	Title     string
	Subtitle  string
	Landscape bool
	// OmitTimestamp suppresses the "Generated:" header line.
	OmitTimestamp bool
	// GeneratedAt stamps the header; zero means now.
	GeneratedAt time.Time
	Style       Style
}

// PDFBuilder accumulates a paginated document. It maintains a vertical layout
// cursor that advances after every write; tables insert their own page breaks
// and repeat the header row. A builder is consumed once by Bytes and then
// discarded.
type PDFBuilder struct {
	style  Style
	pageW  float64
	pageH  float64
	y      float64
	pages  []*bytes.Buffer
	cur    *bytes.Buffer
	nCols  int
	colW   []float64
	closed bool
}

// NewPDFBuilder creates a document and writes the header block immediately.
func NewPDFBuilder(opts PDFOptions) *PDFBuilder {
	w, h := pdfLetterW, pdfLetterH
	if opts.Landscape {
		w, h = h, w
	}
	st := opts.Style
	if st.TitleSize == 0 {
		st = DefaultStyle()
	}
	b := &PDFBuilder{style: st, pageW: w, pageH: h}
	b.newPage()

	b.writeLine(opts.Title, fontBold, st.TitleSize, st.RegularText)
	if opts.Subtitle != "" {
		b.writeLine(opts.Subtitle, fontRegular, st.BodySize+1, st.MutedText)
	}
	if !opts.OmitTimestamp {
		at := opts.GeneratedAt
		if at.IsZero() {
			at = time.Now()
		}
		b.writeLine("Generated: "+format.Timestamp(at), fontRegular, 8, st.MutedText)
	}
	b.y -= 8
	return b
}

func (b *PDFBuilder) newPage() {
	b.cur = &bytes.Buffer{}
	b.pages = append(b.pages, b.cur)
	b.y = b.pageH - pdfMargin
}

// AddPageBreak starts a new page and resets the cursor to the top margin.
func (b *PDFBuilder) AddPageBreak() {
	b.newPage()
}

// ensure advances to a new page when less than h points remain.
func (b *PDFBuilder) ensure(h float64) {
	if b.y-h < pdfMargin {
		b.newPage()
	}
}

// AddSection writes a sub-heading and advances the cursor.
func (b *PDFBuilder) AddSection(title string) {
	b.ensure(30)
	b.y -= 6
	b.writeLine(title, fontBold, 12, b.style.RegularText)
	b.y -= 2
}

// AddText writes one line of free text.
func (b *PDFBuilder) AddText(text string, opts TextOptions) {
	size := opts.Size
	if size == 0 {
		size = b.style.BodySize
	}
	font := fontRegular
	if opts.Bold {
		font = fontBold
	}
	b.ensure(size + 4)
	b.writeLine(text, font, size, b.style.RegularText)
}

// AddTable renders a styled table: colored header row, body rows, optional
// colored footer rows. Columns share the usable width evenly. The cursor ends
// just below the table; page breaks repeat the header row.
func (b *PDFBuilder) AddTable(headers []string, rows [][]string, opts TableOptions) {
	if len(headers) == 0 {
		return
	}
	usable := b.pageW - 2*pdfMargin
	colW := usable / float64(len(headers))

	align := func(i int) Align {
		if i < len(opts.Aligns) {
			return opts.Aligns[i]
		}
		return AlignLeft
	}

	writeHeader := func() {
		b.ensure(pdfHeaderH + pdfRowH)
		b.fillRect(pdfMargin, b.y-pdfHeaderH, usable, pdfHeaderH, b.style.HeaderFill)
		for i, h := range headers {
			x := pdfMargin + float64(i)*colW
			b.cellText(h, x, b.y-pdfHeaderH+5, colW, fontBold, b.style.TableSize, b.style.HeaderText, align(i))
		}
		b.y -= pdfHeaderH
	}

	writeHeader()
	for _, row := range rows {
		if b.y-pdfRowH < pdfMargin {
			b.newPage()
			writeHeader()
		}
		for i := 0; i < len(headers); i++ {
			var v string
			if i < len(row) {
				v = row[i]
			}
			x := pdfMargin + float64(i)*colW
			b.cellText(v, x, b.y-pdfRowH+5, colW, fontRegular, b.style.TableSize, b.style.RegularText, align(i))
		}
		b.y -= pdfRowH
	}
	for _, row := range opts.FooterRows {
		if b.y-pdfRowH < pdfMargin {
			b.newPage()
			writeHeader()
		}
		b.fillRect(pdfMargin, b.y-pdfRowH, usable, pdfRowH, b.style.FooterFill)
		for i := 0; i < len(headers); i++ {
			var v string
			if i < len(row) {
				v = row[i]
			}
			x := pdfMargin + float64(i)*colW
			b.cellText(v, x, b.y-pdfRowH+5, colW, fontBold, b.style.TableSize, b.style.RegularText, align(i))
		}
		b.y -= pdfRowH
	}
	b.y -= 6
}

// writeLine draws text at the cursor and advances it.
func (b *PDFBuilder) writeLine(text string, font string, size float64, color RGB) {
	leading := size + 4
	b.ensure(leading)
	b.drawText(text, pdfMargin, b.y-size, font, size, color)
	b.y -= leading
}

// cellText draws a single table cell, truncating to the column width.
func (b *PDFBuilder) cellText(text string, x, y, colW float64, font string, size float64, color RGB, align Align) {
	maxChars := int((colW - 2*pdfCellPad) / (size * 0.5))
	if maxChars < 1 {
		maxChars = 1
	}
	if utf8.RuneCountInString(text) > maxChars {
		rs := []rune(text)
		if maxChars > 3 {
			text = string(rs[:maxChars-3]) + "..."
		} else {
			text = string(rs[:maxChars])
		}
	}
	tx := x + pdfCellPad
	if align == AlignRight {
		est := float64(utf8.RuneCountInString(text)) * size * 0.5
		tx = x + colW - pdfCellPad - est
		if tx < x+pdfCellPad {
			tx = x + pdfCellPad
		}
	}
	b.drawText(text, tx, y, font, size, color)
}

func (b *PDFBuilder) fillRect(x, y, w, h float64, c RGB) {
	fmt.Fprintf(b.cur, "%.3f %.3f %.3f rg\n", c.R, c.G, c.B)
	fmt.Fprintf(b.cur, "%.2f %.2f %.2f %.2f re f\n", x, y, w, h)
}

func (b *PDFBuilder) drawText(text string, x, y float64, font string, size float64, c RGB) {
	fmt.Fprintf(b.cur, "BT\n/%s %.1f Tf\n%.3f %.3f %.3f rg\n1 0 0 1 %.2f %.2f Tm\n(%s) Tj\nET\n", font, size, c.R, c.G, c.B, x, y, encodePDFText(text))
}

// encodePDFText maps text to the WinAnsi byte repertoire, escaping PDF string
// delimiters. Runes outside the repertoire become '?': callers that need a
// drawable rendition (currency symbols) substitute before reaching here.
func encodePDFText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		by, ok := format.WinAnsiByte(r)
		if !ok {
			b.WriteByte('?')
			continue
		}
		switch by {
		case '\\':
			b.WriteString(`\\`)
		case '(':
			b.WriteString(`\(`)
		case ')':
			b.WriteString(`\)`)
		default:
			b.WriteByte(by)
		}
	}
	return b.String()
}

// Bytes finalizes and serializes the document. The builder must not be
// written to afterwards.
func (b *PDFBuilder) Bytes() ([]byte, error) {
	if b.closed {
		return nil, errors.New("pdf: builder already consumed")
	}
	b.closed = true
	if len(b.pages) == 0 {
		return nil, errors.New("pdf: no pages")
	}

	// Page-number footers need the final page count.
	for i, pg := range b.pages {
		fmt.Fprintf(pg, "BT\n/%s 8 Tf\n%.3f %.3f %.3f rg\n1 0 0 1 %.2f %.2f Tm\n(%s) Tj\nET\n",
			fontRegular, b.style.MutedText.R, b.style.MutedText.G, b.style.MutedText.B,
			pdfMargin, 30.0, encodePDFText(fmt.Sprintf("Page %d of %d", i+1, len(b.pages))))
	}

	const (
		catalogID   = 1
		pagesID     = 2
		regularID   = 3
		boldID      = 4
		firstPageID = 5
	)
	objCount := 4 + len(b.pages)*2
	pageIDs := make([]int, len(b.pages))
	contentIDs := make([]int, len(b.pages))
	for i := range b.pages {
		pageIDs[i] = firstPageID + i*2
		contentIDs[i] = pageIDs[i] + 1
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	buf.Write([]byte{'%', 0xE2, 0xE3, 0xCF, 0xD3, '\n'})

	offsets := make([]int, objCount+1)
	writeObj := func(id int, body string) {
		offsets[id] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", id, body)
	}
	writeStream := func(id int, stream []byte) {
		offsets[id] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n<< /Length %d >>\nstream\n", id, len(stream))
		buf.Write(stream)
		buf.WriteString("endstream\nendobj\n")
	}

	writeObj(regularID, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")
	writeObj(boldID, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold /Encoding /WinAnsiEncoding >>")

	for i, pg := range b.pages {
		writeStream(contentIDs[i], pg.Bytes())
		writeObj(pageIDs[i], fmt.Sprintf(
			"<< /Type /Page /Parent %d 0 R /MediaBox [0 0 %.0f %.0f] /Resources << /Font << /%s %d 0 R /%s %d 0 R >> >> /Contents %d 0 R >>",
			pagesID, b.pageW, b.pageH, fontRegular, regularID, fontBold, boldID, contentIDs[i]))
	}

	kids := make([]string, len(pageIDs))
	for i, id := range pageIDs {
		kids[i] = fmt.Sprintf("%d 0 R", id)
	}
	writeObj(pagesID, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pageIDs)))
	writeObj(catalogID, fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R >>", pagesID))

	startXref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", objCount+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= objCount; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", objCount+1, catalogID, startXref)

	return buf.Bytes(), nil
}
