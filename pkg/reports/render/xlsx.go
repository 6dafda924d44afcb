package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	xlsxMaxCellChars = 32767
	xlsxMaxColWidth  = 50
	xlsxMinColWidth  = 8
)

const (
	cellStyleDefault = 0
	cellStyleBold    = 1
)

// XLSXBuilder accumulates one or more named sheets of cell rows and
// serializes them as a minimal OOXML workbook. Zip entry timestamps are fixed
// so identical inputs produce byte-identical output.
type XLSXBuilder struct {
	sheets    []*xlsxSheet
	nameCount map[string]int
	createdAt time.Time
}

type xlsxSheet struct {
	name string
	rows [][]xlsxCell
}

type xlsxCell struct {
	// typ "s" = inline string, "n" = number
	typ   string
	style int
	val   string
}

// NewXLSXBuilder creates a workbook with an initial sheet. createdAt stamps
// the document properties; the zero time selects a fixed stamp so output
// stays deterministic.
func NewXLSXBuilder(sheetName string, createdAt time.Time) *XLSXBuilder {
	b := &XLSXBuilder{
		nameCount: make(map[string]int),
		createdAt: createdAt,
	}
	b.AddSheet(sheetName)
	return b
}

// AddSheet creates a new sheet and makes it current. Names are sanitized to
// Excel's rules and deduplicated.
func (b *XLSXBuilder) AddSheet(name string) {
	base := sanitizeSheetName(name)
	if base == "" {
		base = "Sheet"
	}
	n := b.nameCount[base]
	b.nameCount[base] = n + 1
	final := base
	if n > 0 {
		suffix := fmt.Sprintf("_%d", n+1)
		final = truncateRunes(base, 31-utf8.RuneCountInString(suffix)) + suffix
	}
	b.sheets = append(b.sheets, &xlsxSheet{name: final})
}

func (b *XLSXBuilder) current() *xlsxSheet {
	return b.sheets[len(b.sheets)-1]
}

// AddRow appends one row of values to the current sheet.
func (b *XLSXBuilder) AddRow(values ...any) {
	b.current().rows = append(b.current().rows, cellsFromValues(values, cellStyleDefault))
}

// AddHeaderRow appends a bold row.
func (b *XLSXBuilder) AddHeaderRow(values ...any) {
	b.current().rows = append(b.current().rows, cellsFromValues(values, cellStyleBold))
}

// AddEmptyRow appends a spacer row.
func (b *XLSXBuilder) AddEmptyRow() {
	b.current().rows = append(b.current().rows, []xlsxCell{{typ: "s", val: ""}})
}

// AddDataRows appends a batch of rows.
func (b *XLSXBuilder) AddDataRows(rows [][]any) {
	for _, row := range rows {
		b.AddRow(row...)
	}
}

func cellsFromValues(values []any, style int) []xlsxCell {
	if len(values) == 0 {
		return []xlsxCell{{typ: "s", style: style, val: ""}}
	}
	out := make([]xlsxCell, 0, len(values))
	for _, v := range values {
		out = append(out, cellFromAny(v, style))
	}
	return out
}

func cellFromAny(v any, style int) xlsxCell {
	switch t := v.(type) {
	case nil:
		return xlsxCell{typ: "s", style: style, val: ""}
	case string:
		return xlsxCell{typ: "s", style: style, val: capRunes(t, xlsxMaxCellChars)}
	case int:
		return xlsxCell{typ: "n", style: style, val: strconv.Itoa(t)}
	case int64:
		return xlsxCell{typ: "n", style: style, val: strconv.FormatInt(t, 10)}
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return xlsxCell{typ: "s", style: style, val: ""}
		}
		return xlsxCell{typ: "n", style: style, val: strconv.FormatFloat(t, 'g', -1, 64)}
	case decimal.Decimal:
		return xlsxCell{typ: "n", style: style, val: t.String()}
	case bool:
		if t {
			return xlsxCell{typ: "s", style: style, val: "true"}
		}
		return xlsxCell{typ: "s", style: style, val: "false"}
	default:
		return xlsxCell{typ: "s", style: style, val: capRunes(fmt.Sprintf("%v", t), xlsxMaxCellChars)}
	}
}

// Bytes serializes the workbook.
func (b *XLSXBuilder) Bytes() ([]byte, error) {
	if len(b.sheets) == 0 {
		return nil, errors.New("xlsx: no sheets")
	}

	// Fixed timestamp keeps zip output stable across calls.
	zipTime := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	created := b.createdAt
	if created.IsZero() {
		created = zipTime
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	writePart := func(name string, content []byte) error {
		h := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: zipTime}
		w, err := zw.CreateHeader(h)
		if err != nil {
			return err
		}
		_, err = w.Write(content)
		return err
	}

	type part struct {
		name    string
		content []byte
	}
	parts := []part{
		{"[Content_Types].xml", b.contentTypesXML()},
		{"_rels/.rels", rootRelsXML()},
		{"docProps/core.xml", corePropsXML(created)},
		{"docProps/app.xml", b.appPropsXML()},
		{"xl/workbook.xml", b.workbookXML()},
		{"xl/_rels/workbook.xml.rels", b.workbookRelsXML()},
		{"xl/styles.xml", stylesXML()},
	}
	for i, sh := range b.sheets {
		parts = append(parts, part{fmt.Sprintf("xl/worksheets/sheet%d.xml", i+1), sheetXML(sh)})
	}

	for _, p := range parts {
		if err := writePart(p.name, p.content); err != nil {
			_ = zw.Close()
			return nil, fmt.Errorf("xlsx part %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("xlsx close: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *XLSXBuilder) contentTypesXML() []byte {
	var w bytes.Buffer
	w.WriteString(xmlHeader)
	w.WriteString(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` + "\n")
	w.WriteString(`  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` + "\n")
	w.WriteString(`  <Default Extension="xml" ContentType="application/xml"/>` + "\n")
	w.WriteString(`  <Override PartName="/xl/workbook.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"/>` + "\n")
	w.WriteString(`  <Override PartName="/xl/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"/>` + "\n")
	w.WriteString(`  <Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` + "\n")
	w.WriteString(`  <Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` + "\n")
	for i := range b.sheets {
		fmt.Fprintf(&w, `  <Override PartName="/xl/worksheets/sheet%d.xml" ContentType="application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"/>`+"\n", i+1)
	}
	w.WriteString(`</Types>` + "\n")
	return w.Bytes()
}

func rootRelsXML() []byte {
	var w bytes.Buffer
	w.WriteString(xmlHeader)
	w.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` + "\n")
	w.WriteString(`  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="xl/workbook.xml"/>` + "\n")
	w.WriteString(`  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` + "\n")
	w.WriteString(`  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` + "\n")
	w.WriteString(`</Relationships>` + "\n")
	return w.Bytes()
}

func corePropsXML(created time.Time) []byte {
	ts := created.UTC().Format(time.RFC3339)
	var w bytes.Buffer
	w.WriteString(xmlHeader)
	w.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` + "\n")
	w.WriteString("  <dc:creator>FMS Reports</dc:creator>\n")
	w.WriteString("  <cp:lastModifiedBy>FMS Reports</cp:lastModifiedBy>\n")
	w.WriteString(`  <dcterms:created xsi:type="dcterms:W3CDTF">` + xmlEscape(ts) + `</dcterms:created>` + "\n")
	w.WriteString(`  <dcterms:modified xsi:type="dcterms:W3CDTF">` + xmlEscape(ts) + `</dcterms:modified>` + "\n")
	w.WriteString(`</cp:coreProperties>` + "\n")
	return w.Bytes()
}

func (b *XLSXBuilder) appPropsXML() []byte {
	var w bytes.Buffer
	w.WriteString(xmlHeader)
	w.WriteString(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">` + "\n")
	w.WriteString("  <Application>FMS Reports</Application>\n")
	w.WriteString("  <DocSecurity>0</DocSecurity>\n")
	w.WriteString("  <ScaleCrop>false</ScaleCrop>\n")
	w.WriteString("  <HeadingPairs>\n")
	w.WriteString(`    <vt:vector size="2" baseType="variant">` + "\n")
	w.WriteString("      <vt:variant><vt:lpstr>Worksheets</vt:lpstr></vt:variant>\n")
	w.WriteString("      <vt:variant><vt:i4>" + strconv.Itoa(len(b.sheets)) + "</vt:i4></vt:variant>\n")
	w.WriteString("    </vt:vector>\n")
	w.WriteString("  </HeadingPairs>\n")
	w.WriteString("  <TitlesOfParts>\n")
	w.WriteString(`    <vt:vector size="` + strconv.Itoa(len(b.sheets)) + `" baseType="lpstr">` + "\n")
	for _, sh := range b.sheets {
		w.WriteString("      <vt:lpstr>" + xmlEscape(sh.name) + "</vt:lpstr>\n")
	}
	w.WriteString("    </vt:vector>\n")
	w.WriteString("  </TitlesOfParts>\n")
	w.WriteString(`</Properties>` + "\n")
	return w.Bytes()
}

func (b *XLSXBuilder) workbookXML() []byte {
	var w bytes.Buffer
	w.WriteString(xmlHeader)
	w.WriteString(`<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` + "\n")
	w.WriteString("  <sheets>\n")
	for i, sh := range b.sheets {
		fmt.Fprintf(&w, `    <sheet name="%s" sheetId="%d" r:id="rId%d"/>`+"\n", xmlEscape(sh.name), i+1, i+1)
	}
	w.WriteString("  </sheets>\n")
	w.WriteString(`</workbook>` + "\n")
	return w.Bytes()
}

func (b *XLSXBuilder) workbookRelsXML() []byte {
	var w bytes.Buffer
	w.WriteString(xmlHeader)
	w.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` + "\n")
	for i := range b.sheets {
		fmt.Fprintf(&w, `  <Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet%d.xml"/>`+"\n", i+1, i+1)
	}
	fmt.Fprintf(&w, `  <Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`+"\n", len(b.sheets)+1)
	w.WriteString(`</Relationships>` + "\n")
	return w.Bytes()
}

func stylesXML() []byte {
	// Style 0 default, style 1 bold.
	var w bytes.Buffer
	w.WriteString(xmlHeader)
	w.WriteString(`<styleSheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">` + "\n")
	w.WriteString(`  <fonts count="2">` + "\n")
	w.WriteString(`    <font><sz val="11"/><name val="Calibri"/></font>` + "\n")
	w.WriteString(`    <font><b/><sz val="11"/><name val="Calibri"/></font>` + "\n")
	w.WriteString(`  </fonts>` + "\n")
	w.WriteString(`  <fills count="1"><fill><patternFill patternType="none"/></fill></fills>` + "\n")
	w.WriteString(`  <borders count="1"><border><left/><right/><top/><bottom/><diagonal/></border></borders>` + "\n")
	w.WriteString(`  <cellStyleXfs count="1"><xf numFmtId="0" fontId="0" fillId="0" borderId="0"/></cellStyleXfs>` + "\n")
	w.WriteString(`  <cellXfs count="2">` + "\n")
	w.WriteString(`    <xf numFmtId="0" fontId="0" fillId="0" borderId="0" xfId="0" applyFont="1"/>` + "\n")
	w.WriteString(`    <xf numFmtId="0" fontId="1" fillId="0" borderId="0" xfId="0" applyFont="1"/>` + "\n")
	w.WriteString(`  </cellXfs>` + "\n")
	w.WriteString(`  <cellStyles count="1"><cellStyle name="Normal" xfId="0" builtinId="0"/></cellStyles>` + "\n")
	w.WriteString(`</styleSheet>` + "\n")
	return w.Bytes()
}

func sheetXML(s *xlsxSheet) []byte {
	var w bytes.Buffer
	w.WriteString(xmlHeader)
	w.WriteString(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">` + "\n")

	widths := columnWidths(s)
	if len(widths) > 0 {
		w.WriteString("  <cols>\n")
		for i, width := range widths {
			fmt.Fprintf(&w, `    <col min="%d" max="%d" width="%d" customWidth="1"/>`+"\n", i+1, i+1, width)
		}
		w.WriteString("  </cols>\n")
	}

	w.WriteString(`  <sheetData>` + "\n")
	for r, row := range s.rows {
		rowNum := r + 1
		fmt.Fprintf(&w, `    <row r="%d">`+"\n", rowNum)
		for c, cell := range row {
			w.WriteString("      ")
			w.WriteString(cellXML(cellRef(c+1, rowNum), cell))
			w.WriteString("\n")
		}
		w.WriteString("    </row>\n")
	}
	w.WriteString(`  </sheetData>` + "\n")
	w.WriteString(`</worksheet>` + "\n")
	return w.Bytes()
}

// columnWidths sizes each column to its longest cell text plus padding,
// bounded to keep pathological cells from producing absurd sheets.
func columnWidths(s *xlsxSheet) []int {
	var widths []int
	for _, row := range s.rows {
		for c, cell := range row {
			for len(widths) <= c {
				widths = append(widths, xlsxMinColWidth)
			}
			n := utf8.RuneCountInString(cell.val) + 2
			if n > xlsxMaxColWidth {
				n = xlsxMaxColWidth
			}
			if n > widths[c] {
				widths[c] = n
			}
		}
	}
	return widths
}

func cellXML(ref string, c xlsxCell) string {
	styleAttr := ""
	if c.style > 0 {
		styleAttr = fmt.Sprintf(` s="%d"`, c.style)
	}
	if c.typ == "n" && strings.TrimSpace(c.val) != "" {
		return fmt.Sprintf(`<c r="%s"%s><v>%s</v></c>`, ref, styleAttr, xmlEscape(c.val))
	}
	txt := strings.NewReplacer("\n", " ", "\r", " ").Replace(c.val)
	return fmt.Sprintf(`<c r="%s" t="inlineStr"%s><is><t xml:space="preserve">%s</t></is></c>`, ref, styleAttr, xmlEscape(txt))
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

func xmlEscape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func cellRef(col, row int) string {
	return colName(col) + strconv.Itoa(row)
}

func colName(n int) string {
	if n <= 0 {
		return "A"
	}
	var out []byte
	for n > 0 {
		n--
		out = append([]byte{byte('A' + (n % 26))}, out...)
		n /= 26
	}
	return string(out)
}

func sanitizeSheetName(name string) string {
	name = strings.TrimSpace(name)
	repl := strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", " ", "]", " ")
	name = strings.TrimSpace(repl.Replace(name))
	name = strings.Trim(name, "'")
	return truncateRunes(name, 31)
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}

func capRunes(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
