// Package format renders amounts, dates and percentages for report output.
// Formatting is presentation only: values arrive already rounded and
// percentage-computed from the aggregation layer.
package format

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Surface identifies the rendering target a formatted value is destined for.
// The PDF surface draws text with the built-in Type1 fonts, whose WinAnsi
// repertoire cannot represent every currency glyph; text surfaces (CSV, XLSX)
// carry arbitrary UTF-8.
type Surface int

const (
	SurfaceText Surface = iota
	SurfacePDF
)

// CanRender reports whether the surface can draw every rune of s.
func (s Surface) CanRender(text string) bool {
	if s != SurfacePDF {
		return true
	}
	for _, r := range text {
		if !winAnsiRenderable(r) {
			return false
		}
	}
	return true
}

type currencySpec struct {
	symbol      string
	decimals    int32
	symbolAfter bool
}

// currencies covers the codes the application exposes in its settings screen.
// Unknown codes fall back to "<CODE> <amount>" with two decimals.
var currencies = map[string]currencySpec{
	"USD": {symbol: "$", decimals: 2},
	"EUR": {symbol: "€", decimals: 2},
	"GBP": {symbol: "£", decimals: 2},
	"JPY": {symbol: "¥", decimals: 0},
	"CNY": {symbol: "¥", decimals: 2},
	"INR": {symbol: "₹", decimals: 2},
	"KRW": {symbol: "₩", decimals: 0},
	"CAD": {symbol: "CA$", decimals: 2},
	"AUD": {symbol: "A$", decimals: 2},
	"CHF": {symbol: "CHF ", decimals: 2},
	"SEK": {symbol: "kr", decimals: 2, symbolAfter: true},
	"NOK": {symbol: "kr", decimals: 2, symbolAfter: true},
}

// asciiFallbacks substitutes an ASCII abbreviation for currency symbols a
// surface cannot draw. Codes without an entry fall back to the ISO code.
var asciiFallbacks = map[string]string{
	"INR": "Rs.",
	"KRW": "KRW ",
}

// Currency formats an already-final amount for the given surface.
// Grouping uses comma thousands separators; negative amounts carry a leading
// minus ahead of the symbol.
func Currency(amount decimal.Decimal, code string, surface Surface) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	spec, ok := currencies[code]
	if !ok {
		spec = currencySpec{symbol: code + " ", decimals: 2}
	}

	symbol := spec.symbol
	if !surface.CanRender(symbol) {
		if fb, ok := asciiFallbacks[code]; ok {
			symbol = fb
		} else {
			symbol = code + " "
		}
	}

	neg := amount.IsNegative()
	body := group(amount.Abs().StringFixed(spec.decimals))

	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	if spec.symbolAfter {
		b.WriteString(body)
		b.WriteString(" ")
		b.WriteString(symbol)
	} else {
		b.WriteString(symbol)
		b.WriteString(body)
	}
	return b.String()
}

// group inserts comma thousands separators into a non-negative fixed-point
// decimal string.
func group(s string) string {
	intPart := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return intPart + frac
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + frac
}

// Date renders the long display form used in report bodies.
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// Timestamp renders the header "Generated:" timestamp.
func Timestamp(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

// Percentage renders a pre-computed percentage with one decimal place.
func Percentage(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// winAnsiRenderable reports whether the built-in PDF fonts can draw r.
// The repertoire is Latin-1 plus the WinAnsi additions in 0x80-0x9F.
func winAnsiRenderable(r rune) bool {
	if r >= 0x20 && r <= 0x7E {
		return true
	}
	if r >= 0xA0 && r <= 0xFF {
		return true
	}
	_, ok := winAnsiExtras[r]
	return ok
}

// winAnsiExtras maps the non-Latin-1 runes WinAnsi encodes to their byte
// values (used both for renderability checks and string encoding).
var winAnsiExtras = map[rune]byte{
	'€': 0x80, // euro
	'‚': 0x82,
	'ƒ': 0x83,
	'„': 0x84,
	'…': 0x85,
	'†': 0x86,
	'‡': 0x87,
	'ˆ': 0x88,
	'‰': 0x89,
	'Š': 0x8a,
	'‹': 0x8b,
	'Œ': 0x8c,
	'Ž': 0x8e,
	'‘': 0x91,
	'’': 0x92,
	'“': 0x93,
	'”': 0x94,
	'•': 0x95,
	'–': 0x96,
	'—': 0x97,
	'˜': 0x98,
	'™': 0x99,
	'š': 0x9a,
	'›': 0x9b,
	'œ': 0x9c,
	'ž': 0x9e,
	'Ÿ': 0x9f,
}

// WinAnsiByte returns the WinAnsi encoding of r and whether it exists.
func WinAnsiByte(r rune) (byte, bool) {
	if r >= 0x20 && r <= 0x7E {
		return byte(r), true
	}
	if r >= 0xA0 && r <= 0xFF {
		return byte(r), true
	}
	b, ok := winAnsiExtras[r]
	return b, ok
}
