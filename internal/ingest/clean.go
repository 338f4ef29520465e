package ingest

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"jobtools-engine/internal/domain"
)

// StripHTML reduces a raw HTML description to plain text. Non-HTML input
// passes through unchanged.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script, style").Remove()
	var b strings.Builder
	doc.Find("body").Contents().Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			b.WriteString(text)
			b.WriteByte(' ')
		}
	})
	out := b.String()
	if strings.TrimSpace(out) == "" {
		out = doc.Text()
	}
	return domain.CollapseSpace(out)
}

// asciiPunct folds typographic punctuation that breaks naive term matching.
var asciiPunct = map[rune]rune{
	'‘': '\'', '’': '\'', '‚': '\'', '‛': '\'',
	'“': '"', '”': '"', '„': '"',
	'‐': '-', '‑': '-', '‒': '-', '–': '-', '—': '-', '―': '-',
	'…': '.', ' ': ' ',
}

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)), // strip combining marks (é -> e)
	runes.Map(func(r rune) rune {
		if mapped, ok := asciiPunct[r]; ok {
			return mapped
		}
		return r
	}),
	norm.NFC,
)

// FoldASCII normalizes accented characters and typographic punctuation so
// configured terms written in plain ascii match collected text.
func FoldASCII(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}
