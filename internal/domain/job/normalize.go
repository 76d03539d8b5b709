package job

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/honeycarbs/gradnex/internal/domain"
)

const (
	UnknownCompany = "Unknown"
	NotSpecified   = "Not specified"
	Ellipsis       = "..."
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML returns the visible text of an HTML fragment with runs of
// whitespace collapsed to a single space
func StripHTML(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapseSpace(tagPattern.ReplaceAllString(s, " "))
	}

	var b strings.Builder
	var walk func(sel *goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, c *goquery.Selection) {
			switch goquery.NodeName(c) {
			case "#text":
				b.WriteString(c.Text())
				b.WriteByte(' ')
			case "script", "style", "#comment":
			default:
				walk(c)
			}
		})
	}
	walk(doc.Selection)

	// entity-encoded markup (&lt;b&gt;) decodes back into tags
	return collapseSpace(tagPattern.ReplaceAllString(b.String(), " "))
}

// Snippet strips HTML from desc and cuts it to budget runes followed by an
// ellipsis. An empty description yields an empty snippet.
func Snippet(desc string, budget int) string {
	text := StripHTML(desc)
	if text == "" {
		return ""
	}
	if budget > 0 && utf8.RuneCountInString(text) > budget {
		text = strings.TrimRight(string([]rune(text)[:budget]), " ")
	}
	return text + Ellipsis
}

// OrDefault returns s, or def when s is blank
func OrDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// SalaryRange renders "<sym><min> - <sym><max>". Without a minimum the
// salary is unknown; without a maximum only the lower bound is shown.
func SalaryRange(symbol string, min, max float64) string {
	if min <= 0 {
		return NotSpecified
	}
	if max <= 0 {
		return symbol + formatAmount(min) + "+"
	}
	return symbol + formatAmount(min) + " - " + symbol + formatAmount(max)
}

// FilterByType keeps records whose type equals typ, ignoring case
func FilterByType(records []domain.JobRecord, typ string) []domain.JobRecord {
	out := records[:0]
	for _, r := range records {
		if strings.EqualFold(r.Type, typ) {
			out = append(out, r)
		}
	}
	return out
}

// Limit truncates records to at most n entries
func Limit[T any](records []T, n int) []T {
	if n >= 0 && len(records) > n {
		return records[:n]
	}
	return records
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
