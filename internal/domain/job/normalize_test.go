package job

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/honeycarbs/gradnex/internal/domain"
)

func TestStripHTML(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"<p>Hello</p><p>world</p>", "Hello world"},
		{"<ul><li>Go</li><li>SQL</li></ul>", "Go SQL"},
		{"Tom &amp; Jerry", "Tom & Jerry"},
		{"<script>alert(1)</script>visible", "visible"},
		{"&lt;b&gt;escaped&lt;/b&gt;", "escaped"},
		{"  lots\n\tof   space ", "lots of space"},
		{"salary < 5 lakh", "salary < 5 lakh"},
	}
	for _, tc := range cases {
		if got := StripHTML(tc.in); got != tc.want {
			t.Errorf("StripHTML(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSnippet(t *testing.T) {
	if got := Snippet("", 150); got != "" {
		t.Errorf("empty description gave %q", got)
	}
	if got := Snippet("<br/>", 150); got != "" {
		t.Errorf("markup-only description gave %q", got)
	}
	if got := Snippet("short", 150); got != "short..." {
		t.Errorf("got %q", got)
	}

	long := "<div>" + strings.Repeat("é", 400) + "</div>"
	got := Snippet(long, 150)
	if n := utf8.RuneCountInString(got); n != 150+len(Ellipsis) {
		t.Errorf("rune count = %d, want %d", n, 150+len(Ellipsis))
	}
	if !utf8.ValidString(got) {
		t.Error("snippet must stay valid UTF-8")
	}
	if strings.ContainsAny(got, "<>") {
		t.Errorf("snippet contains markup: %q", got)
	}
}

func TestSalaryRange(t *testing.T) {
	cases := []struct {
		min, max float64
		want     string
	}{
		{0, 0, NotSpecified},
		{0, 5000, NotSpecified},
		{1000, 0, "$1000+"},
		{1000, 2000.5, "$1000 - $2000.5"},
	}
	for _, tc := range cases {
		if got := SalaryRange("$", tc.min, tc.max); got != tc.want {
			t.Errorf("SalaryRange(%v, %v) = %q, want %q", tc.min, tc.max, got, tc.want)
		}
	}
}

func TestOrDefault(t *testing.T) {
	if OrDefault("  ", "x") != "x" || OrDefault("y", "x") != "y" {
		t.Error("OrDefault misbehaves")
	}
}

func TestFilterByType(t *testing.T) {
	records := []domain.JobRecord{{Type: "Internship"}, {Type: "full_time"}, {Type: "INTERNSHIP"}}
	got := FilterByType(records, "internship")
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	for _, r := range got {
		if !strings.EqualFold(r.Type, "internship") {
			t.Errorf("unexpected type %q", r.Type)
		}
	}
}

func TestLimit(t *testing.T) {
	in := []int{1, 2, 3, 4}
	if got := Limit(in, 2); len(got) != 2 {
		t.Errorf("Limit(4, 2) len = %d", len(got))
	}
	if got := Limit(in, 10); len(got) != 4 {
		t.Errorf("Limit(4, 10) len = %d", len(got))
	}
}
