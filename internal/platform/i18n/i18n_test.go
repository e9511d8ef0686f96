package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   language.Tag
		wantOK bool
	}{
		{in: "fi", want: language.Finnish, wantOK: true},
		{in: "fi-FI", want: language.Finnish, wantOK: true},
		{in: "sv-SE", want: language.Swedish, wantOK: true},
		{in: "en-US", want: language.English, wantOK: true},
		{in: "de", want: language.Und, wantOK: false},
		{in: "", want: language.Und, wantOK: false},
		{in: "not a tag", want: language.Und, wantOK: false},
	}
	for _, tc := range tests {
		got, ok := ParseTag(tc.in)
		if ok != tc.wantOK || got != tc.want {
			t.Fatalf("ParseTag(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestMatchTags(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != language.Finnish {
		t.Fatalf("MatchTags(nil) = %v, want fi", got)
	}
	if got := MatchTags([]language.Tag{language.MustParse("sv-FI")}); got != language.Swedish {
		t.Fatalf("MatchTags(sv-FI) = %v, want sv", got)
	}
	if got := MatchTags([]language.Tag{language.Japanese}); got != language.Finnish {
		t.Fatalf("MatchTags(ja) = %v, want fi", got)
	}
}

func TestCode(t *testing.T) {
	t.Parallel()

	if got := Code(language.MustParse("sv-FI")); got != "sv" {
		t.Fatalf("Code(sv-FI) = %q, want sv", got)
	}
}
