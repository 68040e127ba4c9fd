package toc

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"already normalized", "chapter one", "chapter one"},
		{"lowercases", "Chapter One", "chapter one"},
		{"collapses whitespace", "Chapter   \t One", "chapter one"},
		{"collapses newlines", "Chapter\nOne", "chapter one"},
		{"trims", "  Chapter One  ", "chapter one"},
		{"whitespace only", " \n\t ", ""},
		{"nfkc compatibility form", "ﬁrst", "first"},     // U+FB01 ligature
		{"nfkc fullwidth digits", "Chapter ５", "chapter 5"}, // U+FF15
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"Chapter  One", "ﬁrst STEPS", "  a\nb\tc  "}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
