package textutil

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "Lovely Weather", "lovely weather"},
		{"punctuation", "Lovely Weather!!", "lovely weather"},
		{"chain marker", "(❯) Lovely Training Weather ♪", "lovely training weather"},
		{"bare arrow", "❯Acupuncture", "acupuncture"},
		{"diacritics", "Café au Lait", "cafe au lait"},
		{"whitespace collapse", "  New   Year's\tResolution  ", "new years resolution"},
		{"stars", "☆ Dance Lesson ☆", "dance lesson"},
		{"empty", "", ""},
		{"only markers", "♪ ♫ ☆", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"(❯) Lovely Training Weather ♪",
		"I'm Not Afraid!",
		"Café au Lait  ...  with Sugar",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeCaseInsensitive(t *testing.T) {
	if Normalize("Lovely Weather!!") != Normalize("lovely weather") {
		t.Errorf("expected case/punctuation variants to normalize identically")
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"simple", "lovely training weather", []string{"lovely", "training", "weather"}},
		{"single", "acupuncture", []string{"acupuncture"}},
		{"empty", "", nil},
		{"spaces only", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
