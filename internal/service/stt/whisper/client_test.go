package whisper

import "testing"

func TestIsoLanguage(t *testing.T) {
	tests := map[string]string{
		"en-US": "en",
		"ru_RU": "ru",
		"DE":    "de",
		"":      "",
		" fr ":  "fr",
	}
	for in, want := range tests {
		if got := isoLanguage(in); got != want {
			t.Errorf("isoLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}
