package password

import (
	"strings"
	"testing"
)

func TestSHA1HexGolden(t *testing.T) {
	cases := map[string]string{
		"password": "5BAA61E4C9B93F3F0682250B6CF8331B7EE68FD8",
		"":         "DA39A3EE5E6B4B0D3255BFEF95601890AFD80709",
	}
	for in, want := range cases {
		if got := SHA1Hex(in); got != want {
			t.Fatalf("SHA1Hex(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestSHA1HexIsUppercaseHex(t *testing.T) {
	got := SHA1Hex("ÄÖÜ🔒")
	if len(got) != 40 {
		t.Fatalf("expected 40 hex chars, got %d", len(got))
	}
	if strings.ToUpper(got) != got {
		t.Fatalf("expected uppercase digest, got %s", got)
	}
}

func TestBreachRange(t *testing.T) {
	prefix, suffix := BreachRange("password")
	if prefix != "5BAA6" {
		t.Fatalf("unexpected prefix %s", prefix)
	}
	if suffix != "1E4C9B93F3F0682250B6CF8331B7EE68FD8" {
		t.Fatalf("unexpected suffix %s", suffix)
	}
}
