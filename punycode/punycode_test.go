package punycode

import (
	"errors"
	"testing"
)

func mustEncode(t *testing.T, input string) string {
	t.Helper()
	out, _, err := Encode([]rune(input))
	if err != nil {
		t.Fatalf("Encode(%q) failed: %v", input, err)
	}
	return out
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []string{
		"example",
		"münchen",
		"übel",
		"\U0001F600",
		"aäböcüd",
	}
	for _, label := range cases {
		enc, nonASCII, err := Encode([]rune(label))
		if err != nil {
			t.Fatalf("Encode(%q) failed: %v", label, err)
		}
		if !nonASCII {
			if enc != label {
				t.Fatalf("Encode(%q) = %q, want identity when all-ASCII", label, enc)
			}
			continue
		}
		decoded, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(%q) failed: %v", enc, err)
		}
		if string(decoded) != label {
			t.Errorf("round trip: Decode(Encode(%q)) = %q", label, string(decoded))
		}
	}
}

func TestEncodeKnownVectors(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"München", "Mnchen-3ya"},
	}
	for _, c := range cases {
		got := mustEncode(t, c.input)
		if got != c.want {
			t.Errorf("Encode(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestEncodeDomain(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"example.com", "example.com"},
		{"München.de", "xn--Mnchen-3ya.de"},
		{"München.\U0001F600", "xn--Mnchen-3ya.xn--e28h"},
	}
	for _, c := range cases {
		got, err := EncodeDomain(c.input)
		if err != nil {
			t.Fatalf("EncodeDomain(%q) failed: %v", c.input, err)
		}
		if got != c.want {
			t.Errorf("EncodeDomain(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestDecodeDomain(t *testing.T) {
	got, err := DecodeDomain("xn--Mnchen-3ya.de")
	if err != nil {
		t.Fatalf("DecodeDomain failed: %v", err)
	}
	if want := "München.de"; got != want {
		t.Errorf("DecodeDomain = %q, want %q", got, want)
	}
}

func TestDecodeRejectsNonBasicLiteral(t *testing.T) {
	_, err := Decode(string([]byte{0x80, 'a'}))
	if !errors.Is(err, ErrBadInput) {
		t.Errorf("Decode with non-ASCII literal prefix: got %v, want ErrBadInput", err)
	}
}

func TestDecodeRejectsTruncatedVLI(t *testing.T) {
	_, err := Decode("a-z")
	if err == nil {
		t.Errorf("Decode(%q) succeeded, want an error", "a-z")
	}
}

func TestAnyNonASCII(t *testing.T) {
	if AnyNonASCII("example.com") {
		t.Error("AnyNonASCII(ascii) = true")
	}
	if !AnyNonASCII("münchen.de") {
		t.Error("AnyNonASCII(non-ascii) = false")
	}
}

func TestHasACELabel(t *testing.T) {
	if HasACELabel("example.com") {
		t.Error("HasACELabel(no xn--) = true")
	}
	if !HasACELabel("xn--mnchen-3ya.de") {
		t.Error("HasACELabel(xn--) = false")
	}
}

func TestEncodeDecodeEmptyLabel(t *testing.T) {
	enc, nonASCII, err := Encode(nil)
	if err != nil || nonASCII || enc != "" {
		t.Errorf("Encode(nil) = (%q, %v, %v)", enc, nonASCII, err)
	}
}
