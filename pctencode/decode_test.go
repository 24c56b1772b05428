package pctencode

import "testing"

func TestDecode(t *testing.T) {
	cases := []struct {
		s    string
		want string
	}{
		{"a%20b", "a b"},
		{"100%25", "100%"},
		{"no-escapes", "no-escapes"},
		{"ab%", "ab%"},
		{"ab%X", "ab%X"},
		{"ab%XY", "ab%XY"},
		{"ab%2", "ab%2"},
		{"%FC", "\xfc"},
	}
	for _, c := range cases {
		if got := Decode(c.s); got != c.want {
			t.Errorf("Decode(%q) = %q, want %q", c.s, got, c.want)
		}
	}
}

func TestDecodeMalformedTrailerIsIdempotent(t *testing.T) {
	const s = "ab%"
	once := Decode(s)
	twice := Decode(once)
	if once != s || twice != once {
		t.Errorf("Decode(%q) = %q, Decode(that) = %q, want both %q", s, once, twice, s)
	}
}

func TestDecoderStepwise(t *testing.T) {
	d := NewDecoder("a%20%2")
	want := []byte{'a', ' ', '%', '2'}
	for _, w := range want {
		got, ok := d.Next()
		if !ok || got != w {
			t.Fatalf("Next() = (%q, %v), want (%q, true)", got, ok, w)
		}
	}
	if _, ok := d.Next(); ok {
		t.Fatalf("Next() at end of input returned ok=true")
	}
}

func TestDecodeLower(t *testing.T) {
	if got, want := DecodeLower("EXAMPLE.COM"), "example.com"; got != want {
		t.Errorf("DecodeLower(%q) = %q, want %q", "EXAMPLE.COM", got, want)
	}
	if got, want := DecodeLower("%41BC"), "abc"; got != want {
		t.Errorf("DecodeLower(%q) = %q, want %q", "%41BC", got, want)
	}
}

func TestNeedsDecoding(t *testing.T) {
	if NeedsDecoding("ab%") {
		t.Error("NeedsDecoding(ab%) = true, want false (malformed trailer is a no-op)")
	}
	if !NeedsDecoding("a%20b") {
		t.Errorf("NeedsDecoding(%s) = false, want true", "a%20b")
	}
}

func TestDecodedSize(t *testing.T) {
	if got, want := DecodedSize("a%20b"), 3; got != want {
		t.Errorf("DecodedSize(%q) = %d, want %d", "a%20b", got, want)
	}
	if got, want := DecodedSize("ab%"), 3; got != want {
		t.Errorf("DecodedSize(%q) = %d, want %d", "ab%", got, want)
	}
}
