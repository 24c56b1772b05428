package uri

import "testing"

func TestValidAcceptsEverythingSplitProduces(t *testing.T) {
	texts := []string{
		"https://user:pw@example.com:8080/a/b?x=1#f",
		"Z://-@[b8::C:AB:2b]:16?%FC:",
		"file:///etc/passwd",
		"mailto:user@example.com",
		"urn:isbn:0451450523",
	}
	for _, text := range texts {
		p, ok := Split(text)
		if !ok {
			t.Fatalf("Split(%q) failed", text)
		}
		if !p.Valid() {
			t.Errorf("Valid() = false for %q", text)
		}
	}
}

func TestValidRejectsBadPort(t *testing.T) {
	p, ok := Split("http://example.com/")
	if !ok {
		t.Fatal("Split failed")
	}
	p.Authority.Port, p.Authority.HasPort = "8x", true
	if p.Valid() {
		t.Error("Valid() = true for non-numeric port")
	}
}

func TestValidRejectsBadScheme(t *testing.T) {
	p := Parts{Scheme: "1bad", HasScheme: true}
	if p.Valid() {
		t.Error("Valid() = true for a scheme starting with a digit")
	}
}
