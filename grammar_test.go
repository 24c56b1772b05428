package uri

import "testing"

func TestDecOctetBoundaries(t *testing.T) {
	accept := []string{"0", "9", "10", "99", "100", "199", "200", "249", "250", "255"}
	for _, s := range accept {
		if !fullyMatches(s, decOctet) {
			t.Errorf("decOctet rejected %q, want accepted", s)
		}
	}
	reject := []string{"256", "300", "00", "01", "001", "999", ""}
	for _, s := range reject {
		if fullyMatches(s, decOctet) {
			t.Errorf("decOctet accepted %q, want rejected", s)
		}
	}
}

func TestIPv4Address(t *testing.T) {
	if !fullyMatches("192.168.0.1", ipv4address) {
		t.Error("expected 192.168.0.1 to match")
	}
	if fullyMatches("192.168.0.256", ipv4address) {
		t.Error("expected 192.168.0.256 to be rejected")
	}
}

func TestIPv6AddressAlternatives(t *testing.T) {
	accept := []string{
		"1:2:3:4:5:6:7:8",
		"::1",
		"1::",
		"::",
		"1:2:3:4:5:6:1.2.3.4",
		"::ffff:192.0.2.1",
		"2001:db8::8a2e:370:7334",
	}
	for _, s := range accept {
		if !fullyMatches(s, ipv6address) {
			t.Errorf("ipv6address rejected %q, want accepted", s)
		}
	}
	reject := []string{
		"1:2:3:4:5:6:7:8:9",
		":::",
		"1::2::3",
		"",
	}
	for _, s := range reject {
		if fullyMatches(s, ipv6address) {
			t.Errorf("ipv6address accepted %q, want rejected", s)
		}
	}
}

func TestHostOrdersIPLiteralBeforeRegName(t *testing.T) {
	p := mustSplit(t, "http://[::1]:80/")
	if p.Authority.Host != "::1" {
		t.Errorf("Host = %q, want ::1", p.Authority.Host)
	}
}

func TestSchemeGrammar(t *testing.T) {
	accept := []string{"a", "http", "z39.50", "a+b-c.d"}
	for _, s := range accept {
		if !fullyMatches(s, scheme) {
			t.Errorf("scheme rejected %q", s)
		}
	}
	reject := []string{"", "1http", "-http"}
	for _, s := range reject {
		if fullyMatches(s, scheme) {
			t.Errorf("scheme accepted %q", s)
		}
	}
}

func TestSegmentNZNCExcludesColon(t *testing.T) {
	if fullyMatches("a:b", segmentNZNC) {
		t.Error("segmentNZNC should not accept a colon")
	}
	if !fullyMatches("a:b", segmentNZ) {
		t.Error("segmentNZ should accept a colon")
	}
}
