package uri

import "testing"

func TestJoinStringsRFCExample(t *testing.T) {
	got, ok := JoinStrings("http://a/b/c/d;p?q", "../../g", true)
	if !ok {
		t.Fatal("JoinStrings failed")
	}
	want := "http://a/g"
	if s := Compose(got); s != want {
		t.Errorf("Join = %q, want %q", s, want)
	}
}

func TestJoinStringsRFCTable(t *testing.T) {
	const base = "http://a/b/c/d;p?q"
	cases := map[string]string{
		"g:h":       "g:h",
		"g":         "http://a/b/c/g",
		"./g":       "http://a/b/c/g",
		"g/":        "http://a/b/c/g/",
		"/g":        "http://a/g",
		"//g":       "http://g",
		"?y":        "http://a/b/c/d;p?y",
		"g?y":       "http://a/b/c/g?y",
		"#s":        "http://a/b/c/d;p?q#s",
		"g#s":       "http://a/b/c/g#s",
		"g?y#s":     "http://a/b/c/g?y#s",
		";x":        "http://a/b/c/;x",
		"g;x":       "http://a/b/c/g;x",
		"g;x?y#s":   "http://a/b/c/g;x?y#s",
		"":          "http://a/b/c/d;p?q",
		".":         "http://a/b/c/",
		"./":        "http://a/b/c/",
		"..":        "http://a/b/",
		"../":       "http://a/b/",
		"../g":      "http://a/b/g",
		"../..":     "http://a/",
		"../../":    "http://a/",
		"../../g":   "http://a/g",
	}
	for ref, want := range cases {
		got, ok := JoinStrings(base, ref, true)
		if !ok {
			t.Errorf("JoinStrings(%q, %q) failed", base, ref)
			continue
		}
		if s := Compose(got); s != want {
			t.Errorf("JoinStrings(%q, %q) = %q, want %q", base, ref, s, want)
		}
	}
}

func TestJoinPreservesFragmentFromRef(t *testing.T) {
	got, ok := JoinStrings("http://a/b/c/d;p?q", "?y#frag", true)
	if !ok {
		t.Fatal("JoinStrings failed")
	}
	if got.Fragment != "frag" || !got.HasFragment {
		t.Errorf("Fragment = %q", got.Fragment)
	}
}
