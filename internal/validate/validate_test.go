package validate

import "testing"

func TestCredentialsSplit(t *testing.T) {
	cases := []struct {
		seg, user, pass string
	}{
		{"bob&S3cret!pw", "bob", "S3cret!pw"},
		{"bob&pa&ss", "bob", "pa&ss"}, // only the first ampersand splits
		{"bob", "bob", ""},
		{"bob%40mail&pw", "bob@mail", "pw"},
	}
	for _, tc := range cases {
		u, p := Credentials(tc.seg)
		if u != tc.user || p != tc.pass {
			t.Errorf("Credentials(%q) = %q, %q; want %q, %q", tc.seg, u, p, tc.user, tc.pass)
		}
	}
}

func TestNumberAcceptsStringsAndFloats(t *testing.T) {
	if n, ok := Number(float64(3)); !ok || n != 3 {
		t.Fatalf("float64: got %v, %v", n, ok)
	}
	if n, ok := Number(" 19.95 "); !ok || n != 19.95 {
		t.Fatalf("string: got %v, %v", n, ok)
	}
	if _, ok := Number(nil); ok {
		t.Fatal("nil must not parse")
	}
	if _, ok := Number("abc"); ok {
		t.Fatal("non-numeric string must not parse")
	}
}
