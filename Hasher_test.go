package Go_Tables

import "testing"

func TestHashPoly(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"a", 97},
		{"ab", 97*31 + 98},
		{"hello", 99162322},
		{"polygenelubricants", -2147483648},
	}
	for _, c := range cases {
		if got := HashPoly(c.in); got != c.want {
			t.Errorf("HashPoly(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestHashInt(t *testing.T) {
	if HashInt(int8(-3)) != -3 || HashInt(uint16(15)) != 15 {
		t.Error("wrong integer hash")
	}
}

func TestHasher_All(t *testing.T) {
	h := MakeHasher()
	if h.HashString("key") != h.HashString("key") {
		t.Error("string hash isn't stable")
	}
	if h.HashString("key") != h.HashBytes([]byte("key")) {
		t.Error("string and bytes hash differ")
	}
	if HashComparable(h, 42) != HashComparable(h, 42) {
		t.Error("comparable hash isn't stable")
	}
	if HashXX("key") != HashXX("key") || HashXX("key") == HashXX("kez") {
		t.Error("wrong xx hash")
	}
}
