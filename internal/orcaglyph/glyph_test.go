package orcaglyph

import "testing"

func TestIsValid(t *testing.T) {
	cases := []struct {
		b    byte
		want bool
	}{
		{'.', true},
		{'0', true},
		{'9', true},
		{'A', true},
		{'Z', true},
		{'a', true},
		{'z', true},
		{'*', true},
		{'$', true},
		{'@', false},
		{' ', false},
	}
	for _, c := range cases {
		if got := IsValid(c.b); got != c.want {
			t.Errorf("IsValid(%q) = %v, want %v", c.b, got, c.want)
		}
	}
}

func TestIsData(t *testing.T) {
	if !IsData('5') {
		t.Error("digit should be data")
	}
	if !IsData('a') {
		t.Error("lowercase letter should be data")
	}
	if IsData('A') {
		t.Error("uppercase letter should not be data")
	}
	if IsData('.') {
		t.Error("empty glyph should not be data")
	}
}

func TestToIntFromInt(t *testing.T) {
	cases := []struct {
		b    byte
		want int
	}{
		{'0', 0}, {'9', 9},
		{'a', 10}, {'A', 10},
		{'z', 35}, {'Z', 35},
		{'.', -1},
	}
	for _, c := range cases {
		if got := ToInt(c.b, -1); got != c.want {
			t.Errorf("ToInt(%q) = %d, want %d", c.b, got, c.want)
		}
	}

	for v := 0; v < 36; v++ {
		upper := FromInt(v, true)
		if got := ToInt(upper, -1); got != v {
			t.Errorf("FromInt(%d, true)=%q, ToInt back = %d", v, upper, got)
		}
		lower := FromInt(v, false)
		if got := ToInt(lower, -1); got != v {
			t.Errorf("FromInt(%d, false)=%q, ToInt back = %d", v, lower, got)
		}
	}
}

func TestFromIntWraps(t *testing.T) {
	if got := FromInt(36, true); got != '0' {
		t.Errorf("FromInt(36) = %q, want '0'", got)
	}
	if got := FromInt(-1, true); got != 'Z' {
		t.Errorf("FromInt(-1) = %q, want 'Z'", got)
	}
}

func TestToUpperToLower(t *testing.T) {
	if ToUpper('a') != 'A' {
		t.Error("ToUpper('a') should be 'A'")
	}
	if ToUpper('5') != '5' {
		t.Error("ToUpper should leave digits unchanged")
	}
	if ToLower('A') != 'a' {
		t.Error("ToLower('A') should be 'a'")
	}
}
