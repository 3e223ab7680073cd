package colorspace

import "testing"

func TestNormalizeInput(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"ff0000", "#FF0000"},
		{"#ff0000", "#FF0000"},
		{"  #12 34 56 ", "#123456"},
		{"zz#abcxyz", "#ABC"},
		{"#1234567890", "#123456"},
		{"gg", ""},
		{"rgb(1,2,3)", "#B123"},
	}
	for _, c := range cases {
		if got := NormalizeInput(c.in); got != c.want {
			t.Errorf("NormalizeInput(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCompleteInput(t *testing.T) {
	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"#ff", "#FF0000", true},
		{"abc", "#ABC000", true},
		{"#123456", "#123456", true},
		{"#", "#", false},
		{"", "", false},
		{"#1#2", "#1#2000", false},
	}
	for _, c := range cases {
		got, ok := CompleteInput(c.in)
		if got != c.want || ok != c.wantOK {
			t.Errorf("CompleteInput(%q) = %q,%v want %q,%v", c.in, got, ok, c.want, c.wantOK)
		}
	}
}
