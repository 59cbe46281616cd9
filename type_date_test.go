package qif

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in       string
		dayFirst bool
		want     string
	}{
		{"2021-02-07", false, "2021-02-07"},
		{"2021-02-07", true, "2021-02-07"}, // ISO order overrides dayFirst
		{"02/07/2021", false, "2021-02-07"},
		{"02/07/2021", true, "2021-07-02"},
		{"02.07.2021", true, "2021-07-02"},
		{"25/12/2021", false, "2021-12-25"}, // declared order impossible, swapped
		{"12/25/2021", true, "2021-12-25"},
		{"1/ 5/21", false, "2021-01-05"}, // space stands for a leading zero
		{"1/5'21", false, "2021-01-05"},  // apostrophe stands for the year separator
		{"7/Feb/2021", true, "2021-02-07"},
		{"Feb/7/2021", false, "2021-02-07"},
		{"7/February/2021", true, "2021-02-07"},
		{"0100202022", false, "2022-01-02"}, // zero-separated
		{"12/3/99", false, "1999-12-03"},    // two-digit years pivot at 69
		{"12/3/69", false, "1969-12-03"},
		{"12/3/68", false, "2068-12-03"},
	}
	for _, c := range cases {
		got, err := ParseDate(c.in, c.dayFirst)
		if err != nil {
			t.Errorf("ParseDate(%q, %v): unexpected error: %v", c.in, c.dayFirst, err)
			continue
		}
		if got.String() != c.want {
			t.Errorf("ParseDate(%q, %v) = %s, want %s", c.in, c.dayFirst, got, c.want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "hello", "12/2021", "1/2/3/4", "31/02/2021", "13/13/2021", "xx/yy/zzzz"} {
		if d, err := ParseDate(in, true); err == nil {
			t.Errorf("ParseDate(%q) = %s, want error", in, d)
		}
	}
}

func TestDateAccessors(t *testing.T) {
	d := NewDate(2021, time.February, 7)
	if d.Year() != 2021 || d.Month() != time.February || d.Day() != 7 {
		t.Fatalf("unexpected components: %d %s %d", d.Year(), d.Month(), d.Day())
	}
	if d.IsZero() {
		t.Error("IsZero on a set date")
	}
	if !(Date{}).IsZero() {
		t.Error("zero value must report IsZero")
	}
	if !d.Before(NewDate(2021, time.February, 8)) {
		t.Error("Before failed")
	}
	if !d.After(NewDate(2021, time.February, 6)) {
		t.Error("After failed")
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2021, time.February, 7)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2021-02-07"` {
		t.Fatalf("MarshalJSON = %s", data)
	}
	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Fatalf("round trip: got %s, want %s", back, d)
	}
}
