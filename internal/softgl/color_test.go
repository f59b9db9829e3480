package softgl

import (
	"encoding/json"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#ffeded", RGB(0xff, 0xed, 0xed), true},
		{"292929", RGB(0x29, 0x29, 0x29), true},
		{"0x782097", RGB(0x78, 0x20, 0x97), true},
		{"#fff", Color{}, false},
		{"#gggggg", Color{}, false},
	}
	for _, tc := range cases {
		got, err := ParseHexColor(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseHexColor(%q) err=%v, want ok=%v", tc.in, err, tc.ok)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("ParseHexColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestHexDropsHighBits(t *testing.T) {
	if got := Hex(0xff00000); got != RGB(0xf0, 0, 0) {
		t.Fatalf("Hex(0xff00000) = %v", got)
	}
}

func TestColorJSON(t *testing.T) {
	var v struct {
		C Color `json:"c"`
	}
	if err := json.Unmarshal([]byte(`{"c":"#102030"}`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if v.C != RGB(0x10, 0x20, 0x30) {
		t.Fatalf("got %v", v.C)
	}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"c":"#102030"}` {
		t.Fatalf("Marshal = %s", b)
	}
}

func TestRotateHueFullTurn(t *testing.T) {
	c := RGB(0x78, 0x20, 0x97)
	got := c.RotateHue(360)
	if absInt(int(got.R)-int(c.R)) > 1 || absInt(int(got.G)-int(c.G)) > 1 || absInt(int(got.B)-int(c.B)) > 1 {
		t.Fatalf("RotateHue(360) = %v, want %v", got, c)
	}
	if red := RGB(0xff, 0, 0).RotateHue(120); red != RGB(0, 0xff, 0) {
		t.Fatalf("red +120° = %v, want green", red)
	}
}

func TestRotateHueGrayStaysGray(t *testing.T) {
	g := RGB(0x29, 0x29, 0x29)
	if got := g.RotateHue(45); got != g {
		t.Fatalf("gray rotated to %v", got)
	}
}
