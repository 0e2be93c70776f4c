package layout

import (
	"errors"
	"testing"
)

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		in   string
		want Alignment
		err  bool
	}{
		{"left", AlignLeft, false},
		{"", AlignLeft, false},
		{"auto", AlignLeft, false},
		{"Center", AlignCenter, false},
		{" right ", AlignRight, false},
		{"justify", AlignJustify, false},
		{"middle", AlignLeft, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlignment(tt.in)
			if tt.err {
				if !errors.Is(err, ErrUnknownAlignment) {
					t.Fatalf("ParseAlignment(%q) error = %v, want ErrUnknownAlignment", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAlignment(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAlignment(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAlignmentString(t *testing.T) {
	for _, a := range []Alignment{AlignLeft, AlignCenter, AlignRight, AlignJustify} {
		got, err := ParseAlignment(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAlignment(%q) = %v, %v", a.String(), got, err)
		}
	}
	if Alignment(99).String() != unknownStr {
		t.Errorf("Alignment(99).String() = %q", Alignment(99).String())
	}
}

func TestTextStyleFontStyle(t *testing.T) {
	if got := (TextStyle{}).FontStyle(); got != Regular {
		t.Errorf("zero TextStyle FontStyle = %+v, want Regular", got)
	}
	got := TextStyle{Weight: WeightBold, Slant: SlantItalic}.FontStyle()
	if !got.IsBold() || got.Slant != SlantItalic || got.String() != "Bold Italic" {
		t.Errorf("FontStyle = %+v (%s)", got, got)
	}
}

func TestDecorationHas(t *testing.T) {
	d := DecorationUnderline | DecorationLineThrough
	if !d.Has(DecorationUnderline) || !d.Has(DecorationLineThrough) {
		t.Error("combined decoration lost a line")
	}
	if DecorationUnderline.Has(DecorationLineThrough) {
		t.Error("underline reports line-through")
	}
}

func TestRect(t *testing.T) {
	r := Rect{Left: 1, Top: 2, Right: 4, Bottom: 8}
	if r.Width() != 3 || r.Height() != 6 {
		t.Errorf("size = %vx%v", r.Width(), r.Height())
	}
	if !r.Contains(1, 2) || !r.Contains(4, 8) || r.Contains(0, 5) {
		t.Error("Contains wrong at edges")
	}
	if r.Empty() || !(Rect{Left: 1, Right: 1, Bottom: 1}).Empty() {
		t.Error("Empty wrong")
	}
}
