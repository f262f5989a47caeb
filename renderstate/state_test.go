package renderstate

import "testing"

func TestColorMaskBits(t *testing.T) {
	tests := []struct {
		mask ColorMask
		want uint8
	}{
		{ColorMask{R: true, G: false, B: true, A: false}, 0b0101},
		{ColorMask{R: true, G: true, B: true, A: true}, 0b1111},
		{ColorMask{}, 0},
		{ColorMask{A: true}, 0b1000},
		{ColorMask{G: true}, 0b0010},
	}
	for _, tt := range tests {
		if got := tt.mask.Bits(); got != tt.want {
			t.Errorf("%v.Bits() = %d, want %d", tt.mask, got, tt.want)
		}
		if back := ColorMaskFromBits(tt.want); back != tt.mask {
			t.Errorf("ColorMaskFromBits(%d) = %v, want %v", tt.want, back, tt.mask)
		}
	}

	if ColorMaskAll().Bits() != MaskAll {
		t.Errorf("ColorMaskAll().Bits() = %d, want %d", ColorMaskAll().Bits(), MaskAll)
	}
	if got := ColorMaskFromBits(0xF5); got != (ColorMask{R: true, B: true}) {
		t.Errorf("ColorMaskFromBits(0xF5) = %v, high bits must be ignored", got)
	}
}

func TestDepthStateDefaults(t *testing.T) {
	d := DefaultDepthState()
	if d.Compare != CompareAlways || d.Write {
		t.Errorf("DefaultDepthState() = %+v", d)
	}
	if d.Enabled() {
		t.Error("default depth state reports enabled")
	}
	if !(DepthState{Compare: CompareAlways, Write: true}).Enabled() {
		t.Error("depth writes must enable the depth unit")
	}
	if !(DepthState{Compare: CompareLEqual}).Enabled() {
		t.Error("lequal test must enable the depth unit")
	}
}

func TestStencilEnabled(t *testing.T) {
	if DefaultStencilState().Enabled() {
		t.Error("default stencil state reports enabled")
	}
	if !(StencilState{Compare: CompareEqual, Value: 1}).Enabled() {
		t.Error("equal stencil test reports disabled")
	}
}

func TestRectEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{Rect{0, 0, 10, 10}, false},
		{Rect{5, 5, 0, 10}, true},
		{Rect{5, 5, 10, -1}, true},
	}
	for _, tt := range tests {
		if got := tt.r.Empty(); got != tt.want {
			t.Errorf("%+v.Empty() = %v, want %v", tt.r, got, tt.want)
		}
	}
}
