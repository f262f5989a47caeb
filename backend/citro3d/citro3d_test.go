package citro3d

import (
	"testing"

	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/texture"
)

type blendCall struct {
	colorEq, alphaEq                       BlendEquation
	srcColor, dstColor, srcAlpha, dstAlpha BlendFactor
}

type depthCall struct {
	enable bool
	fn     TestFunc
	mask   WriteMask
}

type scissorCall struct {
	mode                     ScissorMode
	left, top, right, bottom int
}

type stencilCall struct {
	enable bool
	fn     TestFunc
	ref    int
}

type mockGPU struct {
	blends   []blendCall
	depths   []depthCall
	scissors []scissorCall
	stencils []stencilCall
	ops      int

	filters map[Tex][2]FilterParam
	mips    map[Tex]FilterParam
	wraps   map[Tex][2]WrapParam
}

func newMockGPU() *mockGPU {
	return &mockGPU{
		filters: make(map[Tex][2]FilterParam),
		mips:    make(map[Tex]FilterParam),
		wraps:   make(map[Tex][2]WrapParam),
	}
}

func (g *mockGPU) AlphaBlend(colorEq, alphaEq BlendEquation, srcColor, dstColor, srcAlpha, dstAlpha BlendFactor) {
	g.blends = append(g.blends, blendCall{colorEq, alphaEq, srcColor, dstColor, srcAlpha, dstAlpha})
}

func (g *mockGPU) DepthTest(enable bool, fn TestFunc, mask WriteMask) {
	g.depths = append(g.depths, depthCall{enable, fn, mask})
}

func (g *mockGPU) SetScissor(mode ScissorMode, left, top, right, bottom int) {
	g.scissors = append(g.scissors, scissorCall{mode, left, top, right, bottom})
}

func (g *mockGPU) StencilTest(enable bool, fn TestFunc, ref int, _, _ uint32) {
	g.stencils = append(g.stencils, stencilCall{enable, fn, ref})
}

func (g *mockGPU) StencilOp(fail, depthFail, pass StencilOp) {
	if fail == StencilKeep && depthFail == StencilKeep && pass == StencilKeep {
		g.ops++
	}
}

func (g *mockGPU) TexSetFilter(tex Tex, mag, minFilter FilterParam) {
	g.filters[tex] = [2]FilterParam{mag, minFilter}
}

func (g *mockGPU) TexSetFilterMipmap(tex Tex, filter FilterParam) { g.mips[tex] = filter }
func (g *mockGPU) TexSetWrap(tex Tex, s, t WrapParam)            { g.wraps[tex] = [2]WrapParam{s, t} }

func TestApplyBlendState(t *testing.T) {
	gpu := newMockGPU()
	b := New(gpu)

	b.ApplyBlendState(renderstate.ComputeBlendState(renderstate.BlendAlpha, renderstate.AlphaMultiply))
	want := blendCall{EquationAdd, EquationAdd, BlendSrcAlpha, BlendOneMinusSrcAlpha, BlendOne, BlendOneMinusSrcAlpha}
	if len(gpu.blends) != 1 || gpu.blends[0] != want {
		t.Fatalf("AlphaBlend calls = %+v, want [%+v]", gpu.blends, want)
	}

	b.ApplyBlendState(renderstate.DefaultBlendState())
	replace := blendCall{EquationAdd, EquationAdd, BlendOne, BlendZero, BlendOne, BlendZero}
	if gpu.blends[1] != replace {
		t.Errorf("disabled blend programmed %+v, want replace %+v", gpu.blends[1], replace)
	}
}

func TestDepthAndColorMaskShareRegister(t *testing.T) {
	gpu := newMockGPU()
	b := New(gpu)

	b.ApplyDepthState(renderstate.DepthState{Compare: renderstate.CompareLEqual, Write: true})
	if got := gpu.depths[0]; !got.enable || got.fn != TestLEqual || got.mask != WriteAll {
		t.Errorf("DepthTest = %+v, want enabled lequal all", got)
	}

	b.ApplyColorMask(renderstate.ColorMask{R: true, B: true})
	if got := gpu.depths[1]; got.mask != WriteRed|WriteBlue|WriteDepth {
		t.Errorf("mask after ApplyColorMask = %#x, want %#x", got.mask, WriteRed|WriteBlue|WriteDepth)
	}

	b.ApplyDepthState(renderstate.DefaultDepthState())
	if got := gpu.depths[2]; got.enable || got.fn != TestAlways || got.mask != WriteRed|WriteBlue {
		t.Errorf("DepthTest after default = %+v", got)
	}
}

func TestScissorRect(t *testing.T) {
	tests := []struct {
		name  string
		r     renderstate.Rect
		width int
		want  [4]int
	}{
		{"top full", renderstate.Rect{X: 0, Y: 0, W: 400, H: 240}, TopScreenWidth, [4]int{0, 0, 240, 400}},
		{"top corner", renderstate.Rect{X: 10, Y: 20, W: 30, H: 40}, TopScreenWidth, [4]int{180, 360, 220, 390}},
		{"bottom", renderstate.Rect{X: 0, Y: 0, W: 320, H: 240}, BottomScreenWidth, [4]int{0, 0, 240, 320}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, top, r, b := ScissorRect(tt.r, tt.width)
			if got := [4]int{l, top, r, b}; got != tt.want {
				t.Errorf("ScissorRect(%+v, %d) = %v, want %v", tt.r, tt.width, got, tt.want)
			}
		})
	}
}

func TestApplyScissor(t *testing.T) {
	gpu := newMockGPU()
	b := New(gpu)
	b.SetScreenWidth(BottomScreenWidth)

	b.ApplyScissor(renderstate.ScissorState{Rect: renderstate.Rect{X: 10, Y: 20, W: 30, H: 40}, Enabled: true})
	b.ApplyScissor(renderstate.ScissorState{})

	want := []scissorCall{
		{ScissorNormal, 180, 280, 220, 310},
		{ScissorDisable, 0, 0, 0, 0},
	}
	if len(gpu.scissors) != 2 || gpu.scissors[0] != want[0] || gpu.scissors[1] != want[1] {
		t.Errorf("SetScissor calls = %+v, want %+v", gpu.scissors, want)
	}
}

func TestApplyStencil(t *testing.T) {
	gpu := newMockGPU()
	b := New(gpu)

	b.ApplyStencil(renderstate.StencilState{Compare: renderstate.CompareGreater, Value: 3})
	b.ApplyStencil(renderstate.DefaultStencilState())

	if gpu.stencils[0] != (stencilCall{true, TestGreater, 3}) {
		t.Errorf("stencil = %+v", gpu.stencils[0])
	}
	if gpu.stencils[1].enable {
		t.Error("always compare must disable the stencil test")
	}
	if gpu.ops != 2 {
		t.Errorf("keep ops programmed %d times, want 2", gpu.ops)
	}
}

func TestApplyFilterUsesOwnMag(t *testing.T) {
	gpu := newMockGPU()
	b := New(gpu)

	f := texture.Filter{Min: texture.FilterNearest, Mag: texture.FilterLinear, Mipmap: texture.FilterNone, Anisotropy: 1}
	if err := b.ApplyFilter(1, f); err != nil {
		t.Fatal(err)
	}
	if got := gpu.filters[1]; got != [2]FilterParam{FilterLinear, FilterNearest} {
		t.Errorf("TexSetFilter(mag, min) = %v, want [linear nearest]", got)
	}
	if _, ok := gpu.mips[1]; ok {
		t.Error("mip filter programmed without mipmaps")
	}

	f.Mipmap = texture.FilterNearest
	if err := b.ApplyFilter(1, f); err != nil {
		t.Fatal(err)
	}
	if gpu.mips[1] != FilterNearest {
		t.Errorf("mip filter = %v, want nearest", gpu.mips[1])
	}

	if err := b.ApplyFilter(2, texture.Filter{Min: texture.FilterNone, Mag: texture.FilterLinear}); err == nil {
		t.Error("ApplyFilter accepted a none min filter")
	}
}

func TestApplyWrap(t *testing.T) {
	gpu := newMockGPU()
	b := New(gpu)

	if err := b.ApplyWrap(5, texture.Wrap{S: texture.WrapClampZero, T: texture.WrapMirroredRepeat}); err != nil {
		t.Fatal(err)
	}
	if got := gpu.wraps[5]; got != [2]WrapParam{WrapClampToBorder, WrapMirroredRepeat} {
		t.Errorf("TexSetWrap = %v", got)
	}
}

func TestTranslationsRejectUnknown(t *testing.T) {
	if _, ok := Factor(renderstate.BlendFactor(200)); ok {
		t.Error("Factor(200) succeeded")
	}
	if _, ok := Equation(renderstate.BlendOperation(200)); ok {
		t.Error("Equation(200) succeeded")
	}
	if _, ok := Test(renderstate.CompareMode(200)); ok {
		t.Error("Test(200) succeeded")
	}
	if _, ok := Filter(texture.FilterNone); ok {
		t.Error("Filter(none) succeeded")
	}
	if _, ok := MipFilter(texture.MipNone); ok {
		t.Error("MipFilter(none) succeeded")
	}
	if _, ok := Wrap(texture.WrapMode(9)); ok {
		t.Error("Wrap(9) succeeded")
	}
}
