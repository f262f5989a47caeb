package deko3d

import (
	"errors"
	"testing"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/texture"
)

type mockCmdBuf struct {
	blends        []BlendState
	enableMasks   []uint32
	writeMasks    []ColorMask
	depthStencils []DepthStencilState
	refs          []uint8
	scissors      []Scissor
}

func (c *mockCmdBuf) BindBlendState(s BlendState)               { c.blends = append(c.blends, s) }
func (c *mockCmdBuf) BindColorState(mask uint32)                { c.enableMasks = append(c.enableMasks, mask) }
func (c *mockCmdBuf) BindColorWriteState(mask ColorMask)        { c.writeMasks = append(c.writeMasks, mask) }
func (c *mockCmdBuf) BindDepthStencilState(s DepthStencilState) { c.depthStencils = append(c.depthStencils, s) }
func (c *mockCmdBuf) SetStencilReference(ref uint8)             { c.refs = append(c.refs, ref) }
func (c *mockCmdBuf) SetScissor(s Scissor)                      { c.scissors = append(c.scissors, s) }

type mockHeap struct {
	written map[Image]Sampler
	slots   int
}

func (h *mockHeap) WriteSampler(img Image, s Sampler) error {
	if _, ok := h.written[img]; !ok && len(h.written) >= h.slots {
		return errors.New("descriptor heap full")
	}
	h.written[img] = s
	return nil
}

func newBackend(slots int) (*Backend, *mockCmdBuf, *mockHeap) {
	cmd := &mockCmdBuf{}
	heap := &mockHeap{written: make(map[Image]Sampler), slots: slots}
	return New(cmd, heap), cmd, heap
}

func TestApplyBlendState(t *testing.T) {
	b, cmd, _ := newBackend(1)

	b.ApplyBlendState(renderstate.ComputeBlendState(renderstate.BlendSubtract, renderstate.AlphaPremultiplied))
	want := BlendState{
		ColorBlendOp: BlendOpRevSub, SrcColorBlendFactor: BlendFactorOne, DstColorBlendFactor: BlendFactorOne,
		AlphaBlendOp: BlendOpRevSub, SrcAlphaBlendFactor: BlendFactorZero, DstAlphaBlendFactor: BlendFactorOne,
	}
	if len(cmd.blends) != 1 || cmd.blends[0] != want {
		t.Errorf("BindBlendState = %+v, want %+v", cmd.blends, want)
	}

	b.ApplyBlendState(renderstate.DefaultBlendState())
	if len(cmd.enableMasks) != 2 || cmd.enableMasks[0] != 1 || cmd.enableMasks[1] != 0 {
		t.Errorf("blend enable masks = %v, want [1 0]", cmd.enableMasks)
	}
	if len(cmd.blends) != 1 {
		t.Error("disabled blending recorded a blend state")
	}
}

func TestDepthStencilMerged(t *testing.T) {
	b, cmd, _ := newBackend(1)

	b.ApplyDepthState(renderstate.DepthState{Compare: renderstate.CompareGreater, Write: true})
	b.ApplyStencil(renderstate.StencilState{Compare: renderstate.CompareEqual, Value: 7})

	last := cmd.depthStencils[len(cmd.depthStencils)-1]
	if !last.DepthTestEnable || !last.DepthWriteEnable || last.DepthCompareOp != CompareOpGreater {
		t.Errorf("depth part lost after stencil change: %+v", last)
	}
	if !last.StencilTestEnable || last.StencilCompareOp != CompareOpEqual || last.StencilPassOp != StencilOpKeep {
		t.Errorf("stencil part = %+v", last)
	}
	if len(cmd.refs) != 1 || cmd.refs[0] != 7 {
		t.Errorf("stencil reference = %v, want [7]", cmd.refs)
	}
}

func TestApplyColorMaskAndScissor(t *testing.T) {
	b, cmd, _ := newBackend(1)

	b.ApplyColorMask(renderstate.ColorMask{G: true, A: true})
	if cmd.writeMasks[0] != ColorMaskG|ColorMaskA {
		t.Errorf("write mask = %#x", cmd.writeMasks[0])
	}

	b.ApplyScissor(renderstate.ScissorState{Rect: renderstate.Rect{X: -5, Y: 10, W: 100, H: 50}, Enabled: true})
	b.SetFramebufferSize(1920, 1080)
	b.ApplyScissor(renderstate.ScissorState{})

	want := []Scissor{{0, 10, 100, 50}, {0, 0, 1920, 1080}}
	if len(cmd.scissors) != 2 || cmd.scissors[0] != want[0] || cmd.scissors[1] != want[1] {
		t.Errorf("scissors = %+v, want %+v", cmd.scissors, want)
	}
}

func TestSamplerDescriptors(t *testing.T) {
	b, _, heap := newBackend(1)

	f := texture.Filter{Min: texture.FilterLinear, Mag: texture.FilterNearest, Mipmap: texture.FilterNearest, Anisotropy: 4}
	if err := b.ApplyFilter(3, f); err != nil {
		t.Fatal(err)
	}
	if err := b.ApplyWrap(3, texture.Wrap{S: texture.WrapRepeat, T: texture.WrapClampZero, R: texture.WrapClamp}); err != nil {
		t.Fatal(err)
	}

	s := heap.written[3]
	if s.MinFilter != FilterLinear || s.MagFilter != FilterNearest || s.MipFilter != MipFilterNearest || s.MaxAnisotropy != 4 {
		t.Errorf("filter part of descriptor = %+v", s)
	}
	if s.WrapMode != [3]WrapMode{WrapModeRepeat, WrapModeClampToBorder, WrapModeClampToEdge} {
		t.Errorf("wrap part of descriptor = %v", s.WrapMode)
	}
}

func TestSamplerHeapExhausted(t *testing.T) {
	b, _, _ := newBackend(1)

	if err := b.ApplyFilter(1, texture.DefaultFilter()); err != nil {
		t.Fatal(err)
	}
	err := b.ApplyFilter(2, texture.DefaultFilter())
	if !errors.Is(err, love.ErrResourceExhausted) {
		t.Errorf("ApplyFilter on full heap error = %v, want ErrResourceExhausted", err)
	}
}

func TestTranslationTablesComplete(t *testing.T) {
	for _, name := range renderstate.BlendFactorNames() {
		f, _ := renderstate.BlendFactorByName(name)
		if _, ok := Factor(f); !ok {
			t.Errorf("Factor(%s) missing", name)
		}
	}
	for _, name := range renderstate.CompareModeNames() {
		c, _ := renderstate.CompareModeByName(name)
		if _, ok := Compare(c); !ok {
			t.Errorf("Compare(%s) missing", name)
		}
	}
	for _, name := range texture.WrapModeNames() {
		w, _ := texture.WrapModeByName(name)
		if _, ok := Wrap(w); !ok {
			t.Errorf("Wrap(%s) missing", name)
		}
	}
	if Mip(texture.MipNone) != MipFilterNone {
		t.Error("Mip(none) != MipFilterNone")
	}
}
