// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"testing"

	"cogentcore.org/vellum/gpu"
	"cogentcore.org/vellum/gpu/gputest"
	"cogentcore.org/vellum/scene"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTest(w, h int) (*gputest.Driver, *scene.Scene, *Context, *gputest.Window) {
	dr := gputest.New()
	sc := scene.Default()
	ctx := NewContext(dr, sc, Options{PowerPreference: wgpu.PowerPreferenceLowPower})
	return dr, sc, ctx, &gputest.Window{Width: w, Height: h}
}

func newReady(t *testing.T) (*gputest.Driver, *scene.Scene, *Context) {
	dr, sc, ctx, win := newTest(800, 600)
	require.NoError(t, ctx.Initialize(win))
	dr.Reset()
	return dr, sc, ctx
}

func TestUninitializedDoesNothing(t *testing.T) {
	dr, _, ctx, _ := newTest(800, 600)
	assert.Equal(t, Uninitialized, ctx.State())
	assert.Equal(t, SkippedNotReady, ctx.Render())
	ctx.Resize(1024, 768)
	ctx.Resize(0, 0)
	assert.Empty(t, dr.Calls)
	_, ok := ctx.Config()
	assert.False(t, ok)
	assert.Nil(t, ctx.Device())
	assert.Equal(t, FrameStats{}, ctx.Stats())
}

func TestInitialize(t *testing.T) {
	dr, sc, ctx, win := newTest(800, 600)
	require.NoError(t, ctx.Initialize(win))
	assert.Equal(t, Ready, ctx.State())

	cfg, ok := ctx.Config()
	require.True(t, ok)
	assert.Equal(t, uint32(800), cfg.Width)
	assert.Equal(t, uint32(600), cfg.Height)
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, cfg.Format)
	assert.Equal(t, wgpu.PresentModeFifo, cfg.PresentMode)
	assert.Equal(t, wgpu.CompositeAlphaModeOpaque, cfg.AlphaMode)
	assert.Equal(t, wgpu.TextureUsageRenderAttachment, cfg.Usage)
	last, ok := dr.LastConfig()
	require.True(t, ok)
	assert.Equal(t, cfg, last)

	require.Len(t, dr.AdapterRequests, 1)
	assert.Equal(t, wgpu.PowerPreferenceLowPower, dr.AdapterRequests[0].PowerPreference)
	assert.NotNil(t, dr.AdapterRequests[0].CompatibleSurface)
	assert.False(t, dr.AdapterRequests[0].ForceFallbackAdapter)

	require.Len(t, dr.Pipelines, 1)
	pd := dr.Pipelines[0]
	assert.Equal(t, "vs_main", pd.VertexEntry)
	assert.Equal(t, "fs_main", pd.FragmentEntry)
	assert.Equal(t, uint64(8), pd.ArrayStride)
	assert.Equal(t, []gpu.VertexAttribute{{Format: wgpu.VertexFormatFloat32x2}}, pd.Attributes)
	assert.Equal(t, cfg.Format, pd.TargetFormat)
	assert.Equal(t, wgpu.PrimitiveTopologyTriangleList, pd.Topology)
	assert.Equal(t, wgpu.ColorWriteMaskAll, pd.ColorWriteMask)

	assert.NotNil(t, sc.VertexBuffer())
	assert.Equal(t, uint32(3), sc.VertexCount())
	info, ok := ctx.AdapterInfo()
	assert.True(t, ok)
	assert.Equal(t, "Test Adapter", info.Name)
	assert.NotNil(t, ctx.Device())
}

func TestInitializeTwice(t *testing.T) {
	dr, _, ctx := newReady(t)
	require.NoError(t, ctx.Initialize(&gputest.Window{Width: 1, Height: 1}))
	assert.Empty(t, dr.Calls)
	cfg, _ := ctx.Config()
	assert.Equal(t, uint32(800), cfg.Width)
}

func TestInitializeZeroSize(t *testing.T) {
	_, _, ctx, win := newTest(0, 0)
	require.NoError(t, ctx.Initialize(win))
	cfg, _ := ctx.Config()
	assert.Equal(t, uint32(1), cfg.Width)
	assert.Equal(t, uint32(1), cfg.Height)
}

func TestInitializeFallbackAdapter(t *testing.T) {
	dr, _, ctx, win := newTest(800, 600)
	dr.FailCompatibleAdapter = true
	require.NoError(t, ctx.Initialize(win))
	require.Len(t, dr.AdapterRequests, 2)
	assert.Nil(t, dr.AdapterRequests[1].CompatibleSurface)
	assert.True(t, dr.AdapterRequests[1].ForceFallbackAdapter)
	assert.Equal(t, Ready, ctx.State())
}

func TestInitializeFailures(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name  string
		setup func(dr *gputest.Driver)
		want  error
	}{
		{"instance", func(dr *gputest.Driver) { dr.FailInstance = boom }, ErrNoAdapterFound},
		{"surface", func(dr *gputest.Driver) { dr.FailSurface = boom }, ErrSurfaceCreation},
		{"adapter", func(dr *gputest.Driver) {
			dr.FailCompatibleAdapter = true
			dr.FailFallbackAdapter = true
		}, ErrNoAdapterFound},
		{"device", func(dr *gputest.Driver) { dr.FailDevice = boom }, ErrDeviceRequestFailed},
		{"formats", func(dr *gputest.Driver) { dr.Capabilities.Formats = nil }, ErrSurfaceUnsupported},
		{"alpha", func(dr *gputest.Driver) { dr.Capabilities.AlphaModes = nil }, ErrSurfaceUnsupported},
		{"shader", func(dr *gputest.Driver) { dr.FailShader = boom }, ErrPipelineCreationFailed},
		{"pipeline", func(dr *gputest.Driver) { dr.FailPipeline = boom }, ErrPipelineCreationFailed},
		{"buffer", func(dr *gputest.Driver) { dr.FailBuffer = boom }, ErrBufferCreationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dr, _, ctx, win := newTest(800, 600)
			tt.setup(dr)
			err := ctx.Initialize(win)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, Uninitialized, ctx.State())
			assert.Zero(t, dr.LiveTotal(), "everything acquired is released")

			dr.Reset()
			assert.Equal(t, SkippedNotReady, ctx.Render())
			assert.Empty(t, dr.Calls)
		})
	}
}

func TestResize(t *testing.T) {
	dr, _, ctx := newReady(t)

	ctx.Resize(1024, 768)
	cfg, _ := ctx.Config()
	assert.Equal(t, uint32(1024), cfg.Width)
	assert.Equal(t, uint32(768), cfg.Height)
	require.Len(t, dr.Calls, 1)

	// same size again stores the same config and reapplies it,
	// which heals a surface that went out of date
	ctx.Resize(1024, 768)
	assert.Equal(t, []string{"Configure(1024x768)", "Configure(1024x768)"}, dr.Calls)
	cfg2, _ := ctx.Config()
	assert.Equal(t, cfg, cfg2)
	last, _ := dr.LastConfig()
	assert.Equal(t, cfg, last)
}

func TestResizeClamps(t *testing.T) {
	_, _, ctx := newReady(t)
	ctx.Resize(0, 5)
	cfg, _ := ctx.Config()
	assert.Equal(t, uint32(1), cfg.Width)
	assert.Equal(t, uint32(5), cfg.Height)

	ctx.Resize(0, 0)
	cfg, _ = ctx.Config()
	assert.Equal(t, uint32(1), cfg.Width)
	assert.Equal(t, uint32(1), cfg.Height)

	ctx.Resize(-3, 2)
	cfg, _ = ctx.Config()
	assert.Equal(t, uint32(1), cfg.Width)
	assert.Equal(t, uint32(2), cfg.Height)
}

func TestRender(t *testing.T) {
	dr, sc, ctx := newReady(t)
	assert.Equal(t, Drawn, ctx.Render())

	require.Len(t, dr.Draws, 1)
	d := dr.Draws[0]
	assert.Equal(t, uint32(3), d.VertexCount)
	assert.Equal(t, uint32(1), d.InstanceCount)
	assert.Same(t, sc.VertexBuffer(), d.Buffer)
	assert.Equal(t, wgpu.Color{R: 0, G: 0, B: 0, A: 1}, d.ClearColor)
	assert.Equal(t, 1, dr.Submits)
	assert.Equal(t, 1, dr.Presents)
	assert.Equal(t, []string{"CurrentTexture", "CreateCommandEncoder", "BeginRenderPass", "SetPipeline",
		"SetVertexBuffer(0)", "Draw(3, 1)", "End", "Finish", "Submit(1)", "Present"}, dr.Calls)

	for _, kind := range []string{"SurfaceTexture", "TextureView", "CommandEncoder", "RenderPass", "CommandBuffer"} {
		assert.Zero(t, dr.Live(kind), kind)
	}
	assert.Equal(t, FrameStats{Drawn: 1}, ctx.Stats())
}

func TestRenderClearColor(t *testing.T) {
	dr, _, ctx := newReady(t)
	ctx.SetClearColor(color.RGBA{255, 0, 0, 255})
	assert.Equal(t, wgpu.Color{R: 1, A: 1}, ctx.ClearColor())
	ctx.Render()
	require.Len(t, dr.Draws, 1)
	assert.Equal(t, wgpu.Color{R: 1, A: 1}, dr.Draws[0].ClearColor)
}

func TestRenderSurfaceLost(t *testing.T) {
	dr, _, ctx := newReady(t)
	before, _ := ctx.Config()
	dr.AcquireErrors = []error{fmt.Errorf("%w: Outdated", gpu.ErrSurfaceLost)}

	assert.Equal(t, SkippedSurfaceLost, ctx.Render())
	assert.Equal(t, []string{"CurrentTexture", "Configure(800x600)"}, dr.Calls)
	last, _ := dr.LastConfig()
	assert.Equal(t, before, last)
	assert.Empty(t, dr.Draws)

	assert.Equal(t, Drawn, ctx.Render())
	assert.Equal(t, FrameStats{Drawn: 1, Dropped: 1}, ctx.Stats())
}

func TestRenderAcquireFailed(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(old) })

	dr, _, ctx := newReady(t)
	buf.Reset()
	dr.AcquireErrors = []error{errors.New("timeout")}
	assert.Equal(t, SkippedAcquireFailed, ctx.Render())
	assert.Equal(t, []string{"CurrentTexture"}, dr.Calls)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.NotContains(t, buf.String(), "level=ERROR")
	assert.Equal(t, Drawn, ctx.Render())
}

func TestRenderNoGeometry(t *testing.T) {
	dr, sc, ctx := newReady(t)
	sc.Release()
	assert.Equal(t, SkippedNoGeometry, ctx.Render())
	assert.Zero(t, dr.Live("SurfaceTexture"))
	assert.Zero(t, dr.Presents)
}

func TestRenderEncodeFailed(t *testing.T) {
	dr, _, ctx := newReady(t)
	dr.FailEncoder = errors.New("device lost")
	assert.Equal(t, SkippedEncodeFailed, ctx.Render())
	assert.Zero(t, dr.Live("SurfaceTexture"))
	assert.Zero(t, dr.Live("TextureView"))
	assert.Zero(t, dr.Submits)
}

func TestRenderEndFailed(t *testing.T) {
	dr, _, ctx := newReady(t)
	dr.FailEnd = errors.New("invalid pipeline")
	assert.Equal(t, SkippedEncodeFailed, ctx.Render())
	assert.Zero(t, dr.Live("RenderPass"))
	assert.Zero(t, dr.Live("CommandEncoder"))
	assert.Zero(t, dr.Live("SurfaceTexture"))
	assert.Zero(t, dr.Submits)
	assert.Zero(t, dr.Presents)

	dr.FailEnd = nil
	assert.Equal(t, Drawn, ctx.Render())
}

func TestRelease(t *testing.T) {
	dr, sc, ctx := newReady(t)
	ctx.Release()
	assert.Equal(t, Uninitialized, ctx.State())
	assert.Equal(t, 1, dr.LiveTotal(), "only the scene buffer is left")
	sc.Release()
	assert.Zero(t, dr.LiveTotal())
	ctx.Release()
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "Ready", Ready.String())
	assert.Equal(t, "Uninitialized", Uninitialized.String())
	assert.Equal(t, "SkippedSurfaceLost", SkippedSurfaceLost.String())
	assert.Equal(t, "FrameResults(?)", FrameResults(42).String())
}
