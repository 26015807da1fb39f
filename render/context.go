// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the graphics [Context], which owns the
// GPU device, queue, surface and pipeline, and draws the scene
// into the window once per frame.
package render

import (
	_ "embed"
	"fmt"
	"image/color"
	"log/slog"

	"cogentcore.org/vellum/base/errors"
	"cogentcore.org/vellum/gpu"
	"cogentcore.org/vellum/scene"
	"cogentcore.org/vellum/system"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed shaders/triangle.wgsl
var triangleWGSL string

// Options configure a [Context].
type Options struct {
	// PowerPreference selects the adapter.
	PowerPreference wgpu.PowerPreference

	// ClearColor is the background color. Nil means black.
	ClearColor color.Color
}

// FrameStats are cumulative frame counters of a [Context].
type FrameStats struct {
	Drawn   uint64
	Dropped uint64
}

// Context is the graphics context. It starts [Uninitialized] and
// becomes [Ready] after a successful [Context.Initialize]. While it
// is Uninitialized, [Context.Render] and [Context.Resize] do nothing
// and make no GPU calls. Nothing in it panics on missing resources.
type Context struct {
	driver gpu.Driver
	scene  *scene.Scene
	opts   Options
	clear  wgpu.Color
	stats  FrameStats

	// rd is nil while Uninitialized.
	rd *ready
}

// ready holds everything that exists in the [Ready] state.
// It is built completely before being stored in the [Context].
type ready struct {
	instance gpu.Instance
	surface  gpu.Surface
	adapter  gpu.Adapter
	info     gpu.AdapterInfo
	device   gpu.Device
	queue    gpu.Queue
	config   gpu.SurfaceConfig
	shader   gpu.ShaderModule
	pipeline gpu.RenderPipeline
}

// NewContext returns a new [Uninitialized] context that will use the
// given driver and draw the given scene. The scene stays owned by
// the caller; the context only reads its vertex buffer, and rebuilds
// it once during initialization.
func NewContext(driver gpu.Driver, sc *scene.Scene, opts Options) *Context {
	ctx := &Context{driver: driver, scene: sc, opts: opts}
	ctx.SetClearColor(opts.ClearColor)
	return ctx
}

// State returns the current state.
func (ctx *Context) State() States {
	if ctx.rd == nil {
		return Uninitialized
	}
	return Ready
}

// Config returns the current surface configuration, and whether
// the context is [Ready].
func (ctx *Context) Config() (gpu.SurfaceConfig, bool) {
	if ctx.rd == nil {
		return gpu.SurfaceConfig{}, false
	}
	return ctx.rd.config, true
}

// Device returns the device, or nil while [Uninitialized].
func (ctx *Context) Device() gpu.Device {
	if ctx.rd == nil {
		return nil
	}
	return ctx.rd.device
}

// AdapterInfo returns the chosen adapter, and whether
// the context is [Ready].
func (ctx *Context) AdapterInfo() (gpu.AdapterInfo, bool) {
	if ctx.rd == nil {
		return gpu.AdapterInfo{}, false
	}
	return ctx.rd.info, true
}

// Stats returns the frame counters.
func (ctx *Context) Stats() FrameStats { return ctx.stats }

// SetClearColor sets the background color used when rendering.
// Nil means black.
func (ctx *Context) SetClearColor(c color.Color) {
	if c == nil {
		c = color.Black
	}
	r, g, b, a := c.RGBA()
	ctx.clear = wgpu.Color{
		R: float64(r) / 0xffff,
		G: float64(g) / 0xffff,
		B: float64(b) / 0xffff,
		A: float64(a) / 0xffff,
	}
}

// ClearColor returns the background color.
func (ctx *Context) ClearColor() wgpu.Color { return ctx.clear }

// Initialize acquires the GPU objects for the given window and
// moves the context to [Ready]. It blocks until the adapter and
// device requests complete. If any step fails, everything acquired
// so far is released, the context stays [Uninitialized], and the
// returned error wraps one of the sentinel errors of this package.
// Calling it again once Ready does nothing.
func (ctx *Context) Initialize(win system.Window) error {
	if ctx.rd != nil {
		return nil
	}
	rd := &ready{}
	if err := ctx.initialize(rd, win); err != nil {
		rd.release()
		return err
	}
	ctx.rd = rd
	slog.Info("graphics context ready", "adapter", rd.info.Name, "format", rd.config.Format,
		"width", rd.config.Width, "height", rd.config.Height)
	return nil
}

func (ctx *Context) initialize(rd *ready, win system.Window) error {
	in, err := ctx.driver.CreateInstance()
	if err != nil {
		return fmt.Errorf("%w: creating instance: %w", ErrNoAdapterFound, err)
	}
	rd.instance = in

	slog.Info("Enumerating adapters:")
	for _, ai := range in.Adapters() {
		slog.Info("  adapter", "name", ai.Name, "backend", ai.BackendType, "type", ai.AdapterType)
	}

	sf, err := in.CreateSurface(win)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceCreation, err)
	}
	rd.surface = sf

	ad, err := in.RequestAdapter(&gpu.AdapterOptions{
		PowerPreference:   ctx.opts.PowerPreference,
		CompatibleSurface: sf,
	})
	if err != nil {
		slog.Warn("no adapter compatible with the surface, trying the fallback adapter", "err", err)
		ad, err = in.RequestAdapter(&gpu.AdapterOptions{
			PowerPreference:      ctx.opts.PowerPreference,
			ForceFallbackAdapter: true,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNoAdapterFound, err)
		}
	}
	rd.adapter = ad
	rd.info = ad.Info()
	slog.Info("using adapter", "name", rd.info.Name, "backend", rd.info.BackendType)

	dv, err := ad.RequestDevice("vellum device")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDeviceRequestFailed, err)
	}
	rd.device = dv
	rd.queue = dv.Queue()

	caps := sf.Capabilities(ad)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		return fmt.Errorf("%w: %d formats, %d alpha modes", ErrSurfaceUnsupported, len(caps.Formats), len(caps.AlphaModes))
	}
	width, height := win.Size()
	rd.config = gpu.SurfaceConfig{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       clampSize(width),
		Height:      clampSize(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   caps.AlphaModes[0],
	}
	rd.configure()

	sm, err := dv.CreateShaderModule("triangle", triangleWGSL)
	if err != nil {
		return fmt.Errorf("%w: shader: %w", ErrPipelineCreationFailed, err)
	}
	rd.shader = sm
	pl, err := dv.CreateRenderPipeline(&gpu.RenderPipelineDescriptor{
		Label:         "triangle",
		Module:        sm,
		VertexEntry:   "vs_main",
		FragmentEntry: "fs_main",
		ArrayStride:   scene.VertexStride,
		Attributes: []gpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
		},
		TargetFormat:   rd.config.Format,
		Topology:       wgpu.PrimitiveTopologyTriangleList,
		ColorWriteMask: wgpu.ColorWriteMaskAll,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPipelineCreationFailed, err)
	}
	rd.pipeline = pl

	if err := ctx.scene.RebuildVertexBuffer(dv); err != nil {
		return fmt.Errorf("%w: %w", ErrBufferCreationFailed, err)
	}
	return nil
}

// Resize records the new window size, clamping each dimension
// to at least 1, and reapplies the surface configuration. The stored
// configuration is the same for repeated identical sizes, and reapplying
// it also heals a surface that went out of date.
// It does nothing while [Uninitialized].
func (ctx *Context) Resize(width, height int) {
	rd := ctx.rd
	if rd == nil {
		return
	}
	rd.config.Width = clampSize(width)
	rd.config.Height = clampSize(height)
	rd.configure()
	slog.Debug("surface resized", "width", rd.config.Width, "height", rd.config.Height)
}

// Render draws one frame of the scene: clear to the background
// color, draw the scene vertex buffer with the pipeline, submit
// and present. Frames that cannot be drawn are dropped; a lost
// surface is reconfigured for the next frame. It does nothing
// while [Uninitialized].
func (ctx *Context) Render() FrameResults {
	rd := ctx.rd
	if rd == nil {
		return SkippedNotReady
	}
	res := ctx.render(rd)
	if res == Drawn {
		ctx.stats.Drawn++
	} else {
		ctx.stats.Dropped++
	}
	return res
}

func (ctx *Context) render(rd *ready) FrameResults {
	tex, err := rd.surface.CurrentTexture()
	if err != nil {
		if errors.Is(err, gpu.ErrSurfaceLost) {
			slog.Warn("surface lost, reconfiguring", "err", err)
			rd.configure()
			return SkippedSurfaceLost
		}
		slog.Warn("could not acquire surface texture", "err", err)
		return SkippedAcquireFailed
	}
	defer tex.Release()

	buf := ctx.scene.VertexBuffer()
	count := ctx.scene.VertexCount()
	if buf == nil || count == 0 {
		return SkippedNoGeometry
	}

	view, err := tex.CreateView()
	if errors.Log(err) != nil {
		return SkippedEncodeFailed
	}
	defer view.Release()

	enc, err := rd.device.CreateCommandEncoder("frame")
	if errors.Log(err) != nil {
		return SkippedEncodeFailed
	}
	defer enc.Release()

	rp := enc.BeginRenderPass(&gpu.RenderPassDescriptor{
		Label:      "scene",
		View:       view,
		ClearColor: ctx.clear,
	})
	rp.SetPipeline(rd.pipeline)
	rp.SetVertexBuffer(0, buf)
	rp.Draw(count, 1, 0, 0)
	err = rp.End()
	rp.Release() // must happen before Finish
	if errors.Log(err) != nil {
		return SkippedEncodeFailed
	}

	cmd, err := enc.Finish()
	if errors.Log(err) != nil {
		return SkippedEncodeFailed
	}
	defer cmd.Release()
	rd.queue.Submit(cmd)
	rd.surface.Present()
	return Drawn
}

// Release releases all GPU objects, for orderly shutdown.
// The scene vertex buffer stays owned by the scene.
func (ctx *Context) Release() {
	if ctx.rd == nil {
		return
	}
	ctx.rd.release()
	ctx.rd = nil
}

// configure applies the stored surface configuration.
func (rd *ready) configure() {
	rd.surface.Configure(rd.adapter, rd.device, &rd.config)
}

// release releases whatever has been acquired, in reverse order.
func (rd *ready) release() {
	if rd.pipeline != nil {
		rd.pipeline.Release()
	}
	if rd.shader != nil {
		rd.shader.Release()
	}
	if rd.queue != nil {
		rd.queue.Release()
	}
	if rd.device != nil {
		rd.device.Release()
	}
	if rd.adapter != nil {
		rd.adapter.Release()
	}
	if rd.surface != nil {
		rd.surface.Release()
	}
	if rd.instance != nil {
		rd.instance.Release()
	}
}

// clampSize clamps a window dimension to a valid surface dimension.
func clampSize(v int) uint32 {
	return uint32(max(v, 1))
}
