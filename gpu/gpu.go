// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu defines the boundary between the renderer and a
// WebGPU implementation: the small set of instance, adapter, device,
// surface and command objects that drawing a frame needs.
// Package wgpudrv implements it on top of the native WebGPU library,
// and package gputest provides a recording implementation for tests.
//
// The enum and value types of the WebGPU API are used directly.
package gpu

import (
	"errors"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrSurfaceLost is returned by [Surface.CurrentTexture] when the
// surface is lost or outdated and must be reconfigured before the
// next frame can be acquired.
var ErrSurfaceLost = errors.New("gpu: surface lost or outdated")

// Driver creates instances, which are the entry point to a
// WebGPU implementation.
type Driver interface {
	CreateInstance() (Instance, error)
}

// SurfaceSource is implemented by windows that can present GPU output.
type SurfaceSource interface {
	// SurfaceDescriptor returns the platform handles for the window.
	SurfaceDescriptor() *wgpu.SurfaceDescriptor
}

// AdapterInfo describes a physical adapter.
type AdapterInfo struct {
	Name        string
	Driver      string
	AdapterType wgpu.AdapterType
	BackendType wgpu.BackendType
}

// AdapterOptions selects an adapter in [Instance.RequestAdapter].
type AdapterOptions struct {
	PowerPreference wgpu.PowerPreference

	// CompatibleSurface, if non-nil, requires an adapter that can present to it.
	CompatibleSurface Surface

	// ForceFallbackAdapter requests a software adapter.
	ForceFallbackAdapter bool
}

// Instance is a WebGPU instance.
type Instance interface {
	// Adapters returns information on every adapter on every backend.
	Adapters() []AdapterInfo
	CreateSurface(src SurfaceSource) (Surface, error)
	RequestAdapter(opts *AdapterOptions) (Adapter, error)
	Release()
}

// Adapter is a physical device.
type Adapter interface {
	Info() AdapterInfo

	// RequestDevice requests a logical device with default
	// features and limits.
	RequestDevice(label string) (Device, error)
	Release()
}

// Device is a logical device, the factory for all other GPU objects.
type Device interface {
	Queue() Queue
	CreateShaderModule(label, wgsl string) (ShaderModule, error)
	CreateRenderPipeline(desc *RenderPipelineDescriptor) (RenderPipeline, error)

	// CreateVertexBuffer creates a vertex buffer initialized
	// with the given contents.
	CreateVertexBuffer(label string, contents []byte) (Buffer, error)
	CreateCommandEncoder(label string) (CommandEncoder, error)
	Release()
}

// Queue submits recorded commands to the device.
type Queue interface {
	Submit(cmds ...CommandBuffer)
	Release()
}

// Capabilities are the configurations a surface supports on an adapter,
// in order of preference.
type Capabilities struct {
	Formats      []wgpu.TextureFormat
	PresentModes []wgpu.PresentMode
	AlphaModes   []wgpu.CompositeAlphaMode
}

// SurfaceConfig is the presentation configuration of a surface.
type SurfaceConfig struct {
	Usage       wgpu.TextureUsage
	Format      wgpu.TextureFormat
	Width       uint32
	Height      uint32
	PresentMode wgpu.PresentMode
	AlphaMode   wgpu.CompositeAlphaMode
}

// Surface is a presentable window surface.
type Surface interface {
	Capabilities(a Adapter) Capabilities
	Configure(a Adapter, d Device, cfg *SurfaceConfig)

	// CurrentTexture acquires the next texture to render into.
	// It returns [ErrSurfaceLost] (possibly wrapped) when the
	// surface must be reconfigured.
	CurrentTexture() (SurfaceTexture, error)
	Present()
	Release()
}

// SurfaceTexture is a texture acquired from a [Surface] for one frame.
type SurfaceTexture interface {
	CreateView() (TextureView, error)
	Release()
}

// TextureView is a view onto a texture, usable as a render target.
type TextureView interface {
	Release()
}

// ShaderModule is a compiled shader.
type ShaderModule interface {
	Release()
}

// RenderPipeline is a compiled render pipeline.
type RenderPipeline interface {
	Release()
}

// Buffer is a GPU buffer.
type Buffer interface {
	// Size returns the size of the buffer in bytes.
	Size() uint64
	Release()
}

// CommandBuffer is a finished, submittable list of commands.
type CommandBuffer interface {
	Release()
}

// CommandEncoder records commands.
type CommandEncoder interface {
	BeginRenderPass(desc *RenderPassDescriptor) RenderPass
	Finish() (CommandBuffer, error)
	Release()
}

// RenderPassDescriptor describes a render pass with one color
// attachment that is cleared to ClearColor and stored.
type RenderPassDescriptor struct {
	Label      string
	View       TextureView
	ClearColor wgpu.Color
}

// RenderPass records drawing commands.
type RenderPass interface {
	SetPipeline(p RenderPipeline)
	SetVertexBuffer(slot uint32, b Buffer)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
	End() error
	Release()
}

// VertexAttribute is one attribute of a vertex buffer layout.
type VertexAttribute struct {
	Format         wgpu.VertexFormat
	Offset         uint64
	ShaderLocation uint32
}

// RenderPipelineDescriptor describes a render pipeline drawing
// a triangle list from one vertex buffer into a single color target,
// without depth, blending or multisampling.
type RenderPipelineDescriptor struct {
	Label          string
	Module         ShaderModule
	VertexEntry    string
	FragmentEntry  string
	ArrayStride    uint64
	Attributes     []VertexAttribute
	TargetFormat   wgpu.TextureFormat
	Topology       wgpu.PrimitiveTopology
	ColorWriteMask wgpu.ColorWriteMask
}
