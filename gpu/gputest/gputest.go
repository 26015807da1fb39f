// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides an in-memory [gpu.Driver] that records
// every call made through it, for testing code that drives the GPU
// without needing a GPU.
package gputest

import (
	"errors"
	"fmt"
	"sync"

	"cogentcore.org/vellum/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// DrawCall is one recorded draw.
type DrawCall struct {
	VertexCount   uint32
	InstanceCount uint32
	Buffer        *Buffer
	ClearColor    wgpu.Color
}

// Driver is a recording [gpu.Driver]. Its exported fields configure
// the behavior of the objects it creates, and record what they did.
// The zero value is not usable; use [New].
type Driver struct {
	mu sync.Mutex

	// AdapterInfos are returned by Instance.Adapters, and the first
	// one is the Info of every requested adapter.
	AdapterInfos []gpu.AdapterInfo

	// Capabilities are returned by Surface.Capabilities.
	Capabilities gpu.Capabilities

	// FailInstance, if set, is returned by CreateInstance.
	FailInstance error

	// FailSurface, if set, is returned by CreateSurface.
	FailSurface error

	// FailCompatibleAdapter fails adapter requests that name a compatible surface.
	FailCompatibleAdapter bool

	// FailFallbackAdapter fails adapter requests that force the fallback adapter.
	FailFallbackAdapter bool

	// FailDevice, if set, is returned by RequestDevice.
	FailDevice error

	// FailShader, if set, is returned by CreateShaderModule.
	FailShader error

	// FailPipeline, if set, is returned by CreateRenderPipeline.
	FailPipeline error

	// FailBuffer, if set, is returned by CreateVertexBuffer.
	FailBuffer error

	// FailEncoder, if set, is returned by CreateCommandEncoder.
	FailEncoder error

	// FailEnd, if set, is returned by RenderPass.End.
	FailEnd error

	// AcquireErrors are returned in order by successive
	// Surface.CurrentTexture calls, before it succeeds again.
	AcquireErrors []error

	// Calls is the ordered log of every call made through the driver.
	Calls []string

	// AdapterRequests records every adapter request.
	AdapterRequests []gpu.AdapterOptions

	// Configs records every surface configuration.
	Configs []gpu.SurfaceConfig

	// Pipelines records every render pipeline descriptor.
	Pipelines []gpu.RenderPipelineDescriptor

	// Buffers records every vertex buffer created.
	Buffers []*Buffer

	// Draws records every draw call.
	Draws []DrawCall

	// Submits is the number of queue submissions.
	Submits int

	// Presents is the number of surface presentations.
	Presents int

	live map[string]int
}

// ErrAdapter is returned by failed adapter requests.
var ErrAdapter = errors.New("gputest: no adapter")

// New returns a new recording driver with one Vulkan adapter and
// a surface supporting one format and one alpha mode.
func New() *Driver {
	return &Driver{
		AdapterInfos: []gpu.AdapterInfo{{
			Name:        "Test Adapter",
			Driver:      "gputest",
			AdapterType: wgpu.AdapterTypeIntegratedGPU,
			BackendType: wgpu.BackendTypeVulkan,
		}},
		Capabilities: gpu.Capabilities{
			Formats:      []wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatRGBA8Unorm},
			PresentModes: []wgpu.PresentMode{wgpu.PresentModeFifo},
			AlphaModes:   []wgpu.CompositeAlphaMode{wgpu.CompositeAlphaModeOpaque},
		},
		live: map[string]int{},
	}
}

func (dr *Driver) record(format string, args ...any) {
	dr.mu.Lock()
	defer dr.mu.Unlock()
	dr.Calls = append(dr.Calls, fmt.Sprintf(format, args...))
}

func (dr *Driver) acquire(kind string) {
	dr.mu.Lock()
	defer dr.mu.Unlock()
	dr.live[kind]++
}

func (dr *Driver) release(kind string) {
	dr.mu.Lock()
	defer dr.mu.Unlock()
	dr.live[kind]--
}

// Live returns the number of objects of the given kind
// (for example "Device" or "Buffer") that are not yet released.
func (dr *Driver) Live(kind string) int {
	dr.mu.Lock()
	defer dr.mu.Unlock()
	return dr.live[kind]
}

// LiveTotal returns the number of objects of any kind not yet released.
func (dr *Driver) LiveTotal() int {
	dr.mu.Lock()
	defer dr.mu.Unlock()
	n := 0
	for _, c := range dr.live {
		n += c
	}
	return n
}

// Reset clears the recorded calls, keeping the configuration.
func (dr *Driver) Reset() {
	dr.mu.Lock()
	defer dr.mu.Unlock()
	dr.Calls = nil
	dr.Draws = nil
	dr.Submits = 0
	dr.Presents = 0
}

func (dr *Driver) CreateInstance() (gpu.Instance, error) {
	dr.record("CreateInstance")
	if dr.FailInstance != nil {
		return nil, dr.FailInstance
	}
	dr.acquire("Instance")
	return &Instance{dr: dr}, nil
}

// Instance is the recording [gpu.Instance].
type Instance struct {
	dr *Driver
}

func (in *Instance) Adapters() []gpu.AdapterInfo {
	in.dr.record("Adapters")
	return in.dr.AdapterInfos
}

func (in *Instance) CreateSurface(src gpu.SurfaceSource) (gpu.Surface, error) {
	in.dr.record("CreateSurface")
	if in.dr.FailSurface != nil {
		return nil, in.dr.FailSurface
	}
	in.dr.acquire("Surface")
	return &Surface{dr: in.dr}, nil
}

func (in *Instance) RequestAdapter(opts *gpu.AdapterOptions) (gpu.Adapter, error) {
	dr := in.dr
	dr.record("RequestAdapter(power=%v, compatible=%v, fallback=%v)",
		opts.PowerPreference, opts.CompatibleSurface != nil, opts.ForceFallbackAdapter)
	dr.AdapterRequests = append(dr.AdapterRequests, *opts)
	if opts.CompatibleSurface != nil && dr.FailCompatibleAdapter {
		return nil, ErrAdapter
	}
	if opts.ForceFallbackAdapter && dr.FailFallbackAdapter {
		return nil, ErrAdapter
	}
	dr.acquire("Adapter")
	return &Adapter{dr: dr}, nil
}

func (in *Instance) Release() {
	in.dr.record("Instance.Release")
	in.dr.release("Instance")
}

// Adapter is the recording [gpu.Adapter].
type Adapter struct {
	dr *Driver
}

func (ad *Adapter) Info() gpu.AdapterInfo {
	if len(ad.dr.AdapterInfos) == 0 {
		return gpu.AdapterInfo{}
	}
	return ad.dr.AdapterInfos[0]
}

func (ad *Adapter) RequestDevice(label string) (gpu.Device, error) {
	ad.dr.record("RequestDevice(%s)", label)
	if ad.dr.FailDevice != nil {
		return nil, ad.dr.FailDevice
	}
	ad.dr.acquire("Device")
	return &Device{dr: ad.dr}, nil
}

func (ad *Adapter) Release() {
	ad.dr.record("Adapter.Release")
	ad.dr.release("Adapter")
}
