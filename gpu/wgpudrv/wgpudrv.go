// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wgpudrv implements the [gpu] driver interfaces on top of
// the native WebGPU library.
package wgpudrv

import (
	"fmt"
	"reflect"

	"cogentcore.org/vellum/base/errors"
	"cogentcore.org/vellum/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// Driver is the native WebGPU [gpu.Driver].
type Driver struct{}

// New returns a new native WebGPU driver.
func New() *Driver { return &Driver{} }

func (dr *Driver) CreateInstance() (gpu.Instance, error) {
	in := wgpu.CreateInstance(nil)
	if in == nil {
		return nil, errors.New("wgpudrv: could not create WebGPU instance")
	}
	return &instance{in: in}, nil
}

type instance struct {
	in *wgpu.Instance
}

func (it *instance) Adapters() []gpu.AdapterInfo {
	as := it.in.EnumerateAdapters(nil)
	infos := make([]gpu.AdapterInfo, len(as))
	for i, a := range as {
		infos[i] = adapterInfo(a)
		a.Release()
	}
	return infos
}

func (it *instance) CreateSurface(src gpu.SurfaceSource) (gpu.Surface, error) {
	desc := src.SurfaceDescriptor()
	if desc == nil {
		return nil, errors.New("wgpudrv: window has no surface descriptor")
	}
	sf := it.in.CreateSurface(desc)
	if sf == nil {
		return nil, errors.New("wgpudrv: could not create surface")
	}
	return &surface{sf: sf}, nil
}

func (it *instance) RequestAdapter(opts *gpu.AdapterOptions) (gpu.Adapter, error) {
	wo := &wgpu.RequestAdapterOptions{
		PowerPreference:      opts.PowerPreference,
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
	}
	if sf, ok := opts.CompatibleSurface.(*surface); ok {
		wo.CompatibleSurface = sf.sf
	}
	a, err := it.in.RequestAdapter(wo)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.New("wgpudrv: no adapter returned")
	}
	return &adapter{a: a}, nil
}

func (it *instance) Release() { it.in.Release() }

func adapterInfo(a *wgpu.Adapter) gpu.AdapterInfo {
	info := a.GetInfo()
	return gpu.AdapterInfo{
		Name:        info.Name,
		Driver:      info.DriverDescription,
		AdapterType: info.AdapterType,
		BackendType: info.BackendType,
	}
}

type adapter struct {
	a *wgpu.Adapter
}

func (ad *adapter) Info() gpu.AdapterInfo { return adapterInfo(ad.a) }

func (ad *adapter) RequestDevice(label string) (gpu.Device, error) {
	d, err := ad.a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: label,
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return nil, err
	}
	return &device{d: d}, nil
}

func (ad *adapter) Release() { ad.a.Release() }

// surface wraps a [wgpu.Surface].
type surface struct {
	sf *wgpu.Surface
}

func (sf *surface) Capabilities(a gpu.Adapter) gpu.Capabilities {
	caps := sf.sf.GetCapabilities(a.(*adapter).a)
	return gpu.Capabilities{
		Formats:      caps.Formats,
		PresentModes: caps.PresentModes,
		AlphaModes:   caps.AlphaModes,
	}
}

func (sf *surface) Configure(a gpu.Adapter, d gpu.Device, cfg *gpu.SurfaceConfig) {
	sf.sf.Configure(a.(*adapter).a, d.(*device).d, &wgpu.SurfaceConfiguration{
		Usage:       cfg.Usage,
		Format:      cfg.Format,
		Width:       cfg.Width,
		Height:      cfg.Height,
		PresentMode: cfg.PresentMode,
		AlphaMode:   cfg.AlphaMode,
	})
}

func (sf *surface) CurrentTexture() (gpu.SurfaceTexture, error) {
	tx, err := sf.sf.GetCurrentTexture()
	if err := acquireError(tx, err); err != nil {
		return nil, err
	}
	return &texture{tx: tx}, nil
}

// acquireError returns the error for a surface texture acquisition,
// wrapping [gpu.ErrSurfaceLost] so that the caller reconfigures.
// The binding does not report the surface status: a Lost or Outdated
// surface comes back as a texture without a native handle and no error,
// and other failures only as validation errors, so all of these count
// as a surface to reconfigure.
func acquireError(tx *wgpu.Texture, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %w", gpu.ErrSurfaceLost, err)
	}
	if nullTexture(tx) {
		return fmt.Errorf("%w: no surface texture", gpu.ErrSurfaceLost)
	}
	return nil
}

// nullTexture reports whether tx has no native texture handle.
func nullTexture(tx *wgpu.Texture) bool {
	if tx == nil {
		return true
	}
	ref := reflect.ValueOf(tx).Elem().FieldByName("ref")
	if !ref.IsValid() {
		return false
	}
	switch ref.Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return ref.IsNil()
	case reflect.Uintptr:
		return ref.Uint() == 0
	}
	return false
}

func (sf *surface) Present() { sf.sf.Present() }

func (sf *surface) Release() { sf.sf.Release() }

type texture struct {
	tx *wgpu.Texture
}

func (tx *texture) CreateView() (gpu.TextureView, error) {
	v, err := tx.tx.CreateView(nil)
	if err != nil {
		return nil, err
	}
	return &textureView{v: v}, nil
}

func (tx *texture) Release() { tx.tx.Release() }

type textureView struct {
	v *wgpu.TextureView
}

func (tv *textureView) Release() { tv.v.Release() }
