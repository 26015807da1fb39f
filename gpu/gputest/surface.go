// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gputest

import (
	"cogentcore.org/vellum/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// Surface is the recording [gpu.Surface].
type Surface struct {
	dr *Driver
}

func (sf *Surface) Capabilities(a gpu.Adapter) gpu.Capabilities {
	sf.dr.record("Capabilities")
	return sf.dr.Capabilities
}

func (sf *Surface) Configure(a gpu.Adapter, d gpu.Device, cfg *gpu.SurfaceConfig) {
	sf.dr.record("Configure(%dx%d)", cfg.Width, cfg.Height)
	sf.dr.Configs = append(sf.dr.Configs, *cfg)
}

func (sf *Surface) CurrentTexture() (gpu.SurfaceTexture, error) {
	sf.dr.record("CurrentTexture")
	if len(sf.dr.AcquireErrors) > 0 {
		err := sf.dr.AcquireErrors[0]
		sf.dr.AcquireErrors = sf.dr.AcquireErrors[1:]
		return nil, err
	}
	sf.dr.acquire("SurfaceTexture")
	return &texture{dr: sf.dr}, nil
}

func (sf *Surface) Present() {
	sf.dr.record("Present")
	sf.dr.Presents++
}

func (sf *Surface) Release() {
	sf.dr.record("Surface.Release")
	sf.dr.release("Surface")
}

// LastConfig returns the most recent surface configuration.
func (dr *Driver) LastConfig() (gpu.SurfaceConfig, bool) {
	if len(dr.Configs) == 0 {
		return gpu.SurfaceConfig{}, false
	}
	return dr.Configs[len(dr.Configs)-1], true
}

type texture struct {
	dr *Driver
}

func (tx *texture) CreateView() (gpu.TextureView, error) {
	tx.dr.acquire("TextureView")
	return &object{dr: tx.dr, kind: "TextureView"}, nil
}

func (tx *texture) Release() { tx.dr.release("SurfaceTexture") }

// Window is a fake window that can be given to code expecting
// a [gpu.SurfaceSource] with a size.
type Window struct {
	Width, Height int

	// Redraws counts RequestRedraw calls.
	Redraws int
}

func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return nil }

func (w *Window) Size() (width, height int) { return w.Width, w.Height }

func (w *Window) RequestRedraw() { w.Redraws++ }
