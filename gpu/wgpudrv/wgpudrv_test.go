// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wgpudrv

import (
	"errors"
	"testing"

	"cogentcore.org/vellum/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestAcquireError(t *testing.T) {
	// a validation error from the acquisition
	err := acquireError(nil, errors.New("wgpu.(*Surface).GetCurrentTexture(): Validation Error"))
	assert.ErrorIs(t, err, gpu.ErrSurfaceLost)

	// a lost or outdated surface: no error, no native texture
	assert.ErrorIs(t, acquireError(&wgpu.Texture{}, nil), gpu.ErrSurfaceLost)
	assert.ErrorIs(t, acquireError(nil, nil), gpu.ErrSurfaceLost)
}

func TestNullTexture(t *testing.T) {
	assert.True(t, nullTexture(nil))
	assert.True(t, nullTexture(&wgpu.Texture{}))
}

func TestAdapters(t *testing.T) {
	t.Skip("Need software GPU on CI")
	in, err := New().CreateInstance()
	assert.NoError(t, err)
	defer in.Release()
	ad, err := in.RequestAdapter(&gpu.AdapterOptions{ForceFallbackAdapter: true})
	assert.NoError(t, err)
	assert.NotEmpty(t, ad.Info().Name)
	ad.Release()
}

