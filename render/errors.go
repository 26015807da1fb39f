// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "cogentcore.org/vellum/base/errors"

// Errors returned by [Context.Initialize]. Each wraps its cause.
var (
	// ErrNoAdapterFound is returned when neither a compatible adapter
	// nor the fallback adapter could be obtained.
	ErrNoAdapterFound = errors.New("render: failed to find any suitable GPU adapter")

	// ErrSurfaceCreation is returned when the window surface cannot be created.
	ErrSurfaceCreation = errors.New("render: failed to create surface")

	// ErrDeviceRequestFailed is returned when the adapter refuses a device.
	ErrDeviceRequestFailed = errors.New("render: failed to request device")

	// ErrSurfaceUnsupported is returned when the surface reports
	// no formats or no alpha modes for the adapter.
	ErrSurfaceUnsupported = errors.New("render: surface is not supported by the adapter")

	// ErrPipelineCreationFailed is returned when the shader or
	// render pipeline cannot be created.
	ErrPipelineCreationFailed = errors.New("render: failed to create render pipeline")

	// ErrBufferCreationFailed is returned when the scene vertex buffer
	// cannot be created.
	ErrBufferCreationFailed = errors.New("render: failed to create vertex buffer")
)
