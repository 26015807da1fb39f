// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

// States are the lifecycle states of a [Context].
type States int32

const (
	// Uninitialized is the state before [Context.Initialize] succeeds.
	// No GPU objects exist, and rendering and resizing do nothing.
	Uninitialized States = iota

	// Ready is the state in which the device, queue, surface,
	// surface configuration and pipeline all exist.
	Ready
)

func (st States) String() string {
	switch st {
	case Uninitialized:
		return "Uninitialized"
	case Ready:
		return "Ready"
	}
	return "States(?)"
}

// FrameResults report what [Context.Render] did with a frame.
type FrameResults int32

const (
	// Drawn is a frame that was drawn and presented.
	Drawn FrameResults = iota

	// SkippedNotReady is a frame skipped because the context is
	// not yet initialized.
	SkippedNotReady

	// SkippedSurfaceLost is a frame dropped because the surface was
	// lost or outdated; the surface has been reconfigured.
	SkippedSurfaceLost

	// SkippedAcquireFailed is a frame dropped because the next
	// surface texture could not be acquired.
	SkippedAcquireFailed

	// SkippedNoGeometry is a frame dropped because the scene
	// has no vertex buffer.
	SkippedNoGeometry

	// SkippedEncodeFailed is a frame dropped because its commands
	// could not be recorded.
	SkippedEncodeFailed
)

var frameResultNames = [...]string{
	Drawn:                "Drawn",
	SkippedNotReady:      "SkippedNotReady",
	SkippedSurfaceLost:   "SkippedSurfaceLost",
	SkippedAcquireFailed: "SkippedAcquireFailed",
	SkippedNoGeometry:    "SkippedNoGeometry",
	SkippedEncodeFailed:  "SkippedEncodeFailed",
}

func (fr FrameResults) String() string {
	if fr < 0 || int(fr) >= len(frameResultNames) {
		return "FrameResults(?)"
	}
	return frameResultNames[fr]
}
