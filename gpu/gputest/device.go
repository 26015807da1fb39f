// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gputest

import (
	"cogentcore.org/vellum/gpu"
)

// Device is the recording [gpu.Device].
type Device struct {
	dr *Driver
}

func (dv *Device) Queue() gpu.Queue {
	dv.dr.acquire("Queue")
	return &Queue{dr: dv.dr}
}

func (dv *Device) CreateShaderModule(label, wgsl string) (gpu.ShaderModule, error) {
	dv.dr.record("CreateShaderModule(%s)", label)
	if dv.dr.FailShader != nil {
		return nil, dv.dr.FailShader
	}
	dv.dr.acquire("ShaderModule")
	return &object{dr: dv.dr, kind: "ShaderModule"}, nil
}

func (dv *Device) CreateRenderPipeline(desc *gpu.RenderPipelineDescriptor) (gpu.RenderPipeline, error) {
	dv.dr.record("CreateRenderPipeline(%s)", desc.Label)
	if dv.dr.FailPipeline != nil {
		return nil, dv.dr.FailPipeline
	}
	dv.dr.Pipelines = append(dv.dr.Pipelines, *desc)
	dv.dr.acquire("RenderPipeline")
	return &object{dr: dv.dr, kind: "RenderPipeline"}, nil
}

func (dv *Device) CreateVertexBuffer(label string, contents []byte) (gpu.Buffer, error) {
	dv.dr.record("CreateVertexBuffer(%s, %d)", label, len(contents))
	if dv.dr.FailBuffer != nil {
		return nil, dv.dr.FailBuffer
	}
	b := &Buffer{dr: dv.dr, Contents: append([]byte(nil), contents...)}
	dv.dr.Buffers = append(dv.dr.Buffers, b)
	dv.dr.acquire("Buffer")
	return b, nil
}

func (dv *Device) CreateCommandEncoder(label string) (gpu.CommandEncoder, error) {
	dv.dr.record("CreateCommandEncoder")
	if dv.dr.FailEncoder != nil {
		return nil, dv.dr.FailEncoder
	}
	dv.dr.acquire("CommandEncoder")
	return &CommandEncoder{dr: dv.dr}, nil
}

func (dv *Device) Release() {
	dv.dr.record("Device.Release")
	dv.dr.release("Device")
}

// Queue is the recording [gpu.Queue].
type Queue struct {
	dr *Driver
}

func (qu *Queue) Submit(cmds ...gpu.CommandBuffer) {
	qu.dr.record("Submit(%d)", len(cmds))
	qu.dr.Submits++
}

func (qu *Queue) Release() { qu.dr.release("Queue") }

// Buffer is the recording [gpu.Buffer].
type Buffer struct {
	dr *Driver

	// Contents are the bytes the buffer was created with.
	Contents []byte

	// Released is whether Release has been called.
	Released bool
}

func (bf *Buffer) Size() uint64 { return uint64(len(bf.Contents)) }

func (bf *Buffer) Release() {
	if bf.Released {
		return
	}
	bf.Released = true
	bf.dr.release("Buffer")
}

// object is a recording GPU object with nothing to do but be released.
type object struct {
	dr   *Driver
	kind string
}

func (ob *object) Release() { ob.dr.release(ob.kind) }

// CommandEncoder is the recording [gpu.CommandEncoder].
type CommandEncoder struct {
	dr *Driver
}

func (ce *CommandEncoder) BeginRenderPass(desc *gpu.RenderPassDescriptor) gpu.RenderPass {
	ce.dr.record("BeginRenderPass")
	ce.dr.acquire("RenderPass")
	return &RenderPass{dr: ce.dr, clear: desc}
}

func (ce *CommandEncoder) Finish() (gpu.CommandBuffer, error) {
	ce.dr.record("Finish")
	ce.dr.acquire("CommandBuffer")
	return &object{dr: ce.dr, kind: "CommandBuffer"}, nil
}

func (ce *CommandEncoder) Release() { ce.dr.release("CommandEncoder") }

// RenderPass is the recording [gpu.RenderPass].
type RenderPass struct {
	dr     *Driver
	clear  *gpu.RenderPassDescriptor
	buffer *Buffer
}

func (rp *RenderPass) SetPipeline(p gpu.RenderPipeline) {
	rp.dr.record("SetPipeline")
}

func (rp *RenderPass) SetVertexBuffer(slot uint32, b gpu.Buffer) {
	rp.dr.record("SetVertexBuffer(%d)", slot)
	rp.buffer, _ = b.(*Buffer)
}

func (rp *RenderPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	rp.dr.record("Draw(%d, %d)", vertexCount, instanceCount)
	rp.dr.Draws = append(rp.dr.Draws, DrawCall{
		VertexCount:   vertexCount,
		InstanceCount: instanceCount,
		Buffer:        rp.buffer,
		ClearColor:    rp.clear.ClearColor,
	})
}

func (rp *RenderPass) End() error {
	rp.dr.record("End")
	return rp.dr.FailEnd
}

func (rp *RenderPass) Release() { rp.dr.release("RenderPass") }
