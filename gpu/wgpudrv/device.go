// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wgpudrv

import (
	"cogentcore.org/vellum/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

type device struct {
	d *wgpu.Device
}

func (dv *device) Queue() gpu.Queue { return &queue{q: dv.d.GetQueue()} }

func (dv *device) CreateShaderModule(label, wgsl string) (gpu.ShaderModule, error) {
	sm, err := dv.d.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: wgsl,
		},
	})
	if err != nil {
		return nil, err
	}
	return &shaderModule{sm: sm}, nil
}

func (dv *device) CreateRenderPipeline(desc *gpu.RenderPipelineDescriptor) (gpu.RenderPipeline, error) {
	layout, err := dv.d.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: desc.Label,
	})
	if err != nil {
		return nil, err
	}
	defer layout.Release()

	attrs := make([]wgpu.VertexAttribute, len(desc.Attributes))
	for i, at := range desc.Attributes {
		attrs[i] = wgpu.VertexAttribute{
			Format:         at.Format,
			Offset:         at.Offset,
			ShaderLocation: at.ShaderLocation,
		}
	}
	sm := desc.Module.(*shaderModule).sm
	pl, err := dv.d.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  desc.Label,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     sm,
			EntryPoint: desc.VertexEntry,
			Buffers: []wgpu.VertexBufferLayout{{
				ArrayStride: desc.ArrayStride,
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes:  attrs,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  desc.Topology,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &wgpu.FragmentState{
			Module:     sm,
			EntryPoint: desc.FragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    desc.TargetFormat,
				WriteMask: desc.ColorWriteMask,
			}},
		},
	})
	if err != nil {
		return nil, err
	}
	return &renderPipeline{pl: pl}, nil
}

func (dv *device) CreateVertexBuffer(label string, contents []byte) (gpu.Buffer, error) {
	b, err := dv.d.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: contents,
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, err
	}
	return &buffer{b: b, size: uint64(len(contents))}, nil
}

func (dv *device) CreateCommandEncoder(label string) (gpu.CommandEncoder, error) {
	ce, err := dv.d.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: label,
	})
	if err != nil {
		return nil, err
	}
	return &commandEncoder{ce: ce}, nil
}

func (dv *device) Release() { dv.d.Release() }

type queue struct {
	q *wgpu.Queue
}

func (qu *queue) Submit(cmds ...gpu.CommandBuffer) {
	wc := make([]*wgpu.CommandBuffer, len(cmds))
	for i, c := range cmds {
		wc[i] = c.(*commandBuffer).cb
	}
	qu.q.Submit(wc...)
}

func (qu *queue) Release() { qu.q.Release() }

type shaderModule struct {
	sm *wgpu.ShaderModule
}

func (sm *shaderModule) Release() { sm.sm.Release() }

type renderPipeline struct {
	pl *wgpu.RenderPipeline
}

func (pl *renderPipeline) Release() { pl.pl.Release() }

type buffer struct {
	b    *wgpu.Buffer
	size uint64
}

func (bf *buffer) Size() uint64 { return bf.size }

func (bf *buffer) Release() { bf.b.Release() }

type commandBuffer struct {
	cb *wgpu.CommandBuffer
}

func (cb *commandBuffer) Release() { cb.cb.Release() }

type commandEncoder struct {
	ce *wgpu.CommandEncoder
}

func (ce *commandEncoder) BeginRenderPass(desc *gpu.RenderPassDescriptor) gpu.RenderPass {
	rp := ce.ce.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: desc.Label,
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       desc.View.(*textureView).v,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: desc.ClearColor,
		}},
	})
	return &renderPass{rp: rp}
}

func (ce *commandEncoder) Finish() (gpu.CommandBuffer, error) {
	cb, err := ce.ce.Finish(nil)
	if err != nil {
		return nil, err
	}
	return &commandBuffer{cb: cb}, nil
}

func (ce *commandEncoder) Release() { ce.ce.Release() }

type renderPass struct {
	rp *wgpu.RenderPassEncoder
}

func (rp *renderPass) SetPipeline(p gpu.RenderPipeline) {
	rp.rp.SetPipeline(p.(*renderPipeline).pl)
}

func (rp *renderPass) SetVertexBuffer(slot uint32, b gpu.Buffer) {
	rp.rp.SetVertexBuffer(slot, b.(*buffer).b, 0, wgpu.WholeSize)
}

func (rp *renderPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	rp.rp.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

func (rp *renderPass) End() error { return rp.rp.End() }

func (rp *renderPass) Release() { rp.rp.Release() }
