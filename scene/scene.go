// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides a flat list of drawable 2D entities and
// the world-space vertex buffer derived from them.
package scene

import (
	"fmt"
	"unsafe"

	"cogentcore.org/vellum/gpu"
	"cogentcore.org/vellum/math32"
	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex is one world-space vertex, laid out as two packed float32
// values that map to a vec2<f32> at shader location 0.
type Vertex = math32.Vector2

// VertexStride is the size of one [Vertex] in bytes.
const VertexStride = uint64(unsafe.Sizeof(Vertex{}))

// DefaultSpeed is the default horizontal speed of the first entity,
// in world units per second.
const DefaultSpeed = 0.5

// Entity is a drawable shape: local-space vertices plus a
// world-space offset. Entities are owned by a [Scene] and only
// change through [Scene.Update].
type Entity struct {
	// Vertices are the local-space positions, three per triangle.
	Vertices []math32.Vector2

	// Offset is the world-space translation added to every vertex.
	Offset math32.Vector2
}

// NewEntity returns a new entity with the given vertices at the given offset.
func NewEntity(offset math32.Vector2, vertices ...math32.Vector2) *Entity {
	return &Entity{Vertices: vertices, Offset: offset}
}

// WorldVertices returns the world-space positions of the entity.
func (en *Entity) WorldVertices() []Vertex {
	wv := make([]Vertex, len(en.Vertices))
	for i, v := range en.Vertices {
		wv[i] = v.Add(en.Offset)
	}
	return wv
}

// Scene is an ordered list of entities plus a cached GPU vertex buffer
// holding their world-space vertices. The buffer is only recomputed
// by [Scene.RebuildVertexBuffer].
type Scene struct {
	// Speed is the horizontal speed applied by [Scene.Update]
	// to the first entity, in world units per second.
	Speed float32

	entities []*Entity
	vertices []Vertex
	buffer   gpu.Buffer
	count    uint32
}

// New returns a new empty scene.
func New() *Scene {
	return &Scene{Speed: DefaultSpeed}
}

// Default returns a scene with a single triangle at the origin.
func Default() *Scene {
	sc := New()
	sc.Add(NewEntity(math32.Vec2(0, 0),
		math32.Vec2(0, 0.5),
		math32.Vec2(-0.5, -0.5),
		math32.Vec2(0.5, -0.5),
	))
	return sc
}

// Add appends the given entity to the scene.
func (sc *Scene) Add(en *Entity) *Scene {
	sc.entities = append(sc.entities, en)
	return sc
}

// Entities returns the entities in draw order.
func (sc *Scene) Entities() []*Entity { return sc.entities }

// Update advances the simulation by dt seconds, moving the first
// entity along +X at [Scene.Speed]. It returns whether any vertex
// position changed, in which case the vertex buffer is stale.
func (sc *Scene) Update(dt float64) bool {
	if len(sc.entities) == 0 {
		return false
	}
	dx := float32(dt) * sc.Speed
	if dx == 0 {
		return false
	}
	sc.entities[0].Offset.X += dx
	return true
}

// worldVertices returns the world-space vertices of all entities,
// in entity order.
func (sc *Scene) worldVertices() []Vertex {
	var n int
	for _, en := range sc.entities {
		n += len(en.Vertices)
	}
	wv := make([]Vertex, 0, n)
	for _, en := range sc.entities {
		wv = append(wv, en.WorldVertices()...)
	}
	return wv
}

// RebuildVertexBuffer recomputes the world-space vertices and
// uploads them to a new vertex buffer on the given device,
// releasing the previous one. With no vertices the buffer is dropped.
func (sc *Scene) RebuildVertexBuffer(dev gpu.Device) error {
	wv := sc.worldVertices()
	var nb gpu.Buffer
	if len(wv) > 0 {
		var err error
		nb, err = dev.CreateVertexBuffer("scene vertices", wgpu.ToBytes(wv))
		if err != nil {
			return fmt.Errorf("scene: creating vertex buffer of %d vertices: %w", len(wv), err)
		}
	}
	if sc.buffer != nil {
		sc.buffer.Release()
	}
	sc.buffer = nb
	sc.vertices = wv
	sc.count = uint32(len(wv))
	return nil
}

// VertexBuffer returns the vertex buffer from the last rebuild,
// or nil if there is none.
func (sc *Scene) VertexBuffer() gpu.Buffer { return sc.buffer }

// VertexCount returns the number of vertices in the vertex buffer
// from the last rebuild.
func (sc *Scene) VertexCount() uint32 { return sc.count }

// Vertices returns the world-space vertices uploaded by the last rebuild.
func (sc *Scene) Vertices() []Vertex { return sc.vertices }

// Release releases the vertex buffer.
func (sc *Scene) Release() {
	if sc.buffer != nil {
		sc.buffer.Release()
		sc.buffer = nil
	}
	sc.count = 0
	sc.vertices = nil
}
