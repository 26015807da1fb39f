// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := New()
	assert.Equal(t, "VellumEngine", cfg.Title)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, 60.0, cfg.UpdatesPerSecond)
	assert.Equal(t, float32(0.5), cfg.Speed)
	assert.Equal(t, "#000000", cfg.ClearColor)
	assert.False(t, cfg.Watch)
	assert.NoError(t, cfg.Validate())
}

type nested struct {
	Name  string `default:"n"`
	Inner struct {
		Count uint8 `default:"7"`
		On    bool  `default:"true"`
	}
	Bad int `default:"seven"`
}

func TestSetFromDefaults(t *testing.T) {
	var n nested
	err := SetFromDefaults(&n)
	assert.Error(t, err)
	assert.Equal(t, "n", n.Name)
	assert.Equal(t, uint8(7), n.Inner.Count)
	assert.True(t, n.Inner.On)

	assert.Error(t, SetFromDefaults(n))
}

func TestOpenTOML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "vellum.toml")
	require.NoError(t, os.WriteFile(fn, []byte("title = \"Test\"\nwidth = 1024\nclear_color = \"#ff0000\"\n"), 0o644))
	cfg := New()
	require.NoError(t, Open(cfg, fn))
	assert.Equal(t, "Test", cfg.Title)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	c, err := cfg.Clear()
	require.NoError(t, err)
	r, g, b, a := c.RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestOpenYAML(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "vellum.yaml")
	require.NoError(t, os.WriteFile(fn, []byte("speed: 2\npower_preference: high-performance\nlog_level: debug\n"), 0o644))
	cfg := New()
	require.NoError(t, Open(cfg, fn))
	assert.Equal(t, float32(2), cfg.Speed)
	p, err := cfg.Power()
	require.NoError(t, err)
	assert.Equal(t, wgpu.PowerPreferenceHighPerformance, p)
	l, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
}

func TestOpenErrors(t *testing.T) {
	cfg := New()
	assert.Error(t, Open(cfg, "vellum.json"))
	assert.Error(t, Open(cfg, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "vellum.toml")
	cfg := New()
	cfg.Title = "Saved"
	cfg.Speed = 1.25
	require.NoError(t, Save(cfg, fn))
	got := New()
	require.NoError(t, Open(got, fn))
	assert.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	cfg := New()
	cfg.Width = 0
	cfg.UpdatesPerSecond = -1
	cfg.ClearColor = "blue-ish"
	cfg.PowerPreference = "turbo"
	cfg.LogLevel = "loud"
	err := cfg.Validate()
	require.Error(t, err)
	for _, s := range []string{"window size", "updates per second", "clear color", "power preference", "log level"} {
		assert.Contains(t, err.Error(), s)
	}
}

func TestClearFallback(t *testing.T) {
	cfg := New()
	cfg.ClearColor = "nope"
	c, err := cfg.Clear()
	assert.Error(t, err)
	assert.Equal(t, color.Black, c)
}

func TestClone(t *testing.T) {
	cfg := New()
	nc := cfg.Clone()
	assert.Equal(t, cfg, nc)
	nc.Title = "changed"
	assert.Equal(t, "VellumEngine", cfg.Title)
}
