// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Title string
	Width int
	Speed float64
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.toml")
	ts := testStruct{Title: "VellumEngine", Width: 800, Speed: 0.5}
	require.NoError(t, Save(ts, fn))

	var got testStruct
	require.NoError(t, Open(&got, fn))
	assert.Equal(t, ts, got)
}

func TestReadBytes(t *testing.T) {
	var got testStruct
	require.NoError(t, ReadBytes(&got, []byte("Title = \"a\"\nWidth = 3\n")))
	assert.Equal(t, testStruct{Title: "a", Width: 3}, got)

	assert.Error(t, ReadBytes(&got, []byte("Width = \"not a number\"")))
}
