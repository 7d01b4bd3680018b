// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

package zenflake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeMask(t *testing.T) {
	g, err := NewGenerator(4)
	require.NoError(t, err)

	key := g.Generate()
	assert.Equal(t, int64(4), NodeOf(key))
}

func TestKeysAreIncreasing(t *testing.T) {
	g, err := NewGenerator(1)
	require.NoError(t, err)

	prev := g.Generate()
	for range 1000 {
		next := g.Generate()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestNodeIDOutOfRange(t *testing.T) {
	_, err := NewGenerator(nodeMax + 1)
	assert.Error(t, err)
	_, err = NewGenerator(-1)
	assert.Error(t, err)
}

func TestNodeIDFromEnvironment(t *testing.T) {
	first := NodeIDFromEnvironment()
	assert.GreaterOrEqual(t, first, int64(0))
	assert.LessOrEqual(t, first, nodeMax)
	assert.Equal(t, first, NodeIDFromEnvironment())
}

func TestNodeIDFromHostname(t *testing.T) {
	assert.Equal(t, int64(3), NodeIDFromHostname("zenvedtak-3"))
	assert.Equal(t, int64(0), NodeIDFromHostname("zenvedtak-0"))
	assert.Equal(t, int64(1025)&nodeMax, NodeIDFromHostname("zenvedtak-1025"))

	hashed := NodeIDFromHostname("laptop.local")
	assert.GreaterOrEqual(t, hashed, int64(0))
	assert.LessOrEqual(t, hashed, nodeMax)
	assert.Equal(t, hashed, NodeIDFromHostname("laptop.local"))
	assert.Equal(t, NodeIDFromHostname("api-gateway"), NodeIDFromHostname("api-gateway"))
}
