// Copyright 2021-present ZenBPM Contributors
// (based on git commit history).
//
// ZenBPM project is available under two licenses:
//  - SPDX-License-Identifier: AGPL-3.0-or-later (See LICENSE-AGPL.md)
//  - Enterprise License (See LICENSE-ENTERPRISE.md)

// Package zenflake generates the int64 keys of decisions and transition records.
package zenflake

import (
	"fmt"
	"hash/adler32"
	"os"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
)

var (
	// NodeBits holds the number of bits to use for Node
	// Remember, you have a total 22 bits to share between Node/Step
	NodeBits uint8 = 10

	// StepBits holds the number of bits to use for Step
	// Remember, you have a total 22 bits to share between Node/Step
	StepBits uint8 = 12

	// internal values of bwmarrin/snowflake
	nodeMax   int64 = -1 ^ (-1 << NodeBits)
	nodeMask        = nodeMax << StepBits
	nodeShift       = StepBits
)

// Generator hands out unique, time ordered keys. It is safe for concurrent use.
type Generator struct {
	node *snowflake.Node
}

func NewGenerator(nodeID int64) (*Generator, error) {
	if nodeID < 0 || nodeID > nodeMax {
		return nil, fmt.Errorf("node id %d out of range [0, %d]", nodeID, nodeMax)
	}
	snowflake.NodeBits = NodeBits
	snowflake.StepBits = StepBits
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snowflake node %d: %w", nodeID, err)
	}
	return &Generator{node: node}, nil
}

// NodeIDFromEnvironment derives the node id from the host name, see NodeIDFromHostname
func NodeIDFromEnvironment() int64 {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = os.Getenv("HOSTNAME")
	}
	return NodeIDFromHostname(hostname)
}

// NodeIDFromHostname uses the ordinal of a stateful set pod ("zenvedtak-3" is node 3).
// Host names without an ordinal are hashed, two such hosts may share a node id.
func NodeIDFromHostname(hostname string) int64 {
	if i := strings.LastIndex(hostname, "-"); i >= 0 {
		if ordinal, err := strconv.ParseInt(hostname[i+1:], 10, 64); err == nil && ordinal >= 0 {
			return ordinal & nodeMax
		}
	}
	return int64(adler32.Checksum([]byte(hostname))) & nodeMax
}

func (g *Generator) Generate() int64 {
	return g.node.Generate().Int64()
}

// NodeOf returns the node that generated the key
func NodeOf(key int64) int64 {
	return (key & nodeMask) >> int64(nodeShift)
}
