package gopsutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe_AvailableMemory(t *testing.T) {
	probe := NewProbe()

	available, err := probe.AvailableMemory(context.Background())

	require.NoError(t, err)
	assert.Greater(t, available, uint64(0))
}
