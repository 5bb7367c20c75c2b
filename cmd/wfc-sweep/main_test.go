package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunReportsSummary(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), &out, &errOut, []string{"-runs", "6", "-size", "6", "-workers", "2"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Sweeping 6 seeds")
	assert.Contains(t, out.String(), "Runs 6")
	assert.Contains(t, out.String(), "Steps: mean")
}

func TestRunRejectsBadFlags(t *testing.T) {
	var out, errOut bytes.Buffer
	require.Error(t, run(context.Background(), &out, &errOut, []string{"-runs", "0"}))
	require.Error(t, run(context.Background(), &out, &errOut, []string{"-propagation", "bfs"}))
	require.NoError(t, run(context.Background(), &out, &errOut, []string{"-h"}))
}
