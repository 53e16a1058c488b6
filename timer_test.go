package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallTimerGenerations(t *testing.T) {
	timer := newFallTimer(time.Millisecond)
	assert.False(t, timer.accept(tickMsg{gen: 0}))

	require.NotNil(t, timer.start())
	first := tickMsg{gen: timer.gen}
	assert.True(t, timer.accept(first))

	timer.stop()
	assert.False(t, timer.accept(first))

	timer.start()
	assert.False(t, timer.accept(first))
	assert.True(t, timer.accept(tickMsg{gen: timer.gen}))
}

func TestFallTimerFires(t *testing.T) {
	timer := newFallTimer(time.Millisecond)
	cmd := timer.start()

	msg := cmd()

	tick, ok := msg.(tickMsg)
	require.True(t, ok)
	assert.True(t, timer.accept(tick))
}
