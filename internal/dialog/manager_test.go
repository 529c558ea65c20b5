package dialog

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hksports/sportsbuddy/core/logger"
)

func TestMain(m *testing.M) {
	_ = logger.InitLogger(nil)
	os.Exit(m.Run())
}

func TestManagerLifecycle(t *testing.T) {
	mgr := NewManager()
	assert.False(t, mgr.InProgress(1))

	s, res := mgr.Start(1, "Alice", Prefill{Sport: "Running"})
	require.NotNil(t, s)
	require.NotEmpty(t, res.Replies)
	assert.Equal(t, StateName, s.State)
	assert.Equal(t, "Running", s.Sport)
	assert.True(t, mgr.InProgress(1))
	assert.False(t, mgr.InProgress(2))

	got, ok := mgr.Get(1)
	require.True(t, ok)
	assert.Same(t, s, got)

	mgr.Clear(1)
	assert.False(t, mgr.InProgress(1))
	_, ok = mgr.Get(1)
	assert.False(t, ok)
}

func TestStartReplacesExistingSession(t *testing.T) {
	mgr := NewManager()
	first, _ := mgr.Start(7, "Alice", Prefill{Sport: "Tennis"})
	first.Name = "Alice"

	second, _ := mgr.Start(7, "Alice", Prefill{})
	assert.NotSame(t, first, second)
	assert.Empty(t, second.Sport)
	assert.Equal(t, StateName, second.State)
}
