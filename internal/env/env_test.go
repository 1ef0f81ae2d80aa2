package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetDuration(t *testing.T) {
	t.Run("parses a set value", func(t *testing.T) {
		t.Setenv("T_TIMEOUT", "250ms")
		assert.Equal(t, 250*time.Millisecond, GetDuration("T_TIMEOUT", time.Second))
	})

	t.Run("falls back when unset or malformed", func(t *testing.T) {
		assert.Equal(t, time.Second, GetDuration("T_UNSET", time.Second))
		t.Setenv("T_TIMEOUT", "soon")
		assert.Equal(t, time.Second, GetDuration("T_TIMEOUT", time.Second))
	})
}

func TestGetBool(t *testing.T) {
	t.Setenv("T_FLAG", "false")
	assert.False(t, GetBool("T_FLAG", true))
	assert.True(t, GetBool("T_FLAG_UNSET", true))
}
