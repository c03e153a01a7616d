//go:build unit

package patch_test

import (
	"testing"

	"rental-marketplace/internal/pkg/patch"
	"rental-marketplace/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "new", patch.Coalesce(ptr.Of("new"), "old"))
	assert.Equal(t, "old", patch.Coalesce(nil, "old"))
	assert.Equal(t, 0, patch.Coalesce(ptr.Of(0), 3))
}

func TestCoalesceSlice(t *testing.T) {
	fallback := []string{"wifi"}

	assert.Equal(t, fallback, patch.CoalesceSlice(nil, fallback))
	assert.Empty(t, patch.CoalesceSlice([]string{}, fallback))
	assert.Equal(t, []string{"pool"}, patch.CoalesceSlice([]string{"pool"}, fallback))
}
