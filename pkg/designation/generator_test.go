package designation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealpost/sealpost/pkg/designation"
)

func TestGenerateShape(t *testing.T) {
	designation.Reset()

	name := designation.Generate(nil)
	parts := strings.Split(name, " ")
	require.Len(t, parts, 2)
	assert.NotEmpty(t, parts[0])
	assert.NotEmpty(t, parts[1])
}

func TestGenerateUniqueWithinProcess(t *testing.T) {
	designation.Reset()

	seen := make(map[string]struct{})
	for iter := 0; iter < 500; iter++ {
		name := designation.Generate(nil)
		_, dup := seen[name]
		require.False(t, dup, "duplicate designation %q", name)
		seen[name] = struct{}{}
	}
}

func TestGenerateHonorsValidator(t *testing.T) {
	designation.Reset()

	rejected := ""
	name := designation.Generate(func(candidate string) bool {
		if rejected == "" {
			rejected = candidate
			return false
		}
		return true
	})

	assert.NotEqual(t, rejected, name)
	assert.NotEmpty(t, rejected, "validator saw at least one candidate")
}
