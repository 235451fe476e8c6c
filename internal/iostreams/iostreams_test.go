package iostreams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuietSuppressesPrintfOnly(t *testing.T) {
	t.Parallel()

	s, out, errOut := Test()
	s.SetQuiet(true)

	s.Printf("hello %s\n", "world")
	s.Errorf("failed: %d\n", 3)

	assert.True(t, s.IsQuiet())
	assert.Empty(t, out.String())
	assert.Equal(t, "failed: 3\n", errOut.String())
}

func TestStylesWithoutColor(t *testing.T) {
	t.Parallel()

	s, _, _ := Test()

	assert.False(t, s.ColorEnabled())
	assert.False(t, s.IsTerminal())
	assert.Equal(t, "✓ sent", s.Success("sent"))
	assert.Equal(t, "Error: x", s.Failure("Error: x"))
	assert.Equal(t, "careful", s.Warning("careful"))
	assert.Equal(t, "dim", s.Muted("dim"))
	assert.Equal(t, "key", s.Bold("key"))
}
