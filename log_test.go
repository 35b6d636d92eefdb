package movingquad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	quad "github.com/go-theft-auto/movingquad"
)

func TestSetVerbose(t *testing.T) {
	t.Cleanup(func() { quad.SetVerbose(false) })

	quad.SetVerbose(true)
	assert.True(t, quad.Verbose())
	assert.NotNil(t, quad.Logger())

	quad.SetVerbose(false)
	assert.False(t, quad.Verbose())
}
