package clock

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministic(t *testing.T) {
	c := NewDeterministic()

	assert.Equal(t, Epoch, c.Now())
	assert.Equal(t, Epoch.Add(time.Second), c.Now())

	first := c.NewID()
	assert.Equal(t, "00000001-0000-4000-8000-000000000001", first)
	assert.Equal(t, "00000002-0000-4000-8000-000000000002", c.NewID())

	_, err := uuid.Parse(first)
	require.NoError(t, err)
}

func TestNew(t *testing.T) {
	assert.IsType(t, &Deterministic{}, New(true))
	assert.IsType(t, System{}, New(false))
}

func TestSystem(t *testing.T) {
	c := System{}
	before := time.Now()
	assert.False(t, c.Now().Before(before))

	id := c.NewID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.NotEqual(t, id, c.NewID())
}
