package boot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ExecutesStepsInOrder(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	var order []string
	steps := []Step{
		{Name: "init-schema", Run: func() error {
			order = append(order, "init-schema")
			return nil
		}},
		{Name: "serve", Run: func() error {
			order = append(order, "serve")
			return nil
		}},
	}

	require.NoError(Run(steps))
	assert.Equal([]string{"init-schema", "serve"}, order)
}

func TestRun_StopsAtFirstFailure(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	schemaErr := errors.New("database is not reachable")
	served := false
	steps := []Step{
		{Name: "init-schema", Run: func() error {
			return schemaErr
		}},
		{Name: "serve", Run: func() error {
			served = true
			return nil
		}},
	}

	err := Run(steps)
	require.Error(err)
	assert.ErrorIs(err, schemaErr)
	assert.ErrorContains(err, "bootstrap step init-schema failed")
	assert.False(served, "later steps must not run after a failure")
}

func TestRun_NoSteps(t *testing.T) {
	require.NoError(t, Run(nil))
}
