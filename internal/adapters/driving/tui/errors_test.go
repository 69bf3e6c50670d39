package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_Messages(t *testing.T) {
	assert.Equal(t, "tui: task coordinator is required", ErrMissingTaskCoordinator.Error())
	assert.Equal(t, "tui: invalid ports configuration", ErrInvalidPorts.Error())
}

func TestErrors_Distinct(t *testing.T) {
	assert.NotErrorIs(t, ErrMissingTaskCoordinator, ErrInvalidPorts)
}
