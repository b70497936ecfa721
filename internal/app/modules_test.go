package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewModules_Order(t *testing.T) {
	mods := NewModules(Dependencies{})

	names := make([]string, 0, len(mods))
	for _, m := range mods {
		names = append(names, m.Name())
	}
	assert.Equal(t, []string{"catalog", "marketing", "quote", "announcer"}, names)
}
