package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsService(t *testing.T) {
	for _, s := range Services {
		assert.True(t, IsService(s), s)
	}

	// el servicio sintético del registro manual también pasa
	assert.True(t, IsService(ManualRegistrationService))

	assert.False(t, IsService(""))
	assert.False(t, IsService("Tarot"))
	assert.False(t, IsService("corte & diseño capilar")) // sensible a mayúsculas
}

func TestStyleNames(t *testing.T) {
	names := StyleNames(HairStyles)
	assert.Equal(t, []string{"Corte Bob Italiano", "Balayage Premium", "Peinados de Gala"}, names)

	assert.Empty(t, StyleNames(nil))
}
