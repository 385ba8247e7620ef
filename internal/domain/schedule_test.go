package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutingTypeForLegs(t *testing.T) {
	assert.Equal(t, RoutingDirect, RoutingTypeForLegs(1))
	assert.Equal(t, RoutingTransshipment, RoutingTypeForLegs(2))
	assert.Equal(t, RoutingTransshipment, RoutingTypeForLegs(4))
}

func TestPort_DisplayName(t *testing.T) {
	assert.Equal(t, "Alexandria, EG", Port{Name: "Alexandria", Country: "EG"}.DisplayName())
	assert.Equal(t, "Alexandria", Port{Name: "Alexandria"}.DisplayName())
}

func TestSchedule_OptionalFields(t *testing.T) {
	s := Schedule{}
	assert.Equal(t, "", s.ServiceOrEmpty())
	assert.Equal(t, "", s.EquipmentOrEmpty())

	s.Service = StringPtr("MEX")
	s.Equipment = StringPtr("40HC")
	assert.Equal(t, "MEX", s.ServiceOrEmpty())
	assert.Equal(t, "40HC", s.EquipmentOrEmpty())

	assert.Nil(t, StringPtr(""))
}
