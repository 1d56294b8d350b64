package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/primebarbervip/PrimeBarberClub/pkg/types"
)

func TestScheduleOverride_BlockedWins(t *testing.T) {
	o := &ScheduleOverride{
		Blocked: []types.TimeString{"14:00"},
		Enabled: []types.TimeString{"14:00", "15:00"},
	}

	assert.True(t, o.IsBlocked("14:00"))
	assert.False(t, o.IsEnabled("14:00"), "a slot in both sets counts as blocked")
	assert.True(t, o.IsEnabled("15:00"))
	assert.Equal(t, SlotBlocked, o.StateFor("14:00"))
	assert.Equal(t, SlotEnabled, o.StateFor("15:00"))
	assert.Equal(t, SlotDefault, o.StateFor("16:00"))
}

func TestScheduleOverride_Toggle_LunchCycle(t *testing.T) {
	o := &ScheduleOverride{}
	slot := types.TimeString("14:00")

	// default -> enabled -> blocked -> default, then around again
	assert.Equal(t, SlotEnabled, o.Toggle(slot, true))
	assert.Equal(t, SlotBlocked, o.Toggle(slot, true))
	assert.Equal(t, SlotDefault, o.Toggle(slot, true))
	assert.Empty(t, o.Blocked)
	assert.Empty(t, o.Enabled)

	assert.Equal(t, SlotEnabled, o.Toggle(slot, true))
}

func TestScheduleOverride_Toggle_RegularSlot(t *testing.T) {
	o := &ScheduleOverride{}
	slot := types.TimeString("11:00")

	assert.Equal(t, SlotBlocked, o.Toggle(slot, false))
	assert.Equal(t, SlotDefault, o.Toggle(slot, false))
	assert.Empty(t, o.Blocked)
}

func TestScheduleOverride_Toggle_DoesNotDuplicate(t *testing.T) {
	o := &ScheduleOverride{Blocked: []types.TimeString{"10:00"}}

	o.Toggle("11:00", false)
	o.Toggle("11:00", false)
	o.Toggle("11:00", false)

	assert.Equal(t, []types.TimeString{"10:00", "11:00"}, o.Blocked)
}
