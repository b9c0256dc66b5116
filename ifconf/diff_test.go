package ifconf

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
	"pgregory.net/rapid"

	"github.com/ifsnap/ifsnap/iface"
)

func strp(s string) *string { return &s }

func TestComputeCreatesMissingInterface(t *testing.T) {
	desired := []iface.Conf{{Name: "eth9", State: iface.StateUp, Type: &iface.TypeDummy}}
	plan, err := Compute(desired, map[string]*iface.Iface{})
	assert.NilError(t, err)
	assert.Check(t, is.Len(plan.Creation, 1))
	assert.Check(t, is.Equal(plan.Creation[0].IfaceName, "eth9"))
}

func TestComputeDeletesAbsentInterface(t *testing.T) {
	desired := []iface.Conf{{Name: "eth9", State: iface.StateAbsent}}
	current := map[string]*iface.Iface{"eth9": {Name: "eth9", Type: iface.TypeDummy}}
	plan, err := Compute(desired, current)
	assert.NilError(t, err)
	assert.Check(t, is.Len(plan.Deletion, 1))
	assert.Check(t, is.Equal(plan.Deletion[0].IfaceName, "eth9"))
}

func TestComputeRejectsTypeChange(t *testing.T) {
	desired := []iface.Conf{{Name: "eth9", State: iface.StateUp, Type: &iface.TypeBridge}}
	current := map[string]*iface.Iface{"eth9": {Name: "eth9", Type: iface.TypeBond}}
	_, err := Compute(desired, current)
	assert.Check(t, err != nil)
}

func TestComputeMACChangeProducesDownSetMacUpTriplet(t *testing.T) {
	desired := []iface.Conf{{Name: "eth0", State: iface.StateUp, MACAddress: strp("02:00:00:00:00:01")}}
	current := map[string]*iface.Iface{
		"eth0": {Name: "eth0", Type: iface.TypeEthernet, State: iface.StateUp, MACAddress: "02:00:00:00:00:00"},
	}
	plan, err := Compute(desired, current)
	assert.NilError(t, err)
	assert.Check(t, is.Len(plan.Mutation, 3))
	assert.Check(t, is.Equal(plan.Mutation[0].Kind, OpSetDown))
	assert.Check(t, is.Equal(plan.Mutation[1].Kind, OpSetMAC))
	assert.Check(t, is.Equal(plan.Mutation[2].Kind, OpSetUp))
}

func TestComputeNoMACChangeNoOps(t *testing.T) {
	desired := []iface.Conf{{Name: "eth0", State: iface.StateUp, MACAddress: strp("02:00:00:00:00:00")}}
	current := map[string]*iface.Iface{
		"eth0": {Name: "eth0", Type: iface.TypeEthernet, State: iface.StateUp, MACAddress: "02:00:00:00:00:00"},
	}
	plan, err := Compute(desired, current)
	assert.NilError(t, err)
	assert.Check(t, is.Len(plan.Mutation, 0))
}

func TestComputeControllerDetachThenAttach(t *testing.T) {
	desired := []iface.Conf{{Name: "eth0", State: iface.StateUp, Controller: strp("bond1")}}
	current := map[string]*iface.Iface{
		"eth0": {Name: "eth0", Type: iface.TypeEthernet, Controller: strp("bond0")},
	}
	plan, err := Compute(desired, current)
	assert.NilError(t, err)
	assert.Check(t, is.Len(plan.Mutation, 2))
	assert.Check(t, is.Equal(plan.Mutation[0].Kind, OpUnsetController))
	assert.Check(t, is.Equal(plan.Mutation[1].Kind, OpSetController))
}

// TestComputeIdempotent checks spec.md §8's idempotence property: running
// Compute twice against the same (desired, current) with no intervening
// execution must not grow the creation set past the first computation,
// since the same absent interfaces are absent both times.
func TestComputeIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 5).Draw(rt, "n")
		var desired []iface.Conf
		current := map[string]*iface.Iface{}
		for i := 0; i < n; i++ {
			name := rapid.StringMatching(`eth[0-9]`).Draw(rt, "name")
			exists := rapid.Bool().Draw(rt, "exists")
			c := iface.Conf{Name: name, State: iface.StateUp, Type: &iface.TypeDummy}
			desired = append(desired, c)
			if exists {
				current[name] = &iface.Iface{Name: name, Type: iface.TypeDummy, State: iface.StateUp}
			}
		}
		plan1, err := Compute(desired, current)
		assert.NilError(rt, err)
		plan2, err := Compute(desired, current)
		assert.NilError(rt, err)
		assert.Check(rt, is.Equal(len(plan1.Creation), len(plan2.Creation)))
	})
}
