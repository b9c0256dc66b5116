package iface

import (
	"testing"

	"github.com/vishvananda/netlink"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestResolveTypeInfoKindWins(t *testing.T) {
	got := resolveType(TypeEthernet, TypeBond)
	assert.Check(t, is.Equal(got, TypeBond))
}

func TestResolveTypeUnrecognizedKindFallsBackToEthernet(t *testing.T) {
	got := resolveType(TypeEthernet, TypeOther("some_driver"))
	assert.Check(t, is.Equal(got, TypeEthernet))
}

func TestResolveTypeUnrecognizedKindSurvivesWhenLinkLayerUnknown(t *testing.T) {
	got := resolveType(TypeUnknown, TypeOther("gretap"))
	other, isOther := got.Other()
	assert.Check(t, isOther)
	assert.Check(t, is.Equal(other, "gretap"))
}

func TestResolveTypeInfiniband(t *testing.T) {
	got := resolveType(TypeInfiniband, TypeOther("ipoib_driver"))
	assert.Check(t, is.Equal(got, TypeInfiniband))
}

func TestParseFlagsSubordinateBit(t *testing.T) {
	flags := ParseFlags(iffUp | iffBroadcast | iffPort)
	assert.Check(t, containsFlag(flags, FlagUp))
	assert.Check(t, containsFlag(flags, FlagBroadcast))
	assert.Check(t, containsFlag(flags, FlagSubordinate))
	assert.Check(t, !containsFlag(flags, FlagPromisc))
}

func containsFlag(flags []Flag, want Flag) bool {
	for _, f := range flags {
		if f == want {
			return true
		}
	}
	return false
}

func TestDecodeBridgeCarriesName(t *testing.T) {
	link := &netlink.Bridge{
		LinkAttrs: netlink.LinkAttrs{
			Name:     "br0",
			Index:    3,
			EncapType: "ether",
			OperState: netlink.OperUp,
			MTU:      1500,
		},
	}
	out := Decode(link)
	assert.Check(t, is.Equal(out.Name, "br0"))
	assert.Check(t, is.Equal(out.Type, TypeBridge))
	assert.Check(t, is.Equal(out.State, StateUp))
	assert.Check(t, out.Bridge != nil)
}
