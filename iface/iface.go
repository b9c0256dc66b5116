// Package iface defines ifsnap's per-interface data model: the Iface
// record produced by a snapshot, the per-kind sub-records it carries,
// and the IfaceConf shape used to describe desired state.
//
// Decoding starts from an already-parsed github.com/vishvananda/netlink
// attribute tree (a *netlink.Link plus its LinkAttrs), the same
// assumption spec.md makes about the netlink transport: this package
// never touches raw NLA bytes.
package iface

import (
	"fmt"

	"github.com/ifsnap/ifsnap/ipinfo"
)

// Type identifies the kind of network interface. The zero value is
// TypeUnknown; unrecognized kernel link-info kinds are preserved verbatim
// via TypeOther rather than dropped, mirroring the nispor source's
// IfaceType::Other(String) catch-all.
type Type struct {
	name  string
	other string
}

func (t Type) String() string {
	if t.name == typeOtherTag {
		return t.other
	}
	return t.name
}

// Other reports the raw kernel-reported kind string when the type is
// TypeOther, and whether this Type actually is TypeOther.
func (t Type) Other() (string, bool) {
	return t.other, t.name == typeOtherTag
}

const typeOtherTag = "__other__"

var (
	TypeBond        = Type{name: "bond"}
	TypeVeth        = Type{name: "veth"}
	TypeBridge      = Type{name: "bridge"}
	TypeVlan        = Type{name: "vlan"}
	TypeDummy       = Type{name: "dummy"}
	TypeVxlan       = Type{name: "vxlan"}
	TypeLoopback    = Type{name: "loopback"}
	TypeEthernet    = Type{name: "ethernet"}
	TypeInfiniband  = Type{name: "infiniband"}
	TypeVrf         = Type{name: "vrf"}
	TypeTun         = Type{name: "tun"}
	TypeMacVlan     = Type{name: "macvlan"}
	TypeMacVtap     = Type{name: "macvtap"}
	TypeOpenvSwitch = Type{name: "openvswitch"}
	TypeIpoib       = Type{name: "ipoib"}
	TypeUnknown     = Type{name: "unknown"}
)

// TypeOther wraps a kernel-reported kind string ifsnap does not decode
// any further (e.g. "gretap", "ipip").
func TypeOther(kind string) Type { return Type{name: typeOtherTag, other: kind} }

// State is the operational state reported by IFLA_OPERSTATE.
type State struct {
	name  string
	other string
}

func (s State) String() string {
	if s.name == stateOtherTag {
		return s.other
	}
	return s.name
}

const stateOtherTag = "__other__"

var (
	StateUp             = State{name: "up"}
	StateDormant        = State{name: "dormant"}
	StateDown           = State{name: "down"}
	StateLowerLayerDown = State{name: "lower_layer_down"}
	// StateAbsent only appears in an IfaceConf: it requests deletion.
	StateAbsent  = State{name: "absent"}
	StateUnknown = State{name: "unknown"}
)

// StateOther wraps an operstate value ifsnap does not enumerate.
func StateOther(name string) State { return State{name: stateOtherTag, other: name} }

// Flag is one bit of the link message header's legacy IFF_* flags word, decoded into a
// named value the way nispor's iface.rs::_parse_iface_flags does rather
// than exposing the raw bitmask.
type Flag int

const (
	FlagAllMulti Flag = iota
	FlagAutoMedia
	FlagBroadcast
	FlagDebug
	FlagDormant
	FlagLoopback
	FlagLowerUp
	FlagController
	FlagMulticast
	FlagNoArp
	FlagPointToPoint
	FlagPortsel
	FlagPromisc
	FlagRunning
	FlagSubordinate
	FlagUp
)

func (f Flag) String() string {
	switch f {
	case FlagAllMulti:
		return "all_multi"
	case FlagAutoMedia:
		return "auto_media"
	case FlagBroadcast:
		return "broadcast"
	case FlagDebug:
		return "debug"
	case FlagDormant:
		return "dormant"
	case FlagLoopback:
		return "loopback"
	case FlagLowerUp:
		return "lower_up"
	case FlagController:
		return "controller"
	case FlagMulticast:
		return "multicast"
	case FlagNoArp:
		return "no_arp"
	case FlagPointToPoint:
		return "point_to_point"
	case FlagPortsel:
		return "portsel"
	case FlagPromisc:
		return "promisc"
	case FlagRunning:
		return "running"
	case FlagSubordinate:
		return "subordinate"
	case FlagUp:
		return "up"
	default:
		return "unknown"
	}
}

// Legacy IFF_* bit values from linux/if.h, matched against LinkAttrs.RawFlags.
const (
	iffUp          = 0x1
	iffBroadcast   = 0x2
	iffDebug       = 0x4
	iffLoopback    = 0x8
	iffPointToPoint = 0x10
	iffNoArp       = 0x80
	iffPromisc     = 0x100
	iffAllMulti    = 0x200
	iffMaster      = 0x400
	iffMulticast   = 0x1000
	iffPortsel     = 0x2000
	iffAutoMedia   = 0x4000
	iffDormant     = 0x20000
	iffLowerUp     = 0x10000
	iffPort        = 0x800
	iffRunning     = 0x40
)

// ParseFlags decodes a raw IFLA flags word into the ordered Flag list
// nispor reports, including IFF_PORT (0x800) as FlagSubordinate.
func ParseFlags(raw uint32) []Flag {
	var out []Flag
	bits := []struct {
		mask uint32
		flag Flag
	}{
		{iffAllMulti, FlagAllMulti},
		{iffAutoMedia, FlagAutoMedia},
		{iffBroadcast, FlagBroadcast},
		{iffDebug, FlagDebug},
		{iffDormant, FlagDormant},
		{iffLoopback, FlagLoopback},
		{iffLowerUp, FlagLowerUp},
		{iffMaster, FlagController},
		{iffMulticast, FlagMulticast},
		{iffNoArp, FlagNoArp},
		{iffPointToPoint, FlagPointToPoint},
		{iffPortsel, FlagPortsel},
		{iffPromisc, FlagPromisc},
		{iffRunning, FlagRunning},
		{iffPort, FlagSubordinate},
		{iffUp, FlagUp},
	}
	for _, b := range bits {
		if raw&b.mask != 0 {
			out = append(out, b.flag)
		}
	}
	return out
}

// ControllerType names the kind of interface a port/subordinate is
// attached to.
type ControllerType struct {
	name  string
	other string
}

func (c ControllerType) String() string {
	if c.name == ctOtherTag {
		return c.other
	}
	return c.name
}

const ctOtherTag = "__other__"

var (
	ControllerBond        = ControllerType{name: "bond"}
	ControllerBridge      = ControllerType{name: "bridge"}
	ControllerVrf         = ControllerType{name: "vrf"}
	ControllerOpenvSwitch = ControllerType{name: "openvswitch"}
	ControllerUnknown     = ControllerType{name: "unknown"}
)

// ControllerOther wraps a port-kind string ifsnap does not enumerate.
func ControllerOther(kind string) ControllerType { return ControllerType{name: ctOtherTag, other: kind} }

// ControllerTypeFromString maps a kernel port-kind string onto a
// ControllerType, matching nispor's impl From<&str> for ControllerType.
func ControllerTypeFromString(s string) ControllerType {
	switch s {
	case "bond":
		return ControllerBond
	case "bridge":
		return ControllerBridge
	case "vrf":
		return ControllerVrf
	case "openvswitch":
		return ControllerOpenvSwitch
	default:
		return ControllerOther(s)
	}
}

// Iface is a single interface's complete reported state.
type Iface struct {
	Name      string
	Index     int32 `json:"-"`
	Type      Type
	State     State
	MTU       int64
	MinMTU    *int64
	MaxMTU    *int64
	Flags     []Flag

	IPv4 *ipinfo.IPv4Info
	IPv6 *ipinfo.IPv6Info

	MACAddress          string
	PermanentMACAddress string

	Controller     *string
	ControllerType *ControllerType
	LinkNetNSID    *int32

	Ethtool *EthtoolInfo

	Bond           *BondInfo
	BondSubordinate *BondSubordinateInfo
	Bridge         *BridgeInfo
	BridgePort     *BridgePortInfo
	Tun            *TunInfo
	Vlan           *VlanInfo
	Vxlan          *VxlanInfo
	Veth           *VethInfo
	Vrf            *VrfInfo
	VrfSubordinate *VrfSubordinateInfo
	MacVlan        *MacVlanInfo
	MacVtap        *MacVtapInfo
	Sriov          *SriovInfo
	SriovVF        *VfInfo
	Ipoib          *IpoibInfo
	Mptcp          []MptcpAddress
}

func (i *Iface) String() string {
	return fmt.Sprintf("Iface{name=%s type=%s state=%s}", i.Name, i.Type, i.State)
}

// Conf is the desired-state shape decoded from a NetConf document: one
// entry per named interface, optional-field sparse so that an apply
// only touches what it mentions.
type Conf struct {
	Name       string          `yaml:"name" json:"name"`
	State      State           `yaml:"state" json:"state"`
	Type       *Type           `yaml:"type,omitempty" json:"type,omitempty"`
	Controller *string         `yaml:"controller,omitempty" json:"controller,omitempty"`
	IPv4       *ipinfo.IPConf  `yaml:"ipv4,omitempty" json:"ipv4,omitempty"`
	IPv6       *ipinfo.IPConf  `yaml:"ipv6,omitempty" json:"ipv6,omitempty"`
	MACAddress *string         `yaml:"mac_address,omitempty" json:"mac_address,omitempty"`
	Veth       *VethConf       `yaml:"veth,omitempty" json:"veth,omitempty"`
	Bridge     *BridgeConf     `yaml:"bridge,omitempty" json:"bridge,omitempty"`
	Vlan       *VlanConf       `yaml:"vlan,omitempty" json:"vlan,omitempty"`
}

// DefaultState is the state a Conf entry takes when its document omits
// the field, matching nispor's default_iface_state_in_conf.
func DefaultState() State { return StateUp }
