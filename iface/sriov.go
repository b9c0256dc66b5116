package iface

import "github.com/vishvananda/netlink"

// VfLinkState mirrors the kernel's IFLA_VF_LINK_STATE enumeration,
// preserving an unrecognized raw value via Other rather than dropping
// it (sriov.rs's VfLinkState::Other(u32)).
type VfLinkState struct {
	name  string
	other uint32
}

func (s VfLinkState) String() string {
	if s.name == vfLinkOtherTag {
		return "other"
	}
	return s.name
}

const vfLinkOtherTag = "__other__"

var (
	VfLinkAuto    = VfLinkState{name: "auto"}
	VfLinkEnable  = VfLinkState{name: "enable"}
	VfLinkDisable = VfLinkState{name: "disable"}
	VfLinkUnknown = VfLinkState{name: "unknown"}
)

// VfLinkOther wraps a raw IFLA_VF_LINK_STATE value ifsnap does not
// enumerate.
func VfLinkOther(raw uint32) VfLinkState { return VfLinkState{name: vfLinkOtherTag, other: raw} }

// VfLinkStateFromRaw maps the kernel's raw u32 onto a VfLinkState.
func VfLinkStateFromRaw(raw uint32) VfLinkState {
	switch raw {
	case 0:
		return VfLinkAuto
	case 1:
		return VfLinkEnable
	case 2:
		return VfLinkDisable
	default:
		return VfLinkOther(raw)
	}
}

// VfState is the per-VF traffic counters reported under IFLA_VF_STATS.
type VfState struct {
	RxPackets uint64 `yaml:"rx_packets" json:"rx_packets"`
	TxPackets uint64 `yaml:"tx_packets" json:"tx_packets"`
	RxBytes   uint64 `yaml:"rx_bytes" json:"rx_bytes"`
	TxBytes   uint64 `yaml:"tx_bytes" json:"tx_bytes"`
	Broadcast uint64 `yaml:"broadcast" json:"broadcast"`
	Multicast uint64 `yaml:"multicast" json:"multicast"`
	RxDropped uint64 `yaml:"rx_dropped" json:"rx_dropped"`
	TxDropped uint64 `yaml:"tx_dropped" json:"tx_dropped"`
}

// SriovInfo is a PF interface's full list of virtual functions.
type SriovInfo struct {
	VFs []VfInfo `yaml:"vfs" json:"vfs"`
}

// VfInfo is a single virtual function's reported state. PFName is set
// by DecodeSriov; IfaceName is filled in by the sysfs lookup in
// sysfsnet, and is later used by the snapshot tidy-up pass to back-reference this
// VfInfo onto the VF's own Iface record as SriovVF.
type VfInfo struct {
	IfaceName   *string     `yaml:"iface_name,omitempty" json:"iface_name,omitempty"`
	PFName      *string     `yaml:"pf_name,omitempty" json:"pf_name,omitempty"`
	ID          uint32      `yaml:"id" json:"id"`
	MAC         string      `yaml:"mac" json:"mac"`
	Broadcast   string      `yaml:"broadcast" json:"broadcast"`
	VlanID      uint32      `yaml:"vlan_id" json:"vlan_id"`
	QoS         uint32      `yaml:"qos" json:"qos"`
	TxRate      uint32      `yaml:"tx_rate" json:"tx_rate"`
	SpoofCheck  bool        `yaml:"spoof_check" json:"spoof_check"`
	LinkState   VfLinkState `yaml:"link_state" json:"link_state"`
	MinTxRate   uint32      `yaml:"min_tx_rate" json:"min_tx_rate"`
	MaxTxRate   uint32      `yaml:"max_tx_rate" json:"max_tx_rate"`
	QueryRSS    bool        `yaml:"query_rss" json:"query_rss"`
	State       VfState     `yaml:"state" json:"state"`
	Trust       bool        `yaml:"trust" json:"trust"`
	IBNodeGUID  *string     `yaml:"ib_node_guid,omitempty" json:"ib_node_guid,omitempty"`
	IBPortGUID  *string     `yaml:"ib_port_guid,omitempty" json:"ib_port_guid,omitempty"`
}

// notSupported is the kernel's "feature not supported by this NIC"
// sentinel for the trust/spoofchk/query_rss boolean fields: the raw u32
// attribute is 0xFFFFFFFF rather than 0 or 1. A boolean is true iff the
// raw value is nonzero AND not this sentinel, exactly
// sriov.rs::get_sriov_info's "d > 0 && d != std::u32::MAX". DecodeSriov
// applies it to trust and query_rss; spoof_check is the bool
// vishvananda/netlink has already decoded (raw value nonzero), so the
// sentinel is not told apart there.
const notSupported uint32 = 0xFFFFFFFF

func boolFromRaw(raw uint32) bool {
	return raw > 0 && raw != notSupported
}

// DecodeSriov converts the *netlink.Handle-reported LinkAttrs.Vfs list
// into a SriovInfo. pfName is this PF interface's own name, recorded on
// every VfInfo so sysfsnet can resolve each VF's own interface name.
func DecodeSriov(pfName string, vfs []netlink.VfInfo) *SriovInfo {
	if len(vfs) == 0 {
		return nil
	}
	info := &SriovInfo{VFs: make([]VfInfo, 0, len(vfs))}
	for _, vf := range vfs {
		pf := pfName
		v := VfInfo{
			PFName:     &pf,
			ID:         uint32(vf.ID),
			MAC:        vf.Mac.String(),
			VlanID:     uint32(vf.Vlan),
			QoS:        uint32(vf.Qos),
			TxRate:     uint32(vf.TxRate),
			SpoofCheck: vf.Spoofchk,
			LinkState:  VfLinkStateFromRaw(uint32(vf.LinkState)),
			MinTxRate:  uint32(vf.MinTxRate),
			MaxTxRate:  uint32(vf.MaxTxRate),
			QueryRSS:   boolFromRaw(vf.RssQuery),
			Trust:      boolFromRaw(vf.Trust),
			State: VfState{
				RxPackets: uint64(vf.RxPackets),
				TxPackets: uint64(vf.TxPackets),
				RxBytes:   uint64(vf.RxBytes),
				TxBytes:   uint64(vf.TxBytes),
				Broadcast: uint64(vf.Broadcast),
				Multicast: uint64(vf.Multicast),
				RxDropped: uint64(vf.RxDropped),
				TxDropped: uint64(vf.TxDropped),
			},
		}
		info.VFs = append(info.VFs, v)
	}
	return info
}
