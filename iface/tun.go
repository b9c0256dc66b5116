package iface

import "github.com/vishvananda/netlink"

// TunInfo is the decoded IFLA_INFO_DATA for a TUN/TAP interface.
type TunInfo struct {
	Mode       string `yaml:"mode" json:"mode"`
	Owner      *uint32 `yaml:"owner,omitempty" json:"owner,omitempty"`
	Group      *uint32 `yaml:"group,omitempty" json:"group,omitempty"`
	PersistMode bool   `yaml:"persist" json:"persist"`
}

// DecodeTun converts a parsed *netlink.Tuntap into a TunInfo. It has no
// error path: vishvananda/netlink has already parsed the attributes, so
// every field is copied or left unset.
func DecodeTun(t *netlink.Tuntap) *TunInfo {
	mode := "tun"
	if t.Mode == netlink.TUNTAP_MODE_TAP {
		mode = "tap"
	}
	info := &TunInfo{Mode: mode, PersistMode: !t.NonPersist}
	if t.Owner != 0 {
		v := uint32(t.Owner)
		info.Owner = &v
	}
	if t.Group != 0 {
		v := uint32(t.Group)
		info.Group = &v
	}
	return info
}
