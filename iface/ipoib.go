package iface

import "github.com/vishvananda/netlink"

// IpoibInfo is the decoded IFLA_INFO_DATA for an IP-over-InfiniBand
// interface. BaseIface starts as the raw numeric parent index and is
// rewritten to the parent's symbolic name by the resolver.
type IpoibInfo struct {
	Pkey      *uint16 `yaml:"pkey,omitempty" json:"pkey,omitempty"`
	Mode      string  `yaml:"mode,omitempty" json:"mode,omitempty"`
	BaseIface *string `yaml:"base_iface,omitempty" json:"base_iface,omitempty"`
}

// DecodeIpoib converts a parsed *netlink.IPoIB into an IpoibInfo.
func DecodeIpoib(l *netlink.IPoIB) *IpoibInfo {
	info := &IpoibInfo{}
	if l.Pkey != 0 {
		v := l.Pkey
		info.Pkey = &v
	}
	switch l.Mode {
	case netlink.IPOIB_MODE_DATAGRAM:
		info.Mode = "datagram"
	case netlink.IPOIB_MODE_CONNECTED:
		info.Mode = "connected"
	default:
		info.Mode = "unknown"
	}
	return info
}

// MptcpAddress is one entry of an interface's MPTCP endpoint list.
type MptcpAddress struct {
	Address string   `yaml:"address" json:"address"`
	Port    uint16   `yaml:"port,omitempty" json:"port,omitempty"`
	Flags   []string `yaml:"flags,omitempty" json:"flags,omitempty"`
	ID      uint8    `yaml:"id" json:"id"`
}
