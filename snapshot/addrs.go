package snapshot

import (
	"github.com/vishvananda/netlink"

	"github.com/ifsnap/ifsnap/iface"
	"github.com/ifsnap/ifsnap/ipinfo"
)

// FillAddresses reduces a link's combined IPv4/IPv6 address dump into
// rec.IPv4/rec.IPv6, converting the kernel's cache-info lifetimes via
// ipinfo.FromKernelSeconds (forever sentinel aware). It does not set
// IPv6Info.Token: the address dump does not carry it.
func FillAddresses(rec *iface.Iface, addrs []netlink.Addr) {
	var v4 []ipinfo.AddrInfoV4
	var v6 []ipinfo.AddrInfoV6

	for _, a := range addrs {
		if a.IPNet == nil {
			continue
		}
		prefixLen, _ := a.IPNet.Mask.Size()
		valid := ipinfo.FromKernelSeconds(uint32(a.ValidLft))
		preferred := ipinfo.FromKernelSeconds(uint32(a.PreferedLft))

		if ip4 := a.IPNet.IP.To4(); ip4 != nil {
			v4 = append(v4, ipinfo.AddrInfoV4{
				Address:      ip4.String(),
				PrefixLen:    uint8(prefixLen),
				ValidLft:     valid,
				PreferredLft: preferred,
			})
			continue
		}
		v6 = append(v6, ipinfo.AddrInfoV6{
			Address:      a.IPNet.IP.String(),
			PrefixLen:    uint8(prefixLen),
			ValidLft:     valid,
			PreferredLft: preferred,
		})
	}

	if len(v4) > 0 {
		rec.IPv4 = &ipinfo.IPv4Info{Addresses: v4}
	}
	if len(v6) > 0 {
		rec.IPv6 = &ipinfo.IPv6Info{Addresses: v6}
	}
}
