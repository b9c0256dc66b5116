package iface

import (
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
)

var log = logrus.WithField("component", "iface")

// linkLayerType maps netlink's link-layer encapsulation hint onto a
// Type, matching iface.rs::parse_nl_msg_to_iface's ARPHRD_ETHER /
// ARPHRD_LOOPBACK / ARPHRD_INFINIBAND handling. Anything else is
// TypeUnknown at this stage.
func linkLayerType(encapType string) Type {
	switch encapType {
	case "ether":
		return TypeEthernet
	case "loopback":
		return TypeLoopback
	case "infiniband":
		return TypeInfiniband
	default:
		return TypeUnknown
	}
}

// kindFromLink inspects the concrete netlink.Link implementation the
// way the kernel's IFLA_INFO_KIND sub-attribute would: each typed Link
// struct already encodes what iface.rs reads from nlas::Info::Kind,
// since vishvananda/netlink has done that decode for us.
func kindFromLink(link netlink.Link) Type {
	switch l := link.(type) {
	case *netlink.Bond:
		return TypeBond
	case *netlink.Veth:
		return TypeVeth
	case *netlink.Bridge:
		return TypeBridge
	case *netlink.Vxlan:
		return TypeVxlan
	case *netlink.Vlan:
		return TypeVlan
	case *netlink.Dummy:
		return TypeDummy
	case *netlink.Tuntap:
		return TypeTun
	case *netlink.Vrf:
		return TypeVrf
	case *netlink.Macvtap:
		return TypeMacVtap
	case *netlink.Macvlan:
		return TypeMacVlan
	case *netlink.IPoIB:
		return TypeIpoib
	case *netlink.GenericLink:
		if l.LinkType == "openvswitch" {
			return TypeOpenvSwitch
		}
		return TypeOther(l.LinkType)
	default:
		return TypeOther(link.Type())
	}
}

// resolveType applies iface.rs::parse_nl_msg_to_iface's exact
// tie-break: the link-layer type is the starting point; an info-kind
// that maps to a known variant always overwrites it (it is more
// specific); an unrecognized info-kind ("other") only survives if no
// ethernet/infiniband link-layer type was already found, in which case
// the link-layer type takes precedence; if the link-layer type itself
// wasn't ethernet or infiniband either, the unrecognized kind itself is
// reported.
func resolveType(llType, kindType Type) Type {
	if _, isOther := kindType.Other(); !isOther {
		return kindType
	}
	if llType == TypeEthernet || llType == TypeInfiniband {
		return llType
	}
	return kindType
}

// Decode converts one netlink.Link (plus its Vfs for SR-IOV) into an
// Iface. It does not resolve cross-references (veth peer, vlan base,
// controller name, SR-IOV VF names): that is the snapshot resolver's
// job, run once every link in the dump has been decoded.
func Decode(link netlink.Link) *Iface {
	attrs := link.Attrs()
	ll := linkLayerType(attrs.EncapType)
	kind := kindFromLink(link)
	resolved := resolveType(ll, kind)
	if _, noKind := link.(*netlink.Device); noKind {
		// No IFLA_INFO_KIND at all: the link-layer type stands.
		resolved = ll
	}

	out := &Iface{
		Name:  attrs.Name,
		Index: int32(attrs.Index),
		Type:  resolved,
		State: decodeState(attrs.OperState),
		MTU:   int64(attrs.MTU),
		Flags: ParseFlags(attrs.RawFlags),
	}
	if attrs.MinMTU != 0 {
		v := int64(attrs.MinMTU)
		out.MinMTU = &v
	}
	if attrs.MaxMTU != 0 {
		v := int64(attrs.MaxMTU)
		out.MaxMTU = &v
	}
	if attrs.HardwareAddr != nil {
		out.MACAddress = attrs.HardwareAddr.String()
	}
	if attrs.PermHWAddr != nil {
		out.PermanentMACAddress = attrs.PermHWAddr.String()
	}
	if attrs.MasterIndex != 0 {
		name := itoaIndex(attrs.MasterIndex)
		out.Controller = &name
	}
	if attrs.NetNsID != -1 {
		id := int32(attrs.NetNsID)
		out.LinkNetNSID = &id
	}
	if len(attrs.Vfs) > 0 {
		out.Sriov = DecodeSriov(attrs.Name, attrs.Vfs)
	}

	switch l := link.(type) {
	case *netlink.Bond:
		out.Bond = DecodeBond(l)
	case *netlink.Bridge:
		out.Bridge = DecodeBridge(l)
	case *netlink.Vxlan:
		out.Vxlan = DecodeVxlan(l)
	case *netlink.Vlan:
		out.Vlan = DecodeVlan(l, attrs.ParentIndex)
	case *netlink.Tuntap:
		out.Tun = DecodeTun(l)
	case *netlink.Vrf:
		out.Vrf = DecodeVrf(l)
	case *netlink.Macvtap:
		out.MacVtap = DecodeMacVtap(&l.Macvlan)
		if attrs.ParentIndex != 0 {
			out.MacVtap.BaseIface = itoaIndex(attrs.ParentIndex)
		}
	case *netlink.Macvlan:
		out.MacVlan = DecodeMacVlan(l)
		if attrs.ParentIndex != 0 {
			out.MacVlan.BaseIface = itoaIndex(attrs.ParentIndex)
		}
	case *netlink.Veth:
		if attrs.ParentIndex != 0 {
			out.Veth = &VethInfo{Peer: itoaIndex(attrs.ParentIndex)}
		}
	case *netlink.IPoIB:
		out.Ipoib = DecodeIpoib(l)
		if attrs.ParentIndex != 0 {
			base := itoaIndex(attrs.ParentIndex)
			out.Ipoib.BaseIface = &base
		}
	default:
		if resolved != TypeBond && resolved != TypeBridge && resolved != TypeVxlan &&
			resolved != TypeVlan && resolved != TypeTun && resolved != TypeVrf &&
			resolved != TypeMacVtap && resolved != TypeMacVlan && resolved != TypeVeth &&
			resolved != TypeIpoib {
			if other, isOther := resolved.Other(); isOther {
				log.WithField("iface", attrs.Name).Warnf("no per-kind decoder for link kind %q", other)
			}
		}
	}

	return out
}

func decodeState(state netlink.LinkOperState) State {
	switch state {
	case netlink.OperUp:
		return StateUp
	case netlink.OperDormant:
		return StateDormant
	case netlink.OperDown:
		return StateDown
	case netlink.OperLowerLayerDown:
		return StateLowerLayerDown
	case netlink.OperUnknown:
		return StateUnknown
	default:
		return StateOther(strconv.Itoa(int(state)))
	}
}
