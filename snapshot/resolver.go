package snapshot

import (
	"strconv"

	"github.com/ifsnap/ifsnap/iface"
)

// Resolve rewrites every numeric interface-index cross-reference in
// ifaces into a symbolic name, then runs the SR-IOV VF back-reference
// tidy-up. It mutates ifaces in place and is meant to run once, after
// every link in a dump has been decoded into ifaces.
//
// Per spec.md §4.4's invariant, an index that does not name an
// interface in this snapshot (because its target lives in a different
// namespace) is left as the raw index string rather than rewritten to
// a name, so it can still be consumed by a caller who knows how to
// cross reference namespaces.
func Resolve(ifaces map[string]*iface.Iface) {
	byIndex := make(map[string]string, len(ifaces))
	for name, rec := range ifaces {
		byIndex[strconv.Itoa(int(rec.Index))] = name
	}

	for _, rec := range ifaces {
		if rec.Controller != nil {
			if name, ok := byIndex[*rec.Controller]; ok {
				rec.Controller = &name
			}
		}
		if rec.Veth != nil && rec.LinkNetNSID == nil {
			// veth.rs::veth_iface_tidy_up skips the rewrite entirely
			// when link-netnsid is set: the peer lives in another
			// namespace and the index cannot be resolved here.
			if name, ok := byIndex[rec.Veth.Peer]; ok {
				rec.Veth.Peer = name
			}
		}
		if rec.Vlan != nil {
			if name, ok := byIndex[rec.Vlan.BaseIface]; ok {
				rec.Vlan.BaseIface = name
			}
		}
		if rec.MacVlan != nil {
			if name, ok := byIndex[rec.MacVlan.BaseIface]; ok {
				rec.MacVlan.BaseIface = name
			}
		}
		if rec.MacVtap != nil {
			if name, ok := byIndex[rec.MacVtap.BaseIface]; ok {
				rec.MacVtap.BaseIface = name
			}
		}
		if rec.Ipoib != nil && rec.Ipoib.BaseIface != nil {
			if name, ok := byIndex[*rec.Ipoib.BaseIface]; ok {
				rec.Ipoib.BaseIface = &name
			}
		}
	}

	fillControllerBackRefs(ifaces)
	tidyUpSriov(ifaces)
}

// fillControllerBackRefs fills in the reverse side of every
// controller/subordinate relationship: the controller's Subordinates
// list, and the subordinate's ControllerType plus per-kind port-info
// placeholder (BondSubordinate/BridgePort/VrfSubordinate), matching
// nispor's two-sided bond/bridge/vrf state (iface.rs sets these from
// the controller's own IFLA_INFO_DATA port list; ifsnap derives the
// same result from the subordinate side, since vishvananda/netlink
// does not expose a separate port-list attribute on the controller).
func fillControllerBackRefs(ifaces map[string]*iface.Iface) {
	for _, rec := range ifaces {
		if rec.Controller == nil {
			continue
		}
		controller, ok := ifaces[*rec.Controller]
		if !ok {
			continue
		}

		ct := iface.ControllerTypeFromString(controller.Type.String())
		rec.ControllerType = &ct

		switch ct {
		case iface.ControllerBond:
			if controller.Bond != nil {
				controller.Bond.Subordinates = append(controller.Bond.Subordinates, rec.Name)
			}
			rec.BondSubordinate = &iface.BondSubordinateInfo{PermHWAddr: rec.PermanentMACAddress}
		case iface.ControllerBridge:
			if controller.Bridge != nil {
				controller.Bridge.Subordinates = append(controller.Bridge.Subordinates, rec.Name)
			}
			rec.BridgePort = &iface.BridgePortInfo{}
		case iface.ControllerVrf:
			if controller.Vrf != nil {
				controller.Vrf.Subordinates = append(controller.Vrf.Subordinates, rec.Name)
				rec.VrfSubordinate = &iface.VrfSubordinateInfo{TableID: controller.Vrf.TableID}
			}
		}
	}
}
