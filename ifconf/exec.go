package ifconf

import (
	"net"

	"github.com/vishvananda/netlink"

	"github.com/ifsnap/ifsnap/errs"
	"github.com/ifsnap/ifsnap/iface"
	"github.com/ifsnap/ifsnap/nlhandle"
)

// Executor issues a Plan's operations through a nlhandle.Handle. It
// never retries: the kernel's accept/reject is deterministic for a
// given state, so spec.md §4.7 says to surface the failure rather than
// mask it with a retry loop.
type Executor struct {
	Handle *nlhandle.Handle
}

// Execute runs every operation in plan in phase order, aborting on the
// first failure and returning the count of operations that completed
// before it (so a caller can report partial progress without the
// library attempting any rollback — spec.md §4.7 leaves re-retrieval
// to the caller).
func (e *Executor) Execute(plan *Plan) (completed int, err error) {
	for _, op := range plan.All() {
		if err := e.execOne(op); err != nil {
			return completed, err
		}
		completed++
	}
	return completed, nil
}

func (e *Executor) execOne(op Operation) error {
	switch op.Kind {
	case OpCreateLink:
		return e.createLink(op)
	case OpDeleteLink:
		link, err := e.Handle.LinkByName(op.IfaceName)
		if err != nil {
			return err
		}
		return e.Handle.LinkDel(link)
	case OpSetDown:
		link, err := e.Handle.LinkByName(op.IfaceName)
		if err != nil {
			return err
		}
		return e.Handle.LinkSetDown(link)
	case OpSetUp:
		link, err := e.Handle.LinkByName(op.IfaceName)
		if err != nil {
			return err
		}
		return e.Handle.LinkSetUp(link)
	case OpSetMAC:
		link, err := e.Handle.LinkByName(op.IfaceName)
		if err != nil {
			return err
		}
		mac, err := net.ParseMAC(op.MACAddress)
		if err != nil {
			return errs.ProtocolParsef("ifconf.exec.set_mac", "interface %q: invalid MAC %q: %v", op.IfaceName, op.MACAddress, err)
		}
		return e.Handle.LinkSetHardwareAddr(link, mac)
	case OpSetController:
		link, err := e.Handle.LinkByName(op.IfaceName)
		if err != nil {
			return err
		}
		controller, err := e.Handle.LinkByName(op.Controller)
		if err != nil {
			return err
		}
		return e.Handle.LinkSetMaster(link, controller)
	case OpUnsetController:
		link, err := e.Handle.LinkByName(op.IfaceName)
		if err != nil {
			return err
		}
		return e.Handle.LinkSetNoMaster(link)
	case OpAddAddr:
		return e.addAddr(op)
	case OpDelAddr:
		return e.delAddr(op)
	default:
		return errs.Bugf("ifconf.exec", "unhandled operation kind %s", op.Kind)
	}
}

func (e *Executor) createLink(op Operation) error {
	if op.Conf == nil {
		return errs.Bugf("ifconf.exec.create_link", "interface %q: creation op without a Conf", op.IfaceName)
	}
	link, err := newLink(*op.Conf)
	if err != nil {
		return err
	}
	if vlan, ok := link.(*netlink.Vlan); ok && op.Conf.Vlan.BaseIface != "" {
		parent, err := e.Handle.LinkByName(op.Conf.Vlan.BaseIface)
		if err != nil {
			return err
		}
		vlan.ParentIndex = parent.Attrs().Index
	}
	return e.Handle.LinkAdd(link)
}

// newLink builds the netlink.Link to create for a Conf entry. Only veth,
// bridge and vlan links are built, from their kind-specific params; an
// entry carrying only a Type, or neither, is rejected with a Conflict.
func newLink(c iface.Conf) (netlink.Link, error) {
	base := netlink.NewLinkAttrs()
	base.Name = c.Name

	if c.Veth != nil {
		return &netlink.Veth{LinkAttrs: base, PeerName: c.Veth.Peer}, nil
	}
	if c.Bridge != nil {
		br := &netlink.Bridge{LinkAttrs: base}
		if c.Bridge.VlanFiltering != nil {
			br.VlanFiltering = c.Bridge.VlanFiltering
		}
		return br, nil
	}
	if c.Vlan != nil {
		return &netlink.Vlan{LinkAttrs: base, VlanId: int(c.Vlan.VlanID)}, nil
	}
	if c.Type == nil {
		return nil, errs.Conflictf("ifconf.exec.create_link", "interface %q: creation requires a type or kind-specific params", c.Name)
	}
	return nil, errs.Conflictf("ifconf.exec.create_link", "interface %q: creation of type %q is not supported by this planner", c.Name, c.Type.String())
}

func (e *Executor) addAddr(op Operation) error {
	link, err := e.Handle.LinkByName(op.IfaceName)
	if err != nil {
		return err
	}
	ip := net.ParseIP(op.Addr.Address)
	if ip == nil {
		return errs.ProtocolParsef("ifconf.exec.add_addr", "interface %q: invalid address %q", op.IfaceName, op.Addr.Address)
	}
	bits := 32
	if op.Family == netlink.FAMILY_V6 {
		bits = 128
	}
	addr := &netlink.Addr{IPNet: &net.IPNet{IP: ip, Mask: net.CIDRMask(int(op.Addr.PrefixLen), bits)}}
	if op.Addr.ValidLft != nil {
		if s, ok := op.Addr.ValidLft.SecondsRemaining(); ok {
			addr.ValidLft = int(s)
		}
	}
	if op.Addr.PreferredLft != nil {
		if s, ok := op.Addr.PreferredLft.SecondsRemaining(); ok {
			addr.PreferedLft = int(s)
		}
	}
	return e.Handle.AddrAdd(link, addr)
}

func (e *Executor) delAddr(op Operation) error {
	link, err := e.Handle.LinkByName(op.IfaceName)
	if err != nil {
		return err
	}
	ip := net.ParseIP(op.Addr.Address)
	if ip == nil {
		return errs.ProtocolParsef("ifconf.exec.del_addr", "interface %q: invalid address %q", op.IfaceName, op.Addr.Address)
	}
	bits := 32
	if op.Family == netlink.FAMILY_V6 {
		bits = 128
	}
	addr := &netlink.Addr{IPNet: &net.IPNet{IP: ip, Mask: net.CIDRMask(int(op.Addr.PrefixLen), bits)}}
	return e.Handle.AddrDel(link, addr)
}
