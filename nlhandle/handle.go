// Package nlhandle wraps *netlink.Handle with ifsnap's logging and
// error-classification conventions, the way the teacher's
// daemon/libnetwork/nlwrap package (referenced from
// osl/interface_linux_test.go but not itself vendored here) wraps the
// same library for its own namespace/interface management.
package nlhandle

import (
	"net"

	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"

	"github.com/ifsnap/ifsnap/errs"
)

var log = logrus.WithField("component", "nlhandle")

// Handle is a thin, logged wrapper over *netlink.Handle. ifsnap never
// talks to the kernel directly outside this package: every netlink
// round trip (dump or mutation) goes through a Handle method, so
// classification into the errs taxonomy happens in exactly one place.
type Handle struct {
	nl *netlink.Handle
}

// New wraps an existing *netlink.Handle (typically netlink.NewHandle()
// against the current namespace; ifsnap does not create or enter
// namespaces of its own accord, per SPEC_FULL.md's domain-stack note on
// vishvananda/netns).
func New(nl *netlink.Handle) *Handle {
	return &Handle{nl: nl}
}

// LinkList dumps every link visible in the handle's namespace.
func (h *Handle) LinkList() ([]netlink.Link, error) {
	links, err := h.nl.LinkList()
	if err != nil {
		return nil, errs.SysCallf("nlhandle.LinkList", "%v", err)
	}
	return links, nil
}

// AddrList dumps every address of the given family on link.
func (h *Handle) AddrList(link netlink.Link, family int) ([]netlink.Addr, error) {
	addrs, err := h.nl.AddrList(link, family)
	if err != nil {
		return nil, errs.SysCallf("nlhandle.AddrList", "link %q: %v", link.Attrs().Name, err)
	}
	return addrs, nil
}

// LinkByName resolves a single interface by name.
func (h *Handle) LinkByName(name string) (netlink.Link, error) {
	link, err := h.nl.LinkByName(name)
	if err != nil {
		if netlink.IsLinkNotFoundError(err) {
			return nil, errs.NotFoundf("nlhandle.LinkByName", "interface %q: %v", name, err)
		}
		return nil, errs.SysCallf("nlhandle.LinkByName", "interface %q: %v", name, err)
	}
	return link, nil
}

// LinkAdd creates a new interface.
func (h *Handle) LinkAdd(link netlink.Link) error {
	if err := h.nl.LinkAdd(link); err != nil {
		return errs.SysCallf("nlhandle.LinkAdd", "interface %q: %v", link.Attrs().Name, err)
	}
	return nil
}

// LinkDel removes an interface.
func (h *Handle) LinkDel(link netlink.Link) error {
	if err := h.nl.LinkDel(link); err != nil {
		return errs.SysCallf("nlhandle.LinkDel", "interface %q: %v", link.Attrs().Name, err)
	}
	return nil
}

// LinkSetUp brings an interface up.
func (h *Handle) LinkSetUp(link netlink.Link) error {
	if err := h.nl.LinkSetUp(link); err != nil {
		return errs.SysCallf("nlhandle.LinkSetUp", "interface %q: %v", link.Attrs().Name, err)
	}
	return nil
}

// LinkSetDown brings an interface down. The planner always calls this
// before LinkSetHardwareAddr (spec.md's MAC-change-requires-down rule).
func (h *Handle) LinkSetDown(link netlink.Link) error {
	if err := h.nl.LinkSetDown(link); err != nil {
		return errs.SysCallf("nlhandle.LinkSetDown", "interface %q: %v", link.Attrs().Name, err)
	}
	return nil
}

// LinkSetHardwareAddr changes an interface's MAC address. Callers must
// bring the link down first; the kernel rejects this call on an
// administratively-up interface for most link types.
func (h *Handle) LinkSetHardwareAddr(link netlink.Link, addr net.HardwareAddr) error {
	if err := h.nl.LinkSetHardwareAddr(link, addr); err != nil {
		return errs.SysCallf("nlhandle.LinkSetHardwareAddr", "interface %q: %v", link.Attrs().Name, err)
	}
	return nil
}

// LinkSetMaster attaches link to a bridge/bond/vrf controller.
func (h *Handle) LinkSetMaster(link netlink.Link, controller netlink.Link) error {
	if err := h.nl.LinkSetMaster(link, controller); err != nil {
		return errs.SysCallf("nlhandle.LinkSetMaster", "interface %q -> %q: %v",
			link.Attrs().Name, controller.Attrs().Name, err)
	}
	return nil
}

// LinkSetNoMaster detaches link from its current controller.
func (h *Handle) LinkSetNoMaster(link netlink.Link) error {
	if err := h.nl.LinkSetNoMaster(link); err != nil {
		return errs.SysCallf("nlhandle.LinkSetNoMaster", "interface %q: %v", link.Attrs().Name, err)
	}
	return nil
}

// AddrAdd adds an address to an interface, or replaces it (refreshing
// its lifetimes) if the interface already carries it.
func (h *Handle) AddrAdd(link netlink.Link, addr *netlink.Addr) error {
	if err := h.nl.AddrReplace(link, addr); err != nil {
		return errs.SysCallf("nlhandle.AddrAdd", "interface %q addr %v: %v", link.Attrs().Name, addr, err)
	}
	return nil
}

// AddrDel removes an address from an interface.
func (h *Handle) AddrDel(link netlink.Link, addr *netlink.Addr) error {
	if err := h.nl.AddrDel(link, addr); err != nil {
		return errs.SysCallf("nlhandle.AddrDel", "interface %q addr %v: %v", link.Attrs().Name, addr, err)
	}
	return nil
}

// Close releases the underlying netlink socket.
func (h *Handle) Close() {
	log.Debug("closing netlink handle")
	h.nl.Close()
}
