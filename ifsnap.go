// Package ifsnap retrieves and applies network interface state the way
// the kernel's rtnetlink/ethtool/sysfs surfaces expose it: NetState is
// the immutable snapshot, NetConf is the desired-state document, and
// Retrieve/Apply are the two operations spec.md names at the top
// level.
package ifsnap

import (
	"context"

	"github.com/vishvananda/netlink"

	"github.com/ifsnap/ifsnap/ifconf"
	"github.com/ifsnap/ifsnap/nlhandle"
	"github.com/ifsnap/ifsnap/snapshot"
)

// NetState is a coherent snapshot of every interface visible in a
// namespace.
type NetState = snapshot.NetState

// NetConf is a desired-configuration document.
type NetConf = ifconf.NetConf

// Handle is ifsnap's entry point: one netlink socket plus the sysfs
// reads layered on top of it. Only one Retrieve or Apply may be in
// flight on a given Handle at a time (spec.md §5's shared-resource
// rule); callers needing concurrent snapshots should open separate
// Handles.
type Handle struct {
	nl *nlhandle.Handle
}

// NewHandle opens a netlink socket against the current network
// namespace. ifsnap never creates or enters namespaces itself
// (SPEC_FULL.md §5's netns note): callers who need a different
// namespace should enter it before calling NewHandle, the same
// responsibility-split the teacher's osl.Namespace leaves to its
// caller.
func NewHandle() (*Handle, error) {
	nl, err := netlink.NewHandle()
	if err != nil {
		return nil, err
	}
	return &Handle{nl: nlhandle.New(nl)}, nil
}

// Close releases the underlying netlink socket.
func (h *Handle) Close() {
	h.nl.Close()
}

// Retrieve assembles a NetState snapshot, per spec.md §4.5.
func (h *Handle) Retrieve(ctx context.Context) (*NetState, error) {
	return snapshot.Retrieve(ctx, h.nl)
}

// Apply reconciles conf against the current state, per spec.md
// §4.6/§4.7.
func (h *Handle) Apply(conf NetConf) error {
	a := &ifconf.Applier{Handle: h.nl}
	return a.Apply(conf)
}
