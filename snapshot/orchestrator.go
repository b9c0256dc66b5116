package snapshot

import (
	"context"

	"github.com/safchain/ethtool"
	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
	"golang.org/x/sync/errgroup"

	"github.com/ifsnap/ifsnap/errs"
	"github.com/ifsnap/ifsnap/iface"
	"github.com/ifsnap/ifsnap/nlhandle"
)

var log = logrus.WithField("component", "snapshot")

// dumpResult carries one link from the link dump plus its raw addresses,
// collected before the reduce/resolve passes run, since the per-link
// family address dumps are issued concurrently.
type dumpResult struct {
	link  netlink.Link
	addrs []netlink.Addr
}

// Retrieve enumerates links, addresses, and (best-effort) ethtool state
// on the given handle's namespace and reduces them into a NetState.
//
// The link-dump runs first and is fail-fast (no usable snapshot is
// possible without it); the per-link address dumps then run
// concurrently on one errgroup, and the ethtool queries run after them.
// Address and ethtool failures are logged and their fields left empty on failure rather than aborting
// the whole retrieval, per §4.5's failure policy. A snapshot is never
// partially returned: Retrieve returns either the whole record set or
// a single error.
func Retrieve(ctx context.Context, h *nlhandle.Handle) (*NetState, error) {
	links, err := h.LinkList()
	if err != nil {
		return nil, errs.SysCallf("snapshot.Retrieve", "link dump: %v", err)
	}

	results := make([]dumpResult, len(links))
	g, gctx := errgroup.WithContext(ctx)
	for i, link := range links {
		i, link := i, link
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i].link = link
			var addrs []netlink.Addr
			for _, family := range []int{netlink.FAMILY_V4, netlink.FAMILY_V6} {
				a, err := h.AddrList(link, family)
				if err != nil {
					log.WithError(err).WithField("iface", link.Attrs().Name).
						Warn("address dump failed, leaving address fields empty")
					continue
				}
				addrs = append(addrs, a...)
			}
			results[i].addrs = addrs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errs.SysCallf("snapshot.Retrieve", "concurrent dump: %v", err)
	}

	ifaces := make(map[string]*iface.Iface, len(results))
	for _, r := range results {
		if r.link == nil {
			continue
		}
		rec := iface.Decode(r.link)
		FillAddresses(rec, r.addrs)
		ifaces[rec.Name] = rec
	}

	fillEthtool(ifaces)
	Resolve(ifaces)

	return &NetState{Ifaces: ifaces}, nil
}

// fillEthtool runs the secondary ethtool query phase. Failures are
// logged and leave Ethtool nil, matching the link-dump's fail-fast vs.
// secondary-dump's log-and-continue split.
func fillEthtool(ifaces map[string]*iface.Iface) {
	e, err := ethtool.NewEthtool()
	if err != nil {
		log.WithError(err).Warn("ethtool unavailable, leaving ethtool fields empty")
		return
	}
	defer e.Close()

	for name, rec := range ifaces {
		info, err := iface.QueryEthtool(e, name)
		if err != nil {
			log.WithError(err).WithField("iface", name).Debug("ethtool query failed")
			continue
		}
		rec.Ethtool = info
	}
}
