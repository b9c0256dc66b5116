package ipinfo

// AddrInfoV6 is one reported IPv6 address, including link-local
// addresses the kernel autoconfigures (e.g. fe80::/64), which always
// show up alongside any addresses an apply document requested.
type AddrInfoV6 struct {
	Address      string   `yaml:"address" json:"address"`
	PrefixLen    uint8    `yaml:"prefix_len" json:"prefix_len"`
	ValidLft     Lifetime `yaml:"valid_lft" json:"valid_lft"`
	PreferredLft Lifetime `yaml:"preferred_lft" json:"preferred_lft"`
}

// IPv6Info is the full reported IPv6 state of an interface. Token is
// the IPV6_TOKEN the kernel uses to derive the interface identifier for
// autoconfigured addresses, reported as a compressed address fragment
// (e.g. "::fac1") when the kernel exposes one.
//
// Token is never populated by any decoder in this tree today: reading
// it back requires a netlink call this library's dependency graph has
// no grounded source for (see DESIGN.md's ipinfo entry). The field
// stays so the document shape matches spec.md, and so a future decoder
// has somewhere to write the value once that call is grounded.
type IPv6Info struct {
	Addresses []AddrInfoV6 `yaml:"addresses" json:"addresses"`
	Token     *string      `yaml:"token,omitempty" json:"token,omitempty"`
}
