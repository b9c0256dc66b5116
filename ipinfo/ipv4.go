package ipinfo

// AddrInfoV4 is one reported IPv4 address.
type AddrInfoV4 struct {
	Address      string   `yaml:"address" json:"address"`
	PrefixLen    uint8    `yaml:"prefix_len" json:"prefix_len"`
	ValidLft     Lifetime `yaml:"valid_lft" json:"valid_lft"`
	PreferredLft Lifetime `yaml:"preferred_lft" json:"preferred_lft"`
}

// IPv4Info is the full reported IPv4 state of an interface.
type IPv4Info struct {
	Addresses []AddrInfoV4 `yaml:"addresses" json:"addresses"`
}

// AddrConf is one desired address entry in an apply document, shared by
// both the ipv4 and ipv6 blocks since the document shape is identical
// for both families. Remove, when true, requests the address be
// deleted rather than added or reconciled — ifsnap's address config is
// delta-style, not a wholesale replacement of the interface's address
// list.
type AddrConf struct {
	Address      string    `yaml:"address" json:"address"`
	PrefixLen    uint8     `yaml:"prefix_len" json:"prefix_len"`
	ValidLft     *Lifetime `yaml:"valid_lft,omitempty" json:"valid_lft,omitempty"`
	PreferredLft *Lifetime `yaml:"preferred_lft,omitempty" json:"preferred_lft,omitempty"`
	Remove       bool      `yaml:"remove,omitempty" json:"remove,omitempty"`
}

// IPConf is the desired-state address list for one address family on
// one interface.
type IPConf struct {
	Addresses []AddrConf `yaml:"addresses,omitempty" json:"addresses,omitempty"`
}
