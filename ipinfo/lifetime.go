// Package ipinfo models the per-address IPv4/IPv6 state ifsnap reports
// and the desired-state address configuration it accepts, grounded on
// nispor's ip.rs (resolved via its crate_tests/ip.rs fixtures, since the
// library source itself was not part of the retrieval pack).
package ipinfo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ifsnap/ifsnap/errs"
)

// Lifetime is an address's valid_lft/preferred_lft: either permanent
// ("forever") or a remaining duration in whole seconds ("<N>sec"), the
// two spellings the wire document accepts per spec.md's Open Question.
type Lifetime struct {
	forever  bool
	seconds  uint32
}

// Forever is the permanent lifetime.
var Forever = Lifetime{forever: true}

// Seconds builds a lifetime expiring in n seconds.
func Seconds(n uint32) Lifetime { return Lifetime{seconds: n} }

// ForeverSentinel is the kernel's infinite lifetime value
// (INFINITY_LIFE_TIME, 0xFFFFFFFF), used by decoders to recognize a permanent address.
const ForeverSentinel uint32 = 0xFFFFFFFF

// FromKernelSeconds converts a raw IFA_CACHEINFO lifetime field into a
// Lifetime, treating the 0xFFFFFFFF sentinel as Forever.
func FromKernelSeconds(raw uint32) Lifetime {
	if raw == ForeverSentinel {
		return Forever
	}
	return Seconds(raw)
}

// IsForever reports whether the lifetime is permanent.
func (l Lifetime) IsForever() bool { return l.forever }

// SecondsRemaining returns the remaining seconds and true, or (0, false)
// if the lifetime is Forever.
func (l Lifetime) SecondsRemaining() (uint32, bool) {
	if l.forever {
		return 0, false
	}
	return l.seconds, true
}

// Duration converts a finite lifetime to a time.Duration; Forever
// returns 0, false.
func (l Lifetime) Duration() (time.Duration, bool) {
	if l.forever {
		return 0, false
	}
	return time.Duration(l.seconds) * time.Second, true
}

func (l Lifetime) String() string {
	if l.forever {
		return "forever"
	}
	return fmt.Sprintf("%dsec", l.seconds)
}

// MarshalYAML renders the lifetime in the document's accepted spelling.
func (l Lifetime) MarshalYAML() (any, error) {
	return l.String(), nil
}

// UnmarshalYAML accepts both "forever" and "<N>sec".
func (l *Lifetime) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseLifetime(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// UnmarshalJSON accepts both "forever" and "<N>sec" as JSON strings.
func (l *Lifetime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseLifetime(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLifetime parses the document spelling ("forever" or "<N>sec")
// into a Lifetime.
func ParseLifetime(s string) (Lifetime, error) {
	s = strings.TrimSpace(s)
	if s == "forever" {
		return Forever, nil
	}
	n, ok := strings.CutSuffix(s, "sec")
	if !ok {
		return Lifetime{}, errs.ProtocolParsef("ipinfo.lifetime", "lifetime %q must be \"forever\" or \"<N>sec\"", s)
	}
	v, err := strconv.ParseUint(n, 10, 32)
	if err != nil {
		return Lifetime{}, errs.ProtocolParsef("ipinfo.lifetime", "invalid lifetime seconds %q: %v", n, err)
	}
	return Seconds(uint32(v)), nil
}
