package errs

import (
	"errors"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestErrorInterfaces(t *testing.T) {
	notFound := []error{NotFoundf("decode.link", "interface %q not found", "eth9")}
	for _, err := range notFound {
		assert.Check(t, is.ErrorType(err, cerrdefs.IsNotFound))
		assert.Check(t, !cerrdefs.IsInvalidArgument(err))
	}

	invalidArg := []error{
		ProtocolParsef("decode.bond", "unexpected attribute length %d", 3),
		Conflictf("plan.diff", "interface %q requested as both veth and vlan", "eth0"),
	}
	for _, err := range invalidArg {
		assert.Check(t, is.ErrorType(err, cerrdefs.IsInvalidArgument))
		assert.Check(t, !cerrdefs.IsNotFound(err))
	}

	unknown := []error{SysCallf("exec.linkadd", "netlink request rejected")}
	for _, err := range unknown {
		assert.Check(t, is.ErrorType(err, cerrdefs.IsUnknown))
		assert.Check(t, !cerrdefs.IsInternal(err))
	}

	internal := []error{Bugf("resolver.tidy", "index %d missing from name table", 7)}
	for _, err := range internal {
		assert.Check(t, is.ErrorType(err, cerrdefs.IsInternal))
		assert.Check(t, !cerrdefs.IsUnknown(err))
	}
}

func TestKindOf(t *testing.T) {
	err := NotFoundf("decode.link", "interface %q not found", "eth9")
	k, ok := KindOf(err)
	assert.Check(t, ok)
	assert.Check(t, is.Equal(k, KindNotFound))

	wrapped := errors.New("wrap: " + err.Error())
	_, ok = KindOf(wrapped)
	assert.Check(t, !ok)
}

func TestErrorMessage(t *testing.T) {
	err := ProtocolParsef("decode.bond", "bad length %d", 3)
	assert.Check(t, is.Equal(err.Error(), "protocol_parse: decode.bond: bad length 3"))
}
