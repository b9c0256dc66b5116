package ipinfo

import (
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestParseLifetime(t *testing.T) {
	cases := []struct {
		in   string
		want Lifetime
	}{
		{"forever", Forever},
		{"120sec", Seconds(120)},
		{"0sec", Seconds(0)},
	}
	for _, tc := range cases {
		got, err := ParseLifetime(tc.in)
		assert.NilError(t, err)
		assert.Check(t, is.Equal(got.String(), tc.want.String()))
		assert.Check(t, is.Equal(got.String(), tc.in))
	}
}

func TestParseLifetimeInvalid(t *testing.T) {
	_, err := ParseLifetime("soon")
	assert.Check(t, err != nil)
}

func TestFromKernelSeconds(t *testing.T) {
	assert.Check(t, is.Equal(FromKernelSeconds(ForeverSentinel).String(), Forever.String()))
	assert.Check(t, is.Equal(FromKernelSeconds(60).String(), Seconds(60).String()))
}
