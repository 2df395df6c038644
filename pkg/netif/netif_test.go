// Copyright 2026 The ift Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package netif_test

import (
	"context"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ift-go/ift/pkg/netif"
)

func TestParseAddr(t *testing.T) {
	testCases := map[string]struct {
		Input     string
		Expected  netip.Prefix
		ErrAssert assert.ErrorAssertionFunc
	}{
		"prefix keeps host bits": {
			Input:     "10.0.0.2/24",
			Expected:  netip.MustParsePrefix("10.0.0.2/24"),
			ErrAssert: assert.NoError,
		},
		"bare ipv4": {
			Input:     "127.0.0.1",
			Expected:  netip.MustParsePrefix("127.0.0.1/32"),
			ErrAssert: assert.NoError,
		},
		"bare ipv6": {
			Input:     "::1",
			Expected:  netip.MustParsePrefix("::1/128"),
			ErrAssert: assert.NoError,
		},
		"garbage": {
			Input:     "not-an-ip",
			ErrAssert: assert.Error,
		},
		"bad prefix": {
			Input:     "10.0.0.1/33",
			ErrAssert: assert.Error,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := netif.ParseAddr(tc.Input)
			tc.ErrAssert(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestStatic(t *testing.T) {
	s := netif.Static{
		{Name: "lo0", Up: true, Addrs: []netip.Prefix{netip.MustParsePrefix("127.0.0.1/8")}},
		{Name: "en0", Addrs: nil},
	}
	got, err := s.Interfaces(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "lo0 (up) [127.0.0.1/8]", got[0].String())
	assert.Equal(t, "en0 (down) []", got[1].String())

	got[0].Addrs[0] = netip.MustParsePrefix("10.0.0.1/8")
	again, err := s.Interfaces(context.Background())
	require.NoError(t, err)
	assert.Equal(t, netip.MustParsePrefix("127.0.0.1/8"), again[0].Addrs[0])
}

func TestStaticResolver(t *testing.T) {
	name, err := netif.StaticResolver("eth0").DefaultInterfaceName(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "eth0", name)

	_, err = netif.StaticResolver("").DefaultInterfaceName(context.Background())
	assert.ErrorIs(t, err, netif.ErrNoDefaultRoute)
}

func TestSystem(t *testing.T) {
	ifaces, err := netif.System{}.Interfaces(context.Background())
	require.NoError(t, err)
	for _, i := range ifaces {
		assert.NotEmpty(t, i.Name)
		for _, a := range i.Addrs {
			assert.True(t, a.IsValid(), i.Name)
			assert.False(t, a.Addr().Is4In6(), i.Name)
		}
	}
}
