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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ift-go/ift/pkg/netif"
)

func TestParseIPRoute(t *testing.T) {
	testCases := map[string]struct {
		Output   string
		Expected string
		NoRoute  bool
	}{
		"docker": {
			Output: "default via 172.17.0.1 dev eth0 \n" +
				"172.17.0.0/16 dev eth0 proto kernel scope link src 172.17.0.2\n",
			Expected: "eth0",
		},
		"default not first": {
			Output: "10.0.0.0/24 dev ens3 proto kernel scope link src 10.0.0.5\n" +
				"default via 10.0.0.1 dev ens3 proto dhcp src 10.0.0.5 metric 100\n",
			Expected: "ens3",
		},
		"point to point": {
			Output:   "default dev wg0 scope link\n",
			Expected: "wg0",
		},
		"no default": {
			Output:  "172.17.0.0/16 dev eth0 proto kernel scope link src 172.17.0.2\n",
			NoRoute: true,
		},
		"empty": {
			Output:  "",
			NoRoute: true,
		},
		"truncated": {
			Output:  "default via 10.0.0.1 dev\n",
			NoRoute: true,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := netif.ParseIPRoute([]byte(tc.Output))
			if tc.NoRoute {
				assert.ErrorIs(t, err, netif.ErrNoDefaultRoute)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestParseRouteGet(t *testing.T) {
	testCases := map[string]struct {
		Output   string
		Expected string
		NoRoute  bool
	}{
		"macos": {
			Output: "   route to: default\n" +
				"destination: default\n" +
				"       mask: default\n" +
				"    gateway: 192.168.1.1\n" +
				"  interface: en0\n" +
				"      flags: <UP,GATEWAY,DONE,STATIC,PRCLONING>\n",
			Expected: "en0",
		},
		"not in table": {
			Output:  "route: writing to routing socket: not in table\n",
			NoRoute: true,
		},
		"empty interface": {
			Output:  "  interface: \n",
			NoRoute: true,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := netif.ParseRouteGet([]byte(tc.Output))
			if tc.NoRoute {
				assert.ErrorIs(t, err, netif.ErrNoDefaultRoute)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestCommandResolver(t *testing.T) {
	t.Run("linux", func(t *testing.T) {
		var called []string
		r := netif.CommandResolver{
			GOOS: "linux",
			Run: func(_ context.Context, name string, args ...string) ([]byte, error) {
				called = append(called, args...)
				return []byte("default via 10.0.0.1 dev eth1\n"), nil
			},
		}
		name, err := r.DefaultInterfaceName(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "eth1", name)
		assert.Equal(t, []string{"route"}, called)
	})
	t.Run("darwin", func(t *testing.T) {
		var gotName string
		var gotArgs []string
		r := netif.CommandResolver{
			GOOS: "darwin",
			Run: func(_ context.Context, name string, args ...string) ([]byte, error) {
				gotName, gotArgs = name, args
				return []byte("  interface: en1\n"), nil
			},
		}
		name, err := r.DefaultInterfaceName(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "en1", name)
		assert.Equal(t, "route", gotName)
		assert.Equal(t, []string{"-n", "get", "default"}, gotArgs)
	})
	t.Run("command fails", func(t *testing.T) {
		cause := errors.New("exit status 2")
		r := netif.CommandResolver{
			GOOS: "linux",
			Run: func(context.Context, string, ...string) ([]byte, error) {
				return nil, cause
			},
		}
		_, err := r.DefaultInterfaceName(context.Background())
		assert.ErrorIs(t, err, cause)
	})
	t.Run("unsupported", func(t *testing.T) {
		r := netif.CommandResolver{
			GOOS: "plan9",
			Run: func(context.Context, string, ...string) ([]byte, error) {
				t.Fatal("must not run")
				return nil, nil
			},
		}
		_, err := r.DefaultInterfaceName(context.Background())
		assert.Error(t, err)
	})
}
