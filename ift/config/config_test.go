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
package config_test

import (
	"bytes"
	"context"
	"net/netip"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ift-go/ift/ift/config"
	"github.com/ift-go/ift/pkg/netif"
	"github.com/ift-go/ift/pkg/private/xtest"
	privconfig "github.com/ift-go/ift/private/config"
)

func TestSampleCorrect(t *testing.T) {
	var sample bytes.Buffer
	var cfg config.Config
	cfg.Sample(&sample, nil, nil)

	var decoded config.Config
	require.NoError(t, privconfig.Decode(sample.Bytes(), &decoded))
	decoded.InitDefaults()
	require.NoError(t, decoded.Validate())
	assert.Equal(t, "info", decoded.Logging.Console.Level)
	assert.Equal(t, config.SourceSystem, decoded.Source.Mode)
	assert.Equal(t, config.RouteAuto, decoded.Route.Mode)
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.SourceSystem, cfg.Source.Mode)
	assert.Equal(t, config.RouteAuto, cfg.Route.Mode)
	assert.Equal(t, "human", cfg.Logging.Console.Format)
}

func TestValidate(t *testing.T) {
	testCases := map[string]struct {
		Input    string
		ErrCheck assert.ErrorAssertionFunc
	}{
		"empty": {
			Input:    "",
			ErrCheck: assert.NoError,
		},
		"static": {
			Input: `
[source]
mode = "static"

[[source.interfaces]]
name = "lo0"
up = true
addrs = ["127.0.0.1/8", "::1"]

[route]
mode = "static"
default_interface = "lo0"
`,
			ErrCheck: assert.NoError,
		},
		"unknown source mode": {
			Input:    "[source]\nmode = \"magic\"\n",
			ErrCheck: assert.Error,
		},
		"interfaces without static mode": {
			Input:    "[source]\nmode = \"system\"\n[[source.interfaces]]\nname = \"lo0\"\n",
			ErrCheck: assert.Error,
		},
		"interface without name": {
			Input:    "[source]\nmode = \"static\"\n[[source.interfaces]]\nup = true\n",
			ErrCheck: assert.Error,
		},
		"invalid static address": {
			Input: "[source]\nmode = \"static\"\n[[source.interfaces]]\n" +
				"name = \"lo0\"\naddrs = [\"127.0.0.300\"]\n",
			ErrCheck: assert.Error,
		},
		"unknown route mode": {
			Input:    "[route]\nmode = \"guess\"\n",
			ErrCheck: assert.Error,
		},
		"static route without name": {
			Input:    "[route]\nmode = \"static\"\n",
			ErrCheck: assert.Error,
		},
		"invalid log level": {
			Input:    "[log.console]\nlevel = \"loud\"\n",
			ErrCheck: assert.Error,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var cfg config.Config
			require.NoError(t, privconfig.Decode([]byte(tc.Input), &cfg))
			cfg.InitDefaults()
			tc.ErrCheck(t, cfg.Validate())
		})
	}
}

func TestLoad(t *testing.T) {
	file := xtest.MustWriteFile(t, "ift.toml", `
[source]
mode = "static"

[[source.interfaces]]
name = "en0"
up = true
addrs = ["192.168.1.10/24"]

[route]
mode = "static"
default_interface = "en0"
`)
	cfg, err := config.Load(file)
	require.NoError(t, err)

	lister, err := cfg.Source.NewLister()
	require.NoError(t, err)
	ifaces, err := lister.Interfaces(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []netif.Interface{{
		Name:  "en0",
		Up:    true,
		Addrs: []netip.Prefix{netip.MustParsePrefix("192.168.1.10/24")},
	}}, ifaces)

	resolver, err := cfg.Route.NewResolver()
	require.NoError(t, err)
	name, err := resolver.DefaultInterfaceName(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "en0", name)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := xtest.MustWriteFile(t, "bad.toml", "[source]\nunknown = 1\n")
	_, err = config.Load(bad)
	assert.Error(t, err)
}

func TestCollaborators(t *testing.T) {
	src := config.Source{Mode: config.SourceSystem}
	lister, err := src.NewLister()
	require.NoError(t, err)
	assert.Equal(t, netif.System{}, lister)

	route := config.Route{Mode: config.RouteCommand}
	resolver, err := route.NewResolver()
	require.NoError(t, err)
	assert.Equal(t, netif.CommandResolver{}, resolver)

	_, err = (&config.Route{Mode: "guess"}).NewResolver()
	assert.Error(t, err)
	_, err = (&config.Source{Mode: "magic"}).NewLister()
	assert.Error(t, err)
}
