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
package ift_test

import (
	"context"
	"errors"
	"net/netip"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ift-go/ift/pkg/ift"
	"github.com/ift-go/ift/pkg/log/testlog"
	"github.com/ift-go/ift/pkg/netif"
	"github.com/ift-go/ift/pkg/netif/mock_netif"
	"github.com/ift-go/ift/pkg/private/xtest"
	"github.com/ift-go/ift/pkg/rfc"
)

func prefixes(s ...string) []netip.Prefix {
	r := make([]netip.Prefix, 0, len(s))
	for _, v := range s {
		r = append(r, netip.MustParsePrefix(v))
	}
	return r
}

var testInterfaces = netif.Static{
	{Name: "lo0", Up: true, Addrs: prefixes("127.0.0.1/8", "::1/128", "fe80::1/64")},
	{Name: "en0", Up: true, Addrs: prefixes("192.168.1.10/24", "2001:db8::10/64", "2a00:1450::5/64")},
	{Name: "en1", Up: false, Addrs: prefixes("10.0.0.5/8")},
	{Name: "utun0", Up: true, Addrs: prefixes("100.64.0.1/10")},
	{Name: "gif0", Up: false},
}

func testEvaluator(defaultIface string) *ift.Evaluator {
	return &ift.Evaluator{
		Interfaces: testInterfaces,
		Routes:     netif.StaticResolver(defaultIface),
		Table:      rfc.Default(),
	}
}

func TestEval(t *testing.T) {
	testCases := map[string]struct {
		Template string
		Default  string
		Expected []netip.Addr
	}{
		"all interfaces": {
			Template: "GetAllInterfaces",
			Expected: xtest.MustParseAddrs(t, "127.0.0.1", "::1", "fe80::1", "192.168.1.10", "2001:db8::10",
				"2a00:1450::5", "10.0.0.5", "100.64.0.1"),
		},
		"loopback ipv4": {
			Template: `GetInterface "lo0" | FilterIPv4`,
			Expected: xtest.MustParseAddrs(t, "127.0.0.1"),
		},
		"loopback first ipv6": {
			Template: `GetInterface "lo0" | FilterIPv6 | FilterFirst`,
			Expected: xtest.MustParseAddrs(t, "::1"),
		},
		"interface without addresses": {
			Template: `GetInterface "gif0"`,
			Expected: xtest.MustParseAddrs(t),
		},
		"unknown interface": {
			Template: `GetInterface "nope"`,
			Expected: xtest.MustParseAddrs(t),
		},
		"forwardable": {
			Template: "GetAllInterfaces | FilterForwardable",
			Expected: xtest.MustParseAddrs(t, "192.168.1.10", "2a00:1450::5", "10.0.0.5", "100.64.0.1"),
		},
		"global": {
			Template: "GetAllInterfaces | FilterGlobal",
			Expected: xtest.MustParseAddrs(t, "2a00:1450::5"),
		},
		"down": {
			Template: `GetAllInterfaces | FilterFlags "down"`,
			Expected: xtest.MustParseAddrs(t, "10.0.0.5"),
		},
		"last": {
			Template: "GetAllInterfaces | FilterLast",
			Expected: xtest.MustParseAddrs(t, "100.64.0.1"),
		},
		"last ipv6": {
			Template: "GetAllInterfaces | FilterIPv6 | FilterLast",
			Expected: xtest.MustParseAddrs(t, "2a00:1450::5"),
		},
		"sort by default is stable": {
			Template: `GetAllInterfaces | SortBy "default"`,
			Default:  "en0",
			Expected: xtest.MustParseAddrs(t, "192.168.1.10", "2001:db8::10", "2a00:1450::5", "127.0.0.1",
				"::1", "fe80::1", "10.0.0.5", "100.64.0.1"),
		},
		"sort by unknown default interface": {
			Template: `GetAllInterfaces | FilterIPv4 | SortBy "default"`,
			Default:  "eth9",
			Expected: xtest.MustParseAddrs(t, "127.0.0.1", "192.168.1.10", "10.0.0.5", "100.64.0.1"),
		},
		"private interfaces": {
			Template: "GetPrivateInterfaces",
			Default:  "utun0",
			Expected: xtest.MustParseAddrs(t, "100.64.0.1", "192.168.1.10", "2a00:1450::5"),
		},
		"private first": {
			Template: "GetPrivateInterfaces | FilterFirst",
			Default:  "en0",
			Expected: xtest.MustParseAddrs(t, "192.168.1.10"),
		},
		"stages after sort": {
			Template: `GetAllInterfaces | SortBy "default" | FilterIPv4 | FilterFirst`,
			Default:  "utun0",
			Expected: xtest.MustParseAddrs(t, "100.64.0.1"),
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := testEvaluator(tc.Default).Eval(testlog.Context(t), tc.Template)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestEvalEquivalence(t *testing.T) {
	ctx := context.Background()
	for _, name := range []string{"lo0", "en0", "en1", "utun0", "gif0", "missing", ""} {
		t.Run("GetInterface "+name, func(t *testing.T) {
			e := testEvaluator("en0")
			short, err := e.Eval(ctx, `GetInterface "`+name+`"`)
			require.NoError(t, err)
			long, err := e.Eval(ctx, `GetAllInterfaces | FilterName "`+name+`"`)
			require.NoError(t, err)
			assert.Equal(t, long, short)
		})
	}
	for _, def := range []string{"lo0", "en0", "utun0", "missing"} {
		t.Run("GetPrivateInterfaces default "+def, func(t *testing.T) {
			e := testEvaluator(def)
			short, err := e.Eval(ctx, "GetPrivateInterfaces")
			require.NoError(t, err)
			long, err := e.Eval(ctx,
				`GetAllInterfaces | FilterFlags "up" | FilterForwardable | SortBy "default"`)
			require.NoError(t, err)
			assert.Equal(t, long, short)
		})
	}
}

func TestEvalProperties(t *testing.T) {
	ctx := context.Background()
	e := testEvaluator("en0")
	eval := func(tmpl string) []netip.Addr {
		r, err := e.Eval(ctx, tmpl)
		assert.NoError(t, err, tmpl)
		return r
	}

	t.Run("version filter is idempotent", func(t *testing.T) {
		assert.Equal(t,
			eval("GetAllInterfaces | FilterIPv4"),
			eval("GetAllInterfaces | FilterIPv4 | FilterIPv4"))
		assert.Equal(t,
			eval("GetAllInterfaces | FilterIPv6"),
			eval("GetAllInterfaces | FilterIPv6 | FilterIPv6"))
	})
	t.Run("version filters are disjoint", func(t *testing.T) {
		assert.Empty(t, eval("GetAllInterfaces | FilterIPv4 | FilterIPv6"))
		assert.Empty(t, eval("GetAllInterfaces | FilterIPv6 | FilterIPv4"))
	})
	t.Run("first and last of nothing", func(t *testing.T) {
		assert.Empty(t, eval(`GetInterface "missing" | FilterFirst`))
		assert.Empty(t, eval(`GetInterface "missing" | FilterLast`))
		assert.Empty(t, eval(`GetInterface "missing" | FilterFirst | FilterLast`))
	})
	t.Run("sort keeps every binding", func(t *testing.T) {
		assert.ElementsMatch(t,
			eval("GetAllInterfaces"),
			eval(`GetAllInterfaces | SortBy "default"`))
	})
}

func TestEvalUnknownArgument(t *testing.T) {
	testCases := map[string]string{
		"flag":                  `GetAllInterfaces | FilterFlags "sideways"`,
		"flag case":             `GetAllInterfaces | FilterFlags "UP"`,
		"sort attribute":        `GetAllInterfaces | SortBy "name"`,
		"on empty input":        `GetInterface "missing" | FilterFlags "loopback"`,
		"after valid stages":    `GetAllInterfaces | FilterIPv4 | SortBy "default" | SortBy ""`,
		"empty flag":            `GetAllInterfaces | FilterFlags ""`,
		"before filtering down": `GetAllInterfaces | SortBy "address" | FilterFirst`,
	}
	for name, tmpl := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := testEvaluator("en0").Eval(context.Background(), tmpl)
			assert.ErrorIs(t, err, ift.ErrUnknownArgument)
			assert.NotErrorIs(t, err, ift.ErrSyntax)
			assert.Nil(t, got)
		})
	}
}

func TestEvalCollaborators(t *testing.T) {
	t.Run("syntax error runs nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		e := &ift.Evaluator{
			Interfaces: mock_netif.NewMockLister(ctrl),
			Routes:     mock_netif.NewMockDefaultRouteResolver(ctrl),
		}
		got, err := e.Eval(context.Background(), "GetAllInterfaces extra")
		assert.ErrorIs(t, err, ift.ErrSyntax)
		assert.Nil(t, got)
	})
	t.Run("interfaces enumerated once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lister := mock_netif.NewMockLister(ctrl)
		lister.EXPECT().Interfaces(gomock.Any()).Return([]netif.Interface(testInterfaces), nil)
		routes := mock_netif.NewMockDefaultRouteResolver(ctrl)
		routes.EXPECT().DefaultInterfaceName(gomock.Any()).Return("en0", nil).Times(2)
		e := &ift.Evaluator{Interfaces: lister, Routes: routes}
		got, err := e.Eval(context.Background(),
			`GetPrivateInterfaces | FilterName "en0" | SortBy "default"`)
		require.NoError(t, err)
		assert.Equal(t, xtest.MustParseAddrs(t, "192.168.1.10", "2a00:1450::5"), got)
	})
	t.Run("no route lookup without sort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lister := mock_netif.NewMockLister(ctrl)
		lister.EXPECT().Interfaces(gomock.Any()).Return([]netif.Interface(testInterfaces), nil)
		e := &ift.Evaluator{
			Interfaces: lister,
			Routes:     mock_netif.NewMockDefaultRouteResolver(ctrl),
		}
		_, err := e.Eval(context.Background(), "GetAllInterfaces | FilterGlobal")
		require.NoError(t, err)
	})
	t.Run("enumeration fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cause := errors.New("permission denied")
		lister := mock_netif.NewMockLister(ctrl)
		lister.EXPECT().Interfaces(gomock.Any()).Return(nil, cause)
		e := &ift.Evaluator{Interfaces: lister}
		got, err := e.Eval(context.Background(), "GetAllInterfaces")
		assert.ErrorIs(t, err, ift.ErrCollaborator)
		assert.ErrorIs(t, err, cause)
		assert.Nil(t, got)
	})
	t.Run("default route fails", func(t *testing.T) {
		e := &ift.Evaluator{
			Interfaces: testInterfaces,
			Routes:     netif.StaticResolver(""),
		}
		got, err := e.Eval(context.Background(), "GetPrivateInterfaces")
		assert.ErrorIs(t, err, ift.ErrCollaborator)
		assert.ErrorIs(t, err, netif.ErrNoDefaultRoute)
		assert.Nil(t, got)
	})
	t.Run("platform resolver by default", func(t *testing.T) {
		e := &ift.Evaluator{Interfaces: testInterfaces}
		all, err := e.Eval(context.Background(), "GetAllInterfaces")
		require.NoError(t, err)
		got, err := e.Eval(context.Background(), `GetAllInterfaces | SortBy "default"`)
		if err != nil {
			// Hosts without a routing table or netlink access.
			assert.ErrorIs(t, err, ift.ErrCollaborator)
			return
		}
		assert.ElementsMatch(t, all, got)
	})
	t.Run("platform resolver unused without sort", func(t *testing.T) {
		e := &ift.Evaluator{Interfaces: testInterfaces}
		_, err := e.Eval(context.Background(), "GetAllInterfaces | FilterGlobal")
		require.NoError(t, err)
	})
	t.Run("context is passed", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "v")
		ctrl := gomock.NewController(t)
		lister := mock_netif.NewMockLister(ctrl)
		lister.EXPECT().Interfaces(ctx).Return(nil, nil)
		routes := mock_netif.NewMockDefaultRouteResolver(ctrl)
		routes.EXPECT().DefaultInterfaceName(ctx).Return("lo0", nil)
		e := &ift.Evaluator{Interfaces: lister, Routes: routes}
		got, err := e.Eval(ctx, `GetAllInterfaces | SortBy "default"`)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestEvalUnmatchedPolicy(t *testing.T) {
	strict, err := rfc.New(rfc.RFC6890(), rfc.WithUnmatched(rfc.NotRoutable))
	require.NoError(t, err)
	e := testEvaluator("en0")
	e.Table = strict
	got, err := e.Eval(context.Background(), "GetAllInterfaces | FilterGlobal")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = e.Eval(context.Background(), "GetAllInterfaces | FilterForwardable")
	require.NoError(t, err)
	assert.Equal(t, xtest.MustParseAddrs(t, "192.168.1.10", "10.0.0.5", "100.64.0.1"), got)
}

func TestEvalFirst(t *testing.T) {
	e := testEvaluator("en0")
	addr, ok, err := e.EvalFirst(context.Background(), "GetPrivateInterfaces")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, netip.MustParseAddr("192.168.1.10"), addr)

	_, ok, err = e.EvalFirst(context.Background(), "GetAllInterfaces | FilterIPv4 | FilterIPv6")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = e.EvalFirst(context.Background(), "")
	assert.ErrorIs(t, err, ift.ErrSyntax)
	assert.False(t, ok)
}
