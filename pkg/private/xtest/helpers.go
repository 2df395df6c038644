// Copyright 2018 ETH Zurich
// Copyright 2020 ETH Zurich, Anapaya Systems
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

// Package xtest contains helpers for tests.
package xtest

import (
	"net"
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// MustParseAddr parses s and fails the test if it is not a valid address.
func MustParseAddr(t testing.TB, s string) netip.Addr {
	t.Helper()

	a, err := netip.ParseAddr(s)
	require.NoError(t, err)
	return a
}

// MustParseAddrs parses the entries and returns the addresses in order. The
// result is never nil.
func MustParseAddrs(t testing.TB, entries ...string) []netip.Addr {
	t.Helper()

	result := make([]netip.Addr, 0, len(entries))
	for _, e := range entries {
		result = append(result, MustParseAddr(t, e))
	}
	return result
}

// MustParsePrefixes parses the CIDR entries and returns a list containing the
// parsed prefixes. Host bits are preserved.
func MustParsePrefixes(t testing.TB, entries ...string) []netip.Prefix {
	t.Helper()

	result := make([]netip.Prefix, 0, len(entries))
	for _, e := range entries {
		p, err := netip.ParsePrefix(e)
		require.NoError(t, err)
		result = append(result, p)
	}
	return result
}

// MustParseCIDR parses s and returns the corresponding net.IPNet object with
// the host address in the IP field, the way interface addresses are reported.
// It fails the test if s is not a valid CIDR string.
func MustParseCIDR(t testing.TB, s string) *net.IPNet {
	t.Helper()

	ip, network, err := net.ParseCIDR(s)
	require.NoError(t, err)
	network.IP = ip
	return network
}

// MustWriteFile writes content to a file called name in a temporary
// directory of the test and returns the path.
func MustWriteFile(t testing.TB, name string, content string) string {
	t.Helper()

	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}
