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
// Package netif enumerates the network interfaces of the host and resolves
// the interface that holds the default route.
//
// The interface template evaluator consumes both through the Lister and
// DefaultRouteResolver interfaces. This package provides implementations
// backed by the Go runtime (System), by Linux netlink (NetlinkLister,
// NetlinkResolver), by the OS routing commands (CommandResolver) and by
// static data (Static, StaticResolver).
package netif

import (
	"context"
	"net/netip"
	"strings"

	"github.com/ift-go/ift/pkg/private/serrors"
)

// ErrNoDefaultRoute indicates that the system has no default route.
var ErrNoDefaultRoute = serrors.New("no default route found")

// Interface is a network interface with its bound addresses.
type Interface struct {
	// Name is the name of the interface.
	Name string
	// Up is true if the interface is administratively up.
	Up bool
	// Addrs are the addresses bound to the interface, in the order reported
	// by the system. Bare addresses are represented as single IP prefixes.
	Addrs []netip.Prefix
}

func (i Interface) String() string {
	state := "down"
	if i.Up {
		state = "up"
	}
	addrs := make([]string, 0, len(i.Addrs))
	for _, a := range i.Addrs {
		addrs = append(addrs, a.String())
	}
	return i.Name + " (" + state + ") [" + strings.Join(addrs, " ") + "]"
}

// Lister enumerates the network interfaces of the host.
type Lister interface {
	// Interfaces returns the interfaces in enumeration order.
	Interfaces(ctx context.Context) ([]Interface, error)
}

// DefaultRouteResolver resolves the name of the interface holding the
// default route.
type DefaultRouteResolver interface {
	// DefaultInterfaceName returns the interface name. ErrNoDefaultRoute is
	// returned if there is no default route.
	DefaultInterfaceName(ctx context.Context) (string, error)
}

// Static is a Lister that returns a fixed list of interfaces.
type Static []Interface

// Interfaces returns a deep copy of the static interfaces.
func (s Static) Interfaces(_ context.Context) ([]Interface, error) {
	r := make([]Interface, 0, len(s))
	for _, i := range s {
		i.Addrs = append([]netip.Prefix(nil), i.Addrs...)
		r = append(r, i)
	}
	return r, nil
}

// StaticResolver is a DefaultRouteResolver that returns a fixed name. The
// empty name means there is no default route.
type StaticResolver string

func (s StaticResolver) DefaultInterfaceName(_ context.Context) (string, error) {
	if s == "" {
		return "", ErrNoDefaultRoute
	}
	return string(s), nil
}

// ParseAddr parses an interface address. Both prefix notation (10.0.0.2/24)
// and bare addresses (::1) are accepted; the latter yield a single IP prefix.
// The host bits of a prefix are preserved.
func ParseAddr(s string) (netip.Prefix, error) {
	if strings.Contains(s, "/") {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Prefix{}, serrors.Wrap("parsing interface address", err, "input", s)
		}
		return p, nil
	}
	a, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, serrors.Wrap("parsing interface address", err, "input", s)
	}
	return netip.PrefixFrom(a, a.BitLen()), nil
}
