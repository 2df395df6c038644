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
package netif

import (
	"context"
	"net"
	"net/netip"

	"go4.org/netipx"

	"github.com/ift-go/ift/pkg/log"
	"github.com/ift-go/ift/pkg/private/serrors"
)

// System is a Lister backed by the interface enumeration of the Go runtime.
// It is available on every platform.
type System struct{}

func (System) Interfaces(ctx context.Context) ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, serrors.Wrap("listing interfaces", err)
	}
	logger := log.FromCtx(ctx)
	r := make([]Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			return nil, serrors.Wrap("listing interface addresses", err, "interface", iface.Name)
		}
		i := Interface{
			Name:  iface.Name,
			Up:    iface.Flags&net.FlagUp != 0,
			Addrs: make([]netip.Prefix, 0, len(addrs)),
		}
		for _, a := range addrs {
			p, ok := fromNetAddr(a)
			if !ok {
				logger.Debug("Ignoring unsupported interface address",
					"interface", iface.Name, "addr", a.String())
				continue
			}
			i.Addrs = append(i.Addrs, p)
		}
		r = append(r, i)
	}
	return r, nil
}

func fromNetAddr(a net.Addr) (netip.Prefix, bool) {
	switch v := a.(type) {
	case *net.IPNet:
		return fromIPNet(v)
	case *net.IPAddr:
		ip, ok := netipx.FromStdIP(v.IP)
		if !ok {
			return netip.Prefix{}, false
		}
		return netip.PrefixFrom(ip, ip.BitLen()), true
	default:
		return netip.Prefix{}, false
	}
}

// fromIPNet converts n keeping its host bits. IPv4-mapped addresses are
// unmapped.
func fromIPNet(n *net.IPNet) (netip.Prefix, bool) {
	if n == nil {
		return netip.Prefix{}, false
	}
	return netipx.FromStdIPNet(n)
}
