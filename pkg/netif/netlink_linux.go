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
//go:build linux

package netif

import (
	"context"
	"net"
	"net/netip"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"

	"github.com/ift-go/ift/pkg/log"
	"github.com/ift-go/ift/pkg/private/serrors"
)

// netlinkHandle is the subset of *netlink.Handle used by this package.
type netlinkHandle interface {
	LinkList() ([]netlink.Link, error)
	LinkByIndex(index int) (netlink.Link, error)
	AddrList(link netlink.Link, family int) ([]netlink.Addr, error)
	RouteListFiltered(family int, filter *netlink.Route, filterMask uint64) ([]netlink.Route, error)
	Close()
}

var _ netlinkHandle = (*netlink.Handle)(nil)

func newNetlinkHandle() (netlinkHandle, error) {
	h, err := netlink.NewHandle(unix.NETLINK_ROUTE)
	if err != nil {
		return nil, serrors.Wrap("opening netlink handle", err)
	}
	return h, nil
}

// NetlinkLister is a Lister that queries the kernel over netlink.
type NetlinkLister struct {
	handle netlinkHandle
}

// NewNetlinkLister opens a netlink handle. The caller must close the lister.
func NewNetlinkLister() (*NetlinkLister, error) {
	h, err := newNetlinkHandle()
	if err != nil {
		return nil, err
	}
	return &NetlinkLister{handle: h}, nil
}

func (l *NetlinkLister) Interfaces(ctx context.Context) ([]Interface, error) {
	links, err := l.handle.LinkList()
	if err != nil {
		return nil, serrors.Wrap("listing links", err)
	}
	logger := log.FromCtx(ctx)
	r := make([]Interface, 0, len(links))
	for _, link := range links {
		attrs := link.Attrs()
		addrs, err := l.handle.AddrList(link, netlink.FAMILY_ALL)
		if err != nil {
			return nil, serrors.Wrap("listing link addresses", err, "interface", attrs.Name)
		}
		i := Interface{
			Name:  attrs.Name,
			Up:    attrs.Flags&net.FlagUp != 0,
			Addrs: make([]netip.Prefix, 0, len(addrs)),
		}
		for _, a := range addrs {
			p, ok := fromIPNet(a.IPNet)
			if !ok {
				logger.Debug("Ignoring invalid link address", "interface", attrs.Name)
				continue
			}
			i.Addrs = append(i.Addrs, p)
		}
		r = append(r, i)
	}
	return r, nil
}

func (l *NetlinkLister) Close() error {
	l.handle.Close()
	return nil
}

// NetlinkResolver is a DefaultRouteResolver that reads the main routing
// table over netlink. If there are several default routes, the one with the
// lowest priority wins.
type NetlinkResolver struct {
	handle netlinkHandle
}

// NewNetlinkResolver opens a netlink handle. The caller must close the
// resolver.
func NewNetlinkResolver() (*NetlinkResolver, error) {
	h, err := newNetlinkHandle()
	if err != nil {
		return nil, err
	}
	return &NetlinkResolver{handle: h}, nil
}

func (r *NetlinkResolver) DefaultInterfaceName(ctx context.Context) (string, error) {
	routes, err := r.handle.RouteListFiltered(netlink.FAMILY_ALL,
		&netlink.Route{Table: unix.RT_TABLE_MAIN}, netlink.RT_FILTER_TABLE)
	if err != nil {
		return "", serrors.Wrap("listing routes", err)
	}
	index, found := 0, false
	var priority int
	for _, route := range routes {
		if !isDefault(route) {
			continue
		}
		li := routeLinkIndex(route)
		if li <= 0 {
			continue
		}
		if !found || route.Priority < priority {
			index, priority, found = li, route.Priority, true
		}
	}
	if !found {
		return "", ErrNoDefaultRoute
	}
	link, err := r.handle.LinkByIndex(index)
	if err != nil {
		return "", serrors.Wrap("resolving default route link", err, "index", index)
	}
	log.FromCtx(ctx).Debug("Resolved default route", "interface", link.Attrs().Name,
		"priority", priority)
	return link.Attrs().Name, nil
}

func (r *NetlinkResolver) Close() error {
	r.handle.Close()
	return nil
}

func isDefault(route netlink.Route) bool {
	if route.Dst == nil {
		return true
	}
	ones, _ := route.Dst.Mask.Size()
	return ones == 0
}

func routeLinkIndex(route netlink.Route) int {
	if route.LinkIndex > 0 {
		return route.LinkIndex
	}
	for _, nh := range route.MultiPath {
		if nh != nil && nh.LinkIndex > 0 {
			return nh.LinkIndex
		}
	}
	return 0
}

// NewAutoResolver returns the preferred DefaultRouteResolver of the
// platform, the netlink resolver on Linux.
func NewAutoResolver() (DefaultRouteResolver, error) {
	r, err := NewNetlinkResolver()
	if err != nil {
		return nil, err
	}
	return r, nil
}
