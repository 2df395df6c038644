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
//go:build !linux

package netif

import (
	"context"
	"runtime"

	"github.com/ift-go/ift/pkg/private/serrors"
)

var errNetlinkUnsupported = serrors.New("netlink not supported", "os", runtime.GOOS)

// NetlinkLister is only available on Linux.
type NetlinkLister struct{}

// NewNetlinkLister always fails on this platform.
func NewNetlinkLister() (*NetlinkLister, error) {
	return nil, errNetlinkUnsupported
}

func (*NetlinkLister) Interfaces(context.Context) ([]Interface, error) {
	return nil, errNetlinkUnsupported
}

func (*NetlinkLister) Close() error { return nil }

// NetlinkResolver is only available on Linux.
type NetlinkResolver struct{}

// NewNetlinkResolver always fails on this platform.
func NewNetlinkResolver() (*NetlinkResolver, error) {
	return nil, errNetlinkUnsupported
}

func (*NetlinkResolver) DefaultInterfaceName(context.Context) (string, error) {
	return "", errNetlinkUnsupported
}

func (*NetlinkResolver) Close() error { return nil }

// NewAutoResolver returns the preferred DefaultRouteResolver of the
// platform, the route command resolver outside of Linux.
func NewAutoResolver() (DefaultRouteResolver, error) {
	return CommandResolver{}, nil
}
