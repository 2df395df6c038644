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
package ift

import (
	"net/netip"

	"github.com/ift-go/ift/pkg/netif"
)

// noInterface marks a binding without owning interface.
const noInterface = -1

// binding is an address together with the index of its owning interface in
// the snapshot of the evaluation.
type binding struct {
	addr  netip.Addr
	iface int
}

// snapshot holds the interfaces enumerated for one evaluation.
type snapshot []netif.Interface

func (s snapshot) owner(b binding) (netif.Interface, bool) {
	if b.iface < 0 || b.iface >= len(s) {
		return netif.Interface{}, false
	}
	return s[b.iface], true
}

// bindings returns the cross product of the interfaces with their addresses
// in enumeration order.
func (s snapshot) bindings() []binding {
	var n int
	for _, i := range s {
		n += len(i.Addrs)
	}
	r := make([]binding, 0, n)
	for idx, i := range s {
		for _, a := range i.Addrs {
			if !a.IsValid() {
				continue
			}
			r = append(r, binding{addr: a.Addr(), iface: idx})
		}
	}
	return r
}

func addrs(bs []binding) []netip.Addr {
	r := make([]netip.Addr, 0, len(bs))
	for _, b := range bs {
		r = append(r, b.addr)
	}
	return r
}
