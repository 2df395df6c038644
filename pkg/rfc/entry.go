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

// Package rfc classifies IP addresses with the special-purpose address
// registries of RFC 6890.
//
// A Table holds an ordered list of entries. Queries select the most specific
// entry whose address block contains the address, i.e. the entry whose block
// is contained by every other matching block. The position of an entry in
// the list does not influence which entry is selected, except between entries
// with identical blocks, where the first one wins.
//
// Addresses that no entry contains are classified according to the table's
// Unmatched policy, DefaultUnmatched unless configured otherwise.
package rfc

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// Entry is one row of a special-purpose address registry.
type Entry struct {
	// Block is the registered address block.
	Block netip.Prefix `json:"address_block" yaml:"address_block"`
	// Name is a descriptive name for the block.
	Name string `json:"name" yaml:"name"`
	// RFC is the document through which the block was requested.
	RFC string `json:"rfc" yaml:"rfc"`
	// AllocationDate is the date upon which the block was allocated.
	AllocationDate string `json:"allocation_date" yaml:"allocation_date"`
	// TerminationDate is the date upon which the allocation is to be
	// terminated, "N/A" for permanent allocations.
	TerminationDate string `json:"termination_date" yaml:"termination_date"`
	// Source tells whether an address from the block is valid as source
	// address of a datagram that transits two devices.
	Source bool `json:"source" yaml:"source"`
	// Destination tells whether an address from the block is valid as
	// destination address of a datagram that transits two devices.
	Destination bool `json:"destination" yaml:"destination"`
	// Forwardable tells whether a router may forward a datagram whose
	// destination is drawn from the block between external interfaces.
	Forwardable bool `json:"forwardable" yaml:"forwardable"`
	// Global tells whether a datagram whose destination is drawn from the
	// block is forwardable beyond a specified administrative domain.
	Global bool `json:"global" yaml:"global"`
	// ReservedByProtocol tells whether IP itself reserves the block.
	ReservedByProtocol bool `json:"reserved_by_protocol" yaml:"reserved_by_protocol"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%s (%s)", e.Block, e.Name)
}

// Range returns the first and the last address of the entry's block.
func (e Entry) Range() (netip.Addr, netip.Addr) {
	return e.Block.Addr(), netipx.PrefixLastIP(e.Block)
}

// Contains reports whether block outer contains block inner entirely. Blocks
// of different address families never contain each other.
func Contains(outer, inner netip.Prefix) bool {
	if !outer.IsValid() || !inner.IsValid() {
		return false
	}
	if outer.Addr().Is4() != inner.Addr().Is4() || outer.Bits() > inner.Bits() {
		return false
	}
	return outer.Contains(inner.Addr()) && outer.Contains(netipx.PrefixLastIP(inner))
}

func mustPrefix(s string) netip.Prefix {
	return netip.MustParsePrefix(s)
}
