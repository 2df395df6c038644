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

package rfc

import "strings"

// Registry returns the entries of the registry published in the named RFC.
// The name may carry an "rfc" prefix in any case.
func Registry(name string) ([]Entry, bool) {
	switch strings.TrimPrefix(strings.ToLower(name), "rfc") {
	case "6890":
		return RFC6890(), true
	default:
		return nil, false
	}
}

// RFC6890 returns the entries of the IPv4 and IPv6 special-purpose address
// registries as published in RFC 6890, in registry order.
func RFC6890() []Entry {
	return []Entry{
		{
			Block:              mustPrefix("0.0.0.0/8"),
			Name:               "This host on this network",
			RFC:                "[RFC1122], Section 3.2.1.3",
			AllocationDate:     "September 1981",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        false,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: true,
		},
		{
			Block:              mustPrefix("10.0.0.0/8"),
			Name:               "Private-Use",
			RFC:                "[RFC1918]",
			AllocationDate:     "February 1996",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        true,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("100.64.0.0/10"),
			Name:               "Shared Address Space",
			RFC:                "[RFC6598]",
			AllocationDate:     "April 2012",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        true,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("127.0.0.0/8"),
			Name:               "Loopback",
			RFC:                "[RFC1122], Section 3.2.1.3",
			AllocationDate:     "September 1981",
			TerminationDate:    "N/A",
			Source:             false,
			Destination:        false,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: true,
		},
		{
			Block:              mustPrefix("169.254.0.0/16"),
			Name:               "Link Local",
			RFC:                "[RFC3927]",
			AllocationDate:     "May 2005",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: true,
		},
		{
			Block:              mustPrefix("172.16.0.0/12"),
			Name:               "Private-Use",
			RFC:                "[RFC1918]",
			AllocationDate:     "February 1996",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        true,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("192.0.0.0/24"),
			Name:               "IETF Protocol Assignments",
			RFC:                "Section 2.1 of this document",
			AllocationDate:     "January 2010",
			TerminationDate:    "N/A",
			Source:             false,
			Destination:        false,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("192.0.0.0/29"),
			Name:               "DS-Lite",
			RFC:                "[RFC6333]",
			AllocationDate:     "June 2011",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        true,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("192.0.2.0/24"),
			Name:               "Documentation (TEST-NET-1)",
			RFC:                "[RFC5737]",
			AllocationDate:     "January 2010",
			TerminationDate:    "N/A",
			Source:             false,
			Destination:        false,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("192.88.99.0/24"),
			Name:               "6to4 Relay Anycast",
			RFC:                "[RFC3068]",
			AllocationDate:     "June 2001",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        true,
			Global:             true,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("192.168.0.0/16"),
			Name:               "Private-Use",
			RFC:                "[RFC1918]",
			AllocationDate:     "February 1996",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        true,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("198.18.0.0/15"),
			Name:               "Benchmarking",
			RFC:                "[RFC2544]",
			AllocationDate:     "March 1999",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        true,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("198.51.100.0/24"),
			Name:               "Documentation (TEST-NET-2)",
			RFC:                "[RFC5737]",
			AllocationDate:     "January 2010",
			TerminationDate:    "N/A",
			Source:             false,
			Destination:        false,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("203.0.113.0/24"),
			Name:               "Documentation (TEST-NET-3)",
			RFC:                "[RFC5737]",
			AllocationDate:     "January 2010",
			TerminationDate:    "N/A",
			Source:             false,
			Destination:        false,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("240.0.0.0/4"),
			Name:               "Reserved",
			RFC:                "[RFC1112], Section 4",
			AllocationDate:     "August 1989",
			TerminationDate:    "N/A",
			Source:             false,
			Destination:        false,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: true,
		},
		{
			Block:              mustPrefix("255.255.255.255/32"),
			Name:               "Limited Broadcast",
			RFC:                "[RFC0919], Section 7",
			AllocationDate:     "October 1984",
			TerminationDate:    "N/A",
			Source:             false,
			Destination:        true,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("::1/128"),
			Name:               "Loopback Address",
			RFC:                "[RFC4291]",
			AllocationDate:     "February 2006",
			TerminationDate:    "N/A",
			Source:             false,
			Destination:        false,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: true,
		},
		{
			Block:              mustPrefix("::/128"),
			Name:               "Unspecified Address",
			RFC:                "[RFC4291]",
			AllocationDate:     "February 2006",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        false,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: true,
		},
		{
			Block:              mustPrefix("64:ff9b::/96"),
			Name:               "IPv4-IPv6 Translat.",
			RFC:                "[RFC6052]",
			AllocationDate:     "October 2010",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        true,
			Global:             true,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("::ffff:0.0.0.0/96"),
			Name:               "IPv4-mapped Address",
			RFC:                "[RFC4291]",
			AllocationDate:     "February 2006",
			TerminationDate:    "N/A",
			Source:             false,
			Destination:        false,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: true,
		},
		{
			Block:              mustPrefix("100::/64"),
			Name:               "Discard-Only Address Block",
			RFC:                "[RFC6666]",
			AllocationDate:     "June 2012",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        true,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("2001::/23"),
			Name:               "IETF Protocol Assignments",
			RFC:                "[RFC2928]",
			AllocationDate:     "September 2000",
			TerminationDate:    "N/A",
			Source:             false,
			Destination:        false,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("2001::/32"),
			Name:               "TEREDO",
			RFC:                "[RFC4380]",
			AllocationDate:     "January 2006",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        true,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("2001:2::/48"),
			Name:               "Benchmarking",
			RFC:                "[RFC5180]",
			AllocationDate:     "April 2008",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        true,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("2001:db8::/32"),
			Name:               "Documentation",
			RFC:                "[RFC3849]",
			AllocationDate:     "July 2004",
			TerminationDate:    "N/A",
			Source:             false,
			Destination:        false,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("2001:10::/28"),
			Name:               "ORCHID",
			RFC:                "[RFC4843]",
			AllocationDate:     "March 2007",
			TerminationDate:    "March 2014",
			Source:             false,
			Destination:        false,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("2002::/16"),
			Name:               "6to4",
			RFC:                "[RFC3056]",
			AllocationDate:     "February 2001",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        true,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("fc00::/7"),
			Name:               "Unique-Local",
			RFC:                "[RFC4193]",
			AllocationDate:     "October 2005",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        true,
			Global:             false,
			ReservedByProtocol: false,
		},
		{
			Block:              mustPrefix("fe80::/10"),
			Name:               "Linked-Scoped Unicast",
			RFC:                "[RFC4291]",
			AllocationDate:     "February 2006",
			TerminationDate:    "N/A",
			Source:             true,
			Destination:        true,
			Forwardable:        false,
			Global:             false,
			ReservedByProtocol: true,
		},
	}
}
