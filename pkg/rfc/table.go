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

import (
	"net/netip"
	"sync"

	"github.com/gaissmai/bart"

	"github.com/ift-go/ift/pkg/private/serrors"
)

// Unmatched is the classification of an address that no entry contains.
type Unmatched int

const (
	// Routable treats unmatched addresses as ordinary public address space:
	// they are forwardable and global.
	Routable Unmatched = iota
	// NotRoutable treats unmatched addresses as neither forwardable nor
	// global.
	NotRoutable
)

// DefaultUnmatched is the policy of tables built without WithUnmatched.
const DefaultUnmatched = Routable

func (u Unmatched) String() string {
	switch u {
	case Routable:
		return "routable"
	case NotRoutable:
		return "not-routable"
	default:
		return "unknown"
	}
}

// Option configures a Table.
type Option func(o *options)

type options struct {
	unmatched Unmatched
}

// WithUnmatched sets the policy applied to addresses that no entry contains.
func WithUnmatched(u Unmatched) Option {
	return func(o *options) {
		o.unmatched = u
	}
}

// Table is an immutable classification table. It is safe for concurrent use.
type Table struct {
	entries   []Entry
	index     *bart.Table[*Entry]
	unmatched Unmatched
}

// New builds a table from the given entries. The entries are kept in the
// given order. Every block must be valid and masked.
func New(entries []Entry, opts ...Option) (*Table, error) {
	o := options{unmatched: DefaultUnmatched}
	for _, opt := range opts {
		opt(&o)
	}
	if o.unmatched != Routable && o.unmatched != NotRoutable {
		return nil, serrors.New("invalid unmatched policy", "policy", int(o.unmatched))
	}
	t := &Table{
		entries:   make([]Entry, len(entries)),
		index:     &bart.Table[*Entry]{},
		unmatched: o.unmatched,
	}
	copy(t.entries, entries)
	seen := make(map[netip.Prefix]struct{}, len(t.entries))
	for i := range t.entries {
		e := &t.entries[i]
		if !e.Block.IsValid() {
			return nil, serrors.New("invalid address block", "index", i, "name", e.Name)
		}
		if e.Block != e.Block.Masked() {
			return nil, serrors.New("address block not masked",
				"index", i, "block", e.Block, "masked", e.Block.Masked())
		}
		if _, ok := seen[e.Block]; ok {
			continue
		}
		seen[e.Block] = struct{}{}
		t.index.Insert(e.Block, e)
	}
	return t, nil
}

// Lookup returns the most specific entry whose block contains addr. The zone
// of addr is ignored.
func (t *Table) Lookup(addr netip.Addr) (Entry, bool) {
	if !addr.IsValid() {
		return Entry{}, false
	}
	e, ok := t.index.Lookup(addr.WithZone(""))
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// IsForwardable reports whether a router may forward datagrams destined to
// addr between external interfaces.
func (t *Table) IsForwardable(addr netip.Addr) bool {
	if e, ok := t.Lookup(addr); ok {
		return e.Forwardable
	}
	return t.unmatched == Routable
}

// IsGlobal reports whether datagrams destined to addr may be forwarded beyond
// an administrative domain.
func (t *Table) IsGlobal(addr netip.Addr) bool {
	if e, ok := t.Lookup(addr); ok {
		return e.Global
	}
	return t.unmatched == Routable
}

// Unmatched returns the policy of the table.
func (t *Table) Unmatched() Unmatched {
	return t.unmatched
}

// Entries returns a copy of the entries in table order.
func (t *Table) Entries() []Entry {
	r := make([]Entry, len(t.entries))
	copy(r, t.entries)
	return r
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the RFC 6890 table with the DefaultUnmatched policy. The
// table is built on first use and shared afterwards.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := New(RFC6890())
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}
