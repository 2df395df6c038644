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
	"context"
	"io"
	"net/netip"
	"slices"

	"github.com/ift-go/ift/pkg/log"
	"github.com/ift-go/ift/pkg/netif"
	"github.com/ift-go/ift/pkg/private/serrors"
	"github.com/ift-go/ift/pkg/rfc"
)

const (
	flagUp   = "up"
	flagDown = "down"

	sortDefault = "default"
)

// Evaluator evaluates interface templates. The zero value uses the
// interfaces of the Go runtime, the preferred default route resolver of the
// platform (netif.NewAutoResolver) and the default RFC 6890 table. An
// Evaluator keeps no state between evaluations and is safe for concurrent
// use if its collaborators are.
type Evaluator struct {
	// Interfaces enumerates the interfaces. It is called at most once per
	// evaluation.
	Interfaces netif.Lister
	// Routes resolves the default route interface for SortBy "default".
	Routes netif.DefaultRouteResolver
	// Table classifies addresses for FilterForwardable and FilterGlobal.
	Table *rfc.Table
}

// Eval evaluates the template with the zero Evaluator.
func Eval(ctx context.Context, template string) ([]netip.Addr, error) {
	var e Evaluator
	return e.Eval(ctx, template)
}

// Eval parses and evaluates the template.
func (e *Evaluator) Eval(ctx context.Context, template string) ([]netip.Addr, error) {
	pl, err := Parse(template)
	if err != nil {
		return nil, err
	}
	return e.EvalPipeline(ctx, pl)
}

// EvalFirst evaluates the template and returns the first address. The
// boolean is false if the result is empty.
func (e *Evaluator) EvalFirst(ctx context.Context, template string) (netip.Addr, bool, error) {
	r, err := e.Eval(ctx, template)
	if err != nil || len(r) == 0 {
		return netip.Addr{}, false, err
	}
	return r[0], true, nil
}

// EvalPipeline evaluates a parsed pipeline. Shorthand producers are expanded
// first, so that they behave exactly like the pipelines they stand for.
func (e *Evaluator) EvalPipeline(ctx context.Context, pl Pipeline) ([]netip.Addr, error) {
	pl = pl.Expand()
	logger := log.FromCtx(ctx)

	ev := evaluation{
		lister:   e.Interfaces,
		resolver: e.Routes,
		table:    e.Table,
	}
	if ev.lister == nil {
		ev.lister = netif.System{}
	}
	if ev.table == nil {
		ev.table = rfc.Default()
	}

	bs, err := ev.produce(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug("Produced bindings", "producer", pl.Producer.String(), "bindings", len(bs))
	for _, stage := range pl.Stages {
		in := len(bs)
		if bs, err = ev.apply(ctx, stage, bs); err != nil {
			return nil, err
		}
		logger.Debug("Applied stage", "stage", stage.String(), "in", in, "out", len(bs))
	}
	return addrs(bs), nil
}

// evaluation is the state of a single EvalPipeline call.
type evaluation struct {
	lister   netif.Lister
	resolver netif.DefaultRouteResolver
	table    *rfc.Table

	ifaces snapshot
}

func (ev *evaluation) produce(ctx context.Context) ([]binding, error) {
	ifaces, err := ev.lister.Interfaces(ctx)
	if err != nil {
		return nil, serrors.Join(ErrCollaborator, err, "collaborator", "interfaces")
	}
	ev.ifaces = ifaces
	return ev.ifaces.bindings(), nil
}

func (ev *evaluation) apply(ctx context.Context, stage Stage, in []binding) ([]binding, error) {
	switch s := stage.(type) {
	case Filter:
		return ev.filter(s, in)
	case Sort:
		return ev.sort(ctx, s, in)
	default:
		return nil, serrors.New("unsupported stage", "stage", stage)
	}
}

func (ev *evaluation) filter(f Filter, in []binding) ([]binding, error) {
	switch f.Kind {
	case FilterIPv4:
		return keep(in, func(b binding) bool { return b.addr.Is4() }), nil
	case FilterIPv6:
		return keep(in, func(b binding) bool { return b.addr.Is6() }), nil
	case FilterName:
		return keep(in, func(b binding) bool {
			i, ok := ev.ifaces.owner(b)
			return ok && i.Name == f.Arg
		}), nil
	case FilterFlags:
		var up bool
		switch f.Arg {
		case flagUp:
			up = true
		case flagDown:
			up = false
		default:
			return nil, serrors.Join(ErrUnknownArgument, nil,
				"stage", f.String(), "flag", f.Arg)
		}
		return keep(in, func(b binding) bool {
			i, ok := ev.ifaces.owner(b)
			return ok && i.Up == up
		}), nil
	case FilterForwardable:
		return keep(in, func(b binding) bool { return ev.table.IsForwardable(b.addr) }), nil
	case FilterGlobal:
		return keep(in, func(b binding) bool { return ev.table.IsGlobal(b.addr) }), nil
	case FilterFirst:
		if len(in) == 0 {
			return nil, nil
		}
		return in[:1:1], nil
	case FilterLast:
		if len(in) == 0 {
			return nil, nil
		}
		return in[len(in)-1:], nil
	default:
		return nil, serrors.New("unsupported filter", "filter", f.Kind)
	}
}

func (ev *evaluation) sort(ctx context.Context, s Sort, in []binding) ([]binding, error) {
	if s.Kind != SortBy {
		return nil, serrors.New("unsupported sort", "sort", s.Kind)
	}
	if s.Arg != sortDefault {
		return nil, serrors.Join(ErrUnknownArgument, nil,
			"stage", s.String(), "attribute", s.Arg)
	}
	name, err := ev.defaultInterfaceName(ctx)
	if err != nil {
		return nil, serrors.Join(ErrCollaborator, err, "collaborator", "default route")
	}
	isDefault := func(b binding) bool {
		i, ok := ev.ifaces.owner(b)
		return ok && i.Name == name
	}
	out := slices.Clone(in)
	slices.SortStableFunc(out, func(a, b binding) int {
		da, db := isDefault(a), isDefault(b)
		switch {
		case da && !db:
			return -1
		case !da && db:
			return 1
		default:
			return 0
		}
	})
	return out, nil
}

// defaultInterfaceName asks the configured resolver, or the preferred
// resolver of the platform if none is configured. The latter is opened per
// lookup and closed afterwards.
func (ev *evaluation) defaultInterfaceName(ctx context.Context) (string, error) {
	if ev.resolver != nil {
		return ev.resolver.DefaultInterfaceName(ctx)
	}
	r, err := netif.NewAutoResolver()
	if err != nil {
		return "", err
	}
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}
	return r.DefaultInterfaceName(ctx)
}

func keep(in []binding, pred func(binding) bool) []binding {
	out := make([]binding, 0, len(in))
	for _, b := range in {
		if pred(b) {
			out = append(out, b)
		}
	}
	return out
}
