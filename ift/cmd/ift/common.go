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
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v2"

	"github.com/ift-go/ift/ift/config"
	"github.com/ift-go/ift/pkg/ift"
	"github.com/ift-go/ift/pkg/log"
	"github.com/ift-go/ift/pkg/netif"
	"github.com/ift-go/ift/pkg/private/serrors"
	"github.com/ift-go/ift/pkg/rfc"
	"github.com/ift-go/ift/private/app"
	"github.com/ift-go/ift/private/app/flag"
)

// setup loads the configuration and sets up logging.
func setup(env *flag.Environment) (*config.Config, error) {
	cfg, err := config.Load(env.ConfigFile())
	if err != nil {
		return nil, err
	}
	level, err := env.LogLevel()
	if err != nil {
		return nil, err
	}
	if err := app.SetupLog(cfg.Logging, level); err != nil {
		return nil, serrors.Wrap("setting up logging", err)
	}
	return cfg, nil
}

// newEvaluator builds the evaluator from the configuration. The returned
// function releases the collaborators.
func newEvaluator(cfg *config.Config) (*ift.Evaluator, func(), error) {
	lister, err := cfg.Source.NewLister()
	if err != nil {
		return nil, nil, serrors.Wrap("creating interface source", err, "mode", cfg.Source.Mode)
	}
	resolver := &lazyResolver{route: cfg.Route}
	cleanup := func() {
		closeLogged(lister)
		resolver.Close()
	}
	return &ift.Evaluator{
		Interfaces: lister,
		Routes:     resolver,
		Table:      rfc.Default(),
	}, cleanup, nil
}

func closeLogged(v any) {
	c, ok := v.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		log.Error("Closing collaborator", "err", err)
	}
}

// lazyResolver creates the configured resolver on first use, so that
// templates without SortBy never open netlink sockets or run commands.
type lazyResolver struct {
	route config.Route

	once     sync.Once
	resolver netif.DefaultRouteResolver
	err      error
}

func (r *lazyResolver) DefaultInterfaceName(ctx context.Context) (string, error) {
	r.once.Do(func() {
		r.resolver, r.err = r.route.NewResolver()
	})
	if r.err != nil {
		return "", serrors.Wrap("creating default route resolver", r.err, "mode", r.route.Mode)
	}
	return r.resolver.DefaultInterfaceName(ctx)
}

func (r *lazyResolver) Close() {
	r.once.Do(func() {})
	closeLogged(r.resolver)
}

// encode writes v in the machine readable format.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case flag.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case flag.FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return serrors.New("format not supported", "format", format)
	}
}

func addrStrings[T fmt.Stringer](v []T) []string {
	r := make([]string, 0, len(v))
	for _, a := range v {
		r = append(r, a.String())
	}
	return r
}

// printAddrs prints the addresses space separated in brackets for humans.
func printAddrs(w io.Writer, format string, addrs []string) error {
	if format != flag.FormatHuman {
		return encode(w, format, addrs)
	}
	_, err := fmt.Fprintf(w, "[%s]\n", strings.Join(addrs, " "))
	return err
}
