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
// Package config contains the configuration of the ift tool.
package config

import (
	"io"
	"net/netip"

	"github.com/ift-go/ift/pkg/log"
	"github.com/ift-go/ift/pkg/netif"
	"github.com/ift-go/ift/pkg/private/serrors"
	"github.com/ift-go/ift/private/config"
)

// Source modes.
const (
	SourceSystem  = "system"
	SourceNetlink = "netlink"
	SourceStatic  = "static"
)

// Route modes.
const (
	RouteAuto    = "auto"
	RouteNetlink = "netlink"
	RouteCommand = "command"
	RouteStatic  = "static"
)

var _ config.Config = (*Config)(nil)

// Config is the configuration file of the ift tool.
type Config struct {
	Logging log.Config `toml:"log,omitempty"`
	Source  Source     `toml:"source,omitempty"`
	Route   Route      `toml:"route,omitempty"`
}

func (cfg *Config) InitDefaults() {
	config.InitAll(
		&cfg.Logging,
		&cfg.Source,
		&cfg.Route,
	)
}

func (cfg *Config) Validate() error {
	return config.ValidateAll(
		&cfg.Logging,
		&cfg.Source,
		&cfg.Route,
	)
}

func (cfg *Config) Sample(dst io.Writer, path config.Path, _ config.CtxMap) {
	config.WriteSample(dst, path, nil,
		&cfg.Logging,
		&cfg.Source,
		&cfg.Route,
	)
}

// Load reads the configuration file, initializes the defaults and validates
// the result. The empty file name yields the default configuration.
func Load(file string) (*Config, error) {
	var cfg Config
	if file != "" {
		if err := config.LoadFile(file, &cfg); err != nil {
			return nil, err
		}
	}
	cfg.InitDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, serrors.Wrap("validating config", err, "file", file)
	}
	return &cfg, nil
}

// Source configures where interfaces are enumerated from.
type Source struct {
	// Mode is one of system, netlink and static.
	Mode string `toml:"mode,omitempty"`
	// Interfaces are the interfaces of the static source.
	Interfaces []Interface `toml:"interfaces,omitempty"`
}

// Interface is a statically configured interface.
type Interface struct {
	Name  string   `toml:"name"`
	Up    bool     `toml:"up"`
	Addrs []string `toml:"addrs,omitempty"`
}

func (cfg *Source) InitDefaults() {
	if cfg.Mode == "" {
		cfg.Mode = SourceSystem
	}
}

func (cfg *Source) Validate() error {
	switch cfg.Mode {
	case SourceSystem, SourceNetlink:
		if len(cfg.Interfaces) != 0 {
			return serrors.New("interfaces require static mode", "mode", cfg.Mode)
		}
	case SourceStatic:
		if _, err := cfg.static(); err != nil {
			return err
		}
	default:
		return serrors.New("unsupported source mode", "mode", cfg.Mode)
	}
	return nil
}

func (cfg *Source) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, sourceSample)
}

func (cfg *Source) ConfigName() string {
	return "source"
}

// NewLister creates the interface lister. Listers that hold resources
// implement io.Closer.
func (cfg *Source) NewLister() (netif.Lister, error) {
	switch cfg.Mode {
	case SourceSystem, "":
		return netif.System{}, nil
	case SourceNetlink:
		l, err := netif.NewNetlinkLister()
		if err != nil {
			return nil, err
		}
		return l, nil
	case SourceStatic:
		return cfg.static()
	default:
		return nil, serrors.New("unsupported source mode", "mode", cfg.Mode)
	}
}

func (cfg *Source) static() (netif.Static, error) {
	r := make(netif.Static, 0, len(cfg.Interfaces))
	for i, iface := range cfg.Interfaces {
		if iface.Name == "" {
			return nil, serrors.New("interface without name", "index", i)
		}
		addrs := make([]netip.Prefix, 0, len(iface.Addrs))
		for _, a := range iface.Addrs {
			p, err := netif.ParseAddr(a)
			if err != nil {
				return nil, serrors.Wrap("invalid static address", err, "interface", iface.Name)
			}
			addrs = append(addrs, p)
		}
		r = append(r, netif.Interface{Name: iface.Name, Up: iface.Up, Addrs: addrs})
	}
	return r, nil
}

// Route configures how the default route interface is resolved.
type Route struct {
	// Mode is one of auto, netlink, command and static.
	Mode string `toml:"mode,omitempty"`
	// DefaultInterface is the default route interface of the static mode.
	DefaultInterface string `toml:"default_interface,omitempty"`
}

func (cfg *Route) InitDefaults() {
	if cfg.Mode == "" {
		cfg.Mode = RouteAuto
	}
}

func (cfg *Route) Validate() error {
	switch cfg.Mode {
	case RouteAuto, RouteNetlink, RouteCommand:
	case RouteStatic:
		if cfg.DefaultInterface == "" {
			return serrors.New("static route mode requires default_interface")
		}
	default:
		return serrors.New("unsupported route mode", "mode", cfg.Mode)
	}
	return nil
}

func (cfg *Route) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, routeSample)
}

func (cfg *Route) ConfigName() string {
	return "route"
}

// NewResolver creates the default route resolver. Resolvers that hold
// resources implement io.Closer.
func (cfg *Route) NewResolver() (netif.DefaultRouteResolver, error) {
	switch cfg.Mode {
	case RouteAuto, "":
		return netif.NewAutoResolver()
	case RouteNetlink:
		r, err := netif.NewNetlinkResolver()
		if err != nil {
			return nil, err
		}
		return r, nil
	case RouteCommand:
		return netif.CommandResolver{}, nil
	case RouteStatic:
		return netif.StaticResolver(cfg.DefaultInterface), nil
	default:
		return nil, serrors.New("unsupported route mode", "mode", cfg.Mode)
	}
}
