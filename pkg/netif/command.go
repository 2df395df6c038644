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
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"strings"

	"github.com/ift-go/ift/pkg/log"
	"github.com/ift-go/ift/pkg/private/serrors"
)

// RunFunc runs the named command and returns its standard output.
type RunFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// CommandResolver resolves the default route interface by running the
// routing command of the operating system and parsing its output. On Linux
// this is "ip route", on the BSDs and macOS "route -n get default".
type CommandResolver struct {
	// GOOS selects the command. It defaults to runtime.GOOS.
	GOOS string
	// Run runs the command. It defaults to running it with os/exec.
	Run RunFunc
}

func (r CommandResolver) DefaultInterfaceName(ctx context.Context) (string, error) {
	goos := r.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	run := r.Run
	if run == nil {
		run = execRun
	}
	var (
		name  string
		args  []string
		parse func([]byte) (string, error)
	)
	switch goos {
	case "linux", "android":
		name, args, parse = ipCommand(), []string{"route"}, ParseIPRoute
	case "darwin", "ios", "freebsd", "openbsd", "netbsd", "dragonfly":
		name, args, parse = "route", []string{"-n", "get", "default"}, ParseRouteGet
	default:
		return "", serrors.New("default route lookup not supported", "os", goos)
	}
	log.FromCtx(ctx).Debug("Resolving default route", "command", name, "args", args)
	out, err := run(ctx, name, args...)
	if err != nil {
		return "", serrors.Wrap("running route command", err, "command", name)
	}
	return parse(out)
}

func ipCommand() string {
	if p, err := exec.LookPath("ip"); err == nil {
		return p
	}
	return "/sbin/ip"
}

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return nil, serrors.Wrap("command failed", err,
			"stderr", strings.TrimSpace(stderr.String()))
	}
	return out, nil
}

// ParseIPRoute extracts the default route interface from the output of the
// Linux "ip route" command, e.g. "default via 172.17.0.1 dev eth0".
func ParseIPRoute(out []byte) (string, error) {
	s := bufio.NewScanner(bytes.NewReader(out))
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) == 0 || fields[0] != "default" {
			continue
		}
		for i := 1; i < len(fields)-1; i++ {
			if fields[i] == "dev" {
				return fields[i+1], nil
			}
		}
	}
	if err := s.Err(); err != nil {
		return "", serrors.Wrap("reading route output", err)
	}
	return "", ErrNoDefaultRoute
}

// ParseRouteGet extracts the default route interface from the output of the
// BSD "route -n get default" command, e.g. "  interface: en0".
func ParseRouteGet(out []byte) (string, error) {
	s := bufio.NewScanner(bytes.NewReader(out))
	for s.Scan() {
		key, value, ok := strings.Cut(s.Text(), ":")
		if !ok || strings.TrimSpace(key) != "interface" {
			continue
		}
		if name := strings.TrimSpace(value); name != "" {
			return name, nil
		}
	}
	if err := s.Err(); err != nil {
		return "", serrors.Wrap("reading route output", err)
	}
	return "", ErrNoDefaultRoute
}
