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
// Package flag contains the command line flags shared by the commands of the
// ift tool.
package flag

import (
	"os"
	"strings"
	"sync"

	"github.com/spf13/pflag"

	"github.com/ift-go/ift/pkg/private/serrors"
)

const (
	// ConfigEnv is the environment variable consulted if --config is not set.
	ConfigEnv = "IFT_CONFIG"
	// LogLevelEnv is the environment variable consulted if --log.level is not
	// set.
	LogLevelEnv = "IFT_LOG_LEVEL"
)

type stringVal string

func (v *stringVal) Set(val string) error {
	*v = stringVal(val)
	return nil
}

func (v *stringVal) Type() string   { return "string" }
func (v *stringVal) String() string { return string(*v) }

type levelVal string

func (v *levelVal) Set(val string) error {
	switch strings.ToLower(val) {
	case "debug", "info", "error":
	default:
		return serrors.New("unsupported log level", "level", val)
	}
	*v = levelVal(strings.ToLower(val))
	return nil
}

func (v *levelVal) Type() string   { return "level" }
func (v *levelVal) String() string { return string(*v) }

// Environment gives access to the global settings of the tool. Command line
// flags take precedence over environment variables.
type Environment struct {
	config     string
	configFlag *pflag.Flag
	level      string
	levelFlag  *pflag.Flag

	mtx sync.Mutex
}

// Register registers the command line flags. It is safe to not call this at
// all, which means only the environment is considered.
func (e *Environment) Register(flagSet *pflag.FlagSet) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	e.configFlag = flagSet.VarPF((*stringVal)(&e.config), "config", "c",
		"TOML configuration file (env "+ConfigEnv+").")
	e.levelFlag = flagSet.VarPF((*levelVal)(&e.level), "log.level", "",
		"Console logging level (debug|info|error) (env "+LogLevelEnv+").")
}

// ConfigFile returns the path of the configuration file, or the empty string
// if none is configured.
func (e *Environment) ConfigFile() string {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.configFlag != nil && e.configFlag.Changed {
		return e.config
	}
	return os.Getenv(ConfigEnv)
}

// LogLevel returns the configured console level, or the empty string if
// none is configured.
func (e *Environment) LogLevel() (string, error) {
	e.mtx.Lock()
	defer e.mtx.Unlock()

	if e.levelFlag != nil && e.levelFlag.Changed {
		return e.level, nil
	}
	env, ok := os.LookupEnv(LogLevelEnv)
	if !ok || env == "" {
		return "", nil
	}
	var v levelVal
	if err := v.Set(env); err != nil {
		return "", serrors.Wrap("invalid environment", err, "variable", LogLevelEnv)
	}
	return v.String(), nil
}
