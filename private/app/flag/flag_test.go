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
package flag_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ift-go/ift/private/app/flag"
)

func TestEnvironment(t *testing.T) {
	testCases := map[string]struct {
		Args     []string
		Env      map[string]string
		Config   string
		Level    string
		ErrCheck assert.ErrorAssertionFunc
	}{
		"nothing set": {
			ErrCheck: assert.NoError,
		},
		"env only": {
			Env:      map[string]string{flag.ConfigEnv: "/etc/ift.toml", flag.LogLevelEnv: "DEBUG"},
			Config:   "/etc/ift.toml",
			Level:    "debug",
			ErrCheck: assert.NoError,
		},
		"flags win": {
			Args:     []string{"--config", "local.toml", "--log.level", "error"},
			Env:      map[string]string{flag.ConfigEnv: "/etc/ift.toml", flag.LogLevelEnv: "debug"},
			Config:   "local.toml",
			Level:    "error",
			ErrCheck: assert.NoError,
		},
		"invalid env level": {
			Env:      map[string]string{flag.LogLevelEnv: "loud"},
			ErrCheck: assert.Error,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(flag.ConfigEnv, "")
			t.Setenv(flag.LogLevelEnv, "")
			for k, v := range tc.Env {
				t.Setenv(k, v)
			}
			var env flag.Environment
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			env.Register(fs)
			require.NoError(t, fs.Parse(tc.Args))

			assert.Equal(t, tc.Config, env.ConfigFile())
			level, err := env.LogLevel()
			tc.ErrCheck(t, err)
			assert.Equal(t, tc.Level, level)
		})
	}
}

func TestEnvironmentInvalidFlag(t *testing.T) {
	var env flag.Environment
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	env.Register(fs)
	assert.Error(t, fs.Parse([]string{"--log.level", "loud"}))
}

func TestFormat(t *testing.T) {
	testCases := map[string]struct {
		Args     []string
		Expected string
		ErrCheck assert.ErrorAssertionFunc
	}{
		"default":         {Expected: "human", ErrCheck: assert.NoError},
		"yaml":            {Args: []string{"--format", "yaml"}, Expected: "yaml", ErrCheck: assert.NoError},
		"json shorthand":  {Args: []string{"--json"}, Expected: "json", ErrCheck: assert.NoError},
		"explicit format": {Args: []string{"--json", "--format", "human"}, Expected: "human", ErrCheck: assert.NoError},
		"unsupported":     {Args: []string{"--format", "xml"}, ErrCheck: assert.Error},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var f flag.Format
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			get := flag.RegisterFormat(fs, &f)
			err := fs.Parse(tc.Args)
			tc.ErrCheck(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.Expected, get())
		})
	}
}
