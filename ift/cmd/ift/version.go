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
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/ift-go/ift/private/app/command"
)

// version is set at link time with -ldflags "-X main.version=...".
var version = ""

func newVersion(pather command.Pather) *cobra.Command {
	var cmd = &cobra.Command{
		Use:     "version",
		Short:   "Show the version information",
		Args:    cobra.NoArgs,
		Example: fmt.Sprintf("  %[1]s version", pather.CommandPath()),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionInfo())
		},
	}
	return cmd
}

func versionInfo() string {
	v := version
	if v == "" {
		v = "(devel)"
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
			v = info.Main.Version
		}
	}
	return fmt.Sprintf("  Version:     %s\n  Build chain: %s\n", v, runtime.Version())
}
