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
// Command ift selects host IP addresses with interface templates.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ift-go/ift/pkg/log"
	"github.com/ift-go/ift/private/app"
	"github.com/ift-go/ift/private/app/command"
	"github.com/ift-go/ift/private/app/flag"
)

func main() {
	executable := filepath.Base(os.Args[0])
	cmd := newRoot(executable)
	err := cmd.Execute()
	log.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(app.ExitCode(err))
	}
}

func newRoot(name string) *cobra.Command {
	var env flag.Environment
	cmd := &cobra.Command{
		Use:   name,
		Short: "Select host IP addresses with interface templates",
		Long: `ift evaluates interface templates. A template starts with a producer
followed by pipe separated filters and sorts, and yields the addresses of the
host that match, e.g.

    GetAllInterfaces | FilterFlags "up" | FilterForwardable | SortBy "default"`,
		Args: cobra.NoArgs,
		// Errors are printed in main.
		SilenceErrors: true,
	}
	env.Register(cmd.PersistentFlags())
	cmd.AddCommand(
		newEval(cmd, &env),
		newRFC(cmd),
		newClassify(cmd, &env),
		newSample(cmd),
		newVersion(cmd),
		command.NewGendocs(cmd),
	)
	return cmd
}
