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
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ift-go/ift/pkg/ift"
	"github.com/ift-go/ift/pkg/log"
	"github.com/ift-go/ift/private/app/command"
	"github.com/ift-go/ift/private/app/flag"
)

func newEval(pather command.Pather, env *flag.Environment) *cobra.Command {
	var flags struct {
		format  flag.Format
		first   bool
		timeout time.Duration
	}

	var cmd = &cobra.Command{
		Use:   "eval <template>",
		Short: "Evaluate an interface template",
		Args:  cobra.ExactArgs(1),
		Example: fmt.Sprintf(`  %[1]s eval 'GetInterface "lo0" | FilterIPv4'
  %[1]s eval GetPrivateInterfaces --first
  %[1]s eval 'GetAllInterfaces | FilterGlobal | FilterIPv6' --format json`,
			pather.CommandPath()),
		Long: `'eval' prints the addresses selected by the interface template.

Producers:
  GetAllInterfaces, GetPrivateInterfaces, GetInterface "<name>"

Filters:
  FilterIPv4, FilterIPv6, FilterName "<name>", FilterFlags "<up|down>",
  FilterForwardable, FilterGlobal, FilterFirst, FilterLast

Sorts:
  SortBy "default"

The command fails if the template does not parse, uses an unsupported
argument, or if the interfaces or the default route cannot be determined.`,
	}
	getFormat := flag.RegisterFormat(cmd.Flags(), &flags.format)
	cmd.Flags().BoolVar(&flags.first, "first", false, "Print only the first address")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 5*time.Second,
		"Timeout for enumerating interfaces and resolving the default route")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		pl, err := ift.Parse(args[0])
		if err != nil {
			return err
		}
		cfg, err := setup(env)
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true

		ev, cleanup, err := newEvaluator(cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
		defer cancel()
		logger := log.New("template", pl.String())
		ctx = log.CtxWith(ctx, logger)

		res, err := ev.EvalPipeline(ctx, pl)
		if err != nil {
			return err
		}
		logger.Debug("Evaluated template", "addresses", len(res))
		if flags.first && len(res) > 1 {
			res = res[:1]
		}
		return printAddrs(cmd.OutOrStdout(), getFormat(), addrStrings(res))
	}
	return cmd
}
