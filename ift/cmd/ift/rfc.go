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
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ift-go/ift/pkg/private/serrors"
	"github.com/ift-go/ift/pkg/rfc"
	"github.com/ift-go/ift/private/app/command"
	"github.com/ift-go/ift/private/app/flag"
)

func newRFC(pather command.Pather) *cobra.Command {
	var flags struct {
		format flag.Format
	}

	var cmd = &cobra.Command{
		Use:   "rfc [number]",
		Short: "Show a special-purpose address registry",
		Args:  cobra.MaximumNArgs(1),
		Example: fmt.Sprintf(`  %[1]s rfc
  %[1]s rfc 6890 --format yaml`, pather.CommandPath()),
		Long: `'rfc' shows the special-purpose address registry that classifies
addresses for FilterForwardable and FilterGlobal. Only RFC 6890 is known,
it is shown if no number is given.`,
	}
	getFormat := flag.RegisterFormat(cmd.Flags(), &flags.format)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		name := "6890"
		if len(args) == 1 {
			name = args[0]
		}
		entries, ok := rfc.Registry(name)
		if !ok {
			return serrors.New("unknown RFC", "rfc", name)
		}
		cmd.SilenceUsage = true

		format := getFormat()
		if format != flag.FormatHuman {
			return encode(cmd.OutOrStdout(), format, entries)
		}
		renderEntries(cmd.OutOrStdout(), entries)
		return nil
	}
	return cmd
}

func renderEntries(w io.Writer, entries []rfc.Entry) {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		first, last := e.Range()
		rows = append(rows, []string{
			e.Block.String(),
			first.String() + " - " + last.String(),
			e.Name,
			e.RFC,
			e.AllocationDate,
			e.TerminationDate,
			strconv.FormatBool(e.Source),
			strconv.FormatBool(e.Destination),
			strconv.FormatBool(e.Forwardable),
			strconv.FormatBool(e.Global),
			strconv.FormatBool(e.ReservedByProtocol),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"BLOCK", "RANGE", "NAME", "RFC", "ALLOCATED", "TERMINATED",
		"SOURCE", "DESTINATION", "FORWARDABLE", "GLOBAL", "RESERVED"})
	table.AppendBulk(rows)
	table.Render()
}
