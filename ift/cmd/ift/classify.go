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
	"net/netip"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ift-go/ift/pkg/private/serrors"
	"github.com/ift-go/ift/pkg/rfc"
	"github.com/ift-go/ift/private/app/command"
	"github.com/ift-go/ift/private/app/flag"
)

// classification is the result of classifying one address.
type classification struct {
	Address     string `json:"address" yaml:"address"`
	Block       string `json:"block,omitempty" yaml:"block,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Forwardable bool   `json:"forwardable" yaml:"forwardable"`
	Global      bool   `json:"global" yaml:"global"`
}

func newClassify(pather command.Pather, env *flag.Environment) *cobra.Command {
	var flags struct {
		format flag.Format
	}

	var cmd = &cobra.Command{
		Use:     "classify <address>...",
		Short:   "Classify addresses with the RFC 6890 registry",
		Args:    cobra.MinimumNArgs(1),
		Example: fmt.Sprintf("  %[1]s classify 192.0.0.7 192.0.0.8 8.8.8.8", pather.CommandPath()),
		Long: `'classify' shows the most specific RFC 6890 block of each address and
whether the address counts as forwardable and global. Addresses outside of
every block are ordinary public addresses.`,
	}
	getFormat := flag.RegisterFormat(cmd.Flags(), &flags.format)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		addrs := make([]netip.Addr, 0, len(args))
		for _, arg := range args {
			a, err := netip.ParseAddr(arg)
			if err != nil {
				return serrors.Wrap("invalid address", err, "address", arg)
			}
			addrs = append(addrs, a)
		}
		if _, err := setup(env); err != nil {
			return err
		}
		cmd.SilenceUsage = true

		res := classify(rfc.Default(), addrs)
		format := getFormat()
		if format != flag.FormatHuman {
			return encode(cmd.OutOrStdout(), format, res)
		}
		renderClassifications(cmd.OutOrStdout(), res)
		return nil
	}
	return cmd
}

func classify(table *rfc.Table, addrs []netip.Addr) []classification {
	r := make([]classification, 0, len(addrs))
	for _, a := range addrs {
		c := classification{
			Address:     a.String(),
			Forwardable: table.IsForwardable(a),
			Global:      table.IsGlobal(a),
		}
		if e, ok := table.Lookup(a); ok {
			c.Block = e.Block.String()
			c.Name = e.Name
		}
		r = append(r, c)
	}
	return r
}

func renderClassifications(w io.Writer, res []classification) {
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
	table.SetHeader([]string{"ADDRESS", "BLOCK", "NAME", "FORWARDABLE", "GLOBAL"})
	for _, c := range res {
		block, name := c.Block, c.Name
		if block == "" {
			block, name = "-", "-"
		}
		table.Append([]string{c.Address, block, name,
			strconv.FormatBool(c.Forwardable), strconv.FormatBool(c.Global)})
	}
	table.Render()
}
