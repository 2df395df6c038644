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
package flag

import (
	"strings"

	"github.com/spf13/pflag"

	"github.com/ift-go/ift/pkg/private/serrors"
)

// The supported output formats.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Format is an output format flag value.
type Format string

var _ pflag.Value = (*Format)(nil)

func (f *Format) Set(val string) error {
	switch val {
	case FormatHuman, FormatJSON, FormatYAML:
		*f = Format(val)
		return nil
	default:
		return serrors.New("format not supported", "format", val)
	}
}

func (f *Format) Type() string { return "format" }

func (f *Format) String() string {
	if *f == "" {
		return FormatHuman
	}
	return string(*f)
}

// RegisterFormat registers the --format flag and the deprecated --json
// shorthand. Call the returned function after parsing to get the format.
func RegisterFormat(flagSet *pflag.FlagSet, f *Format) func() string {
	flagSet.Var(f, "format", "Output format ("+
		strings.Join([]string{FormatHuman, FormatJSON, FormatYAML}, "|")+")")
	jsonFlag := flagSet.Bool("json", false, "Write the output as machine readable json")
	_ = flagSet.MarkDeprecated("json", "use --format=json")
	return func() string {
		if *jsonFlag && !flagSet.Changed("format") {
			return FormatJSON
		}
		return f.String()
	}
}
