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
package command_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ift-go/ift/private/app/command"
)

func TestGendocs(t *testing.T) {
	root := &cobra.Command{Use: "tool", Short: "A tool"}
	root.AddCommand(
		&cobra.Command{Use: "run", Short: "Run it", Run: func(*cobra.Command, []string) {}},
		command.NewGendocs(root),
	)
	dir := filepath.Join(t.TempDir(), "docs")
	root.SetArgs([]string{"gendocs", dir})
	require.NoError(t, root.Execute())

	index, err := os.ReadFile(filepath.Join(dir, "tool.md"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "A tool")
	assert.Contains(t, string(index), "* [tool run](tool_run.md)")
	assert.NotContains(t, string(index), "gendocs")

	run, err := os.ReadFile(filepath.Join(dir, "tool_run.md"))
	require.NoError(t, err)
	assert.Contains(t, string(run), "Run it")

	_, err = os.Stat(filepath.Join(dir, "tool_gendocs.md"))
	assert.True(t, os.IsNotExist(err))
}
