// Copyright 2018 Anapaya Systems
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

package config_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ift-go/ift/pkg/private/serrors"
	"github.com/ift-go/ift/private/config"
)

type block struct {
	Name string `toml:"name,omitempty"`
}

func (b *block) InitDefaults() {
	if b.Name == "" {
		b.Name = "default"
	}
}

func (b *block) Validate() error {
	if b.Name == "invalid" {
		return serrors.New("invalid name")
	}
	return nil
}

func (b *block) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, "name = \"x\"\n")
}

func (b *block) ConfigName() string {
	return "block"
}

type file struct {
	Block block `toml:"block"`
}

func TestDecode(t *testing.T) {
	var f file
	require.NoError(t, config.Decode([]byte("[block]\nname = \"a\"\n"), &f))
	assert.Equal(t, "a", f.Block.Name)

	err := config.Decode([]byte("[block]\nunknown = 1\n"), &f)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.toml")
	require.NoError(t, os.WriteFile(path, []byte("[block]\nname = \"b\"\n"), 0o644))

	var f file
	require.NoError(t, config.LoadFile(path, &f))
	assert.Equal(t, "b", f.Block.Name)

	assert.Error(t, config.LoadFile(filepath.Join(dir, "missing.toml"), &f))
}

func TestInitAndValidateAll(t *testing.T) {
	a, b := &block{}, &block{Name: "invalid"}
	config.InitAll(a, b)
	assert.Equal(t, "default", a.Name)
	assert.Equal(t, "invalid", b.Name)
	assert.NoError(t, config.ValidateAll(a))
	assert.Error(t, config.ValidateAll(a, b))
}

func TestWriteSample(t *testing.T) {
	var buf bytes.Buffer
	config.WriteSample(&buf, nil, nil, &block{})
	assert.Equal(t, "\n[block]\n    name = \"x\"\n", buf.String())

	var f file
	assert.NoError(t, config.Decode(buf.Bytes(), &f))
}
