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
package app_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ift-go/ift/pkg/log"
	"github.com/ift-go/ift/pkg/private/serrors"
	"github.com/ift-go/ift/private/app"
)

func TestExitCode(t *testing.T) {
	base := errors.New("boom")
	testCases := map[string]struct {
		Err      error
		Expected int
	}{
		"nil":          {Err: nil, Expected: 0},
		"plain":        {Err: base, Expected: 1},
		"with code":    {Err: app.WithExitCode(base, 2), Expected: 2},
		"wrapped code": {Err: serrors.Wrap("running", app.WithExitCode(base, 3)), Expected: 3},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.Expected, app.ExitCode(tc.Err))
		})
	}
	assert.NoError(t, app.WithExitCode(nil, 2))
	assert.ErrorIs(t, app.WithExitCode(base, 2), base)
	assert.Equal(t, "boom", app.WithExitCode(base, 2).Error())
}

func TestSetupLog(t *testing.T) {
	defer log.Replace(zap.NewNop())
	assert.NoError(t, app.SetupLog(log.Config{}, "debug"))
	assert.True(t, log.Root().Enabled(log.DebugLevel))
	assert.NoError(t, app.SetupLog(log.Config{}, ""))
	assert.False(t, log.Root().Enabled(log.DebugLevel))
	assert.Error(t, app.SetupLog(log.Config{}, "loud"))
}
