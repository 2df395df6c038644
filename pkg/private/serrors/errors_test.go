// Copyright 2019 Anapaya Systems
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

package serrors_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ift-go/ift/pkg/private/serrors"
)

type testErrType struct {
	msg string
}

func (e *testErrType) Error() string {
	return e.msg
}

func TestWrap(t *testing.T) {
	t.Run("Is", func(t *testing.T) {
		err := serrors.New("simple err")
		wrappedErr := serrors.Wrap("msg", err, "someCtx", "someValue")
		assert.ErrorIs(t, wrappedErr, err)
		assert.ErrorIs(t, wrappedErr, wrappedErr)
	})
	t.Run("As", func(t *testing.T) {
		err := &testErrType{msg: "test err"}
		wrappedErr := serrors.Wrap("msg", err, "someCtx", "someValue")
		var errAs *testErrType
		require.True(t, errors.As(wrappedErr, &errAs))
		assert.Equal(t, err, errAs)
	})
}

func TestJoin(t *testing.T) {
	sentinel := errors.New("sentinel")
	t.Run("Is", func(t *testing.T) {
		cause := serrors.New("cause")
		err := serrors.Join(sentinel, cause, "k", "v")
		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, cause)
	})
	t.Run("nil cause", func(t *testing.T) {
		err := serrors.Join(sentinel, nil, "k", "v")
		assert.ErrorIs(t, err, sentinel)
		assert.EqualError(t, err, "sentinel {k=v}")
	})
	t.Run("both nil", func(t *testing.T) {
		assert.NoError(t, serrors.Join(nil, nil))
	})
}

func TestComparable(t *testing.T) {
	cause := serrors.New("cause")
	testCases := map[string]struct {
		Make func() error
	}{
		"wrap": {
			Make: func() error { return serrors.Wrap("msg", cause, "k", "v") },
		},
		"wrap without context": {
			Make: func() error { return serrors.Wrap("msg", cause) },
		},
		"join": {
			Make: func() error { return serrors.Join(errors.New("base"), cause, "k", "v") },
		},
		"join without cause": {
			Make: func() error { return serrors.Join(errors.New("base"), nil) },
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			err := tc.Make()
			same := err
			assert.NotPanics(t, func() { assert.True(t, err == same) })
			assert.True(t, errors.Is(err, err))
			assert.False(t, errors.Is(err, tc.Make()))
		})
	}
}

func TestNew(t *testing.T) {
	err1 := serrors.New("err msg", "someCtx", "value")
	err2 := serrors.New("err msg", "someCtx", "value")
	assert.ErrorIs(t, err1, err1)
	assert.False(t, errors.Is(err1, err2))
	assert.False(t, errors.Is(err2, err1))
}

func TestErrorString(t *testing.T) {
	testCases := map[string]struct {
		err      error
		expected string
	}{
		"plain": {
			err:      serrors.New("plain"),
			expected: "plain",
		},
		"sorted context": {
			err:      serrors.New("msg", "b", 2, "a", 1),
			expected: "msg {a=1; b=2}",
		},
		"wrapped": {
			err:      serrors.Wrap("outer", serrors.New("inner", "k", "v"), "x", "y"),
			expected: "outer {x=y}: inner {k=v}",
		},
		"list": {
			err:      serrors.List{errors.New("a"), errors.New("b")},
			expected: "[ a; b ]",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.EqualError(t, tc.err, tc.expected)
		})
	}
}

func TestListToError(t *testing.T) {
	assert.NoError(t, serrors.List{}.ToError())
	inner := errors.New("inner")
	err := serrors.List{errors.New("other"), inner}.ToError()
	assert.ErrorIs(t, err, inner)
}

func TestEncoding(t *testing.T) {
	var buf bytes.Buffer
	encoderCfg := zapcore.EncoderConfig{
		MessageKey:  "msg",
		LevelKey:    "level",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	}
	logger := zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(&buf), zapcore.DebugLevel))

	err := serrors.Wrap("msg error", serrors.New("msg cause"), "k0", "v0", "k1", 1)
	logger.Info("Failed", zap.Error(err))
	require.NoError(t, logger.Sync())

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Failed", got["msg"])
	assert.Equal(t, "msg error {k0=v0; k1=1}: msg cause", got["error"])
	verbose, ok := got["errorVerbose"]
	if ok {
		assert.NotEmpty(t, verbose)
	}
}
