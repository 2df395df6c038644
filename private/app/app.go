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
// Package app contains helpers shared by the commands of the ift tool.
package app

import (
	"errors"

	"github.com/ift-go/ift/pkg/log"
	"github.com/ift-go/ift/pkg/private/serrors"
)

// SetupLog initializes a console logger with the given level. The empty
// level keeps the logger configured in cfg.
func SetupLog(cfg log.Config, level string) error {
	if level != "" {
		cfg.Console.Level = level
	}
	cfg.InitDefaults()
	if err := cfg.Validate(); err != nil {
		return serrors.Wrap("validating log config", err)
	}
	return log.Setup(cfg)
}

type exitCodeError struct {
	err  error
	code int
}

func (e exitCodeError) Error() string { return e.err.Error() }
func (e exitCodeError) Unwrap() error { return e.err }

// WithExitCode attaches the process exit code to err.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return exitCodeError{err: err, code: code}
}

// ExitCode returns the exit code attached to err. It is 0 for nil errors and
// 1 for errors without exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var codeErr exitCodeError
	if errors.As(err, &codeErr) {
		return codeErr.code
	}
	return 1
}
