// SPDX-License-Identifier: EPL-2.0

package i2s

import "errors"

var (
	ErrNilHardware  = errors.New("hardware must not be nil")
	ErrBufferCount  = errors.New("buffer count must be at least 2")
	ErrBufferLength = errors.New("buffer length must be at least 1")
	ErrStarted      = errors.New("output already started")
	ErrNotStarted   = errors.New("output not started")
)
