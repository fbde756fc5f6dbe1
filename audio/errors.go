// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	// ErrInvalidDstSize indicates a destination buffer whose length is
	// not a whole number of frames for the stream's channel count.
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
)
