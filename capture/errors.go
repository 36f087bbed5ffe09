// SPDX-License-Identifier: EPL-2.0

package capture

import "errors"

var (
	ErrAlreadyStarted = errors.New("capture: adapter already started")
	ErrNotStarted     = errors.New("capture: adapter not started")
	ErrSourceClosed   = errors.New("capture: source closed before Stop")
)
