// SPDX-License-Identifier: MIT

package csv

import "errors"

// ErrBufferOverflow is returned by LoadBuffer when the file holds more values
// than the target buffer.
var ErrBufferOverflow = errors.New("csv: file holds more values than the buffer")
