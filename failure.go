// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona

import (
	"fmt"
	"net/http"
)

// Failure is an expected, recoverable control failure. It carries the
// Context at the point of failure and a diagnostic for the client.
type Failure struct {
	Context *Context
	Status  int
	Message string
	Err     error
}

// Error implements error.
func (f *Failure) Error() string {
	msg := f.Message
	if msg == "" {
		msg = http.StatusText(f.Status)
	}
	if f.Err != nil {
		return fmt.Sprintf("moona: %d %s: %v", f.Status, msg, f.Err)
	}
	return fmt.Sprintf("moona: %d %s", f.Status, msg)
}

// Unwrap returns the underlying cause, if any.
func (f *Failure) Unwrap() error {
	return f.Err
}
