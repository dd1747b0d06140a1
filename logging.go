// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona

import (
	"context"
	"log/slog"
	"time"

	"github.com/katunilya/moona-sub000/effect"
)

// Logged wraps h with a structured log entry per run. The entry includes
// the connection ID, method, path, duration and, on failure, the failure
// status and message.
func Logged(logger *slog.Logger, h Handler) Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *Context) Flow {
		return lazy(func() Flow {
			start := time.Now()
			return effect.MapFuture(h(c), func(r Result) Result {
				attrs := []slog.Attr{
					slog.String("conn_id", c.id),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.Path),
					slog.Duration("duration", time.Since(start)),
				}
				if f, ok := r.Error(); ok {
					attrs = append(attrs,
						slog.Int("status", f.Status),
						slog.String("error", f.Message),
					)
					logger.LogAttrs(context.Background(), slog.LevelWarn, "handler failed", attrs...)
				} else {
					logger.LogAttrs(context.Background(), slog.LevelDebug, "handler completed", attrs...)
				}
				return r
			})
		})
	}
}
