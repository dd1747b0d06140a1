// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package moona

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeJSON = "application/json"
)

// SetStatus sets the response status.
func SetStatus(code int) Handler {
	return func(c *Context) Flow {
		c.Response.Status = code
		return Done(c)
	}
}

// SetHeader replaces the response header name with value.
func SetHeader(name, value string) Handler {
	return func(c *Context) Flow {
		c.Response.Headers.Set(name, value)
		return Done(c)
	}
}

// SetBody sets the response body.
func SetBody(b []byte) Handler {
	return func(c *Context) Flow {
		c.Response.Body = append([]byte{}, b...)
		return Done(c)
	}
}

// SetText sets a plain text response body.
func SetText(s string) Handler {
	return Compose(SetHeader("content-type", contentTypeText), SetBody([]byte(s)))
}

// SetJSON sets v, encoded as JSON, as the response body.
// An encoding error fails with 500.
func SetJSON(v any) Handler {
	return func(c *Context) Flow {
		b, err := json.Marshal(v)
		if err != nil {
			return FailWith(c, http.StatusInternalServerError, errors.Wrap(err, "encode json body"))
		}
		c.Response.Headers.Set("content-type", contentTypeJSON)
		c.Response.Body = b
		return Done(c)
	}
}

// SendBody sets the response body and sends the response.
func SendBody(b []byte) Handler {
	return Compose(SetBody(b), SendResponse)
}

// SendText sets a plain text body and sends the response.
func SendText(s string) Handler {
	return Compose(SetText(s), SendResponse)
}

// SendJSON sets a JSON body and sends the response.
func SendJSON(v any) Handler {
	return Compose(SetJSON(v), SendResponse)
}

// SendStatus sends an empty response with status code.
func SendStatus(code int) Handler {
	return Compose(SetStatus(code), SendResponse)
}

// RenderFailure maps f to a plain text response carrying its status and
// message, then sends it.
func RenderFailure(f *Failure) Flow {
	return FailureRenderer(contentTypeText)(f)
}

// FailureRenderer returns a renderer like RenderFailure that labels the
// body with contentType.
func FailureRenderer(contentType string) func(*Failure) Flow {
	return func(f *Failure) Flow {
		c := f.Context
		status := f.Status
		if status == 0 {
			status = http.StatusInternalServerError
		}
		msg := f.Message
		if msg == "" {
			msg = http.StatusText(status)
		}
		c.Response.Status = status
		c.Response.Headers.Set("content-type", contentType)
		c.Response.Body = []byte(msg)
		return SendResponse(c)
	}
}
