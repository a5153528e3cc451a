package sender

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/prilive-com/tgsend/tg"
)

// Response is the raw outcome of one Bot API call. Send methods return it
// as-is: a non-200 status or "ok": false is not turned into an error.
type Response struct {
	Method     string
	StatusCode int
	Body       []byte

	// Decoded envelope. Zero when the body is not JSON.
	OK          bool
	Result      json.RawMessage
	ErrorCode   int
	Description string
	Parameters  *tg.ResponseParameters
}

type envelope struct {
	OK          bool                   `json:"ok"`
	Result      json.RawMessage        `json:"result,omitempty"`
	ErrorCode   int                    `json:"error_code,omitempty"`
	Description string                 `json:"description,omitempty"`
	Parameters  *tg.ResponseParameters `json:"parameters,omitempty"`
}

func newResponse(method string, status int, body []byte) *Response {
	r := &Response{
		Method:     method,
		StatusCode: status,
		Body:       body,
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		r.OK = env.OK
		r.Result = env.Result
		r.ErrorCode = env.ErrorCode
		r.Description = env.Description
		r.Parameters = env.Parameters
	}
	return r
}

// Failed reports whether the call needs diagnostic attention:
// any status other than 200, or a body without "ok": true.
func (r *Response) Failed() bool {
	return r.StatusCode != http.StatusOK || !r.OK
}

// Err converts a failed response into a *tg.APIError. It returns nil on success.
func (r *Response) Err() error {
	if !r.Failed() {
		return nil
	}
	code := r.ErrorCode
	if code == 0 {
		code = r.StatusCode
	}
	desc := r.Description
	if desc == "" {
		desc = http.StatusText(r.StatusCode)
	}
	apiErr := tg.NewAPIError(r.Method, code, desc)
	apiErr.Parameters = r.Parameters
	return apiErr
}

// Decode unmarshals the result object into v.
func (r *Response) Decode(v any) error {
	if len(r.Result) == 0 {
		return fmt.Errorf("tgsend: %s: response has no result", r.Method)
	}
	if err := json.Unmarshal(r.Result, v); err != nil {
		return fmt.Errorf("tgsend: %s: failed to parse result: %w", r.Method, err)
	}
	return nil
}

// String returns the response body.
func (r *Response) String() string {
	return string(r.Body)
}
