package graphql

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Response is the outcome of a successful round trip.
type Response struct {
	StatusCode int
	// Raw is the response body exactly as received.
	Raw []byte
	// Data is the decoded value of the envelope's data member. Only set
	// when the request asked for decoding.
	Data any
	// Errors holds the messages of the envelope's errors array, if any.
	Errors []string
}

// Text returns the raw body as a string.
func (r *Response) Text() string {
	return string(r.Raw)
}

// decodeEnvelope extracts data and error messages from a
// {"data": ..., "errors": [...]} body.
func decodeEnvelope(body []byte) (any, []string, error) {
	if !gjson.ValidBytes(body) {
		return nil, nil, fmt.Errorf("response body is not valid JSON")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, nil, fmt.Errorf("response envelope is not a JSON object")
	}

	var messages []string
	if errs := root.Get("errors"); errs.IsArray() {
		errs.ForEach(func(_, e gjson.Result) bool {
			messages = append(messages, e.Get("message").String())
			return true
		})
	}

	data := root.Get("data")
	if !data.Exists() {
		if len(messages) > 0 {
			return nil, messages, fmt.Errorf("response has no data member: %s", messages[0])
		}
		return nil, messages, fmt.Errorf("response has no data member")
	}
	return data.Value(), messages, nil
}
