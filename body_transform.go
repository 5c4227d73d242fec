package client

import (
	"bytes"
	"encoding/json"

	"github.com/ohler55/ojg/oj"
)

// _prettyJSONIndent is the number of spaces used per nesting level by
// [PrettyJSON].
const _prettyJSONIndent = 2

// BodyTransform rewrites a request or response body before it is rendered
// into log output. A transform must not fail: when it cannot handle its input
// it returns the input unchanged.
type BodyTransform func(body []byte) []byte

// PrettyJSON is a [BodyTransform] that re-serialises a JSON document with
// indentation. Input that is empty or not valid JSON is returned as is.
func PrettyJSON(body []byte) []byte {
	if len(bytes.TrimSpace(body)) == 0 || !json.Valid(body) {
		return body
	}

	value, err := oj.Parse(body)
	if err != nil {
		return body
	}

	return []byte(oj.JSON(value, &oj.Options{Indent: _prettyJSONIndent}))
}

// applyTransform runs transform over body, falling back to body when the
// transform is nil or panics.
func applyTransform(transform BodyTransform, body []byte) (out []byte) {
	if transform == nil {
		return body
	}

	defer func() {
		if recover() != nil {
			out = body
		}
	}()

	return transform(body)
}
