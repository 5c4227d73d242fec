package client

import (
	"net/http"
	"strings"
	"unicode/utf8"
)

// CurlCommand renders req as a curl command line suitable for replaying it by
// hand:
//
//	curl -k -X <METHOD> --dump-header - -H "<k>: <v>" ... -d "<body>" "<url>"
//
// Double quotes inside header names, header values and the body are escaped
// with a backslash; nothing else is escaped, so the result is not safe to pass
// to a shell for arbitrary input. The body flag is only added when the body
// can be read without consuming the request and is non-empty UTF-8 text.
//
// The second return value is false when the request has no method or URL.
func CurlCommand(req *http.Request) (string, bool) {
	if req == nil || req.Method == "" || req.URL == nil {
		return "", false
	}

	body, _ := requestBody(req)

	return curlCommand(req.Method, req.URL.String(), req.Header, body), true
}

func curlCommand(method, url string, header http.Header, body []byte) string {
	// -k skips TLS verification, --dump-header - prints response headers.
	parts := []string{"curl", "-k", "-X", method, "--dump-header", "-"}

	for _, key := range sortedHeaderKeys(header) {
		for _, value := range header[key] {
			parts = append(parts, `-H "`+escapeQuotes(key)+": "+escapeQuotes(value)+`"`)
		}
	}

	if len(body) > 0 && utf8.Valid(body) {
		parts = append(parts, `-d "`+escapeQuotes(string(body))+`"`)
	}

	parts = append(parts, `"`+url+`"`)

	return strings.Join(parts, " ")
}

func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
