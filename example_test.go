package client_test

import (
	"fmt"
	"net/http"
	"strings"

	client "github.com/peteraglen/httplog-go-client"
)

func ExampleCurlCommand() {
	req, _ := http.NewRequest(http.MethodPost, "https://x.test/a", strings.NewReader(`{"k":"v"}`)) //nolint:noctx // Example code.
	req.Header.Set("A", "1")

	curl, _ := client.CurlCommand(req)
	fmt.Println(curl)
	// Output: curl -k -X POST --dump-header - -H "A: 1" -d "{\"k\":\"v\"}" "https://x.test/a"
}

func ExampleHTTPLogger_FormatResponse() {
	logger := client.NewHTTPLogger(client.NoopSink{}, client.WithVerbose(true))

	fmt.Println(logger.FormatResponse(&http.Response{StatusCode: http.StatusOK}, []byte("pong"), "https://x.test/ping"))
	fmt.Println(logger.FormatResponse(nil, nil, "https://x.test/b"))
	// Output:
	// ✅ Status Code: 200 URL:https://x.test/ping
	// pong
	// ⚠️ Empty response received from URL:https://x.test/b
}
