// Package client provides a logging shim for HTTP clients and a small
// JSON-over-HTTP client built on it.
//
// The shim formats outgoing requests and incoming responses for human
// inspection (headers, bodies, status codes and an equivalent curl command)
// and forwards the text to a pluggable [Sink].
//
// # Basic Usage
//
//	logger := client.NewHTTPLogger(client.NewZapSink(zapLogger),
//	    client.WithVerbose(true),
//	    client.WithResponseBodyTransform(client.PrettyJSON),
//	)
//
//	httpClient := &http.Client{
//	    Transport: client.NewLogTransport(http.DefaultTransport, logger),
//	}
//
// The same logger can be attached to a resty client with [HTTPLogger.Attach],
// or handed to [Client] through [WithHTTPLogger].
//
// # Verbosity
//
// With [WithVerbose] enabled, requests are logged at verbose level together
// with their body and a curl command, and responses are logged with their
// body. Without it, requests are logged at error level without body or curl
// command, and responses are not logged at all. Errors reported through
// [HTTPLogger.LogError] are always logged.
//
// Bodies that are not valid UTF-8 are left out of the output. Body transforms
// such as [PrettyJSON] never fail; they return their input unchanged when it
// cannot be handled.
//
// # Curl Commands
//
// [CurlCommand] only escapes double quotes. The output is meant to be copied
// by hand and is not safe to feed to a shell for arbitrary input.
//
// # Client Configuration
//
// [ClientConfig] supplies default headers, response decoding and error
// extraction for [Client]. Embed [BaseConfig], which implements all three as
// no-ops, and override what you need.
//
// # Logging
//
// Implement [Sink] to route output to your logging library, or use
// [ZapSink] or [RequestLoggerSink]. The default sink discards all output.
// Ensure your implementation redacts credentials and tokens from request and
// response bodies before persisting logs.
package client
