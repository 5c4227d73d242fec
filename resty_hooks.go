package client

import (
	"errors"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Attach registers l on a resty client: requests are logged from the
// pre-request hook once resty has built the raw *http.Request, responses from
// an after-response middleware and failures from an error hook.
//
// Attach replaces any pre-request hook already set on rc.
func (l *HTTPLogger) Attach(rc *resty.Client) *resty.Client {
	return rc.
		SetPreRequestHook(func(_ *resty.Client, req *http.Request) error {
			l.LogRequest(req)

			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			l.LogResponse(resp.RawResponse, resp.Body(), resp.Request.URL)

			return nil
		}).
		OnError(func(req *resty.Request, err error) {
			l.LogError(req.Method + " " + req.URL + ": " + err.Error())

			var respErr *resty.ResponseError
			if !errors.As(err, &respErr) || respErr.Response == nil || respErr.Response.RawResponse == nil {
				l.LogResponse(nil, nil, req.URL)
			}
		})
}
