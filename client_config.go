package client

// ClientConfig customises how a [Client] talks to a particular API. The three
// methods are independent of each other and may be called in any order.
//
// Embed [BaseConfig] and override only the methods you need:
//
//	type apiConfig struct {
//	    client.BaseConfig
//	}
//
//	func (apiConfig) DefaultHeaders() map[string]string {
//	    return map[string]string{"X-Api-Version": "2"}
//	}
type ClientConfig interface {
	// DefaultHeaders returns headers added to every request.
	DefaultHeaders() map[string]string

	// DecodeResponseData turns a response payload into a domain value. A nil
	// result means no value is available.
	DecodeResponseData(data []byte) any

	// ResponseErrors extracts structured errors from a response payload. A
	// nil or empty result means the payload carries no errors.
	ResponseErrors(data []byte) []error
}

// BaseConfig is a [ClientConfig] that does nothing: no headers, no decoded
// value and no errors.
type BaseConfig struct{}

var _ ClientConfig = BaseConfig{}

func (BaseConfig) DefaultHeaders() map[string]string {
	return map[string]string{}
}

func (BaseConfig) DecodeResponseData(_ []byte) any {
	return nil
}

func (BaseConfig) ResponseErrors(_ []byte) []error {
	return nil
}
