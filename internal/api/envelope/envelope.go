// Package envelope defines the uniform response shape shared by every
// endpoint. Clients can parse any response, success or failure, on any status
// code, into this one structure.
package envelope

// Envelope is the canonical response body. Exactly one of Data and Errors is
// populated: Data on success, Errors on failure. The populated field is
// always present in the JSON output, as an empty object when there is
// nothing to report, so clients can rely on key presence.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// Success builds a success envelope. A nil data is rendered as {}.
func Success(status int, message string, data any) Envelope {
	if data == nil {
		data = map[string]any{}
	}
	return Envelope{Status: status, Message: message, Data: data}
}

// Error builds an error envelope with field-keyed messages. A nil map is
// rendered as {}, never null.
func Error(status int, message string, errs map[string][]string) Envelope {
	if errs == nil {
		errs = map[string][]string{}
	}
	return Envelope{Status: status, Message: message, Errors: errs}
}
