package response

import (
	"encoding/json"
	"time"
)

// ErrorResp is the body of every failed request.
type ErrorResp struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the stable code plus request tracing data.
type ErrorBody struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp DateTime       `json:"timestamp"`
	Path      string         `json:"path"`
	RequestID string         `json:"requestId"`
}

// DateTime is a UTC datetime that marshals as DateTimeFormat.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).UTC().Format(DateTimeFormat))
}

// UnmarshalJSON implements json.Unmarshaler for DateTime.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateTimeFormat, s)
	if err != nil {
		return err
	}
	*d = DateTime(t)
	return nil
}
