package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrConfirmedValueMissing = errors.New("confirmed_value is required")
	ErrConfirmedValueInvalid = errors.New("confirmed_value must be a string or a number")
)

// UploadMeasureRequest is the POST /upload payload. Fields are validated by the
// use case so each missing field maps to INVALID_DATA rather than a bind error.
type UploadMeasureRequest struct {
	Image           string `json:"image" example:"data:image/png;base64,iVBORw0KGgo..."`
	CustomerCode    string `json:"customer_code" example:"cust-1"`
	MeasureDatetime string `json:"measure_datetime" example:"2024-03-15T10:00:00Z"`
	MeasureType     string `json:"measure_type" example:"WATER" enums:"WATER,GAS"`
}

// ConfirmMeasureRequest is the POST|PATCH /confirm payload.
type ConfirmMeasureRequest struct {
	MeasureUUID    string          `json:"measure_uuid" example:"6f1c2b0e-1c1d-4c1a-9a43-0a1b2c3d4e5f"`
	ConfirmedValue json.RawMessage `json:"confirmed_value" swaggertype:"string" example:"123"`
}

func (r ConfirmMeasureRequest) ResolveMeasureUUID() string {
	return strings.TrimSpace(r.MeasureUUID)
}

// ResolveConfirmedValue returns the value to store. Strings are kept as sent;
// numbers keep their literal text ("12.50" stays "12.50").
func (r ConfirmMeasureRequest) ResolveConfirmedValue() (string, error) {
	raw := bytes.TrimSpace(r.ConfirmedValue)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", ErrConfirmedValueMissing
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", ErrConfirmedValueInvalid
		}
		return s, nil
	case '{', '[', 't', 'f':
		return "", ErrConfirmedValueInvalid
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return "", ErrConfirmedValueInvalid
	}
	return n.String(), nil
}
