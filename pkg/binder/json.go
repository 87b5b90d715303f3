package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// MaxJSONSize caps JSON request bodies.
const MaxJSONSize = 64 << 10

// JSON binds application/json bodies strictly: unknown fields and trailing
// data are rejected. Requests without a JSON content type, and DataStar
// requests, are not applicable.
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if isDataStar(r) || r.Body == nil || r.ContentLength == 0 {
			return ErrNotApplicable
		}
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return ErrNotApplicable
		}
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
		}
		if mediaType != "application/json" {
			return ErrNotApplicable
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, MaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		if len(body) > MaxJSONSize {
			return fmt.Errorf("%w: body exceeds %d bytes", ErrFailedToParseJSON, MaxJSONSize)
		}

		dec := json.NewDecoder(bytes.NewReader(body))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			if errors.Is(err, io.EOF) {
				return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
			}
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		if dec.More() {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}
		return nil
	}
}
