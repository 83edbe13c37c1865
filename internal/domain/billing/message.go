package billing

import (
	"encoding/json"
	"errors"

	"paywall-app/internal/infra/stripegw"
)

// UnknownErrorMessage is shown when nothing readable can be extracted.
const UnknownErrorMessage = "Ein unbekannter Fehler ist aufgetreten."

type messager interface {
	Message() string
}

// MessageOf extracts a human-readable message from v. In order: a string is
// returned as is; errors yield the provider message when there is one, else
// their text; then a direct message field; then a nested error.message; and
// finally the JSON encoding of v. Structs are matched by their JSON encoding,
// so a field tagged `json:"message"` counts as a message field.
func MessageOf(v any) string {
	switch x := v.(type) {
	case nil:
		return UnknownErrorMessage
	case string:
		return x
	case error:
		return errorMessage(x)
	case messager:
		return x.Message()
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return UnknownErrorMessage
	}
	var fields map[string]any
	if json.Unmarshal(raw, &fields) == nil {
		if msg, ok := messageField(fields); ok {
			return msg
		}
	}
	return string(raw)
}

func messageField(fields map[string]any) (string, bool) {
	if msg, ok := fields["message"].(string); ok {
		return msg, true
	}
	if nested, ok := fields["error"].(map[string]any); ok {
		if msg, ok := nested["message"].(string); ok {
			return msg, true
		}
	}
	return "", false
}

func errorMessage(err error) string {
	var gwErr *stripegw.Error
	if errors.As(err, &gwErr) && gwErr.Message != "" {
		return gwErr.Message
	}
	var op *OpError
	if errors.As(err, &op) && op.Err != nil {
		return errorMessage(op.Err)
	}
	return err.Error()
}
