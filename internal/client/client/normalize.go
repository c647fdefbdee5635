package client

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// DefaultMessage is the message of a legacy reply that carries none.
const DefaultMessage = "Success"

type envelope struct {
	Success json.RawMessage `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message json.RawMessage `json:"message"`
	Error   json.RawMessage `json:"error"`
}

// Normalize folds a 2xx reply body into a Result.
//
// An object carrying a "success" member is an envelope: a truthy success
// yields its data and message, a falsy one a KindValidation failure with the
// envelope's error text. Any other body is the legacy shape and becomes the
// data as-is. A body that is not JSON at all is carried as a JSON string.
func Normalize(body []byte) Result[json.RawMessage] {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Success[json.RawMessage](nil, DefaultMessage)
	}

	if !json.Valid(trimmed) {
		quoted, _ := json.Marshal(string(trimmed))
		return Success(json.RawMessage(quoted), DefaultMessage)
	}

	if trimmed[0] == '{' {
		var members map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &members); err == nil {
			if _, ok := members["success"]; ok {
				return fromEnvelope(trimmed)
			}
			msg := DefaultMessage
			if m := stringValue(members["message"]); m != "" {
				msg = m
			}
			return Success(json.RawMessage(trimmed), msg)
		}
	}

	return Success(json.RawMessage(trimmed), DefaultMessage)
}

func fromEnvelope(body []byte) Result[json.RawMessage] {
	var env envelope
	// body was validated as a JSON object by the caller.
	_ = json.Unmarshal(body, &env)

	if truthy(env.Success) {
		var data json.RawMessage
		if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
			data = env.Data
		}
		return Success(data, stringValue(env.Message))
	}

	msg := MsgRequestFailed
	if truthy(env.Error) {
		msg = displayText(env.Error)
	}
	return Failure[json.RawMessage](&APIError{Kind: KindValidation, Message: msg})
}

// truthy mirrors loose boolean coercion of a JSON value: false, 0, "",
// null and absence are false, everything else is true.
func truthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}
	switch raw[0] {
	case 'n', 'f':
		return false
	case 't', '{', '[':
		return true
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return false
		}
		return s != ""
	default:
		f, err := strconv.ParseFloat(string(raw), 64)
		return err == nil && f != 0
	}
}

// stringValue returns raw as a string when it is a JSON string, else "".
func stringValue(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}

// displayText renders a truthy JSON value as a message: strings verbatim,
// anything else as compact JSON.
func displayText(raw json.RawMessage) string {
	if s := stringValue(raw); s != "" {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
