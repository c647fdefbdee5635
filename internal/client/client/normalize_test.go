package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Envelope(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		ok      bool
		data    string
		message string
		errText string
	}{
		{
			name:    "success with data and message",
			body:    `{"success":true,"data":{"id":1},"message":"Saved"}`,
			ok:      true,
			data:    `{"id":1}`,
			message: "Saved",
		},
		{
			name: "success without data",
			body: `{"success":true}`,
			ok:   true,
		},
		{
			name: "success with null data",
			body: `{"success":1,"data":null}`,
			ok:   true,
		},
		{
			name:    "failure with error text",
			body:    `{"success":false,"error":"Email already registered"}`,
			errText: "Email already registered",
		},
		{
			name:    "failure without error text",
			body:    `{"success":false}`,
			errText: MsgRequestFailed,
		},
		{
			name:    "failure with empty error text",
			body:    `{"success":0,"error":""}`,
			errText: MsgRequestFailed,
		},
		{
			name:    "failure with structured error",
			body:    `{"success":false,"error":{"field":"email"}}`,
			errText: `{"field":"email"}`,
		},
		{
			name:    "null success is falsy",
			body:    `{"success":null,"data":{"id":1}}`,
			errText: MsgRequestFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Normalize([]byte(tt.body))
			assert.Equal(t, tt.ok, res.OK)
			if tt.ok {
				if tt.data == "" {
					assert.Nil(t, res.Data)
				} else {
					assert.JSONEq(t, tt.data, string(res.Data))
				}
				assert.Equal(t, tt.message, res.Message)
				assert.NoError(t, res.Err())
				return
			}
			assert.Equal(t, tt.errText, res.Error)
			assert.Equal(t, KindValidation, res.Kind)
			assert.Zero(t, res.Code)
			assert.False(t, res.HasCode())
			assert.Error(t, res.Err())
		})
	}
}

func TestNormalize_Legacy(t *testing.T) {
	t.Run("object without success member", func(t *testing.T) {
		res := Normalize([]byte(`{"token":"abc","user":{"id":1}}`))
		require.True(t, res.OK)
		assert.JSONEq(t, `{"token":"abc","user":{"id":1}}`, string(res.Data))
		assert.Equal(t, "Success", res.Message)
	})

	t.Run("message member becomes message", func(t *testing.T) {
		res := Normalize([]byte(`{"message":"Project updated","project":{"id":3}}`))
		require.True(t, res.OK)
		assert.Equal(t, "Project updated", res.Message)
		assert.JSONEq(t, `{"message":"Project updated","project":{"id":3}}`, string(res.Data))
	})

	t.Run("array", func(t *testing.T) {
		res := Normalize([]byte(`[{"id":1},{"id":2}]`))
		require.True(t, res.OK)
		assert.JSONEq(t, `[{"id":1},{"id":2}]`, string(res.Data))
		assert.Equal(t, "Success", res.Message)
	})

	t.Run("empty body", func(t *testing.T) {
		res := Normalize(nil)
		require.True(t, res.OK)
		assert.Nil(t, res.Data)
	})

	t.Run("plain text", func(t *testing.T) {
		res := Normalize([]byte("deleted"))
		require.True(t, res.OK)
		var s string
		require.NoError(t, json.Unmarshal(res.Data, &s))
		assert.Equal(t, "deleted", s)
	})
}

func TestTruthy(t *testing.T) {
	for raw, want := range map[string]bool{
		``:        false,
		`null`:    false,
		`false`:   false,
		`0`:       false,
		`0.0`:     false,
		`""`:      false,
		`true`:    true,
		`1`:       true,
		`-2.5`:    true,
		`"yes"`:   true,
		`{}`:      true,
		`[]`:      true,
		`"false"`: true,
	} {
		assert.Equal(t, want, truthy(json.RawMessage(raw)), "truthy(%s)", raw)
	}
}
