package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshal(t *testing.T) {
	t.Run("accepts numbers and numeric strings", func(t *testing.T) {
		var v struct {
			A ID `json:"a"`
			B ID `json:"b"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a": 7, "b": "12"}`), &v))
		assert.Equal(t, ID(7), v.A)
		assert.Equal(t, ID(12), v.B)
	})

	t.Run("null and empty decode to zero", func(t *testing.T) {
		var v struct {
			A ID `json:"a"`
			B ID `json:"b"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"a": null, "b": ""}`), &v))
		assert.Zero(t, v.A)
		assert.Zero(t, v.B)
	})

	t.Run("rejects non numeric strings", func(t *testing.T) {
		var id ID
		assert.Error(t, json.Unmarshal([]byte(`"abc"`), &id))
	})

	t.Run("encodes as a number", func(t *testing.T) {
		b, err := json.Marshal(struct {
			ID ID `json:"id"`
		}{ID: 42})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id": 42}`, string(b))
	})
}

func TestVerificationDecodesStringSubject(t *testing.T) {
	body := `{"valid": true, "user_info": {"id": "3", "rut": "11111111-1", "tipo_usuario": "administrador", "nombre": "Ana"}}`

	var v Verification
	require.NoError(t, json.Unmarshal([]byte(body), &v))

	require.NotNil(t, v.UserInfo)
	assert.True(t, v.Valid)
	assert.Equal(t, ID(3), v.UserInfo.ID)
	assert.True(t, v.UserInfo.IsAdmin())
}

func TestPortalAllows(t *testing.T) {
	student := &Identity{ID: 1, Role: RoleStudent}
	admin := &Identity{ID: 2, Role: RoleAdmin}

	assert.True(t, StudentPortal.Allows(student))
	assert.True(t, StudentPortal.Allows(admin))
	assert.False(t, AdminPortal.Allows(student))
	assert.True(t, AdminPortal.Allows(admin))
	assert.False(t, AdminPortal.Allows(nil))
}

func TestConfigUpdateEmpty(t *testing.T) {
	assert.True(t, ConfigUpdate{}.Empty())

	hours := 3
	assert.False(t, ConfigUpdate{MaxDurationHours: &hours}.Empty())
}
