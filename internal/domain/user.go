package domain

import (
	"strconv"
	"strings"
)

// Roles known to the auth and users services.
const (
	RoleStudent = "estudiante"
	RoleStaff   = "funcionario"
	RoleAdmin   = "administrador"
)

// Roles lists every role an administrator can assign.
var Roles = []string{RoleStudent, RoleStaff, RoleAdmin}

// ID is a numeric record identifier. The auth service encodes user IDs as
// JSON strings in verification responses and as numbers everywhere else,
// so decoding accepts both forms.
type ID int64

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	if s == "" || s == "null" {
		*id = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*id = ID(n)
	return nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Identity is the authenticated user as reported by the auth service.
// It is fetched on every request and never cached.
type Identity struct {
	ID    ID     `json:"id"`
	RUT   string `json:"rut"`
	Name  string `json:"nombre"`
	Role  string `json:"tipo_usuario"`
	Email string `json:"correo,omitempty"`
}

// IsAdmin reports whether the identity carries the administrator role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}

// Verification is the auth service's answer to a token check.
type Verification struct {
	Valid    bool      `json:"valid"`
	UserInfo *Identity `json:"user_info"`
}

// LoginRequest is forwarded to the auth service.
type LoginRequest struct {
	RUT      string `json:"rut"`
	Password string `json:"password"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	OK       bool      `json:"ok"`
	Token    string    `json:"token"`
	UserInfo *Identity `json:"user_info"`
}

// User is a user record as listed by the users service.
type User struct {
	ID        ID     `json:"id"`
	RUT       string `json:"rut"`
	Email     string `json:"correo_institucional"`
	Name      string `json:"nombre"`
	Role      string `json:"tipo_usuario"`
	Active    bool   `json:"activo"`
	CreatedAt string `json:"fecha_creacion"`
}

// CreateUserRequest creates a user.
type CreateUserRequest struct {
	RUT   string `json:"rut"`
	Email string `json:"correo_institucional"`
	Name  string `json:"nombre"`
	Role  string `json:"tipo_usuario"`
}

// UpdateUserRequest is a partial update; nil fields are left untouched.
type UpdateUserRequest struct {
	Name   *string `json:"nombre,omitempty"`
	Role   *string `json:"tipo_usuario,omitempty"`
	Active *bool   `json:"activo,omitempty"`
}

// ChangeRoleRequest changes a user's role.
type ChangeRoleRequest struct {
	UserID  ID     `json:"user_id"`
	NewRole string `json:"new_role"`
}
