package upstream

import (
	"context"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/gateway"
)

// Users talks to the users service.
type Users struct{ c Caller }

// List returns every user.
func (u *Users) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := u.c.Do(ctx, gateway.Get(gateway.Users, "/users", nil), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create registers a new user.
func (u *Users) Create(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	var user domain.User
	if err := u.c.Do(ctx, gateway.Post(gateway.Users, "/users/create", req), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies a partial update to a user.
func (u *Users) Update(ctx context.Context, id domain.ID, req domain.UpdateUserRequest) error {
	return u.c.Do(ctx, gateway.Put(gateway.Users, "/users/"+id.String(), req), nil)
}

// ChangeRole assigns a new role to a user.
func (u *Users) ChangeRole(ctx context.Context, id domain.ID, role string) error {
	return u.c.Do(ctx, gateway.Post(gateway.Users, "/users/change-role", domain.ChangeRoleRequest{UserID: id, NewRole: role}), nil)
}

// Activate re-enables a deactivated user.
func (u *Users) Activate(ctx context.Context, id domain.ID) error {
	active := true
	return u.Update(ctx, id, domain.UpdateUserRequest{Active: &active})
}

// Deactivate disables a user; the users service keeps the record.
func (u *Users) Deactivate(ctx context.Context, id domain.ID) error {
	return u.c.Do(ctx, gateway.Delete(gateway.Users, "/users/"+id.String()), nil)
}
