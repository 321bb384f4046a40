package admin

import (
	"github.com/labstack/echo/v4"

	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/handlers"
	"github.com/nfrund/reservas/internal/middleware"
	"github.com/nfrund/reservas/internal/view"
	adminpages "github.com/nfrund/reservas/web/src/templates/pages/admin"
)

const (
	UsersTitle = "Gestión de Usuarios"
	usersPath  = "/usuarios"

	MsgUserCreated       = "Usuario creado exitosamente"
	MsgUserCreateFailed  = "Error al crear usuario"
	MsgUserUpdated       = "Usuario actualizado exitosamente"
	MsgUserUpdateFailed  = "Error al actualizar usuario"
	MsgRoleChanged       = "Rol actualizado exitosamente"
	MsgRoleChangeFailed  = "Error al cambiar rol"
	MsgUserActivated     = "Usuario activado exitosamente"
	MsgUserDeactivated   = "Usuario desactivado exitosamente"
	MsgUserStatusFailed  = "Error al cambiar el estado del usuario"
	MsgUserFieldsMissing = "Completa RUT, nombre, correo y rol"
)

// Users renders GET /usuarios.
func (h *Handler) Users(c echo.Context) error {
	ctx := c.Request().Context()
	var d adminpages.UsersData

	users, err := h.deps.Users.List(ctx)
	if err != nil {
		middleware.FromContext(ctx).Error("Loading users failed", "error", err)
		d.Error = MsgUsersFailed
	}
	d.Users = users

	return h.deps.Layout.Render(c, UsersTitle, usersPath, adminpages.Users(d))
}

// CreateUser handles POST /usuarios/crear.
func (h *Handler) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var form UserForm
	if err := handlers.BindForm(c, &form); err != nil {
		return view.RedirectError(c, usersPath, MsgUserFieldsMissing)
	}
	user, err := h.deps.Users.Create(ctx, domain.CreateUserRequest{
		RUT:   form.RUT,
		Email: form.Email,
		Name:  form.Name,
		Role:  form.Role,
	})
	if err != nil {
		middleware.FromContext(ctx).Error("Creating user failed", "rut", form.RUT, "error", err)
		return view.RedirectError(c, usersPath, handlers.UserMessage(MsgUserCreateFailed, err))
	}

	ev := domain.ActionEvent{Action: "crear", Target: "usuario", Detail: form.RUT}
	if user != nil {
		ev.TargetID = user.ID
	}
	h.published(c, ev)
	return view.RedirectSuccess(c, usersPath, MsgUserCreated)
}

// UpdateUser handles POST /usuarios/actualizar.
func (h *Handler) UpdateUser(c echo.Context) error {
	ctx := c.Request().Context()

	var form UserUpdateForm
	if err := handlers.BindForm(c, &form); err != nil {
		return view.RedirectError(c, usersPath, MsgUserUpdateFailed)
	}
	if err := h.deps.Users.Update(ctx, form.UserID, form.Request()); err != nil {
		middleware.FromContext(ctx).Error("Updating user failed", "user_id", form.UserID, "error", err)
		return view.RedirectError(c, usersPath, handlers.UserMessage(MsgUserUpdateFailed, err))
	}

	h.published(c, domain.ActionEvent{Action: "actualizar", Target: "usuario", TargetID: form.UserID})
	return view.RedirectSuccess(c, usersPath, MsgUserUpdated)
}

// ChangeRole handles POST /usuarios/cambiar-rol.
func (h *Handler) ChangeRole(c echo.Context) error {
	ctx := c.Request().Context()

	var form RoleForm
	if err := handlers.BindForm(c, &form); err != nil {
		return view.RedirectError(c, usersPath, MsgRoleChangeFailed)
	}
	if err := h.deps.Users.ChangeRole(ctx, form.UserID, form.NewRole); err != nil {
		middleware.FromContext(ctx).Error("Changing role failed", "user_id", form.UserID, "role", form.NewRole, "error", err)
		return view.RedirectError(c, usersPath, handlers.UserMessage(MsgRoleChangeFailed, err))
	}

	h.published(c, domain.ActionEvent{Action: "cambiar_rol", Target: "usuario", TargetID: form.UserID, Detail: form.NewRole})
	return view.RedirectSuccess(c, usersPath, MsgRoleChanged)
}

// ActivateUser handles POST /usuarios/activar.
func (h *Handler) ActivateUser(c echo.Context) error {
	return h.setUserActive(c, true)
}

// DeactivateUser handles POST /usuarios/desactivar.
func (h *Handler) DeactivateUser(c echo.Context) error {
	return h.setUserActive(c, false)
}

func (h *Handler) setUserActive(c echo.Context, active bool) error {
	ctx := c.Request().Context()

	var form UserIDForm
	if err := handlers.BindForm(c, &form); err != nil {
		return view.RedirectError(c, usersPath, MsgUserStatusFailed)
	}

	action, msg, op := "activar", MsgUserActivated, h.deps.Users.Activate
	if !active {
		action, msg, op = "desactivar", MsgUserDeactivated, h.deps.Users.Deactivate
	}
	if err := op(ctx, form.UserID); err != nil {
		middleware.FromContext(ctx).Error("Changing user status failed", "user_id", form.UserID, "active", active, "error", err)
		return view.RedirectError(c, usersPath, handlers.UserMessage(MsgUserStatusFailed, err))
	}

	h.published(c, domain.ActionEvent{Action: action, Target: "usuario", TargetID: form.UserID})
	return view.RedirectSuccess(c, usersPath, msg)
}
