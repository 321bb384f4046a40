package domain

// Portal describes one of the two front-ends served by this repository.
type Portal struct {
	// Name is the short identifier used on the command line and in logs.
	Name string
	// Title is shown in the page header.
	Title string
	// DefaultPort is used when neither the flag nor PORT is set.
	DefaultPort int
	// RequiredRole restricts every protected route to a single role.
	// Empty means any authenticated user.
	RequiredRole string
}

var (
	StudentPortal = Portal{Name: "student", Title: "Sistema de Reservas UDP", DefaultPort: 3000}
	AdminPortal   = Portal{Name: "admin", Title: "Panel de Administración UDP", DefaultPort: 3001, RequiredRole: RoleAdmin}
)

// Allows reports whether an identity may use the portal.
func (p Portal) Allows(id *Identity) bool {
	if id == nil {
		return false
	}
	return p.RequiredRole == "" || id.Role == p.RequiredRole
}
