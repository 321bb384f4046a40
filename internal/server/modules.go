package server

import (
	"github.com/nfrund/reservas/internal/domain"
	"github.com/nfrund/reservas/internal/module"
	"github.com/nfrund/reservas/internal/modules/admin"
	"github.com/nfrund/reservas/internal/modules/student"
)

// ModulesFor returns the modules hosted by portal.
func ModulesFor(portal domain.Portal) []module.Module {
	if portal.Name == domain.AdminPortal.Name {
		return []module.Module{admin.New()}
	}
	return []module.Module{student.New()}
}
