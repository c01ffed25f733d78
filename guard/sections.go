package guard

import "github.com/chrom13/schoolmanager-web/users"

// Section is a navigable area of the client. An empty AllowedRoles set means
// the section is visible to every authenticated role.
type Section struct {
	Title        string
	Path         string
	AllowedRoles []users.Role
}

// CanView reports whether role may see the section.
func CanView(role users.Role, s Section) bool {
	if len(s.AllowedRoles) == 0 {
		return true
	}
	for _, allowed := range s.AllowedRoles {
		if role == allowed {
			return true
		}
	}
	return false
}

// Visible filters sections down to those the role may see, preserving order.
func Visible(role users.Role, sections []Section) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		if CanView(role, s) {
			out = append(out, s)
		}
	}
	return out
}

// Sections is the default navigation registry, mirroring the admin sidebar.
func Sections() []Section {
	adminOnly := []users.Role{users.RoleDirector, users.RoleAdmin}
	teaching := []users.Role{users.RoleDirector, users.RoleAdmin, users.RoleMaestro}
	return []Section{
		{Title: "Dashboard", Path: RouteDashboard, AllowedRoles: adminOnly},
		{Title: "Niveles", Path: "/niveles", AllowedRoles: adminOnly},
		{Title: "Grados", Path: "/grados", AllowedRoles: adminOnly},
		{Title: "Grupos", Path: "/grupos", AllowedRoles: adminOnly},
		{Title: "Materias", Path: "/materias", AllowedRoles: adminOnly},
		{Title: "Alumnos", Path: "/alumnos", AllowedRoles: adminOnly},
		{Title: "Calificaciones", Path: "/calificaciones", AllowedRoles: teaching},
		{Title: "Asistencias", Path: "/asistencias", AllowedRoles: teaching},
		{Title: "Cobranza", Path: "/cobranza", AllowedRoles: adminOnly},
		{Title: "Configuración", Path: "/configuracion", AllowedRoles: []users.Role{users.RoleDirector}},
	}
}
