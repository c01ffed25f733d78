package students

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"

	"github.com/chrom13/schoolmanager-web/api"
	"github.com/chrom13/schoolmanager-web/internal/resource"
	"github.com/chrom13/schoolmanager-web/internal/validate"
)

// Students is the typed accessor for /alumnos.
type Students struct {
	*resource.Service[Student, CreateStudent, UpdateStudent]
}

func NewStudents(deps resource.Deps) *Students {
	return &Students{Service: resource.New[Student, CreateStudent, UpdateStudent](deps, "alumnos", "/alumnos", resource.Labels{
		Created:   "Alumno creado exitosamente",
		Updated:   "Alumno actualizado exitosamente",
		Deleted:   "Alumno eliminado exitosamente",
		CreateErr: "Error al crear alumno",
		UpdateErr: "Error al actualizar alumno",
		DeleteErr: "Error al eliminar alumno",
	})}
}

// Search finds students by free text, cached per query string.
func (s *Students) Search(ctx context.Context, q string) ([]Student, error) {
	query := url.Values{"q": {q}}
	return s.ListVariant(ctx, "q:"+q, "/search", query)
}

// ListByGroup returns the students of one group, cached per group.
func (s *Students) ListByGroup(ctx context.Context, groupID int) ([]Student, error) {
	query := url.Values{"grupo_id": {strconv.Itoa(groupID)}}
	return s.ListVariant(ctx, "grupo:"+strconv.Itoa(groupID), "", query)
}

// Guardians is the typed accessor for /padres, including the student
// association endpoints.
type Guardians struct {
	*resource.Service[Guardian, CreateGuardian, UpdateGuardian]
}

func NewGuardians(deps resource.Deps) *Guardians {
	return &Guardians{Service: resource.New[Guardian, CreateGuardian, UpdateGuardian](deps, "padres", "/padres", resource.Labels{
		Created:   "Padre creado exitosamente",
		Updated:   "Padre actualizado exitosamente",
		Deleted:   "Padre eliminado exitosamente",
		CreateErr: "Error al crear padre",
		UpdateErr: "Error al actualizar padre",
		DeleteErr: "Error al eliminar padre",
	})}
}

// Search finds guardians by free text, cached per query string.
func (g *Guardians) Search(ctx context.Context, q string) ([]Guardian, error) {
	query := url.Values{"q": {q}}
	return g.ListVariant(ctx, "q:"+q, "/search", query)
}

// StudentsOf returns the students linked to a guardian. Uncached: the result
// belongs to the association, which either side's mutations may change.
func (g *Guardians) StudentsOf(ctx context.Context, guardianID int) ([]Student, error) {
	var resp api.Envelope[[]Student]
	path := fmt.Sprintf("/padres/%d/alumnos", guardianID)
	if err := g.Client().Get(ctx, path, nil, &resp); err != nil {
		return nil, errors.Wrapf(err, "[StudentsOf] fetching students of guardian %d", guardianID)
	}
	return resp.Data, nil
}

// Link attaches a guardian to a student with relationship metadata. The
// write touches both collections, so both caches are invalidated.
func (g *Guardians) Link(ctx context.Context, guardianID, studentID int, pivot LinkData) error {
	if err := validate.Struct(pivot); err != nil {
		return err
	}
	path := fmt.Sprintf("/padres/%d/alumnos/%d", guardianID, studentID)
	return g.Mutate(ctx, func(ctx context.Context, c *api.Client) error {
		return c.Post(ctx, path, pivot, nil)
	}, "Padre vinculado exitosamente", "Error al vincular padre", "alumnos")
}

// UpdateLink rewrites the pivot data of an existing association.
func (g *Guardians) UpdateLink(ctx context.Context, guardianID, studentID int, pivot LinkData) error {
	path := fmt.Sprintf("/padres/%d/alumnos/%d", guardianID, studentID)
	return g.Mutate(ctx, func(ctx context.Context, c *api.Client) error {
		return c.Put(ctx, path, pivot, nil)
	}, "Parentesco actualizado exitosamente", "Error al actualizar parentesco", "alumnos")
}

// Unlink detaches a guardian from a student, invalidating both caches.
func (g *Guardians) Unlink(ctx context.Context, guardianID, studentID int) error {
	path := fmt.Sprintf("/padres/%d/alumnos/%d", guardianID, studentID)
	return g.Mutate(ctx, func(ctx context.Context, c *api.Client) error {
		return c.Delete(ctx, path)
	}, "Padre desvinculado exitosamente", "Error al desvincular padre", "alumnos")
}
