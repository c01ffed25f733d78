package academics

import (
	"context"
	"net/url"
	"strconv"

	"github.com/chrom13/schoolmanager-web/internal/resource"
)

// Levels is the typed accessor for /niveles.
type Levels struct {
	*resource.Service[Level, CreateLevel, UpdateLevel]
}

func NewLevels(deps resource.Deps) *Levels {
	return &Levels{Service: resource.New[Level, CreateLevel, UpdateLevel](deps, "niveles", "/niveles", resource.Labels{
		Created:   "Nivel creado exitosamente",
		Updated:   "Nivel actualizado exitosamente",
		Deleted:   "Nivel eliminado exitosamente",
		CreateErr: "Error al crear nivel",
		UpdateErr: "Error al actualizar nivel",
		DeleteErr: "Error al eliminar nivel",
	})}
}

// Grades is the typed accessor for /grados.
type Grades struct {
	*resource.Service[Grade, CreateGrade, UpdateGrade]
}

func NewGrades(deps resource.Deps) *Grades {
	return &Grades{Service: resource.New[Grade, CreateGrade, UpdateGrade](deps, "grados", "/grados", resource.Labels{
		Created:   "Grado creado exitosamente",
		Updated:   "Grado actualizado exitosamente",
		Deleted:   "Grado eliminado exitosamente",
		CreateErr: "Error al crear grado",
		UpdateErr: "Error al actualizar grado",
		DeleteErr: "Error al eliminar grado",
	})}
}

// ListByLevel returns the grades of one level, cached per level.
func (g *Grades) ListByLevel(ctx context.Context, levelID int) ([]Grade, error) {
	query := url.Values{"nivel_id": {strconv.Itoa(levelID)}}
	return g.ListVariant(ctx, "nivel:"+strconv.Itoa(levelID), "", query)
}

// Groups is the typed accessor for /grupos.
type Groups struct {
	*resource.Service[Group, CreateGroup, UpdateGroup]
}

func NewGroups(deps resource.Deps) *Groups {
	return &Groups{Service: resource.New[Group, CreateGroup, UpdateGroup](deps, "grupos", "/grupos", resource.Labels{
		Created:   "Grupo creado exitosamente",
		Updated:   "Grupo actualizado exitosamente",
		Deleted:   "Grupo eliminado exitosamente",
		CreateErr: "Error al crear grupo",
		UpdateErr: "Error al actualizar grupo",
		DeleteErr: "Error al eliminar grupo",
	})}
}

// ListByGrade returns the groups of one grade, cached per grade.
func (g *Groups) ListByGrade(ctx context.Context, gradeID int) ([]Group, error) {
	query := url.Values{"grado_id": {strconv.Itoa(gradeID)}}
	return g.ListVariant(ctx, "grado:"+strconv.Itoa(gradeID), "", query)
}

// Subjects is the typed accessor for /materias.
type Subjects struct {
	*resource.Service[Subject, CreateSubject, UpdateSubject]
}

func NewSubjects(deps resource.Deps) *Subjects {
	return &Subjects{Service: resource.New[Subject, CreateSubject, UpdateSubject](deps, "materias", "/materias", resource.Labels{
		Created:   "Materia creada exitosamente",
		Updated:   "Materia actualizada exitosamente",
		Deleted:   "Materia eliminada exitosamente",
		CreateErr: "Error al crear materia",
		UpdateErr: "Error al actualizar materia",
		DeleteErr: "Error al eliminar materia",
	})}
}
