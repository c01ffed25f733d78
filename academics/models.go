// Package academics covers the school's academic structure: levels, grades,
// groups and subjects. Records are opaque to the client beyond request
// shaping; business validation lives server-side.
package academics

// LevelName is the closed set of level names the platform accepts.
type LevelName string

const (
	Preescolar   LevelName = "preescolar"
	Primaria     LevelName = "primaria"
	Secundaria   LevelName = "secundaria"
	Preparatoria LevelName = "preparatoria"
)

// Level is an educational level of the school.
type Level struct {
	ID       int       `json:"id"`
	SchoolID int       `json:"escuela_id"`
	Name     LevelName `json:"nombre"`
	Active   bool      `json:"activo"`
}

type CreateLevel struct {
	Name LevelName `json:"nombre" validate:"required,oneof=preescolar primaria secundaria preparatoria"`
}

type UpdateLevel struct {
	Name   *LevelName `json:"nombre,omitempty"`
	Active *bool      `json:"activo,omitempty"`
}

// Grade is a year within a level, ordered by Orden.
type Grade struct {
	ID       int    `json:"id"`
	SchoolID int    `json:"escuela_id"`
	LevelID  int    `json:"nivel_id"`
	Name     string `json:"nombre"`
	Orden    int    `json:"orden"`
	Active   bool   `json:"activo"`
	Level    *Level `json:"nivel,omitempty"`
}

type CreateGrade struct {
	LevelID int    `json:"nivel_id" validate:"required"`
	Name    string `json:"nombre" validate:"required"`
	Orden   int    `json:"orden"`
}

type UpdateGrade struct {
	LevelID *int    `json:"nivel_id,omitempty"`
	Name    *string `json:"nombre,omitempty"`
	Orden   *int    `json:"orden,omitempty"`
	Active  *bool   `json:"activo,omitempty"`
}

// Group is a class group within a grade, optionally assigned a teacher.
type Group struct {
	ID        int    `json:"id"`
	SchoolID  int    `json:"escuela_id"`
	GradeID   int    `json:"grado_id"`
	Name      string `json:"nombre"`
	Capacity  int    `json:"capacidad_maxima"`
	TeacherID *int   `json:"maestro_id,omitempty"`
	Active    bool   `json:"activo"`
	Grade     *Grade `json:"grado,omitempty"`
}

type CreateGroup struct {
	GradeID   int    `json:"grado_id" validate:"required"`
	Name      string `json:"nombre" validate:"required"`
	Capacity  int    `json:"capacidad_maxima,omitempty"`
	TeacherID *int   `json:"maestro_id,omitempty"`
}

type UpdateGroup struct {
	GradeID   *int    `json:"grado_id,omitempty"`
	Name      *string `json:"nombre,omitempty"`
	Capacity  *int    `json:"capacidad_maxima,omitempty"`
	TeacherID *int    `json:"maestro_id,omitempty"`
	Active    *bool   `json:"activo,omitempty"`
}

// Subject is a taught subject, independent of grade structure.
type Subject struct {
	ID          int    `json:"id"`
	SchoolID    int    `json:"escuela_id"`
	Name        string `json:"nombre"`
	Code        string `json:"clave,omitempty"`
	Description string `json:"descripcion,omitempty"`
	Color       string `json:"color,omitempty"`
	Active      bool   `json:"activo"`
}

type CreateSubject struct {
	Name        string `json:"nombre" validate:"required"`
	Code        string `json:"clave,omitempty"`
	Description string `json:"descripcion,omitempty"`
	Color       string `json:"color,omitempty"`
}

type UpdateSubject struct {
	Name        *string `json:"nombre,omitempty"`
	Code        *string `json:"clave,omitempty"`
	Description *string `json:"descripcion,omitempty"`
	Color       *string `json:"color,omitempty"`
	Active      *bool   `json:"activo,omitempty"`
}
