// Package students covers student and guardian records and the association
// between them, including the relationship metadata carried on the link.
package students

import "github.com/chrom13/schoolmanager-web/academics"

// Student is an enrolled student, optionally assigned to a group.
type Student struct {
	ID              int              `json:"id"`
	SchoolID        int              `json:"escuela_id"`
	GroupID         *int             `json:"grupo_id,omitempty"`
	Name            string           `json:"nombre"`
	ApellidoPaterno string           `json:"apellido_paterno"`
	ApellidoMaterno string           `json:"apellido_materno,omitempty"`
	FullName        string           `json:"nombre_completo,omitempty"`
	CURP            string           `json:"curp,omitempty"`
	BirthDate       string           `json:"fecha_nacimiento,omitempty"`
	PhotoURL        string           `json:"foto_url,omitempty"`
	Active          bool             `json:"activo"`
	Group           *academics.Group `json:"grupo,omitempty"`
	Guardians       []Guardian       `json:"padres,omitempty"`
}

type CreateStudent struct {
	GroupID         *int   `json:"grupo_id,omitempty"`
	Name            string `json:"nombre" validate:"required"`
	ApellidoPaterno string `json:"apellido_paterno" validate:"required"`
	ApellidoMaterno string `json:"apellido_materno,omitempty"`
	CURP            string `json:"curp,omitempty"`
	BirthDate       string `json:"fecha_nacimiento,omitempty"`
}

type UpdateStudent struct {
	GroupID         *int    `json:"grupo_id,omitempty"`
	Name            *string `json:"nombre,omitempty"`
	ApellidoPaterno *string `json:"apellido_paterno,omitempty"`
	ApellidoMaterno *string `json:"apellido_materno,omitempty"`
	CURP            *string `json:"curp,omitempty"`
	BirthDate       *string `json:"fecha_nacimiento,omitempty"`
	Active          *bool   `json:"activo,omitempty"`
}

// Relationship is the kinship carried on a guardian↔student link.
type Relationship string

const (
	RelPadre  Relationship = "padre"
	RelMadre  Relationship = "madre"
	RelTutor  Relationship = "tutor"
	RelAbuelo Relationship = "abuelo"
	RelOtro   Relationship = "otro"
)

// Guardian is a billing/contact record linked to one or more students.
type Guardian struct {
	ID            int       `json:"id"`
	SchoolID      int       `json:"escuela_id"`
	FullName      string    `json:"nombre_completo"`
	Email         string    `json:"email,omitempty"`
	Telefono      string    `json:"telefono,omitempty"`
	RFC           string    `json:"rfc,omitempty"`
	RegimenFiscal string    `json:"regimen_fiscal,omitempty"`
	UsoCFDI       string    `json:"uso_cfdi,omitempty"`
	CodigoPostal  string    `json:"codigo_postal,omitempty"`
	Active        bool      `json:"activo"`
	Students      []Student `json:"alumnos,omitempty"`
}

type CreateGuardian struct {
	FullName      string `json:"nombre_completo" validate:"required"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Telefono      string `json:"telefono,omitempty"`
	RFC           string `json:"rfc,omitempty"`
	RegimenFiscal string `json:"regimen_fiscal,omitempty"`
	UsoCFDI       string `json:"uso_cfdi,omitempty"`
	CodigoPostal  string `json:"codigo_postal,omitempty"`
}

type UpdateGuardian struct {
	FullName      *string `json:"nombre_completo,omitempty"`
	Email         *string `json:"email,omitempty"`
	Telefono      *string `json:"telefono,omitempty"`
	RFC           *string `json:"rfc,omitempty"`
	RegimenFiscal *string `json:"regimen_fiscal,omitempty"`
	UsoCFDI       *string `json:"uso_cfdi,omitempty"`
	CodigoPostal  *string `json:"codigo_postal,omitempty"`
	Active        *bool   `json:"activo,omitempty"`
}

// LinkData is the pivot written when linking a guardian to a student.
type LinkData struct {
	Relationship       Relationship `json:"parentesco" validate:"required,oneof=padre madre tutor abuelo otro"`
	ResponsablePagos   bool         `json:"responsable_pagos"`
	ContactoEmergencia bool         `json:"contacto_emergencia"`
}
