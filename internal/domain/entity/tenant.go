package entity

import "time"

// Tenant representa un inquilino registrado por la empresa administradora.
type Tenant struct {
	ID               string
	CompanyID        string
	FirstName        string
	LastName         string
	Email            string // vacío si no fue registrado
	Phone            string // vacío si no fue registrado
	CurrentAddress   string
	EmploymentStatus string
	CreatedAt        time.Time
}

// FullName devuelve "nombre apellido".
func (t *Tenant) FullName() string {
	return t.FirstName + " " + t.LastName
}

// TenantRef es la relación embebida de un inquilino dentro de un contrato o solicitud.
// El servicio remoto la entrega como objeto anidado (puede venir ausente).
type TenantRef struct {
	FirstName string
	LastName  string
	Email     string
}

// FullName devuelve "nombre apellido" del inquilino relacionado.
func (r *TenantRef) FullName() string {
	return r.FirstName + " " + r.LastName
}
