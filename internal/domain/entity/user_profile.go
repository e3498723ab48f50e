package entity

import "time"

// UserProfile registro singleton con los datos del usuario y su negocio.
// Existe exactamente una instancia por proceso; se sobreescribe en sitio.
type UserProfile struct {
	Name            string
	Handle          string // @usuario
	ProfileImage    string // URL o referencia local
	BusinessName    string
	BusinessAddress string
	BusinessLogo    string // Vacío si no se ha cargado logo
	UpdatedAt       time.Time
}

// Clone copia el perfil para aislar el estado interno del repositorio.
func (p *UserProfile) Clone() *UserProfile {
	cp := *p
	return &cp
}
