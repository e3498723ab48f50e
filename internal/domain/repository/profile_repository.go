package repository

import "github.com/pylondev/invoicing-api/internal/domain/entity"

// ProfileRepository puerto para el perfil singleton del usuario.
// Siempre existe exactamente un registro; Get nunca devuelve nil.
type ProfileRepository interface {
	Get() (*entity.UserProfile, error)
	Save(profile *entity.UserProfile) error
}
