package memory

import (
	"sync"

	"github.com/pylondev/invoicing-api/internal/domain/entity"
	"github.com/pylondev/invoicing-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

// ProfileRepo almacena el perfil singleton del usuario.
type ProfileRepo struct {
	mu      sync.RWMutex
	profile *entity.UserProfile
}

// NewProfileRepository construye el repositorio con el perfil inicial.
// Si initial es nil se parte de un perfil vacío (nunca de nil).
func NewProfileRepository(initial *entity.UserProfile) *ProfileRepo {
	if initial == nil {
		initial = &entity.UserProfile{}
	}
	return &ProfileRepo{profile: initial.Clone()}
}

// Get devuelve el perfil actual.
func (r *ProfileRepo) Get() (*entity.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile.Clone(), nil
}

// Save sobreescribe el perfil en sitio.
func (r *ProfileRepo) Save(profile *entity.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = profile.Clone()
	return nil
}
