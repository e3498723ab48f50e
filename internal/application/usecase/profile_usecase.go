// Package usecase contiene los casos de uso que no pertenecen a facturación:
// perfil del usuario e insights.
package usecase

import (
	"fmt"
	"time"

	"github.com/pylondev/invoicing-api/internal/application/dto"
	"github.com/pylondev/invoicing-api/internal/domain"
	"github.com/pylondev/invoicing-api/internal/domain/entity"
	"github.com/pylondev/invoicing-api/internal/domain/repository"
)

// ProfileUseCase gestiona el perfil singleton del usuario y su negocio.
type ProfileUseCase struct {
	repo repository.ProfileRepository
}

// NewProfileUseCase construye el caso de uso.
func NewProfileUseCase(repo repository.ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{repo: repo}
}

// Get devuelve el perfil actual.
func (uc *ProfileUseCase) Get() (*dto.ProfileResponse, error) {
	p, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// UpdateProfile actualiza nombre y handle. Ambos son requeridos.
func (uc *ProfileUseCase) UpdateProfile(in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if in.Name == "" || in.Handle == "" {
		return nil, fmt.Errorf("%w: name y handle son requeridos", domain.ErrInvalidInput)
	}
	p, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Handle = in.Handle
	p.UpdatedAt = time.Now()
	if err := uc.repo.Save(p); err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// UpdateBusinessInfo mezcla los campos del negocio presentes en la petición.
func (uc *ProfileUseCase) UpdateBusinessInfo(in dto.UpdateBusinessRequest) (*dto.ProfileResponse, error) {
	p, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if in.BusinessName != nil {
		if *in.BusinessName == "" {
			return nil, fmt.Errorf("%w: business_name no puede quedar vacío", domain.ErrInvalidInput)
		}
		p.BusinessName = *in.BusinessName
	}
	if in.BusinessAddress != nil {
		p.BusinessAddress = *in.BusinessAddress
	}
	if in.BusinessLogo != nil {
		p.BusinessLogo = *in.BusinessLogo
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Save(p); err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

// SetProfileImage reemplaza la referencia a la imagen de perfil.
func (uc *ProfileUseCase) SetProfileImage(uri string) (*dto.ProfileResponse, error) {
	if uri == "" {
		return nil, fmt.Errorf("%w: profile_image es requerido", domain.ErrInvalidInput)
	}
	p, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	p.ProfileImage = uri
	p.UpdatedAt = time.Now()
	if err := uc.repo.Save(p); err != nil {
		return nil, err
	}
	return toProfileResponse(p), nil
}

func toProfileResponse(p *entity.UserProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		Name:            p.Name,
		Handle:          p.Handle,
		ProfileImage:    p.ProfileImage,
		BusinessName:    p.BusinessName,
		BusinessAddress: p.BusinessAddress,
		BusinessLogo:    p.BusinessLogo,
	}
}
