package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pylondev/invoicing-api/internal/application/dto"
	"github.com/pylondev/invoicing-api/internal/application/usecase"
	"github.com/pylondev/invoicing-api/internal/domain"
	"github.com/pylondev/invoicing-api/internal/infrastructure/memory"
)

func buildProfileUseCase(t *testing.T) *usecase.ProfileUseCase {
	t.Helper()
	return usecase.NewProfileUseCase(memory.NewProfileRepository(memory.DemoProfile()))
}

func TestUpdateProfile_SobreescribeNombreYHandle(t *testing.T) {
	uc := buildProfileUseCase(t)

	got, err := uc.UpdateProfile(dto.UpdateProfileRequest{Name: "Jane Dev", Handle: "@janedev"})
	require.NoError(t, err)
	assert.Equal(t, "Jane Dev", got.Name)
	assert.Equal(t, "@janedev", got.Handle)

	// El singleton se sobreescribió en sitio.
	fresh, err := uc.Get()
	require.NoError(t, err)
	assert.Equal(t, "Jane Dev", fresh.Name)
}

func TestUpdateProfile_CamposVaciosRechazados(t *testing.T) {
	uc := buildProfileUseCase(t)
	_, err := uc.UpdateProfile(dto.UpdateProfileRequest{Name: "", Handle: "@x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// UpdateBusinessInfo mezcla solo los campos presentes; el resto queda intacto.
func TestUpdateBusinessInfo_MergeParcial(t *testing.T) {
	uc := buildProfileUseCase(t)
	addr := "456 Harbor Blvd, Austin, TX"

	got, err := uc.UpdateBusinessInfo(dto.UpdateBusinessRequest{BusinessAddress: &addr})
	require.NoError(t, err)

	assert.Equal(t, addr, got.BusinessAddress)
	assert.Equal(t, "Pylon Dev", got.BusinessName, "el nombre del negocio no debe tocarse")
}

func TestSetProfileImage(t *testing.T) {
	uc := buildProfileUseCase(t)

	got, err := uc.SetProfileImage("file:///tmp/avatar.png")
	require.NoError(t, err)
	assert.Equal(t, "file:///tmp/avatar.png", got.ProfileImage)

	_, err = uc.SetProfileImage("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
