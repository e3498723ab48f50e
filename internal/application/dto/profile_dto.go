package dto

// ProfileResponse perfil singleton del usuario.
type ProfileResponse struct {
	Name            string `json:"name"`
	Handle          string `json:"handle"`
	ProfileImage    string `json:"profile_image,omitempty"`
	BusinessName    string `json:"business_name,omitempty"`
	BusinessAddress string `json:"business_address,omitempty"`
	BusinessLogo    string `json:"business_logo,omitempty"`
}

// UpdateProfileRequest body para PUT /api/profile.
type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Handle string `json:"handle"`
}

// UpdateBusinessRequest body para PUT /api/profile/business. Campos nil no se tocan.
type UpdateBusinessRequest struct {
	BusinessName    *string `json:"business_name,omitempty"`
	BusinessAddress *string `json:"business_address,omitempty"`
	BusinessLogo    *string `json:"business_logo,omitempty"`
}

// UpdateProfileImageRequest body para PUT /api/profile/image.
type UpdateProfileImageRequest struct {
	ProfileImage string `json:"profile_image"`
}
