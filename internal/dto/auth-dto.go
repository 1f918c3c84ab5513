package dto

// LoginDTO is the admin login payload.
type LoginDTO struct {
	Email    string `json:"email" validate:"required,custom_email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type TokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
