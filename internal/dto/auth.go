package dto

type RegisterRequestDTO struct {
	Email    string `json:"email" example:"reader@example.com"`
	Password string `json:"password" example:"password123"`
	Name     string `json:"name" example:"Ada Reader"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
	UserID  string `json:"userId" example:"0b4f3c4e-6a0e-4bde-9d55-6c4b1f1a7e10"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"reader@example.com"`
	Password string `json:"password" example:"password123"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
	UserID  string `json:"userId" example:"0b4f3c4e-6a0e-4bde-9d55-6c4b1f1a7e10"`
}

type GoogleLoginRequestDTO struct {
	IDToken string `json:"idToken"`
}
