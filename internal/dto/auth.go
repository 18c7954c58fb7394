package dto

type RegisterRequestDTO struct {
	Address  string `json:"address" validate:"required,max=128"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Address  string `json:"address" validate:"required,max=128"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}
