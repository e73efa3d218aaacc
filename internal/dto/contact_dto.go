package dto

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required,min=10"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
