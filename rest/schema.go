package rest

// Request payloads for the publishing surface. Validation tags are enforced
// by the echo validator before any usecase runs.

type CreateSectionRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}

type CreateArticleRequest struct {
	Title     string   `json:"title" validate:"required,min=1,max=500"`
	Content   string   `json:"content" validate:"required,min=1"`
	Author    string   `json:"author" validate:"required,min=1,max=200"`
	SectionID string   `json:"section_id" validate:"required"`
	ImageData *string  `json:"image_data"`
	ImageName *string  `json:"image_name"`
	Tags      []string `json:"tags"`
}

type UpdateArticleRequest struct {
	Title     *string  `json:"title" validate:"omitempty,min=1,max=500"`
	Content   *string  `json:"content" validate:"omitempty,min=1"`
	Author    *string  `json:"author" validate:"omitempty,min=1,max=200"`
	SectionID *string  `json:"section_id"`
	ImageData *string  `json:"image_data"`
	ImageName *string  `json:"image_name"`
	Tags      []string `json:"tags"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=5000"`
}

type UpdateLogoRequest struct {
	LogoData *string `json:"logo_data"`
	LogoName *string `json:"logo_name" validate:"omitempty,max=500"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
