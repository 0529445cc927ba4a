package handler

type categoryRequest struct {
	Name        string `json:"name"        validate:"required,min=2,max=120"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

type articleRequest struct {
	CategoryID  string `json:"category_id" validate:"required"`
	Title       string `json:"title"       validate:"required,min=2,max=191"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	PriceCents  int64  `json:"price_cents" validate:"required,gt=0"`
	ImagePath   string `json:"image_path"  validate:"omitempty,max=255"`
}
