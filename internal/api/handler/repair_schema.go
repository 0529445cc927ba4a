package handler

type createRepairRequest struct {
	CustomerName  string   `json:"customer_name"  validate:"required,min=2,max=120"`
	CustomerEmail string   `json:"customer_email" validate:"required,email"`
	CustomerPhone string   `json:"customer_phone" validate:"omitempty,max=32"`
	DeviceBrand   string   `json:"device_brand"   validate:"required,max=120"`
	DeviceModel   string   `json:"device_model"   validate:"required,max=120"`
	Problem       string   `json:"problem"        validate:"required,max=2000"`
	Images        []string `json:"images"         validate:"omitempty,dive,max=255"`
}

type updateRepairRequest struct {
	Status     string `json:"status"      validate:"required,oneof=pending reviewing quoted repaired rejected"`
	QuoteCents *int64 `json:"quote_cents" validate:"omitempty,gt=0"`
}
