package staff

type CreateStaffRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"omitempty,min=5,max=30"`
	Position  string `json:"position" validate:"required,min=1,max=100"`
}

type UpdateStaffRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone" validate:"omitempty,min=5,max=30"`
	Position  *string `json:"position" validate:"omitempty,min=1,max=100"`
	Active    *bool   `json:"active"`
}

type ListQuery struct {
	ActiveOnly bool `form:"active_only"`
	Limit      int  `form:"limit"`
	Offset     int  `form:"offset"`
}
