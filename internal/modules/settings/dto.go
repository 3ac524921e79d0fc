package settings

type CreateSettingRequest struct {
	Key      string `json:"key" binding:"required,min=1,max=100"`
	Value    string `json:"value" binding:"required"`
	Category string `json:"category"`
	IsPublic bool   `json:"is_public"`
}

type UpdateSettingRequest struct {
	Value    *string `json:"value"`
	Category *string `json:"category"`
	IsPublic *bool   `json:"is_public"`
}
