package model

// AdminSettings is the singleton payment configuration row
type AdminSettings struct {
	ID    int64   `json:"id"`
	UpiID *string `json:"upiId,omitempty"`
}

type UpdateSettingsRequest struct {
	UpiID *string `json:"upiId"`
}
