package dto

// UpdateSettingRequest writes one configuration key.
type UpdateSettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// SettingsResponse returns the owner's resolved settings map.
type SettingsResponse struct {
	Settings map[string]string `json:"settings"`
}
