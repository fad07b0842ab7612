package dto

// UpdateSettingsRequest carries the global moderation flags
type UpdateSettingsRequest struct {
	RegistrationEnabled *bool `json:"registrationEnabled" binding:"required"`
	AutoApprovalEnabled *bool `json:"autoApprovalEnabled" binding:"required"`
}
