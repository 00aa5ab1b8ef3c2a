package dto

// SetProfileRequest the vendor's business setup choice.
type SetProfileRequest struct {
	BusinessType string `json:"businessType" validate:"required"`
}

// ProfileResponse the stored business profile.
type ProfileResponse struct {
	BusinessType string `json:"businessType"`
}

// ContactLinkResponse the external messaging handoff. The client opens URL
// in a new context; no response is awaited.
type ContactLinkResponse struct {
	URL      string `json:"url"`
	Message  string `json:"message"`
	Supplier string `json:"supplier,omitempty"`
}
