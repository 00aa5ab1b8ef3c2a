package dto

// SendCodeRequest starts the mock verification flow. Role is chosen up
// front, like the login screen's vendor/supplier toggle.
type SendCodeRequest struct {
	Phone string `json:"phone" validate:"required"`
	Role  string `json:"role" validate:"required,oneof=vendor supplier"`
}

// SendCodeResponse echoes the generated code. A real gateway would SMS it;
// the demo shows it to the caller instead.
type SendCodeResponse struct {
	Phone    string `json:"phone"`
	DemoCode string `json:"demoCode"`
	Message  string `json:"message"`
}

// VerifyCodeRequest submits the code the actor received.
type VerifyCodeRequest struct {
	Code string `json:"code" validate:"required,len=6"`
}

// SessionResponse the authenticated session as seen by the client.
type SessionResponse struct {
	Role          string `json:"role"`
	Phone         string `json:"phone"`
	Authenticated bool   `json:"authenticated"`
	BusinessType  string `json:"businessType,omitempty"`
}

// VerifyCodeResponse successful login: token plus the emitted session.
type VerifyCodeResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}
