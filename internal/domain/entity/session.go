package entity

// Roles a verified actor can hold. The two dashboards are role-exclusive.
const (
	RoleVendor   = "vendor"
	RoleSupplier = "supplier"
)

// BusinessTypes is the closed set a vendor can declare as their trade.
var BusinessTypes = []string{"chaat", "dosa", "parathas", "tea", "juice", "other"}

// ValidRole reports whether r is one of the two dashboard roles.
func ValidRole(r string) bool {
	return r == RoleVendor || r == RoleSupplier
}

// ValidBusinessType reports whether b belongs to the closed set.
func ValidBusinessType(b string) bool {
	for _, v := range BusinessTypes {
		if v == b {
			return true
		}
	}
	return false
}

// Session is the single active actor. It is either fully authenticated
// (all three fields set consistently) or unauthenticated; the session gate
// treats any partial state as unauthenticated.
type Session struct {
	Role          string `json:"role"`  // "vendor" | "supplier"
	Phone         string `json:"phone"` // 10 ASCII digits
	Authenticated bool   `json:"authenticated"`

	// BusinessType is the vendor's declared trade tag. Empty until the
	// vendor completes business setup; persisted across restarts.
	BusinessType string `json:"businessType,omitempty"`
}

// Valid reports whether the session is fully authenticated for the given
// role. An empty role matches any authenticated session.
func (s *Session) Valid(role string) bool {
	if s == nil || !s.Authenticated || s.Phone == "" || !ValidRole(s.Role) {
		return false
	}
	return role == "" || s.Role == role
}
