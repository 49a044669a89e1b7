package capsdk

// LoginRequest is the JSON body for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// UserInfoResponse is returned by GET /auth/me.
type UserInfoResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CreateUserRequest is the JSON body for POST /auth/register.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Capability is a single catalog entry. The catalog itself is a map keyed by
// capability name, so the name does not appear in the entry.
type Capability struct {
	Description       string   `json:"description"`
	PracticeArea      string   `json:"practice_area"`
	SkillLevels       []string `json:"skill_levels"`
	Certifications    []string `json:"certifications"`
	IndustryVerticals []string `json:"industry_verticals"`
	Capacity          int      `json:"capacity"`
	Consultants       []string `json:"consultants"`
}

// Catalog maps capability name to its entry.
type Catalog map[string]Capability

// MessageResponse is the confirmation shape returned by mutations.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON shape of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// HealthResponse is returned by the health probe endpoints.
type HealthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Version string `json:"version"`
}
