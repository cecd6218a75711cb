package crmapi

// User is the wire shape the backend returns for the authenticated account on
// sign-in and after profile or password-status updates.
type User struct {
	ID              int64  `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Telephone       string `json:"telephone,omitempty"`
	Position        string `json:"position,omitempty"`
	Role            string `json:"role"`
	TimeZone        string `json:"timeZone,omitempty"`
	Avatar          string `json:"avatar,omitempty"`
	PasswordChanged bool   `json:"passwordChanged"`
}

// SignInRequest is the credentials payload for POST /api/auth/signin.
type SignInRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// UserUpdateRequest carries the editable profile fields for
// PUT /api/user/update/{id}. Empty fields are omitted so the backend only
// touches what the form submitted.
type UserUpdateRequest struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Telephone string `json:"telephone,omitempty"`
	Position  string `json:"position,omitempty"`
	TimeZone  string `json:"timeZone,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
}

// PasswordStatusRequest flips the passwordChanged flag on the account via
// PUT /api/user/passwordstatus/{id}.
type PasswordStatusRequest struct {
	PasswordChanged bool `json:"passwordChanged"`
}

type errorBody struct {
	Message string `json:"message"`
}
