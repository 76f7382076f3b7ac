package models

// Credentials is the body of POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the body the backend answers a successful login with.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Registration is the body of POST /auth/register.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// ConfirmPassword is checked on the client and never sent.
	ConfirmPassword string `json:"-"`
}

// RegisterResponse carries the human readable outcome of a registration.
type RegisterResponse struct {
	Message string `json:"message"`
}
