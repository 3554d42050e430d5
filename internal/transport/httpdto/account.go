package httpdto

// RegisterRequest is used for POST /register. The mobile app sends camelCase
// keys and the web form sends snake_case; both are accepted, with snake_case
// taking precedence when a field arrives under both names.
type RegisterRequest struct {
	FirstName            string `json:"firstName"`
	FirstNameSnake       string `json:"first_name"`
	LastName             string `json:"lastName"`
	LastNameSnake        string `json:"last_name"`
	Address              string `json:"address"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	ConfirmPassword      string `json:"confirmPassword"`
	ConfirmPasswordSnake string `json:"confirm_password"`
}

// NormalizedRegister is the single internal shape validation runs against.
type NormalizedRegister struct {
	FirstName       string
	LastName        string
	Address         string
	Email           string
	Password        string
	ConfirmPassword string
}

// Normalize resolves the duplicate key names. An absent confirmation
// defaults to the password itself so the match check passes vacuously.
func (r RegisterRequest) Normalize() NormalizedRegister {
	confirm := pick(r.ConfirmPasswordSnake, r.ConfirmPassword)
	if confirm == "" {
		confirm = r.Password
	}
	return NormalizedRegister{
		FirstName:       pick(r.FirstNameSnake, r.FirstName),
		LastName:        pick(r.LastNameSnake, r.LastName),
		Address:         r.Address,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: confirm,
	}
}

func pick(primary, fallback string) string {
	if primary != "" {
		return primary
	}
	return fallback
}

// RegisterResponse is returned after successful registration
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Note    string `json:"note"`
}

// LoginRequest is used for POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	User    UserDTO `json:"user"`
}

// UserDTO mirrors the identity fields the mobile app renders
type UserDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	FullName  string `json:"full_name"`
}

// LogoutResponse is returned after successful logout
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
