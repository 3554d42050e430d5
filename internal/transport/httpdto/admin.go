package httpdto

// AdminLoginRequest is used for POST /auth/login
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLoginResponse carries the minted token pair
type AdminLoginResponse struct {
	Success bool         `json:"success"`
	Access  string       `json:"access"`
	Refresh string       `json:"refresh"`
	User    AdminUserDTO `json:"user"`
}

type AdminUserDTO struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	IsSuperuser bool   `json:"is_superuser"`
	Email       string `json:"email"`
}

// AdminRefreshRequest is used for POST /auth/refresh
type AdminRefreshRequest struct {
	Refresh string `json:"refresh"`
}

// AdminRefreshResponse carries the freshly derived access token
type AdminRefreshResponse struct {
	Success bool   `json:"success"`
	Access  string `json:"access"`
}
