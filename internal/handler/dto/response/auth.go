package response

type LoginResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

type MeResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
