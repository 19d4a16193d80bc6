package models

type Session struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
