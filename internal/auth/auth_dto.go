package auth

import "github.com/FurowKick/phone-directory/internal/domain"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	Role  domain.Role `json:"role"`
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`

	MiddleName    string `json:"middleName"`
	Position      string `json:"position"`
	Department    string `json:"department"`
	Building      string `json:"building"`
	OfficeNumber  string `json:"officeNumber"`
	InternalPhone string `json:"internalPhone"`
	CityPhone     string `json:"cityPhone"`
	MobilePhone   string `json:"mobilePhone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}
