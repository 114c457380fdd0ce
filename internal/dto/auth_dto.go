package dto

import "time"

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	SiteCode string `json:"site_code" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AdminSignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	SiteName string `json:"site_name" binding:"required"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	PublicID string `json:"public_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	SiteID   uint   `json:"site_id"`
	IsAdmin  bool   `json:"is_admin"`
}

type AdminRequestResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	SiteName  string    `json:"site_name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type SiteResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}
