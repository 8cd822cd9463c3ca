package dto

import "github.com/TravelTales/blog-service/internal/model"

type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}
