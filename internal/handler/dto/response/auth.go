package response

import (
	"webshopper/internal/usecase/queries"

	"github.com/google/uuid"
)

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type LoginResponse struct {
	User *queries.UserView `json:"user"`
}

type ConnectResponse struct {
	AuthURL string `json:"auth_url"`
}
