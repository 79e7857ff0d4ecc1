package delivery

import (
	"github.com/SlavaShagalov/rentx/internal/auth/usecase"
)

type SignInDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type SessionUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SessionResponse struct {
	User         SessionUser `json:"user"`
	Token        string      `json:"token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    int         `json:"expires_in"`
	RefreshToken string      `json:"refresh_token"`
}

func NewSessionResponse(result usecase.AuthResult) SessionResponse {
	return SessionResponse{
		User: SessionUser{
			Name:  result.User.Name,
			Email: result.User.Email,
		},
		Token:        result.AccessToken,
		TokenType:    "Bearer",
		ExpiresIn:    int(result.ExpiresIn.Seconds()),
		RefreshToken: result.RefreshToken,
	}
}
