package backend

import (
	"context"
	"fmt"

	"github.com/invorya/panel-inventario/internal/domain/entity"
	"github.com/invorya/panel-inventario/internal/domain/repository"
)

var _ repository.AuthGateway = (*AuthGateway)(nil)

// AuthGateway login contra el backend. Va por el canal sin autenticar: un 401
// aquí es un rechazo de credenciales (*domain.AuthError), no una sesión
// expirada, y no toca la sesión vigente.
type AuthGateway struct {
	client *Client
}

func NewAuthGateway(client *Client) *AuthGateway {
	return &AuthGateway{client: client}
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (g *AuthGateway) Login(ctx context.Context, username, password string) (*entity.Session, error) {
	body := map[string]string{"username": username, "password": password}
	var resp loginResponse
	if err := g.client.postJSON(ctx, "/auth/login", body, &resp, false); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("backend: login sin token en la respuesta")
	}
	return &entity.Session{Token: resp.Token, Username: resp.Username}, nil
}
