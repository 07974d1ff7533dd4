package auth

import (
	"context"

	"github.com/invorya/panel-inventario/internal/application/dto"
	"github.com/invorya/panel-inventario/internal/domain"
	"github.com/invorya/panel-inventario/internal/domain/repository"
	"github.com/invorya/panel-inventario/pkg/logger"
)

// UseCase casos de uso de autenticación del operador: login, logout y
// restauración optimista al arranque. La verificación de credenciales es del
// backend; aquí solo se orquesta la sesión.
type UseCase struct {
	gateway repository.AuthGateway
	session *Session
	log     *logger.Logger
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(gateway repository.AuthGateway, session *Session, log *logger.Logger) *UseCase {
	return &UseCase{gateway: gateway, session: session, log: log}
}

// Login valida la entrada, delega en el backend y establece la sesión.
// Un rechazo llega como *domain.AuthError con el mensaje del backend.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.SessionResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	sess, err := uc.gateway.Login(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	if err := uc.session.Establish(ctx, *sess); err != nil {
		return nil, err
	}

	uc.log.Info().Str("username", sess.Username).Msg("sesión establecida")
	return &dto.SessionResponse{Authenticated: true, Username: sess.Username}, nil
}

// Logout limpia la sesión (memoria y almacén durable).
func (uc *UseCase) Logout(ctx context.Context) error {
	username := uc.session.Username()
	if err := uc.session.Clear(ctx); err != nil {
		return err
	}
	if username != "" {
		uc.log.Info().Str("username", username).Msg("sesión cerrada")
	}
	return nil
}

// Restore arranque optimista: si hay sesión persistida pasa a Autenticado sin
// revalidar; un token revocado se descubre con el primer 401.
func (uc *UseCase) Restore(ctx context.Context) (bool, error) {
	ok, err := uc.session.Restore(ctx)
	if err != nil {
		return false, err
	}
	if ok {
		uc.log.Info().Str("username", uc.session.Username()).Msg("sesión restaurada del almacén")
	}
	return ok, nil
}

// Current estado actual de la sesión.
func (uc *UseCase) Current() dto.SessionResponse {
	return dto.SessionResponse{
		Authenticated: uc.session.Authenticated(),
		Username:      uc.session.Username(),
	}
}
