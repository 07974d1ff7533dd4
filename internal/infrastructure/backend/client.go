// Package backend implementa los puertos de dominio sobre la API REST del
// backend de la cadena. Usa net/http de la librería estándar; no requiere un
// cliente HTTP de terceros.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/panel-inventario/internal/domain"
	"github.com/invorya/panel-inventario/pkg/logger"
)

// TokenSource provee la credencial vigente para las llamadas salientes.
// ok=false significa estado Anónimo: la llamada sale sin Authorization.
type TokenSource interface {
	Token() (token string, ok bool)
}

// Client cliente REST del backend. Centraliza base URL, content type, el
// Bearer token y el manejo de 401: cualquier 401 dispara onUnauthorized
// (inyectado, típicamente limpia la sesión y el snapshot del dashboard) y
// devuelve domain.ErrSessionExpired. No hay reintentos; el único timeout es
// el del transporte.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	onUnauthorized func()
	log            *logger.Logger
}

// NewClient construye el cliente. baseURL sin slash final, ej.
// "http://localhost:8080/api". onUnauthorized puede ser nil.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, onUnauthorized func(), log *logger.Logger) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{Timeout: timeout},
		tokens:         tokens,
		onUnauthorized: onUnauthorized,
		log:            log,
	}
}

// apiError cuerpo de error del backend: {error} en 4xx de login,
// {code,message} en el resto.
type apiError struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e apiError) text() string {
	switch {
	case e.Error != "":
		return e.Error
	case e.Message != "":
		return e.Message
	default:
		return ""
	}
}

// getJSON GET autenticado que decodifica la respuesta en out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out, true)
}

// postJSON POST que decodifica la respuesta en out. authenticated=false para
// el canal de login: ahí un 401 es un rechazo de credenciales, no una sesión
// expirada, y no debe invalidar la sesión vigente.
func (c *Client) postJSON(ctx context.Context, path string, body, out any, authenticated bool) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out, authenticated)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any, authenticated bool) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: serializar request %s: %w", path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("backend: crear request %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if authenticated {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("backend: %s %s cancelado: %w", method, path, ctx.Err())
		}
		return fmt.Errorf("backend: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("backend: leer respuesta de %s: %w", path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && authenticated {
		// Política fail-hard: ante cualquier 401 la sesión completa se
		// descarta; estado autenticado parcial nunca se tolera.
		c.log.Warn().Str("path", path).Msg("401 del backend, invalidando sesión")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("backend: %s: %w", path, domain.ErrSessionExpired)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		_ = json.Unmarshal(rawBody, &apiErr)
		if !authenticated && resp.StatusCode >= 400 && resp.StatusCode < 500 {
			// Canal de login: credenciales rechazadas o request inválido;
			// el mensaje del backend se muestra tal cual en la vista.
			return &domain.AuthError{Message: apiErr.text()}
		}
		if msg := apiErr.text(); msg != "" {
			return fmt.Errorf("backend: %s HTTP %d: %s", path, resp.StatusCode, msg)
		}
		return fmt.Errorf("backend: %s HTTP %d", path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("backend: deserializar respuesta de %s: %w", path, err)
	}
	return nil
}
