package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Upstream UpstreamConfig
	Session  SessionConfig
	Charts   ChartsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP del panel.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UpstreamConfig configuración del backend REST de la cadena (dueño de los datos).
type UpstreamConfig struct {
	BaseURL        string // ej. http://localhost:8080/api
	TimeoutSeconds int    // timeout de red del cliente; no hay reintentos
}

// SessionConfig almacén durable de la sesión del operador.
// DBPath admite ":memory:" (útil en tests; la sesión no sobrevive al proceso).
type SessionConfig struct {
	DBPath string
}

// ChartsConfig parámetros del panel de gráficas.
type ChartsConfig struct {
	TopLimit int // cuántas partes en el top de ventas
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, UPSTREAM_BASE_URL, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "panel-inventario"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Upstream: UpstreamConfig{
			BaseURL:        getString(v, "UPSTREAM_BASE_URL", "http://localhost:8080/api"),
			TimeoutSeconds: getInt(v, "UPSTREAM_TIMEOUT_SECONDS", 25),
		},
		Session: SessionConfig{
			DBPath: getString(v, "SESSION_DB_PATH", "panel_session.sqlite3"),
		},
		Charts: ChartsConfig{
			TopLimit: getInt(v, "CHART_TOP_LIMIT", 10),
		},
	}

	if cfg.Upstream.BaseURL == "" {
		return nil, fmt.Errorf("config: UPSTREAM_BASE_URL no puede estar vacío")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			// Un valor no numérico (ej. HTTP_PORT=abc) cae al default en
			// lugar de convertirse en cero.
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
