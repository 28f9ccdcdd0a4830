package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	POSAPI POSAPIConfig
	JWT    JWTConfig
	View   ViewConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// POSAPIConfig configuración del backend POS que este servicio consume.
type POSAPIConfig struct {
	BaseURL string // ej. http://pos-backend:8000
	Token   string // Bearer token de servicio (vacío = sin header Authorization)
	Timeout time.Duration
}

// JWTConfig configuración para validar los tokens emitidos por el backend POS.
// Este servicio no emite tokens; solo comparte el secreto HS256 para validarlos.
type JWTConfig struct {
	Secret string
	Issuer string
}

// ViewConfig parámetros de presentación de las vistas.
type ViewConfig struct {
	Locale  string // etiqueta BCP 47 para el formato de montos (ej. "ru", "es")
	BackURL string // destino de la acción "volver" de la vista de factura
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, POSAPI_BASE_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "pos-views"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8081),
		},
		POSAPI: POSAPIConfig{
			BaseURL: getString(v, "POSAPI_BASE_URL", "http://localhost:8000"),
			Token:   getString(v, "POSAPI_TOKEN", ""),
			Timeout: time.Duration(getInt(v, "POSAPI_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
			Issuer: getString(v, "JWT_ISSUER", "kassa-pos"),
		},
		View: ViewConfig{
			Locale:  getString(v, "VIEW_LOCALE", "ru"),
			BackURL: getString(v, "VIEW_BACK_URL", "/sales"),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
