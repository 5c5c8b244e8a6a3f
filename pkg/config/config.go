package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	HTTP       HTTPConfig
	Upload     UploadConfig
	Simulation SimulationConfig
	Realtime   RealtimeConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env            string // development, staging, production
	Name           string
	LogLevel       string
	SeedSampleData bool // carga los 25 productos de ejemplo al iniciar
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string // lista separada por comas
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UploadConfig configuración de la carga de archivos de ventas.
type UploadConfig struct {
	Dir   string // directorio temporal; los archivos se eliminan tras procesarse
	MaxMB int
}

// MaxBytes devuelve el límite de tamaño del cuerpo en bytes.
func (c UploadConfig) MaxBytes() int {
	return c.MaxMB * 1024 * 1024
}

// SimulationConfig configuración del bucle de simulación de inventario.
type SimulationConfig struct {
	Enabled  bool
	Schedule string // expresión cron, p. ej. "@every 30s"
	TimeZone string
}

// RealtimeConfig configuración del canal en tiempo real.
type RealtimeConfig struct {
	Buffer int // mensajes pendientes por suscriptor antes de descartar
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, SIMULATION_SCHEDULE, etc.
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
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:            getString(v, "APP_ENV", "development"),
			Name:           getString(v, "APP_NAME", "retail-dashboard-api"),
			LogLevel:       getString(v, "LOG_LEVEL", "info"),
			SeedSampleData: getBool(v, "SEED_SAMPLE_DATA", true),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 5000),
			CORSOrigins: getString(v, "CORS_ORIGINS", "http://localhost:3000"),
		},
		Upload: UploadConfig{
			Dir:   getString(v, "UPLOAD_DIR", "./uploads"),
			MaxMB: getInt(v, "UPLOAD_MAX_MB", 10),
		},
		Simulation: SimulationConfig{
			Enabled:  getBool(v, "SIMULATION_ENABLED", true),
			Schedule: getString(v, "SIMULATION_SCHEDULE", "@every 30s"),
			TimeZone: getString(v, "SIMULATION_TIMEZONE", "UTC"),
		},
		Realtime: RealtimeConfig{
			Buffer: getInt(v, "WS_BUFFER", 16),
		},
	}

	if cfg.Upload.MaxMB <= 0 {
		return nil, fmt.Errorf("config: UPLOAD_MAX_MB debe ser positivo (valor %d)", cfg.Upload.MaxMB)
	}
	if cfg.Realtime.Buffer <= 0 {
		cfg.Realtime.Buffer = 1
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
