package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, pricing curve, limits)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	Pricing     PricingConfig
	Reservation ReservationConfig
	Admin       AdminConfig
	RateLimit   RateLimitConfig
	Bot         BotConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host          string `envconfig:"DB_HOST" default:"localhost"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	User          string `envconfig:"DB_USER" required:"true"`
	Password      string `envconfig:"DB_PASSWORD" required:"true"`
	DBName        string `envconfig:"DB_NAME" required:"true"`
	SSLMode       string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone      string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns      int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	RunMigrations bool   `envconfig:"DB_RUN_MIGRATIONS" default:"false"`
	MigrationsDir string `envconfig:"DB_MIGRATIONS_DIR" default:"migrations"`
	AtlasBin      string `envconfig:"DB_ATLAS_BIN" default:"atlas"`
	TxMaxRetries  int    `envconfig:"DB_TX_MAX_RETRIES" default:"3"`

	// A random demo merchant key is logged when DB_SEED_DEMO_API_KEY is empty.
	SeedDemo       bool   `envconfig:"DB_SEED_DEMO" default:"false"`
	SeedDemoAPIKey string `envconfig:"DB_SEED_DEMO_API_KEY" default:""`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-API-Key,X-Restaurant-ID,X-Admin-Key,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Idempotent-Replay"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	File           string `envconfig:"LOG_FILE" default:""`
	FileMaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"100"`
	FileMaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"5"`
	FileMaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"14"`
}

// PricingConfig describes the linear discount curve applied before expiry.
type PricingConfig struct {
	Window          time.Duration `envconfig:"PRICING_WINDOW" default:"90m"`
	DiscountFloor   float64       `envconfig:"PRICING_DISCOUNT_FLOOR" default:"0.20"`
	DiscountCeiling float64       `envconfig:"PRICING_DISCOUNT_CEILING" default:"0.80"`
}

type ReservationConfig struct {
	// TTL caps a hold's lifetime; zero means the hold lives until the offer expires.
	TTL             time.Duration `envconfig:"RESERVATION_TTL" default:"0s"`
	CodeLength      int           `envconfig:"RESERVATION_CODE_LENGTH" default:"8"`
	CodeMaxAttempts int           `envconfig:"RESERVATION_CODE_MAX_ATTEMPTS" default:"5"`
	TicketSecret    string        `envconfig:"RESERVATION_TICKET_SECRET" required:"true"`
	TicketIssuer    string        `envconfig:"RESERVATION_TICKET_ISSUER" default:"foody"`
}

type AdminConfig struct {
	APIKey string `envconfig:"ADMIN_API_KEY" required:"true"`
}

type RateLimitConfig struct {
	ReservePerMinute int `envconfig:"RATE_LIMIT_RESERVE_PER_MINUTE" default:"60"`
	ReserveBurst     int `envconfig:"RATE_LIMIT_RESERVE_BURST" default:"10"`
}

type BotConfig struct {
	Token             string        `envconfig:"BOT_TOKEN" default:""`
	WebhookSecret     string        `envconfig:"BOT_WEBHOOK_SECRET" default:""`
	APIBaseURL        string        `envconfig:"BOT_API_BASE_URL" default:"https://api.telegram.org"`
	PublicURL         string        `envconfig:"BOT_PUBLIC_URL" default:""`
	BuyerWebAppURL    string        `envconfig:"BOT_BUYER_WEBAPP_URL" default:""`
	MerchantWebAppURL string        `envconfig:"BOT_MERCHANT_WEBAPP_URL" default:""`
	RequestTimeout    time.Duration `envconfig:"BOT_REQUEST_TIMEOUT" default:"5s"`
}

func (c *BotConfig) Enabled() bool {
	return c.Token != ""
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *PricingConfig) Validate() error {
	if c.Window <= 0 {
		return fmt.Errorf("pricing window must be positive, got %s", c.Window)
	}
	if c.DiscountFloor < 0 || c.DiscountFloor > 1 || c.DiscountCeiling < 0 || c.DiscountCeiling > 1 {
		return fmt.Errorf("pricing discounts must be within [0,1], got floor=%v ceiling=%v", c.DiscountFloor, c.DiscountCeiling)
	}
	if c.DiscountFloor > c.DiscountCeiling {
		return fmt.Errorf("pricing discount floor %v exceeds ceiling %v", c.DiscountFloor, c.DiscountCeiling)
	}
	return nil
}

func (c *ReservationConfig) Validate() error {
	if c.TTL < 0 {
		return fmt.Errorf("reservation TTL must not be negative, got %s", c.TTL)
	}
	if c.CodeLength < 8 || c.CodeLength > 16 {
		return fmt.Errorf("reservation code length must be within [8,16], got %d", c.CodeLength)
	}
	if c.CodeMaxAttempts < 1 {
		return fmt.Errorf("reservation code attempts must be at least 1, got %d", c.CodeMaxAttempts)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Pricing.Validate(); err != nil {
		return Config{}, err
	}
	if err := cfg.Reservation.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:          "localhost",
			Port:          "15433", // Test DB port
			User:          "test",
			Password:      "test",
			DBName:        "test_db",
			SSLMode:       "disable",
			TimeZone:      "UTC",
			MaxConns:      10,
			MigrationsDir: "migrations",
			AtlasBin:      "atlas",
			TxMaxRetries:  3,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Pricing: PricingConfig{
			Window:          90 * time.Minute,
			DiscountFloor:   0.20,
			DiscountCeiling: 0.80,
		},
		Reservation: ReservationConfig{
			CodeLength:      8,
			CodeMaxAttempts: 5,
			TicketSecret:    "test-ticket-secret",
			TicketIssuer:    "foody-test",
		},
		Admin: AdminConfig{
			APIKey: "test-admin-key",
		},
		RateLimit: RateLimitConfig{
			ReservePerMinute: 6000,
			ReserveBurst:     1000,
		},
	}
}
