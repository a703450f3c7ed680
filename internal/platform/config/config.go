package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Store
	StoreDriver    string
	SQLitePath     string
	DatabaseURL    string
	MigrationsPath string
	DBDebug        bool

	// Operator auth
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string
	Operators         map[string]string // operator ID -> bcrypt PIN hash
	LoginRateLimit    string

	CORSAllowedOrigins  []string
	CartSessionCapacity int

	// Shop settings
	ShopName          string
	ShopAddress       string
	ShopPhone         string
	ShopTaxID         string
	ShopTaxRate       string // Raw, parsed at checkout
	DefaultTaxRate    string
	PaymentMethods    []string
	CurrencyPrecision int32
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORE_DRIVER", StoreDriverSQLite)
	viper.SetDefault("SQLITE_PATH", "kasse.db")
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("DB_DEBUG", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", "pos-ledger-app")
	viper.SetDefault("OPERATORS", "")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CART_SESSION_CAPACITY", 64)
	viper.SetDefault("SHOP_NAME", "")
	viper.SetDefault("SHOP_ADDRESS", "")
	viper.SetDefault("SHOP_PHONE", "")
	viper.SetDefault("SHOP_TAX_ID", "")
	viper.SetDefault("SHOP_TAX_RATE", "19")
	viper.SetDefault("DEFAULT_TAX_RATE", "19")
	viper.SetDefault("SHOP_PAYMENT_METHODS", "CASH,CARD")
	viper.SetDefault("CURRENCY_PRECISION", 2)

	viper.AutomaticEnv()

	cfg := &Config{
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		StoreDriver:    strings.ToLower(strings.TrimSpace(viper.GetString("STORE_DRIVER"))),
		SQLitePath:     viper.GetString("SQLITE_PATH"),
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
		DBDebug:        viper.GetBool("DB_DEBUG"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		JWTIssuer:      viper.GetString("JWT_ISSUER"),
		LoginRateLimit: viper.GetString("LOGIN_RATE_LIMIT"),
		ShopName:       viper.GetString("SHOP_NAME"),
		ShopAddress:    viper.GetString("SHOP_ADDRESS"),
		ShopPhone:      viper.GetString("SHOP_PHONE"),
		ShopTaxID:      viper.GetString("SHOP_TAX_ID"),
		ShopTaxRate:    viper.GetString("SHOP_TAX_RATE"),
		DefaultTaxRate: viper.GetString("DEFAULT_TAX_RATE"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreDriver {
	case StoreDriverSQLite:
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("SQLITE_PATH must be set when STORE_DRIVER is %s", StoreDriverSQLite)
		}
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORE_DRIVER is %s", StoreDriverPostgres)
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random" // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// Load JWT Expiry Duration (e.g., "60m", "12h")
	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "pos-ledger-app"
	}

	cfg.Operators, err = ParseOperators(viper.GetString("OPERATORS"))
	if err != nil {
		return nil, err
	}
	if len(cfg.Operators) == 0 {
		log.Println("Warning: OPERATORS not set. Nobody will be able to log in.")
	}

	cfg.CORSAllowedOrigins = SplitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	cfg.CartSessionCapacity = viper.GetInt("CART_SESSION_CAPACITY")
	if cfg.CartSessionCapacity <= 0 {
		cfg.CartSessionCapacity = 64
		log.Printf("Warning: Invalid CART_SESSION_CAPACITY. Defaulting to %d.\n", cfg.CartSessionCapacity)
	}

	cfg.PaymentMethods = SplitList(strings.ToUpper(viper.GetString("SHOP_PAYMENT_METHODS")))

	precision := viper.GetInt("CURRENCY_PRECISION")
	if precision < 0 || precision > 8 {
		log.Printf("Warning: Invalid CURRENCY_PRECISION (%d). Defaulting to 2.\n", precision)
		precision = 2
	}
	cfg.CurrencyPrecision = int32(precision)

	return cfg, nil
}

// ParseOperators reads a comma separated list of "operatorID:bcryptHash" pairs.
func ParseOperators(raw string) (map[string]string, error) {
	operators := make(map[string]string)
	for _, pair := range SplitList(raw) {
		id, hash, ok := strings.Cut(pair, ":")
		id, hash = strings.TrimSpace(id), strings.TrimSpace(hash)
		if !ok || id == "" || hash == "" {
			return nil, fmt.Errorf("invalid OPERATORS entry %q, expected id:hash", pair)
		}
		if _, dup := operators[id]; dup {
			return nil, fmt.Errorf("operator %q configured twice", id)
		}
		operators[id] = hash
	}
	return operators, nil
}

// SplitList splits a comma separated value, dropping blanks.
func SplitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
