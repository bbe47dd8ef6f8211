package config

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

func GetBool(config map[string]string, key string, defaultValue bool) bool {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asBool, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return defaultValue
	}

	return asBool
}

// DBRole is one set of Postgres login credentials.
type DBRole struct {
	User     string
	Password string
}

// Settings is the typed view of the environment used by main.
type Settings struct {
	DBType string
	DBHost string
	DBPort string
	DBName string

	// Elevated is the service role used by the dashboard and the /api facade.
	Elevated DBRole
	// Restricted serves public pages. Empty means reads fall back to Elevated.
	Restricted DBRole

	AdminUsername string
	AdminPassword string
	SessionSecret string
	CSRFKey       []byte
	CookieSecure  bool

	GoogleMapsKey      string
	ResendAPIKey       string
	ResendFromEmail    string
	ContactNotifyEmail string

	AcceptedOrigins []string

	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	AutoMigrate          bool
	GenerateModels       bool
	GenerateColumnReport bool
}

// Load reads Settings from the process environment.
func Load() (*Settings, error) {
	return FromMap(New())
}

// FromMap builds Settings from an env map and reports every missing required key.
func FromMap(env map[string]string) (*Settings, error) {
	s := &Settings{
		DBType: GetString(env, "DB_TYPE", ""),
		DBHost: GetString(env, "SUPABASE_DB_HOST", ""),
		DBPort: GetString(env, "SUPABASE_DB_PORT", "5432"),
		DBName: GetString(env, "SUPABASE_DB_NAME", "postgres"),
		Elevated: DBRole{
			User:     GetString(env, "SUPABASE_DB_USER", ""),
			Password: GetString(env, "SUPABASE_DB_PASSWORD", ""),
		},
		Restricted: DBRole{
			User:     GetString(env, "SUPABASE_DB_ANON_USER", ""),
			Password: GetString(env, "SUPABASE_DB_ANON_PASSWORD", ""),
		},
		AdminUsername:        GetString(env, "ADMIN_USERNAME", ""),
		AdminPassword:        GetString(env, "ADMIN_PASSWORD", ""),
		SessionSecret:        GetString(env, "SESSION_SECRET", ""),
		CookieSecure:         GetBool(env, "COOKIE_SECURE", false),
		GoogleMapsKey:        GetString(env, "GOOGLE_MAPS_KEY", ""),
		ResendAPIKey:         GetString(env, "RESEND_API_KEY", ""),
		ResendFromEmail:      GetString(env, "RESEND_FROM_EMAIL", ""),
		ContactNotifyEmail:   GetString(env, "CONTACT_NOTIFY_EMAIL", ""),
		AcceptedOrigins:      splitList(GetString(env, "ACCEPTED_ORIGINS", "")),
		Port:                 GetInt(env, "PORT", 8080),
		ReadTimeout:          time.Duration(GetInt(env, "READ_TIMEOUT_SECONDS", 15)) * time.Second,
		WriteTimeout:         time.Duration(GetInt(env, "WRITE_TIMEOUT_SECONDS", 15)) * time.Second,
		IdleTimeout:          time.Duration(GetInt(env, "IDLE_TIMEOUT_SECONDS", 60)) * time.Second,
		AutoMigrate:          GetBool(env, "AUTO_MIGRATE", false),
		GenerateModels:       GetBool(env, "GENERATE_MODELS", false),
		GenerateColumnReport: GetBool(env, "GENERATE_COLUMN_REPORT", false),
	}

	var problems []error
	if s.DBType != "supa" {
		problems = append(problems, fmt.Errorf("unsupported DB_TYPE %q", s.DBType))
	}
	required := map[string]string{
		"SUPABASE_DB_HOST":     s.DBHost,
		"SUPABASE_DB_USER":     s.Elevated.User,
		"SUPABASE_DB_PASSWORD": s.Elevated.Password,
		"ADMIN_USERNAME":       s.AdminUsername,
		"ADMIN_PASSWORD":       s.AdminPassword,
		"SESSION_SECRET":       s.SessionSecret,
	}
	for _, key := range sortedKeys(required) {
		if required[key] == "" {
			problems = append(problems, fmt.Errorf("%s is required", key))
		}
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}

	if key := GetString(env, "CSRF_KEY", ""); len(key) == 32 {
		s.CSRFKey = []byte(key)
	} else {
		sum := sha256.Sum256([]byte("csrf:" + s.SessionSecret))
		s.CSRFKey = sum[:]
	}

	return s, nil
}

// HasRestrictedRole reports whether public reads get their own connection.
func (s *Settings) HasRestrictedRole() bool {
	return s.Restricted.User != ""
}

// DSN renders the Supabase connection string for role.
func (s *Settings) DSN(role DBRole) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		s.DBHost, role.User, role.Password, s.DBName, s.DBPort)
}

func (s *Settings) Addr() string {
	return ":" + strconv.Itoa(s.Port)
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
