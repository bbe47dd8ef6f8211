package config

import (
	"strings"
	"testing"
	"time"
)

func validEnv() map[string]string {
	return map[string]string{
		"DB_TYPE":              "supa",
		"SUPABASE_DB_HOST":     "db.example.supabase.co",
		"SUPABASE_DB_USER":     "service",
		"SUPABASE_DB_PASSWORD": "service-secret",
		"ADMIN_USERNAME":       "admin",
		"ADMIN_PASSWORD":       "hunter2",
		"SESSION_SECRET":       "session-secret",
	}
}

func TestFromMapDefaults(t *testing.T) {
	s, err := FromMap(validEnv())
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}

	if s.DBPort != "5432" {
		t.Errorf("DBPort = %q, want 5432", s.DBPort)
	}
	if s.Port != 8080 {
		t.Errorf("Port = %d, want 8080", s.Port)
	}
	if s.ReadTimeout != 15*time.Second {
		t.Errorf("ReadTimeout = %v", s.ReadTimeout)
	}
	if s.HasRestrictedRole() {
		t.Error("restricted role should be absent")
	}
	if len(s.CSRFKey) != 32 {
		t.Errorf("derived CSRF key has %d bytes, want 32", len(s.CSRFKey))
	}
	if s.CookieSecure {
		t.Error("CookieSecure should default to false")
	}
}

func TestFromMapReportsEveryMissingKey(t *testing.T) {
	env := validEnv()
	delete(env, "ADMIN_PASSWORD")
	delete(env, "SESSION_SECRET")
	env["DB_TYPE"] = "mysql"

	_, err := FromMap(env)
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"ADMIN_PASSWORD", "SESSION_SECRET", `"mysql"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestFromMapOptionalValues(t *testing.T) {
	env := validEnv()
	env["SUPABASE_DB_ANON_USER"] = "anon"
	env["SUPABASE_DB_ANON_PASSWORD"] = "anon-secret"
	env["ACCEPTED_ORIGINS"] = "https://a.dev, ,https://b.dev"
	env["CSRF_KEY"] = "0123456789abcdef0123456789abcdef"
	env["COOKIE_SECURE"] = "true"
	env["PORT"] = "3000"

	s, err := FromMap(env)
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}
	if !s.HasRestrictedRole() {
		t.Error("restricted role should be configured")
	}
	if len(s.AcceptedOrigins) != 2 || s.AcceptedOrigins[1] != "https://b.dev" {
		t.Errorf("AcceptedOrigins = %v", s.AcceptedOrigins)
	}
	if string(s.CSRFKey) != env["CSRF_KEY"] {
		t.Errorf("CSRFKey = %q", s.CSRFKey)
	}
	if !s.CookieSecure {
		t.Error("CookieSecure should be true")
	}
	if s.Addr() != ":3000" {
		t.Errorf("Addr = %q", s.Addr())
	}

	dsn := s.DSN(s.Restricted)
	if !strings.Contains(dsn, "user=anon") || !strings.Contains(dsn, "sslmode=require") {
		t.Errorf("DSN = %q", dsn)
	}
}

func TestGetters(t *testing.T) {
	env := map[string]string{"N": "x", "B": "yes", "E": ""}
	if GetInt(env, "N", 4) != 4 {
		t.Error("GetInt should fall back on parse errors")
	}
	if GetBool(env, "B", true) != true {
		t.Error("GetBool should fall back on parse errors")
	}
	if GetString(env, "E", "d") != "d" {
		t.Error("GetString should fall back on empty values")
	}
	if GetString(nil, "E", "d") != "d" {
		t.Error("GetString should handle a nil map")
	}
}
