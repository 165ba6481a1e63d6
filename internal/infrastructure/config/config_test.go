package config

import (
	"os"
	"testing"
)

func TestValidate_RejectsDevSecretOutsideDevelopment(t *testing.T) {
	cfg := &Config{Env: "production", JWTSecret: devJWTSecret}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation failure with the development secret in production")
	}

	cfg = &Config{Env: "production", JWTSecret: "a-real-secret"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg = &Config{Env: "development", JWTSecret: devJWTSecret}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("dev secret must be allowed in development: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv registers restoration; unset so defaults apply.
	t.Setenv("PORT", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("PORT")
	os.Unsetenv("MONGO_DB")
	os.Unsetenv("JWT_SECRET")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("unexpected default port: %q", cfg.Port)
	}
	if cfg.Mongo.Database != "attendance_system" {
		t.Fatalf("unexpected default database: %q", cfg.Mongo.Database)
	}
	if cfg.JWTSecret != devJWTSecret {
		t.Fatalf("empty JWT_SECRET should fall back to the dev secret")
	}
}
