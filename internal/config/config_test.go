package config

import (
	"os"
	"testing"
	"time"
)

func requiredEnv() map[string]string {
	return map[string]string{
		"MARIADB_DSN":               "user:pass@tcp(localhost:3306)/db",
		"MARIADB_MAX_OPEN_CONN":     "10",
		"MARIADB_MAX_IDLE_CONNS":    "5",
		"MARIADB_CONN_MAX_LIFETIME": "30",
		"SERVER_PORT":               "8080",
		"JWT_SECRET":                "secret",
		"MINIO_ENDPOINT":            "localhost:9000",
		"MINIO_ACCESS_KEY":          "minio",
		"MINIO_SECRET_KEY":          "minio123",
	}
}

func TestLoad_Success(t *testing.T) {
	// Switch to a temp directory to avoid loading a real .env
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	tmpDir := t.TempDir()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not chdir to temp dir: %v", err)
	}
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("could not chdir back to original dir: %v", err)
		}
	}()

	reqs := requiredEnv()
	for k, v := range reqs {
		t.Setenv(k, v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.MariaDBDSN != reqs["MARIADB_DSN"] {
		t.Errorf("MariaDBDSN: expected %q, got %q", reqs["MARIADB_DSN"], cfg.MariaDBDSN)
	}
	if cfg.MaxOpenConns != 10 {
		t.Errorf("MaxOpenConns: expected %d, got %d", 10, cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns != 5 {
		t.Errorf("MaxIdleConns: expected %d, got %d", 5, cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime != 30*time.Second {
		t.Errorf("ConnMaxLifetime: expected %v, got %v", 30*time.Second, cfg.ConnMaxLifetime)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort: expected %d, got %d", 8080, cfg.ServerPort)
	}
	if cfg.JWTSecret != "secret" {
		t.Errorf("JWTSecret: expected %q, got %q", "secret", cfg.JWTSecret)
	}
	if cfg.MediaBucket != "photos" {
		t.Errorf("MediaBucket default: expected %q, got %q", "photos", cfg.MediaBucket)
	}
	if cfg.AvatarBucket != "avatars" {
		t.Errorf("AvatarBucket default: expected %q, got %q", "avatars", cfg.AvatarBucket)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr: expected empty, got %q", cfg.RedisAddr)
	}
}

func TestLoad_MissingRequiredVars(t *testing.T) {
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	tmpDir := t.TempDir()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not chdir to temp dir: %v", err)
	}
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("could not chdir back to original dir: %v", err)
		}
	}()

	for missing := range requiredEnv() {
		t.Run(missing, func(t *testing.T) {
			for k, v := range requiredEnv() {
				if k == missing {
					continue
				}
				t.Setenv(k, v)
			}
			os.Unsetenv(missing)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error when %s is missing, got nil", missing)
			}
		})
	}
}
