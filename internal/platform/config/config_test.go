package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"CUBE_ADDR", "CUBE_WEB_DIR", "CUBE_BOARD_SIZE", "CUBE_LOG_LEVEL", "CUBE_OPEN_BROWSER", "CUBE_MAX_GAMES"} {
		t.Setenv(k, "unset")
		os.Unsetenv(k)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":2888" || cfg.BoardSize != 5 || cfg.LogLevel != "info" || !cfg.OpenBrowser || cfg.MaxGames != 1024 {
		t.Fatalf("defaults: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CUBE_ADDR", "127.0.0.1:9000")
	t.Setenv("CUBE_BOARD_SIZE", "4")
	t.Setenv("CUBE_OPEN_BROWSER", "false")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" || cfg.BoardSize != 4 || cfg.OpenBrowser {
		t.Fatalf("cfg: %+v", cfg)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("CUBE_BOARD_SIZE", "12")
	if _, err := Load(); err == nil {
		t.Fatal("expected size error")
	}
	t.Setenv("CUBE_BOARD_SIZE", "five")
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
	t.Setenv("CUBE_BOARD_SIZE", "5")
	t.Setenv("CUBE_MAX_GAMES", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected max games error")
	}
}
