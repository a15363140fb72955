package update

import "testing"

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("STREAKD_DB_PATH", "/tmp/custom.db")
	t.Setenv("STREAKD_DESKTOP_NOTIFICATIONS", "yes")
	t.Setenv("STREAKD_RESET_POLL_SECONDS", "15")
	t.Setenv("STREAKD_SCHEDULER_BUFFER", "8")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DBPath != "/tmp/custom.db" {
		t.Fatalf("db path = %q", cfg.DBPath)
	}
	if !cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications on")
	}
	if cfg.ResetPollSeconds != 15 || cfg.SchedulerBuffer != 8 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestRuntimeConfigIgnoresBadValues(t *testing.T) {
	t.Setenv("STREAKD_RESET_POLL_SECONDS", "soon")
	t.Setenv("STREAKD_DESKTOP_NOTIFICATIONS", "maybe")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.ResetPollSeconds != 60 {
		t.Fatalf("expected default poll seconds, got %d", cfg.ResetPollSeconds)
	}
	if cfg.DesktopNotifications {
		t.Fatal("expected desktop notifications default off")
	}
}
