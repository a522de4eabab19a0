package config

import "testing"

func TestLoadDefaultsToSQLite(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Engine != EngineSQLite {
		t.Errorf("expected default engine %q, got %q", EngineSQLite, cfg.Engine)
	}
	if cfg.SQLitePath != "spaza.db" {
		t.Errorf("expected default DB_PATH spaza.db, got %q", cfg.SQLitePath)
	}
	if cfg.ServerAddr != ":8000" {
		t.Errorf("expected default SERVER_ADDR :8000, got %q", cfg.ServerAddr)
	}
}

func TestLoadHostImpliesMySQL(t *testing.T) {
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_NAME", "spaza")
	t.Setenv("DB_USER", "spaza")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Engine != EngineMySQL {
		t.Errorf("expected DB_HOST to imply mysql, got %q", cfg.Engine)
	}
	if cfg.DBPort != 3306 {
		t.Errorf("expected default mysql port 3306, got %d", cfg.DBPort)
	}
}

func TestLoadExplicitEngineWins(t *testing.T) {
	t.Setenv("DB_ENGINE", "postgres")
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_NAME", "spaza")
	t.Setenv("DB_USER", "spaza")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Engine != EnginePostgres {
		t.Errorf("expected explicit postgres engine, got %q", cfg.Engine)
	}
	if cfg.DBPort != 5432 {
		t.Errorf("expected default postgres port 5432, got %d", cfg.DBPort)
	}
}

func TestLoadRejectsUnknownEngine(t *testing.T) {
	t.Setenv("DB_ENGINE", "oracle")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for unsupported engine")
	}
}

func TestLoadRejectsIncompleteServerEngineConfig(t *testing.T) {
	t.Setenv("DB_ENGINE", "mysql")
	t.Setenv("DB_HOST", "db.local")
	// name, user and password missing
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for incomplete mysql configuration")
	}
}
