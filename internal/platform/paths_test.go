package platform

import (
	"path/filepath"
	"testing"
)

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

// TestResolvePerOS verifies behavior for the covered scenario.
func TestResolvePerOS(t *testing.T) {
	cases := []struct {
		name       string
		goos       string
		env        map[string]string
		configDir  string
		dataDir    string
		wantConfig string
		wantBoard  string
	}{
		{
			name:       "linux with xdg overrides",
			goos:       "linux",
			env:        map[string]string{"XDG_CONFIG_HOME": "/xdg/config", "XDG_DATA_HOME": "/xdg/data"},
			configDir:  "/fallback/config",
			dataDir:    "/fallback/data",
			wantConfig: filepath.Join("/xdg/config", "tavle", "config.toml"),
			wantBoard:  filepath.Join("/xdg/data", "tavle", "tavle.json"),
		},
		{
			name:       "linux without xdg",
			goos:       "linux",
			env:        nil,
			configDir:  "/home/me/.config",
			dataDir:    "/home/me/.local/share",
			wantConfig: filepath.Join("/home/me/.config", "tavle", "config.toml"),
			wantBoard:  filepath.Join("/home/me/.local/share", "tavle", "tavle.json"),
		},
		{
			name:       "windows app data",
			goos:       "windows",
			env:        map[string]string{"APPDATA": `C:\Users\me\AppData\Roaming`, "LOCALAPPDATA": `C:\Users\me\AppData\Local`},
			configDir:  `C:\fallback\config`,
			dataDir:    `C:\fallback\data`,
			wantConfig: filepath.Join(`C:\Users\me\AppData\Roaming`, "tavle", "config.toml"),
			wantBoard:  filepath.Join(`C:\Users\me\AppData\Local`, "tavle", "tavle.json"),
		},
		{
			name:       "darwin ignores xdg",
			goos:       "darwin",
			env:        map[string]string{"XDG_CONFIG_HOME": "/ignored", "XDG_DATA_HOME": "/ignored"},
			configDir:  "/Users/me/Library/Application Support",
			dataDir:    "/Users/me/Library/Application Support",
			wantConfig: filepath.Join("/Users/me/Library/Application Support", "tavle", "config.toml"),
			wantBoard:  filepath.Join("/Users/me/Library/Application Support", "tavle", "tavle.json"),
		},
		{
			name:       "other os uses supplied dirs",
			goos:       "freebsd",
			env:        nil,
			configDir:  "/cfg",
			dataDir:    "/data",
			wantConfig: filepath.Join("/cfg", "tavle", "config.toml"),
			wantBoard:  filepath.Join("/data", "tavle", "tavle.json"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Resolve(tc.goos, envFrom(tc.env), tc.configDir, tc.dataDir, "tavle")
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if p.ConfigPath != tc.wantConfig {
				t.Fatalf("config path = %q, want %q", p.ConfigPath, tc.wantConfig)
			}
			if p.BoardPath != tc.wantBoard {
				t.Fatalf("board path = %q, want %q", p.BoardPath, tc.wantBoard)
			}
			if p.DataDir != filepath.Dir(p.BoardPath) {
				t.Fatalf("data dir = %q, board at %q", p.DataDir, p.BoardPath)
			}
		})
	}
}

// TestResolveRejectsBadInputs verifies behavior for the covered scenario.
func TestResolveRejectsBadInputs(t *testing.T) {
	if _, err := Resolve("darwin", nil, "", "/tmp/data", "tavle"); err == nil {
		t.Fatal("expected error for empty config dir")
	}
	if _, err := Resolve("darwin", nil, "/tmp/config", "/tmp/data", "  "); err == nil {
		t.Fatal("expected error for blank app name")
	}
}

// TestAppNameFor verifies behavior for the covered scenario.
func TestAppNameFor(t *testing.T) {
	if got := appNameFor(Options{}); got != "tavle" {
		t.Fatalf("appNameFor(zero) = %q", got)
	}
	if got := appNameFor(Options{AppName: "custom", DevMode: true}); got != "custom-dev" {
		t.Fatalf("appNameFor(custom dev) = %q", got)
	}
}

// TestDefaultPathsSmoke verifies behavior for the covered scenario.
func TestDefaultPathsSmoke(t *testing.T) {
	p, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error = %v", err)
	}
	if p.ConfigPath == "" || p.BoardPath == "" || p.DataDir == "" {
		t.Fatalf("expected non-empty paths, got %#v", p)
	}
}

// TestDefaultPathsWithOptionsDevMode verifies behavior for the covered scenario.
func TestDefaultPathsWithOptionsDevMode(t *testing.T) {
	p, err := DefaultPathsWithOptions(Options{AppName: "tavle", DevMode: true})
	if err != nil {
		t.Fatalf("DefaultPathsWithOptions() error = %v", err)
	}
	if filepath.Base(filepath.Dir(p.ConfigPath)) != "tavle-dev" {
		t.Fatalf("expected dev config dir suffix, got %q", p.ConfigPath)
	}
	if filepath.Base(p.BoardPath) != "tavle-dev.json" {
		t.Fatalf("expected dev board name, got %q", p.BoardPath)
	}
}
