package templates

import (
	"errors"
	"testing"

	"github.com/vertti/eden/pkg/config"
)

func TestFor(t *testing.T) {
	tests := []struct {
		format   string
		wantFile string
	}{
		{"toml", "eden.toml"},
		{"yaml", "eden.yaml"},
		{"yml", "eden.yaml"},
		{"json", "eden.json"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			file, content, err := For(tt.format)
			if err != nil {
				t.Fatalf("For(%q) error = %v", tt.format, err)
			}
			if file != tt.wantFile {
				t.Errorf("filename = %q, want %q", file, tt.wantFile)
			}
			if content == "" {
				t.Error("content is empty")
			}
		})
	}
}

func TestFor_Unsupported(t *testing.T) {
	for _, format := range []string{"jsonc", "ini", ""} {
		if _, _, err := For(format); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("For(%q) error = %v, want ErrUnsupportedFormat", format, err)
		}
	}
}

// Every template must load as a valid config with the same checks.
func TestTemplatesParse(t *testing.T) {
	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			file, content, err := For(format)
			if err != nil {
				t.Fatal(err)
			}
			cfg, err := config.Parse(file, []byte(content))
			if err != nil {
				t.Fatalf("config.Parse(%s) error = %v", file, err)
			}
			if len(cfg.Checks.Binaries) != 3 || len(cfg.Checks.Environment) != 1 {
				t.Errorf("got %d binaries, %d env vars; want 3, 1", len(cfg.Checks.Binaries), len(cfg.Checks.Environment))
			}
			if v, ok := cfg.Checks.Binaries[2].Version(); !ok || v != ">=18" {
				t.Errorf("node version = (%q, %v), want (>=18, true)", v, ok)
			}
		})
	}
}
