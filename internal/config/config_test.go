package config

import (
	"bytes"
	"testing"

	"github.com/backmassage/unifile/internal/naming"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/srv/share", "/srv/share"},
		{"single trailing slash", "/srv/share/", "/srv/share"},
		{"multiple trailing slashes", "/srv/share///", "/srv/share"},
		{"root path", "/", "/"},
		{"relative path", "music", "music"},
		{"relative with slash", "music/", "music"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_Mode(t *testing.T) {
	tests := []struct {
		name    string
		mode    naming.Mode
		wantErr bool
	}{
		{"preserve is valid", naming.ModePreserve, false},
		{"ascii is valid", naming.ModeASCII, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "latin1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.TargetDir = "/in"
			cfg.Mode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TargetDir = "/in"
	cfg.ColorMode = "sometimes"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject unknown color mode")
	}
}

func TestValidate_ExcludePatterns(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"double star", "**/.git", false},
		{"brace set", "*.{tmp,bak}", false},
		{"unterminated class", "[abc", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.TargetDir = "/in"
			cfg.Excludes = []string{tt.pattern}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresTarget(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when TargetDir is empty")
	}
	cfg.TargetDir = "/in"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestIsWithin(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		path string
		want bool
	}{
		{"same path", "/srv/share", "/srv/share", true},
		{"child", "/srv/share", "/srv/share/log.txt", true},
		{"similar prefix not nested", "/srv/share", "/srv/share2/log.txt", false},
		{"parent", "/srv/share/sub", "/srv/share", false},
		{"filesystem root", "/", "/tmp/x", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWithin(tt.dir, tt.path); got != tt.want {
				t.Errorf("IsWithin(%q, %q) = %v, want %v", tt.dir, tt.path, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != naming.ModePreserve {
		t.Errorf("default Mode = %q, want %q", cfg.Mode, naming.ModePreserve)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if cfg.DryRun {
		t.Error("default DryRun should be false")
	}
	if cfg.LogFile != "" {
		t.Error("default LogFile should be empty")
	}
}

func TestParseFlags(t *testing.T) {
	cfg := DefaultConfig()
	var out bytes.Buffer
	ok, err := ParseFlags(&cfg, []string{
		"--mode", "ascii", "-d", "-l", "/tmp/renames.log",
		"-x", "**/.git", "-x", "*.{tmp,bak}", "--no-color", "-v", "music/",
	}, "1.0.0", &out)
	if err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if !ok {
		t.Fatal("ParseFlags reported early exit")
	}
	if cfg.Mode != naming.ModeASCII {
		t.Errorf("Mode = %q, want ascii", cfg.Mode)
	}
	if !cfg.DryRun || !cfg.Verbose {
		t.Errorf("DryRun=%v Verbose=%v, want both true", cfg.DryRun, cfg.Verbose)
	}
	if cfg.LogFile != "/tmp/renames.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
	if len(cfg.Excludes) != 2 || cfg.Excludes[1] != "*.{tmp,bak}" {
		t.Errorf("Excludes = %q", cfg.Excludes)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
	}
	if cfg.TargetDir != "music" {
		t.Errorf("TargetDir = %q, want trailing slash stripped", cfg.TargetDir)
	}
}

func TestParseFlags_DefaultModeIsPreserve(t *testing.T) {
	cfg := DefaultConfig()
	var out bytes.Buffer
	if _, err := ParseFlags(&cfg, []string{"dir"}, "1.0.0", &out); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	if cfg.Mode != naming.ModePreserve {
		t.Errorf("Mode = %q, want preserve", cfg.Mode)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing target", []string{}},
		{"two targets", []string{"a", "b"}},
		{"bad mode", []string{"-m", "latin1", "dir"}},
		{"unknown flag", []string{"--frobnicate", "dir"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			var out bytes.Buffer
			if _, err := ParseFlags(&cfg, tt.args, "1.0.0", &out); err == nil {
				t.Errorf("ParseFlags(%q) should fail", tt.args)
			}
		})
	}
}

func TestParseFlags_VersionAndHelp(t *testing.T) {
	for _, arg := range []string{"--version", "-V", "--help", "-h"} {
		t.Run(arg, func(t *testing.T) {
			cfg := DefaultConfig()
			var out bytes.Buffer
			ok, err := ParseFlags(&cfg, []string{arg}, "1.2.3", &out)
			if err != nil {
				t.Fatalf("ParseFlags: %v", err)
			}
			if ok {
				t.Error("ParseFlags should report early exit")
			}
			if out.Len() == 0 {
				t.Error("expected help or version output")
			}
			if (arg == "--version" || arg == "-V") && !bytes.Contains(out.Bytes(), []byte("unifile v1.2.3")) {
				t.Errorf("version output = %q", out.String())
			}
		})
	}
}
