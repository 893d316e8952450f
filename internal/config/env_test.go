package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CLEANSE_TEST_STR", "value")
	if got := GetEnv("CLEANSE_TEST_STR", "default"); got != "value" {
		t.Errorf("GetEnv() = %q, want %q", got, "value")
	}
	if got := GetEnv("CLEANSE_TEST_UNSET", "default"); got != "default" {
		t.Errorf("GetEnv() = %q, want default", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("CLEANSE_TEST_INT", "42")
	if got := GetEnvInt("CLEANSE_TEST_INT", 7); got != 42 {
		t.Errorf("GetEnvInt() = %d, want 42", got)
	}
	t.Setenv("CLEANSE_TEST_BAD_INT", "nope")
	if got := GetEnvInt("CLEANSE_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("GetEnvInt() = %d, want fallback 7", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"YES", true},
		{"false", false},
		{"off", false},
	}
	for _, tt := range tests {
		t.Setenv("CLEANSE_TEST_BOOL", tt.value)
		if got := GetEnvBool("CLEANSE_TEST_BOOL", !tt.want); got != tt.want {
			t.Errorf("GetEnvBool(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
	if got := GetEnvBool("CLEANSE_TEST_BOOL_UNSET", true); got != true {
		t.Error("GetEnvBool() ignored default for unset variable")
	}
}
