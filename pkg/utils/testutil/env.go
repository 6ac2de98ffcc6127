package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// UnsetEnv removes LINEAGE_* variables a flag may read during the test and
// restores them afterwards. An empty value still counts as set for a flag
// source, so t.Setenv(key, "") would hide flag defaults.
func UnsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		prev, ok := os.LookupEnv(key)
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("failed to unset %s: %v", key, err)
		}
		if ok {
			t.Cleanup(func() { _ = os.Setenv(key, prev) })
		}
	}
}
