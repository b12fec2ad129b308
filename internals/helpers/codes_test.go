// internals/helpers/codes_test.go
package helper

import (
	"strings"
	"testing"
)

func TestGenerateCode(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := GenerateCode(32)
		if len(code) != 32 {
			t.Fatalf("len = %d, want 32", len(code))
		}
		if strings.ContainsAny(code, "+/=") {
			t.Fatalf("code %q contains non-URL-safe characters", code)
		}
		if _, dup := seen[code]; dup {
			t.Fatalf("duplicate code in 100 draws: %q", code)
		}
		seen[code] = struct{}{}
	}
}

func TestGenerateAPIKey(t *testing.T) {
	key := GenerateAPIKey()
	if !strings.HasPrefix(key, "rmh_") {
		t.Fatalf("key %q missing rmh_ prefix", key)
	}
	if len(key) != len("rmh_")+43 {
		t.Fatalf("key length = %d, want %d", len(key), len("rmh_")+43)
	}
}
