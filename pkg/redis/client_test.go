package redis

import (
	"testing"

	"github.com/nexlyn/storefront-backend/pkg/config"
)

func TestOptionsFromConfigRequiresURL(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error when url missing")
	}
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://localhost:6379/2", PoolSize: 7})
	if err != nil {
		t.Fatalf("optionsFromConfig: %v", err)
	}
	if opts.DB != 2 {
		t.Fatalf("expected db 2, got %d", opts.DB)
	}
	if opts.PoolSize != 7 {
		t.Fatalf("expected pool size fallback 7, got %d", opts.PoolSize)
	}
}

func TestSessionKeyNamespacing(t *testing.T) {
	c := &Client{}
	if got := c.SessionKey("abc"); got != "nx:session:abc" {
		t.Fatalf("unexpected session key %q", got)
	}
}
