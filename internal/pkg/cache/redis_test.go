package cache

import "testing"

func TestGenerateKeyNamespacing(t *testing.T) {
	c := NewRedisCache("localhost:6379", "orderdesk")

	if got := c.GenerateKey("total", "completed"); got != "orderdesk:total:completed" {
		t.Errorf("got %q, want orderdesk:total:completed", got)
	}

	other := NewRedisCache("localhost:6379", "otherapp")
	if c.GenerateKey("total", "completed") == other.GenerateKey("total", "completed") {
		t.Error("keys from different app names must not collide")
	}
}
