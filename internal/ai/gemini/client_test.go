package gemini

import (
	"context"
	"testing"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient(context.Background(), "   ", "gemini-2.5-pro"); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestClientModelFallsBackToDefault(t *testing.T) {
	c := &Client{model: defaultModel}
	if c.Model() != defaultModel {
		t.Fatalf("unexpected model: %q", c.Model())
	}

	var nilClient *Client
	if nilClient.Model() != "" {
		t.Fatal("expected empty model for nil client")
	}
}
