package events

import (
	"context"
	"testing"
)

func TestMutationMessageRoundTrip(t *testing.T) {
	msg := NewMutationMessage("expense", "created", "abc123")
	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	got, err := MutationMessageFromJSON(data)
	if err != nil {
		t.Fatalf("MutationMessageFromJSON() error = %v", err)
	}
	if got.Entity != "expense" || got.Action != "created" || got.EntityID != "abc123" {
		t.Fatalf("got %+v", got)
	}
	if got.Timestamp.IsZero() {
		t.Fatal("timestamp not set")
	}
}

func TestMutationMessageFromJSONInvalid(t *testing.T) {
	if _, err := MutationMessageFromJSON([]byte("{broken")); err == nil {
		t.Fatal("expected error for invalid payload")
	}
}

func TestNilClientPublishIsNoop(t *testing.T) {
	var c *Client
	if err := c.PublishMutation(context.Background(), "expense", "created", "x"); err != nil {
		t.Fatalf("nil publish error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("nil close error = %v", err)
	}
}
