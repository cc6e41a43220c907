package notify

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeDispatcher fails for configured tokens.
type fakeDispatcher struct {
	dead  map[string]bool
	flaky map[string]bool
	sent  []string
}

func (f *fakeDispatcher) SendQuantityConfirmation(ctx context.Context, token, orderID, itemID string, quantity int) error {
	if f.dead[token] {
		return fmt.Errorf("%w: token expired upstream", ErrTokenNotRegistered)
	}
	if f.flaky[token] {
		return errors.New("transient delivery failure")
	}
	f.sent = append(f.sent, token)
	return nil
}

func TestDispatchCollectsOnlyUnregisteredTokens(t *testing.T) {
	d := &fakeDispatcher{
		dead:  map[string]bool{"dead-1": true, "dead-2": true},
		flaky: map[string]bool{"flaky-1": true},
	}
	tokens := []string{"ok-1", "dead-1", "flaky-1", "ok-2", "dead-2"}

	invalid := DispatchQuantityConfirmation(context.Background(), d, tokens, "order", "item", 3)

	if len(invalid) != 2 || invalid[0] != "dead-1" || invalid[1] != "dead-2" {
		t.Fatalf("invalid = %v, want [dead-1 dead-2]", invalid)
	}
	// transient failures neither abort the loop nor mark for pruning
	if len(d.sent) != 2 || d.sent[0] != "ok-1" || d.sent[1] != "ok-2" {
		t.Fatalf("sent = %v, want [ok-1 ok-2]", d.sent)
	}
}

func TestDispatchAllHealthy(t *testing.T) {
	d := &fakeDispatcher{}
	invalid := DispatchQuantityConfirmation(context.Background(), d, []string{"a", "b"}, "order", "item", 2)
	if invalid != nil {
		t.Fatalf("invalid = %v, want nil", invalid)
	}
	if len(d.sent) != 2 {
		t.Fatalf("sent = %v, want both tokens", d.sent)
	}
}

func TestDispatchNoTokens(t *testing.T) {
	d := &fakeDispatcher{}
	if invalid := DispatchQuantityConfirmation(context.Background(), d, nil, "order", "item", 2); invalid != nil {
		t.Fatalf("invalid = %v, want nil", invalid)
	}
}
