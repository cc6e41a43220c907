package notify

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

// ErrTokenNotRegistered marks a delivery failure whose cause is a token
// the push service no longer knows. It is the sole signal for pruning a
// token; every other delivery failure is logged and ignored.
var ErrTokenNotRegistered = errors.New("registration token not registered")

// Dispatcher delivers a quantity-confirmation push to one device token.
type Dispatcher interface {
	SendQuantityConfirmation(ctx context.Context, token, orderID, itemID string, quantity int) error
}

// FCMDispatcher sends through Firebase Cloud Messaging.
type FCMDispatcher struct {
	client *messaging.Client
}

// NewFCMDispatcher builds the FCM client from application-default
// credentials (GOOGLE_APPLICATION_CREDENTIALS).
func NewFCMDispatcher(ctx context.Context) (*FCMDispatcher, error) {
	app, err := firebase.NewApp(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("firebase init: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase messaging: %w", err)
	}
	return &FCMDispatcher{client: client}, nil
}

func (d *FCMDispatcher) SendQuantityConfirmation(ctx context.Context, token, orderID, itemID string, quantity int) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: "Confirm your order quantity",
			Body:  fmt.Sprintf("Please confirm the updated quantity (%d) for your order.", quantity),
		},
		Data: map[string]string{
			"type":     "quantity-confirmation",
			"orderId":  orderID,
			"itemId":   itemID,
			"quantity": strconv.Itoa(quantity),
		},
	}

	_, err := d.client.Send(ctx, msg)
	if err != nil && messaging.IsRegistrationTokenNotRegistered(err) {
		return fmt.Errorf("%w: %v", ErrTokenNotRegistered, err)
	}
	return err
}

// DispatchQuantityConfirmation sends the confirmation push to every token
// and returns the tokens that should be pruned. Failures never abort the
// loop: the order update has already committed by the time this runs.
func DispatchQuantityConfirmation(ctx context.Context, d Dispatcher, tokens []string, orderID, itemID string, quantity int) []string {
	var invalid []string
	for _, token := range tokens {
		err := d.SendQuantityConfirmation(ctx, token, orderID, itemID, quantity)
		if err == nil {
			continue
		}
		log.Printf("Failed to send confirmation notification to token %s: %v", token, err)
		if errors.Is(err, ErrTokenNotRegistered) {
			invalid = append(invalid, token)
		}
	}
	return invalid
}
