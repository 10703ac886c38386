package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/paymentsapi/paypal-client-go/models"
)

// VerifySignature forwards a webhook transmission's metadata and event body
// to PayPal's verification endpoint and returns the provider's verdict.
// PayPal is the sole authority on validity; nothing is verified locally.
// Caller-supplied headers are forwarded as given, with the usual JSON
// content type applied only when the caller sets none.
//
// This is a function rather than a method so the event body can keep the
// caller's own type.
func VerifySignature[T any](ctx context.Context, c *Client, payload models.WebhookVerificationPayload[T], headers HeaderParams) (*models.Verification, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error serializing webhook verification payload: [%s]", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.APIBase+"/v1/notifications/verify-webhook-signature", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("error generating request for PayPal: [%s]", err)
	}
	c.setupHeaders(req, headers)

	verification := &models.Verification{}
	if err = c.do(req, verification); err != nil {
		return nil, err
	}
	return verification, nil
}
