package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/paymentsapi/paypal-client-go/models"
)

// patchOperation is a single JSON-Patch operation in an order update request
type patchOperation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value"`
}

// CreateOrder creates an order. PayPal requires the payload to contain at
// least one purchase unit and rejects the request server side when it does
// not.
func (c *Client) CreateOrder(ctx context.Context, payload models.OrderPayload, headers HeaderParams) (*models.Order, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("error serializing order payload: [%s]", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIBase+"/v2/checkout/orders", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("error generating request for PayPal: [%s]", err)
	}
	c.setupHeaders(req, headers)

	order := &models.Order{}
	if err = c.do(req, order); err != nil {
		return nil, err
	}
	return order, nil
}

// GetOrder shows details for an order, by ID
func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return c.orderEndpoint(ctx, orderID, "", http.MethodGet, HeaderParams{})
}

// CaptureOrder captures payment for an order. The buyer must first have
// approved the order on the PayPal side; this library does not track that
// precondition.
func (c *Client) CaptureOrder(ctx context.Context, orderID string, headers HeaderParams) (*models.Order, error) {
	return c.orderEndpoint(ctx, orderID, "capture", http.MethodPost, headers)
}

// AuthorizeOrder authorizes payment for an order. The buyer must first have
// approved the order on the PayPal side; this library does not track that
// precondition.
func (c *Client) AuthorizeOrder(ctx context.Context, orderID string, headers HeaderParams) (*models.Order, error) {
	return c.orderEndpoint(ctx, orderID, "authorize", http.MethodPost, headers)
}

// UpdateOrder updates an order with the CREATED or APPROVED status by sending
// a JSON-Patch array of replace operations: one for the intent when supplied
// and one per purchase unit, addressed by the unit's reference ID. PayPal's
// PATCH response carries no body, so only success or failure is returned; a
// call with nothing to update still issues a PATCH with an empty operation
// array.
func (c *Client) UpdateOrder(ctx context.Context, orderID string, intent *models.Intent, purchaseUnits []models.PurchaseUnit) error {
	body, err := json.Marshal(buildOrderPatch(intent, purchaseUnits))
	if err != nil {
		return fmt.Errorf("error serializing order update operations: [%s]", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch,
		fmt.Sprintf("%s/v2/checkout/orders/%s", c.APIBase, orderID), bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("error generating request for PayPal: [%s]", err)
	}

	// PATCH always sends JSON regardless of caller preference
	c.setupHeaders(req, HeaderParams{ContentType: "application/json"})

	return c.do(req, nil)
}

// buildOrderPatch assembles the replace operations for an order update.
// PayPal addresses purchase units by reference ID, not position; a unit that
// declares none is addressed by the literal marker "default".
func buildOrderPatch(intent *models.Intent, purchaseUnits []models.PurchaseUnit) []patchOperation {
	ops := make([]patchOperation, 0, len(purchaseUnits)+1)

	if intent != nil {
		ops = append(ops, patchOperation{
			Op:    "replace",
			Path:  "/intent",
			Value: string(*intent),
		})
	}

	for _, unit := range purchaseUnits {
		referenceID := unit.ReferenceID
		if referenceID == "" {
			referenceID = "default"
		}
		ops = append(ops, patchOperation{
			Op:    "replace",
			Path:  fmt.Sprintf("/purchase_units/@reference_id='%s'", referenceID),
			Value: unit,
		})
	}

	return ops
}

// orderEndpoint handles the order requests that carry no body and return an
// order representation
func (c *Client) orderEndpoint(ctx context.Context, orderID, endpoint, method string, headers HeaderParams) (*models.Order, error) {
	url := fmt.Sprintf("%s/v2/checkout/orders/%s", c.APIBase, orderID)
	if endpoint != "" {
		url = url + "/" + endpoint
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error generating request for PayPal: [%s]", err)
	}
	c.setupHeaders(req, headers)

	order := &models.Order{}
	if err = c.do(req, order); err != nil {
		return nil, err
	}
	return order, nil
}
