// Package fixtures provides populated model values and raw response bodies
// for use in tests.
package fixtures

import (
	"time"

	"github.com/paymentsapi/paypal-client-go/models"
)

// GetOrderPayload returns an order payload with a single purchase unit
func GetOrderPayload() models.OrderPayload {
	unit := models.NewPurchaseUnit(models.NewAmount("GBP", "12.00"))
	unit.ReferenceID = "payment-session-123"
	return models.NewOrderPayload(models.IntentCapture, []models.PurchaseUnit{unit})
}

// GetOrderResponse returns an order in the created state, as PayPal returns
// it from a successful create call
func GetOrderResponse() *models.Order {
	createTime := time.Date(2024, time.March, 4, 10, 30, 0, 0, time.UTC)
	return &models.Order{
		CreateTime: &createTime,
		ID:         "5O190127TN364715T",
		Intent:     models.IntentCapture,
		Status:     models.OrderStatusCreated,
		PurchaseUnits: []models.PurchaseUnit{
			{
				ReferenceID: "payment-session-123",
				Amount:      models.NewAmount("GBP", "12.00"),
			},
		},
		Links: []models.LinkDescription{
			{
				Href:   "https://api.sandbox.paypal.com/v2/checkout/orders/5O190127TN364715T",
				Rel:    "self",
				Method: "GET",
			},
			{
				Href:   "https://www.sandbox.paypal.com/checkoutnow?token=5O190127TN364715T",
				Rel:    "approve",
				Method: "GET",
			},
		},
	}
}

// GetCompletedOrderResponse returns an order whose purchase unit carries a
// completed capture, as PayPal returns it from a successful capture call
func GetCompletedOrderResponse() *models.Order {
	order := GetOrderResponse()
	order.Status = models.OrderStatusCompleted
	order.PurchaseUnits[0].Payments = &models.PaymentCollection{
		Captures: []models.Capture{
			{Status: models.CaptureStatusCompleted},
		},
	}
	return order
}

// GetErrorResponse returns the structured error body PayPal sends with an
// unprocessable order request
func GetErrorResponse() *models.ErrorResponse {
	return &models.ErrorResponse{
		Name:    "UNPROCESSABLE_ENTITY",
		Message: "The requested action could not be performed, semantically incorrect, or failed business validation.",
		DebugID: "b6b9a374802ea",
		Details: []models.ErrorDetail{
			{
				Field:       "/purchase_units/@reference_id=='payment-session-123'/amount/value",
				Issue:       "CURRENCY_AMOUNT_MISMATCH",
				Description: "The currency and amount must match the breakdown totals.",
			},
		},
		Links: []models.LinkDescription{
			{
				Href: "https://developer.paypal.com/docs/api/orders/v2/#error-UNPROCESSABLE_ENTITY",
				Rel:  "information_link",
			},
		},
	}
}

// GetVerificationPayload returns a webhook verification request wrapping a
// minimal event body
func GetVerificationPayload() models.WebhookVerificationPayload[map[string]string] {
	return models.WebhookVerificationPayload[map[string]string]{
		TransmissionID:   "69cd13f0-d67a-11e5-baa3-778b53f4ae55",
		TransmissionTime: "2016-02-18T20:01:35Z",
		CertURL:          "https://api.paypal.com/v1/notifications/certs/CERT-360caa42-fca2a594-1d93a270",
		AuthAlgo:         "SHA256withRSA",
		TransmissionSig:  "lmI95Jx3Y9nhR5SJWlHVIWpg4AgFk7n9bCHSRxbrd8A9zrhdu2rMyFrmz+Zjh3s3boXB07VXCXUZy/UFzUlnGJn0wDugt7FlSvdKeIJenLRemUxYCPVoEZzg9VFNqOa48gMkvF+XTpxBeUx/kWy6B5cp7GkT2+pOowfRK7OaynuxUoKW3JcMWw272VKjLTtTAShncla7tGF+55rxyt2KNZIIqxNMJ48RDZheGU5w1npu9dZHnPgTXB9iomeVRoD8O/jhRpnKsGrDschyNdkeh81BJJMH4Ctc6lnCCquoP/GzCzz33MMsNdid7vL/NIWaCsekQpW26FpWPi/tfj8nLA==",
		WebhookID:        "1JE4291016473214C",
		WebhookEvent:     map[string]string{"event_type": "PAYMENT.CAPTURE.COMPLETED"},
	}
}

// GetVerificationResponseBody returns the raw verification response PayPal
// sends for the given verdict
func GetVerificationResponseBody(status string) string {
	return `{"verification_status":"` + status + `"}`
}
