package models

// VerificationStatus is the status of a webhook signature verification
type VerificationStatus string

const (
	// VerificationStatusSuccess means the webhook signature was verified
	VerificationStatusSuccess VerificationStatus = "SUCCESS"
	// VerificationStatusFailure means the webhook signature could not be verified
	VerificationStatusFailure VerificationStatus = "FAILURE"
)

// UnmarshalJSON rejects verification status tokens outside PayPal's table
func (v *VerificationStatus) UnmarshalJSON(data []byte) error {
	s, err := unmarshalEnum(data, "verification status", VerificationStatusSuccess, VerificationStatusFailure)
	if err != nil {
		return err
	}
	*v = s
	return nil
}

// Verification is the outcome of a webhook signature verification. PayPal is
// the sole authority on validity; no local cryptography is involved.
type Verification struct {
	VerificationStatus VerificationStatus `json:"verification_status" validate:"required"`
}

// WebhookVerificationPayload is the request sent to PayPal to verify a
// webhook signature. The transmission fields are lifted from the PAYPAL-*
// headers of the notification message; the event body is whatever shape the
// caller received.
type WebhookVerificationPayload[T any] struct {
	TransmissionID   string `json:"transmission_id"   validate:"required"`
	TransmissionTime string `json:"transmission_time" validate:"required"`
	CertURL          string `json:"cert_url"          validate:"required"`
	AuthAlgo         string `json:"auth_algo"         validate:"required"`
	TransmissionSig  string `json:"transmission_sig"  validate:"required"`
	WebhookID        string `json:"webhook_id"        validate:"required"`
	WebhookEvent     T      `json:"webhook_event"`
}
