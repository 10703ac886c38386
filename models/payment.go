package models

import "time"

// AuthorizationStatus is the status of a payment authorization
type AuthorizationStatus string

const (
	AuthorizationStatusCreated           AuthorizationStatus = "CREATED"
	AuthorizationStatusCaptured          AuthorizationStatus = "CAPTURED"
	AuthorizationStatusDenied            AuthorizationStatus = "DENIED"
	AuthorizationStatusExpired           AuthorizationStatus = "EXPIRED"
	AuthorizationStatusPartiallyExpired  AuthorizationStatus = "PARTIALLY_EXPIRED"
	AuthorizationStatusPartiallyCaptured AuthorizationStatus = "PARTIALLY_CAPTURED"
	AuthorizationStatusVoided            AuthorizationStatus = "VOIDED"
	AuthorizationStatusPending           AuthorizationStatus = "PENDING"
)

// UnmarshalJSON rejects authorization status tokens outside PayPal's table
func (a *AuthorizationStatus) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "authorization status",
		AuthorizationStatusCreated, AuthorizationStatusCaptured, AuthorizationStatusDenied,
		AuthorizationStatusExpired, AuthorizationStatusPartiallyExpired,
		AuthorizationStatusPartiallyCaptured, AuthorizationStatusVoided, AuthorizationStatusPending)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// AuthorizationStatusDetailsReason is the reason why an authorization is pending
type AuthorizationStatusDetailsReason string

const (
	// AuthorizationPendingReview means the authorization is pending manual review
	AuthorizationPendingReview AuthorizationStatusDetailsReason = "PENDING_REVIEW"
)

// UnmarshalJSON rejects authorization status reason tokens outside PayPal's table
func (a *AuthorizationStatusDetailsReason) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "authorization status reason", AuthorizationPendingReview)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// AuthorizationStatusDetails gives the reason for a pending authorization status
type AuthorizationStatusDetails struct {
	Reason AuthorizationStatusDetailsReason `json:"reason" validate:"required"`
}

// AuthorizationWithData is a payment authorization reported by PayPal
type AuthorizationWithData struct {
	Status        AuthorizationStatus         `json:"status" validate:"required"`
	StatusDetails *AuthorizationStatusDetails `json:"status_details,omitempty"`
}

// CaptureStatus is the status of a captured payment
type CaptureStatus string

const (
	CaptureStatusCompleted         CaptureStatus = "COMPLETED"
	CaptureStatusDeclined          CaptureStatus = "DECLINED"
	CaptureStatusPartiallyRefunded CaptureStatus = "PARTIALLY_REFUNDED"
	CaptureStatusPending           CaptureStatus = "PENDING"
	CaptureStatusRefunded          CaptureStatus = "REFUNDED"
)

// UnmarshalJSON rejects capture status tokens outside PayPal's table
func (c *CaptureStatus) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "capture status",
		CaptureStatusCompleted, CaptureStatusDeclined, CaptureStatusPartiallyRefunded,
		CaptureStatusPending, CaptureStatusRefunded)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// CaptureStatusDetailsReason is the reason why a captured payment is pending or denied
type CaptureStatusDetailsReason string

const (
	CaptureReasonBuyerComplaint                          CaptureStatusDetailsReason = "BUYER_COMPLAINT"
	CaptureReasonChargeback                              CaptureStatusDetailsReason = "CHARGEBACK"
	CaptureReasonEcheck                                  CaptureStatusDetailsReason = "ECHECK"
	CaptureReasonInternationalWithdrawal                 CaptureStatusDetailsReason = "INTERNATIONAL_WITHDRAWAL"
	CaptureReasonOther                                   CaptureStatusDetailsReason = "OTHER"
	CaptureReasonPendingReview                           CaptureStatusDetailsReason = "PENDING_REVIEW"
	CaptureReasonReceivingPreferenceMandatesManualAction CaptureStatusDetailsReason = "RECEIVING_PREFERENCE_MANDATES_MANUAL_ACTION"
	CaptureReasonRefunded                                CaptureStatusDetailsReason = "REFUNDED"
	CaptureReasonTransactionApprovedAwaitingFunding      CaptureStatusDetailsReason = "TRANSACTION_APPROVED_AWAITING_FUNDING"
	CaptureReasonUnilateral                              CaptureStatusDetailsReason = "UNILATERAL"
	CaptureReasonVerificationRequired                    CaptureStatusDetailsReason = "VERIFICATION_REQUIRED"
)

// UnmarshalJSON rejects capture status reason tokens outside PayPal's table
func (c *CaptureStatusDetailsReason) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "capture status reason",
		CaptureReasonBuyerComplaint, CaptureReasonChargeback, CaptureReasonEcheck,
		CaptureReasonInternationalWithdrawal, CaptureReasonOther, CaptureReasonPendingReview,
		CaptureReasonReceivingPreferenceMandatesManualAction, CaptureReasonRefunded,
		CaptureReasonTransactionApprovedAwaitingFunding, CaptureReasonUnilateral,
		CaptureReasonVerificationRequired)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// CaptureStatusDetails gives the reason for a pending or denied capture status
type CaptureStatusDetails struct {
	Reason CaptureStatusDetailsReason `json:"reason" validate:"required"`
}

// Capture is a captured payment reported by PayPal
type Capture struct {
	Status        CaptureStatus         `json:"status" validate:"required"`
	StatusDetails *CaptureStatusDetails `json:"status_details,omitempty"`
}

// RefundStatus is the status of a refund
type RefundStatus string

const (
	RefundStatusCancelled RefundStatus = "CANCELLED"
	RefundStatusPending   RefundStatus = "PENDING"
	RefundStatusCompleted RefundStatus = "COMPLETED"
)

// UnmarshalJSON rejects refund status tokens outside PayPal's table
func (r *RefundStatus) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "refund status", RefundStatusCancelled, RefundStatusPending, RefundStatusCompleted)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// RefundStatusDetailsReason is the reason why a refund is pending or failed
type RefundStatusDetailsReason string

const (
	// RefundReasonEcheck means the customer's account is funded through an eCheck that has not yet cleared
	RefundReasonEcheck RefundStatusDetailsReason = "ECHECK"
)

// UnmarshalJSON rejects refund status reason tokens outside PayPal's table
func (r *RefundStatusDetailsReason) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "refund status reason", RefundReasonEcheck)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// RefundStatusDetails gives the reason for a pending or failed refund status
type RefundStatusDetails struct {
	Reason RefundStatusDetailsReason `json:"reason" validate:"required"`
}

// Refund is a refund reported by PayPal
type Refund struct {
	Status        RefundStatus         `json:"status" validate:"required"`
	StatusDetails *RefundStatusDetails `json:"status_details,omitempty"`
}

// PaymentCollection is the comprehensive history of payments for a purchase
// unit. Each list is append only from PayPal's point of view.
type PaymentCollection struct {
	Authorizations []AuthorizationWithData `json:"authorizations,omitempty"`
	Captures       []Capture               `json:"captures,omitempty"`
	Refunds        []Refund                `json:"refunds,omitempty"`
}

// SellerProtectionStatus is the level of seller protection in force for a transaction
type SellerProtectionStatus string

const (
	SellerProtectionEligible          SellerProtectionStatus = "ELIGIBLE"
	SellerProtectionPartiallyEligible SellerProtectionStatus = "PARTIALLY_ELIGIBLE"
	SellerProtectionNotEligible       SellerProtectionStatus = "NOT_ELIGIBLE"
)

// UnmarshalJSON rejects seller protection status tokens outside PayPal's table
func (s *SellerProtectionStatus) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "seller protection status",
		SellerProtectionEligible, SellerProtectionPartiallyEligible, SellerProtectionNotEligible)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// SellerProtection describes the seller protection in force for a transaction
type SellerProtection struct {
	DisputeCategories []string               `json:"dispute_categories,omitempty"`
	Status            SellerProtectionStatus `json:"status" validate:"required"`
}

// RelatedIDs are identifiers related to a captured payment
type RelatedIDs struct {
	OrderID string `json:"order_id" validate:"required"`
}

// SupplementaryData is supplementary data attached to a captured payment
type SupplementaryData struct {
	RelatedIDs RelatedIDs `json:"related_ids" validate:"required"`
}

// SellerReceivableBreakdown details the fees deducted from a captured payment
type SellerReceivableBreakdown struct {
	PaypalFee   Amount `json:"paypal_fee"   validate:"required"`
	GrossAmount Amount `json:"gross_amount" validate:"required"`
	NetAmount   Amount `json:"net_amount"   validate:"required"`
}

// CaptureDetails is the full representation of a captured payment
type CaptureDetails struct {
	Amount                    Amount                     `json:"amount" validate:"required"`
	SellerProtection          *SellerProtection          `json:"seller_protection,omitempty"`
	CreateTime                *time.Time                 `json:"create_time,omitempty"`
	UpdateTime                *time.Time                 `json:"update_time,omitempty"`
	FinalCapture              *bool                      `json:"final_capture,omitempty"`
	SellerReceivableBreakdown *SellerReceivableBreakdown `json:"seller_receivable_breakdown,omitempty"`
	SupplementaryData         *SupplementaryData         `json:"supplementary_data,omitempty"`
	CustomID                  string                     `json:"custom_id,omitempty"`
	Links                     []LinkDescription          `json:"links,omitempty"`
	ID                        string                     `json:"id,omitempty"`
	Status                    CaptureStatus              `json:"status,omitempty"`
}
