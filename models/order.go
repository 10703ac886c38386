package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Intent is the intent to either capture payment immediately or authorize a
// payment for an order after order creation
type Intent string

const (
	// IntentCapture captures payment immediately after the customer makes a payment
	IntentCapture Intent = "CAPTURE"
	// IntentAuthorize authorizes a payment and places funds on hold after the customer makes a payment
	IntentAuthorize Intent = "AUTHORIZE"
)

// UnmarshalJSON rejects intent tokens outside PayPal's table
func (i *Intent) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "intent", IntentCapture, IntentAuthorize)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// PayerName is the name of the payer
type PayerName struct {
	GivenName string `json:"given_name" validate:"required"`
	Surname   string `json:"surname"    validate:"required"`
}

// PhoneType is the type of phone number provided for a payer
type PhoneType string

const (
	PhoneTypeFax    PhoneType = "FAX"
	PhoneTypeHome   PhoneType = "HOME"
	PhoneTypeMobile PhoneType = "MOBILE"
	PhoneTypeOther  PhoneType = "OTHER"
	PhoneTypePager  PhoneType = "PAGER"
)

// UnmarshalJSON rejects phone type tokens outside PayPal's table
func (p *PhoneType) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "phone type", PhoneTypeFax, PhoneTypeHome, PhoneTypeMobile, PhoneTypeOther, PhoneTypePager)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// PhoneNumber is a phone number in canonical international E.164 format
type PhoneNumber struct {
	NationalNumber string `json:"national_number" validate:"required"`
}

// Phone is the phone number of the customer
type Phone struct {
	PhoneType   PhoneType   `json:"phone_type,omitempty"`
	PhoneNumber PhoneNumber `json:"phone_number" validate:"required"`
}

// TaxIDType is the customer's tax ID type, supported for the PayPal payment method only
type TaxIDType string

const (
	// TaxIDTypeBRCPF is the individual tax ID type
	TaxIDTypeBRCPF TaxIDType = "BR_CPF"
	// TaxIDTypeBRCNPJ is the business tax ID type
	TaxIDTypeBRCNPJ TaxIDType = "BR_CNPJ"
)

// UnmarshalJSON rejects tax ID type tokens outside PayPal's table
func (t *TaxIDType) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "tax ID type", TaxIDTypeBRCPF, TaxIDTypeBRCNPJ)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// TaxInfo is the tax information of the payer
type TaxInfo struct {
	TaxID     string    `json:"tax_id"      validate:"required"`
	TaxIDType TaxIDType `json:"tax_id_type" validate:"required"`
}

// Payer is the customer who approves and pays for the order
type Payer struct {
	Name         *PayerName `json:"name,omitempty"`
	EmailAddress string     `json:"email_address,omitempty"`
	PayerID      string     `json:"payer_id,omitempty"`
	Phone        *Phone     `json:"phone,omitempty"`
	BirthDate    string     `json:"birth_date,omitempty"`
	TaxInfo      *TaxInfo   `json:"tax_info,omitempty"`
	Address      *Address   `json:"address,omitempty"`
}

// Breakdown details the total item amount, total tax amount, shipping,
// handling, insurance, and discounts making up an amount
type Breakdown struct {
	ItemTotal        *Money `json:"item_total,omitempty"`
	Shipping         *Money `json:"shipping,omitempty"`
	Handling         *Money `json:"handling,omitempty"`
	TaxTotal         *Money `json:"tax_total,omitempty"`
	Insurance        *Money `json:"insurance,omitempty"`
	ShippingDiscount *Money `json:"shipping_discount,omitempty"`
	Discount         *Money `json:"discount,omitempty"`
}

// Amount is the total order amount with an optional breakdown
type Amount struct {
	CurrencyCode string     `json:"currency_code" validate:"required"`
	Value        string     `json:"value"         validate:"required"`
	Breakdown    *Breakdown `json:"breakdown,omitempty"`
}

// NewAmount creates an amount with the required values
func NewAmount(currencyCode, value string) Amount {
	return Amount{
		CurrencyCode: currencyCode,
		Value:        value,
	}
}

// Decimal returns the amount value as an exact decimal
func (a Amount) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(a.Value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("error converting amount value to decimal: [%s]", err)
	}
	return d, nil
}

// CheckBreakdown checks the documented constraint that the amount equals
// item_total plus tax_total plus shipping plus handling plus insurance minus
// shipping_discount minus discount. PayPal validates this server side; the
// check here lets callers catch inconsistent payloads before a network call.
func (a Amount) CheckBreakdown() error {
	if a.Breakdown == nil {
		return nil
	}

	value, err := a.Decimal()
	if err != nil {
		return err
	}

	var total decimal.Decimal
	add := []*Money{a.Breakdown.ItemTotal, a.Breakdown.TaxTotal, a.Breakdown.Shipping, a.Breakdown.Handling, a.Breakdown.Insurance}
	subtract := []*Money{a.Breakdown.ShippingDiscount, a.Breakdown.Discount}

	for _, m := range add {
		if m == nil {
			continue
		}
		d, err := m.Decimal()
		if err != nil {
			return err
		}
		total = total.Add(d)
	}
	for _, m := range subtract {
		if m == nil {
			continue
		}
		d, err := m.Decimal()
		if err != nil {
			return err
		}
		total = total.Sub(d)
	}

	if !total.Equal(value) {
		return fmt.Errorf("breakdown sums to [%s] but amount value is [%s]", total.String(), value.String())
	}
	return nil
}

// Payee is the merchant who receives payment for this transaction
type Payee struct {
	EmailAddress string `json:"email_address,omitempty"`
	MerchantID   string `json:"merchant_id,omitempty"`
}

// PlatformFee is a fee, commission, tip or donation collected on the transaction
type PlatformFee struct {
	Amount Money  `json:"amount" validate:"required"`
	Payee  *Payee `json:"payee,omitempty"`
}

// DisbursementMode controls how funds are released to the merchant
type DisbursementMode string

const (
	// DisbursementModeInstant releases the funds to the merchant immediately
	DisbursementModeInstant DisbursementMode = "INSTANT"
	// DisbursementModeDelayed holds the funds for a finite number of days
	DisbursementModeDelayed DisbursementMode = "DELAYED"
)

// UnmarshalJSON rejects disbursement mode tokens outside PayPal's table
func (d *DisbursementMode) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "disbursement mode", DisbursementModeInstant, DisbursementModeDelayed)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// PaymentInstruction holds additional payment instructions for PayPal Commerce Platform customers
type PaymentInstruction struct {
	PlatformFees     []PlatformFee    `json:"platform_fees,omitempty"`
	DisbursementMode DisbursementMode `json:"disbursement_mode,omitempty"`
}

// ItemCategoryType is the category of an item in a purchase unit
type ItemCategoryType string

const (
	// ItemCategoryDigital covers goods that are stored, delivered, and used in their electronic format
	ItemCategoryDigital ItemCategoryType = "DIGITAL"
	// ItemCategoryPhysical covers tangible items that can be shipped with proof of delivery
	ItemCategoryPhysical ItemCategoryType = "PHYSICAL"
)

// UnmarshalJSON rejects item category tokens outside PayPal's table
func (i *ItemCategoryType) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "item category", ItemCategoryDigital, ItemCategoryPhysical)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

// ShippingDetail is the name and address of the person to whom to ship the items
type ShippingDetail struct {
	Name    string   `json:"name,omitempty"`
	Address *Address `json:"address,omitempty"`
}

// Item is an item the customer purchases from the merchant
type Item struct {
	Name        string           `json:"name"        validate:"required"`
	UnitAmount  Money            `json:"unit_amount" validate:"required"`
	Tax         *Money           `json:"tax,omitempty"`
	Quantity    string           `json:"quantity"    validate:"required"`
	Description string           `json:"description,omitempty"`
	SKU         string           `json:"sku,omitempty"`
	Category    ItemCategoryType `json:"category,omitempty"`
}

// PurchaseUnit represents either a full or partial order that the payer
// intends to purchase from the payee. The reference ID distinguishes units
// within a multi-unit order and is the addressing key for partial updates.
type PurchaseUnit struct {
	ReferenceID        string              `json:"reference_id,omitempty"`
	Amount             Amount              `json:"amount" validate:"required"`
	Payee              *Payee              `json:"payee,omitempty"`
	PaymentInstruction *PaymentInstruction `json:"payment_instruction,omitempty"`
	Description        string              `json:"description,omitempty"`
	CustomID           string              `json:"custom_id,omitempty"`
	InvoiceID          string              `json:"invoice_id,omitempty"`
	ID                 string              `json:"id,omitempty"`
	SoftDescriptor     string              `json:"soft_descriptor,omitempty"`
	Items              []Item              `json:"items,omitempty"`
	Shipping           *ShippingDetail     `json:"shipping,omitempty"`
	Payments           *PaymentCollection  `json:"payments,omitempty"`
}

// NewPurchaseUnit creates a purchase unit with the required properties
func NewPurchaseUnit(amount Amount) PurchaseUnit {
	return PurchaseUnit{Amount: amount}
}

// LandingPage is the type of landing page to show on the PayPal site for customer checkout
type LandingPage string

const (
	LandingPageLogin        LandingPage = "LOGIN"
	LandingPageBilling      LandingPage = "BILLING"
	LandingPageNoPreference LandingPage = "NO_PREFERENCE"
)

// UnmarshalJSON rejects landing page tokens outside PayPal's table
func (l *LandingPage) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "landing page", LandingPageLogin, LandingPageBilling, LandingPageNoPreference)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// ShippingPreference controls which shipping address is used on the PayPal site
type ShippingPreference string

const (
	ShippingPreferenceGetFromFile        ShippingPreference = "GET_FROM_FILE"
	ShippingPreferenceNoShipping         ShippingPreference = "NO_SHIPPING"
	ShippingPreferenceSetProvidedAddress ShippingPreference = "SET_PROVIDED_ADDRESS"
)

// UnmarshalJSON rejects shipping preference tokens outside PayPal's table
func (s *ShippingPreference) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "shipping preference", ShippingPreferenceGetFromFile, ShippingPreferenceNoShipping, ShippingPreferenceSetProvidedAddress)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// UserAction configures a Continue or Pay Now checkout flow
type UserAction string

const (
	UserActionContinue UserAction = "CONTINUE"
	UserActionPayNow   UserAction = "PAY_NOW"
)

// UnmarshalJSON rejects user action tokens outside PayPal's table
func (u *UserAction) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "user action", UserActionContinue, UserActionPayNow)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// PayeePreferred is the merchant-preferred payment source
type PayeePreferred string

const (
	PayeePreferredUnrestricted             PayeePreferred = "UNRESTRICTED"
	PayeePreferredImmediatePaymentRequired PayeePreferred = "IMMEDIATE_PAYMENT_REQUIRED"
)

// UnmarshalJSON rejects payee preferred tokens outside PayPal's table
func (p *PayeePreferred) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "payee preferred", PayeePreferredUnrestricted, PayeePreferredImmediatePaymentRequired)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// PaymentMethod holds the customer and merchant payment preferences
type PaymentMethod struct {
	PayerSelected  string         `json:"payer_selected,omitempty"`
	PayeePreferred PayeePreferred `json:"payee_preferred,omitempty"`
}

// ApplicationContext customizes the payer experience during the approval process
type ApplicationContext struct {
	BrandName          string             `json:"brand_name,omitempty"`
	Locale             string             `json:"locale,omitempty"`
	LandingPage        LandingPage        `json:"landing_page,omitempty"`
	ShippingPreference ShippingPreference `json:"shipping_preference,omitempty"`
	UserAction         UserAction         `json:"user_action,omitempty"`
	PaymentMethod      *PaymentMethod     `json:"payment_method,omitempty"`
	ReturnURL          string             `json:"return_url,omitempty"`
	CancelURL          string             `json:"cancel_url,omitempty"`
}

// OrderPayload is the request body used when creating an order. PayPal
// requires at least one purchase unit and validates that server side.
type OrderPayload struct {
	Intent             Intent              `json:"intent"         validate:"required"`
	Payer              *Payer              `json:"payer,omitempty"`
	PurchaseUnits      []PurchaseUnit      `json:"purchase_units" validate:"required,min=1,dive"`
	ApplicationContext *ApplicationContext `json:"application_context,omitempty"`
}

// NewOrderPayload creates an order payload with the required properties
func NewOrderPayload(intent Intent, purchaseUnits []PurchaseUnit) OrderPayload {
	return OrderPayload{
		Intent:        intent,
		PurchaseUnits: purchaseUnits,
	}
}

// CardBrand is the card brand or network
type CardBrand string

const (
	CardBrandVisa          CardBrand = "VISA"
	CardBrandMastercard    CardBrand = "MASTERCARD"
	CardBrandDiscover      CardBrand = "DISCOVER"
	CardBrandAmex          CardBrand = "AMEX"
	CardBrandSolo          CardBrand = "SOLO"
	CardBrandJCB           CardBrand = "JCB"
	CardBrandStar          CardBrand = "STAR"
	CardBrandDelta         CardBrand = "DELTA"
	CardBrandSwitch        CardBrand = "SWITCH"
	CardBrandMaestro       CardBrand = "MAESTRO"
	CardBrandCBNationale   CardBrand = "CB_NATIONALE"
	CardBrandConfigoga     CardBrand = "CONFIGOGA"
	CardBrandConfidis      CardBrand = "CONFIDIS"
	CardBrandElectron      CardBrand = "ELECTRON"
	CardBrandCetelem       CardBrand = "CETELEM"
	CardBrandChinaUnionPay CardBrand = "CHINA_UNION_PAY"
)

// UnmarshalJSON rejects card brand tokens outside PayPal's table
func (c *CardBrand) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "card brand",
		CardBrandVisa, CardBrandMastercard, CardBrandDiscover, CardBrandAmex,
		CardBrandSolo, CardBrandJCB, CardBrandStar, CardBrandDelta,
		CardBrandSwitch, CardBrandMaestro, CardBrandCBNationale, CardBrandConfigoga,
		CardBrandConfidis, CardBrandElectron, CardBrandCetelem, CardBrandChinaUnionPay)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// CardType is the payment card type
type CardType string

const (
	CardTypeCredit  CardType = "CREDIT"
	CardTypeDebit   CardType = "DEBIT"
	CardTypePrepaid CardType = "PREPAID"
	CardTypeUnknown CardType = "UNKNOWN"
)

// UnmarshalJSON rejects card type tokens outside PayPal's table
func (c *CardType) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "card type", CardTypeCredit, CardTypeDebit, CardTypePrepaid, CardTypeUnknown)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// CardResponse is the payment card used to fund the payment
type CardResponse struct {
	LastDigits string    `json:"last_digits" validate:"required"`
	Brand      CardBrand `json:"brand"       validate:"required"`
	CardType   CardType  `json:"type"        validate:"required"`
}

// WalletResponse is the customer's wallet used to fund the transaction
type WalletResponse struct {
	ApplePay CardResponse `json:"apple_pay" validate:"required"`
}

// PaymentSourceResponse is the payment source used to fund the payment
type PaymentSourceResponse struct {
	Card   *CardResponse   `json:"card,omitempty"`
	Wallet *WalletResponse `json:"wallet,omitempty"`
}

// OrderStatus is the status of an order
type OrderStatus string

const (
	// OrderStatusCreated means the order was created with the specified context
	OrderStatusCreated OrderStatus = "CREATED"
	// OrderStatusSaved means the order was saved and persisted
	OrderStatusSaved OrderStatus = "SAVED"
	// OrderStatusApproved means the customer approved the payment
	OrderStatusApproved OrderStatus = "APPROVED"
	// OrderStatusVoided means all purchase units in the order are voided
	OrderStatusVoided OrderStatus = "VOIDED"
	// OrderStatusCompleted means the payment was authorized, or the authorized payment was captured, for the order
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// UnmarshalJSON rejects order status tokens outside PayPal's table
func (o *OrderStatus) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, "order status", OrderStatusCreated, OrderStatusSaved, OrderStatusApproved, OrderStatusVoided, OrderStatusCompleted)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Order represents a payment between two or more parties. Orders are never
// mutated locally; every response from PayPal replaces the previous value
// wholesale.
type Order struct {
	CreateTime    *time.Time             `json:"create_time,omitempty"`
	UpdateTime    *time.Time             `json:"update_time,omitempty"`
	ID            string                 `json:"id"     validate:"required"`
	PaymentSource *PaymentSourceResponse `json:"payment_source,omitempty"`
	Intent        Intent                 `json:"intent,omitempty"`
	Payer         *Payer                 `json:"payer,omitempty"`
	PurchaseUnits []PurchaseUnit         `json:"purchase_units,omitempty"`
	Status        OrderStatus            `json:"status" validate:"required"`
	Links         []LinkDescription      `json:"links,omitempty"`
}
