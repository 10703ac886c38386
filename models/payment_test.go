package models

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/stretchr/testify/assert"
)

func TestUnitCaptureStatusUnmarshal(t *testing.T) {

	Convey("Every documented token decodes", t, func() {
		for _, token := range []string{`"COMPLETED"`, `"DECLINED"`, `"PARTIALLY_REFUNDED"`, `"PENDING"`, `"REFUNDED"`} {
			var status CaptureStatus
			So(json.Unmarshal([]byte(token), &status), ShouldBeNil)
		}
	})

	Convey("Unknown tokens are rejected", t, func() {
		var status CaptureStatus
		err := json.Unmarshal([]byte(`"SETTLED"`), &status)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "invalid capture status value")
	})
}

func TestUnitRefundUnmarshal(t *testing.T) {

	Convey("Refund with a status detail decodes", t, func() {
		var refund Refund
		err := json.Unmarshal([]byte(`{"status":"PENDING","status_details":{"reason":"ECHECK"}}`), &refund)
		So(err, ShouldBeNil)
		So(refund.Status, ShouldEqual, RefundStatusPending)
		So(refund.StatusDetails.Reason, ShouldEqual, RefundReasonEcheck)
	})

	Convey("Refund without a status detail decodes with the detail absent", t, func() {
		var refund Refund
		err := json.Unmarshal([]byte(`{"status":"COMPLETED"}`), &refund)
		So(err, ShouldBeNil)
		So(refund.StatusDetails, ShouldBeNil)
	})

	Convey("Unknown refund status reason is rejected", t, func() {
		var refund Refund
		err := json.Unmarshal([]byte(`{"status":"PENDING","status_details":{"reason":"BANK_HOLIDAY"}}`), &refund)
		So(err, ShouldNotBeNil)
	})
}

func TestUnitCaptureDetailsRoundTrip(t *testing.T) {

	detailsJSON := `{
		"amount": {"currency_code": "GBP", "value": "10.99"},
		"seller_protection": {"dispute_categories": ["ITEM_NOT_RECEIVED"], "status": "ELIGIBLE"},
		"final_capture": true,
		"seller_receivable_breakdown": {
			"paypal_fee": {"currency_code": "GBP", "value": "0.57"},
			"gross_amount": {"currency_code": "GBP", "value": "10.99"},
			"net_amount": {"currency_code": "GBP", "value": "10.42"}
		},
		"supplementary_data": {"related_ids": {"order_id": "5O190127TN364715T"}},
		"id": "2GG279541U471931P",
		"status": "COMPLETED"
	}`

	Convey("Decode then encode reproduces equivalent capture details", t, func() {
		var decoded CaptureDetails
		err := json.Unmarshal([]byte(detailsJSON), &decoded)
		So(err, ShouldBeNil)
		So(decoded.Status, ShouldEqual, CaptureStatusCompleted)
		So(decoded.SellerProtection.Status, ShouldEqual, SellerProtectionEligible)
		So(*decoded.FinalCapture, ShouldBeTrue)
		So(decoded.SupplementaryData.RelatedIDs.OrderID, ShouldEqual, "5O190127TN364715T")

		encoded, err := json.Marshal(decoded)
		So(err, ShouldBeNil)

		var reDecoded CaptureDetails
		err = json.Unmarshal(encoded, &reDecoded)
		So(err, ShouldBeNil)
		assert.Equal(t, decoded, reDecoded)
	})
}

func TestUnitAuthorizationStatusUnmarshal(t *testing.T) {

	Convey("Documented tokens decode, unknown tokens fail", t, func() {
		var status AuthorizationStatus
		So(json.Unmarshal([]byte(`"PARTIALLY_CAPTURED"`), &status), ShouldBeNil)
		So(status, ShouldEqual, AuthorizationStatusPartiallyCaptured)
		So(json.Unmarshal([]byte(`"ON_HOLD"`), &status), ShouldNotBeNil)
	})
}
