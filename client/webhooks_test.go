package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/paymentsapi/paypal-client-go/fixtures"
	"github.com/paymentsapi/paypal-client-go/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitVerifySignature(t *testing.T) {
	c := createTestClient()
	httpmock.ActivateNonDefault(c.HTTPClient)
	defer httpmock.DeactivateAndReset()

	verifyURL := APIBaseSandBox + "/v1/notifications/verify-webhook-signature"

	Convey("A SUCCESS verdict decodes to the success variant", t, func() {
		httpmock.RegisterResponder(http.MethodPost, verifyURL,
			httpmock.NewStringResponder(http.StatusOK, fixtures.GetVerificationResponseBody("SUCCESS")))

		verification, err := VerifySignature(context.Background(), c, fixtures.GetVerificationPayload(), HeaderParams{})
		So(err, ShouldBeNil)
		So(verification.VerificationStatus, ShouldEqual, models.VerificationStatusSuccess)
	})

	Convey("A FAILURE verdict decodes to the failure variant", t, func() {
		httpmock.RegisterResponder(http.MethodPost, verifyURL,
			httpmock.NewStringResponder(http.StatusOK, fixtures.GetVerificationResponseBody("FAILURE")))

		verification, err := VerifySignature(context.Background(), c, fixtures.GetVerificationPayload(), HeaderParams{})
		So(err, ShouldBeNil)
		So(verification.VerificationStatus, ShouldEqual, models.VerificationStatusFailure)
	})

	Convey("Any other verdict string fails decoding", t, func() {
		httpmock.RegisterResponder(http.MethodPost, verifyURL,
			httpmock.NewStringResponder(http.StatusOK, fixtures.GetVerificationResponseBody("UNKNOWN")))

		verification, err := VerifySignature(context.Background(), c, fixtures.GetVerificationPayload(), HeaderParams{})
		So(verification, ShouldBeNil)
		So(err.Error(), ShouldContainSubstring, "invalid verification status value")
	})

	Convey("Caller-supplied headers are forwarded rather than overridden", t, func() {
		var capturedContentType string
		httpmock.RegisterResponder(http.MethodPost, verifyURL,
			func(req *http.Request) (*http.Response, error) {
				capturedContentType = req.Header.Get("Content-Type")
				return httpmock.NewStringResponse(http.StatusOK, fixtures.GetVerificationResponseBody("SUCCESS")), nil
			})

		_, err := VerifySignature(context.Background(), c, fixtures.GetVerificationPayload(),
			HeaderParams{ContentType: "application/json; charset=utf-8"})
		So(err, ShouldBeNil)
		So(capturedContentType, ShouldEqual, "application/json; charset=utf-8")
	})

	Convey("A provider rejection surfaces as a structured API error", t, func() {
		jsonResponse, _ := httpmock.NewJsonResponder(http.StatusBadRequest, models.ErrorResponse{
			Name:    "VALIDATION_ERROR",
			Message: "Invalid data provided.",
		})
		httpmock.RegisterResponder(http.MethodPost, verifyURL, jsonResponse)

		verification, err := VerifySignature(context.Background(), c, fixtures.GetVerificationPayload(), HeaderParams{})
		So(verification, ShouldBeNil)

		var apiErr *models.ErrorResponse
		So(errors.As(err, &apiErr), ShouldBeTrue)
		So(apiErr.Name, ShouldEqual, "VALIDATION_ERROR")
	})
}
