package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/paymentsapi/paypal-client-go/models"
	. "github.com/smartystreets/goconvey/convey"
)

func createTestClient() *Client {
	c, _ := NewClient("test-client-id", "test-secret", APIBaseSandBox)
	c.SetAccessToken(&models.TokenResponse{AccessToken: "test-token", TokenType: "Bearer"})
	return c
}

func TestUnitNewClient(t *testing.T) {

	Convey("Missing credentials are rejected", t, func() {
		c, err := NewClient("", "secret", APIBaseSandBox)
		So(c, ShouldBeNil)
		So(err.Error(), ShouldEqual, "clientID, secret and apiBase are required to create a client")
	})

	Convey("Trailing slash on the API base is trimmed", t, func() {
		c, err := NewClient("id", "secret", "https://api.sandbox.paypal.com/")
		So(err, ShouldBeNil)
		So(c.APIBase, ShouldEqual, "https://api.sandbox.paypal.com")
	})
}

func TestUnitAPIBaseFor(t *testing.T) {

	Convey("Environment names map to API bases", t, func() {
		So(APIBaseFor("live"), ShouldEqual, APIBaseLive)
		So(APIBaseFor("test"), ShouldEqual, APIBaseSandBox)
		So(APIBaseFor("staging"), ShouldBeEmpty)
	})
}

func TestUnitGetAccessToken(t *testing.T) {

	Convey("Successful token fetch stores the token for later calls", t, func() {
		c, _ := NewClient("test-client-id", "test-secret", APIBaseSandBox)
		httpmock.ActivateNonDefault(c.HTTPClient)
		defer httpmock.DeactivateAndReset()

		jsonResponse, _ := httpmock.NewJsonResponder(http.StatusOK, models.TokenResponse{
			AccessToken: "A21AAFs",
			TokenType:   "Bearer",
			ExpiresIn:   32400,
		})
		httpmock.RegisterResponder(http.MethodPost, APIBaseSandBox+"/v1/oauth2/token", jsonResponse)

		token, err := c.GetAccessToken(context.Background())
		So(err, ShouldBeNil)
		So(token.AccessToken, ShouldEqual, "A21AAFs")

		req, _ := http.NewRequest(http.MethodGet, APIBaseSandBox+"/v2/checkout/orders/1", nil)
		c.setupHeaders(req, HeaderParams{})
		So(req.Header.Get("Authorization"), ShouldEqual, "Bearer A21AAFs")
	})

	Convey("Provider rejection surfaces as a structured API error", t, func() {
		c, _ := NewClient("test-client-id", "bad-secret", APIBaseSandBox)
		httpmock.ActivateNonDefault(c.HTTPClient)
		defer httpmock.DeactivateAndReset()

		jsonResponse, _ := httpmock.NewJsonResponder(http.StatusUnauthorized, models.ErrorResponse{
			Name:    "AUTHENTICATION_FAILURE",
			Message: "Authentication failed due to invalid authentication credentials.",
		})
		httpmock.RegisterResponder(http.MethodPost, APIBaseSandBox+"/v1/oauth2/token", jsonResponse)

		token, err := c.GetAccessToken(context.Background())
		So(token, ShouldBeNil)

		var apiErr *models.ErrorResponse
		So(errors.As(err, &apiErr), ShouldBeTrue)
		So(apiErr.StatusCode, ShouldEqual, http.StatusUnauthorized)
		So(apiErr.Name, ShouldEqual, "AUTHENTICATION_FAILURE")
	})
}

func TestUnitSetupHeaders(t *testing.T) {

	Convey("Library defaults are applied", t, func() {
		c := createTestClient()
		req, _ := http.NewRequest(http.MethodPost, APIBaseSandBox+"/v2/checkout/orders", nil)

		c.setupHeaders(req, HeaderParams{})

		So(req.Header.Get("Accept"), ShouldEqual, "application/json")
		So(req.Header.Get("Content-Type"), ShouldEqual, "application/json")
		So(req.Header.Get("Authorization"), ShouldEqual, "Bearer test-token")
	})

	Convey("Caller-supplied headers are merged in", t, func() {
		c := createTestClient()
		req, _ := http.NewRequest(http.MethodPost, APIBaseSandBox+"/v2/checkout/orders", nil)

		c.setupHeaders(req, HeaderParams{
			ContentType:          "application/json; charset=utf-8",
			RequestID:            "7b92603e-77ed-4896-8e78-5dea2050476a",
			PartnerAttributionID: "FLAVORsb-8787",
			ClientMetadataID:     "cmid-1",
			Prefer:               "return=representation",
		})

		So(req.Header.Get("Content-Type"), ShouldEqual, "application/json; charset=utf-8")
		So(req.Header.Get("PayPal-Request-Id"), ShouldEqual, "7b92603e-77ed-4896-8e78-5dea2050476a")
		So(req.Header.Get("PayPal-Partner-Attribution-Id"), ShouldEqual, "FLAVORsb-8787")
		So(req.Header.Get("PayPal-Client-Metadata-Id"), ShouldEqual, "cmid-1")
		So(req.Header.Get("Prefer"), ShouldEqual, "return=representation")
	})
}
