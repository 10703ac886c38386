// webhook-listener is a small demonstration service that receives PayPal
// webhook callbacks and verifies their signatures through the client library
// before acknowledging them.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/paymentsapi/paypal-client-go/client"
	"github.com/paymentsapi/paypal-client-go/config"
	"github.com/paymentsapi/paypal-client-go/models"
	"github.com/paymentsapi/paypal-client-go/utils"
)

func main() {
	log.Namespace = "paypal-webhook-listener"

	cfg, err := config.Get()
	if err != nil {
		log.Error(fmt.Errorf("error configuring service: %s. Exiting", err))
		return
	}

	apiBase := client.APIBaseFor(cfg.PaypalEnv)
	if apiBase == "" {
		log.Error(fmt.Errorf("invalid paypal env in config: %s. Exiting", cfg.PaypalEnv))
		return
	}

	c, err := client.NewClient(cfg.PaypalClientID, cfg.PaypalSecret, apiBase)
	if err != nil {
		log.Error(fmt.Errorf("error creating paypal client: [%v]. Exiting", err))
		return
	}

	if _, err = c.GetAccessToken(context.Background()); err != nil {
		log.Error(fmt.Errorf("error getting access token: [%v]. Exiting", err))
		return
	}

	router := mux.NewRouter()
	router.HandleFunc("/webhooks", handleWebhook(c, cfg)).Methods(http.MethodPost)

	server := &http.Server{Addr: cfg.BindAddr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info("Starting paypal-webhook-listener service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		log.Error(err)
	}
	log.Trace("Exiting paypal-webhook-listener service")
}

// handleWebhook lifts the transmission metadata from the PAYPAL-* headers of
// the callback, forwards it with the raw event body for verification, and
// acknowledges only callbacks PayPal vouches for.
func handleWebhook(c *client.Client, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		event, err := io.ReadAll(r.Body)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("error reading webhook body: [%s]", err))
			utils.WriteJSONWithStatus(w, r, utils.NewMessageResponse("error reading webhook body"), http.StatusBadRequest)
			return
		}

		payload := models.WebhookVerificationPayload[json.RawMessage]{
			TransmissionID:   r.Header.Get("Paypal-Transmission-Id"),
			TransmissionTime: r.Header.Get("Paypal-Transmission-Time"),
			CertURL:          r.Header.Get("Paypal-Cert-Url"),
			AuthAlgo:         r.Header.Get("Paypal-Auth-Algo"),
			TransmissionSig:  r.Header.Get("Paypal-Transmission-Sig"),
			WebhookID:        cfg.PaypalWebhookID,
			WebhookEvent:     event,
		}

		verification, err := client.VerifySignature(r.Context(), c, payload, client.HeaderParams{})
		if err != nil {
			log.ErrorR(r, fmt.Errorf("error verifying webhook signature: [%s]", err))
			utils.WriteJSONWithStatus(w, r, utils.NewMessageResponse("error verifying webhook signature"), http.StatusBadGateway)
			return
		}

		if verification.VerificationStatus != models.VerificationStatusSuccess {
			log.InfoR(r, "webhook signature verification failed", log.Data{"transmission_id": payload.TransmissionID})
			utils.WriteJSONWithStatus(w, r, verification, http.StatusUnauthorized)
			return
		}

		log.TraceR(r, "webhook signature verified", log.Data{"transmission_id": payload.TransmissionID})
		utils.WriteJSONWithStatus(w, r, verification, http.StatusOK)
	}
}
