package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillbridge/skillbridge-backend/internal/app/models/dto"
)

// WebhookSignatureHeader carries the hex-encoded HMAC-SHA256 of the raw
// request body, keyed with the shared webhook secret.
const WebhookSignatureHeader = "X-Webhook-Signature"

// WebhookSignature authenticates identity-provider deliveries. The endpoint
// mutates user rows without a user token, so every request must prove it came
// from the provider. An empty secret fails closed: nothing is accepted until
// one is configured.
func WebhookSignature(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unreadable request body")

			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return
		}
		// Hand the body back to the handler's JSON binding.
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if secret == "" || !validWebhookSignature(secret, body, c.GetHeader(WebhookSignatureHeader)) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("Missing or invalid webhook signature")

			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

func validWebhookSignature(secret string, body []byte, header string) bool {
	claimed, err := hex.DecodeString(header)
	if err != nil || len(claimed) == 0 {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(claimed, mac.Sum(nil))
}
