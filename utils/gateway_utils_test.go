package utils

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyRoundtripSHA512(t *testing.T) {
	params := map[string]string{
		"vnp_TxnRef": "abc-123",
		"vnp_Amount": "15000000",
	}

	signature := SignParamsSHA512(params, "secret")
	assert.True(t, VerifySignature(params, "secret", signature, true))
	assert.False(t, VerifySignature(params, "wrong-secret", signature, true))
}

func TestSignAndVerifyRoundtripSHA256(t *testing.T) {
	params := map[string]string{"requestId": "r-1", "resultCode": "0"}

	signature := SignParamsSHA256(params, "momo-secret")
	assert.True(t, VerifySignature(params, "momo-secret", signature, false))
}

func TestVerifySignatureRejectsTamperedParams(t *testing.T) {
	params := map[string]string{"amount": "100000"}
	signature := SignParamsSHA256(params, "secret")

	params["amount"] = "1"
	assert.False(t, VerifySignature(params, "secret", signature, false))
}

func TestVerifySignatureCaseInsensitiveHex(t *testing.T) {
	params := map[string]string{"a": "1"}
	signature := strings.ToUpper(SignParamsSHA512(params, "secret"))

	assert.True(t, VerifySignature(params, "secret", signature, true))
}

func TestCanonicalQuerySortsKeys(t *testing.T) {
	query := canonicalQuery(map[string]string{"b": "2", "a": "1", "c": "3 3"})
	assert.Equal(t, "a=1&b=2&c=3+3", query)
}

func TestBuildVNPayURLCarriesSignatureAndScaledAmount(t *testing.T) {
	rawURL := BuildVNPayURL("https://pay.vnpay.vn/paymentv2", "TMN01", "secret",
		"ORD-20260829150405-ABCDEF12", "https://shop.example/v1/payments/vnpay/return", 150000, "txn-1")

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)

	values := parsed.Query()
	assert.Equal(t, "15000000", values.Get("vnp_Amount")) // VND x100
	assert.Equal(t, "txn-1", values.Get("vnp_TxnRef"))
	assert.NotEmpty(t, values.Get("vnp_SecureHash"))

	// the signature covers everything except itself
	signed := map[string]string{}
	for key, vals := range values {
		if key != "vnp_SecureHash" {
			signed[key] = vals[0]
		}
	}
	assert.True(t, VerifySignature(signed, "secret", values.Get("vnp_SecureHash"), true))
}

func TestBuildMoMoURLCarriesSignature(t *testing.T) {
	rawURL := BuildMoMoURL("https://test-payment.momo.vn/v2/gateway", "PARTNER01", "access", "secret",
		"ORD-20260829150405-ABCDEF12", "https://shop.example/v1/payments/momo/ipn", 150000, "txn-2")

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)

	values := parsed.Query()
	assert.Equal(t, "150000", values.Get("amount"))
	assert.Equal(t, "captureWallet", values.Get("requestType"))
	assert.NotEmpty(t, values.Get("signature"))
}
