package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Gateway signing helpers. Both VNPay and MoMo sign a canonical string of
// sorted key=value pairs with an HMAC shared secret; the same scheme is used
// to verify inbound callbacks.

// SignParamsSHA512 signs url-encoded, key-sorted params with HMAC-SHA512 (VNPay)
func SignParamsSHA512(params map[string]string, secret string) string {
	h := hmac.New(sha512.New, []byte(secret))
	h.Write([]byte(canonicalQuery(params)))
	return hex.EncodeToString(h.Sum(nil))
}

// SignParamsSHA256 signs url-encoded, key-sorted params with HMAC-SHA256 (MoMo)
func SignParamsSHA256(params map[string]string, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(canonicalQuery(params)))
	return hex.EncodeToString(h.Sum(nil))
}

func canonicalQuery(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+url.QueryEscape(params[k]))
	}
	return strings.Join(pairs, "&")
}

// VerifySignature compares a callback signature against the one recomputed
// from the params. Comparison is constant time.
func VerifySignature(params map[string]string, secret, signature string, sha512Mode bool) bool {
	var expected string
	if sha512Mode {
		expected = SignParamsSHA512(params, secret)
	} else {
		expected = SignParamsSHA256(params, secret)
	}
	return hmac.Equal([]byte(strings.ToLower(signature)), []byte(expected))
}

// BuildVNPayURL produces the signed redirect URL for a VNPay payment.
// VNPay amounts are in VND x100.
func BuildVNPayURL(gatewayURL, tmnCode, secret, orderNumber, returnURL string, amount float64, txnID string) string {
	params := map[string]string{
		"vnp_Version":   "2.1.0",
		"vnp_Command":   "pay",
		"vnp_TmnCode":   tmnCode,
		"vnp_Amount":    fmt.Sprintf("%.0f", amount*100),
		"vnp_CurrCode":  "VND",
		"vnp_TxnRef":    txnID,
		"vnp_OrderInfo": "Thanh toan don hang " + orderNumber,
		"vnp_ReturnUrl": returnURL,
	}
	query := canonicalQuery(params)
	signature := SignParamsSHA512(params, secret)
	return gatewayURL + "?" + query + "&vnp_SecureHash=" + signature
}

// BuildMoMoURL produces the signed redirect URL for a MoMo payment
func BuildMoMoURL(gatewayURL, partnerCode, accessKey, secret, orderNumber, returnURL string, amount float64, txnID string) string {
	params := map[string]string{
		"partnerCode": partnerCode,
		"accessKey":   accessKey,
		"requestId":   txnID,
		"orderId":     orderNumber,
		"amount":      fmt.Sprintf("%.0f", amount),
		"orderInfo":   "Thanh toan don hang " + orderNumber,
		"returnUrl":   returnURL,
		"requestType": "captureWallet",
	}
	query := canonicalQuery(params)
	signature := SignParamsSHA256(params, secret)
	return gatewayURL + "?" + query + "&signature=" + signature
}
