package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPaymentMethod(t *testing.T) {
	assert.True(t, IsValidPaymentMethod(PaymentMethodCOD))
	assert.True(t, IsValidPaymentMethod(PaymentMethodBankTransfer))
	assert.True(t, IsValidPaymentMethod(PaymentMethodVNPay))
	assert.True(t, IsValidPaymentMethod(PaymentMethodMoMo))
	assert.False(t, IsValidPaymentMethod("paypal"))
	assert.False(t, IsValidPaymentMethod(""))
}

func TestIsSettled(t *testing.T) {
	assert.False(t, (&Payment{Status: PaymentStatusPending}).IsSettled())
	assert.False(t, (&Payment{Status: PaymentStatusAwaiting}).IsSettled())
	assert.True(t, (&Payment{Status: PaymentStatusComplete}).IsSettled())
	assert.True(t, (&Payment{Status: PaymentStatusFailed}).IsSettled())
	assert.True(t, (&Payment{Status: PaymentStatusRefunded}).IsSettled())
}
