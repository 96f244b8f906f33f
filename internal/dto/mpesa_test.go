package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const successCallback = `{
	"Body": {
		"stkCallback": {
			"MerchantRequestID": "29115-34620561-1",
			"CheckoutRequestID": "ws_CO_191220191020363925",
			"ResultCode": 0,
			"ResultDesc": "The service request is processed successfully.",
			"CallbackMetadata": {
				"Item": [
					{"Name": "Amount", "Value": 500.00},
					{"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
					{"Name": "TransactionDate", "Value": 20191219102115},
					{"Name": "PhoneNumber", "Value": 254712345678}
				]
			}
		}
	}
}`

const failureCallback = `{
	"Body": {
		"stkCallback": {
			"MerchantRequestID": "29115-34620561-1",
			"CheckoutRequestID": "ws_CO_191220191020363925",
			"ResultCode": 1032,
			"ResultDesc": "Request cancelled by user."
		}
	}
}`

func TestMpesaCallbackSuccessParsing(t *testing.T) {
	var payload MpesaCallbackRequest
	require.NoError(t, json.Unmarshal([]byte(successCallback), &payload))

	cb := payload.Body.StkCallback
	assert.Equal(t, "ws_CO_191220191020363925", cb.CheckoutRequestID)
	assert.Equal(t, 0, cb.ResultCode)

	assert.Equal(t, "NLJ7RT61SV", cb.MetadataValue("MpesaReceiptNumber"))
	// Numeric metadata values come back as JSON numbers.
	assert.Equal(t, "20191219102115", cb.MetadataValue("TransactionDate"))
	assert.Equal(t, "500", cb.MetadataValue("Amount"))
	assert.Equal(t, "254712345678", cb.MetadataValue("PhoneNumber"))
}

func TestMpesaCallbackFailureParsing(t *testing.T) {
	var payload MpesaCallbackRequest
	require.NoError(t, json.Unmarshal([]byte(failureCallback), &payload))

	cb := payload.Body.StkCallback
	assert.Equal(t, 1032, cb.ResultCode)
	assert.Equal(t, "Request cancelled by user.", cb.ResultDesc)

	// No metadata on failures.
	assert.Empty(t, cb.MetadataValue("MpesaReceiptNumber"))
	assert.Empty(t, cb.MetadataValue("TransactionDate"))
}
