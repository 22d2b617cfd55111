package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringListScan(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  StringList
	}{
		{"valid json", `["Onion","Pickles"]`, StringList{"Onion", "Pickles"}},
		{"bytes", []byte(`["Bacon"]`), StringList{"Bacon"}},
		{"malformed", `{not json`, StringList{}},
		{"json null", `null`, StringList{}},
		{"empty string", ``, StringList{}},
		{"nil column", nil, StringList{}},
		{"wrong shape", `{"a":1}`, StringList{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var l StringList
			assert.NoError(t, l.Scan(tc.value))
			assert.Equal(t, tc.want, l)
		})
	}
}

func TestStringListValueNilIsEmptyArray(t *testing.T) {
	var l StringList
	v, err := l.Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringListUnmarshalNonList(t *testing.T) {
	// Callers occasionally send a string or object where a list belongs.
	// That normalizes to the empty list instead of failing the request.
	var l StringList
	assert.NoError(t, json.Unmarshal([]byte(`"oops"`), &l))
	assert.Equal(t, StringList{}, l)
}

func TestExtraListRoundTrip(t *testing.T) {
	l := ExtraList{{Name: "Cheddar", Price: 3.5}}
	v, err := l.Value()
	assert.NoError(t, err)

	var back ExtraList
	assert.NoError(t, back.Scan(v))
	assert.Equal(t, l, back)
}

func TestExtraListScanMalformed(t *testing.T) {
	var l ExtraList
	assert.NoError(t, l.Scan(`[{"name":`))
	assert.Equal(t, ExtraList{}, l)
}

func TestNormalizePaymentMethod(t *testing.T) {
	assert.Equal(t, PaymentPix, NormalizePaymentMethod("PIX"))
	assert.Equal(t, PaymentCard, NormalizePaymentMethod(" card "))
	assert.Equal(t, PaymentCash, NormalizePaymentMethod("cash"))
	// Anything outside the enum falls back to cash.
	assert.Equal(t, PaymentCash, NormalizePaymentMethod("dinheiro"))
	assert.Equal(t, PaymentCash, NormalizePaymentMethod(""))
}

func TestNormalizeOrderType(t *testing.T) {
	assert.Equal(t, OrderTypeDelivery, NormalizeOrderType("delivery"))
	assert.Equal(t, OrderTypeTakeout, NormalizeOrderType("Takeout"))
	assert.Equal(t, OrderTypeLocal, NormalizeOrderType(""))
	assert.Equal(t, OrderTypeLocal, NormalizeOrderType("drive-thru"))
}
