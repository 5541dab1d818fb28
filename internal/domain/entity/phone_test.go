package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"formatted mobile", "(11) 99999-8888", "11999998888"},
		{"country prefix kept", "+55 11 99999-8888", "5511999998888"},
		{"already canonical", "11999998888", "11999998888"},
		{"letters stripped", "tel: 11 3333-4444", "1133334444"},
		{"empty", "", ""},
		{"only noise", "abc -()", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizePhone(tc.raw))
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	once := NormalizePhone("(11) 99999-8888")
	assert.Equal(t, once, NormalizePhone(once))
}

func TestParsePhone(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"landline ten digits", "(11) 3333-4444", "1133334444", true},
		{"mobile eleven digits", "11 99999-8888", "11999998888", true},
		{"nine digits rejected", "113333444", "", false},
		{"twelve digits rejected", "551199999888", "", false},
		{"empty rejected", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParsePhone(tc.raw)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
