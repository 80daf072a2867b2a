package adapter

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTicket(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sign := func(claims jwt.MapClaims) string {
		s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name    string
		ticket  string
		wantErr bool
	}{
		{name: "empty", ticket: ""},
		{name: "opaque", ticket: "t=EwAYAq1DBAAU"},
		{name: "jwt without exp", ticket: sign(jwt.MapClaims{"sub": "x"})},
		{name: "jwt valid", ticket: sign(jwt.MapClaims{"exp": now.Add(time.Hour).Unix()})},
		{name: "jwt expired", ticket: sign(jwt.MapClaims{"exp": now.Add(-time.Minute).Unix()}), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkTicket(tt.ticket, now)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTicketExpired)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCorrelationVector_Format(t *testing.T) {
	cv := newCorrelationVector()

	first := cv.Next()
	second := cv.Next()

	assert.Len(t, cv.base, 16)
	assert.Equal(t, cv.base+".1", first)
	assert.Equal(t, cv.base+".2", second)
	assert.NotEqual(t, cv.base, newCorrelationVector().base)
}
