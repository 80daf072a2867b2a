package adapter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripDeclaration(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "with declaration", in: `<?xml version="1.0" encoding="UTF-8"?>` + "\n<a/>", want: "<a/>"},
		{name: "leading whitespace", in: "  \n<?xml version=\"1.0\"?><a/>", want: "<a/>"},
		{name: "byte order mark", in: "\ufeff<?xml version=\"1.0\"?><a/>", want: "<a/>"},
		{name: "no declaration", in: "<a/>", want: "<a/>"},
		{name: "unterminated", in: "<?xml <a/>", want: "<?xml <a/>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(stripDeclaration([]byte(tt.in))))
		})
	}
}

func TestNewEnvelope_Header(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	env := newEnvelope(envelopeParams{
		op:        opSyncUpdates,
		endpoint:  "https://fe3.example",
		messageID: "urn:uuid:abc",
		ticket:    "t=1",
		now:       now,
	}, syncUpdatesBody{})

	assert.Equal(t, actionPrefix+"SyncUpdates", env.Header.Action.Value)
	assert.Equal(t, "urn:uuid:abc", env.Header.MessageID)
	assert.Equal(t, "https://fe3.example/ClientWebService/client.asmx", env.Header.To.Value)
	assert.Equal(t, "2024-05-01T12:00:00.000Z", env.Header.Security.Timestamp.Created)
	assert.Equal(t, "2024-05-01T12:05:00.000Z", env.Header.Security.Timestamp.Expires)
	require.NotNil(t, env.Header.Security.Tickets)
	assert.Equal(t, "t=1", env.Header.Security.Tickets.TicketTypes[0].User)
	assert.Equal(t, "AAD", env.Header.Security.Tickets.TicketTypes[1].Name)
}

func TestNewEnvelope_GetCookieHasNoTickets(t *testing.T) {
	env := newEnvelope(envelopeParams{op: opGetCookie, now: time.Now()}, getCookieBody{})

	assert.Nil(t, env.Header.Security.Tickets)
}

func TestMarshalEnvelope_SecuredTarget(t *testing.T) {
	env := newEnvelope(envelopeParams{
		op:       opGetExtendedUpdateInfo2,
		endpoint: "https://fe3.example",
		now:      time.Now(),
	}, getExtendedUpdateInfo2Body{})

	raw, err := marshalEnvelope(env)

	require.NoError(t, err)
	body := string(raw)
	assert.Contains(t, body, `<s:Envelope xmlns:a="`+nsAddressing+`" xmlns:s="`+nsSOAP+`">`)
	assert.Contains(t, body, "https://fe3.example/ClientWebService/client.asmx/secured</a:To>")
	assert.Contains(t, body, `<GetExtendedUpdateInfo2 xmlns="`+nsClientWS+`">`)
	assert.NotContains(t, body, "<?xml")
}

func TestParseFault(t *testing.T) {
	assert.Equal(t, "s:Receiver: InvalidCookie", parseFault([]byte(soapResponse(faultBody))))
	assert.Equal(t, "", parseFault([]byte(soapResponse(cookieResponse))))
	assert.Equal(t, "", parseFault([]byte("not xml")))
}

func TestOperationPaths(t *testing.T) {
	assert.Equal(t, clientPath, opGetCookie.path())
	assert.Equal(t, clientPath, opSyncUpdates.path())
	assert.Equal(t, securedPath, opGetExtendedUpdateInfo.path())
	assert.Equal(t, securedPath, opGetExtendedUpdateInfo2.path())
}
