package adapter

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
	"time"
)

const (
	soapTimeLayout = "2006-01-02T15:04:05.000Z"

	clientPath  = "/ClientWebService/client.asmx"
	securedPath = clientPath + "/secured"

	// fixed values sent by the update agent in GetCookie
	oldCookieExpiration = "2016-07-27T07:18:09Z"
	lastChange          = "2015-10-21T17:01:07.1472913Z"
	protocolVersion     = "2.0"
)

// operation describes one remote method and the endpoint variant it uses.
type operation struct {
	name    string
	secured bool
}

var (
	opGetCookie              = operation{name: "GetCookie"}
	opSyncUpdates            = operation{name: "SyncUpdates"}
	opGetExtendedUpdateInfo  = operation{name: "GetExtendedUpdateInfo", secured: true}
	opGetExtendedUpdateInfo2 = operation{name: "GetExtendedUpdateInfo2", secured: true}
)

func (o operation) action() string {
	return actionPrefix + o.name
}

func (o operation) path() string {
	if o.secured {
		return securedPath
	}
	return clientPath
}

// envelopeParams carries the per-call header values.
type envelopeParams struct {
	op        operation
	endpoint  string
	messageID string
	ticket    string
	now       time.Time
}

func newEnvelope(p envelopeParams, payload any) requestEnvelope {
	env := requestEnvelope{
		XMLNSA: nsAddressing,
		XMLNSS: nsSOAP,
		Header: header{
			Action:    mustUnderstandValue{MustUnderstand: mustUnderstandOn, Value: p.op.action()},
			MessageID: p.messageID,
			To:        mustUnderstandValue{MustUnderstand: mustUnderstandOn, Value: p.endpoint + p.op.path()},
			Security: security{
				MustUnderstand: mustUnderstandOn,
				XMLNSO:         nsSecext,
				Timestamp: timestamp{
					Created: p.now.UTC().Format(soapTimeLayout),
					Expires: p.now.UTC().Add(5 * time.Minute).Format(soapTimeLayout),
				},
			},
		},
		Body: body{Payload: payload},
	}

	if p.op != opGetCookie {
		env.Header.Security.Tickets = &windowsUpdateTicketsToken{
			ID:        "ClientMSA",
			XMLNSWSU:  nsUtility,
			XMLNSWUWS: nsWUAuth,
			TicketTypes: []ticketType{
				{Name: "MSA", Version: "1.0", Policy: "MBI_SSL", User: p.ticket},
				{Name: "AAD", Version: "1.0", Policy: "MBI_SSL"},
			},
		}
	}

	return env
}

// marshalEnvelope serializes env and strips any XML declaration, which the
// service rejects.
func marshalEnvelope(env requestEnvelope) ([]byte, error) {
	var buf bytes.Buffer
	if err := xml.NewEncoder(&buf).Encode(env); err != nil {
		return nil, fmt.Errorf("encode %T envelope: %w", env.Body.Payload, err)
	}
	return stripDeclaration(buf.Bytes()), nil
}

// stripDeclaration removes a leading <?xml ...?> processing instruction.
func stripDeclaration(b []byte) []byte {
	trimmed := bytes.TrimLeft(b, " \t\r\n\ufeff")
	if !bytes.HasPrefix(trimmed, []byte("<?xml")) {
		return b
	}
	end := bytes.Index(trimmed, []byte("?>"))
	if end < 0 {
		return b
	}
	return bytes.TrimLeft(trimmed[end+2:], " \t\r\n")
}

// unmarshalEnvelope decodes a response body into v.
func unmarshalEnvelope(raw []byte, v any) error {
	if err := xml.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// parseFault extracts the reason of a SOAP fault, or "" when raw is not one.
func parseFault(raw []byte) string {
	var f faultResponse
	if err := xml.Unmarshal(raw, &f); err != nil {
		return ""
	}
	reason := strings.TrimSpace(f.Reason)
	code := strings.TrimSpace(f.Code)
	switch {
	case reason != "" && code != "":
		return code + ": " + reason
	case reason != "":
		return reason
	default:
		return code
	}
}
