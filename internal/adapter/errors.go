package adapter

import "errors"

var (
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrUnexpectedStatus  = errors.New("unexpected http status")
	ErrMalformedResponse = errors.New("malformed response")
	ErrSOAPFault         = errors.New("soap fault")
	ErrTicketExpired     = errors.New("account ticket expired")
	ErrCircuitOpen       = errors.New("catalog service circuit open")
	ErrInvalidEndpoint   = errors.New("invalid catalog endpoint")
)
