package adapter

import (
	"encoding/xml"

	"github.com/MKhiriev/go-wu-catalog/models"
)

const (
	nsSOAP           = "http://www.w3.org/2003/05/soap-envelope"
	nsAddressing     = "http://www.w3.org/2005/08/addressing"
	nsSecext         = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd"
	nsUtility        = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-utility-1.0.xsd"
	nsWUAuth         = "http://schemas.microsoft.com/msus/2014/10/WindowsUpdateAuthorization"
	nsClientWS       = "http://www.microsoft.com/SoftwareDistribution/Server/ClientWebService"
	actionPrefix     = nsClientWS + "/"
	mustUnderstandOn = "1"
)

// requestEnvelope is the outgoing SOAP envelope. The header is shared by all
// operations; Body holds exactly one of the operation payload types below.
type requestEnvelope struct {
	XMLName xml.Name `xml:"s:Envelope"`
	XMLNSA  string   `xml:"xmlns:a,attr"`
	XMLNSS  string   `xml:"xmlns:s,attr"`
	Header  header   `xml:"s:Header"`
	Body    body     `xml:"s:Body"`
}

type body struct {
	Payload any
}

type header struct {
	Action    mustUnderstandValue `xml:"a:Action"`
	MessageID string              `xml:"a:MessageID"`
	To        mustUnderstandValue `xml:"a:To"`
	Security  security            `xml:"o:Security"`
}

type mustUnderstandValue struct {
	MustUnderstand string `xml:"s:mustUnderstand,attr"`
	Value          string `xml:",chardata"`
}

type security struct {
	MustUnderstand string                     `xml:"s:mustUnderstand,attr"`
	XMLNSO         string                     `xml:"xmlns:o,attr"`
	Timestamp      timestamp                  `xml:"http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-utility-1.0.xsd Timestamp"`
	Tickets        *windowsUpdateTicketsToken `xml:"wuws:WindowsUpdateTicketsToken,omitempty"`
}

type timestamp struct {
	Created string `xml:"Created"`
	Expires string `xml:"Expires"`
}

type windowsUpdateTicketsToken struct {
	ID          string       `xml:"wsu:id,attr"`
	XMLNSWSU    string       `xml:"xmlns:wsu,attr"`
	XMLNSWUWS   string       `xml:"xmlns:wuws,attr"`
	TicketTypes []ticketType `xml:"TicketType"`
}

type ticketType struct {
	Name    string `xml:"Name,attr"`
	Version string `xml:"Version,attr"`
	Policy  string `xml:"Policy,attr"`
	User    string `xml:"User,omitempty"`
}

// GetCookie

type getCookieBody struct {
	XMLName         xml.Name  `xml:"http://www.microsoft.com/SoftwareDistribution/Server/ClientWebService GetCookie"`
	OldCookie       oldCookie `xml:"oldCookie"`
	LastChange      string    `xml:"lastChange"`
	CurrentTime     string    `xml:"currentTime"`
	ProtocolVersion string    `xml:"protocolVersion"`
}

type oldCookie struct {
	Expiration string `xml:"Expiration"`
}

// SyncUpdates

type syncUpdatesBody struct {
	XMLName    xml.Name             `xml:"http://www.microsoft.com/SoftwareDistribution/Server/ClientWebService SyncUpdates"`
	Cookie     Cookie               `xml:"cookie"`
	Parameters syncUpdateParameters `xml:"parameters"`
}

type syncUpdateParameters struct {
	ExpressQuery                  bool                         `xml:"ExpressQuery"`
	InstalledNonLeafUpdateIDs     []string                     `xml:"InstalledNonLeafUpdateIDs>int"`
	OtherCachedUpdateIDs          []string                     `xml:"OtherCachedUpdateIDs>int"`
	SkipSoftwareSync              bool                         `xml:"SkipSoftwareSync"`
	NeedTwoGroupOutOfScopeUpdates bool                         `xml:"NeedTwoGroupOutOfScopeUpdates"`
	FilterAppCategoryIDs          *filterAppCategoryIDs        `xml:"FilterAppCategoryIds,omitempty"`
	AlsoPerformRegularSync        bool                         `xml:"AlsoPerformRegularSync"`
	ComputerSpec                  string                       `xml:"ComputerSpec"`
	ExtendedUpdateInfoParameters  extendedUpdateInfoParameters `xml:"ExtendedUpdateInfoParameters"`
	ClientPreferredLanguages      []string                     `xml:"ClientPreferredLanguages>string"`
	ProductsParameters            productsParameters           `xml:"ProductsParameters"`
}

type filterAppCategoryIDs struct {
	CategoryIdentifiers []categoryIdentifier `xml:"CategoryIdentifier"`
}

type categoryIdentifier struct {
	ID string `xml:"Id"`
}

type extendedUpdateInfoParameters struct {
	XMLUpdateFragmentTypes []string `xml:"XmlUpdateFragmentTypes>XmlUpdateFragmentType"`
	Locales                []string `xml:"Locales>string"`
}

type productsParameters struct {
	SyncCurrentVersionOnly bool   `xml:"SyncCurrentVersionOnly"`
	DeviceAttributes       string `xml:"DeviceAttributes"`
	CallerAttributes       string `xml:"CallerAttributes"`
	Products               string `xml:"Products"`
}

// GetExtendedUpdateInfo

type getExtendedUpdateInfoBody struct {
	XMLName          xml.Name `xml:"http://www.microsoft.com/SoftwareDistribution/Server/ClientWebService GetExtendedUpdateInfo"`
	Cookie           Cookie   `xml:"cookie"`
	RevisionIDs      []string `xml:"revisionIDs>int"`
	InfoTypes        []string `xml:"infoTypes>XmlUpdateFragmentType"`
	Locales          []string `xml:"locales>string"`
	DeviceAttributes string   `xml:"deviceAttributes"`
}

// GetExtendedUpdateInfo2

type getExtendedUpdateInfo2Body struct {
	XMLName          xml.Name         `xml:"http://www.microsoft.com/SoftwareDistribution/Server/ClientWebService GetExtendedUpdateInfo2"`
	UpdateIDs        []updateIdentity `xml:"updateIDs>UpdateIdentity"`
	InfoTypes        []string         `xml:"infoTypes>XmlUpdateFragmentType"`
	DeviceAttributes string           `xml:"deviceAttributes"`
}

type updateIdentity struct {
	UpdateID       string `xml:"UpdateID"`
	RevisionNumber string `xml:"RevisionNumber"`
}

// Responses are matched by local name only.

type getCookieResponse struct {
	XMLName xml.Name `xml:"Envelope"`
	Result  *Cookie  `xml:"Body>GetCookieResponse>GetCookieResult"`
}

type syncUpdatesResponse struct {
	XMLName xml.Name           `xml:"Envelope"`
	Result  *syncUpdatesResult `xml:"Body>SyncUpdatesResponse>SyncUpdatesResult"`
}

type syncUpdatesResult struct {
	NewUpdates []models.RawUpdateInfo `xml:"NewUpdates>UpdateInfo"`
	Updates    []models.RawUpdate     `xml:"ExtendedUpdateInfo>Updates>Update"`
	NewCookie  Cookie                 `xml:"NewCookie"`
	Truncated  bool                   `xml:"Truncated"`
}

type getExtendedUpdateInfoResponse struct {
	XMLName xml.Name                     `xml:"Envelope"`
	Result  *getExtendedUpdateInfoResult `xml:"Body>GetExtendedUpdateInfoResponse>GetExtendedUpdateInfoResult"`
}

type getExtendedUpdateInfoResult struct {
	Updates       []models.RawUpdate `xml:"Updates>Update"`
	FileLocations []FileLocation      `xml:"FileLocations>FileLocation"`
}

type getExtendedUpdateInfo2Response struct {
	XMLName xml.Name                      `xml:"Envelope"`
	Result  *getExtendedUpdateInfo2Result `xml:"Body>GetExtendedUpdateInfo2Response>GetExtendedUpdateInfo2Result"`
}

type getExtendedUpdateInfo2Result struct {
	FileLocations []FileLocation `xml:"FileLocations>FileLocation"`
}

type faultResponse struct {
	XMLName xml.Name `xml:"Envelope"`
	Code    string   `xml:"Body>Fault>Code>Value"`
	Reason  string   `xml:"Body>Fault>Reason>Text"`
}
