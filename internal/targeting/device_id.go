package targeting

import (
	"crypto/sha1"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/unicode"
)

// chidNamespace is hashed in its canonical big-endian byte order.
var chidNamespace = uuid.MustParse("70ffd812-4c7f-4c7d-0000-000000000000")

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DeriveDeviceID computes the computer hardware id for the given vendor and
// model strings. The result is a name-based (version 5) GUID over the
// namespace followed by the UTF-16LE encoding of the "&"-joined input.
func DeriveDeviceID(manufacturer, family, productName, skuNumber string) string {
	name := strings.ToValidUTF8(strings.Join([]string{manufacturer, family, productName, skuNumber}, "&"), "\uFFFD")

	// valid UTF-8 always encodes
	encoded, _ := utf16le.NewEncoder().Bytes([]byte(name))

	return uuid.NewHash(sha1.New(), chidNamespace, encoded, 5).String()
}

