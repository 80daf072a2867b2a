package models

import "strings"

// MachineType is the PE machine architecture of the device being targeted.
type MachineType uint16

const (
	MachineUnknown MachineType = 0
	MachineX86     MachineType = 0x014c
	MachineARM     MachineType = 0x01c4
	MachineAMD64   MachineType = 0x8664
	MachineARM64   MachineType = 0xaa64
)

var machineNames = map[MachineType]string{
	MachineX86:   "x86",
	MachineARM:   "arm",
	MachineAMD64: "amd64",
	MachineARM64: "arm64",
}

// String returns the lowercase architecture token ("amd64"). Unknown
// architectures yield an empty string.
func (m MachineType) String() string {
	return machineNames[m]
}

// ParseMachineType resolves an architecture token such as "amd64" or "ARM64".
func ParseMachineType(s string) (MachineType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for m, name := range machineNames {
		if name == s {
			return m, true
		}
	}
	return MachineUnknown, false
}
