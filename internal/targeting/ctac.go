// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package targeting

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-wu-catalog/models"
)

const (
	appOS    = "WU_OS"
	appStore = "WU_STORE"

	releaseTypeRetail = "Retail"
)

// ProfileInput is everything BuildProfile needs to describe one device.
type ProfileInput struct {
	Sku                  models.OSSkuID
	Version              string
	Machine              models.MachineType
	Ring                 string
	FlightingBranch      string
	BranchReadinessLevel string
	CurrentBranch        string
	ReleaseType          string

	IsStore                bool
	IsVBSEnabled           bool
	SyncCurrentVersionOnly bool

	// Label is carried into the profile for logs and persistence only.
	Label string
}

// familyTriple is the (install type, reporting product family, device family)
// selected for a SKU.
type familyTriple struct {
	installType  string
	reportingPFN string
	deviceFamily string
	oneCore      bool
}

var (
	clientFamily = familyTriple{installType: "Client", reportingPFN: "Client.OS.rs2", deviceFamily: "Windows.Desktop"}

	exoticFamilies = map[models.OSSkuID]familyTriple{
		models.SkuHolographic: {installType: "FactoryOS", reportingPFN: "HOLOLENS.OS.rs2", deviceFamily: "Windows.Holographic"},
		models.SkuHubOS:       {installType: "FactoryOS", reportingPFN: "HUBOS.OS.rs2", deviceFamily: "Windows.Team"},
		models.SkuAndromeda:   {installType: "FactoryOS", reportingPFN: "WCOSDEVICE2.OS.rs2", deviceFamily: "Windows.Core", oneCore: true},
		models.SkuLite:        {installType: "FactoryOS", reportingPFN: "WCOSDEVICE0.OS.rs2", deviceFamily: "Windows.Core", oneCore: true},
		models.SkuTurbineOS:   {installType: "FactoryOS", reportingPFN: "WCOSDEVICE1.OS.rs2", deviceFamily: "Windows.Core", oneCore: true},

		models.SkuIoTUAP:           {installType: "IoTUAP", reportingPFN: "IoTCore.OS.rs2", deviceFamily: "Windows.IoTUAP"},
		models.SkuIoTUAPCommercial: {installType: "IoTUAP", reportingPFN: "IoTCore.OS.rs2", deviceFamily: "Windows.IoTUAP"},
	}
)

// selectFamily applies the SKU precedence: the exotic device families first,
// then server detection by SKU name, then the PPI team device, then desktop.
func selectFamily(sku models.OSSkuID) familyTriple {
	if f, ok := exoticFamilies[sku]; ok {
		return f
	}
	if sku.IsServerCore() {
		return familyTriple{installType: "Server Core", reportingPFN: "Server.OS", deviceFamily: "Windows.Server"}
	}
	if sku.IsServer() {
		return familyTriple{installType: "Server", reportingPFN: "Server.OS", deviceFamily: "Windows.Server"}
	}
	if sku == models.SkuPPIPro {
		f := clientFamily
		f.deviceFamily = "Windows.Team"
		return f
	}
	return clientFamily
}

// BuildProfile encodes a device description into the attribute strings sent
// with every catalog query. It is deterministic and never fails; an unknown
// machine type yields an empty OSArchitecture token.
func BuildProfile(in ProfileInput) models.TargetingProfile {
	family := selectFamily(in.Sku)
	arch := strings.ToUpper(in.Machine.String())

	flighting := "1"
	if strings.EqualFold(in.Ring, releaseTypeRetail) {
		flighting = "0"
	}

	app := appOS
	if in.IsStore {
		app = appStore
	}

	attrs := newAttributeList()
	attrs.add("IsContainerMgrInstalled", "1")
	attrs.add("FlightRing", in.Ring)
	attrs.add("TelemetryLevel", "3")
	attrs.add("HidOverGattReg", `C:\WINDOWS\System32\DriverStore\FileRepository\hidbthle.inf_amd64_0fc6b7cd4ccbc55c\Microsoft.Bluetooth.Profiles.HidOverGatt.dll`)
	attrs.add("AppVer", "0.0.0.0")
	attrs.add("IsAutopilotRegistered", "0")
	attrs.add("ProcessorIdentifier", "Intel64 Family 6 Model 151 Stepping 2")
	attrs.add("OEMModel", "RM-1085_1045")
	attrs.add("ProcessorManufacturer", "GenuineIntel")
	attrs.add("InstallDate", "1577722757")
	attrs.add("OEMModelBaseBoard", "OEM Board Name")
	attrs.add("BranchReadinessLevel", in.BranchReadinessLevel)
	attrs.add("DataExpDateEpoch_20H1", "0")
	attrs.add("IsCloudDomainJoined", "0")
	attrs.add("Bios", "2019")
	attrs.add("DchuAmdGrphicsVerified", "1")
	attrs.add("DchuNvidiaGrphicsVerified", "1")
	attrs.add("DefaultUserRegion", "244")
	attrs.add("IsFlightingEnabled", flighting)
	attrs.add("IsWDAGEnabled", "1")
	attrs.add("UpdateOfferedDays", "0")
	attrs.add("InstallLanguage", "en-US")
	attrs.add("OSArchitecture", arch)
	attrs.add("FlightingBranchName", in.FlightingBranch)
	attrs.add("OSUILocale", "en-US")
	attrs.add("DeviceFamily", family.deviceFamily)
	attrs.add("UpgEx_20H1", "Green")
	attrs.add("WuClientVer", in.Version)
	attrs.add("OSSkuId", fmt.Sprintf("%d", int(in.Sku)))
	attrs.add("App", app)
	attrs.add("InstallationType", family.installType)
	attrs.add("OSVersion", in.Version)
	attrs.add("CurrentBranch", in.CurrentBranch)
	attrs.add("ReleaseType", in.ReleaseType)
	attrs.add("GStatus_20H1", "2")
	attrs.add("IsDeviceRetailDemo", "0")
	attrs.add("ActivationChannel", "Retail")
	attrs.add("TPMVersion", "2")
	attrs.add("SecureBootCapable", "1")
	attrs.add("UEFISecureBootEnabled", "1")
	attrs.add("Free", "gt64")
	attrs.add("FirmwareVersion", "7.00")

	if in.Sku.IsServer() {
		attrs.add("BlockFeatureUpdates", "1")
	}
	if family.oneCore {
		attrs.add("OneCoreFwV", "501.0.0.0")
		attrs.add("OneCoreSwV", "0.0.0.0")
		attrs.add("OneCoreManufacturerModelName", "Microsoft Corporation")
		attrs.add("OneCoreManufacturer", "Microsoft Corporation")
		attrs.add("OneCoreOperatorName", "000-88")
	}
	if in.IsVBSEnabled {
		attrs.add("VBSState", "2")
	}

	products := ""
	if !in.IsStore {
		products = fmt.Sprintf("PN=%s.%s&Branch=%s&PrimaryOSProduct=1&Repairable=1&V=%s;",
			family.reportingPFN, in.Machine.String(), in.CurrentBranch, in.Version)
	}

	return models.TargetingProfile{
		DeviceAttributes:       attrs.String(),
		CallerAttributes:       callerAttributes(in.IsStore),
		Products:               products,
		SyncCurrentVersionOnly: in.SyncCurrentVersionOnly,
		Ring:                   in.Label,
		Sku:                    in.Sku,
	}
}

func callerAttributes(store bool) string {
	if store {
		return "E:Acquisition=1&Id=Acquisition%3BMicrosoft.WindowsStore_8wekyb3d8bbwe&"
	}
	return "E:Interactive=1&IsSeeker=1&Acquisition=1&SheddingAware=1&Id=UpdateOrchestrator&"
}

// attributeList keeps insertion order; the server compares the encoded
// string, not a parsed map.
type attributeList struct {
	b strings.Builder
}

func newAttributeList() *attributeList {
	l := &attributeList{}
	l.b.WriteString("E:")
	return l
}

func (l *attributeList) add(key, value string) {
	if l.b.Len() > len("E:") {
		l.b.WriteByte('&')
	}
	l.b.WriteString(key)
	l.b.WriteByte('=')
	l.b.WriteString(value)
}

func (l *attributeList) String() string {
	return l.b.String()
}
