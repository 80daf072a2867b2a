package models

import "strings"

// OSSkuID is the numeric Windows edition identifier reported to the update
// service as OSSkuId. Names follow the PRODUCT_* constants.
type OSSkuID int

const (
	SkuUndefined                        OSSkuID = 0x00
	SkuUltimate                         OSSkuID = 0x01
	SkuHomeBasic                        OSSkuID = 0x02
	SkuHomePremium                      OSSkuID = 0x03
	SkuEnterprise                       OSSkuID = 0x04
	SkuHomeBasicN                       OSSkuID = 0x05
	SkuBusiness                         OSSkuID = 0x06
	SkuStandardServer                   OSSkuID = 0x07
	SkuDatacenterServer                 OSSkuID = 0x08
	SkuSmallBusinessServer              OSSkuID = 0x09
	SkuEnterpriseServer                 OSSkuID = 0x0A
	SkuStarter                          OSSkuID = 0x0B
	SkuDatacenterServerCore             OSSkuID = 0x0C
	SkuStandardServerCore               OSSkuID = 0x0D
	SkuEnterpriseServerCore             OSSkuID = 0x0E
	SkuEnterpriseServerIA64             OSSkuID = 0x0F
	SkuBusinessN                        OSSkuID = 0x10
	SkuWebServer                        OSSkuID = 0x11
	SkuClusterServer                    OSSkuID = 0x12
	SkuHomeServer                       OSSkuID = 0x13
	SkuStorageExpressServer             OSSkuID = 0x14
	SkuStorageStandardServer            OSSkuID = 0x15
	SkuStorageWorkgroupServer           OSSkuID = 0x16
	SkuStorageEnterpriseServer          OSSkuID = 0x17
	SkuServerForSmallBusiness           OSSkuID = 0x18
	SkuSmallBusinessServerPremium       OSSkuID = 0x19
	SkuHomePremiumN                     OSSkuID = 0x1A
	SkuEnterpriseN                      OSSkuID = 0x1B
	SkuUltimateN                        OSSkuID = 0x1C
	SkuWebServerCore                    OSSkuID = 0x1D
	SkuMediumBusinessServerManagement   OSSkuID = 0x1E
	SkuMediumBusinessServerSecurity     OSSkuID = 0x1F
	SkuMediumBusinessServerMessaging    OSSkuID = 0x20
	SkuServerFoundation                 OSSkuID = 0x21
	SkuHomePremiumServer                OSSkuID = 0x22
	SkuServerForSmallBusinessV          OSSkuID = 0x23
	SkuStandardServerV                  OSSkuID = 0x24
	SkuDatacenterServerV                OSSkuID = 0x25
	SkuEnterpriseServerV                OSSkuID = 0x26
	SkuDatacenterServerCoreV            OSSkuID = 0x27
	SkuStandardServerCoreV              OSSkuID = 0x28
	SkuEnterpriseServerCoreV            OSSkuID = 0x29
	SkuHyperV                           OSSkuID = 0x2A
	SkuStorageExpressServerCore         OSSkuID = 0x2B
	SkuStorageStandardServerCore        OSSkuID = 0x2C
	SkuStorageWorkgroupServerCore       OSSkuID = 0x2D
	SkuStorageEnterpriseServerCore      OSSkuID = 0x2E
	SkuStarterN                         OSSkuID = 0x2F
	SkuProfessional                     OSSkuID = 0x30
	SkuProfessionalN                    OSSkuID = 0x31
	SkuSBSolutionServer                 OSSkuID = 0x32
	SkuServerForSBSolutions             OSSkuID = 0x33
	SkuStandardServerSolutions          OSSkuID = 0x34
	SkuStandardServerSolutionsCore      OSSkuID = 0x35
	SkuSBSolutionServerEM               OSSkuID = 0x36
	SkuServerForSBSolutionsEM           OSSkuID = 0x37
	SkuSolutionEmbeddedServer           OSSkuID = 0x38
	SkuSolutionEmbeddedServerCore       OSSkuID = 0x39
	SkuProfessionalEmbedded             OSSkuID = 0x3A
	SkuEssentialBusinessServerMgmt      OSSkuID = 0x3B
	SkuEssentialBusinessServerAddl      OSSkuID = 0x3C
	SkuEssentialBusinessServerMgmtSvc   OSSkuID = 0x3D
	SkuEssentialBusinessServerAddlSvc   OSSkuID = 0x3E
	SkuSmallBusinessServerPremiumCore   OSSkuID = 0x3F
	SkuClusterServerV                   OSSkuID = 0x40
	SkuEmbedded                         OSSkuID = 0x41
	SkuStarterE                         OSSkuID = 0x42
	SkuHomeBasicE                       OSSkuID = 0x43
	SkuHomePremiumE                     OSSkuID = 0x44
	SkuProfessionalE                    OSSkuID = 0x45
	SkuEnterpriseE                      OSSkuID = 0x46
	SkuUltimateE                        OSSkuID = 0x47
	SkuEnterpriseEvaluation             OSSkuID = 0x48
	SkuMultipointStandardServer         OSSkuID = 0x4C
	SkuMultipointPremiumServer          OSSkuID = 0x4D
	SkuStandardEvaluationServer         OSSkuID = 0x4F
	SkuDatacenterEvaluationServer       OSSkuID = 0x50
	SkuEnterpriseNEvaluation            OSSkuID = 0x54
	SkuEmbeddedAutomotive               OSSkuID = 0x55
	SkuEmbeddedIndustryA                OSSkuID = 0x56
	SkuThinPC                           OSSkuID = 0x57
	SkuEmbeddedA                        OSSkuID = 0x58
	SkuEmbeddedIndustry                 OSSkuID = 0x59
	SkuEmbeddedE                        OSSkuID = 0x5A
	SkuEmbeddedIndustryE                OSSkuID = 0x5B
	SkuEmbeddedIndustryAE               OSSkuID = 0x5C
	SkuStorageWorkgroupEvaluationServer OSSkuID = 0x5F
	SkuStorageStandardEvaluationServer  OSSkuID = 0x60
	SkuCoreARM                          OSSkuID = 0x61
	SkuCoreN                            OSSkuID = 0x62
	SkuCoreCountrySpecific              OSSkuID = 0x63
	SkuCoreSingleLanguage               OSSkuID = 0x64
	SkuCore                             OSSkuID = 0x65
	SkuProfessionalWMC                  OSSkuID = 0x67
	SkuMobileCore                       OSSkuID = 0x68
	SkuEmbeddedIndustryEval             OSSkuID = 0x69
	SkuEmbeddedIndustryEEval            OSSkuID = 0x6A
	SkuEmbeddedEval                     OSSkuID = 0x6B
	SkuEmbeddedEEval                    OSSkuID = 0x6C
	SkuNanoServer                       OSSkuID = 0x6D
	SkuCloudStorageServer               OSSkuID = 0x6E
	SkuCoreConnected                    OSSkuID = 0x6F
	SkuProfessionalStudent              OSSkuID = 0x70
	SkuCoreConnectedN                   OSSkuID = 0x71
	SkuProfessionalStudentN             OSSkuID = 0x72
	SkuCoreConnectedSingleLanguage      OSSkuID = 0x73
	SkuCoreConnectedCountrySpecific     OSSkuID = 0x74
	SkuConnectedCar                     OSSkuID = 0x75
	SkuIndustryHandheld                 OSSkuID = 0x76
	SkuPPIPro                           OSSkuID = 0x77
	SkuARM64Server                      OSSkuID = 0x78
	SkuEducation                        OSSkuID = 0x79
	SkuEducationN                       OSSkuID = 0x7A
	SkuIoTUAP                           OSSkuID = 0x7B
	SkuCloudHostInfrastructureServer    OSSkuID = 0x7C
	SkuEnterpriseS                      OSSkuID = 0x7D
	SkuEnterpriseSN                     OSSkuID = 0x7E
	SkuProfessionalS                    OSSkuID = 0x7F
	SkuProfessionalSN                   OSSkuID = 0x80
	SkuEnterpriseSEvaluation            OSSkuID = 0x81
	SkuEnterpriseSNEvaluation           OSSkuID = 0x82
	SkuIoTUAPCommercial                 OSSkuID = 0x83
	SkuMobileEnterprise                 OSSkuID = 0x85
	SkuHolographic                      OSSkuID = 0x87
	SkuHolographicBusiness              OSSkuID = 0x88
	SkuProSingleLanguage                OSSkuID = 0x8A
	SkuProChina                         OSSkuID = 0x8B
	SkuEnterpriseSubscription           OSSkuID = 0x8C
	SkuEnterpriseSubscriptionN          OSSkuID = 0x8D
	SkuDatacenterNanoServer             OSSkuID = 0x8F
	SkuStandardNanoServer               OSSkuID = 0x90
	SkuDatacenterAServerCore            OSSkuID = 0x91
	SkuStandardAServerCore              OSSkuID = 0x92
	SkuDatacenterWSServerCore           OSSkuID = 0x93
	SkuStandardWSServerCore             OSSkuID = 0x94
	SkuUtilityVM                        OSSkuID = 0x95
	SkuDatacenterEvaluationServerCore   OSSkuID = 0x9F
	SkuStandardEvaluationServerCore     OSSkuID = 0xA0
	SkuProWorkstation                   OSSkuID = 0xA1
	SkuProWorkstationN                  OSSkuID = 0xA2
	SkuProForEducation                  OSSkuID = 0xA4
	SkuProForEducationN                 OSSkuID = 0xA5
	SkuAzureServerCore                  OSSkuID = 0xA7
	SkuAzureNanoServer                  OSSkuID = 0xA8
	SkuEnterpriseG                      OSSkuID = 0xAB
	SkuEnterpriseGN                     OSSkuID = 0xAC
	SkuServerRdsh                       OSSkuID = 0xAF
	SkuCloud                            OSSkuID = 0xB2
	SkuCloudN                           OSSkuID = 0xB3
	SkuHubOS                            OSSkuID = 0xB4
	SkuTurbineOS                        OSSkuID = 0xB5
	SkuOneCoreUpdateOS                  OSSkuID = 0xB6
	SkuCloudE                           OSSkuID = 0xB7
	SkuAndromeda                        OSSkuID = 0xB8
	SkuIoTOS                            OSSkuID = 0xB9
	SkuCloudEN                          OSSkuID = 0xBA
	SkuIoTEdgeOS                        OSSkuID = 0xBB
	SkuIoTEnterprise                    OSSkuID = 0xBC
	SkuLite                             OSSkuID = 0xBD
	SkuIoTEnterpriseS                   OSSkuID = 0xBF
	SkuXboxSystemOS                     OSSkuID = 0xC0
	SkuXboxNativeOS                     OSSkuID = 0xC1
	SkuXboxGameOS                       OSSkuID = 0xC2
	SkuXboxEraOS                        OSSkuID = 0xC3
	SkuXboxDurangoHostOS                OSSkuID = 0xC4
	SkuXboxScarlettHostOS               OSSkuID = 0xC5
	SkuXboxKeystone                     OSSkuID = 0xC6
	SkuAzureStackHCIServerCore          OSSkuID = 0xC7
	SkuDatacenterServerAzureEdition     OSSkuID = 0xC8
	SkuDatacenterServerCoreAzureEdition OSSkuID = 0xC9
)

var skuNames = map[OSSkuID]string{
	SkuUndefined:                        "Undefined",
	SkuUltimate:                         "Ultimate",
	SkuHomeBasic:                        "HomeBasic",
	SkuHomePremium:                      "HomePremium",
	SkuEnterprise:                       "Enterprise",
	SkuHomeBasicN:                       "HomeBasicN",
	SkuBusiness:                         "Business",
	SkuStandardServer:                   "StandardServer",
	SkuDatacenterServer:                 "DatacenterServer",
	SkuSmallBusinessServer:              "SmallBusinessServer",
	SkuEnterpriseServer:                 "EnterpriseServer",
	SkuStarter:                          "Starter",
	SkuDatacenterServerCore:             "DatacenterServerCore",
	SkuStandardServerCore:               "StandardServerCore",
	SkuEnterpriseServerCore:             "EnterpriseServerCore",
	SkuEnterpriseServerIA64:             "EnterpriseServerIA64",
	SkuBusinessN:                        "BusinessN",
	SkuWebServer:                        "WebServer",
	SkuClusterServer:                    "ClusterServer",
	SkuHomeServer:                       "HomeServer",
	SkuStorageExpressServer:             "StorageExpressServer",
	SkuStorageStandardServer:            "StorageStandardServer",
	SkuStorageWorkgroupServer:           "StorageWorkgroupServer",
	SkuStorageEnterpriseServer:          "StorageEnterpriseServer",
	SkuServerForSmallBusiness:           "ServerForSmallBusiness",
	SkuSmallBusinessServerPremium:       "SmallBusinessServerPremium",
	SkuHomePremiumN:                     "HomePremiumN",
	SkuEnterpriseN:                      "EnterpriseN",
	SkuUltimateN:                        "UltimateN",
	SkuWebServerCore:                    "WebServerCore",
	SkuMediumBusinessServerManagement:   "MediumBusinessServerManagement",
	SkuMediumBusinessServerSecurity:     "MediumBusinessServerSecurity",
	SkuMediumBusinessServerMessaging:    "MediumBusinessServerMessaging",
	SkuServerFoundation:                 "ServerFoundation",
	SkuHomePremiumServer:                "HomePremiumServer",
	SkuServerForSmallBusinessV:          "ServerForSmallBusinessV",
	SkuStandardServerV:                  "StandardServerV",
	SkuDatacenterServerV:                "DatacenterServerV",
	SkuEnterpriseServerV:                "EnterpriseServerV",
	SkuDatacenterServerCoreV:            "DatacenterServerCoreV",
	SkuStandardServerCoreV:              "StandardServerCoreV",
	SkuEnterpriseServerCoreV:            "EnterpriseServerCoreV",
	SkuHyperV:                           "HyperV",
	SkuStorageExpressServerCore:         "StorageExpressServerCore",
	SkuStorageStandardServerCore:        "StorageStandardServerCore",
	SkuStorageWorkgroupServerCore:       "StorageWorkgroupServerCore",
	SkuStorageEnterpriseServerCore:      "StorageEnterpriseServerCore",
	SkuStarterN:                         "StarterN",
	SkuProfessional:                     "Professional",
	SkuProfessionalN:                    "ProfessionalN",
	SkuSBSolutionServer:                 "SBSolutionServer",
	SkuServerForSBSolutions:             "ServerForSBSolutions",
	SkuStandardServerSolutions:          "StandardServerSolutions",
	SkuStandardServerSolutionsCore:      "StandardServerSolutionsCore",
	SkuSBSolutionServerEM:               "SBSolutionServerEM",
	SkuServerForSBSolutionsEM:           "ServerForSBSolutionsEM",
	SkuSolutionEmbeddedServer:           "SolutionEmbeddedServer",
	SkuSolutionEmbeddedServerCore:       "SolutionEmbeddedServerCore",
	SkuProfessionalEmbedded:             "ProfessionalEmbedded",
	SkuEssentialBusinessServerMgmt:      "EssentialBusinessServerMgmt",
	SkuEssentialBusinessServerAddl:      "EssentialBusinessServerAddl",
	SkuEssentialBusinessServerMgmtSvc:   "EssentialBusinessServerMgmtSvc",
	SkuEssentialBusinessServerAddlSvc:   "EssentialBusinessServerAddlSvc",
	SkuSmallBusinessServerPremiumCore:   "SmallBusinessServerPremiumCore",
	SkuClusterServerV:                   "ClusterServerV",
	SkuEmbedded:                         "Embedded",
	SkuStarterE:                         "StarterE",
	SkuHomeBasicE:                       "HomeBasicE",
	SkuHomePremiumE:                     "HomePremiumE",
	SkuProfessionalE:                    "ProfessionalE",
	SkuEnterpriseE:                      "EnterpriseE",
	SkuUltimateE:                        "UltimateE",
	SkuEnterpriseEvaluation:             "EnterpriseEvaluation",
	SkuMultipointStandardServer:         "MultipointStandardServer",
	SkuMultipointPremiumServer:          "MultipointPremiumServer",
	SkuStandardEvaluationServer:         "StandardEvaluationServer",
	SkuDatacenterEvaluationServer:       "DatacenterEvaluationServer",
	SkuEnterpriseNEvaluation:            "EnterpriseNEvaluation",
	SkuEmbeddedAutomotive:               "EmbeddedAutomotive",
	SkuEmbeddedIndustryA:                "EmbeddedIndustryA",
	SkuThinPC:                           "ThinPC",
	SkuEmbeddedA:                        "EmbeddedA",
	SkuEmbeddedIndustry:                 "EmbeddedIndustry",
	SkuEmbeddedE:                        "EmbeddedE",
	SkuEmbeddedIndustryE:                "EmbeddedIndustryE",
	SkuEmbeddedIndustryAE:               "EmbeddedIndustryAE",
	SkuStorageWorkgroupEvaluationServer: "StorageWorkgroupEvaluationServer",
	SkuStorageStandardEvaluationServer:  "StorageStandardEvaluationServer",
	SkuCoreARM:                          "CoreARM",
	SkuCoreN:                            "CoreN",
	SkuCoreCountrySpecific:              "CoreCountrySpecific",
	SkuCoreSingleLanguage:               "CoreSingleLanguage",
	SkuCore:                             "Core",
	SkuProfessionalWMC:                  "ProfessionalWMC",
	SkuMobileCore:                       "MobileCore",
	SkuEmbeddedIndustryEval:             "EmbeddedIndustryEval",
	SkuEmbeddedIndustryEEval:            "EmbeddedIndustryEEval",
	SkuEmbeddedEval:                     "EmbeddedEval",
	SkuEmbeddedEEval:                    "EmbeddedEEval",
	SkuNanoServer:                       "NanoServer",
	SkuCloudStorageServer:               "CloudStorageServer",
	SkuCoreConnected:                    "CoreConnected",
	SkuProfessionalStudent:              "ProfessionalStudent",
	SkuCoreConnectedN:                   "CoreConnectedN",
	SkuProfessionalStudentN:             "ProfessionalStudentN",
	SkuCoreConnectedSingleLanguage:      "CoreConnectedSingleLanguage",
	SkuCoreConnectedCountrySpecific:     "CoreConnectedCountrySpecific",
	SkuConnectedCar:                     "ConnectedCar",
	SkuIndustryHandheld:                 "IndustryHandheld",
	SkuPPIPro:                           "PPIPro",
	SkuARM64Server:                      "ARM64Server",
	SkuEducation:                        "Education",
	SkuEducationN:                       "EducationN",
	SkuIoTUAP:                           "IoTUAP",
	SkuCloudHostInfrastructureServer:    "CloudHostInfrastructureServer",
	SkuEnterpriseS:                      "EnterpriseS",
	SkuEnterpriseSN:                     "EnterpriseSN",
	SkuProfessionalS:                    "ProfessionalS",
	SkuProfessionalSN:                   "ProfessionalSN",
	SkuEnterpriseSEvaluation:            "EnterpriseSEvaluation",
	SkuEnterpriseSNEvaluation:           "EnterpriseSNEvaluation",
	SkuIoTUAPCommercial:                 "IoTUAPCommercial",
	SkuMobileEnterprise:                 "MobileEnterprise",
	SkuHolographic:                      "Holographic",
	SkuHolographicBusiness:              "HolographicBusiness",
	SkuProSingleLanguage:                "ProSingleLanguage",
	SkuProChina:                         "ProChina",
	SkuEnterpriseSubscription:           "EnterpriseSubscription",
	SkuEnterpriseSubscriptionN:          "EnterpriseSubscriptionN",
	SkuDatacenterNanoServer:             "DatacenterNanoServer",
	SkuStandardNanoServer:               "StandardNanoServer",
	SkuDatacenterAServerCore:            "DatacenterAServerCore",
	SkuStandardAServerCore:              "StandardAServerCore",
	SkuDatacenterWSServerCore:           "DatacenterWSServerCore",
	SkuStandardWSServerCore:             "StandardWSServerCore",
	SkuUtilityVM:                        "UtilityVM",
	SkuDatacenterEvaluationServerCore:   "DatacenterEvaluationServerCore",
	SkuStandardEvaluationServerCore:     "StandardEvaluationServerCore",
	SkuProWorkstation:                   "ProWorkstation",
	SkuProWorkstationN:                  "ProWorkstationN",
	SkuProForEducation:                  "ProForEducation",
	SkuProForEducationN:                 "ProForEducationN",
	SkuAzureServerCore:                  "AzureServerCore",
	SkuAzureNanoServer:                  "AzureNanoServer",
	SkuEnterpriseG:                      "EnterpriseG",
	SkuEnterpriseGN:                     "EnterpriseGN",
	SkuServerRdsh:                       "ServerRdsh",
	SkuCloud:                            "Cloud",
	SkuCloudN:                           "CloudN",
	SkuHubOS:                            "HubOS",
	SkuTurbineOS:                        "TurbineOS",
	SkuOneCoreUpdateOS:                  "OneCoreUpdateOS",
	SkuCloudE:                           "CloudE",
	SkuAndromeda:                        "Andromeda",
	SkuIoTOS:                            "IoTOS",
	SkuCloudEN:                          "CloudEN",
	SkuIoTEdgeOS:                        "IoTEdgeOS",
	SkuIoTEnterprise:                    "IoTEnterprise",
	SkuLite:                             "Lite",
	SkuIoTEnterpriseS:                   "IoTEnterpriseS",
	SkuXboxSystemOS:                     "XboxSystemOS",
	SkuXboxNativeOS:                     "XboxNativeOS",
	SkuXboxGameOS:                       "XboxGameOS",
	SkuXboxEraOS:                        "XboxEraOS",
	SkuXboxDurangoHostOS:                "XboxDurangoHostOS",
	SkuXboxScarlettHostOS:               "XboxScarlettHostOS",
	SkuXboxKeystone:                     "XboxKeystone",
	SkuAzureStackHCIServerCore:          "AzureStackHCIServerCore",
	SkuDatacenterServerAzureEdition:     "DatacenterServerAzureEdition",
	SkuDatacenterServerCoreAzureEdition: "DatacenterServerCoreAzureEdition",
}

// String returns the symbolic edition name, e.g. "DatacenterServerCore".
// Unknown values render as an empty string.
func (s OSSkuID) String() string {
	return skuNames[s]
}

// IsServer reports whether the edition belongs to the server family. The
// check is done on the symbolic name, so every *Server* edition qualifies.
func (s OSSkuID) IsServer() bool {
	return strings.Contains(strings.ToLower(s.String()), "server")
}

// IsServerCore reports whether the edition is a server core installation.
func (s OSSkuID) IsServerCore() bool {
	return s.IsServer() && strings.Contains(strings.ToLower(s.String()), "core")
}

// ParseSku resolves an edition by its symbolic name, case-insensitively.
func ParseSku(name string) (OSSkuID, bool) {
	for id, n := range skuNames {
		if strings.EqualFold(n, name) {
			return id, true
		}
	}
	return SkuUndefined, false
}
