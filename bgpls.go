package bgpls

import (
	"fmt"
)

// TLV is the interface implemented by decoded link-state TLV values.
//
// TypeCode identifies the TLV in the RFC 7752 registry. Pack re-emits the
// exact wire bytes of the TLV payload (without the type/length header) and
// fails for values that were not produced by decoding. JSON returns a
// structured rendering for introspection tooling.
type TLV interface {
	fmt.Stringer
	TypeCode() uint16
	Pack() ([]byte, error)
	JSON() string
}

// Link-state descriptor TLV type codes from the RFC 7752 registry.
const (
	TypeLocalNodeDescriptors  uint16 = 256
	TypeRemoteNodeDescriptors uint16 = 257
	TypeLinkIdentifiers       uint16 = 258
	TypeIPv4InterfaceAddress  uint16 = 259
	TypeIPv4NeighborAddress   uint16 = 260
	TypeIPv6InterfaceAddress  uint16 = 261
	TypeIPv6NeighborAddress   uint16 = 262
	TypeMultiTopologyID       uint16 = 263
	TypeOSPFRouteType         uint16 = 264
	TypeIPReachability        uint16 = 265
)

// Node descriptor sub-TLV type codes.
const (
	TypeAutonomousSystem uint16 = 512
	TypeBGPLSIdentifier  uint16 = 513
	TypeOSPFAreaID       uint16 = 514
	TypeIGPRouterID      uint16 = 515
)

// BGP-LS attribute TLV type codes (partial; the ones the inspector names).
const (
	TypeNodeFlagBits        uint16 = 1024
	TypeNodeName            uint16 = 1026
	TypeISISAreaIdentifier  uint16 = 1027
	TypeLocalIPv4RouterID   uint16 = 1028
	TypeLocalIPv6RouterID   uint16 = 1029
	TypeRemoteIPv4RouterID  uint16 = 1030
	TypeRemoteIPv6RouterID  uint16 = 1031
	TypeAdminGroup          uint16 = 1088
	TypeMaxLinkBandwidth    uint16 = 1089
	TypeMaxReservableBW     uint16 = 1090
	TypeUnreservedBandwidth uint16 = 1091
	TypeTEDefaultMetric     uint16 = 1092
	TypeIGPMetric           uint16 = 1095
	TypeIGPFlags            uint16 = 1152
	TypeIGPRouteTag         uint16 = 1153
	TypePrefixMetric        uint16 = 1155
)

var typeNames = map[uint16]string{
	TypeLocalNodeDescriptors:  "Local Node Descriptors",
	TypeRemoteNodeDescriptors: "Remote Node Descriptors",
	TypeLinkIdentifiers:       "Link Local/Remote Identifiers",
	TypeIPv4InterfaceAddress:  "IPv4 Interface Address",
	TypeIPv4NeighborAddress:   "IPv4 Neighbor Address",
	TypeIPv6InterfaceAddress:  "IPv6 Interface Address",
	TypeIPv6NeighborAddress:   "IPv6 Neighbor Address",
	TypeMultiTopologyID:       "Multi-Topology ID",
	TypeOSPFRouteType:         "OSPF Route Type",
	TypeIPReachability:        "IP Reachability Information",
	TypeAutonomousSystem:      "Autonomous System",
	TypeBGPLSIdentifier:       "BGP-LS Identifier",
	TypeOSPFAreaID:            "OSPF Area-ID",
	TypeIGPRouterID:           "IGP Router-ID",
	TypeNodeFlagBits:          "Node Flag Bits",
	TypeNodeName:              "Node Name",
	TypeISISAreaIdentifier:    "IS-IS Area Identifier",
	TypeLocalIPv4RouterID:     "IPv4 Router-ID of Local Node",
	TypeLocalIPv6RouterID:     "IPv6 Router-ID of Local Node",
	TypeRemoteIPv4RouterID:    "IPv4 Router-ID of Remote Node",
	TypeRemoteIPv6RouterID:    "IPv6 Router-ID of Remote Node",
	TypeAdminGroup:            "Administrative Group",
	TypeMaxLinkBandwidth:      "Maximum Link Bandwidth",
	TypeMaxReservableBW:       "Maximum Reservable Bandwidth",
	TypeUnreservedBandwidth:   "Unreserved Bandwidth",
	TypeTEDefaultMetric:       "TE Default Metric",
	TypeIGPMetric:             "IGP Metric",
	TypeIGPFlags:              "IGP Flags",
	TypeIGPRouteTag:           "IGP Route Tag",
	TypePrefixMetric:          "Prefix Metric",
}

// TypeName returns the registry name for a TLV type code, or
// "unknown(<code>)" for codes not in the registry.
func TypeName(code uint16) string {
	if name, ok := typeNames[code]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", code)
}
