// Package bgpls provides codecs for BGP-LS (RFC 7752) link-state TLVs.
//
// BGP-LS carries IGP topology information inside BGP by wrapping IS-IS and
// OSPF link-state data in TLV-encoded descriptors and attributes. This
// library implements wire codecs for those TLVs with byte-exact round-trip
// fidelity: bytes that were decoded re-encode to the identical byte
// sequence, reserved bits included.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	bgpls/               Root package with the TLV interface and the
//	                     RFC 7752 type-code registry
//	├── linkstate/       TLV payload codecs (Multi-Topology ID) and
//	                     type/length/value container framing
//	├── errors/          Structured error types for debugging
//	└── cmd/lsdump/      Diagnostic CLI and interactive TLV inspector
//
// # Quick Start
//
// Decode a Multi-Topology ID payload (TLV header already stripped):
//
//	mtid, err := linkstate.DecodeMTID(payload)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, topo := range mtid.Topologies {
//	    fmt.Println(topo.ID)
//	}
//
// Re-emit the original bytes:
//
//	raw, err := mtid.Pack()
//
// # Round-Trip Fidelity
//
// Decoded values keep a private copy of their input bytes and Pack returns
// that copy unchanged. Values built directly from topology entries carry no
// packed form; Pack on such a value fails rather than synthesizing bytes
// that were never on the wire.
//
// # Thread Safety
//
// All codec values are immutable after construction and safe for
// concurrent readers without synchronization.
package bgpls
