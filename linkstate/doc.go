// Package linkstate implements wire codecs for BGP-LS link-state TLV
// payloads (RFC 7752).
//
// Codec values take payload bytes only; the 2-byte type and 2-byte length
// header is handled by ScanTLVs or by the caller. Decoded values retain a
// private copy of their input and Pack re-emits it byte for byte, so a
// decode/pack round trip is always the identity on the wire.
//
//	mtid, err := linkstate.DecodeMTID([]byte{0x10, 0x05})
//	raw, _ := mtid.Pack() // [0x10 0x05]
//
// Values may also be built directly from topology entries for comparison
// and rendering; such values have no packed form and Pack fails with an
// unencodable error rather than synthesizing bytes.
package linkstate
