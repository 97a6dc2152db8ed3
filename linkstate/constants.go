package linkstate

// Multi-Topology ID TLV wire layout (RFC 7752 section 3.2.1.5).
// Each record is one 16-bit big-endian word:
//
//	bits 0-3  : reserved (R), zero on origination, preserved on receipt
//	bits 4-15 : Multi-Topology ID
const (
	// mtWordSize is the size of one topology record on the wire.
	mtWordSize = 2

	// mtIDMask extracts the 12-bit Multi-Topology ID from a record word.
	mtIDMask uint16 = 0x0FFF

	// mtReservedShift positions the 4 reserved bits in a record word.
	mtReservedShift = 12

	// MaxTopologyID is the largest representable Multi-Topology ID.
	MaxTopologyID uint16 = 0x0FFF
)

// TLV container framing.
const (
	// tlvHeaderSize covers the 2-byte type and 2-byte length fields.
	tlvHeaderSize = 4
)
