package linkstate

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/routelens/bgpls"
	"github.com/routelens/bgpls/errors"
	"github.com/routelens/bgpls/linkstate/internal/wire"
)

// Topology is one decoded Multi-Topology record: the 4 reserved R bits and
// the 12-bit Multi-Topology ID of a single 16-bit wire word. Values are
// immutable once decoded.
type Topology struct {
	Reserved uint8  // upper 4 bits, preserved verbatim even when nonzero
	ID       uint16 // Multi-Topology ID, 0-4095
}

// DecodeWord splits a 16-bit wire word into its topology record. Total
// function: every input is valid, reserved bits are never rejected.
func DecodeWord(w uint16) Topology {
	return Topology{
		Reserved: uint8(w >> mtReservedShift),
		ID:       w & mtIDMask,
	}
}

// Word reconstructs the original 16-bit wire word.
func (t Topology) Word() uint16 {
	return uint16(t.Reserved)<<mtReservedShift | t.ID&mtIDMask
}

// JSON returns the structured rendering of the record, e.g.
//
//	{ "bits": "0001", "multi-topology-id": 5 }
//
// The reserved bits render as exactly four binary digits.
func (t Topology) JSON() string {
	return fmt.Sprintf(`{ "bits": "%04b", "multi-topology-id": %d }`, t.Reserved&0x0F, t.ID)
}

// MTID is a decoded Multi-Topology ID TLV payload (RFC 7752 type 263): an
// ordered list of topology records in wire order.
//
// An MTID produced by DecodeMTID retains a private copy of its input bytes
// and Pack returns that copy unchanged. An MTID built with NewMTID has no
// packed form; Pack and everything derived from it (Text, Hash, Len) fail
// with an unencodable error.
type MTID struct {
	Topologies []Topology

	// raw is the decoded wire payload. Non-nil exactly when the value came
	// from DecodeMTID; an empty decoded payload keeps a non-nil empty slice.
	raw []byte
}

var _ bgpls.TLV = (*MTID)(nil)

// DecodeMTID decodes a Multi-Topology ID TLV payload. The type/length
// header must already be stripped. Payloads whose length is not a multiple
// of two fail with a malformed-length error; the trailing byte is never
// silently dropped.
func DecodeMTID(data []byte) (*MTID, error) {
	if len(data)%mtWordSize != 0 {
		return nil, errors.MalformedLength(bgpls.TypeMultiTopologyID, len(data))
	}

	r := wire.NewReader(data)
	topologies := make([]Topology, 0, len(data)/mtWordSize)
	for r.Remaining() > 0 {
		word, err := r.ReadU16()
		if err != nil {
			return nil, errors.New(errors.PhaseDecode, errors.KindTruncated).
				TypeCode(bgpls.TypeMultiTopologyID).
				Offset(r.Position()).
				Cause(err).
				Detail("mt-id word").
				Build()
		}
		topologies = append(topologies, DecodeWord(word))
	}

	raw := make([]byte, len(data))
	copy(raw, data)

	debugf("decoded mt-id payload: %d topologies", len(topologies))
	return &MTID{Topologies: topologies, raw: raw}, nil
}

// NewMTID builds an MTID from topology records without a wire origin.
// The result compares and renders structurally but cannot be packed.
func NewMTID(topologies ...Topology) *MTID {
	t := make([]Topology, len(topologies))
	copy(t, topologies)
	return &MTID{Topologies: t}
}

// TypeCode returns the RFC 7752 registry code for the Multi-Topology ID TLV.
func (m *MTID) TypeCode() uint16 {
	return bgpls.TypeMultiTopologyID
}

// Pack re-emits the exact payload bytes this value was decoded from.
// Values built with NewMTID fail with an unencodable error; bytes are
// never synthesized from the record list.
func (m *MTID) Pack() ([]byte, error) {
	if m.raw == nil {
		return nil, errors.Unencodable(bgpls.TypeMultiTopologyID)
	}
	out := make([]byte, len(m.raw))
	copy(out, m.raw)
	return out, nil
}

// Equal reports whether both values hold the same topology records in the
// same order. The packed form does not participate: a decoded value and a
// built value with identical records are equal.
func (m *MTID) Equal(other *MTID) bool {
	if other == nil {
		return false
	}
	if len(m.Topologies) != len(other.Topologies) {
		return false
	}
	for i, t := range m.Topologies {
		if t != other.Topologies[i] {
			return false
		}
	}
	return true
}

// Ordered reports whether MTID values have a total order. They do not:
// the protocol defines no ordering over sets of topology identifiers.
func (m *MTID) Ordered() bool {
	return false
}

// Compare always fails with an unsupported-ordering error. It exists so
// callers probing for ordering get a typed rejection instead of an
// arbitrary order.
func (m *MTID) Compare(other *MTID) (int, error) {
	return 0, errors.UnsupportedOrdering(bgpls.TypeMultiTopologyID)
}

// Text returns the canonical byte rendering: colon-separated uppercase
// two-digit hex of the packed payload, e.g. "12:34:AB:CD". Fails when
// Pack fails.
func (m *MTID) Text() (string, error) {
	raw, err := m.Pack()
	if err != nil {
		return "", err
	}
	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, ":"), nil
}

// String implements fmt.Stringer. Decoded values render as their canonical
// hex text; built values render as a fixed placeholder.
func (m *MTID) String() string {
	s, err := m.Text()
	if err != nil {
		return "mtid(unpacked)"
	}
	return s
}

// Hash returns the FNV-1a hash of the canonical byte rendering. Fails when
// Pack fails, for the same reason Pack does.
func (m *MTID) Hash() (uint64, error) {
	s, err := m.Text()
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64(), nil
}

// JSON returns the structured rendering of all records, e.g.
//
//	[{ "bits": "0000", "multi-topology-id": 5 }, { "bits": "0000", "multi-topology-id": 12 }]
//
// Available for both decoded and built values.
func (m *MTID) JSON() string {
	parts := make([]string, len(m.Topologies))
	for i, t := range m.Topologies {
		parts[i] = t.JSON()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Len returns the number of payload bytes backing this value. Fails for
// built values, which have no payload.
func (m *MTID) Len() (int, error) {
	if m.raw == nil {
		return 0, errors.Unencodable(bgpls.TypeMultiTopologyID)
	}
	return len(m.raw), nil
}
