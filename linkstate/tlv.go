package linkstate

import (
	"github.com/routelens/bgpls"
	"github.com/routelens/bgpls/errors"
	"github.com/routelens/bgpls/linkstate/internal/wire"
)

// RawTLV is one type/length/value triplet cut out of a TLV stream. Value
// holds the payload only; the header is consumed by ScanTLVs.
type RawTLV struct {
	Type  uint16
	Value []byte
}

// Name returns the RFC 7752 registry name for the TLV's type code.
func (t RawTLV) Name() string {
	return bgpls.TypeName(t.Type)
}

// ScanTLVs cuts a byte stream into its TLV triplets. Each TLV is a 2-byte
// type, a 2-byte length, and length bytes of value, all big-endian. A
// stream that ends inside a header or a value fails with a truncated
// error. Value slices are copies and do not alias data.
func ScanTLVs(data []byte) ([]RawTLV, error) {
	r := wire.NewReader(data)
	var tlvs []RawTLV
	for r.Remaining() > 0 {
		if r.Remaining() < tlvHeaderSize {
			return nil, errors.Truncated(errors.PhaseScan, r.Position(), tlvHeaderSize, r.Remaining())
		}
		typ, err := r.ReadU16()
		if err != nil {
			return nil, errors.Wrap(errors.PhaseScan, errors.KindTruncated, err, "tlv type")
		}
		length, err := r.ReadU16()
		if err != nil {
			return nil, errors.Wrap(errors.PhaseScan, errors.KindTruncated, err, "tlv length")
		}
		value, err := r.ReadBytes(int(length))
		if err != nil {
			return nil, errors.New(errors.PhaseScan, errors.KindTruncated).
				TypeCode(typ).
				Offset(r.Position()).
				Cause(err).
				Detail("tlv value (declared length %d)", length).
				Build()
		}
		tlvs = append(tlvs, RawTLV{Type: typ, Value: value})
	}
	debugf("scanned %d tlvs from %d bytes", len(tlvs), len(data))
	return tlvs, nil
}

// AppendTLV appends one TLV (header plus value) to dst and returns the
// extended slice. The length field is len(value), which must fit in the
// 16-bit length field.
func AppendTLV(dst []byte, typ uint16, value []byte) []byte {
	w := wire.NewWriter()
	w.WriteU16(typ)
	w.WriteU16(uint16(len(value)))
	w.WriteBytes(value)
	return append(dst, w.Bytes()...)
}

// DecodeTLV decodes a scanned TLV into its typed codec value. Only the
// Multi-Topology ID TLV has a codec here; other type codes fail with an
// unsupported error so callers can fall back to a raw rendering.
func DecodeTLV(t RawTLV) (bgpls.TLV, error) {
	switch t.Type {
	case bgpls.TypeMultiTopologyID:
		return DecodeMTID(t.Value)
	default:
		return nil, errors.New(errors.PhaseDecode, errors.KindUnsupported).
			TypeCode(t.Type).
			Detail("no codec for %s", t.Name()).
			Build()
	}
}
