package linkstate_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/routelens/bgpls"
	"github.com/routelens/bgpls/errors"
	"github.com/routelens/bgpls/linkstate"
)

func TestAppendTLVWireFormat(t *testing.T) {
	got := linkstate.AppendTLV(nil, bgpls.TypeMultiTopologyID, []byte{0x10, 0x05})
	want := []byte{0x01, 0x07, 0x00, 0x02, 0x10, 0x05}
	if !bytes.Equal(got, want) {
		t.Errorf("AppendTLV: got % X, want % X", got, want)
	}
}

func TestScanTLVs(t *testing.T) {
	stream := linkstate.AppendTLV(nil, bgpls.TypeMultiTopologyID, []byte{0x10, 0x05})
	stream = linkstate.AppendTLV(stream, bgpls.TypeNodeName, []byte("core1"))
	stream = linkstate.AppendTLV(stream, 9999, nil)

	tlvs, err := linkstate.ScanTLVs(stream)
	if err != nil {
		t.Fatalf("ScanTLVs: %v", err)
	}
	if len(tlvs) != 3 {
		t.Fatalf("got %d tlvs, want 3", len(tlvs))
	}

	if tlvs[0].Type != bgpls.TypeMultiTopologyID || !bytes.Equal(tlvs[0].Value, []byte{0x10, 0x05}) {
		t.Errorf("tlv 0: %d % X", tlvs[0].Type, tlvs[0].Value)
	}
	if tlvs[1].Type != bgpls.TypeNodeName || string(tlvs[1].Value) != "core1" {
		t.Errorf("tlv 1: %d %q", tlvs[1].Type, tlvs[1].Value)
	}
	if tlvs[2].Type != 9999 || len(tlvs[2].Value) != 0 {
		t.Errorf("tlv 2: %d % X", tlvs[2].Type, tlvs[2].Value)
	}

	if tlvs[0].Name() != "Multi-Topology ID" {
		t.Errorf("tlv 0 name: %q", tlvs[0].Name())
	}
	if tlvs[2].Name() != "unknown(9999)" {
		t.Errorf("tlv 2 name: %q", tlvs[2].Name())
	}
}

func TestScanTLVsEmpty(t *testing.T) {
	tlvs, err := linkstate.ScanTLVs(nil)
	if err != nil {
		t.Fatalf("ScanTLVs(nil): %v", err)
	}
	if len(tlvs) != 0 {
		t.Errorf("got %d tlvs, want 0", len(tlvs))
	}
}

func TestScanTLVsTruncated(t *testing.T) {
	target := &errors.Error{Phase: errors.PhaseScan, Kind: errors.KindTruncated}

	// Short header.
	if _, err := linkstate.ScanTLVs([]byte{0x01, 0x07, 0x00}); !stderrors.Is(err, target) {
		t.Errorf("short header: got %v, want truncated", err)
	}

	// Declared value length exceeds remaining bytes.
	if _, err := linkstate.ScanTLVs([]byte{0x01, 0x07, 0x00, 0x04, 0x10, 0x05}); !stderrors.Is(err, target) {
		t.Errorf("short value: got %v, want truncated", err)
	}

	// Second TLV truncated after a complete first one.
	stream := linkstate.AppendTLV(nil, bgpls.TypeMultiTopologyID, []byte{0x10, 0x05})
	stream = append(stream, 0x01)
	if _, err := linkstate.ScanTLVs(stream); !stderrors.Is(err, target) {
		t.Errorf("trailing garbage: got %v, want truncated", err)
	}
}

func TestScanTLVsValueIsCopy(t *testing.T) {
	stream := linkstate.AppendTLV(nil, bgpls.TypeMultiTopologyID, []byte{0x10, 0x05})
	tlvs, err := linkstate.ScanTLVs(stream)
	if err != nil {
		t.Fatalf("ScanTLVs: %v", err)
	}

	stream[4] = 0xFF
	if !bytes.Equal(tlvs[0].Value, []byte{0x10, 0x05}) {
		t.Errorf("tlv value aliases input: % X", tlvs[0].Value)
	}
}

func TestDecodeTLV(t *testing.T) {
	raw := linkstate.RawTLV{Type: bgpls.TypeMultiTopologyID, Value: []byte{0x10, 0x05}}
	tlv, err := linkstate.DecodeTLV(raw)
	if err != nil {
		t.Fatalf("DecodeTLV: %v", err)
	}

	mtid, ok := tlv.(*linkstate.MTID)
	if !ok {
		t.Fatalf("DecodeTLV returned %T, want *linkstate.MTID", tlv)
	}
	if len(mtid.Topologies) != 1 || mtid.Topologies[0].ID != 5 {
		t.Errorf("unexpected decode result: %+v", mtid.Topologies)
	}
}

func TestDecodeTLVUnsupported(t *testing.T) {
	raw := linkstate.RawTLV{Type: bgpls.TypeNodeName, Value: []byte("core1")}
	_, err := linkstate.DecodeTLV(raw)

	target := &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindUnsupported}
	if !stderrors.Is(err, target) {
		t.Errorf("DecodeTLV: got %v, want unsupported", err)
	}
}

func TestDecodeTLVMalformedPayload(t *testing.T) {
	raw := linkstate.RawTLV{Type: bgpls.TypeMultiTopologyID, Value: []byte{0x10}}
	_, err := linkstate.DecodeTLV(raw)

	target := &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindMalformedLength}
	if !stderrors.Is(err, target) {
		t.Errorf("DecodeTLV: got %v, want malformed length", err)
	}
}
