package codec

import (
	"reflect"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	orig := map[string]string{
		"InstrumentID":   "IC2412",
		"UpdateTime":     "09:30:00",
		"UpdateMillisec": "500",
		"ActionDay":      "",
		"LastPrice":      "3890.2",
		"Volume":         "100",
		"ExchangeID":     "CFFEX",
		"localtime":      "2024-12-10 09:30:00",
	}

	decoder := &Decoder{}
	decoded := decoder.Decode(Encode(orig))

	if !reflect.DeepEqual(decoded, orig) {
		t.Fatalf("round-trip mismatch: got %+v want %+v", decoded, orig)
	}
	if decoder.SkippedFragments() != 0 {
		t.Fatalf("unexpected skipped fragments: %d", decoder.SkippedFragments())
	}
}

func TestEncodeDeterministicOrder(t *testing.T) {
	snapshot := map[string]string{
		"localtime":    "2024-12-10 09:30:00",
		"InstrumentID": "IC2412",
		"LastPrice":    "3890.2",
		"Zebra":        "1",
		"Alpha":        "2",
	}

	line := Encode(snapshot)
	for i := 0; i < 16; i++ {
		if got := Encode(snapshot); got != line {
			t.Fatalf("encode not deterministic:\n%s\n%s", line, got)
		}
	}

	// Known feed fields first in canonical order, unknown keys sorted last.
	want := "{'InstrumentID': 'IC2412'， 'LastPrice': '3890.2'， 'localtime': '2024-12-10 09:30:00'， 'Alpha': '2'， 'Zebra': '1'}"
	if line != want {
		t.Fatalf("encode mismatch:\ngot  %s\nwant %s", line, want)
	}
}

func TestEncodeValuesMayContainASCIISeparators(t *testing.T) {
	orig := map[string]string{
		"InstrumentID": "IC2412",
		"Note":         "a, b: c",
	}

	decoder := &Decoder{}
	decoded := decoder.Decode(Encode(orig))

	if !reflect.DeepEqual(decoded, orig) {
		t.Fatalf("round-trip mismatch: got %+v want %+v", decoded, orig)
	}
}

func TestDecodeSkipsStrayFragments(t *testing.T) {
	line := "{'InstrumentID': 'IC2412'， garbage-without-separator， 'UpdateTime': '09:30:00'}"

	decoder := &Decoder{}
	decoded := decoder.Decode(line)

	want := map[string]string{
		"InstrumentID": "IC2412",
		"UpdateTime":   "09:30:00",
	}
	if !reflect.DeepEqual(decoded, want) {
		t.Fatalf("decode mismatch: got %+v want %+v", decoded, want)
	}
	if decoder.SkippedFragments() != 1 {
		t.Fatalf("skipped fragments: got %d want 1", decoder.SkippedFragments())
	}
}

func TestDecodeEmptyLine(t *testing.T) {
	decoder := &Decoder{}
	if got := decoder.Decode("   "); len(got) != 0 {
		t.Fatalf("expected empty mapping, got %+v", got)
	}
}

func TestDecodeEmptyValueArtifact(t *testing.T) {
	// The legacy writer renders empty values as doubled quotes.
	decoder := &Decoder{}
	decoded := decoder.Decode("{'ActionDay': ''， 'UpdateTime': '09:30:00'}")

	if got, ok := decoded["ActionDay"]; !ok || got != "" {
		t.Fatalf("ActionDay: got %q (present=%v), want empty", got, ok)
	}
	if decoded["UpdateTime"] != "09:30:00" {
		t.Fatalf("UpdateTime mismatch: %+v", decoded)
	}
}

func TestDecodeUnquotedValues(t *testing.T) {
	// Historical files rendered numeric values without quotes.
	decoder := &Decoder{}
	decoded := decoder.Decode("{'LastPrice': 3890.2， 'Volume': 100}")

	want := map[string]string{"LastPrice": "3890.2", "Volume": "100"}
	if !reflect.DeepEqual(decoded, want) {
		t.Fatalf("decode mismatch: got %+v want %+v", decoded, want)
	}
}

func TestDecodeTruncatedLine(t *testing.T) {
	decoder := &Decoder{}
	full := Encode(map[string]string{
		"InstrumentID": "IC2412",
		"UpdateTime":   "09:30:00",
	})
	// Cut inside the trailing value; decoding must not fail and the
	// intact leading pair must survive.
	decoded := decoder.Decode(full[:len(full)-4])

	if decoded["InstrumentID"] != "IC2412" {
		t.Fatalf("expected intact leading pair, got %+v", decoded)
	}
}
