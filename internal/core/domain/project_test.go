package domain

import (
	"reflect"
	"testing"
)

func TestEncodeDecodeList_RoundTrip(t *testing.T) {
	in := []string{"Go", "Rust"}
	encoded := EncodeList(in)
	if encoded != "Go,Rust" {
		t.Fatalf("unexpected encoded form: %q", encoded)
	}

	out := DecodeList(encoded)
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip mismatch: %v != %v", out, in)
	}
}

func TestDecodeList_DropsEmptySegments(t *testing.T) {
	out := DecodeList("Go,, ,Rust,")
	want := []string{"Go", "Rust"}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
}

func TestDecodeList_TrimsWhitespace(t *testing.T) {
	out := DecodeList(" Go , Rust ")
	want := []string{"Go", "Rust"}
	if !reflect.DeepEqual(out, want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
}

func TestDecodeList_Empty(t *testing.T) {
	out := DecodeList("")
	if len(out) != 0 {
		t.Fatalf("expected empty list, got %v", out)
	}
}
