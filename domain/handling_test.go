package domain

import (
	"errors"
	"testing"
)

func TestHandlingEventTypeRoundTrip(t *testing.T) {
	for _, et := range []HandlingEventType{NotHandled, Load, Unload, Receive, Claim, Customs} {
		parsed, err := ParseHandlingEventType(et.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != et {
			t.Fatalf("expected %v, got %v", et, parsed)
		}
	}
}

func TestParseHandlingEventTypeUnknown(t *testing.T) {
	if _, err := ParseHandlingEventType("Teleport"); !errors.Is(err, ErrParsing) {
		t.Fatalf("expected ErrParsing, got %v", err)
	}
}
