package apperr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	root := errors.New("root")
	err := &OpError{Op: "locale.load", Kind: KindInvalidConfig, Path: "en.yaml", Err: root}

	if !errors.Is(err, root) {
		t.Fatalf("expected errors.Is to match cause")
	}
	if !strings.Contains(err.Error(), "path=en.yaml") {
		t.Fatalf("expected path in message, got %q", err.Error())
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", New("web.snapshot", KindInvalidInput, "width %d out of range", -1))

	if !IsKind(err, KindInvalidInput) {
		t.Fatalf("expected IsKind to see wrapped OpError")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("unexpected kind match")
	}
	if IsKind(errors.New("plain"), KindInvalidInput) {
		t.Fatalf("plain error must not match")
	}
}

func TestIsKindOutermostWins(t *testing.T) {
	inner := New("media.probe", KindNotFound, "no track")
	err := &OpError{Op: "web.music", Kind: KindExecution, Err: inner}

	if !IsKind(err, KindExecution) {
		t.Fatalf("expected the outer kind")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("inner kind must be hidden by the outer OpError")
	}
}

func TestNilOpError(t *testing.T) {
	var e *OpError
	if e.Error() != "<nil>" {
		t.Fatalf("unexpected nil message %q", e.Error())
	}
	if e.Unwrap() != nil {
		t.Fatalf("expected nil unwrap")
	}
}
