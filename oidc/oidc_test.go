package oidcutil

import (
	"testing"
)

func TestErrorStrings(t *testing.T) {
	e := ErrInvalidAudience{Expected: "fitapi", Got: "other"}
	if e.Error() != "invalid audience: expected fitapi got other" {
		t.Fatalf("unexpected audience error string: %s", e.Error())
	}
	if (ErrTokenExpired{}).Error() != "token expired" {
		t.Fatalf("unexpected expired error string")
	}
}
