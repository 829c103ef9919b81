package utils

import (
	"strings"
	"testing"
)

func TestGenHashID_RoundTrip(t *testing.T) {
	for _, id := range []int{1, 42, 99999} {
		code := GenHashID("rocketbird", id)
		if len(code) < 8 {
			t.Fatalf("code too short: %q", code)
		}
		if got := DecodeHashID("rocketbird", code); got != id {
			t.Fatalf("round trip failed: id=%d code=%q got=%d", id, code, got)
		}
	}
}

func TestDecodeHashID_BadCode(t *testing.T) {
	if got := DecodeHashID("rocketbird", "!!not-a-code!!"); got != 0 {
		t.Fatalf("expected 0 for invalid code, got %d", got)
	}
}

func TestGenCouponCode_Format(t *testing.T) {
	code := GenCouponCode("RB")
	if !strings.HasPrefix(code, "RB") {
		t.Fatalf("missing prefix: %q", code)
	}
	if code != strings.ToUpper(code) {
		t.Fatalf("coupon code must be uppercase: %q", code)
	}
	// 前缀 + 时间戳(36进制, 当前在 6-7 位) + 4 位随机
	if len(code) < 2+6+4 {
		t.Fatalf("unexpected code length: %q", code)
	}
}
