package botvac

import (
	"net/http"
	"testing"
	"time"
)

const (
	testSerial = "OBSCURED-SERIAL-123"
	testSecret = "0123456789abcdef"
	testDate   = "Fri, 03 Apr 2020 09:38:00 GMT"
)

var testBody = []byte(`{"reqId":"1","cmd":"getRobotState"}`)

func TestSignatureKnownVector(t *testing.T) {
	want := "16c7aab2d9e63bc4c8951a41fd6337ddc6b69a59507db603dd72e96426816e79"
	got := signature(testSerial, testSecret, testDate, testBody)
	if got != want {
		t.Fatalf("signature mismatch:\n got %s\nwant %s", got, want)
	}

	// Pure function: same inputs, same digest.
	if again := signature(testSerial, testSecret, testDate, testBody); again != got {
		t.Fatalf("signature not deterministic: %s vs %s", again, got)
	}
}

func TestSignatureLowercasesSerial(t *testing.T) {
	upper := signature("OBSCURED-SERIAL-123", testSecret, testDate, testBody)
	lower := signature("obscured-serial-123", testSecret, testDate, testBody)
	if upper != lower {
		t.Fatalf("serial case should not affect signature: %s vs %s", upper, lower)
	}
}

func TestSignaturePerturbation(t *testing.T) {
	base := signature(testSerial, testSecret, testDate, testBody)

	cases := map[string]string{
		"serial": signature(testSerial+"x", testSecret, testDate, testBody),
		"secret": signature(testSerial, testSecret+"x", testDate, testBody),
		"date":   signature(testSerial, testSecret, "Fri, 03 Apr 2020 09:38:01 GMT", testBody),
		"body":   signature(testSerial, testSecret, testDate, append(testBody, ' ')),
	}
	for input, digest := range cases {
		if digest == base {
			t.Errorf("changing %s did not change the signature", input)
		}
	}
}

func TestSignRequestHeaders(t *testing.T) {
	req, err := http.NewRequest(http.MethodPost, "https://nucleo.neatocloud.com/", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	now := time.Date(2020, time.April, 3, 9, 38, 0, 0, time.UTC)

	signRequest(req, testSerial, testSecret, testBody, now)

	if got := req.Header.Get("Date"); got != testDate {
		t.Fatalf("unexpected Date header: %q", got)
	}
	want := "NEATOAPP 16c7aab2d9e63bc4c8951a41fd6337ddc6b69a59507db603dd72e96426816e79"
	if got := req.Header.Get("Authorization"); got != want {
		t.Fatalf("unexpected Authorization header: %q", got)
	}

	// Only Date and Authorization are touched.
	if len(req.Header) != 2 {
		t.Fatalf("expected exactly 2 headers, got %v", req.Header)
	}
}

func TestSignRequestFormatsNonUTCClock(t *testing.T) {
	req, err := http.NewRequest(http.MethodPost, "https://nucleo.neatocloud.com/", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	loc := time.FixedZone("CEST", 2*60*60)
	now := time.Date(2020, time.April, 3, 11, 38, 0, 0, loc)

	signRequest(req, testSerial, testSecret, testBody, now)

	if got := req.Header.Get("Date"); got != testDate {
		t.Fatalf("date not rendered in GMT: %q", got)
	}
}
