package botvac

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
	"time"
)

// nucleoDateFormat is the fixed Date header layout Nucleo signs over:
// abbreviated weekday and month, always GMT.
const nucleoDateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

// signature computes the hex HMAC-SHA256 digest over the canonical
// signing string: lowercased serial, date header value and raw body,
// joined by newlines, keyed by the robot secret. Deterministic for fixed
// inputs.
func signature(serial, secret, date string, body []byte) string {
	signing := strings.Join([]string{strings.ToLower(serial), date, string(body)}, "\n")
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signing))
	return hex.EncodeToString(mac.Sum(nil))
}

// signRequest stamps the request with Date and Authorization headers.
// The date must be the instant of the HTTP call: the server rejects stale
// timestamps, so callers sign immediately before sending.
func signRequest(req *http.Request, serial, secret string, body []byte, now time.Time) {
	date := now.UTC().Format(nucleoDateFormat)
	req.Header.Set("Date", date)
	req.Header.Set("Authorization", "NEATOAPP "+signature(serial, secret, date, body))
}
