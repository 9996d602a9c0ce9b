package apikey

import (
	"crypto/subtle"
	"net/http"
)

// HeaderName is the request header carrying the api key.
const HeaderName = "api-key"

// forbiddenBody is the uniform rejection body on both transports.
const forbiddenBody = "Invalid api-key"

type mode uint8

const (
	// modePhantom passes every request through untouched.
	modePhantom mode = iota
	modeMaster
	modeReadOnly
	modeFull
)

// Policy is an immutable api-key admission rule. The variant is selected
// once at construction and never changes. The zero value is the phantom
// policy (everything admitted).
type Policy struct {
	mode        mode
	masterKey   []byte
	readOnlyKey []byte
}

// New builds a Policy from the two optional secrets. An empty string
// means the secret is not configured; with neither configured the
// resulting policy admits everything.
func New(masterKey, readOnlyKey string) Policy {
	switch {
	case masterKey != "" && readOnlyKey != "":
		return Policy{mode: modeFull, masterKey: []byte(masterKey), readOnlyKey: []byte(readOnlyKey)}
	case masterKey != "":
		return Policy{mode: modeMaster, masterKey: []byte(masterKey)}
	case readOnlyKey != "":
		return Policy{mode: modeReadOnly, readOnlyKey: []byte(readOnlyKey)}
	default:
		return Policy{mode: modePhantom}
	}
}

// Phantom reports whether the policy admits everything, i.e. no secret
// is configured.
func (p Policy) Phantom() bool {
	return p.mode == modePhantom
}

// Allow decides admission for a request with the given method and api-key
// header value. A missing header is passed as the empty string; since
// configured secrets are never empty, it can only be admitted by the
// phantom variant.
func (p Policy) Allow(method, key string) bool {
	switch p.mode {
	case modePhantom:
		return true
	case modeMaster:
		return equalConstTime(p.masterKey, key)
	case modeReadOnly:
		return isSafeMethod(method) && equalConstTime(p.readOnlyKey, key)
	case modeFull:
		if isSafeMethod(method) && equalConstTime(p.readOnlyKey, key) {
			return true
		}
		return equalConstTime(p.masterKey, key)
	default:
		return false
	}
}

// isSafeMethod reports whether the method is admissible with the
// read-only key. The set is closed: GET only.
func isSafeMethod(method string) bool {
	return method == http.MethodGet
}

// equalConstTime compares a configured secret against a candidate without
// branching on byte values. Time depends only on the input lengths.
func equalConstTime(secret []byte, candidate string) bool {
	return subtle.ConstantTimeCompare(secret, []byte(candidate)) == 1
}
