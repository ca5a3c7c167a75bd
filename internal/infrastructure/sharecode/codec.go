// Package sharecode encodes profile snapshots into opaque ASCII tokens that
// are safe to embed in a URL fragment, show as a QR payload, or paste as
// text. The token is standard base64 over UTF-8 JSON, so full Unicode in
// usernames and topic names round-trips, and tokens produced by earlier
// clients decode unchanged.
package sharecode

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/hsc-elite/progress-hub/internal/domain/profile"
	"github.com/hsc-elite/progress-hub/internal/domain/shared"
)

// FragmentPrefix is the URL fragment marker that carries a follow token.
const FragmentPrefix = "#follow="

// Encode serializes the shareable view of a profile into a token. The
// password and the transitive follow graph are always stripped first:
// snapshots shared with peers must never carry credentials, and nesting
// follow lists inside snapshots would grow tokens without bound.
func Encode(p *profile.Profile) (string, error) {
	if p == nil || !p.Username.IsValid() {
		return "", shared.NewDomainError("sharecode", "Encode", shared.ErrInvalidInput, "profile has no username")
	}
	snapshot := p.Snapshot()
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return "", shared.WrapError("sharecode", "Encode", shared.ErrInvalidInput, "serialize snapshot", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Decode is the inverse of Encode. Malformed input of any kind, truncated
// base64, non-JSON payloads, invalid byte sequences, comes back as
// shared.ErrInvalidToken; the caller treats that as untrusted garbage, never
// as a crash. The decoded profile is sanitized before it is returned.
func Decode(token string) (*profile.Profile, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, shared.ErrInvalidToken
	}

	raw, err := decodeBase64(token)
	if err != nil {
		return nil, shared.ErrInvalidToken
	}

	var p profile.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, shared.ErrInvalidToken
	}

	p.Sanitize()
	if !p.Username.IsValid() {
		return nil, shared.ErrInvalidToken
	}
	return &p, nil
}

// decodeBase64 tolerates the encoding drift seen in pasted tokens: standard
// or URL-safe alphabet, with or without padding.
func decodeBase64(token string) ([]byte, error) {
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		if raw, err := enc.DecodeString(token); err == nil {
			return raw, nil
		}
	}
	return nil, shared.ErrInvalidToken
}

// ShareLink builds the shareable URL for a profile: <base>#follow=<token>.
func ShareLink(base string, p *profile.Profile) (string, error) {
	token, err := Encode(p)
	if err != nil {
		return "", err
	}
	return base + FragmentPrefix + token, nil
}

// ExtractToken pulls a token out of pasted input: a full share link, a bare
// "#follow=..." fragment, or the raw token itself. It mirrors the paste box
// behavior of splitting on "follow=".
func ExtractToken(input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	if i := strings.Index(input, "follow="); i >= 0 {
		return input[i+len("follow="):], true
	}
	return input, true
}
