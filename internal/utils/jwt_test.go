package utils

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-auth/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testKey   = []byte("0123456789abcdef0123456789abcdef")
	otherKey  = []byte("fedcba9876543210fedcba9876543210")
	testEpoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func issueTestToken(t *testing.T, params JWTParams) string {
	t.Helper()
	if params.SignKey == nil {
		params.SignKey = testKey
	}
	if params.IssuedAt.IsZero() {
		params.IssuedAt = testEpoch
	}
	if params.Lifetime == 0 {
		params.Lifetime = time.Hour
	}
	token, err := GenerateJWTToken(params)
	require.NoError(t, err)
	return token.SignedString
}

// flipSegmentBit decodes segment idx of a compact token, flips one bit of
// its first byte and re-encodes it.
func flipSegmentBit(t *testing.T, token string, idx int) string {
	t.Helper()
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	raw, err := base64.RawURLEncoding.DecodeString(parts[idx])
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	raw[0] ^= 0x01
	parts[idx] = base64.RawURLEncoding.EncodeToString(raw)
	return strings.Join(parts, ".")
}

func replacePayload(t *testing.T, token, payload string) string {
	t.Helper()
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(payload))
	return strings.Join(parts, ".")
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(JWTParams{
		Issuer:   "test-issuer",
		Subject:  "alice",
		ID:       "jti-1",
		IssuedAt: testEpoch,
		Lifetime: time.Hour,
		SignKey:  testKey,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	assert.Equal(t, "alice", token.Subject)
	assert.True(t, token.IssuedAt.Equal(testEpoch))
	assert.True(t, token.ExpiresAt.Equal(testEpoch.Add(time.Hour)))
	assert.Len(t, strings.Split(token.SignedString, "."), 3)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "jti-1", claims.ID)
	assert.Equal(t, "HS256", token.Token.Method.Alg())
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params JWTParams
	}{
		{name: "empty subject", params: JWTParams{IssuedAt: testEpoch, Lifetime: time.Hour, SignKey: testKey}},
		{name: "zero lifetime", params: JWTParams{Subject: "a", IssuedAt: testEpoch, SignKey: testKey}},
		{name: "negative lifetime", params: JWTParams{Subject: "a", IssuedAt: testEpoch, Lifetime: -time.Second, SignKey: testKey}},
		{name: "empty key", params: JWTParams{Subject: "a", IssuedAt: testEpoch, Lifetime: time.Hour}},
		{name: "zero issued at", params: JWTParams{Subject: "a", Lifetime: time.Hour, SignKey: testKey}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.params)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateJWTToken_RoundTrip(t *testing.T) {
	token := issueTestToken(t, JWTParams{Subject: "alice"})

	result := ValidateJWTToken(token, testKey, "", fixedClock(testEpoch.Add(time.Minute)))

	assert.True(t, result.Valid)
	assert.Equal(t, "alice", result.Subject)
	assert.Equal(t, models.ReasonNone, result.Reason)
}

func TestValidateJWTToken_Expiry(t *testing.T) {
	token := issueTestToken(t, JWTParams{Subject: "alice", Lifetime: time.Hour})

	tests := []struct {
		name  string
		now   time.Time
		valid bool
	}{
		{name: "just issued", now: testEpoch, valid: true},
		{name: "one second before exp", now: testEpoch.Add(time.Hour - time.Second), valid: true},
		{name: "at exp", now: testEpoch.Add(time.Hour), valid: false},
		{name: "after exp", now: testEpoch.Add(2 * time.Hour), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateJWTToken(token, testKey, "", fixedClock(tt.now))
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				assert.Equal(t, models.ReasonExpired, result.Reason)
			}
		})
	}
}

func TestGenerateJWTToken_ExpiryRoundsUp(t *testing.T) {
	tests := []struct {
		name     string
		issuedAt time.Time
		lifetime time.Duration
		wantExp  time.Time
		validAt  time.Duration
	}{
		{
			name:     "whole seconds kept",
			issuedAt: testEpoch,
			lifetime: time.Hour,
			wantExp:  testEpoch.Add(time.Hour),
			validAt:  time.Hour - time.Second,
		},
		{
			name:     "fractional issue instant",
			issuedAt: testEpoch.Add(900 * time.Millisecond),
			lifetime: 1500 * time.Millisecond,
			wantExp:  testEpoch.Add(3 * time.Second),
			validAt:  1100 * time.Millisecond,
		},
		{
			name:     "sub-second lifetime",
			issuedAt: testEpoch.Add(200 * time.Millisecond),
			lifetime: 500 * time.Millisecond,
			wantExp:  testEpoch.Add(time.Second),
			validAt:  100 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateJWTToken(JWTParams{
				Subject:  "alice",
				IssuedAt: tt.issuedAt,
				Lifetime: tt.lifetime,
				SignKey:  testKey,
			})
			require.NoError(t, err)

			assert.True(t, token.ExpiresAt.Equal(tt.wantExp), "exp %s", token.ExpiresAt)
			assert.False(t, token.ExpiresAt.Before(tt.issuedAt.Add(tt.lifetime)))

			result := ValidateJWTToken(token.SignedString, testKey, "", fixedClock(tt.issuedAt.Add(tt.validAt)))
			assert.True(t, result.Valid, "reason %q", result.Reason)

			result = ValidateJWTToken(token.SignedString, testKey, "", fixedClock(tt.wantExp))
			assert.Equal(t, models.ReasonExpired, result.Reason)
		})
	}
}

func TestValidateJWTToken_Rejections(t *testing.T) {
	valid := issueTestToken(t, JWTParams{Subject: "alice"})
	now := fixedClock(testEpoch.Add(time.Minute))

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(testEpoch),
		ExpiresAt: jwt.NewNumericDate(testEpoch.Add(time.Hour)),
	}).SignedString(testKey)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(testEpoch),
		ExpiresAt: jwt.NewNumericDate(testEpoch.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  "alice",
		IssuedAt: jwt.NewNumericDate(testEpoch),
	}).SignedString(testKey)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(testEpoch),
		ExpiresAt: jwt.NewNumericDate(testEpoch.Add(time.Hour)),
	}).SignedString(testKey)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		reason models.TokenInvalidReason
	}{
		{name: "empty", token: "", reason: models.ReasonEmpty},
		{name: "whitespace", token: "   ", reason: models.ReasonEmpty},
		{name: "garbage", token: "not-a-token", reason: models.ReasonMalformed},
		{name: "two segments", token: "a.b", reason: models.ReasonMalformed},
		{name: "bad base64 header", token: "!!!." + strings.SplitN(valid, ".", 2)[1], reason: models.ReasonMalformed},
		{name: "payload not json", token: replacePayload(t, valid, "not json"), reason: models.ReasonMalformed},
		{name: "tampered payload", token: replacePayload(t, valid, `{"sub":"mallory","iat":1767268800,"exp":1767272400}`), reason: models.ReasonSignatureMismatch},
		{name: "tampered signature", token: flipSegmentBit(t, valid, 2), reason: models.ReasonSignatureMismatch},
		{name: "wrong key", token: issueTestToken(t, JWTParams{Subject: "alice", SignKey: otherKey}), reason: models.ReasonSignatureMismatch},
		{name: "hs512", token: hs512, reason: models.ReasonUnsupported},
		{name: "alg none", token: none, reason: models.ReasonUnsupported},
		{name: "missing exp", token: noExp, reason: models.ReasonInvalidClaims},
		{name: "missing subject", token: noSubject, reason: models.ReasonInvalidClaims},
		{name: "issued in the future", token: issueTestToken(t, JWTParams{Subject: "alice", IssuedAt: testEpoch.Add(10 * time.Minute)}), reason: models.ReasonInvalidClaims},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				result := ValidateJWTToken(tt.token, testKey, "", now)
				assert.False(t, result.Valid)
				assert.Empty(t, result.Subject)
				assert.Equal(t, tt.reason, result.Reason)
			})
		})
	}
}

func TestValidateJWTToken_Issuer(t *testing.T) {
	now := fixedClock(testEpoch.Add(time.Minute))
	token := issueTestToken(t, JWTParams{Subject: "alice", Issuer: "go-user-auth"})

	assert.True(t, ValidateJWTToken(token, testKey, "go-user-auth", now).Valid)
	assert.True(t, ValidateJWTToken(token, testKey, "", now).Valid)

	result := ValidateJWTToken(token, testKey, "someone-else", now)
	assert.False(t, result.Valid)
	assert.Equal(t, models.ReasonInvalidClaims, result.Reason)
}

func TestValidateJWTToken_NilClockUsesWallTime(t *testing.T) {
	token := issueTestToken(t, JWTParams{Subject: "alice", IssuedAt: time.Now(), Lifetime: time.Minute})

	assert.True(t, ValidateJWTToken(token, testKey, "", nil).Valid)
}

func TestInvalidReason(t *testing.T) {
	assert.Equal(t, models.ReasonInvalidClaims, invalidReason(errors.New("other")))
	assert.Equal(t, models.ReasonExpired, invalidReason(errors.Join(jwt.ErrTokenInvalidClaims, jwt.ErrTokenExpired)))
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "scheme and space", header: "Bearer ", wantErr: true},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "token without scheme", header: "abc.def.ghi", wantErr: true},
		{name: "extra parts", header: "Bearer abc def", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubjectFromJWT(t *testing.T) {
	token := issueTestToken(t, JWTParams{Subject: "alice"})

	sub, err := SubjectFromJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", sub)

	_, err = SubjectFromJWT("garbage")
	assert.Error(t, err)
}
