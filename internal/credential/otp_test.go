// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-autofill/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// base32 of the RFC 6238 reference seed "12345678901234567890"
const rfcSeed = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestParseOtp_BareSeed(t *testing.T) {
	spec, err := ParseOtp("jbswy3dpehpk3pxp")
	require.NoError(t, err)

	assert.Equal(t, "totp", spec.Params.Type)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", spec.Params.Secret)
	assert.Equal(t, "sha1", spec.Params.Algorithm)
	assert.Equal(t, 6, spec.Params.Digits)
	assert.Equal(t, 30, spec.Params.Period)
}

func TestParseOtp_FullURI(t *testing.T) {
	spec, err := ParseOtp("otpauth://totp/Example:alice?secret=JBSWY3DPEHPK3PXP&algorithm=SHA256&digits=8&period=60")
	require.NoError(t, err)

	assert.Equal(t, "totp", spec.Params.Type)
	assert.Equal(t, "JBSWY3DPEHPK3PXP", spec.Params.Secret)
	assert.Equal(t, "sha256", spec.Params.Algorithm)
	assert.Equal(t, 8, spec.Params.Digits)
	assert.Equal(t, 60, spec.Params.Period)
}

func TestParseOtp_OtpHostDefaultsToTotp(t *testing.T) {
	spec, err := ParseOtp("otpauth://otp/Example?secret=JBSWY3DPEHPK3PXP")
	require.NoError(t, err)
	assert.Equal(t, "totp", spec.Params.Type)
}

func TestParseOtp_HotpType(t *testing.T) {
	spec, err := ParseOtp("otpauth://HOTP/Example?secret=JBSWY3DPEHPK3PXP")
	require.NoError(t, err)
	assert.Equal(t, "hotp", spec.Params.Type)
}

func TestParseOtp_MissingSecret(t *testing.T) {
	_, err := ParseOtp("otpauth://totp/Example:alice?digits=6")
	assert.ErrorIs(t, err, ErrOtpSecretMissing)
}

func TestParseOtp_KeepsRaw(t *testing.T) {
	raw := "otpauth://totp/Example?secret=JBSWY3DPEHPK3PXP"
	spec, err := ParseOtp(raw)
	require.NoError(t, err)
	assert.Equal(t, raw, spec.Raw)
}

func TestGenerateOTP_ReferenceVectors(t *testing.T) {
	// RFC 6238 appendix B, sha1 column, truncated to 6 digits
	tests := []struct {
		unix int64
		want string
	}{
		{59, "287082"},
		{1111111109, "081804"},
		{1234567890, "005924"},
	}

	params := models.OtpParams{
		Type:      "totp",
		Secret:    rfcSeed,
		Algorithm: "sha1",
		Digits:    6,
		Period:    30,
	}

	for _, tt := range tests {
		got, err := GenerateOTP(params, time.Unix(tt.unix, 0))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "at t=%d", tt.unix)
	}
}

func TestGenerateOTP_LeadingZerosKept(t *testing.T) {
	params := models.OtpParams{Secret: rfcSeed, Algorithm: "sha1", Digits: 6, Period: 30}

	got, err := GenerateOTP(params, time.Unix(1234567890, 0))
	require.NoError(t, err)
	assert.Len(t, got, 6)
	assert.Equal(t, "005924", got)
}

func TestGenerateOTP_UnsupportedAlgorithm(t *testing.T) {
	params := models.OtpParams{Secret: rfcSeed, Algorithm: "md5", Digits: 6, Period: 30}

	_, err := GenerateOTP(params, time.Now())
	assert.ErrorIs(t, err, ErrUnsupportedOTPAlgorithm)
}

func TestGenerateOTP_ToleratesSeedFormatting(t *testing.T) {
	params := models.OtpParams{Algorithm: "sha1", Digits: 6, Period: 30}

	params.Secret = "gezd gnbv gy3t qojq gezd gnbv gy3t qojq"
	spaced, err := GenerateOTP(params, time.Unix(59, 0))
	require.NoError(t, err)
	assert.Equal(t, "287082", spaced)

	params.Secret = rfcSeed + "===="
	padded, err := GenerateOTP(params, time.Unix(59, 0))
	require.NoError(t, err)
	assert.Equal(t, "287082", padded)
}

func TestGenerateOTP_BadSeed(t *testing.T) {
	params := models.OtpParams{Secret: "not!base32", Algorithm: "sha1", Digits: 6, Period: 30}

	_, err := GenerateOTP(params, time.Now())
	assert.Error(t, err)
}

func TestGenerateOTP_ZeroValuesUseDefaults(t *testing.T) {
	params := models.OtpParams{Secret: rfcSeed, Algorithm: "sha1"}

	got, err := GenerateOTP(params, time.Unix(59, 0))
	require.NoError(t, err)
	assert.Equal(t, "287082", got)
}
