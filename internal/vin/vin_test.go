package vin_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drivelog/drivelog-api/internal/vin"
)

// knownValid holds VINs with a correct check digit at position 9.
var knownValid = []string{
	"XK2DEG0D4PCF43ESF", "4DHRD2DR5JV3KHWMG", "N0GEDP848660WSMSF",
	"W8Y5VEH9XLYK83CEX", "YZ86EFU71DW5V1ZB6", "ZLH8DPVJ6228FL52U",
	"J4U3Z1RK2MKRRA8MT", "VAK30XJ9562222G72", "DNEP5LHY3GAKG0BEP",
	"1KTZ07HHX677WFKGY", "T7LBP0KBXFT0LZR9Y", "RNS2RN8Z2BU7TNZ5Z",
	"0FRGR7NYX7A7ZFH1N", "7M4YF2624LLJBK6K7", "ZKJBAGJ47PBTPV9SX",
	"T3JDZ6398K9B5MAKM", "K7HDX7GD6NUCG95BE", "5X99NU5959STN5J3H",
	"25XES4EPXHK0KTJ6R", "G28LRL497Y3NZXF0B", "Y65B1YV91HRGFTUCM",
	"UJ4T2K98XFUDM4EUB", "FTFRETH69Y3UJCSHL", "TDMNWWPV69MUZBTCA",
	"B9N97S5GX829WPRYN", "J2ZDJAET1LDF19VSV", "C6MLU5AT3YXSCWPZM",
	"AY1F7U9N09AFTFK2C", "2BWWRFK168KVKC949", "J9BRFBCJ0G15DBS8T",
	"A6E9FE7T0TSPR681E", "7VCNEKYT2JA7D8UGP", "8VV666HN2F7BV6E95",
	"U1PPEFKT3J9UH0R88", "2BLA852W53Z1XHYAX", "Y2HNAVT0721E04UDU",
	"GDVKSU496N04B2PFD", "35JV8DJL23YVWTT2S", "W72HLLEP38R5Y54JN",
	"SFMYFXS05NB313P1U", "YD8U0J9P0US1254WB", "JC478AE255SGRKKG6",
	"FCAJRCWJ04HGEWN1T", "RAAW6UXS5SSB3WDBN", "83FTR40R0CY302NAV",
	"9EP8NWNR3RTVG8MR8", "3DK2DPBK2DDM25XHF", "LYNM6CW16Y5LGAFUF",
	"Z3HP1ZW41D7N05NX0", "7B3S2C1CXEDTNEY0U", "YCTXUWAE7RG761T48",
	"J8MAWKSX860F9N2LS", "3EC7XL4G1TFPG385M", "RJ36SHVV1U0TTN5SM",
}

func TestValidate_KnownValid(t *testing.T) {
	for _, code := range knownValid {
		t.Run(code, func(t *testing.T) {
			got, err := vin.Validate(code)
			assert.NoError(t, err)
			assert.Equal(t, code, got)
		})
	}
}

func TestValidate_Length(t *testing.T) {
	tests := []string{
		"",
		"1",
		"XK2DEG0D4PCF43ES",    // 16 chars
		"XK2DEG0D4PCF43ESF1",  // 18 chars
		strings.Repeat("1", 100),
	}
	for _, code := range tests {
		_, err := vin.Validate(code)
		assert.ErrorIs(t, err, vin.ErrFormat, "code %q", code)
	}
}

func TestValidate_Charset(t *testing.T) {
	// I, O and Q are not legal VIN characters.
	tests := []string{
		"IK2DEG0D4PCF43ESF",
		"OK2DEG0D4PCF43ESF",
		"QK2DEG0D4PCF43ESF",
		"XK2DEG0D4PCF43ES-",
		"XK2DEG0D4PCF43ES ",
		"ХК2DEG0D4PCF43ESF", // leading cyrillic letters
	}
	for _, code := range tests {
		_, err := vin.Validate(code)
		assert.ErrorIs(t, err, vin.ErrFormat, "code %q", code)
	}
}

func TestValidate_ChecksumFlip(t *testing.T) {
	// Replacing the check digit with any other value must fail.
	code := knownValid[0]
	for _, c := range "0123456789X" {
		if byte(c) == code[8] {
			continue
		}
		flipped := code[:8] + string(c) + code[9:]
		_, err := vin.Validate(flipped)
		assert.ErrorIs(t, err, vin.ErrChecksum, "check digit %q", c)
	}
}

func TestValidate_WithoutChecksum(t *testing.T) {
	code := knownValid[0]
	flipped := code[:8] + "0" + code[9:]
	if flipped == code {
		flipped = code[:8] + "1" + code[9:]
	}

	_, err := vin.Validate(flipped)
	assert.ErrorIs(t, err, vin.ErrChecksum)

	got, err := vin.Validate(flipped, vin.WithoutChecksum())
	assert.NoError(t, err)
	assert.Equal(t, flipped, got)

	// Format is still enforced with the checksum off.
	_, err = vin.Validate("too-short", vin.WithoutChecksum())
	assert.ErrorIs(t, err, vin.ErrFormat)
}

func TestValidate_Normalizes(t *testing.T) {
	code := knownValid[0]
	got, err := vin.Validate(strings.ToLower(code))
	assert.NoError(t, err)
	assert.Equal(t, code, got)
}

func TestCheckDigit_RemainderTen(t *testing.T) {
	// Every valid VIN with 'X' at position 9 sums to remainder 10.
	for _, code := range knownValid {
		if code[8] == 'X' {
			assert.Equal(t, byte('X'), vin.CheckDigit(code))
		}
	}
}
