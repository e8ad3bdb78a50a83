package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInitData(t *testing.T) {
	initData := url.Values{
		"user":      {`{"id": 12345, "username": "viewer", "first_name": "Vic", "last_name": "Tor"}`},
		"auth_date": {"1700000000"},
		"hash":      {"abcdef"},
	}.Encode()

	user, err := parseInitData(initData)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), user.ID)
	assert.Equal(t, "viewer", user.Username)
	assert.Equal(t, "Vic", user.FirstName)
	assert.Equal(t, "Tor", user.LastName)
}

func TestParseInitDataFailures(t *testing.T) {
	_, err := parseInitData("")
	assert.Error(t, err)

	_, err = parseInitData("auth_date=1700000000")
	assert.Error(t, err, "missing user field")

	_, err = parseInitData(url.Values{"user": {"{not json"}}.Encode())
	assert.Error(t, err)

	_, err = parseInitData(url.Values{"user": {`{"username": "no-id"}`}}.Encode())
	assert.Error(t, err, "user without id is unusable")
}
