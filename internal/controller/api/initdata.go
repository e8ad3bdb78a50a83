package api

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// UserInfo is the identity block carried inside Telegram WebApp init data.
type UserInfo struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// parseInitData extracts the user from an X-Telegram-Init-Data header
// value, which is query-string encoded with a JSON "user" field.
func parseInitData(initData string) (*UserInfo, error) {
	if initData == "" {
		return nil, fmt.Errorf("init data is empty")
	}

	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, err
	}

	rawUser := values.Get("user")
	if rawUser == "" {
		return nil, fmt.Errorf("init data has no user field")
	}

	var user UserInfo
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, err
	}
	if user.ID == 0 {
		return nil, fmt.Errorf("init data user has no id")
	}

	return &user, nil
}
