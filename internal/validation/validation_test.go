package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"minimum length", "pw123456", false},
		{"long passphrase", "correct horse battery staple", false},
		{"too short", "pw1234", true},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 129), true},
		{"exactly max", strings.Repeat("a", 128), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"simple", "testuser", false},
		{"with digits and dash", "user-42", false},
		{"with underscore", "some_user", false},
		{"too short", "ab", true},
		{"too long", strings.Repeat("a", 31), true},
		{"with space", "some user", true},
		{"with symbols", "user!", true},
		{"leading underscore", "_user", true},
		{"trailing hyphen", "user-", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"plain", "user@example.com", false},
		{"subdomain", "user@mail.example.co.uk", false},
		{"plus tag", "user+tag@example.com", false},
		{"missing at", "userexample.com", true},
		{"missing tld", "user@example", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
