package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"simple", "alice", false},
		{"with digits and separators", "alice_2.b-c", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 31), true},
		{"max length", strings.Repeat("a", 30), false},
		{"spaces inside", "alice smith", true},
		{"emoji", "alice😀", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Username(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "a@x.com", false},
		{"subdomain", "a@mail.example.co.uk", false},
		{"empty", "", true},
		{"no at", "ax.com", true},
		{"no domain dot", "a@xcom", true},
		{"spaces", "a b@x.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Email(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("pw123456"))
	assert.NoError(t, Password("123456"))
	assert.Error(t, Password("12345"))
	assert.Error(t, Password(""))
}
