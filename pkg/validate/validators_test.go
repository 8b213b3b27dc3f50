package validate

import (
	"strings"
	"testing"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		wantValid bool
	}{
		{name: "plain address", email: "john@example.com", wantValid: true},
		{name: "subdomain", email: "a.b@mail.example.co", wantValid: true},
		{name: "plus tag", email: "john+laundry@example.com", wantValid: true},
		{name: "empty", email: "", wantValid: false},
		{name: "no at sign", email: "not-an-email", wantValid: false},
		{name: "two at signs", email: "a@b@example.com", wantValid: false},
		{name: "missing tld", email: "john@example", wantValid: false},
		{name: "consecutive dots in domain", email: "john@exa..mple.com", wantValid: false},
		{name: "leading dot on domain", email: "john@.example.com", wantValid: false},
		{name: "local part too long", email: strings.Repeat("a", 65) + "@example.com", wantValid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, reason := Email(tt.email)
			if valid != tt.wantValid {
				t.Errorf("Email(%q) = %v (%s), want %v", tt.email, valid, reason, tt.wantValid)
			}
			if !valid && reason == "" {
				t.Errorf("Email(%q) invalid but no reason given", tt.email)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name       string
		phone      string
		wantValid  bool
		wantReason string
	}{
		{name: "dashed us number", phone: "555-123-4567", wantValid: true},
		{name: "plain ten digits", phone: "2405551234", wantValid: true},
		{name: "with country code", phone: "+12405551234", wantValid: true},
		{name: "parens and spaces", phone: "(240) 555-1234", wantValid: true},
		{name: "international", phone: "+442071234567", wantValid: true},
		{name: "too short", phone: "123", wantValid: false, wantReason: "too short"},
		{name: "too long", phone: "123456789012345678", wantValid: false, wantReason: "too long"},
		{name: "letters", phone: "24055512ab", wantValid: false, wantReason: "digits"},
		{name: "empty", phone: "", wantValid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, reason := Phone(tt.phone)
			if valid != tt.wantValid {
				t.Errorf("Phone(%q) = %v (%s), want %v", tt.phone, valid, reason, tt.wantValid)
			}
			if tt.wantReason != "" && !strings.Contains(reason, tt.wantReason) {
				t.Errorf("Phone(%q) reason = %q, want it to mention %q", tt.phone, reason, tt.wantReason)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	tests := []struct {
		name      string
		address   string
		wantValid bool
	}{
		{name: "street address", address: "123 Main Street, Silver Spring MD", wantValid: true},
		{name: "apartment", address: "4501 Forbes Blvd Apt 2B, Lanham", wantValid: true},
		{name: "empty", address: "", wantValid: false},
		{name: "too short", address: "12 Oak", wantValid: false},
		{name: "no street number", address: "Main Street near the park", wantValid: false},
		{name: "script tag", address: "123 Main St <script>alert(1)</script>", wantValid: false},
		{name: "sql keyword", address: "123 Main St; DROP TABLE orders", wantValid: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, reason := Address(tt.address)
			if valid != tt.wantValid {
				t.Errorf("Address(%q) = %v (%s), want %v", tt.address, valid, reason, tt.wantValid)
			}
		})
	}
}
