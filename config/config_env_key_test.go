package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl": "https://shop.example.com/api",
		},
		"session": map[string]any{
			"bucketUrl": "",
		},
		"payment": map[string]any{
			"publicKey":    "",
			"callbackPort": 0,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "SESSION_BUCKETURL", want: "session.bucketUrl"},
		{envKey: "PAYMENT_PUBLICKEY", want: "payment.publicKey"},
		{envKey: "PAYMENT_CALLBACKPORT", want: "payment.callbackPort"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
