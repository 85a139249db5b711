package provider

import "testing"

func TestValidateBaseURL(t *testing.T) {
	valid := []string{
		"https://api.openai.com/v1",
		"https://api.deepseek.com/v1",
		"http://proxy.example.com:8080",
	}
	for _, u := range valid {
		if err := validateBaseURL(u); err != nil {
			t.Errorf("validateBaseURL(%q): unexpected error: %v", u, err)
		}
	}

	invalid := []string{
		"",
		"api.openai.com",
		"ftp://api.openai.com",
		"https://",
		"http://localhost",
		"http://api.localhost",
		"http://127.0.0.1:11434",
		"http://[::1]/v1",
		"http://0.0.0.0",
		"https://10.1.2.3",
		"https://172.16.0.1",
		"https://192.168.1.10",
		"https://169.254.169.254",
		"https://[fd00::1]",
	}
	for _, u := range invalid {
		if err := validateBaseURL(u); err == nil {
			t.Errorf("validateBaseURL(%q): expected error", u)
		}
	}
}

func TestIsPrivateHostIgnoresNames(t *testing.T) {
	if isPrivateHost("10.example.com") {
		t.Error("hostnames should not be treated as private IPs")
	}
}
