package helpers

import (
	"net/http/httptest"
	"os"
	"testing"

	"github.com/denmor86/ya-beautystudio/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize("error"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestClientIP(t *testing.T) {
	testCases := []struct {
		TestName   string
		Headers    map[string]string
		RemoteAddr string
		Expected   string
	}{
		{TestName: "Forwarded chain #1", Headers: map[string]string{"X-Forwarded-For": "8.8.8.8, 10.0.0.1"}, RemoteAddr: "10.0.0.2:1234", Expected: "8.8.8.8"},
		{TestName: "Real IP #2", Headers: map[string]string{"X-Real-IP": "1.1.1.1"}, RemoteAddr: "10.0.0.2:1234", Expected: "1.1.1.1"},
		{TestName: "Remote addr #3", RemoteAddr: "192.168.1.5:5555", Expected: "192.168.1.5"},
		{TestName: "Remote addr without port #4", RemoteAddr: "192.168.1.6", Expected: "192.168.1.6"},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tc.RemoteAddr
			for k, v := range tc.Headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r); got != tc.Expected {
				t.Errorf("Expected %q, got %q", tc.Expected, got)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("secret"), nil)

	testCases := []struct {
		TestName string
		Claims   map[string]interface{}
		Expected bool
	}{
		{TestName: "Admin #1", Claims: map[string]interface{}{"role": "admin"}, Expected: true},
		{TestName: "Other role #2", Claims: map[string]interface{}{"role": "staff"}, Expected: false},
		{TestName: "No role #3", Claims: map[string]interface{}{"sub": "1"}, Expected: false},
	}
	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			token, _, err := ja.Encode(tc.Claims)
			if err != nil {
				t.Fatalf("Failed to encode token: %v", err)
			}
			ctx := jwtauth.NewContext(httptest.NewRequest("GET", "/", nil).Context(), token, nil)
			if got := IsAdmin(ctx); got != tc.Expected {
				t.Errorf("Expected %v, got %v", tc.Expected, got)
			}
		})
	}
}
