package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestClientValidate(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path != "/validate-key" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get(APIKeyHeader) == "good-key" {
			w.Write([]byte(`{"valid":true,"user_id":1,"username":"ana"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	ctx := context.Background()

	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{name: "valid key", key: "good-key"},
		{name: "rejected key", key: "bad-key", wantErr: ErrInvalidKey},
		{name: "missing key", key: "", wantErr: ErrMissingKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.Validate(ctx, tt.key)
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if got := calls.Load(); got != 2 {
		t.Errorf("user service called %d times, want 2", got)
	}
}

func TestClientValidate_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(url, time.Second)
	if err := client.Validate(context.Background(), "any"); err == nil {
		t.Error("Validate() should fail closed when the user service is down")
	}
}
