package naver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleResponse = `{
	"total": 2,
	"items": [
		{"title": "Apple <b>AirPods</b> Pro", "link": "https://shop.example/1", "image": "https://img.example/1.jpg", "lprice": "219000"},
		{"title": "AirPods case", "link": "https://shop.example/2", "image": "https://img.example/2.jpg", "lprice": "9900"}
	]
}`

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/search/shop.json" {
			t.Errorf("path = %q, want /v1/search/shop.json", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "AirPods" {
			t.Errorf("query = %q, want %q", got, "AirPods")
		}
		if got := r.Header.Get("X-Naver-Client-Id"); got != "id" {
			t.Errorf("client id header = %q, want %q", got, "id")
		}
		if got := r.Header.Get("X-Naver-Client-Secret"); got != "secret" {
			t.Errorf("client secret header = %q, want %q", got, "secret")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("id", "secret", srv.URL)

	items, err := client.Search(context.Background(), "AirPods", 2)
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Search() returned %d items, want 2", len(items))
	}
	if items[0].Title != "Apple AirPods Pro" {
		t.Errorf("title = %q, want markup stripped", items[0].Title)
	}
	if items[0].Lprice != 219000 {
		t.Errorf("lprice = %d, want 219000", items[0].Lprice)
	}
}

func TestSearchNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL("id", "secret", srv.URL)

	_, err := client.Search(context.Background(), "AirPods", 1)
	if err == nil {
		t.Error("Search() expected error for non-200 response")
	}
}

func TestEnabled(t *testing.T) {
	if NewClient("", "").Enabled() {
		t.Error("Enabled() = true without credentials")
	}
	if NewClient("id", "").Enabled() {
		t.Error("Enabled() = true without secret")
	}
	if !NewClient("id", "secret").Enabled() {
		t.Error("Enabled() = false with credentials")
	}
}
