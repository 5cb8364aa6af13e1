package handler

import (
	"net/http/httptest"
	"testing"
)

func TestListParamsFromQueryDefaults(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/products", nil)

	params, ok := listParamsFromQuery(req)
	if !ok {
		t.Fatal("listParamsFromQuery() rejected empty query")
	}
	if params.Page != 0 || params.Size != 10 || params.SortBy != "id" || params.Asc {
		t.Errorf("unexpected defaults: %+v", params)
	}
}

func TestListParamsFromQueryOneIndexedPage(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/products?page=3&size=20&sortBy=lprice&isAsc=true", nil)

	params, ok := listParamsFromQuery(req)
	if !ok {
		t.Fatal("listParamsFromQuery() rejected valid query")
	}
	if params.Page != 2 {
		t.Errorf("Page = %d, want 2 (1-indexed on the wire)", params.Page)
	}
	if params.Size != 20 || params.SortBy != "lprice" || !params.Asc {
		t.Errorf("unexpected params: %+v", params)
	}
}

func TestListParamsFromQueryInvalid(t *testing.T) {
	for _, query := range []string{
		"page=0",
		"page=-1",
		"page=abc",
		"size=0",
		"size=101",
		"isAsc=maybe",
	} {
		req := httptest.NewRequest("GET", "/api/products?"+query, nil)
		if _, ok := listParamsFromQuery(req); ok {
			t.Errorf("listParamsFromQuery() accepted %q", query)
		}
	}
}
