package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestPageTable_ListsAllPagesInOrder(t *testing.T) {
	e := echo.New()
	registerPageRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/pages", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var pages []PageRoute
	if err := json.Unmarshal(rec.Body.Bytes(), &pages); err != nil {
		t.Fatalf("decode pages: %v", err)
	}
	if len(pages) != 13 {
		t.Fatalf("expected 13 pages, got %d", len(pages))
	}
	if pages[0].Name != "home" || pages[0].Path != "/" {
		t.Fatalf("home must come first, got %+v", pages[0])
	}
	if pages[len(pages)-1].Name != "formdialog" {
		t.Fatalf("formdialog must come last, got %+v", pages[len(pages)-1])
	}
}

func TestPageTable_ResolvesStaticPage(t *testing.T) {
	e := echo.New()
	registerPageRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/pages/login", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var page PageRoute
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if page.Name != "login" || page.Component != "LoginView" {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Props {
		t.Fatalf("login takes no props")
	}
}

func TestPageTable_ApplicationPageTakesProps(t *testing.T) {
	e := echo.New()
	registerPageRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/pages/application/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var page PageRoute
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if page.Name != "application" || !page.Props {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestPageTable_UnknownPathIs404(t *testing.T) {
	e := echo.New()
	registerPageRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/pages/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
