package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alcast/backoffice/internal/api/handlers"
	"github.com/alcast/backoffice/internal/model"
	"github.com/alcast/backoffice/internal/repository"
	"github.com/alcast/backoffice/internal/service"
	"github.com/alcast/backoffice/internal/testutil"
)

func TestSuppliers_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := handlers.NewSupplierHandler(service.NewSupplierService(repository.NewSupplierRepository(db)))

	testutil.NewSupplier().WithName("Alumar").Build(t, db)
	testutil.NewSupplier().WithName("CBA").Inactive().Build(t, db)

	t.Run("active only by default", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Suppliers(rec, testutil.NewRequestWithURLParams(http.MethodGet, "/api/suppliers", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		var suppliers []model.Supplier
		testutil.DecodeJSON(t, rec, &suppliers)
		if len(suppliers) != 1 {
			t.Errorf("Expected 1 active supplier, got %d", len(suppliers))
		}
	})

	t.Run("include_inactive returns all", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.Suppliers(rec, testutil.NewRequestWithURLParams(http.MethodGet, "/api/suppliers?include_inactive=true", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		var suppliers []model.Supplier
		testutil.DecodeJSON(t, rec, &suppliers)
		if len(suppliers) != 2 {
			t.Errorf("Expected 2 suppliers, got %d", len(suppliers))
		}
	})
}

func TestCreateSupplier(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := handlers.NewSupplierHandler(service.NewSupplierService(repository.NewSupplierRepository(db)))

	t.Run("creates a supplier", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/suppliers",
			map[string]any{"name": "Alumar", "city": "Sao Luis", "creditLimit": 100000}, nil)
		h.CreateSupplier(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
		var supplier model.Supplier
		testutil.DecodeJSON(t, rec, &supplier)
		if supplier.ID == "" {
			t.Error("Expected a generated supplier id")
		}
		if supplier.Name != "Alumar" {
			t.Errorf("Expected name Alumar, got %s", supplier.Name)
		}
		if !supplier.Active {
			t.Error("Expected new supplier to be active")
		}
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/suppliers",
			map[string]any{"city": "Sao Luis"}, nil)
		h.CreateSupplier(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", rec.Code)
		}
	})
}

func TestGetSupplier(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := handlers.NewSupplierHandler(service.NewSupplierService(repository.NewSupplierRepository(db)))

	created := testutil.NewSupplier().Build(t, db)

	t.Run("returns the supplier", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/suppliers/"+created.ID,
			map[string]string{"uuid": created.ID})
		h.GetSupplier(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
		var supplier model.Supplier
		testutil.DecodeJSON(t, rec, &supplier)
		if supplier.ID != created.ID {
			t.Errorf("Expected supplier %s, got %s", created.ID, supplier.ID)
		}
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		id := testutil.MakeID()
		rec := httptest.NewRecorder()
		req := testutil.NewRequestWithURLParams(http.MethodGet, "/api/suppliers/"+id,
			map[string]string{"uuid": id})
		h.GetSupplier(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", rec.Code)
		}
	})
}

func TestUpdateSupplier(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := handlers.NewSupplierHandler(service.NewSupplierService(repository.NewSupplierRepository(db)))

	created := testutil.NewSupplier().WithName("Alumar").Build(t, db)

	rec := httptest.NewRecorder()
	req := testutil.NewJSONRequest(t, http.MethodPut, "/api/suppliers/"+created.ID,
		map[string]any{"name": "Alumar Consorcio"},
		map[string]string{"uuid": created.ID})
	h.UpdateSupplier(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var supplier model.Supplier
	testutil.DecodeJSON(t, rec, &supplier)
	if supplier.Name != "Alumar Consorcio" {
		t.Errorf("Expected updated name, got %s", supplier.Name)
	}
	// untouched fields survive the merge
	if supplier.City != created.City {
		t.Errorf("Expected city unchanged, got %s", supplier.City)
	}
}

func TestDeleteSupplier(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := handlers.NewSupplierHandler(service.NewSupplierService(repository.NewSupplierRepository(db)))

	created := testutil.NewSupplier().Build(t, db)

	rec := httptest.NewRecorder()
	req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/suppliers/"+created.ID,
		map[string]string{"uuid": created.ID})
	h.DeleteSupplier(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", rec.Code)
	}
}
