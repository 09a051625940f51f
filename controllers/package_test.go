package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"tripverse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPackageBody() map[string]interface{} {
	return map[string]interface{}{
		"name":        "Alleppey Backwaters",
		"description": "Houseboat cruise",
		"destination": "Alleppey",
		"days":        2,
		"nights":      1,
		"price":       7200,
		"images":      []string{"https://images.tripverse.dev/alleppey.jpg"},
	}
}

func TestAdminCreatePackage(t *testing.T) {
	db := setupTestDB(t)

	r := newTestRouter()
	r.POST("/create", authAs(1, "admin"), AdminCreatePackage(db))

	w := performJSON(t, r, http.MethodPost, "/create", validPackageBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var pkg models.Package
	require.NoError(t, db.Where("name = ?", "Alleppey Backwaters").First(&pkg).Error)
	assert.Equal(t, 7200.0, pkg.Price)
	assert.Equal(t, 0.0, pkg.Rating)
	assert.Equal(t, 0, pkg.TotalRatings)
}

func TestAdminCreatePackageValidation(t *testing.T) {
	db := setupTestDB(t)

	r := newTestRouter()
	r.POST("/create", authAs(1, "admin"), AdminCreatePackage(db))

	cases := []struct {
		name   string
		mutate func(map[string]interface{})
		want   string
	}{
		{"missing name", func(b map[string]interface{}) { b["name"] = "" }, "name"},
		{"price floor", func(b map[string]interface{}) { b["price"] = 300 }, "500"},
		{"no images", func(b map[string]interface{}) { b["images"] = []string{} }, "image"},
		{"discount above price", func(b map[string]interface{}) {
			b["offer"] = true
			b["discount_price"] = 9000
		}, "discount"},
		{"offer without discount", func(b map[string]interface{}) {
			b["offer"] = true
			b["discount_price"] = 0
		}, "discount"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := validPackageBody()
			tc.mutate(body)
			w := performJSON(t, r, http.MethodPost, "/create", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, decodeBody(t, w)["message"], tc.want)
		})
	}

	var count int64
	db.Model(&models.Package{}).Count(&count)
	assert.Zero(t, count)
}

func TestAdminUpdatePackageKeepsRatingSummary(t *testing.T) {
	db := setupTestDB(t)
	pkg := createTestPackage(t, db, 1000, 0, false)
	require.NoError(t, db.Model(&models.Package{}).Where("id = ?", pkg.ID).
		Updates(map[string]interface{}{"rating": 4.5, "total_ratings": 12}).Error)

	r := newTestRouter()
	r.POST("/update/:id", authAs(1, "admin"), AdminUpdatePackage(db))

	body := validPackageBody()
	body["price"] = 1500
	w := performJSON(t, r, http.MethodPost, fmt.Sprintf("/update/%d", pkg.ID), body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var saved models.Package
	require.NoError(t, db.First(&saved, pkg.ID).Error)
	assert.Equal(t, 1500.0, saved.Price)
	assert.Equal(t, 4.5, saved.Rating)
	assert.Equal(t, 12, saved.TotalRatings)
}

func TestGetPackagesFilters(t *testing.T) {
	db := setupTestDB(t)

	munnar := createTestPackage(t, db, 1000, 800, true)
	other := models.Package{
		Name:        "Wayanad Wild Trails",
		Description: "Treks",
		Destination: "Wayanad",
		Days:        4,
		Price:       6100,
	}
	require.NoError(t, db.Create(&other).Error)

	r := newTestRouter()
	r.GET("/packages", GetPackages(db))

	w := performJSON(t, r, http.MethodGet, "/packages?offer=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), munnar.Name)
	assert.NotContains(t, w.Body.String(), other.Name)

	w = performJSON(t, r, http.MethodGet, "/packages?searchTerm=wayanad", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), other.Name)
	assert.NotContains(t, w.Body.String(), munnar.Name)
}

func TestGetPackageDataNotFound(t *testing.T) {
	db := setupTestDB(t)

	r := newTestRouter()
	r.GET("/package/:id", GetPackageData(db))

	w := performJSON(t, r, http.MethodGet, "/package/424242", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
}

func TestAdminDeletePackageRemovesRatings(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	pkg := createTestPackage(t, db, 1000, 0, false)
	require.NoError(t, db.Create(&models.Rating{PackageID: pkg.ID, UserID: user.ID, Value: 4}).Error)

	r := newTestRouter()
	r.DELETE("/delete/:id", authAs(1, "admin"), AdminDeletePackage(db))

	w := performJSON(t, r, http.MethodDelete, fmt.Sprintf("/delete/%d", pkg.ID), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var pkgCount, ratingCount int64
	db.Model(&models.Package{}).Count(&pkgCount)
	db.Model(&models.Rating{}).Count(&ratingCount)
	assert.Zero(t, pkgCount)
	assert.Zero(t, ratingCount)
}
