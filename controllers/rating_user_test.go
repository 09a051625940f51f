package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"tripverse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGiveRatingRecomputesAverage(t *testing.T) {
	db := setupTestDB(t)
	u1 := createTestUser(t, db, "one@example.com")
	u2 := createTestUser(t, db, "two@example.com")
	pkg := createTestPackage(t, db, 1000, 0, false)

	r := newTestRouter()
	r.POST("/rate1", authAs(u1.ID, "user"), GiveRating(db))
	r.POST("/rate2", authAs(u2.ID, "user"), GiveRating(db))
	r.GET("/average/:id", GetAverageRating(db))

	w := performJSON(t, r, http.MethodPost, "/rate1", map[string]interface{}{
		"package_id": pkg.ID,
		"rating":     5,
		"review":     "Stunning views",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = performJSON(t, r, http.MethodGet, fmt.Sprintf("/average/%d", pkg.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, 5.0, body["rating"])
	assert.Equal(t, 1.0, body["totalRatings"])

	w = performJSON(t, r, http.MethodPost, "/rate2", map[string]interface{}{
		"package_id": pkg.ID,
		"rating":     3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = performJSON(t, r, http.MethodGet, fmt.Sprintf("/average/%d", pkg.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, 4.0, body["rating"])
	assert.Equal(t, 2.0, body["totalRatings"])

	// the denormalized cache on the package matches the rating rows
	var saved models.Package
	require.NoError(t, db.First(&saved, pkg.ID).Error)
	assert.Equal(t, 4.0, saved.Rating)
	assert.Equal(t, 2, saved.TotalRatings)

	var rows int64
	db.Model(&models.Rating{}).Where("package_id = ?", pkg.ID).Count(&rows)
	assert.Equal(t, int64(2), rows)
}

func TestGiveRatingRoundsToOneDecimal(t *testing.T) {
	db := setupTestDB(t)
	pkg := createTestPackage(t, db, 1000, 0, false)

	r := newTestRouter()
	for i, v := range []float64{5, 4, 4} {
		u := createTestUser(t, db, fmt.Sprintf("user%d@example.com", i))
		path := fmt.Sprintf("/rate%d", i)
		r.POST(path, authAs(u.ID, "user"), GiveRating(db))
		w := performJSON(t, r, http.MethodPost, path, map[string]interface{}{
			"package_id": pkg.ID,
			"rating":     v,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	var saved models.Package
	require.NoError(t, db.First(&saved, pkg.ID).Error)
	// 13/3 = 4.333... -> 4.3
	assert.Equal(t, 4.3, saved.Rating)
	assert.Equal(t, 3, saved.TotalRatings)
}

func TestGiveRatingValidation(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	pkg := createTestPackage(t, db, 1000, 0, false)

	r := newTestRouter()
	r.POST("/rate", authAs(user.ID, "user"), GiveRating(db))

	for _, v := range []float64{0, 6, -1} {
		w := performJSON(t, r, http.MethodPost, "/rate", map[string]interface{}{
			"package_id": pkg.ID,
			"rating":     v,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %v should be rejected", v)
	}

	// unknown package
	w := performJSON(t, r, http.MethodPost, "/rate", map[string]interface{}{
		"package_id": 99999,
		"rating":     4,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// no rating row slipped through, package summary untouched
	var count int64
	db.Model(&models.Rating{}).Count(&count)
	assert.Zero(t, count)

	var saved models.Package
	require.NoError(t, db.First(&saved, pkg.ID).Error)
	assert.Equal(t, 0.0, saved.Rating)
	assert.Equal(t, 0, saved.TotalRatings)
}

func TestGiveRatingRollsBackWhenSummaryWriteFails(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	pkg := createTestPackage(t, db, 1000, 0, false)

	require.NoError(t, db.Callback().Update().Before("gorm:update").
		Register("fail_summary_write", func(tx *gorm.DB) {
			if tx.Statement.Table == "packages" {
				tx.AddError(errors.New("storage failure"))
			}
		}))

	r := newTestRouter()
	r.POST("/rate", authAs(user.ID, "user"), GiveRating(db))

	w := performJSON(t, r, http.MethodPost, "/rate", map[string]interface{}{
		"package_id": pkg.ID,
		"rating":     5,
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// the rating insert must not survive the failed summary write
	var count int64
	db.Model(&models.Rating{}).Count(&count)
	assert.Zero(t, count)

	var saved models.Package
	require.NoError(t, db.First(&saved, pkg.ID).Error)
	assert.Equal(t, 0.0, saved.Rating)
	assert.Equal(t, 0, saved.TotalRatings)
}

func TestGiveRatingConcurrentSubmissions(t *testing.T) {
	db := setupTestDB(t)
	pkg := createTestPackage(t, db, 1000, 0, false)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	values := []int{5, 4, 5, 4, 5, 4}

	r := newTestRouter()
	for i := range values {
		u := createTestUser(t, db, fmt.Sprintf("c%d@example.com", i))
		r.POST(fmt.Sprintf("/rate%d", i), authAs(u.ID, "user"), GiveRating(db))
	}

	codes := make([]int, len(values))
	var wg sync.WaitGroup
	for i, v := range values {
		wg.Add(1)
		go func(i, v int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"package_id": %d, "rating": %d}`, pkg.ID, v)
			req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/rate%d", i), strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			codes[i] = w.Code
		}(i, v)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusCreated, code, "submission %d", i)
	}

	// no submission's contribution may be lost from the aggregate
	var saved models.Package
	require.NoError(t, db.First(&saved, pkg.ID).Error)
	assert.Equal(t, 4.5, saved.Rating)
	assert.Equal(t, len(values), saved.TotalRatings)

	var rows int64
	db.Model(&models.Rating{}).Where("package_id = ?", pkg.ID).Count(&rows)
	assert.Equal(t, int64(len(values)), rows)
}

func TestGetRatingsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "buyer@example.com")
	pkg := createTestPackage(t, db, 1000, 0, false)

	for _, v := range []float64{2, 5} {
		require.NoError(t, db.Create(&models.Rating{
			PackageID: pkg.ID,
			UserID:    user.ID,
			Value:     v,
		}).Error)
	}

	r := newTestRouter()
	r.GET("/ratings/:id/:limit", GetRatings(db))

	w := performJSON(t, r, http.MethodGet, fmt.Sprintf("/ratings/%d/10", pkg.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["ratings"], 2)
	assert.Contains(t, w.Body.String(), `"rating":2`)
	assert.Contains(t, w.Body.String(), `"rating":5`)
}
