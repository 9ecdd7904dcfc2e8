package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"macrofit/internal/controllers"
	"macrofit/internal/models"
	"macrofit/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupNutritionControllerWithMock() (*controllers.NutritionController, *mocks.MockNutritionEntryRepository) {
	mockRepo := new(mocks.MockNutritionEntryRepository)
	controller := controllers.NewNutritionController(mockRepo)
	return controller, mockRepo
}

func TestCreateNutritionEntry(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		setupMock      func(*mocks.MockNutritionEntryRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "successful creation",
			body: map[string]interface{}{
				"food_name": "Grilled Chicken", "calories": 450,
				"protein": 40, "carbs": 10, "fat": 25,
			},
			setupMock: func(m *mocks.MockNutritionEntryRepository) {
				m.On("Create", mock.AnythingOfType("*models.NutritionEntry")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Nutrition entry created successfully",
		},
		{
			name:           "missing food name",
			body:           map[string]interface{}{"calories": 450},
			setupMock:      func(m *mocks.MockNutritionEntryRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request data",
		},
		{
			name: "repository failure",
			body: map[string]interface{}{"food_name": "Oats"},
			setupMock: func(m *mocks.MockNutritionEntryRepository) {
				m.On("Create", mock.AnythingOfType("*models.NutritionEntry")).Return(errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to create nutrition entry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupNutritionControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupProfileTestRouter()
			router.Use(addAuthContext(1))
			router.POST("/nutrition", controller.CreateNutritionEntry)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest("POST", "/nutrition", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			err := json.Unmarshal(w.Body.Bytes(), &response)
			assert.NoError(t, err)
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestCreateNutritionEntrySetsUserAndDate(t *testing.T) {
	controller, mockRepo := setupNutritionControllerWithMock()

	var created *models.NutritionEntry
	mockRepo.On("Create", mock.AnythingOfType("*models.NutritionEntry")).
		Run(func(args mock.Arguments) {
			created = args.Get(0).(*models.NutritionEntry)
		}).Return(nil)

	router := setupProfileTestRouter()
	router.Use(addAuthContext(7))
	router.POST("/nutrition", controller.CreateNutritionEntry)

	body, _ := json.Marshal(map[string]interface{}{"food_name": "Banana", "calories": 105})
	req := httptest.NewRequest("POST", "/nutrition", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), created.UserID)
	assert.False(t, created.Date.IsZero())
}

func TestGetNutritionEntries(t *testing.T) {
	controller, mockRepo := setupNutritionControllerWithMock()
	entries := []models.NutritionEntry{
		{ID: 1, UserID: 1, FoodName: "Oats", Calories: 300, Date: time.Now()},
		{ID: 2, UserID: 1, FoodName: "Eggs", Calories: 210, Date: time.Now()},
	}
	mockRepo.On("FindByUserIDAndDateRange", uint(1), mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(entries, nil)

	router := setupProfileTestRouter()
	router.Use(addAuthContext(1))
	router.GET("/nutrition", controller.GetNutritionEntries)

	req := httptest.NewRequest("GET", "/nutrition?start_date=2025-06-02&end_date=2025-06-08", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	mockRepo.AssertExpectations(t)
}

func TestGetNutritionEntriesBadRange(t *testing.T) {
	controller, _ := setupNutritionControllerWithMock()

	router := setupProfileTestRouter()
	router.Use(addAuthContext(1))
	router.GET("/nutrition", controller.GetNutritionEntries)

	req := httptest.NewRequest("GET", "/nutrition?start_date=junk&end_date=2025-06-08", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteNutritionEntry(t *testing.T) {
	tests := []struct {
		name           string
		entryID        string
		setupMock      func(*mocks.MockNutritionEntryRepository)
		expectedStatus int
	}{
		{
			name:    "successful deletion",
			entryID: "3",
			setupMock: func(m *mocks.MockNutritionEntryRepository) {
				m.On("FindByID", uint(3)).Return(&models.NutritionEntry{ID: 3, UserID: 1}, nil)
				m.On("Delete", uint(3)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid id",
			entryID:        "abc",
			setupMock:      func(m *mocks.MockNutritionEntryRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "entry belongs to another user",
			entryID: "3",
			setupMock: func(m *mocks.MockNutritionEntryRepository) {
				m.On("FindByID", uint(3)).Return(&models.NutritionEntry{ID: 3, UserID: 2}, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, mockRepo := setupNutritionControllerWithMock()
			tt.setupMock(mockRepo)

			router := setupProfileTestRouter()
			router.Use(addAuthContext(1))
			router.DELETE("/nutrition/:id", controller.DeleteNutritionEntry)

			req := httptest.NewRequest("DELETE", "/nutrition/"+tt.entryID, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockRepo.AssertExpectations(t)
		})
	}
}
