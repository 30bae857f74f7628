package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/services/finance/mocks"
)

func TestAdvise_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdviceUC := mocks.NewMockAdviceUC(ctrl)
	adviceHandler := NewAdviceHandler(mockAdviceUC)

	e := echo.New()
	userID := uuid.New()
	requestBody := `{
		"user_id": "` + userID.String() + `",
		"message": "can I afford a concert ticket?"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/advice", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockAdviceUC.EXPECT().
		Advise(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, r *models.AdviceRequest) (*models.AdviceResponse, error) {
			assert.Equal(t, userID, r.UserID)
			assert.Nil(t, r.Category)
			return &models.AdviceResponse{
				Status:  models.AdviceGo,
				Message: "You've used 50% of your $200 budget this week. Treat yourself!",
			}, nil
		})

	// Act
	err := adviceHandler.Advise(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "GO", data["status"])
}

func TestAdvise_CategoryScoped(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdviceUC := mocks.NewMockAdviceUC(ctrl)
	adviceHandler := NewAdviceHandler(mockAdviceUC)

	e := echo.New()
	userID := uuid.New()
	requestBody := `{
		"user_id": "` + userID.String() + `",
		"message": "another pizza night?",
		"category": "food"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/advice", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockAdviceUC.EXPECT().
		Advise(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, r *models.AdviceRequest) (*models.AdviceResponse, error) {
			if assert.NotNil(t, r.Category) {
				assert.Equal(t, "food", *r.Category)
			}
			return &models.AdviceResponse{Status: models.AdviceNope, Message: "over budget"}, nil
		})

	// Act
	err := adviceHandler.Advise(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdvise_MissingUserID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdviceUC := mocks.NewMockAdviceUC(ctrl)
	adviceHandler := NewAdviceHandler(mockAdviceUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/advice", strings.NewReader(`{"message": "thoughts?"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := adviceHandler.Advise(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "user_id is required", response["error"])
}

func TestAdvise_UseCaseError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdviceUC := mocks.NewMockAdviceUC(ctrl)
	adviceHandler := NewAdviceHandler(mockAdviceUC)

	e := echo.New()
	requestBody := `{"user_id": "` + uuid.New().String() + `", "message": "ok?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/advice", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockAdviceUC.EXPECT().
		Advise(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	// Act
	err := adviceHandler.Advise(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
