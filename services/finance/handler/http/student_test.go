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
	"github.com/bshiribaiev/hackfest/services/finance"
	"github.com/bshiribaiev/hackfest/services/finance/mocks"
)

func TestCreateStudent_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStudentUC := mocks.NewMockStudentUC(ctrl)
	studentHandler := NewStudentHandler(mockStudentUC)

	e := echo.New()
	studentID := uuid.New()
	requestBody := `{
		"name": "Aisha Bek",
		"email": "aisha@campus.edu"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students", strings.NewReader(requestBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockStudentUC.EXPECT().
		RegisterStudent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, student *models.Student) error {
			assert.Equal(t, "Aisha Bek", student.Name)
			assert.Equal(t, "aisha@campus.edu", student.Email)
			student.ID = studentID
			return nil
		})

	// Act
	err := studentHandler.CreateStudent(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Student created successfully", response["message"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Aisha Bek", data["name"])
	assert.Equal(t, studentID.String(), data["id"])
}

func TestCreateStudent_InvalidPayload(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStudentUC := mocks.NewMockStudentUC(ctrl)
	studentHandler := NewStudentHandler(mockStudentUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students", strings.NewReader(`{invalid_json}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Act
	err := studentHandler.CreateStudent(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Invalid request payload", response["error"])
	assert.Equal(t, float64(http.StatusBadRequest), response["code"])
}

func TestCreateStudent_ValidationError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStudentUC := mocks.NewMockStudentUC(ctrl)
	studentHandler := NewStudentHandler(mockStudentUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/students", strings.NewReader(`{"name": ""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockStudentUC.EXPECT().
		RegisterStudent(gomock.Any(), gomock.Any()).
		Return(finance.ErrValidation)

	// Act
	err := studentHandler.CreateStudent(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetStudent_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStudentUC := mocks.NewMockStudentUC(ctrl)
	studentHandler := NewStudentHandler(mockStudentUC)

	e := echo.New()
	studentID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/"+studentID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(studentID.String())

	mockStudentUC.EXPECT().
		GetStudent(gomock.Any(), studentID).
		Return(&models.Student{ID: studentID, Name: "Aisha Bek", Email: "aisha@campus.edu"}, nil)

	// Act
	err := studentHandler.GetStudent(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, studentID.String(), data["id"])
}

func TestGetStudent_NotFound(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStudentUC := mocks.NewMockStudentUC(ctrl)
	studentHandler := NewStudentHandler(mockStudentUC)

	e := echo.New()
	studentID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/"+studentID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(studentID.String())

	mockStudentUC.EXPECT().
		GetStudent(gomock.Any(), studentID).
		Return(nil, finance.ErrStudentNotFound)

	// Act
	err := studentHandler.GetStudent(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "Student not found", response["error"])
}

func TestGetStudent_InvalidID(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStudentUC := mocks.NewMockStudentUC(ctrl)
	studentHandler := NewStudentHandler(mockStudentUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	// Act
	err := studentHandler.GetStudent(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListStudents_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStudentUC := mocks.NewMockStudentUC(ctrl)
	studentHandler := NewStudentHandler(mockStudentUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/students", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockStudentUC.EXPECT().
		ListStudents(gomock.Any()).
		Return([]models.Student{
			{ID: uuid.New(), Name: "Aisha Bek"},
			{ID: uuid.New(), Name: "Tomas Silva"},
		}, nil)

	// Act
	err := studentHandler.ListStudents(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 2)
}

func TestGetStudentProfile_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStudentUC := mocks.NewMockStudentUC(ctrl)
	studentHandler := NewStudentHandler(mockStudentUC)

	e := echo.New()
	studentID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/"+studentID.String()+"/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(studentID.String())

	profile := &models.StudentProfile{
		Student: &models.Student{ID: studentID, Name: "Aisha Bek"},
		Wallet:  &models.Wallet{UserID: studentID, Balance: 90, Savings: 10},
	}
	mockStudentUC.EXPECT().
		GetStudentProfile(gomock.Any(), studentID).
		Return(profile, nil)

	// Act
	err := studentHandler.GetStudentProfile(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Student profile retrieved successfully", response["message"])
}

func TestGetStudentProfile_UseCaseError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStudentUC := mocks.NewMockStudentUC(ctrl)
	studentHandler := NewStudentHandler(mockStudentUC)

	e := echo.New()
	studentID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/students/"+studentID.String()+"/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(studentID.String())

	mockStudentUC.EXPECT().
		GetStudentProfile(gomock.Any(), studentID).
		Return(nil, errors.New("database error"))

	// Act
	err := studentHandler.GetStudentProfile(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
