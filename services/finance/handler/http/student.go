package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bshiribaiev/hackfest/internal/pkg/logger"
	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/internal/utils"
	"github.com/bshiribaiev/hackfest/services/finance"
)

// StudentHandler handles HTTP requests for student operations
type StudentHandler struct {
	studentUC finance.StudentUC
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentUC finance.StudentUC) *StudentHandler {
	return &StudentHandler{studentUC: studentUC}
}

// CreateStudent handles student registration requests
func (h *StudentHandler) CreateStudent(c echo.Context) error {
	var student models.Student
	if err := c.Bind(&student); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.studentUC.RegisterStudent(c.Request().Context(), &student); err != nil {
		if errors.Is(err, finance.ErrValidation) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to create student", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to create student")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Student created successfully", student)
}

// ListStudents handles student listing requests
func (h *StudentHandler) ListStudents(c echo.Context) error {
	students, err := h.studentUC.ListStudents(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list students", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to list students")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Students retrieved successfully", students)
}

// GetStudent handles single student retrieval requests
func (h *StudentHandler) GetStudent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid student ID")
	}

	student, err := h.studentUC.GetStudent(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, finance.ErrStudentNotFound) {
			return utils.NotFoundResponse(c, "Student not found")
		}
		logger.Error("Failed to get student", logger.String("student_id", id.String()), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve student")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Student retrieved successfully", student)
}

// GetStudentProfile handles composed profile requests
func (h *StudentHandler) GetStudentProfile(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid student ID")
	}

	profile, err := h.studentUC.GetStudentProfile(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, finance.ErrStudentNotFound) {
			return utils.NotFoundResponse(c, "Student not found")
		}
		logger.Error("Failed to get student profile", logger.String("student_id", id.String()), logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to retrieve student profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Student profile retrieved successfully", profile)
}
