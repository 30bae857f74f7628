package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bshiribaiev/hackfest/internal/pkg/models"
	"github.com/bshiribaiev/hackfest/services/finance"
)

// CreateStudent creates a new student record
func (r *StudentRepo) CreateStudent(ctx context.Context, student *models.Student) error {
	student.ID = uuid.New()
	student.CreatedAt = time.Now()

	query := `
		INSERT INTO students (id, name, email, avatar_color, major, created_at)
		VALUES (:id, :name, :email, :avatar_color, :major, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("failed to insert student: %w", err)
	}

	return nil
}

// GetStudent retrieves a student by ID
func (r *StudentRepo) GetStudent(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	query := `
		SELECT id, name, email, avatar_color, major, created_at
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.GetContext(ctx, &student, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, finance.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return &student, nil
}

// ListStudents retrieves all students
func (r *StudentRepo) ListStudents(ctx context.Context) ([]models.Student, error) {
	query := `
		SELECT id, name, email, avatar_color, major, created_at
		FROM students
		ORDER BY created_at
	`

	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	return students, nil
}
