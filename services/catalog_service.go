package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hamzaOly/ezyskills/models"
)

// CatalogService answers course eligibility questions for the bundle
// workflow.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// FindEligibleCourses resolves the given ids to approved courses. When
// teacherID is set, only that teacher's own courses qualify. Duplicate or
// unknown ids simply shrink the result set.
func (s *CatalogService) FindEligibleCourses(ids []uuid.UUID, teacherID *uuid.UUID) ([]models.Course, error) {
	query := s.db.Where("id IN ? AND approval_status = ?", ids, models.CourseApproved)
	if teacherID != nil {
		query = query.Where("teacher_id = ?", *teacherID)
	}

	var courses []models.Course
	if err := query.Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}
