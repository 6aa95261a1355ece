package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hamzaOly/ezyskills/models"
)

// ErrBundleNotFound covers both genuinely missing bundles and bundles the
// caller does not own; ownership failures deliberately look identical.
var ErrBundleNotFound = errors.New("bundle not found")

// ValidationError is a rule violation in bundle input. Its message is safe
// to return to the client verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErr(msg string) error { return &ValidationError{msg: msg} }

// BundleService owns creation, pricing and the approval lifecycle of
// course bundles.
type BundleService struct {
	db      *gorm.DB
	catalog *CatalogService
}

func NewBundleService(db *gorm.DB, catalog *CatalogService) *BundleService {
	return &BundleService{db: db, catalog: catalog}
}

type CourseSummary struct {
	ID       uuid.UUID       `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// BundleWithCourses is a bundle joined with its member course summaries,
// the shape every listing endpoint returns.
type BundleWithCourses struct {
	models.CourseBundle
	TeacherName   *string         `json:"teacher_name,omitempty"`
	TeacherEmail  *string         `json:"teacher_email,omitempty"`
	CreatedByType string          `json:"created_by_type,omitempty"`
	Courses       []CourseSummary `json:"courses"`
}

// CreateBundleInput carries a bundle creation request. A non-nil TeacherID
// scopes eligibility to that teacher's own courses and the bundle starts
// inactive, pending admin approval. A nil TeacherID is the admin path: any
// approved course qualifies and the bundle is active immediately.
type CreateBundleInput struct {
	Title              string
	Description        string
	CourseIDs          []string
	DiscountPercentage float64
	TeacherID          *uuid.UUID
	CreatedBy          uuid.UUID
}

func (s *BundleService) Create(in CreateBundleInput) (*BundleWithCourses, error) {
	if in.Title == "" || len(in.CourseIDs) != models.BundleSize {
		return nil, validationErr("Bundle must have exactly 3 courses")
	}
	if in.DiscountPercentage < 0 || in.DiscountPercentage > 100 {
		return nil, validationErr("Discount must be between 0 and 100")
	}

	eligibilityMsg := "All 3 courses must be approved"
	if in.TeacherID != nil {
		eligibilityMsg = "All 3 courses must belong to you and be approved"
	}

	courseIDs := make([]uuid.UUID, 0, models.BundleSize)
	for _, raw := range in.CourseIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, validationErr(eligibilityMsg)
		}
		courseIDs = append(courseIDs, id)
	}

	courses, err := s.catalog.FindEligibleCourses(courseIDs, in.TeacherID)
	if err != nil {
		return nil, err
	}
	if len(courses) != models.BundleSize {
		return nil, validationErr(eligibilityMsg)
	}

	totalPrice := decimal.Zero
	for _, course := range courses {
		totalPrice = totalPrice.Add(course.Price)
	}
	discountedPrice := applyDiscount(totalPrice, in.DiscountPercentage)

	bundle := models.CourseBundle{
		TeacherID:          in.TeacherID,
		Title:              in.Title,
		Description:        in.Description,
		DiscountPercentage: in.DiscountPercentage,
		TotalPrice:         totalPrice,
		DiscountedPrice:    discountedPrice,
		IsActive:           in.TeacherID == nil,
		CreatedByAdmin:     in.TeacherID == nil,
		CreatedBy:          in.CreatedBy,
	}

	// The bundle row and its 3 link rows commit together or not at all;
	// a bundle with fewer than 3 courses must never be observable.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bundle).Error; err != nil {
			return err
		}
		for _, course := range courses {
			link := models.BundleCourse{BundleID: bundle.ID, CourseID: course.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(bundle.ID)
}

// applyDiscount is the single place discounted prices are computed.
// Round half up to the cent, once, here; reads never re-derive the value.
func applyDiscount(total decimal.Decimal, discountPercentage float64) decimal.Decimal {
	factor := decimal.NewFromInt(1).
		Sub(decimal.NewFromFloat(discountPercentage).Div(decimal.NewFromInt(100)))
	return total.Mul(factor).Round(2)
}

// UpdateBundleInput is a partial patch; nil fields keep their value.
// Activation is not part of this surface: only admin approval flips
// is_active.
type UpdateBundleInput struct {
	Title              *string
	Description        *string
	DiscountPercentage *float64
}

// Update edits a teacher's own bundle. A discount change recomputes the
// discounted price from the stored total, never from current course
// prices.
func (s *BundleService) Update(teacherID, bundleID uuid.UUID, in UpdateBundleInput) (*BundleWithCourses, error) {
	var bundle models.CourseBundle
	err := s.db.Where("id = ? AND teacher_id = ?", bundleID, teacherID).First(&bundle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBundleNotFound
		}
		return nil, err
	}

	if in.Title != nil {
		bundle.Title = *in.Title
	}
	if in.Description != nil {
		bundle.Description = *in.Description
	}
	if in.DiscountPercentage != nil {
		if *in.DiscountPercentage < 0 || *in.DiscountPercentage > 100 {
			return nil, validationErr("Discount must be between 0 and 100")
		}
		bundle.DiscountPercentage = *in.DiscountPercentage
		bundle.DiscountedPrice = applyDiscount(bundle.TotalPrice, bundle.DiscountPercentage)
	}

	if err := s.db.Save(&bundle).Error; err != nil {
		return nil, err
	}
	return s.GetByID(bundle.ID)
}

// Delete removes a teacher's own bundle and its links.
func (s *BundleService) Delete(teacherID, bundleID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND teacher_id = ?", bundleID, teacherID).
			Delete(&models.CourseBundle{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBundleNotFound
		}
		return tx.Where("bundle_id = ?", bundleID).Delete(&models.BundleCourse{}).Error
	})
}

// Approve activates a bundle. Re-approving an active bundle is a no-op
// success; an unknown id is still reported as missing.
func (s *BundleService) Approve(bundleID uuid.UUID) (*BundleWithCourses, error) {
	result := s.db.Model(&models.CourseBundle{}).
		Where("id = ?", bundleID).
		Update("is_active", true)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrBundleNotFound
	}
	return s.GetByID(bundleID)
}

// Reject deletes the bundle row and its course links outright. This
// mirrors the moderation contract the frontend relies on: a rejected
// bundle reads as 404 afterwards.
func (s *BundleService) Reject(bundleID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", bundleID).Delete(&models.CourseBundle{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrBundleNotFound
		}
		return tx.Where("bundle_id = ?", bundleID).Delete(&models.BundleCourse{}).Error
	})
}

func (s *BundleService) GetByID(bundleID uuid.UUID) (*BundleWithCourses, error) {
	var bundle models.CourseBundle
	err := s.db.Preload("Teacher").Where("id = ?", bundleID).First(&bundle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBundleNotFound
		}
		return nil, err
	}

	out, err := s.withCourses([]models.CourseBundle{bundle}, false)
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

// ListByTeacher returns a teacher's own bundles, newest first.
func (s *BundleService) ListByTeacher(teacherID uuid.UUID) ([]BundleWithCourses, error) {
	var bundles []models.CourseBundle
	err := s.db.Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&bundles).Error
	if err != nil {
		return nil, err
	}
	return s.withCourses(bundles, false)
}

// ListPublic returns active bundles for the storefront, newest first.
func (s *BundleService) ListPublic() ([]BundleWithCourses, error) {
	var bundles []models.CourseBundle
	err := s.db.Preload("Teacher").
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&bundles).Error
	if err != nil {
		return nil, err
	}
	return s.withCourses(bundles, false)
}

// ListPending returns the admin moderation queue: inactive bundles that
// were submitted by teachers. Admin drafts never show up here.
func (s *BundleService) ListPending() ([]BundleWithCourses, error) {
	var bundles []models.CourseBundle
	err := s.db.Preload("Teacher").
		Where("is_active = ? AND created_by_admin = ?", false, false).
		Order("created_at DESC").
		Find(&bundles).Error
	if err != nil {
		return nil, err
	}
	return s.withCourses(bundles, false)
}

// ListAll returns every bundle for the admin overview, labelled with who
// authored it.
func (s *BundleService) ListAll() ([]BundleWithCourses, error) {
	var bundles []models.CourseBundle
	err := s.db.Preload("Teacher").
		Order("created_at DESC").
		Find(&bundles).Error
	if err != nil {
		return nil, err
	}
	return s.withCourses(bundles, true)
}

// withCourses joins bundles with their member course summaries in a single
// query and regroups them in memory.
func (s *BundleService) withCourses(bundles []models.CourseBundle, withType bool) ([]BundleWithCourses, error) {
	out := make([]BundleWithCourses, 0, len(bundles))
	if len(bundles) == 0 {
		return out, nil
	}

	ids := make([]uuid.UUID, 0, len(bundles))
	for _, b := range bundles {
		ids = append(ids, b.ID)
	}

	var rows []struct {
		BundleID uuid.UUID
		ID       uuid.UUID
		Title    string
		Price    decimal.Decimal
		Category string
	}
	err := s.db.Table("bundle_courses").
		Select("bundle_courses.bundle_id, courses.id, courses.title, courses.price, courses.category").
		Joins("JOIN courses ON courses.id = bundle_courses.course_id").
		Where("bundle_courses.bundle_id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	coursesByBundle := make(map[uuid.UUID][]CourseSummary, len(bundles))
	for _, row := range rows {
		coursesByBundle[row.BundleID] = append(coursesByBundle[row.BundleID], CourseSummary{
			ID:       row.ID,
			Title:    row.Title,
			Price:    row.Price,
			Category: row.Category,
		})
	}

	for _, b := range bundles {
		item := BundleWithCourses{
			CourseBundle: b,
			Courses:      coursesByBundle[b.ID],
		}
		if b.Teacher != nil {
			item.TeacherName = &b.Teacher.FullName
			item.TeacherEmail = &b.Teacher.Email
		}
		if withType {
			if b.CreatedByAdmin {
				item.CreatedByType = "Admin"
			} else {
				item.CreatedByType = "Teacher"
			}
		}
		out = append(out, item)
	}
	return out, nil
}
