package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hamzaOly/ezyskills/models"
)

const testPassword = "password123"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Teacher{},
		&models.Course{},
		&models.CourseContent{},
		&models.CourseProject{},
		&models.CourseBundle{},
		&models.BundleCourse{},
		&models.Payment{},
	))
	return db
}

func seedTeacherAccount(t *testing.T, db *gorm.DB, email string) (*models.User, *models.Teacher) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	name := "Jane Doe"
	user := models.User{
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleTeacher,
		FullName: &name,
	}
	require.NoError(t, db.Create(&user).Error)

	teacher := models.Teacher{
		UserID:            user.ID,
		FullName:          name,
		Email:             email,
		Bio:               "Experienced instructor with more than a decade teaching online courses.",
		Specialization:    "Backend Development",
		YearsOfExperience: 10,
		Education:         "MSc Computer Science",
	}
	require.NoError(t, db.Create(&teacher).Error)
	return &user, &teacher
}

func seedApprovedCourse(t *testing.T, db *gorm.DB, teacher *models.Teacher, price int64) *models.Course {
	t.Helper()

	course := models.Course{
		TeacherID:      &teacher.ID,
		CreatedBy:      teacher.UserID,
		Title:          "Course",
		Category:       "programming",
		Price:          decimal.NewFromInt(price),
		ApprovalStatus: models.CourseApproved,
		IsPublished:    true,
	}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func jsonRequest(t *testing.T, method, target string, body any, token string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}
