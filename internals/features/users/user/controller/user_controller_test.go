package controller

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "messmate_backend/internals/features/users/user/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.UserModel{}))
	return db
}

func TestByStudentID(t *testing.T) {
	db := openTestDB(t)

	sid := "MM2025-042"
	user := model.UserModel{
		ID:        uuid.New(),
		Name:      "Asha Verma",
		Email:     "asha@example.com",
		Password:  "hash",
		Role:      "student",
		StudentID: &sid,
	}
	require.NoError(t, db.Create(&user).Error)

	app := fiber.New()
	ctl := NewUserController(db)
	app.Get("/api/users/by-student-id/:student_id", ctl.ByStudentID)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/users/by-student-id/MM2025-042", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			Name      string  `json:"name"`
			StudentID *string `json:"student_id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Asha Verma", body.Data.Name)
	require.NotNil(t, body.Data.StudentID)
	assert.Equal(t, sid, *body.Data.StudentID)
}

func TestByStudentIDNotFound(t *testing.T) {
	db := openTestDB(t)

	app := fiber.New()
	ctl := NewUserController(db)
	app.Get("/api/users/by-student-id/:student_id", ctl.ByStudentID)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/users/by-student-id/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
