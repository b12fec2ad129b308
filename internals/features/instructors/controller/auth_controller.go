// internals/features/instructors/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"raisemyhand_backend/internals/configs"
	instructorDTO "raisemyhand_backend/internals/features/instructors/dto"
	instructorModel "raisemyhand_backend/internals/features/instructors/model"
	helper "raisemyhand_backend/internals/helpers"
)

var validate = validator.New()

const accessTokenTTL = 30 * 24 * time.Hour

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req instructorDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	username := strings.TrimSpace(strings.ToLower(req.Username))

	var instructor instructorModel.InstructorModel
	err := ctl.DB.Where("instructor_username = ?", username).First(&instructor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// burn a bcrypt round anyway so missing and wrong-password
		// logins take the same time
		_ = bcrypt.CompareHashAndPassword(
			[]byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"),
			[]byte(req.Password))
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
	}
	if err != nil {
		return err
	}
	if !instructor.InstructorIsActive {
		return fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(instructor.InstructorPasswordHash), []byte(req.Password)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid username or password")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id":  instructor.InstructorID,
		"username": instructor.InstructorUsername,
		"role":     string(instructor.InstructorRole),
		"iat":      now.Unix(),
		"exp":      now.Add(accessTokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return err
	}

	// best effort; login succeeds even if the timestamp write fails
	_ = ctl.DB.Model(&instructor).
		Update("instructor_last_login", now).Error
	instructor.InstructorLastLogin = &now

	return helper.Success(c, "Login successful", instructorDTO.LoginResponse{
		AccessToken: token,
		Instructor:  instructorDTO.NewInstructorResponse(&instructor),
	})
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var instructor instructorModel.InstructorModel
	if err := ctl.DB.First(&instructor, "instructor_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Account not found")
		}
		return err
	}
	return helper.Success(c, "OK", instructorDTO.NewInstructorResponse(&instructor))
}
