// internals/features/instructors/service/user_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"raisemyhand_backend/internals/configs"
	"raisemyhand_backend/internals/constants"
	instructorModel "raisemyhand_backend/internals/features/instructors/model"
	helper "raisemyhand_backend/internals/helpers"
)

// UserService covers instructor account management. Accounts are
// soft-deactivated, never hard-deleted; deactivation cascades to the
// account's API keys as a business rule.
type UserService struct {
	DB   *gorm.DB
	Keys *APIKeyService
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db, Keys: NewAPIKeyService(db)}
}

type CreateInstructorInput struct {
	Username    string
	Email       *string
	DisplayName *string
	Password    string
	Role        string
}

// Create registers an instructor account. Role gating mirrors the
// hierarchy: ADMIN may create INSTRUCTORs, only SUPER_ADMIN may create
// ADMINs, and SUPER_ADMIN accounts are bootstrap-only.
func (s *UserService) Create(actor *instructorModel.InstructorModel, in CreateInstructorInput) (*instructorModel.InstructorModel, error) {
	in.Username = strings.TrimSpace(strings.ToLower(in.Username))
	if in.Username == "" || len(in.Password) < 8 {
		return nil, fmt.Errorf("username and a password of 8+ characters are required: %w", helper.ErrValidation)
	}

	role := strings.ToUpper(strings.TrimSpace(in.Role))
	if role == "" {
		role = constants.RoleInstructor
	}
	if role != constants.RoleInstructor && role != constants.RoleAdmin {
		return nil, fmt.Errorf("role must be INSTRUCTOR or ADMIN: %w", helper.ErrValidation)
	}
	if !constants.RoleAtLeast(string(actor.InstructorRole), constants.RoleAdmin) {
		return nil, fmt.Errorf("admin role required: %w", helper.ErrForbidden)
	}
	if role == constants.RoleAdmin && string(actor.InstructorRole) != constants.RoleSuperAdmin {
		return nil, fmt.Errorf("only the super admin can create admin accounts: %w", helper.ErrForbidden)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	instructor := instructorModel.InstructorModel{
		InstructorUsername:      in.Username,
		InstructorEmail:         in.Email,
		InstructorDisplayName:   in.DisplayName,
		InstructorPasswordHash:  string(hash),
		InstructorRole:          instructorModel.InstructorRole(role),
		InstructorRoleGrantedBy: &actor.InstructorID,
		InstructorRoleGrantedAt: &now,
		InstructorIsActive:      true,
	}
	if err := s.DB.Create(&instructor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("username or email already taken: %w", helper.ErrConflict)
		}
		return nil, err
	}

	// default key; account creation survives a key provisioning failure
	if _, err := s.Keys.AutoGenerate(&instructor, &actor.InstructorID); err != nil {
		log.Printf("[WARN] default api key for instructor %d: %v", instructor.InstructorID, err)
	}

	LogAction(s.DB, &actor.InstructorID, AuditInstructorCreated,
		fmt.Sprintf("instructor:%d", instructor.InstructorID), map[string]any{
			"username": instructor.InstructorUsername,
			"role":     role,
		})

	return &instructor, nil
}

// Deactivate disables login and revokes every key the account holds.
func (s *UserService) Deactivate(actor *instructorModel.InstructorModel, instructorID uint) error {
	if actor.InstructorID == instructorID {
		return fmt.Errorf("cannot deactivate your own account: %w", helper.ErrConflict)
	}

	target, err := s.get(instructorID)
	if err != nil {
		return err
	}
	if !target.InstructorIsActive {
		return fmt.Errorf("instructor already deactivated: %w", helper.ErrConflict)
	}
	if constants.RoleLevel(string(target.InstructorRole)) >= constants.RoleLevel(string(actor.InstructorRole)) {
		return fmt.Errorf("cannot deactivate an equal or higher role: %w", helper.ErrForbidden)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&instructorModel.InstructorModel{}).
			Where("instructor_id = ?", instructorID).
			Update("instructor_is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&instructorModel.APIKeyModel{}).
			Where("api_key_instructor_id = ?", instructorID).
			Update("api_key_is_active", false).Error
	})
	if err != nil {
		return err
	}

	LogAction(s.DB, &actor.InstructorID, AuditInstructorDeactivated,
		fmt.Sprintf("instructor:%d", instructorID), nil)
	return nil
}

// Reactivate re-enables login. Keys stay revoked; the account mints new
// ones.
func (s *UserService) Reactivate(actor *instructorModel.InstructorModel, instructorID uint) error {
	target, err := s.get(instructorID)
	if err != nil {
		return err
	}
	if target.InstructorIsActive {
		return fmt.Errorf("instructor is already active: %w", helper.ErrConflict)
	}

	if err := s.DB.Model(&instructorModel.InstructorModel{}).
		Where("instructor_id = ?", instructorID).
		Update("instructor_is_active", true).Error; err != nil {
		return err
	}

	LogAction(s.DB, &actor.InstructorID, AuditInstructorReactivated,
		fmt.Sprintf("instructor:%d", instructorID), nil)
	return nil
}

func (s *UserService) get(instructorID uint) (*instructorModel.InstructorModel, error) {
	var instructor instructorModel.InstructorModel
	if err := s.DB.First(&instructor, "instructor_id = ?", instructorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("instructor %d: %w", instructorID, helper.ErrNotFound)
		}
		return nil, err
	}
	return &instructor, nil
}

// EnsureSuperAdmin bootstraps the SUPER_ADMIN account from env at
// startup. No-op when it already exists or no password is configured.
func EnsureSuperAdmin(db *gorm.DB) {
	if configs.SuperAdminPassword == "" {
		log.Println("⚠️ SUPER_ADMIN_PASSWORD not set, skipping bootstrap")
		return
	}

	var count int64
	if err := db.Model(&instructorModel.InstructorModel{}).
		Where("instructor_role = ?", constants.RoleSuperAdmin).
		Count(&count).Error; err != nil {
		log.Printf("[ERROR] super admin check: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(configs.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] super admin hash: %v", err)
		return
	}

	admin := instructorModel.InstructorModel{
		InstructorUsername:     strings.ToLower(configs.SuperAdminUsername),
		InstructorPasswordHash: string(hash),
		InstructorRole:         instructorModel.InstructorRoleSuperAdmin,
		InstructorIsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] super admin bootstrap: %v", err)
		return
	}
	log.Printf("✅ super admin %q bootstrapped.", admin.InstructorUsername)
}
