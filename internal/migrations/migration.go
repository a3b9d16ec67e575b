package migrations

import (
	"errors"
	"log"

	"erp_backoffice/internal/database"
	"erp_backoffice/internal/models"
	"erp_backoffice/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunMigrations brings the schema up to date and seeds the fixed role set
// plus a default administrator.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	if err := createDefaultData(db); err != nil {
		log.Printf("Warning: Failed to create default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func createDefaultData(db *gorm.DB) error {
	roleRepo := repository.NewRoleRepository(db)
	roleNames := []string{
		models.RoleAdmin,
		models.RoleAgent,
		models.RoleCosts,
		models.RoleReceivables,
		models.RoleDirection,
		models.RoleShipments,
		models.RoleInvoicing,
		models.RoleDates,
		models.RoleEngineering,
	}
	for _, name := range roleNames {
		if _, err := roleRepo.GetByName(name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := roleRepo.Create(&models.Role{Name: name, IsActive: true}); err != nil {
			return err
		}
	}

	userRepo := repository.NewUserRepository(db)
	if _, err := userRepo.GetByEmail("admin@erp.local"); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        "admin@erp.local",
		Name:         "Admin",
		PasswordHash: string(hash),
		IsStaff:      true,
		IsActive:     true,
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}

	adminRole, err := roleRepo.GetByName(models.RoleAdmin)
	if err != nil {
		return err
	}
	return userRepo.AssignRole(admin, adminRole)
}
