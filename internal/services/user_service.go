package services

import (
	"errors"

	"erp_backoffice/internal/models"
	"erp_backoffice/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Phone    string `json:"phone"`
	IsStaff  bool   `json:"is_staff"`
}

type UserService interface {
	CreateUser(req *CreateUserRequest) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	EnableUser(id uint) (*models.User, error)
	DeactivateUser(id uint) (*models.User, error)
	AssignRole(userID uint, roleName string) error
	HasRole(user *models.User, roleName string) bool
	GetAllRoles() ([]models.Role, error)
}

type userService struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

func NewUserService(userRepo repository.UserRepository, roleRepo repository.RoleRepository) UserService {
	return &userService{userRepo: userRepo, roleRepo: roleRepo}
}

// CreateUser registers a user disabled. An administrator enables the account
// afterwards, which is why is_active starts false here and nowhere else.
func (s *userService) CreateUser(req *CreateUserRequest) (*models.User, error) {
	fieldErrs := FieldErrors{}
	if req.Email == "" {
		fieldErrs["email"] = msgRequired
	}
	if req.Password == "" {
		fieldErrs["password"] = msgRequired
	}
	if req.Name == "" {
		fieldErrs["name"] = msgRequired
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		LastName:     req.LastName,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		IsStaff:      req.IsStaff,
		IsActive:     false,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// EnableUser flips a registered account to active. Accounts start disabled,
// so this is the second half of the registration flow.
func (s *userService) EnableUser(id uint) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	user.IsActive = true
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeactivateUser(id uint) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Deactivate(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) AssignRole(userID uint, roleName string) error {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return err
	}
	role, err := s.roleRepo.GetByName(roleName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	return s.userRepo.AssignRole(user, role)
}

func (s *userService) GetAllRoles() ([]models.Role, error) {
	return s.roleRepo.GetAll()
}

func (s *userService) HasRole(user *models.User, roleName string) bool {
	for _, role := range user.Roles {
		if role.Name == roleName {
			return true
		}
	}
	return false
}
