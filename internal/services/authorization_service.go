package services

import (
	"errors"

	"erp_backoffice/internal/models"
	"erp_backoffice/internal/repository"

	"gorm.io/gorm"
)

// AuthorizationFlags is a partial update of the per-department sign-off
// flags. Nil pointers mean "leave the flag alone".
type AuthorizationFlags struct {
	Vta     *bool `json:"vta"`
	Cst     *bool `json:"cst"`
	Suaje   *bool `json:"suaje"`
	Grabado *bool `json:"grabado"`
	Pln     *bool `json:"pln"`
	Ing     *bool `json:"ing"`
	Cxc     *bool `json:"cxc"`
}

type AuthorizationService interface {
	ListAuthorizations() ([]models.Authorization, error)
	GetByOrderID(orderID uint) (*models.Authorization, error)
	UpdateFlags(orderID uint, flags *AuthorizationFlags) (*models.Authorization, error)
}

type authorizationService struct {
	authorizationRepo repository.AuthorizationRepository
}

func NewAuthorizationService(authorizationRepo repository.AuthorizationRepository) AuthorizationService {
	return &authorizationService{authorizationRepo: authorizationRepo}
}

func (s *authorizationService) ListAuthorizations() ([]models.Authorization, error) {
	return s.authorizationRepo.GetAll()
}

func (s *authorizationService) GetByOrderID(orderID uint) (*models.Authorization, error) {
	authorization, err := s.authorizationRepo.GetByOrderID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return authorization, nil
}

// UpdateFlags flips only the flags present in the request. Departments sign
// off independently, so an update must never clobber another flag.
func (s *authorizationService) UpdateFlags(orderID uint, flags *AuthorizationFlags) (*models.Authorization, error) {
	authorization, err := s.GetByOrderID(orderID)
	if err != nil {
		return nil, err
	}

	if flags.Vta != nil {
		authorization.Vta = *flags.Vta
	}
	if flags.Cst != nil {
		authorization.Cst = *flags.Cst
	}
	if flags.Suaje != nil {
		authorization.Suaje = *flags.Suaje
	}
	if flags.Grabado != nil {
		authorization.Grabado = *flags.Grabado
	}
	if flags.Pln != nil {
		authorization.Pln = *flags.Pln
	}
	if flags.Ing != nil {
		authorization.Ing = *flags.Ing
	}
	if flags.Cxc != nil {
		authorization.Cxc = *flags.Cxc
	}

	if err := s.authorizationRepo.Update(authorization); err != nil {
		return nil, err
	}
	return authorization, nil
}
