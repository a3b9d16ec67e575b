package repository

import (
	"erp_backoffice/internal/models"

	"gorm.io/gorm"
)

type AgentRepository interface {
	Create(agent *models.Agent) error
	GetByID(id uint) (*models.Agent, error)
	GetAll() ([]models.Agent, error)
	Update(agent *models.Agent) error
	Deactivate(agent *models.Agent) error
}

type agentRepository struct {
	db *gorm.DB
}

func NewAgentRepository(db *gorm.DB) AgentRepository {
	return &agentRepository{db: db}
}

func (r *agentRepository) Create(agent *models.Agent) error {
	return r.db.Create(agent).Error
}

func (r *agentRepository) GetByID(id uint) (*models.Agent, error) {
	var agent models.Agent
	err := r.db.Where("is_active = ?", true).First(&agent, id).Error
	if err != nil {
		return nil, err
	}
	return &agent, nil
}

func (r *agentRepository) GetAll() ([]models.Agent, error) {
	var agents []models.Agent
	err := r.db.Where("is_active = ?", true).Find(&agents).Error
	return agents, err
}

func (r *agentRepository) Update(agent *models.Agent) error {
	return r.db.Save(agent).Error
}

func (r *agentRepository) Deactivate(agent *models.Agent) error {
	agent.IsActive = false
	return r.db.Save(agent).Error
}
