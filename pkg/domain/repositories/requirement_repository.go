package repositories

import "github.com/vsinha/stockpile/pkg/domain/entities"

// RequirementRepository provides access to the per-base requirement table
type RequirementRepository interface {
	GetRequirement(codeName entities.CodeName) (*entities.BaseRequirement, error)
	GetAllRequirements() ([]*entities.BaseRequirement, error)
	LoadRequirements(requirements []*entities.BaseRequirement) error
}
