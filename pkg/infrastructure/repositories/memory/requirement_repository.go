package memory

import (
	"fmt"

	"github.com/vsinha/stockpile/pkg/domain/entities"
	"github.com/vsinha/stockpile/pkg/domain/repositories"
)

// RequirementRepository provides in-memory storage for the per-base requirement table
type RequirementRepository struct {
	requirements    []entities.BaseRequirement
	requirementsMap map[entities.CodeName]int
}

// NewRequirementRepository creates a new in-memory requirement repository
func NewRequirementRepository(expectedItems int) *RequirementRepository {
	return &RequirementRepository{
		requirements:    make([]entities.BaseRequirement, 0, expectedItems),
		requirementsMap: make(map[entities.CodeName]int, expectedItems),
	}
}

var _ repositories.RequirementRepository = (*RequirementRepository)(nil)

// LoadRequirements loads requirements into the repository
func (r *RequirementRepository) LoadRequirements(requirements []*entities.BaseRequirement) error {
	for _, req := range requirements {
		r.AddRequirement(*req)
	}
	return nil
}

// AddRequirement adds a requirement; a code name that is already present keeps its first entry
func (r *RequirementRepository) AddRequirement(req entities.BaseRequirement) bool {
	if _, exists := r.requirementsMap[req.CodeName]; exists {
		return false
	}
	r.requirementsMap[req.CodeName] = len(r.requirements)
	r.requirements = append(r.requirements, req)
	return true
}

// GetRequirement returns the requirement for a code name
func (r *RequirementRepository) GetRequirement(codeName entities.CodeName) (*entities.BaseRequirement, error) {
	index, exists := r.requirementsMap[codeName]
	if !exists {
		return nil, fmt.Errorf("requirement not found: %s", codeName)
	}
	return &r.requirements[index], nil
}

// GetAllRequirements returns all requirements in load order
func (r *RequirementRepository) GetAllRequirements() ([]*entities.BaseRequirement, error) {
	requirements := make([]*entities.BaseRequirement, 0, len(r.requirements))
	for i := range r.requirements {
		requirements = append(requirements, &r.requirements[i])
	}
	return requirements, nil
}
