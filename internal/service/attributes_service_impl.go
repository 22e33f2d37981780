package service

import (
	"fmt"

	"github.com/teflaherty67/PlanQuery/internal/domain"
)

type attributesService struct{}

// NewAttributesService creates the project-attributes service.
func NewAttributesService() AttributesService {
	return &attributesService{}
}

func (s *attributesService) Ensure(src AttributeSource) ([]string, error) {
	var added []string
	for _, name := range domain.ProjectAttributes {
		if _, ok := src.Attribute(name); ok {
			continue
		}
		if err := src.SetAttribute(name, ""); err != nil {
			return nil, fmt.Errorf("adding attribute %s: %w", name, err)
		}
		added = append(added, name)
	}
	if len(added) == 0 {
		return nil, nil
	}
	if err := src.Save(); err != nil {
		return nil, fmt.Errorf("saving model: %w", err)
	}
	return added, nil
}

func (s *attributesService) Values(src AttributeSource) map[string]string {
	values := make(map[string]string, len(domain.ProjectAttributes))
	for _, name := range domain.ProjectAttributes {
		v, _ := src.Attribute(name)
		values[name] = v
	}
	return values
}

func (s *attributesService) Apply(src AttributeSource, values map[string]string) error {
	for _, name := range domain.ProjectAttributes {
		v, ok := values[name]
		if !ok {
			continue
		}
		if err := src.SetAttribute(name, v); err != nil {
			return fmt.Errorf("setting attribute %s: %w", name, err)
		}
	}
	if err := src.Save(); err != nil {
		return fmt.Errorf("saving model: %w", err)
	}
	return nil
}
