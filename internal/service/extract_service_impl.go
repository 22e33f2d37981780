package service

import (
	"github.com/teflaherty67/PlanQuery/internal/domain"
	"github.com/teflaherty67/PlanQuery/internal/extract"
)

type extractService struct{}

// NewExtractService creates the record extraction service.
func NewExtractService() ExtractService {
	return &extractService{}
}

func (s *extractService) Extract(src extract.Source) *domain.PlanRecord {
	return extract.Build(src)
}
