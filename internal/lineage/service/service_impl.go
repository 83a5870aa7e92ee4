package service

import (
	"github.com/lumenlake/warehouse/internal/lineage/domain"
)

type Service struct{}

func New() domain.Service {
	return &Service{}
}

// Get returns the fixed lineage description: three sources, four ordered
// transformation steps, three targets.
func (s *Service) Get() domain.Lineage {
	return domain.Lineage{
		Sources: []domain.Source{
			{Name: "CRM System", Type: "Database", Tables: []string{"customers"}},
			{Name: "E-commerce Platform", Type: "API", Tables: []string{"orders", "products"}},
			{Name: "Payment Gateway", Type: "Stream", Tables: []string{"transactions"}},
		},
		Transformations: []domain.Transformation{
			{Step: 1, Process: "Data Extraction", Description: "Extract data from source systems"},
			{Step: 2, Process: "Data Cleaning", Description: "Clean and validate data quality"},
			{Step: 3, Process: "Data Transformation", Description: "Transform to star schema"},
			{Step: 4, Process: "Data Loading", Description: "Load into data warehouse"},
		},
		Targets: []domain.Target{
			{Name: "Analytics Dashboard", Type: "BI Tool"},
			{Name: "ML Pipeline", Type: "Machine Learning"},
			{Name: "Reporting System", Type: "Reports"},
		},
	}
}
