package services

import (
	"gorm.io/gorm"

	"servora_backend/internal/models"
	"servora_backend/internal/repositories"
	"servora_backend/internal/services/dto"
)

// CatalogService - чтение справочников. Записи создает только админ.
type CatalogService interface {
	ListCategories(db *gorm.DB) ([]*dto.CatalogEntryResponse, error)
	ListExpertises(db *gorm.DB) ([]*dto.CatalogEntryResponse, error)
	ListEventTypes(db *gorm.DB) ([]*dto.CatalogEntryResponse, error)

	CreateCategory(db *gorm.DB, req *dto.CreateCatalogEntryRequest) (*dto.CatalogEntryResponse, error)
	CreateExpertise(db *gorm.DB, req *dto.CreateCatalogEntryRequest) (*dto.CatalogEntryResponse, error)
	CreateEventType(db *gorm.DB, req *dto.CreateCatalogEntryRequest) (*dto.CatalogEntryResponse, error)
}

type CatalogServiceImpl struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogService {
	return &CatalogServiceImpl{catalogRepo: catalogRepo}
}

func (s *CatalogServiceImpl) ListCategories(db *gorm.DB) ([]*dto.CatalogEntryResponse, error) {
	entries, err := s.catalogRepo.FindCategories(db)
	if err != nil {
		return nil, err
	}
	resp := make([]*dto.CatalogEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, &dto.CatalogEntryResponse{
			ID: entries[i].ID, Name: entries[i].Name, Slug: entries[i].Slug, IsActive: entries[i].IsActive,
		})
	}
	return resp, nil
}

func (s *CatalogServiceImpl) ListExpertises(db *gorm.DB) ([]*dto.CatalogEntryResponse, error) {
	entries, err := s.catalogRepo.FindExpertises(db)
	if err != nil {
		return nil, err
	}
	resp := make([]*dto.CatalogEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, &dto.CatalogEntryResponse{
			ID: entries[i].ID, Name: entries[i].Name, Slug: entries[i].Slug, IsActive: entries[i].IsActive,
		})
	}
	return resp, nil
}

func (s *CatalogServiceImpl) ListEventTypes(db *gorm.DB) ([]*dto.CatalogEntryResponse, error) {
	entries, err := s.catalogRepo.FindEventTypes(db)
	if err != nil {
		return nil, err
	}
	resp := make([]*dto.CatalogEntryResponse, 0, len(entries))
	for i := range entries {
		resp = append(resp, &dto.CatalogEntryResponse{
			ID: entries[i].ID, Name: entries[i].Name, Slug: entries[i].Slug, IsActive: entries[i].IsActive,
		})
	}
	return resp, nil
}

func (s *CatalogServiceImpl) CreateCategory(db *gorm.DB, req *dto.CreateCatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	entry := &models.ServiceCategory{Name: req.Name, Slug: req.Slug, IsActive: true}
	if err := s.catalogRepo.CreateCategory(db, entry); err != nil {
		return nil, err
	}
	return &dto.CatalogEntryResponse{ID: entry.ID, Name: entry.Name, Slug: entry.Slug, IsActive: entry.IsActive}, nil
}

func (s *CatalogServiceImpl) CreateExpertise(db *gorm.DB, req *dto.CreateCatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	entry := &models.Expertise{Name: req.Name, Slug: req.Slug, IsActive: true}
	if err := s.catalogRepo.CreateExpertise(db, entry); err != nil {
		return nil, err
	}
	return &dto.CatalogEntryResponse{ID: entry.ID, Name: entry.Name, Slug: entry.Slug, IsActive: entry.IsActive}, nil
}

func (s *CatalogServiceImpl) CreateEventType(db *gorm.DB, req *dto.CreateCatalogEntryRequest) (*dto.CatalogEntryResponse, error) {
	entry := &models.EventType{Name: req.Name, Slug: req.Slug, IsActive: true}
	if err := s.catalogRepo.CreateEventType(db, entry); err != nil {
		return nil, err
	}
	return &dto.CatalogEntryResponse{ID: entry.ID, Name: entry.Name, Slug: entry.Slug, IsActive: entry.IsActive}, nil
}
