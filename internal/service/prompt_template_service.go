package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/mockround/internal/dto"
	"github.com/lshigami/mockround/internal/model"
	"github.com/lshigami/mockround/internal/repository"
	"github.com/rs/zerolog/log"
)

type PromptTemplateService interface {
	CreatePromptTemplate(ctx context.Context, req dto.PromptTemplateCreateDTO) (*dto.PromptTemplateResponseDTO, error)
	GetPromptTemplate(ctx context.Context, id uint) (*dto.PromptTemplateResponseDTO, error)
	ListPromptTemplates(ctx context.Context, purpose string) ([]dto.PromptTemplateResponseDTO, error)
	UpdatePromptTemplate(ctx context.Context, id uint, req dto.PromptTemplateCreateDTO) (*dto.PromptTemplateResponseDTO, error)
	DeletePromptTemplate(ctx context.Context, id uint) error
	PreviewPromptTemplate(ctx context.Context, id uint, req dto.PromptPreviewDTO) (*dto.PromptPreviewResponseDTO, error)
}

type promptTemplateService struct {
	promptRepo repository.PromptTemplateRepository
}

func NewPromptTemplateService(promptRepo repository.PromptTemplateRepository) PromptTemplateService {
	return &promptTemplateService{promptRepo: promptRepo}
}

func (s *promptTemplateService) CreatePromptTemplate(ctx context.Context, req dto.PromptTemplateCreateDTO) (*dto.PromptTemplateResponseDTO, error) {
	if _, err := parsePrompt(req.Body); err != nil {
		return nil, err
	}
	tmpl := model.PromptTemplate{
		Name:        strings.TrimSpace(req.Name),
		Purpose:     req.Purpose,
		Body:        req.Body,
		Description: req.Description,
	}
	if err := s.promptRepo.Create(ctx, &tmpl); err != nil {
		log.Error().Err(err).Str("name", tmpl.Name).Msg("Failed to create prompt template")
		return nil, err
	}
	return toPromptTemplateResponse(&tmpl)
}

func (s *promptTemplateService) GetPromptTemplate(ctx context.Context, id uint) (*dto.PromptTemplateResponseDTO, error) {
	tmpl, err := s.promptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("prompt template %d: %w", id, err)
	}
	return toPromptTemplateResponse(tmpl)
}

func (s *promptTemplateService) ListPromptTemplates(ctx context.Context, purpose string) ([]dto.PromptTemplateResponseDTO, error) {
	tmpls, err := s.promptRepo.FindAll(ctx, purpose)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PromptTemplateResponseDTO, 0, len(tmpls))
	if err := copier.Copy(&resp, &tmpls); err != nil {
		return nil, fmt.Errorf("failed to map prompt templates: %w", err)
	}
	return resp, nil
}

func (s *promptTemplateService) UpdatePromptTemplate(ctx context.Context, id uint, req dto.PromptTemplateCreateDTO) (*dto.PromptTemplateResponseDTO, error) {
	tmpl, err := s.promptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("prompt template %d: %w", id, err)
	}
	if _, err := parsePrompt(req.Body); err != nil {
		return nil, err
	}
	tmpl.Name = strings.TrimSpace(req.Name)
	tmpl.Purpose = req.Purpose
	tmpl.Body = req.Body
	tmpl.Description = req.Description
	if err := s.promptRepo.Update(ctx, tmpl); err != nil {
		return nil, err
	}
	return toPromptTemplateResponse(tmpl)
}

func (s *promptTemplateService) DeletePromptTemplate(ctx context.Context, id uint) error {
	return s.promptRepo.Delete(ctx, id)
}

func (s *promptTemplateService) PreviewPromptTemplate(ctx context.Context, id uint, req dto.PromptPreviewDTO) (*dto.PromptPreviewResponseDTO, error) {
	tmpl, err := s.promptRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("prompt template %d: %w", id, err)
	}
	vars := req.Variables
	if vars == nil {
		vars = map[string]interface{}{}
	}
	rendered, err := RenderPrompt(tmpl.Body, vars)
	if err != nil {
		return nil, err
	}
	return &dto.PromptPreviewResponseDTO{Rendered: rendered}, nil
}

func toPromptTemplateResponse(tmpl *model.PromptTemplate) (*dto.PromptTemplateResponseDTO, error) {
	var resp dto.PromptTemplateResponseDTO
	if err := copier.Copy(&resp, tmpl); err != nil {
		return nil, fmt.Errorf("failed to map prompt template: %w", err)
	}
	return &resp, nil
}
