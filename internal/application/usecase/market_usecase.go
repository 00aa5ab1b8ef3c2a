package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/vendorconnect/api/internal/application/dto"
	"github.com/vendorconnect/api/internal/domain"
	"github.com/vendorconnect/api/internal/domain/entity"
	"github.com/vendorconnect/api/internal/domain/repository"
)

// MarketUseCase is the vendor-facing read side: search the catalog, get
// recommendations for the declared business type, manage the profile.
type MarketUseCase struct {
	catalog  repository.CatalogRepository
	sessions repository.SessionRepository
}

// NewMarketUseCase builds the use case.
func NewMarketUseCase(catalog repository.CatalogRepository, sessions repository.SessionRepository) *MarketUseCase {
	return &MarketUseCase{catalog: catalog, sessions: sessions}
}

// Filter returns the products matching the query, preserving catalog
// order. The match is a case-insensitive substring on the display name or
// a substring on the Hindi name; both sides are NFC-normalized so visually
// identical Devanagari spellings compare equal. An empty query matches all.
func (uc *MarketUseCase) Filter(ctx context.Context, query string) (*dto.ProductListResponse, error) {
	products, err := uc.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return toProductListResponse(products), nil
	}

	q := norm.NFC.String(query)
	qLower := strings.ToLower(q)
	matched := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(norm.NFC.String(p.Name)), qLower) ||
			strings.Contains(norm.NFC.String(p.HindiName), q) {
			matched = append(matched, p)
		}
	}
	return toProductListResponse(matched), nil
}

// Recommendations returns in-stock products tagged for the vendor's
// declared business type. Without a profile it errors with ErrPrecondition.
func (uc *MarketUseCase) Recommendations(ctx context.Context) (*dto.ProductListResponse, error) {
	session, err := uc.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil || session.BusinessType == "" {
		return nil, fmt.Errorf("%w: set up your business profile first", domain.ErrPrecondition)
	}
	products, err := uc.catalog.Load(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p.InStock && p.SuitsBusiness(session.BusinessType) {
			matched = append(matched, p)
		}
	}
	return toProductListResponse(matched), nil
}

// SetProfile stores the vendor's business type (closed set) on the session.
func (uc *MarketUseCase) SetProfile(ctx context.Context, in dto.SetProfileRequest) (*dto.ProfileResponse, error) {
	if !entity.ValidBusinessType(in.BusinessType) {
		return nil, fmt.Errorf("%w: unknown business type %q", domain.ErrValidation, in.BusinessType)
	}
	session, err := uc.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	session.BusinessType = in.BusinessType
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{BusinessType: session.BusinessType}, nil
}

// GetProfile returns the stored business type; empty when not yet set.
func (uc *MarketUseCase) GetProfile(ctx context.Context) (*dto.ProfileResponse, error) {
	session, err := uc.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrUnauthorized
	}
	return &dto.ProfileResponse{BusinessType: session.BusinessType}, nil
}
