package dto

import "github.com/shopspring/decimal"

// Request DTOs

// CreateCategoryRequest carries the admin category form. Position stays a
// string: it is coerced to an integer by the usecase, and zero or empty
// triggers position auto-assignment.
type CreateCategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	Position string `json:"position" validate:"omitempty"`
}

type UpdateCategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	Position string `json:"position" validate:"omitempty"`
}

type CreateServiceRequest struct {
	ServiceCategoryID uint            `json:"service_category_id" validate:"required"`
	Name              string          `json:"name" validate:"required"`
	Description       string          `json:"description" validate:"omitempty"`
	Price             decimal.Decimal `json:"price"`
	DurationMinutes   *int            `json:"duration_minutes" validate:"omitempty,gte=0"`
	ServiceCode       string          `json:"service_code" validate:"omitempty"`
	Active            *bool           `json:"active" validate:"omitempty"`
}

type UpdateServiceRequest struct {
	ServiceCategoryID uint            `json:"service_category_id" validate:"required"`
	Name              string          `json:"name" validate:"required"`
	Description       string          `json:"description" validate:"omitempty"`
	Price             decimal.Decimal `json:"price"`
	DurationMinutes   *int            `json:"duration_minutes" validate:"omitempty,gte=0"`
	ServiceCode       string          `json:"service_code" validate:"omitempty"`
	Active            *bool           `json:"active" validate:"omitempty"`
}

// ServiceSearchRequest carries the price list search form fields.
// CategoryID is the raw string; empty means no category filter.
type ServiceSearchRequest struct {
	Query      string `json:"query"`
	CategoryID string `json:"category_id"`
}

// Response DTOs

type CategoryResponse struct {
	ID       uint              `json:"id"`
	Name     string            `json:"name"`
	Position int               `json:"position"`
	Services []ServiceResponse `json:"services,omitempty"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Total      int                `json:"total"`
}

type ServiceResponse struct {
	ID                uint            `json:"id"`
	ServiceCategoryID uint            `json:"service_category_id"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	Price             decimal.Decimal `json:"price"`
	PriceText         string          `json:"price_text"`
	DurationMinutes   *int            `json:"duration_minutes,omitempty"`
	ServiceCode       string          `json:"service_code,omitempty"`
	Active            bool            `json:"active"`
}

// ServiceGroupResponse is one category together with its matching
// services, in price list order.
type ServiceGroupResponse struct {
	Category CategoryResponse  `json:"category"`
	Services []ServiceResponse `json:"services"`
}

// ServiceSearchResponse groups search results by category; Count is the
// total number of matching services across all groups.
type ServiceSearchResponse struct {
	Groups []ServiceGroupResponse `json:"groups"`
	Count  int                    `json:"count"`
}
