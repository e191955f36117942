package converter

import (
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/pkg/format"
)

func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}
	return &dto.ServiceResponse{
		ID:                service.ID,
		ServiceCategoryID: service.ServiceCategoryID,
		Name:              service.Name,
		Description:       service.Description,
		Price:             service.Price,
		PriceText:         format.Currency(service.Price),
		DurationMinutes:   service.DurationMinutes,
		ServiceCode:       service.ServiceCode,
		Active:            service.Active,
	}
}

func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i := range services {
		responses[i] = *ServiceToResponse(&services[i])
	}
	return responses
}

func CategoryToResponse(category *entity.ServiceCategory) *dto.CategoryResponse {
	if category == nil {
		return nil
	}
	resp := &dto.CategoryResponse{
		ID:       category.ID,
		Name:     category.Name,
		Position: category.Position,
	}
	if len(category.Services) > 0 {
		resp.Services = ServicesToResponses(category.Services)
	}
	return resp
}

func CategoriesToResponses(categories []entity.ServiceCategory) []dto.CategoryResponse {
	responses := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = *CategoryToResponse(&categories[i])
	}
	return responses
}
