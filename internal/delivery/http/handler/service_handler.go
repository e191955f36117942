package handler

import (
	"encoding/json"
	"net/http"

	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/delivery/http/middleware"
	"clinic-backend/internal/usecase"
	"clinic-backend/pkg/response"
	"clinic-backend/pkg/validator"
)

type ServiceHandler struct {
	serviceUsecase  usecase.ServiceUsecase
	categoryUsecase usecase.ServiceCategoryUsecase
	validator       *validator.CustomValidator
}

func NewServiceHandler(
	serviceUsecase usecase.ServiceUsecase,
	categoryUsecase usecase.ServiceCategoryUsecase,
	validator *validator.CustomValidator,
) *ServiceHandler {
	return &ServiceHandler{
		serviceUsecase:  serviceUsecase,
		categoryUsecase: categoryUsecase,
		validator:       validator,
	}
}

// Search handles the public price list search. The form posts query and
// category_id; both may be blank.
func (h *ServiceHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req dto.ServiceSearchRequest
	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
	} else {
		req.Query = r.FormValue("query")
		req.CategoryID = r.FormValue("category_id")
	}

	result, err := h.serviceUsecase.Search(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to search services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", result)
}

// GetPriceList returns every category with its services in price list order.
func (h *ServiceHandler) GetPriceList(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUsecase.GetPriceList(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get price list")
		return
	}

	response.Success(w, http.StatusOK, "Price list retrieved successfully", categories)
}

func (h *ServiceHandler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryUsecase.GetAllCategories(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get categories")
		return
	}

	response.Success(w, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *ServiceHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	category, err := h.categoryUsecase.CreateCategory(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrCategoryNameExists:
			response.Conflict(w, "Category name already exists")
		case usecase.ErrInvalidPosition:
			response.BadRequest(w, "Position must be a non-negative integer")
		default:
			response.InternalServerError(w, "Failed to create category")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Category created successfully", category)
}

func (h *ServiceHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid category ID")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	category, err := h.categoryUsecase.UpdateCategory(r.Context(), categoryID, &req)
	if err != nil {
		switch err {
		case usecase.ErrCategoryNotFound:
			response.NotFound(w, "Category not found")
		case usecase.ErrCategoryNameExists:
			response.Conflict(w, "Category name already exists")
		case usecase.ErrInvalidPosition:
			response.BadRequest(w, "Position must be a non-negative integer")
		default:
			response.InternalServerError(w, "Failed to update category")
		}
		return
	}

	response.Success(w, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory removes a category together with its services.
func (h *ServiceHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := parseIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid category ID")
		return
	}

	actor, _ := middleware.GetAdminUserFromContext(r.Context())
	if err := h.categoryUsecase.DeleteCategory(r.Context(), categoryID, actor); err != nil {
		switch err {
		case usecase.ErrCategoryNotFound:
			response.NotFound(w, "Category not found")
		default:
			response.InternalServerError(w, "Failed to delete category")
		}
		return
	}

	response.Success(w, http.StatusOK, "Category deleted successfully", nil)
}

func (h *ServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := parseIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid service ID")
		return
	}

	svc, err := h.serviceUsecase.GetService(r.Context(), serviceID)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to get service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", svc)
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	svc, err := h.serviceUsecase.CreateService(r.Context(), &req)
	if err != nil {
		h.writeServiceError(w, err, "Failed to create service")
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", svc)
}

func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := parseIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid service ID")
		return
	}

	var req dto.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	svc, err := h.serviceUsecase.UpdateService(r.Context(), serviceID, &req)
	if err != nil {
		h.writeServiceError(w, err, "Failed to update service")
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", svc)
}

func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := parseIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid service ID")
		return
	}

	actor, _ := middleware.GetAdminUserFromContext(r.Context())
	if err := h.serviceUsecase.DeleteService(r.Context(), serviceID, actor); err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to delete service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service deleted successfully", nil)
}

func (h *ServiceHandler) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch err {
	case usecase.ErrServiceNotFound:
		response.NotFound(w, "Service not found")
	case usecase.ErrCategoryNotFound:
		response.BadRequest(w, "Service category does not exist")
	case usecase.ErrNegativePrice:
		response.BadRequest(w, "Price must be greater than or equal to 0")
	case usecase.ErrInvalidServiceCode:
		response.BadRequest(w, "Service code format is invalid")
	case usecase.ErrServiceCodeExists:
		response.Conflict(w, "Service code already exists")
	case usecase.ErrServiceCodeExhausted:
		response.InternalServerError(w, "Could not generate a unique service code")
	default:
		response.InternalServerError(w, fallback)
	}
}
