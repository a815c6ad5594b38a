package controllers

import (
	"net/http"
	"strings"

	"github.com/stylelane/stylelane-backend/api/responses"
	"github.com/stylelane/stylelane-backend/api/validators"
	"github.com/stylelane/stylelane-backend/internal/products"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/logger"
	"github.com/stylelane/stylelane-backend/pkg/types"
)

type productCreateRequest struct {
	SKU         string `json:"sku" validate:"required,min=3,max=40"`
	Name        string `json:"name" validate:"required,min=1,max=160"`
	Category    string `json:"category" validate:"max=80"`
	Price       string `json:"price" validate:"required"`
	CostPrice   string `json:"cost_price,omitempty"`
	Size        string `json:"size,omitempty" validate:"max=20"`
	Color       string `json:"color,omitempty" validate:"max=40"`
	Description string `json:"description,omitempty" validate:"max=2000"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type productUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=160"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=80"`
	Price       *string `json:"price,omitempty"`
	CostPrice   *string `json:"cost_price,omitempty"`
	Size        *string `json:"size,omitempty" validate:"omitempty,max=20"`
	Color       *string `json:"color,omitempty" validate:"omitempty,max=40"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

func parseMoneyField(value, field string) (types.Money, error) {
	if strings.TrimSpace(value) == "" {
		return types.Money{}, nil
	}
	money, err := types.MoneyFromString(value)
	if err != nil {
		return types.Money{}, pkgerrors.New(pkgerrors.CodeValidation, field+" must be a decimal amount")
	}
	return money, nil
}

// ProductCreate adds an item to the catalog.
func ProductCreate(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var body productCreateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		price, err := parseMoneyField(body.Price, "price")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		cost, err := parseMoneyField(body.CostPrice, "cost_price")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.Create(r.Context(), products.CreateProductInput{
			SKU:         body.SKU,
			Name:        body.Name,
			Category:    body.Category,
			Price:       price,
			CostPrice:   cost,
			Size:        body.Size,
			Color:       body.Color,
			Description: body.Description,
			ImageURL:    body.ImageURL,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

// ProductGet returns a single catalog item by id.
func ProductGet(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ProductList returns the catalog. A `sku` query parameter performs an
// exact lookup and returns a single-item page.
func ProductList(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		if sku := strings.TrimSpace(r.URL.Query().Get("sku")); sku != "" {
			product, err := svc.GetBySKU(r.Context(), sku)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			writeList(w, []any{product}, nil)
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		listed, cursor, err := svc.List(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		writeList(w, listed, cursor)
	}
}

// ProductUpdate adjusts mutable catalog fields. The sku cannot change.
func ProductUpdate(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body productUpdateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := products.UpdateProductInput{
			Name:        body.Name,
			Category:    body.Category,
			Size:        body.Size,
			Color:       body.Color,
			Description: body.Description,
			ImageURL:    body.ImageURL,
		}
		if body.Price != nil {
			price, err := parseMoneyField(*body.Price, "price")
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.Price = &price
		}
		if body.CostPrice != nil {
			cost, err := parseMoneyField(*body.CostPrice, "cost_price")
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.CostPrice = &cost
		}

		product, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}
