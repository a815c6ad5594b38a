package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/stylelane/stylelane-backend/api/responses"
	"github.com/stylelane/stylelane-backend/api/validators"
	"github.com/stylelane/stylelane-backend/internal/shipments"
	"github.com/stylelane/stylelane-backend/pkg/enums"
	pkgerrors "github.com/stylelane/stylelane-backend/pkg/errors"
	"github.com/stylelane/stylelane-backend/pkg/logger"
)

type shipmentStatusRequest struct {
	Status     string  `json:"status" validate:"required,oneof=preparing shipped delivered"`
	Carrier    *string `json:"carrier,omitempty" validate:"omitempty,max=80"`
	TrackingID *string `json:"tracking_id,omitempty" validate:"omitempty,max=120"`
}

// ShipmentGet returns a single shipment by id.
func ShipmentGet(svc shipments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shipment service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shipment, err := svc.GetByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, shipment)
	}
}

// ShipmentList returns shipments, optionally scoped to a restock
// request via the `restock_id` query parameter.
func ShipmentList(svc shipments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shipment service unavailable"))
			return
		}

		params, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if raw := strings.TrimSpace(r.URL.Query().Get("restock_id")); raw != "" {
			restockID, parseErr := uuid.Parse(raw)
			if parseErr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "invalid restock id"))
				return
			}
			listed, cursor, listErr := svc.ListByRestock(r.Context(), restockID, params)
			if listErr != nil {
				responses.WriteError(r.Context(), logg, w, listErr)
				return
			}
			writeList(w, listed, cursor)
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

// ShipmentUpdateStatus advances a shipment through its lifecycle.
func ShipmentUpdateStatus(svc shipments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shipment service unavailable"))
			return
		}

		id, err := validators.ParseIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body shipmentStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shipment, err := svc.UpdateStatus(r.Context(), id, shipments.UpdateStatusInput{
			Status:     enums.ShipmentStatus(body.Status),
			Carrier:    body.Carrier,
			TrackingID: body.TrackingID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, shipment)
	}
}
