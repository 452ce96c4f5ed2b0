// Package handler contains the echo handlers of the API.
package handler

import (
	"log/slog"
	"net/http"

	"doorstep/internal/delivery/api/response"
	"doorstep/internal/domain/entity"
	domainerrors "doorstep/internal/domain/errors"
	"doorstep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address record handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// PointRequest is a coordinate in a request body.
type PointRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

func (p *PointRequest) toLatLng() *entity.LatLng {
	if p == nil {
		return nil
	}

	return &entity.LatLng{Lat: p.Lat, Lng: p.Lng}
}

// UpdateAddressRequest is a partial update. Omitted fields are left as they are.
type UpdateAddressRequest struct {
	SelectedAddress   *string                            `json:"selected_address"`
	ValidatedAddress  *string                            `json:"validated_address"`
	ClearValidation   bool                               `json:"clear_validation"`
	Coordinates       *PointRequest                      `json:"coordinates"`
	DoorPosition      *PointRequest                      `json:"door_position"`
	HasElevator       *bool                              `json:"has_elevator"`
	SelectedScenarios []entity.Scenario                  `json:"selected_scenarios" validate:"omitempty,dive,required"`
	ScenarioPaths     map[entity.Scenario][]PointRequest `json:"scenario_paths" validate:"omitempty,dive,dive"`
	ParkingSpotSet    *bool                              `json:"parking_spot_set"`
	ParkingPosition   *PointRequest                      `json:"parking_position"`
}

func (r *UpdateAddressRequest) toPatch() *entity.AddressPatch {
	patch := &entity.AddressPatch{
		SelectedAddress:   r.SelectedAddress,
		ValidatedAddress:  r.ValidatedAddress,
		ClearValidation:   r.ClearValidation,
		Coordinates:       r.Coordinates.toLatLng(),
		DoorPosition:      r.DoorPosition.toLatLng(),
		HasElevator:       r.HasElevator,
		SelectedScenarios: r.SelectedScenarios,
		ParkingSpotSet:    r.ParkingSpotSet,
		ParkingPosition:   r.ParkingPosition.toLatLng(),
	}

	if r.ScenarioPaths != nil {
		patch.ScenarioPaths = make(map[entity.Scenario][]entity.LatLng, len(r.ScenarioPaths))
		for s, points := range r.ScenarioPaths {
			path := make([]entity.LatLng, 0, len(points))
			for _, p := range points {
				path = append(path, entity.LatLng{Lat: p.Lat, Lng: p.Lng})
			}
			patch.ScenarioPaths[s] = path
		}
	}

	return patch
}

// QRCodeResponse is returned when a JSON QR code is requested.
type QRCodeResponse struct {
	Link string `json:"link"`
	PNG  []byte `json:"png"`
}

// ListAddresses handles the list view with search
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	list, err := h.addressUC.ListAddresses(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list)
}

// GetAddress handles retrieving one record
func (h *AddressHandler) GetAddress(c echo.Context) error {
	view, err := h.addressUC.GetAddress(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// UpdateAddress handles the record mutation entry point
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	var req UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address update")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	view, err := h.addressUC.UpdateAddress(c.Request().Context(), c.Param("id"), req.toPatch())
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if view == nil {
		return response.HandleAppError(c, domainerrors.ErrAddressNotFound)
	}

	return response.Success(c, http.StatusOK, view)
}

// ValidationCandidates handles the address suggestions of the validation step
func (h *AddressHandler) ValidationCandidates(c echo.Context) error {
	candidates, err := h.addressUC.ValidationCandidates(c.Request().Context(), c.Param("id"), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, candidates)
}

// ExportGeoJSON handles the GeoJSON export of a record
func (h *AddressHandler) ExportGeoJSON(c echo.Context) error {
	fc, err := h.addressUC.ExportGeoJSON(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	body, err := fc.MarshalJSON()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrExportFailed.WrapMessage(err.Error()))
	}

	return response.Binary(c, response.MIMEGeoJSON, body)
}

// GenerateQRCode handles the share code of a record. The image is returned
// as PNG unless JSON is requested with ?format=json.
func (h *AddressHandler) GenerateQRCode(c echo.Context) error {
	png, link, err := h.addressUC.GenerateQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.QueryParam("format") == "json" {
		return response.Success(c, http.StatusOK, QRCodeResponse{Link: link, PNG: png})
	}

	c.Response().Header().Set("X-Record-Link", link)

	return response.Binary(c, response.MIMEPNG, png)
}
