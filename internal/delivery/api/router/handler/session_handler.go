package handler

import (
	"log/slog"
	"net/http"

	"doorstep/internal/delivery/api/response"
	"doorstep/internal/domain/entity"
	domainerrors "doorstep/internal/domain/errors"
	"doorstep/internal/domain/wizard"
	"doorstep/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	WizardUC usecase.WizardUsecase
	Logger   *slog.Logger
}

// SessionHandler holds dependencies for wizard session handlers
type SessionHandler struct {
	wizardUC usecase.WizardUsecase
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		wizardUC: params.WizardUC,
		logger:   params.Logger,
	}
}

// EventRequest is a wizard event on the wire. Type selects the event; the
// other fields are read as that event needs them.
type EventRequest struct {
	Type        string          `json:"type" validate:"required"`
	RecordID    string          `json:"record_id"`
	Query       string          `json:"query"`
	Focused     bool            `json:"focused"`
	Address     string          `json:"address"`
	Point       *PointRequest   `json:"point"`
	Panel       entity.MapPanel `json:"panel" validate:"omitempty,mappanel"`
	HasElevator *bool           `json:"has_elevator"`
	Scenario    entity.Scenario `json:"scenario"`
}

// NavigateRequest moves to the previous or next record.
type NavigateRequest struct {
	Direction wizard.Direction `json:"direction" validate:"required,oneof=prev next"`
}

// toEvent maps the request onto a reducer event. Geocoding results are
// produced by the service itself and cannot be sent by clients.
//
//nolint:cyclop
func (r *EventRequest) toEvent() (wizard.Event, error) {
	switch r.Type {
	case wizard.KindSelectRecord:
		if r.RecordID == "" {
			return nil, missingField("record_id")
		}

		return wizard.SelectRecord{RecordID: r.RecordID}, nil
	case wizard.KindBackToList:
		return wizard.BackToList{}, nil
	case wizard.KindSetSearch:
		return wizard.SetSearch{Query: r.Query}, nil
	case wizard.KindFocusValidation:
		return wizard.FocusValidation{Focused: r.Focused}, nil
	case wizard.KindChooseAddress:
		return wizard.ChooseAddress{Address: r.Address}, nil
	case wizard.KindToggleDoorEdit:
		return wizard.ToggleDoorEdit{}, nil
	case wizard.KindMapClick:
		if r.Point == nil {
			return nil, missingField("point")
		}
		panel := r.Panel
		if panel == "" {
			panel = entity.MapPanelSatellite
		}

		return wizard.MapClick{Point: *r.Point.toLatLng(), Panel: panel}, nil
	case wizard.KindMoveDoor:
		if r.Point == nil {
			return nil, missingField("point")
		}

		return wizard.MoveDoor{Point: *r.Point.toLatLng()}, nil
	case wizard.KindConfirmDoor:
		return wizard.ConfirmDoor{}, nil
	case wizard.KindAnswerElevator:
		if r.HasElevator == nil {
			return nil, missingField("has_elevator")
		}

		return wizard.AnswerElevator{HasElevator: *r.HasElevator}, nil
	case wizard.KindCancelDoor:
		return wizard.CancelDoor{}, nil
	case wizard.KindSelectScenario:
		return wizard.SelectScenario{Scenario: r.Scenario}, nil
	case wizard.KindUndoPathPoint:
		return wizard.UndoPathPoint{}, nil
	case wizard.KindFinishPath:
		return wizard.FinishPath{}, nil
	case wizard.KindToggleScenarioSelection:
		if r.Scenario == "" {
			return nil, missingField("scenario")
		}

		return wizard.ToggleScenarioSelection{Scenario: r.Scenario}, nil
	default:
		return nil, domainerrors.ErrUnknownEvent.WithDetails(r.Type)
	}
}

func missingField(field string) error {
	return domainerrors.ErrValidationFailed.WithDetails(field + " is required for this event type")
}

// StartSession handles creating a wizard session
func (h *SessionHandler) StartSession(c echo.Context) error {
	view, err := h.wizardUC.StartSession(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, view)
}

// GetSession handles retrieving the view of a session
func (h *SessionHandler) GetSession(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	view, err := h.wizardUC.GetSession(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// DispatchEvent handles one wizard event
func (h *SessionHandler) DispatchEvent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wizard event")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	ev, err := req.toEvent()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.wizardUC.Dispatch(c.Request().Context(), id, ev)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Navigate handles moving to a neighbouring record
func (h *SessionHandler) Navigate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid session ID")
	}

	var req NavigateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid navigation request")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	result, err := h.wizardUC.Navigate(c.Request().Context(), id, req.Direction)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
