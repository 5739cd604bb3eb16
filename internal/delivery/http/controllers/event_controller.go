package controllers

import (
	"log/slog"
	"net/http"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/delivery/http/middleware"
	"eventbooking/internal/domain"
)

// CreateEventRequest is the request body for POST /events. The slug is derived from the title.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Overview    string   `json:"overview"`
	Image       string   `json:"image"`
	Venue       string   `json:"venue"`
	Location    string   `json:"location"`
	Date        string   `json:"date" example:"2025-03-10"`
	Time        string   `json:"time" example:"09:30"`
	Mode        string   `json:"mode" example:"offline"`
	Audience    string   `json:"audience"`
	Agenda      []string `json:"agenda"`
	Organizer   string   `json:"organizer"`
	Tags        []string `json:"tags"`
}

func (c CreateEventRequest) toEvent() *domain.Event {
	return &domain.Event{
		Title:       c.Title,
		Description: c.Description,
		Overview:    c.Overview,
		Image:       c.Image,
		Venue:       c.Venue,
		Location:    c.Location,
		Date:        c.Date,
		Time:        c.Time,
		Mode:        c.Mode,
		Audience:    c.Audience,
		Agenda:      c.Agenda,
		Organizer:   c.Organizer,
		Tags:        c.Tags,
	}
}

// UpdateEventRequest is the request body for PATCH /events/{eventID}. Omitted fields are unchanged.
type UpdateEventRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Overview    *string  `json:"overview"`
	Image       *string  `json:"image"`
	Venue       *string  `json:"venue"`
	Location    *string  `json:"location"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Mode        *string  `json:"mode"`
	Audience    *string  `json:"audience"`
	Agenda      []string `json:"agenda"`
	Organizer   *string  `json:"organizer"`
	Tags        []string `json:"tags"`
}

// Validate implements helpers.Validator. Field rules are enforced by the service.
func (u UpdateEventRequest) Validate() []string {
	if u.empty() {
		return []string{"at least one field must be provided"}
	}
	return nil
}

func (u UpdateEventRequest) empty() bool {
	return u.Title == nil && u.Description == nil && u.Overview == nil && u.Image == nil &&
		u.Venue == nil && u.Location == nil && u.Date == nil && u.Time == nil &&
		u.Mode == nil && u.Audience == nil && u.Organizer == nil &&
		u.Agenda == nil && u.Tags == nil
}

func (u UpdateEventRequest) patch() *domain.EventPatch {
	return &domain.EventPatch{
		Title:       u.Title,
		Description: u.Description,
		Overview:    u.Overview,
		Image:       u.Image,
		Venue:       u.Venue,
		Location:    u.Location,
		Date:        u.Date,
		Time:        u.Time,
		Mode:        u.Mode,
		Audience:    u.Audience,
		Agenda:      u.Agenda,
		Organizer:   u.Organizer,
		Tags:        u.Tags,
	}
}

// EventSuccessResponse is the success envelope for endpoints returning one event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventsResponse is the data of GET /events.
type ListEventsResponse struct {
	Items      []*domain.Event        `json:"items"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// ListEventsSuccessResponse is the success envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  ListEventsResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event. Fields are trimmed, date and time are normalized to YYYY-MM-DD and HH:MM, and the slug is derived from the title.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the stored event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, missing_field, invalid_array_field, invalid_date, invalid_time, invalid_slug"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: duplicate_key (slug taken)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event := req.toEvent()
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	organizerID, _ := middleware.OrganizerIDFromContext(r.Context())
	c.Logger.InfoContext(r.Context(), "event created", "event_id", event.ID, "slug", event.Slug, "organizer_id", organizerID)
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Applies the given fields to the stored event and re-validates it. The slug changes only when the title does.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param body body UpdateEventRequest true "Fields to update (all optional, at least one)"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or a validation code"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: duplicate_key"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), eventID, req.patch())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetEventByID godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [get]
func (c *EventController) GetEventByID(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEventByID(r.Context(), r.PathValue("eventID"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug" example(annual-tech-summit-2025)
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /slugs/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEventBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// ListEvents godoc
// @Summary List events
// @Description Returns events newest first.
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.ListEventsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	events, total, err := c.Service.ListEvents(r.Context(), params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ListEventsResponse{
		Items:      events,
		Pagination: helpers.NewPaginationMeta(params, total),
	})
}
