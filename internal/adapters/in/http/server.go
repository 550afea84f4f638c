// Package http exposes the shipping use cases over a versioned REST API.
// Four API versions are mounted (/api/v1 through /api/v4); all of them
// share the same handlers and the same canonical response shape, so a
// client may use any version interchangeably.
package http

import (
	_ "embed"
	"errors"
	"log/slog"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime/types"
)

//go:embed openapi.yml
var openAPIDocument []byte

// apiVersions lists the mounted API version prefixes. Every version serves
// the same contract.
var apiVersions = []string{"v1", "v2", "v3", "v4"}

// Error is the wire shape of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateShipmentRequest is the wire shape of a shipment creation request.
type CreateShipmentRequest struct {
	OrderID       string             `json:"orderId"`
	Address       AddressRequest     `json:"address"`
	Carrier       string             `json:"carrier"`
	ReceiverEmail types.Email        `json:"receiverEmail"`
	Items         []ShipmentLineItem `json:"items"`
}

// AddressRequest is the wire shape of the delivery address.
type AddressRequest struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

// ShipmentLineItem is the wire shape of one shipment line.
type ShipmentLineItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// UpdateShipmentStatusRequest carries the status label to apply, e.g.
// "InTransit".
type UpdateShipmentStatusRequest struct {
	Status string `json:"status"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler       commands.CreateShipmentCommandHandler
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler

	// Query handlers
	getShipmentByNumberHandler queries.GetShipmentByNumberQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentStatusHandler commands.UpdateShipmentStatusCommandHandler,
	getShipmentByNumberHandler queries.GetShipmentByNumberQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createShipmentHandler:       createShipmentHandler,
		updateShipmentStatusHandler: updateShipmentStatusHandler,
		getShipmentByNumberHandler:  getShipmentByNumberHandler,
		logger:                      logger,
	}
}

// RegisterRoutes mounts the shipment API under every supported version
// prefix, plus the health and contract endpoints.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	for _, version := range apiVersions {
		group := e.Group("/api/" + version)
		group.POST("/shipments", s.CreateShipment)
		group.GET("/shipments/:number", s.GetShipmentByNumber)
		group.POST("/shipments/update-status/:number", s.UpdateShipmentStatus)
	}

	e.GET("/health", s.Health)
	e.GET("/openapi.yml", s.OpenAPIDocument)
}

// CreateShipment handles POST /api/{version}/shipments - creates the
// shipment for an order.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var request CreateShipmentRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := buildCreateShipmentCommand(request)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment data: " + err.Error(),
		})
	}

	response, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return ctx.JSON(http.StatusConflict, Error{
				Code:    http.StatusConflict,
				Message: "Shipment already exists for order " + request.OrderID,
			})
		}
		s.logger.Error("shipment creation failed", "orderId", request.OrderID, "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create shipment",
		})
	}

	s.logger.Info("shipment created", "number", response.Number, "orderId", response.OrderID)
	return ctx.JSON(http.StatusOK, response)
}

// GetShipmentByNumber handles GET /api/{version}/shipments/{number} -
// retrieves a shipment with its items.
func (s *Server) GetShipmentByNumber(ctx echo.Context) error {
	query, err := queries.NewGetShipmentByNumberQuery(ctx.Param("number"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment number: " + err.Error(),
		})
	}

	response, err := s.getShipmentByNumberHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Shipment " + query.ShipmentNumber() + " not found",
			})
		}
		s.logger.Error("shipment lookup failed", "number", query.ShipmentNumber(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve shipment",
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateShipmentStatus handles POST
// /api/{version}/shipments/update-status/{number} - overwrites the status
// of an existing shipment.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	var request UpdateShipmentStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := shipment.StatusFromString(request.Status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status: " + err.Error(),
		})
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(ctx.Param("number"), status)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status update: " + err.Error(),
		})
	}

	if err = s.updateShipmentStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Shipment " + cmd.ShipmentNumber() + " not found",
			})
		}
		s.logger.Error("status update failed", "number", cmd.ShipmentNumber(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update shipment status",
		})
	}

	s.logger.Info("shipment status updated", "number", cmd.ShipmentNumber(), "status", request.Status)
	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// OpenAPIDocument handles GET /openapi.yml - serves the API contract.
func (s *Server) OpenAPIDocument(ctx echo.Context) error {
	return ctx.Blob(http.StatusOK, "application/yaml", openAPIDocument)
}

// buildCreateShipmentCommand converts the wire request into a validated
// creation command. All domain validation errors surface here, before the
// handler touches storage.
func buildCreateShipmentCommand(request CreateShipmentRequest) (commands.CreateShipmentCommand, error) {
	address, err := shipment.NewAddress(request.Address.Street, request.Address.City, request.Address.Zip)
	if err != nil {
		return commands.CreateShipmentCommand{}, err
	}

	items := make([]shipment.Item, 0, len(request.Items))
	for _, line := range request.Items {
		item, itemErr := shipment.NewItem(line.Product, line.Quantity)
		if itemErr != nil {
			return commands.CreateShipmentCommand{}, itemErr
		}
		items = append(items, item)
	}

	return commands.NewCreateShipmentCommand(
		request.OrderID,
		address,
		request.Carrier,
		string(request.ReceiverEmail),
		items,
	)
}
