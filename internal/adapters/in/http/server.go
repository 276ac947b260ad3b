// Package http exposes the storage ledger over the JSON API described in
// internal/generated/servers/openapi.yml.
package http

import (
	"log/slog"
	"net/http"

	"granary/internal/core/application/usecases/commands"
	"granary/internal/core/application/usecases/queries"
	"granary/internal/core/domain/model/goods"
	"granary/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addGoodsHandler        commands.AddGoodsCommandHandler
	takeGoodsHandler       commands.TakeGoodsCommandHandler
	removeContainerHandler commands.RemoveContainerCommandHandler
	sweepHandler           commands.SweepEmptyContainersCommandHandler

	// Query handlers
	getStorageHandler      queries.GetStorageQueryHandler
	getContainerHandler    queries.GetContainerQueryHandler
	getAmountHandler       queries.GetAmountQueryHandler
	describeStorageHandler queries.DescribeStorageQueryHandler

	logger *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	AddGoods        commands.AddGoodsCommandHandler
	TakeGoods       commands.TakeGoodsCommandHandler
	RemoveContainer commands.RemoveContainerCommandHandler
	Sweep           commands.SweepEmptyContainersCommandHandler

	GetStorage      queries.GetStorageQueryHandler
	GetContainer    queries.GetContainerQueryHandler
	GetAmount       queries.GetAmountQueryHandler
	DescribeStorage queries.DescribeStorageQueryHandler
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		addGoodsHandler:        handlers.AddGoods,
		takeGoodsHandler:       handlers.TakeGoods,
		removeContainerHandler: handlers.RemoveContainer,
		sweepHandler:           handlers.Sweep,
		getStorageHandler:      handlers.GetStorage,
		getContainerHandler:    handlers.GetContainer,
		getAmountHandler:       handlers.GetAmount,
		describeStorageHandler: handlers.DescribeStorage,
		logger:                 logger.With("component", "http"),
	}
}

// GetStorage handles GET /api/v1/storage.
func (s *Server) GetStorage(ctx echo.Context) error {
	view, err := s.getStorageHandler.Handle(ctx.Request().Context(), queries.NewGetStorageQuery())
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve storage")
	}

	containers := make([]servers.Container, len(view.Containers))
	for i, container := range view.Containers {
		containers[i] = toContainer(container)
	}

	return ctx.JSON(http.StatusOK, servers.Storage{
		Id:                 view.ID.Value(),
		ContainerCapacity:  view.ContainerCapacity,
		StorageCapacity:    view.StorageCapacity,
		MaxContainers:      int64(view.MaxContainers),
		FreeContainerSlots: int64(view.FreeContainerSlots),
		Containers:         containers,
	})
}

// DescribeStorage handles GET /api/v1/storage/report.
func (s *Server) DescribeStorage(ctx echo.Context) error {
	description, err := s.describeStorageHandler.Handle(ctx.Request().Context(), queries.NewDescribeStorageQuery())
	if err != nil {
		return s.respondError(ctx, err, "Failed to describe storage")
	}

	return ctx.String(http.StatusOK, description)
}

// GetContainer handles GET /api/v1/containers/{kind}.
func (s *Server) GetContainer(ctx echo.Context, kind servers.Kind) error {
	parsed, err := goods.ParseKind(kind)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	query, err := queries.NewGetContainerQuery(parsed)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	view, err := s.getContainerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve container")
	}

	return ctx.JSON(http.StatusOK, toContainer(view))
}

// GetAmount handles GET /api/v1/containers/{kind}/amount.
func (s *Server) GetAmount(ctx echo.Context, kind servers.Kind) error {
	parsed, err := goods.ParseKind(kind)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	query, err := queries.NewGetAmountQuery(parsed)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	amount, err := s.getAmountHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve amount")
	}

	return ctx.JSON(http.StatusOK, servers.AmountResponse{
		Kind:   parsed.String(),
		Amount: amount,
	})
}

// AddGoods handles POST /api/v1/containers/{kind}/goods.
func (s *Server) AddGoods(ctx echo.Context, kind servers.Kind) error {
	parsed, amount, err := bindAmountRequest(ctx, kind)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	cmd, err := commands.NewAddGoodsCommand(parsed, amount)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	remainder, err := s.addGoodsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to add goods")
	}

	s.logger.InfoContext(ctx.Request().Context(), "goods added",
		"kind", parsed, "amount", amount, "remainder", remainder)

	return ctx.JSON(http.StatusOK, servers.AddGoodsResponse{
		Kind:      parsed.String(),
		Remainder: remainder,
	})
}

// TakeGoods handles POST /api/v1/containers/{kind}/withdrawals.
func (s *Server) TakeGoods(ctx echo.Context, kind servers.Kind) error {
	parsed, amount, err := bindAmountRequest(ctx, kind)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	cmd, err := commands.NewTakeGoodsCommand(parsed, amount)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	taken, err := s.takeGoodsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to take goods")
	}

	s.logger.InfoContext(ctx.Request().Context(), "goods taken",
		"kind", parsed, "requested", amount, "taken", taken)

	return ctx.JSON(http.StatusOK, servers.TakeGoodsResponse{
		Kind:  parsed.String(),
		Taken: taken,
	})
}

// RemoveContainer handles DELETE /api/v1/containers/{kind}.
func (s *Server) RemoveContainer(ctx echo.Context, kind servers.Kind) error {
	parsed, err := goods.ParseKind(kind)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	cmd, err := commands.NewRemoveContainerCommand(parsed)
	if err != nil {
		return s.respondError(ctx, err, "")
	}

	removed, err := s.removeContainerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to remove container")
	}

	return ctx.JSON(http.StatusOK, servers.RemoveContainerResponse{
		Kind:    parsed.String(),
		Removed: removed,
	})
}

// SweepEmptyContainers handles POST /api/v1/containers/sweep.
func (s *Server) SweepEmptyContainers(ctx echo.Context) error {
	removed, err := s.sweepHandler.Handle(ctx.Request().Context(), commands.NewSweepEmptyContainersCommand())
	if err != nil {
		return s.respondError(ctx, err, "Failed to sweep empty containers")
	}

	kinds := make([]servers.GoodsKind, len(removed))
	for i, kind := range removed {
		kinds[i] = kind.String()
	}

	return ctx.JSON(http.StatusOK, servers.SweepResponse{Removed: kinds})
}

func bindAmountRequest(ctx echo.Context, kind servers.Kind) (goods.Kind, float64, error) {
	parsed, err := goods.ParseKind(kind)
	if err != nil {
		return goods.Unknown, 0, err
	}

	var body servers.AmountRequest
	if err = ctx.Bind(&body); err != nil {
		return goods.Unknown, 0, err
	}

	return parsed, body.Amount, nil
}

func toContainer(view queries.ContainerView) servers.Container {
	return servers.Container{
		Kind:      view.Kind.String(),
		Label:     view.Label,
		Amount:    view.Amount,
		FreeSpace: view.FreeSpace,
	}
}
