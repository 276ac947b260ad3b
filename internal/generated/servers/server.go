// Package servers provides primitives to interact with the granary HTTP API
// described by openapi.yml: models, the echo server interface with its
// parameter-binding wrapper, and the parsed OpenAPI document.
package servers

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GoodsKind defines model for GoodsKind.
type GoodsKind = string

// AddGoodsResponse defines model for AddGoodsResponse.
type AddGoodsResponse struct {
	Kind      GoodsKind `json:"kind"`
	Remainder float64   `json:"remainder"`
}

// AmountRequest defines model for AmountRequest.
type AmountRequest struct {
	Amount float64 `json:"amount"`
}

// AmountResponse defines model for AmountResponse.
type AmountResponse struct {
	Amount float64   `json:"amount"`
	Kind   GoodsKind `json:"kind"`
}

// Container defines model for Container.
type Container struct {
	Amount    float64   `json:"amount"`
	FreeSpace float64   `json:"freeSpace"`
	Kind      GoodsKind `json:"kind"`
	Label     string    `json:"label"`
}

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// RemoveContainerResponse defines model for RemoveContainerResponse.
type RemoveContainerResponse struct {
	Kind    GoodsKind `json:"kind"`
	Removed bool      `json:"removed"`
}

// Storage defines model for Storage.
type Storage struct {
	ContainerCapacity  float64            `json:"containerCapacity"`
	Containers         []Container        `json:"containers"`
	FreeContainerSlots int64              `json:"freeContainerSlots"`
	Id                 openapi_types.UUID `json:"id"`
	MaxContainers      int64              `json:"maxContainers"`
	StorageCapacity    float64            `json:"storageCapacity"`
}

// SweepResponse defines model for SweepResponse.
type SweepResponse struct {
	Removed []GoodsKind `json:"removed"`
}

// TakeGoodsResponse defines model for TakeGoodsResponse.
type TakeGoodsResponse struct {
	Kind  GoodsKind `json:"kind"`
	Taken float64   `json:"taken"`
}

// Kind defines model for Kind.
type Kind = GoodsKind

// AddGoodsJSONRequestBody defines body for AddGoods for application/json ContentType.
type AddGoodsJSONRequestBody = AmountRequest

// TakeGoodsJSONRequestBody defines body for TakeGoods for application/json ContentType.
type TakeGoodsJSONRequestBody = AmountRequest

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Remove every empty container
	// (POST /api/v1/containers/sweep)
	SweepEmptyContainers(ctx echo.Context) error
	// Remove the container if it is empty
	// (DELETE /api/v1/containers/{kind})
	RemoveContainer(ctx echo.Context, kind Kind) error
	// One container of the storage
	// (GET /api/v1/containers/{kind})
	GetContainer(ctx echo.Context, kind Kind) error
	// Stored amount of a kind, 0 without a container
	// (GET /api/v1/containers/{kind}/amount)
	GetAmount(ctx echo.Context, kind Kind) error
	// Put goods into the container of a kind
	// (POST /api/v1/containers/{kind}/goods)
	AddGoods(ctx echo.Context, kind Kind) error
	// Take goods out of the container of a kind
	// (POST /api/v1/containers/{kind}/withdrawals)
	TakeGoods(ctx echo.Context, kind Kind) error
	// Capacities and containers of the storage
	// (GET /api/v1/storage)
	GetStorage(ctx echo.Context) error
	// Human readable report, one line per container
	// (GET /api/v1/storage/report)
	DescribeStorage(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// SweepEmptyContainers converts echo context to params.
func (w *ServerInterfaceWrapper) SweepEmptyContainers(ctx echo.Context) error {
	return w.Handler.SweepEmptyContainers(ctx)
}

// RemoveContainer converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveContainer(ctx echo.Context) error {
	kind, err := bindKind(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RemoveContainer(ctx, kind)
}

// GetContainer converts echo context to params.
func (w *ServerInterfaceWrapper) GetContainer(ctx echo.Context) error {
	kind, err := bindKind(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetContainer(ctx, kind)
}

// GetAmount converts echo context to params.
func (w *ServerInterfaceWrapper) GetAmount(ctx echo.Context) error {
	kind, err := bindKind(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetAmount(ctx, kind)
}

// AddGoods converts echo context to params.
func (w *ServerInterfaceWrapper) AddGoods(ctx echo.Context) error {
	kind, err := bindKind(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AddGoods(ctx, kind)
}

// TakeGoods converts echo context to params.
func (w *ServerInterfaceWrapper) TakeGoods(ctx echo.Context) error {
	kind, err := bindKind(ctx)
	if err != nil {
		return err
	}
	return w.Handler.TakeGoods(ctx, kind)
}

// GetStorage converts echo context to params.
func (w *ServerInterfaceWrapper) GetStorage(ctx echo.Context) error {
	return w.Handler.GetStorage(ctx)
}

// DescribeStorage converts echo context to params.
func (w *ServerInterfaceWrapper) DescribeStorage(ctx echo.Context) error {
	return w.Handler.DescribeStorage(ctx)
}

func bindKind(ctx echo.Context) (Kind, error) {
	var kind Kind
	err := runtime.BindStyledParameterWithOptions("simple", "kind", ctx.Param("kind"), &kind,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter kind: %s", err))
	}
	return kind, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register routes.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/v1/containers/sweep", wrapper.SweepEmptyContainers)
	router.DELETE(baseURL+"/api/v1/containers/:kind", wrapper.RemoveContainer)
	router.GET(baseURL+"/api/v1/containers/:kind", wrapper.GetContainer)
	router.GET(baseURL+"/api/v1/containers/:kind/amount", wrapper.GetAmount)
	router.POST(baseURL+"/api/v1/containers/:kind/goods", wrapper.AddGoods)
	router.POST(baseURL+"/api/v1/containers/:kind/withdrawals", wrapper.TakeGoods)
	router.GET(baseURL+"/api/v1/storage", wrapper.GetStorage)
	router.GET(baseURL+"/api/v1/storage/report", wrapper.DescribeStorage)
}

//go:embed openapi.yml
var rawSpec []byte

// RawSpec returns the OpenAPI document as written.
func RawSpec() []byte {
	return rawSpec
}

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}

	if err = swagger.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("OpenAPI document is invalid: %w", err)
	}

	return swagger, nil
}
