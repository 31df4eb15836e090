package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns all orders with their lines.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// GetOrder returns a single order by ID.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		srv.log(ctx).Error("Failed to get order", slog.Any("orderID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// UpdateOrderStatus validates and applies a status transition.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, input *usecase.UpdateOrderStatusInput) error {
	if !input.Status.IsValid() {
		return errors.Wrap(domainerrors.ErrInvalidOrderStatus, "unknown order status")
	}

	srv.log(ctx).Info("Updating order status", slog.Any("orderID", input.ID), slog.String("status", input.Status.String()))

	if err := srv.orderRepo.UpdateStatus(ctx, input.ID, input.Status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "order not found")
		}

		srv.log(ctx).Error("Failed to update order status", slog.Any("orderID", input.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update order status")
	}

	return nil
}
