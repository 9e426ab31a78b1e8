package grpc

import (
	"context"
	"errors"
	"fmt"
	"math"

	"catalog_service/internal/domain"
	"catalog_service/internal/taxonomy"
	"catalog_service/internal/usecase"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type CatalogHandler struct {
	useCase usecase.CatalogUseCase
	log     *logrus.Logger
}

func NewCatalogHandler(uc usecase.CatalogUseCase, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{useCase: uc, log: logger}
}

// NewServer returns a gRPC server with the catalog service and reflection
// registered and every unary call logged.
func NewServer(handler *CatalogHandler, logger *logrus.Logger) *grpc.Server {
	server := grpc.NewServer(grpc.UnaryInterceptor(loggingInterceptor(logger)))
	RegisterCatalogServiceServer(server, handler)
	reflection.Register(server)
	logger.Info("gRPC reflection service registered")
	return server
}

func loggingInterceptor(logger *logrus.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		resp, err := handler(ctx, req)
		entry := logger.WithFields(logrus.Fields{
			"method": info.FullMethod,
			"code":   status.Code(err).String(),
		})
		if err != nil {
			entry.Warn("gRPC call failed")
		} else {
			entry.Debug("gRPC call completed")
		}
		return resp, err
	}
}

func (h *CatalogHandler) ResolveFilter(ctx context.Context, req *wrapperspb.StringValue) (*structpb.ListValue, error) {
	identifier := domain.NormalizeKey(req.GetValue())
	h.log.Infof("gRPC Handler: Received ResolveFilter request: %q", identifier)

	_, products := h.useCase.Category(identifier)
	items := make([]interface{}, 0, len(products))
	for _, p := range products {
		v, err := toJSONValue(p)
		if err != nil {
			return nil, mapDomainErrorToGrpcStatus(err)
		}
		items = append(items, v)
	}
	list, err := structpb.NewList(items)
	if err != nil {
		h.log.Errorf("gRPC Handler: Failed to encode %d products: %v", len(items), err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return list, nil
}

func (h *CatalogHandler) ResolveMetadata(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	identifier := domain.NormalizeKey(req.GetValue())
	h.log.Infof("gRPC Handler: Received ResolveMetadata request: %q", identifier)

	info, _ := h.useCase.Category(identifier)
	if !taxonomy.Known(identifier) {
		h.log.Warnf("gRPC Handler: Unknown identifier %q, returning placeholder", identifier)
	}
	return toStruct(info)
}

func (h *CatalogHandler) GetProduct(ctx context.Context, req *wrapperspb.Int64Value) (*structpb.Struct, error) {
	id := req.GetValue()
	h.log.Infof("gRPC Handler: Received GetProduct request: ID=%d", id)
	if id <= 0 || id > math.MaxInt32 {
		return nil, status.Error(codes.InvalidArgument, "Invalid product ID")
	}

	product, _, err := h.useCase.Product(int(id))
	if err != nil {
		h.log.Warnf("gRPC Handler: GetProduct use case error for ID %d: %v", id, err)
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return toStruct(product)
}

func toJSONValue(v interface{}) (interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", v, err)
	}
	var out interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %T: %w", v, err)
	}
	return out, nil
}

func toStruct(v interface{}) (*structpb.Struct, error) {
	raw, err := toJSONValue(v)
	if err != nil {
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	fields, ok := raw.(map[string]interface{})
	if !ok {
		return nil, status.Errorf(codes.Internal, "Internal server error: %T is not an object", v)
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, mapDomainErrorToGrpcStatus(err)
	}
	return s, nil
}

func mapDomainErrorToGrpcStatus(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrLookNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidProduct), errors.Is(err, domain.ErrInvalidID):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	default:
		return status.Errorf(codes.Internal, "Internal server error: %v", err)
	}
}
