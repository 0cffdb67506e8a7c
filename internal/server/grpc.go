package server

import (
	"MarginEngine/internal/observability"
	"MarginEngine/internal/query"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	googleuuid "github.com/google/uuid"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	queryv1 "MarginEngine/gen/go/marginengine/query/v1"
)

// GRPCServer wraps the gRPC server and gRPC-Gateway HTTP mux.
type GRPCServer struct {
	grpcServer    *grpc.Server
	httpServer    *http.Server
	grpcAddr      string
	httpAddr      string
	healthChecker *observability.HealthChecker
}

// ServerDeps holds all dependencies needed by the gRPC services.
type ServerDeps struct {
	DB            *sql.DB
	QueryService  *query.Service
	Metrics       *observability.Metrics
	StartTime     time.Time
	HealthChecker *observability.HealthChecker
}

// NewGRPCServer creates a new gRPC server with all services registered.
func NewGRPCServer(grpcAddr, httpAddr string, deps *ServerDeps) *GRPCServer {
	grpcServer := grpc.NewServer()

	queryv1.RegisterQueryServiceServer(grpcServer, &queryServiceImpl{
		qs:      deps.QueryService,
		metrics: deps.Metrics,
	})

	// Health check
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	// Reflection for grpcurl / grpcui
	reflection.Register(grpcServer)

	return &GRPCServer{
		grpcServer:    grpcServer,
		grpcAddr:      grpcAddr,
		httpAddr:      httpAddr,
		healthChecker: deps.HealthChecker,
	}
}

// StartGRPC starts the gRPC server (blocking).
func (s *GRPCServer) StartGRPC(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: gRPC server shutting down...")
		s.grpcServer.GracefulStop()
	}()

	log.Printf("INFO: gRPC server listening on %s", s.grpcAddr)
	return s.grpcServer.Serve(lis)
}

// StartHTTPGateway starts the gRPC-Gateway HTTP reverse proxy (blocking).
// HTTP/JSON exists for tooling, dashboards, curl; all real clients use gRPC.
func (s *GRPCServer) StartHTTPGateway(ctx context.Context) error {
	mux := runtime.NewServeMux()

	opts := []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}

	if err := queryv1.RegisterQueryServiceHandlerFromEndpoint(ctx, mux, s.grpcAddr, opts); err != nil {
		return fmt.Errorf("register query gateway: %w", err)
	}

	httpMux := http.NewServeMux()
	if s.healthChecker != nil {
		httpMux.HandleFunc("/healthz", s.healthChecker.LivenessHandler)
		httpMux.HandleFunc("/readyz", s.healthChecker.ReadinessHandler)
	} else {
		httpMux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, `{"status":"ok"}`)
		})
	}
	httpMux.Handle("/", mux)

	s.httpServer = &http.Server{
		Addr:    s.httpAddr,
		Handler: httpMux,
	}

	go func() {
		<-ctx.Done()
		log.Println("INFO: HTTP gateway shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.httpServer.Shutdown(shutdownCtx)
	}()

	log.Printf("INFO: HTTP gateway listening on %s (proxying to gRPC %s)", s.httpAddr, s.grpcAddr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// ============================================================================
// QueryService gRPC implementation
// ============================================================================

type queryServiceImpl struct {
	queryv1.UnimplementedQueryServiceServer
	qs      *query.Service
	metrics *observability.Metrics
}

// observe records per-endpoint request counts and latency. The status label
// is the gRPC code string ("OK", "NotFound", ...).
func (s *queryServiceImpl) observe(endpoint string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	code := status.Code(err)
	s.metrics.QueryRequests.WithLabelValues(endpoint, code.String()).Inc()
	s.metrics.QueryDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.QueryErrors.WithLabelValues(endpoint, code.String()).Inc()
	}
}

func (s *queryServiceImpl) GetAccountUpdate(ctx context.Context, req *queryv1.GetAccountUpdateRequest) (resp *queryv1.GetAccountUpdateResponse, err error) {
	start := time.Now()
	defer func() { s.observe("GetAccountUpdate", start, err) }()

	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	accountID, err := parseUUID(req.AccountId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid account_id: %v", err)
	}

	upd, err := s.qs.GetLatest(ctx, accountID)
	if err != nil {
		if errors.Is(err, query.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "account %s has no committed snapshot", req.AccountId)
		}
		return nil, status.Errorf(codes.Internal, "get latest: %v", err)
	}

	return &queryv1.GetAccountUpdateResponse{
		Update: updateToProto(upd),
	}, nil
}

func (s *queryServiceImpl) ListAccountUpdates(ctx context.Context, req *queryv1.ListAccountUpdatesRequest) (resp *queryv1.ListAccountUpdatesResponse, err error) {
	start := time.Now()
	defer func() { s.observe("ListAccountUpdates", start, err) }()

	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	accountID, err := parseUUID(req.AccountId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid account_id: %v", err)
	}

	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var beforeVersion *int64
	if req.BeforeVersion > 0 {
		beforeVersion = &req.BeforeVersion
	}

	history, err := s.qs.GetUpdateHistory(ctx, accountID, pageSize, beforeVersion)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get update history: %v", err)
	}

	var updates []*queryv1.AccountUpdate
	for i := range history {
		updates = append(updates, updateToProto(&history[i]))
	}

	return &queryv1.ListAccountUpdatesResponse{
		Updates: updates,
	}, nil
}

func (s *queryServiceImpl) ListTrades(ctx context.Context, req *queryv1.ListTradesRequest) (resp *queryv1.ListTradesResponse, err error) {
	start := time.Now()
	defer func() { s.observe("ListTrades", start, err) }()

	if req.AccountId == "" {
		return nil, status.Error(codes.InvalidArgument, "account_id is required")
	}

	accountID, err := parseUUID(req.AccountId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid account_id: %v", err)
	}

	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	var market *string
	if req.Market != "" {
		market = &req.Market
	}

	var before *time.Time
	if req.BeforeUs > 0 {
		t := time.UnixMicro(req.BeforeUs).UTC()
		before = &t
	}

	trades, err := s.qs.GetTradeHistory(ctx, accountID, market, pageSize, before)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get trade history: %v", err)
	}

	var pbTrades []*queryv1.Trade
	for _, t := range trades {
		pbTrades = append(pbTrades, &queryv1.Trade{
			Market:                 t.Market,
			OrderId:                t.OrderID,
			Side:                   t.Side,
			AccountId:              t.AccountID.String(),
			Size:                   t.Size,
			Price:                  t.Price,
			Liquidity:              t.Liquidity,
			NativeQuantityPaid:     t.NativeQuantityPaid,
			NativeQuantityReleased: t.NativeQuantityReleased,
			ExecutedAt:             timestamppb.New(t.ExecutedAt),
		})
	}

	return &queryv1.ListTradesResponse{
		Trades: pbTrades,
	}, nil
}

func (s *queryServiceImpl) ListAccountsByStatus(ctx context.Context, req *queryv1.ListAccountsByStatusRequest) (resp *queryv1.ListAccountsByStatusResponse, err error) {
	start := time.Now()
	defer func() { s.observe("ListAccountsByStatus", start, err) }()

	switch req.Status {
	case "Healthy", "Warning", "Liquidatable":
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unknown risk status: %q", req.Status)
	}

	pageSize := int(req.PageSize)
	if pageSize <= 0 || pageSize > 500 {
		pageSize = 100
	}

	entries, err := s.qs.ListAccountsByStatus(ctx, req.Status, pageSize)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list by status: %v", err)
	}

	var pbEntries []*queryv1.RiskOverviewEntry
	for _, e := range entries {
		pbEntries = append(pbEntries, &queryv1.RiskOverviewEntry{
			AccountId:       e.AccountID.String(),
			CollateralRatio: e.CollateralRatio,
			Equity:          e.Equity,
			RiskStatus:      e.RiskStatus,
			Version:         e.Version,
			ComputedAt:      timestamppb.New(e.ComputedAt),
		})
	}

	return &queryv1.ListAccountsByStatusResponse{
		Entries: pbEntries,
	}, nil
}

// ============================================================================
// Helpers
// ============================================================================

func updateToProto(u *query.AccountUpdateResponse) *queryv1.AccountUpdate {
	return &queryv1.AccountUpdate{
		AccountId:       u.AccountID.String(),
		Version:         u.Version,
		AssetsValue:     u.AssetsValue,
		LiabsValue:      u.LiabsValue,
		Equity:          u.Equity,
		CollateralRatio: u.CollateralRatio,
		Leverage:        u.Leverage,
		RiskStatus:      u.RiskStatus,
		Pnl:             u.PNL,
		ComputedAt:      timestamppb.New(u.ComputedAt),
	}
}

func parseUUID(s string) (googleuuid.UUID, error) {
	return googleuuid.Parse(s)
}
