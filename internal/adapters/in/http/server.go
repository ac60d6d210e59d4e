// Package http is the inbound HTTP adapter. Routes map one-to-one onto the
// command and query handlers; the authenticated principal arrives in the
// X-Account header, set by whatever authentication fronts the service.
package http

import (
	"errors"
	"net/http"
	"time"

	"deliveryescrow/internal/core/application/usecases/commands"
	"deliveryescrow/internal/core/application/usecases/queries"
	"deliveryescrow/internal/core/domain/model/commission"
	"deliveryescrow/internal/core/domain/model/kernel"
	"deliveryescrow/internal/core/domain/model/party"
	"deliveryescrow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// AccountHeader carries the authenticated caller identity.
const AccountHeader = "X-Account"

// Server coordinates between HTTP routes and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler       commands.CreateDeliveryCommandHandler
	applyToDeliveryHandler      commands.ApplyToDeliveryCommandHandler
	startDeliveryHandler        commands.StartDeliveryCommandHandler
	signReceiptHandler          commands.SignReceiptCommandHandler
	checkOvertimeHandler        commands.CheckOvertimeCommandHandler
	changeCommissionRateHandler commands.ChangeCommissionRateCommandHandler
	depositFundsHandler         commands.DepositFundsCommandHandler

	// Query handlers
	getDeliveryHandler       queries.GetDeliveryQueryHandler
	doesDeliveryExistHandler queries.DoesDeliveryExistQueryHandler
	getDeliveryCountHandler  queries.GetDeliveryCountQueryHandler
	getDeliveryHashAtHandler queries.GetDeliveryHashAtQueryHandler
	getUserHandler           queries.GetUserQueryHandler
	getCommissionRateHandler queries.GetCommissionRateQueryHandler
	getSnapshotRateHandler   queries.GetCommissionRateForDeliveryQueryHandler
	getBalanceHandler        queries.GetBalanceQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	applyToDeliveryHandler commands.ApplyToDeliveryCommandHandler,
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	signReceiptHandler commands.SignReceiptCommandHandler,
	checkOvertimeHandler commands.CheckOvertimeCommandHandler,
	changeCommissionRateHandler commands.ChangeCommissionRateCommandHandler,
	depositFundsHandler commands.DepositFundsCommandHandler,
	getDeliveryHandler queries.GetDeliveryQueryHandler,
	doesDeliveryExistHandler queries.DoesDeliveryExistQueryHandler,
	getDeliveryCountHandler queries.GetDeliveryCountQueryHandler,
	getDeliveryHashAtHandler queries.GetDeliveryHashAtQueryHandler,
	getUserHandler queries.GetUserQueryHandler,
	getCommissionRateHandler queries.GetCommissionRateQueryHandler,
	getSnapshotRateHandler queries.GetCommissionRateForDeliveryQueryHandler,
	getBalanceHandler queries.GetBalanceQueryHandler,
) *Server {
	return &Server{
		createDeliveryHandler:       createDeliveryHandler,
		applyToDeliveryHandler:      applyToDeliveryHandler,
		startDeliveryHandler:        startDeliveryHandler,
		signReceiptHandler:          signReceiptHandler,
		checkOvertimeHandler:        checkOvertimeHandler,
		changeCommissionRateHandler: changeCommissionRateHandler,
		depositFundsHandler:         depositFundsHandler,
		getDeliveryHandler:          getDeliveryHandler,
		doesDeliveryExistHandler:    doesDeliveryExistHandler,
		getDeliveryCountHandler:     getDeliveryCountHandler,
		getDeliveryHashAtHandler:    getDeliveryHashAtHandler,
		getUserHandler:              getUserHandler,
		getCommissionRateHandler:    getCommissionRateHandler,
		getSnapshotRateHandler:      getSnapshotRateHandler,
		getBalanceHandler:           getBalanceHandler,
	}
}

// RegisterRoutes wires all routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/deliveries", s.CreateDelivery)
	api.GET("/deliveries/count", s.GetDeliveryCount)
	api.GET("/deliveries/at/:index", s.GetDeliveryHashAt)
	api.GET("/deliveries/:hash", s.GetDelivery)
	api.GET("/deliveries/:hash/exists", s.DoesDeliveryExist)
	api.GET("/deliveries/:hash/commission-rate", s.GetCommissionRateForDelivery)
	api.POST("/deliveries/:hash/apply", s.ApplyToDelivery)
	api.POST("/deliveries/:hash/start", s.StartDelivery)
	api.POST("/deliveries/:hash/receipt", s.SignReceipt)
	api.POST("/deliveries/:hash/overtime-check", s.CheckOvertime)

	api.GET("/users/:account", s.GetUser)

	api.GET("/commission-rate", s.GetCommissionRate)
	api.PUT("/commission-rate", s.ChangeCommissionRate)

	api.POST("/wallet/deposit", s.DepositFunds)
	api.GET("/wallet/balance", s.GetBalance)
}

// principal extracts the authenticated caller from the X-Account header.
func principal(ctx echo.Context) (kernel.Account, error) {
	raw := ctx.Request().Header.Get(AccountHeader)
	if raw == "" {
		return kernel.Account{}, echo.NewHTTPError(http.StatusUnauthorized, "missing "+AccountHeader+" header")
	}

	account, err := kernel.AccountFromString(raw)
	if err != nil {
		return kernel.Account{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid "+AccountHeader+" header")
	}

	return account, nil
}

// pathHash parses the :hash route parameter.
func pathHash(ctx echo.Context) (kernel.DeliveryHash, error) {
	hash, err := kernel.DeliveryHashFromString(ctx.Param("hash"))
	if err != nil {
		return kernel.DeliveryHash{}, echo.NewHTTPError(http.StatusBadRequest, "invalid delivery hash")
	}
	return hash, nil
}

// fail maps a use case error onto an HTTP error response. The taxonomy in
// internal/pkg/errs decides the status; anything unrecognized is a 500.
func fail(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState), errors.Is(err, errs.ErrDuplicateIdentifier):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrDepositMismatch),
		errors.Is(err, errs.ErrInsufficientFunds),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

// CreateDelivery handles POST /api/v1/deliveries.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	sender, err := principal(ctx)
	if err != nil {
		return err
	}

	var req CreateDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	receiver, err := kernel.AccountFromString(req.Receiver)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid receiver account"})
	}

	senderContact, err := party.NewContact(req.SenderContact.Name, req.SenderContact.Phone, req.SenderContact.Email)
	if err != nil {
		return fail(ctx, err)
	}
	receiverContact, err := party.NewContact(req.ReceiverContact.Name, req.ReceiverContact.Phone, req.ReceiverContact.Email)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateDeliveryCommand(
		sender, senderContact, receiver, receiverContact,
		req.FromAddress, req.ToAddress,
		kernel.NewMoney(req.Reward), kernel.NewMoney(req.CautionAmount), req.Deadline,
	)
	if err != nil {
		return fail(ctx, err)
	}

	hash, err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateDeliveryResponse{Hash: hash.String()})
}

// ApplyToDelivery handles POST /api/v1/deliveries/:hash/apply.
func (s *Server) ApplyToDelivery(ctx echo.Context) error {
	courier, err := principal(ctx)
	if err != nil {
		return err
	}
	hash, err := pathHash(ctx)
	if err != nil {
		return err
	}

	var req ApplyRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	contact, err := party.NewContact(req.Contact.Name, req.Contact.Phone, req.Contact.Email)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewApplyToDeliveryCommand(hash, courier, contact, kernel.NewMoney(req.Attached))
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.applyToDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartDelivery handles POST /api/v1/deliveries/:hash/start.
func (s *Server) StartDelivery(ctx echo.Context) error {
	caller, err := principal(ctx)
	if err != nil {
		return err
	}
	hash, err := pathHash(ctx)
	if err != nil {
		return err
	}

	var req StartRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewStartDeliveryCommand(hash, caller, kernel.NewMoney(req.Attached))
	if err != nil {
		return fail(ctx, err)
	}

	startTime, err := s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StartResponse{StartTime: startTime})
}

// SignReceipt handles POST /api/v1/deliveries/:hash/receipt.
func (s *Server) SignReceipt(ctx echo.Context) error {
	caller, err := principal(ctx)
	if err != nil {
		return err
	}
	hash, err := pathHash(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSignReceiptCommand(hash, caller)
	if err != nil {
		return fail(ctx, err)
	}

	endTime, err := s.signReceiptHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReceiptResponse{EndTime: endTime})
}

// CheckOvertime handles POST /api/v1/deliveries/:hash/overtime-check.
func (s *Server) CheckOvertime(ctx echo.Context) error {
	caller, err := principal(ctx)
	if err != nil {
		return err
	}
	hash, err := pathHash(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCheckOvertimeCommand(hash, caller)
	if err != nil {
		return fail(ctx, err)
	}

	isOnTime, err := s.checkOvertimeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OvertimeCheckResponse{IsOnTime: isOnTime})
}

// ChangeCommissionRate handles PUT /api/v1/commission-rate.
func (s *Server) ChangeCommissionRate(ctx echo.Context) error {
	caller, err := principal(ctx)
	if err != nil {
		return err
	}

	var req ChangeCommissionRateRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	rate, err := commission.NewRate(req.Rate)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewChangeCommissionRateCommand(caller, rate)
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.changeCommissionRateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DepositFunds handles POST /api/v1/wallet/deposit.
func (s *Server) DepositFunds(ctx echo.Context) error {
	caller, err := principal(ctx)
	if err != nil {
		return err
	}

	var req DepositRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid request body"})
	}

	cmd, err := commands.NewDepositFundsCommand(caller, kernel.NewMoney(req.Amount))
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.depositFundsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDelivery handles GET /api/v1/deliveries/:hash.
func (s *Server) GetDelivery(ctx echo.Context) error {
	hash, err := pathHash(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetDeliveryQuery(hash)
	if err != nil {
		return fail(ctx, err)
	}

	record, err := s.getDeliveryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	resp := DeliveryResponse{
		Hash:           record.Hash,
		Sender:         record.Sender,
		Receiver:       record.Receiver,
		Courier:        record.Courier,
		FromAddress:    record.FromAddress,
		ToAddress:      record.ToAddress,
		Reward:         record.Reward,
		CautionAmount:  record.CautionAmount,
		Deadline:       record.Deadline,
		CommissionRate: record.CommissionRate,
		Commission:     record.Commission,
		CourierPayout:  record.CourierPayout,
		State:          record.State,
	}
	if !record.StartTime.IsZero() {
		resp.StartTime = timePtr(record.StartTime)
	}
	if !record.EndTime.IsZero() {
		resp.EndTime = timePtr(record.EndTime)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// DoesDeliveryExist handles GET /api/v1/deliveries/:hash/exists.
func (s *Server) DoesDeliveryExist(ctx echo.Context) error {
	hash, err := pathHash(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewDoesDeliveryExistQuery(hash)
	if err != nil {
		return fail(ctx, err)
	}

	exists, err := s.doesDeliveryExistHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ExistsResponse{Exists: exists})
}

// GetDeliveryCount handles GET /api/v1/deliveries/count.
func (s *Server) GetDeliveryCount(ctx echo.Context) error {
	count, err := s.getDeliveryCountHandler.Handle(ctx.Request().Context(), queries.NewGetDeliveryCountQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CountResponse{Count: count})
}

// GetDeliveryHashAt handles GET /api/v1/deliveries/at/:index.
func (s *Server) GetDeliveryHashAt(ctx echo.Context) error {
	var index int64
	if err := echo.PathParamsBinder(ctx).Int64("index", &index).BindError(); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid index"})
	}

	query, err := queries.NewGetDeliveryHashAtQuery(index)
	if err != nil {
		return fail(ctx, err)
	}

	hash, err := s.getDeliveryHashAtHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, HashResponse{Hash: hash})
}

// GetUser handles GET /api/v1/users/:account.
func (s *Server) GetUser(ctx echo.Context) error {
	account, err := kernel.AccountFromString(ctx.Param("account"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: "invalid account"})
	}

	query, err := queries.NewGetUserQuery(account)
	if err != nil {
		return fail(ctx, err)
	}

	record, err := s.getUserHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UserResponse{
		Account: record.Account,
		Name:    record.Name,
		Phone:   record.Phone,
		Email:   record.Email,
	})
}

// GetCommissionRate handles GET /api/v1/commission-rate.
func (s *Server) GetCommissionRate(ctx echo.Context) error {
	rate, err := s.getCommissionRateHandler.Handle(ctx.Request().Context(), queries.NewGetCommissionRateQuery())
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CommissionRateResponse{Rate: rate})
}

// GetCommissionRateForDelivery handles GET /api/v1/deliveries/:hash/commission-rate.
func (s *Server) GetCommissionRateForDelivery(ctx echo.Context) error {
	hash, err := pathHash(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetCommissionRateForDeliveryQuery(hash)
	if err != nil {
		return fail(ctx, err)
	}

	rate, err := s.getSnapshotRateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CommissionRateResponse{Rate: rate})
}

// GetBalance handles GET /api/v1/wallet/balance for the authenticated caller.
func (s *Server) GetBalance(ctx echo.Context) error {
	caller, err := principal(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetBalanceQuery(caller)
	if err != nil {
		return fail(ctx, err)
	}

	balance, err := s.getBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BalanceResponse{Balance: balance})
}

func timePtr(t time.Time) *time.Time {
	return &t
}
