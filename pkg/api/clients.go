package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// Typed clients for each service, mirroring what a generated Connect client
// provides. All clients register the JSON codec; extra options are appended
// so callers can add interceptors or headers.

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
}

// AuthServiceClient calls the auth.v1.AuthService procedures.
type AuthServiceClient struct {
	register       *connect.Client[RegisterRequest, RegisterResponse]
	login          *connect.Client[LoginRequest, LoginResponse]
	getCurrentUser *connect.Client[GetCurrentUserRequest, GetCurrentUserResponse]
}

// NewAuthServiceClient constructs a client for the AuthService reachable at
// baseURL.
func NewAuthServiceClient(httpClient *http.Client, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	opts = clientOptions(opts)
	return &AuthServiceClient{
		register:       connect.NewClient[RegisterRequest, RegisterResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:          connect.NewClient[LoginRequest, LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getCurrentUser: connect.NewClient[GetCurrentUserRequest, GetCurrentUserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

func (c *AuthServiceClient) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *AuthServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// TripServiceClient calls the trip.v1.TripService procedures.
type TripServiceClient struct {
	createTrip   *connect.Client[CreateTripRequest, CreateTripResponse]
	getTrip      *connect.Client[GetTripRequest, GetTripResponse]
	listTrips    *connect.Client[ListTripsRequest, ListTripsResponse]
	deleteTrip   *connect.Client[DeleteTripRequest, DeleteTripResponse]
	addMember    *connect.Client[AddMemberRequest, AddMemberResponse]
	removeMember *connect.Client[RemoveMemberRequest, RemoveMemberResponse]
}

// NewTripServiceClient constructs a client for the TripService reachable at
// baseURL.
func NewTripServiceClient(httpClient *http.Client, baseURL string, opts ...connect.ClientOption) *TripServiceClient {
	opts = clientOptions(opts)
	return &TripServiceClient{
		createTrip:   connect.NewClient[CreateTripRequest, CreateTripResponse](httpClient, baseURL+TripServiceCreateTripProcedure, opts...),
		getTrip:      connect.NewClient[GetTripRequest, GetTripResponse](httpClient, baseURL+TripServiceGetTripProcedure, opts...),
		listTrips:    connect.NewClient[ListTripsRequest, ListTripsResponse](httpClient, baseURL+TripServiceListTripsProcedure, opts...),
		deleteTrip:   connect.NewClient[DeleteTripRequest, DeleteTripResponse](httpClient, baseURL+TripServiceDeleteTripProcedure, opts...),
		addMember:    connect.NewClient[AddMemberRequest, AddMemberResponse](httpClient, baseURL+TripServiceAddMemberProcedure, opts...),
		removeMember: connect.NewClient[RemoveMemberRequest, RemoveMemberResponse](httpClient, baseURL+TripServiceRemoveMemberProcedure, opts...),
	}
}

func (c *TripServiceClient) CreateTrip(ctx context.Context, req *connect.Request[CreateTripRequest]) (*connect.Response[CreateTripResponse], error) {
	return c.createTrip.CallUnary(ctx, req)
}

func (c *TripServiceClient) GetTrip(ctx context.Context, req *connect.Request[GetTripRequest]) (*connect.Response[GetTripResponse], error) {
	return c.getTrip.CallUnary(ctx, req)
}

func (c *TripServiceClient) ListTrips(ctx context.Context, req *connect.Request[ListTripsRequest]) (*connect.Response[ListTripsResponse], error) {
	return c.listTrips.CallUnary(ctx, req)
}

func (c *TripServiceClient) DeleteTrip(ctx context.Context, req *connect.Request[DeleteTripRequest]) (*connect.Response[DeleteTripResponse], error) {
	return c.deleteTrip.CallUnary(ctx, req)
}

func (c *TripServiceClient) AddMember(ctx context.Context, req *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *TripServiceClient) RemoveMember(ctx context.Context, req *connect.Request[RemoveMemberRequest]) (*connect.Response[RemoveMemberResponse], error) {
	return c.removeMember.CallUnary(ctx, req)
}

// ExpenseServiceClient calls the trip.v1.ExpenseService procedures.
type ExpenseServiceClient struct {
	createExpense *connect.Client[CreateExpenseRequest, CreateExpenseResponse]
	getExpense    *connect.Client[GetExpenseRequest, GetExpenseResponse]
	updateExpense *connect.Client[UpdateExpenseRequest, UpdateExpenseResponse]
	deleteExpense *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	listExpenses  *connect.Client[ListExpensesRequest, ListExpensesResponse]
	addComment    *connect.Client[AddCommentRequest, AddCommentResponse]
}

// NewExpenseServiceClient constructs a client for the ExpenseService reachable
// at baseURL.
func NewExpenseServiceClient(httpClient *http.Client, baseURL string, opts ...connect.ClientOption) *ExpenseServiceClient {
	opts = clientOptions(opts)
	return &ExpenseServiceClient{
		createExpense: connect.NewClient[CreateExpenseRequest, CreateExpenseResponse](httpClient, baseURL+ExpenseServiceCreateExpenseProcedure, opts...),
		getExpense:    connect.NewClient[GetExpenseRequest, GetExpenseResponse](httpClient, baseURL+ExpenseServiceGetExpenseProcedure, opts...),
		updateExpense: connect.NewClient[UpdateExpenseRequest, UpdateExpenseResponse](httpClient, baseURL+ExpenseServiceUpdateExpenseProcedure, opts...),
		deleteExpense: connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+ExpenseServiceDeleteExpenseProcedure, opts...),
		listExpenses:  connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+ExpenseServiceListExpensesProcedure, opts...),
		addComment:    connect.NewClient[AddCommentRequest, AddCommentResponse](httpClient, baseURL+ExpenseServiceAddCommentProcedure, opts...),
	}
}

func (c *ExpenseServiceClient) CreateExpense(ctx context.Context, req *connect.Request[CreateExpenseRequest]) (*connect.Response[CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) GetExpense(ctx context.Context, req *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error) {
	return c.getExpense.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) UpdateExpense(ctx context.Context, req *connect.Request[UpdateExpenseRequest]) (*connect.Response[UpdateExpenseResponse], error) {
	return c.updateExpense.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *ExpenseServiceClient) AddComment(ctx context.Context, req *connect.Request[AddCommentRequest]) (*connect.Response[AddCommentResponse], error) {
	return c.addComment.CallUnary(ctx, req)
}

// SettlementServiceClient calls the trip.v1.SettlementService procedures.
type SettlementServiceClient struct {
	getBalances          *connect.Client[GetBalancesRequest, GetBalancesResponse]
	calculateSettlements *connect.Client[CalculateSettlementsRequest, CalculateSettlementsResponse]
	recordSettlement     *connect.Client[RecordSettlementRequest, RecordSettlementResponse]
	listSettlements      *connect.Client[ListSettlementsRequest, ListSettlementsResponse]
	deleteSettlement     *connect.Client[DeleteSettlementRequest, DeleteSettlementResponse]
}

// NewSettlementServiceClient constructs a client for the SettlementService
// reachable at baseURL.
func NewSettlementServiceClient(httpClient *http.Client, baseURL string, opts ...connect.ClientOption) *SettlementServiceClient {
	opts = clientOptions(opts)
	return &SettlementServiceClient{
		getBalances:          connect.NewClient[GetBalancesRequest, GetBalancesResponse](httpClient, baseURL+SettlementServiceGetBalancesProcedure, opts...),
		calculateSettlements: connect.NewClient[CalculateSettlementsRequest, CalculateSettlementsResponse](httpClient, baseURL+SettlementServiceCalculateSettlementsProcedure, opts...),
		recordSettlement:     connect.NewClient[RecordSettlementRequest, RecordSettlementResponse](httpClient, baseURL+SettlementServiceRecordSettlementProcedure, opts...),
		listSettlements:      connect.NewClient[ListSettlementsRequest, ListSettlementsResponse](httpClient, baseURL+SettlementServiceListSettlementsProcedure, opts...),
		deleteSettlement:     connect.NewClient[DeleteSettlementRequest, DeleteSettlementResponse](httpClient, baseURL+SettlementServiceDeleteSettlementProcedure, opts...),
	}
}

func (c *SettlementServiceClient) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *SettlementServiceClient) CalculateSettlements(ctx context.Context, req *connect.Request[CalculateSettlementsRequest]) (*connect.Response[CalculateSettlementsResponse], error) {
	return c.calculateSettlements.CallUnary(ctx, req)
}

func (c *SettlementServiceClient) RecordSettlement(ctx context.Context, req *connect.Request[RecordSettlementRequest]) (*connect.Response[RecordSettlementResponse], error) {
	return c.recordSettlement.CallUnary(ctx, req)
}

func (c *SettlementServiceClient) ListSettlements(ctx context.Context, req *connect.Request[ListSettlementsRequest]) (*connect.Response[ListSettlementsResponse], error) {
	return c.listSettlements.CallUnary(ctx, req)
}

func (c *SettlementServiceClient) DeleteSettlement(ctx context.Context, req *connect.Request[DeleteSettlementRequest]) (*connect.Response[DeleteSettlementResponse], error) {
	return c.deleteSettlement.CallUnary(ctx, req)
}
