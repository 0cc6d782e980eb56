package api

// Fully-qualified procedure paths for every RPC. Handlers are mounted at
// these paths and clients call them; the prefix constants let the server
// route entire services.
const (
	// AuthServiceName is the fully-qualified name of the AuthService.
	AuthServiceName = "auth.v1.AuthService"
	// TripServiceName is the fully-qualified name of the TripService.
	TripServiceName = "trip.v1.TripService"
	// ExpenseServiceName is the fully-qualified name of the ExpenseService.
	ExpenseServiceName = "trip.v1.ExpenseService"
	// SettlementServiceName is the fully-qualified name of the SettlementService.
	SettlementServiceName = "trip.v1.SettlementService"
)

const (
	AuthServiceRegisterProcedure       = "/" + AuthServiceName + "/Register"
	AuthServiceLoginProcedure          = "/" + AuthServiceName + "/Login"
	AuthServiceGetCurrentUserProcedure = "/" + AuthServiceName + "/GetCurrentUser"

	TripServiceCreateTripProcedure   = "/" + TripServiceName + "/CreateTrip"
	TripServiceGetTripProcedure      = "/" + TripServiceName + "/GetTrip"
	TripServiceListTripsProcedure    = "/" + TripServiceName + "/ListTrips"
	TripServiceDeleteTripProcedure   = "/" + TripServiceName + "/DeleteTrip"
	TripServiceAddMemberProcedure    = "/" + TripServiceName + "/AddMember"
	TripServiceRemoveMemberProcedure = "/" + TripServiceName + "/RemoveMember"

	ExpenseServiceCreateExpenseProcedure = "/" + ExpenseServiceName + "/CreateExpense"
	ExpenseServiceGetExpenseProcedure    = "/" + ExpenseServiceName + "/GetExpense"
	ExpenseServiceUpdateExpenseProcedure = "/" + ExpenseServiceName + "/UpdateExpense"
	ExpenseServiceDeleteExpenseProcedure = "/" + ExpenseServiceName + "/DeleteExpense"
	ExpenseServiceListExpensesProcedure  = "/" + ExpenseServiceName + "/ListExpenses"
	ExpenseServiceAddCommentProcedure    = "/" + ExpenseServiceName + "/AddComment"

	SettlementServiceGetBalancesProcedure          = "/" + SettlementServiceName + "/GetBalances"
	SettlementServiceCalculateSettlementsProcedure = "/" + SettlementServiceName + "/CalculateSettlements"
	SettlementServiceRecordSettlementProcedure     = "/" + SettlementServiceName + "/RecordSettlement"
	SettlementServiceListSettlementsProcedure      = "/" + SettlementServiceName + "/ListSettlements"
	SettlementServiceDeleteSettlementProcedure     = "/" + SettlementServiceName + "/DeleteSettlement"
)
