package services

// ServiceContainer holds all service interfaces needed by handlers.
type ServiceContainer struct {
	Ledger       LedgerSvcFacade
	User         UserSvcFacade
	TokenService TokenSvcFacade
}
