package services

import (
	portsrepo "github.com/pledgerhq/pledger_backend/internal/core/ports/repositories"
	portssvc "github.com/pledgerhq/pledger_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service over the repository provider.
//
// The transaction and obligation services reference each other: obligations
// record payments through the transaction ledger, and the ledger notifies the
// obligation tracker after each create. The cycle is broken by constructing
// the transaction service first and wiring the classifier hook afterwards.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, useValidatedInsert bool) *portssvc.ServiceContainer {
	settingsSvc := NewSettingsService(repos.SettingsRepo)
	categorySvc := NewCategoryService(repos.CategoryRepo)
	accountSvc := NewAccountService(repos.AccountRepo)
	txnSvc := NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo, useValidatedInsert)
	obligationSvc := NewObligationService(repos.ObligationRepo, txnSvc, settingsSvc)

	if ts, ok := txnSvc.(*transactionService); ok {
		ts.SetClassifier(obligationSvc)
	}

	return &portssvc.ServiceContainer{
		Account:     accountSvc,
		Transaction: txnSvc,
		Obligation:  obligationSvc,
		Category:    categorySvc,
		Settings:    settingsSvc,
	}
}
