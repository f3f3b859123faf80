// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `make mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/stock_repository.go -destination=stock_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/stock_service.go -destination=stock_service_mock.go -package=mocks
