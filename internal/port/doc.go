// Package port declares the storage collaborators the services depend on.
//
//go:generate mockgen -package mockport -destination=mock/port.go . UserRepository,ItemRepository,CartRepository,OrderRepository
package port
