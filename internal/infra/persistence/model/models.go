// Package model contains the GORM table definitions.
package model

// All lists every table model in creation order (devices before the tables referencing them).
func All() []any {
	return []any{
		&DeviceModel{},
		&NonceModel{},
		&PaymentEventModel{},
	}
}
