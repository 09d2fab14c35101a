package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// The hotel-stay schema below is migrated for schema parity but carries no
// business logic: no handler or command reads or writes these tables.

// Habitacion is a hotel room.
type Habitacion struct {
	ID uint64 `gorm:"primaryKey"`
	// Numero is the room number.
	Numero string `gorm:"size:50;unique;not null"`
	// Tipo is one of sencilla, doble, suite.
	Tipo string `gorm:"type:varchar(20);not null"`
	// PrecioBase is the nightly base price.
	PrecioBase decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	// Estado is one of disponible, ocupada, mantenimiento.
	Estado string `gorm:"type:varchar(20);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Habitacion model.
func (Habitacion) TableName() string {
	return "habitaciones"
}

// Estancia is a guest stay in a room.
type Estancia struct {
	ID           uint64 `gorm:"primaryKey"`
	HabitacionID uint64 `gorm:"not null;constraint:OnDelete:RESTRICT"`
	Habitacion   *Habitacion
	// HuespedID references the guest registry kept outside this service.
	HuespedID        uint64 `gorm:"not null"`
	FechaHoraEntrada time.Time
	FechaHoraSalida  *time.Time
	// EstadoEstancia is one of activa, finalizada, cancelada.
	EstadoEstancia string          `gorm:"type:varchar(20);not null"`
	TotalPagado    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Estancia model.
func (Estancia) TableName() string {
	return "estancias"
}

// Consumo is a product consumption booked against a stay.
type Consumo struct {
	ID         uint64 `gorm:"primaryKey"`
	EstanciaID uint64 `gorm:"not null;constraint:OnDelete:RESTRICT"`
	Estancia   *Estancia
	// ProductoID references the product catalog kept outside this service.
	ProductoID uint64 `gorm:"not null"`
	Cantidad   uint   `gorm:"not null"`
	// PrecioMomento is the unit price at consumption time.
	PrecioMomento decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Consumo model.
func (Consumo) TableName() string {
	return "consumos"
}
