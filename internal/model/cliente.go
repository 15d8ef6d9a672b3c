package model

import (
	"time"

	"github.com/google/uuid"
)

// Role values for Cliente.Rol.
const (
	RolUsuario  = "usuario"
	RolSucursal = "sucursal"
	RolAdmin    = "admin"
)

// Cliente is the identity record for every account in the system: customers,
// branch accounts and admins. The branch-specific profile lives in Sucursal,
// joined by reference — a branch is NOT a polymorphic customer row.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Direccion string    `gorm:"not null"`
	Telefono  string    `gorm:"uniqueIndex;not null"`
	// Email is optional; when present, order confirmations are sent to it.
	Email        *string `gorm:"uniqueIndex"`
	PasswordHash string  `gorm:"not null"`
	Rol          string  `gorm:"type:varchar(20);not null;default:'usuario'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Cliente) TableName() string { return "clientes" }

// Sucursal is the branch profile attached to a Cliente with rol "sucursal".
// Created by promoting a cliente; never deleted.
type Sucursal struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Nombre    string    `gorm:"not null"`
	Direccion string    `gorm:"not null"`
	CreatedAt time.Time

	Cliente *Cliente `gorm:"foreignKey:ClienteID"`
}

func (Sucursal) TableName() string { return "sucursales" }
