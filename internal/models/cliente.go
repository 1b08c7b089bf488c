package models

import (
	"database/sql"
	"time"
)

// Cliente is the subscriber record owned by the CRUD layer. The core only
// reads the fields needed for placeholder substitution and campaign filtering.
type Cliente struct {
	ID            int64          `db:"id" json:"id"`
	UserID        string         `db:"user_id" json:"user_id"`
	Nome          string         `db:"nome" json:"nome"`
	Telefone      string         `db:"telefone" json:"telefone"`
	Status        string         `db:"status" json:"status"`
	Servidor      string         `db:"servidor" json:"servidor"`
	UF            string         `db:"uf" json:"uf"`
	DiaVencimento int            `db:"dia_vencimento" json:"dia_vencimento"`
	ValorPlano    float64        `db:"valor_plano" json:"valor_plano"`
	Observacao    sql.NullString `db:"observacao" json:"observacao,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}

// ClienteFilter holds the optional equality predicates used to resolve a
// campaign's recipient set. Empty fields mean no constraint.
type ClienteFilter struct {
	Status   string `json:"status,omitempty"`
	Servidor string `json:"servidor,omitempty"`
	UF       string `json:"uf,omitempty"`
}
