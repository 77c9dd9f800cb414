// Package models defines the persisted domain models for Trip Ledger.
//
// Users and groups are owned by the membership layer; expenses and their
// shares are write-once facts recorded against a group. Everything derived
// from them (balances, transfers, category totals) lives in the calculator
// package and is recomputed fresh on every request, never stored.
//
// Relationships use ID strings rather than pointers to avoid circular
// references between models.
package models
