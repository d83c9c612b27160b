// Package wallet computes totals and clamped adjustments over denomination counts.
// Wallets are treated as immutable snapshots: every change returns a new map.
package wallet

import (
	"github.com/KirkDiggler/cuentasclaras/internal/models"
)

// FaceValuer resolves a denomination key to its face value
type FaceValuer interface {
	Value(key models.DenominationKey) int
}

// TotalValue sums count × face value over every denomination in w
func TotalValue(values FaceValuer, w models.Wallet) int {
	total := 0
	for key, count := range w {
		total += count * values.Value(key)
	}
	return total
}

// Adjust returns a copy of w with key changed by delta, never below zero
func Adjust(w models.Wallet, key models.DenominationKey, delta int) models.Wallet {
	next := Clone(w)
	updated := next[key] + delta
	if updated < 0 {
		updated = 0
	}
	next[key] = updated
	return next
}

// Clone returns a copy of w; a nil wallet clones to an empty one
func Clone(w models.Wallet) models.Wallet {
	next := make(models.Wallet, len(w))
	for k, n := range w {
		next[k] = n
	}
	return next
}

// EffectiveTotal is the player's money: the override once set, otherwise the wallet sum
func EffectiveTotal(values FaceValuer, p *models.Player) int {
	if p.WalletTotalOverride != nil {
		return *p.WalletTotalOverride
	}
	return TotalValue(values, p.Wallet)
}

// Line is one non-empty row of a wallet summary
type Line struct {
	Denomination models.Denomination
	Count        int
	Subtotal     int
}

// Summary lists the held denominations largest first, skipping empty ones
func Summary(ordered []models.Denomination, w models.Wallet) []Line {
	lines := make([]Line, 0, len(ordered))
	for _, d := range ordered {
		count := w[d.Key]
		if count <= 0 {
			continue
		}
		lines = append(lines, Line{
			Denomination: d,
			Count:        count,
			Subtotal:     count * d.Value,
		})
	}
	return lines
}
