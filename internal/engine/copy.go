package engine

import (
	"github.com/KirkDiggler/cuentasclaras/internal/models"
	"github.com/KirkDiggler/cuentasclaras/internal/wallet"
)

func copySession(s *models.Session) *models.Session {
	out := *s
	out.Mission = copyMission(s.Mission)
	out.LastRoll = copyRoll(s.LastRoll)
	out.LastEvent = copyEvent(s.LastEvent)
	if s.Builder != nil {
		out.Builder = wallet.Clone(s.Builder)
	}

	out.Players = make([]*models.Player, 0, len(s.Players))
	for _, p := range s.Players {
		cp := *p
		cp.Wallet = wallet.Clone(p.Wallet)
		if p.WalletTotalOverride != nil {
			v := *p.WalletTotalOverride
			cp.WalletTotalOverride = &v
		}
		out.Players = append(out.Players, &cp)
	}
	return &out
}

func copyMission(m *models.Mission) *models.Mission {
	if m == nil {
		return nil
	}
	out := *m
	if m.Deduction != nil {
		d := *m.Deduction
		out.Deduction = &d
	}
	return &out
}

func copyRoll(r *models.Roll) *models.Roll {
	if r == nil {
		return nil
	}
	out := *r
	return &out
}

func copyEvent(e *models.Event) *models.Event {
	if e == nil {
		return nil
	}
	out := *e
	return &out
}
