package review

import (
	"github.com/rs/zerolog"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/platform"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/stats"
)

// Engines bundles one configured engine per reviewable domain plus the
// domain-keyed registry the HTTP layer routes through.
type Engines struct {
	Bank  *Engine[model.BankVerification]
	Buy   *Engine[model.BuyRequest]
	GAE   *Engine[model.GoldAccumulation]
	GCA   *Engine[model.GoldConversion]
	USDAU *Engine[model.USDAUWithdrawal]
	Rank  *Engine[model.RankPromotion]

	ByDomain map[model.Domain]Reviewer
}

// BuildEngines wires every domain's gateway, status map and window
// into one engine each. The per-domain differences live entirely in
// the Config tables below.
func BuildEngines(pc *platform.Client, audit AuditRecorder, notify Notifier, log zerolog.Logger) *Engines {
	e := &Engines{
		Bank: NewEngine(Config[model.BankVerification]{
			Domain:        model.DomainBankVerification,
			SuccessStatus: model.StatusApproved,
			StatusMap:     stats.BankStatusMap,
			Window:        stats.WindowMonthly6,
		}, platform.NewResource[model.BankVerification](pc, model.DomainBankVerification), audit, notify, log),

		Buy: NewEngine(Config[model.BuyRequest]{
			Domain:        model.DomainBuyRequest,
			SuccessStatus: model.StatusCompleted,
			StatusMap:     stats.BuyStatusMap,
			Window:        stats.WindowMonthly6,
		}, platform.NewResource[model.BuyRequest](pc, model.DomainBuyRequest), audit, notify, log),

		GAE: NewEngine(Config[model.GoldAccumulation]{
			Domain:        model.DomainGoldAccumulation,
			SuccessStatus: model.StatusOpen,
			StatusMap:     stats.GoldAccumulationStatusMap,
			Window:        stats.WindowMonthly6,
		}, platform.NewResource[model.GoldAccumulation](pc, model.DomainGoldAccumulation), audit, notify, log),

		GCA: NewEngine(Config[model.GoldConversion]{
			Domain:        model.DomainGoldConversion,
			SuccessStatus: model.StatusApproved,
			ReleaseFrom:   []string{model.StatusApproved},
			StatusMap:     stats.GoldConversionStatusMap,
			Window:        stats.WindowMonthly6,
		}, platform.NewResource[model.GoldConversion](pc, model.DomainGoldConversion), audit, notify, log),

		USDAU: NewEngine(Config[model.USDAUWithdrawal]{
			Domain:        model.DomainUSDAUWithdrawal,
			SuccessStatus: model.StatusCompleted,
			StatusMap:     stats.USDAUStatusMap,
			Window:        stats.WindowDaily7,
		}, platform.NewResource[model.USDAUWithdrawal](pc, model.DomainUSDAUWithdrawal), audit, notify, log),

		Rank: NewEngine(Config[model.RankPromotion]{
			Domain:        model.DomainRankPromotion,
			SuccessStatus: model.StatusApproved,
			StatusMap:     stats.RankPromotionStatusMap,
			Window:        stats.WindowMonthly6,
		}, platform.NewResource[model.RankPromotion](pc, model.DomainRankPromotion), audit, notify, log),
	}

	e.ByDomain = map[model.Domain]Reviewer{
		model.DomainBankVerification: e.Bank.Facade(),
		model.DomainBuyRequest:       e.Buy.Facade(),
		model.DomainGoldAccumulation: e.GAE.Facade(),
		model.DomainGoldConversion:   e.GCA.Facade(),
		model.DomainUSDAUWithdrawal:  e.USDAU.Facade(),
		model.DomainRankPromotion:    e.Rank.Facade(),
	}
	return e
}
