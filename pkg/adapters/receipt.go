package adapters

import (
	"github.com/folio-tools/folio-api/pkg/models/api"
	"github.com/folio-tools/folio-api/pkg/models/domain"
	"github.com/folio-tools/folio-api/pkg/services/receipt"
)

func MapDomainReceiptToAPI(r domain.Receipt) api.Receipt {
	grandTotal := r.GrandTotal()
	rec := receipt.Recommend(grandTotal)

	out := api.Receipt{
		Period:         string(r.Period),
		StartDate:      receipt.FormatDate(r.StartDate),
		EndDate:        receipt.FormatDate(r.EndDate),
		GeneratedAt:    r.GeneratedAt,
		Categories:     make([]api.UsageCategory, 0, len(r.Categories)),
		GrandTotal:     grandTotal,
		GrandTotalTime: receipt.FormatTime(grandTotal),
		Recommendation: api.Recommendation{Headline: rec.Headline, Message: rec.Message},
	}

	for _, cat := range r.Categories {
		out.Categories = append(out.Categories, mapUsageCategory(cat))
	}
	return out
}

func mapUsageCategory(cat domain.UsageCategory) api.UsageCategory {
	mapped := api.UsageCategory{
		Name:     cat.Name,
		Apps:     make([]api.AppUsage, 0, len(cat.Apps)),
		Subtotal: receipt.FormatTime(cat.Subtotal()),
	}
	for _, app := range cat.Apps {
		mapped.Apps = append(mapped.Apps, api.AppUsage{
			Name:     app.Name,
			Category: app.Category,
			Minutes:  app.Minutes,
			Time:     receipt.FormatTime(app.Minutes),
			Icon:     app.IconRef,
		})
	}
	return mapped
}
