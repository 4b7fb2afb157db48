package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"cotizador/internal/domain/entities"
	"cotizador/internal/domain/pricing"
)

const quoteDateLayout = "2006-01-02"

func (u *CatalogUseCase) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := d.Snapshot().Quotes
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (u *CatalogUseCase) GetQuote(ctx context.Context, id int64) (entities.Quote, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	q, ok := d.Quotes[id]
	if !ok {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// SaveQuote validates a quote, recomputes its totals with the strategy named
// by its pricing mode and stores it. New quotes receive the next COT number,
// today's date and the pending status; updates keep number and date.
func (u *CatalogUseCase) SaveQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.Project = strings.TrimSpace(q.Project)
	if q.PricingMode == "" {
		q.PricingMode = entities.PricingItemized
	}
	if msgs := quoteErrors(q); len(msgs) > 0 {
		return entities.Quote{}, newValidationError(msgs...)
	}

	err := u.commit(ctx, func(d *entities.AppData) error {
		if _, ok := d.Clients[q.ClientID]; !ok {
			return ErrClientNotFound
		}
		now := u.clock.Now()
		if q.ID == 0 {
			q.ID = u.ids.NextID()
			q.Number = u.nextQuoteNumber(d)
			q.Date = now.Format(quoteDateLayout)
			q.Status = entities.QuoteStatusPending
		} else {
			prev, ok := d.Quotes[q.ID]
			if !ok {
				return ErrQuoteNotFound
			}
			q.Number = prev.Number
			q.Date = prev.Date
			if q.Status == "" {
				q.Status = prev.Status
			}
		}
		if !q.Status.Valid() {
			return ErrInvalidStatus
		}
		if strings.TrimSpace(q.Observations) == "" {
			q.Observations = d.Config.Observations
		}
		if err := priceQuote(d, &q); err != nil {
			return err
		}
		q.LastModified = now
		d.Quotes[q.ID] = q
		return nil
	})
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[catalog][usecase] quote saved id=%d number=%s mode=%s grand_total=%.2f", q.ID, q.Number, q.PricingMode, q.Totals.GrandTotal)
	u.recordUpsert(ctx, entities.KindQuotes, q)
	return q, nil
}

func (u *CatalogUseCase) DeleteQuote(ctx context.Context, id int64) error {
	err := u.commit(ctx, func(d *entities.AppData) error {
		if _, ok := d.Quotes[id]; !ok {
			return ErrQuoteNotFound
		}
		delete(d.Quotes, id)
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("[catalog][usecase] quote deleted id=%d", id)
	u.recordDelete(ctx, entities.KindQuotes, id)
	return nil
}

// DuplicateQuote copies a quote as a new pending quote dated today.
func (u *CatalogUseCase) DuplicateQuote(ctx context.Context, id int64) (entities.Quote, error) {
	var dup entities.Quote
	err := u.commit(ctx, func(d *entities.AppData) error {
		src, ok := d.Quotes[id]
		if !ok {
			return ErrQuoteNotFound
		}
		now := u.clock.Now()
		dup = src
		dup.Items = append([]entities.QuoteItem(nil), src.Items...)
		if src.SupplyInstall != nil {
			in := cloneSupplyInstall(*src.SupplyInstall)
			dup.SupplyInstall = &in
		}
		if src.Totals.SupplyInstall != nil {
			si := *src.Totals.SupplyInstall
			dup.Totals.SupplyInstall = &si
		}
		dup.ID = u.ids.NextID()
		dup.Number = u.nextQuoteNumber(d)
		dup.Date = now.Format(quoteDateLayout)
		dup.Status = entities.QuoteStatusPending
		dup.LastModified = now
		d.Quotes[dup.ID] = dup
		return nil
	})
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[catalog][usecase] quote duplicated source=%d id=%d number=%s", id, dup.ID, dup.Number)
	u.recordUpsert(ctx, entities.KindQuotes, dup)
	return dup, nil
}

func (u *CatalogUseCase) UpdateQuoteStatus(ctx context.Context, id int64, status entities.QuoteStatus) (entities.Quote, error) {
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidStatus
	}
	var q entities.Quote
	err := u.commit(ctx, func(d *entities.AppData) error {
		cur, ok := d.Quotes[id]
		if !ok {
			return ErrQuoteNotFound
		}
		cur.Status = status
		cur.LastModified = u.clock.Now()
		d.Quotes[id] = cur
		q = cur
		return nil
	})
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[catalog][usecase] quote status updated id=%d status=%s", id, status)
	u.recordUpsert(ctx, entities.KindQuotes, q)
	return q, nil
}

// nextQuoteNumber bumps the global counter. The counter never resets per
// year, so the sequence inside one year may start above 1.
func (u *CatalogUseCase) nextQuoteNumber(d *entities.AppData) string {
	d.Metadata.LastQuoteNumber++
	return fmt.Sprintf("COT-%d-%03d", u.clock.Now().Year(), d.Metadata.LastQuoteNumber)
}

func quoteErrors(q entities.Quote) []string {
	var msgs []string
	if q.ClientID == 0 {
		msgs = append(msgs, "clientId is required")
	}
	if q.Project == "" {
		msgs = append(msgs, "project is required")
	}
	if !inRange(q.GeneralDiscount, 0, 100) {
		msgs = append(msgs, "generalDiscount must be between 0 and 100")
	}
	if q.Status != "" && !q.Status.Valid() {
		msgs = append(msgs, "status must be one of [pending approved rejected]")
	}

	switch q.PricingMode {
	case entities.PricingItemized:
		if len(q.Items) == 0 {
			msgs = append(msgs, "at least one item is required")
		}
		for i, it := range q.Items {
			if it.ProductID == 0 {
				msgs = append(msgs, fmt.Sprintf("item %d: productId is required", i+1))
			}
			if it.Qty <= 0 {
				msgs = append(msgs, fmt.Sprintf("item %d: quantity must be greater than zero", i+1))
			}
			if it.UnitPrice < 0 {
				msgs = append(msgs, fmt.Sprintf("item %d: price cannot be negative", i+1))
			}
			if !inRange(it.Discount, 0, 100) {
				msgs = append(msgs, fmt.Sprintf("item %d: discount must be between 0 and 100", i+1))
			}
		}
	case entities.PricingSupplyInstall:
		if q.SupplyInstall == nil {
			msgs = append(msgs, "supplyInstall is required for the supply_install mode")
			break
		}
		if res := pricing.ValidateSupplyInstall(*q.SupplyInstall); !res.Valid {
			msgs = append(msgs, res.Errors...)
		}
	default:
		msgs = append(msgs, fmt.Sprintf("pricingMode must be one of [%s %s]", entities.PricingItemized, entities.PricingSupplyInstall))
	}
	return msgs
}

// priceQuote fills item snapshots from the catalog and stores fresh totals.
func priceQuote(d *entities.AppData, q *entities.Quote) error {
	strategy, err := pricing.StrategyFor(q.Mode())
	if err != nil {
		return err
	}
	switch q.Mode() {
	case entities.PricingItemized:
		items := append([]entities.QuoteItem(nil), q.Items...)
		for i, it := range items {
			if it.Name != "" {
				continue
			}
			p, ok := d.Products[it.ProductID]
			if !ok {
				return fmt.Errorf("item %d: %w", i+1, ErrProductNotFound)
			}
			items[i].Name = p.Name
			items[i].Type = p.Type
			if it.UnitPrice == 0 {
				items[i].UnitPrice = p.UnitPrice
			}
		}
		q.Items = pricing.WithSubtotals(items)
		q.SupplyInstall = nil
	case entities.PricingSupplyInstall:
		in := cloneSupplyInstall(*q.SupplyInstall)
		in.TaxPercent = d.Config.Tax
		q.SupplyInstall = &in
		q.Items = nil
	}
	totals, err := strategy.Totals(*q, d.Config)
	if err != nil {
		return err
	}
	q.Totals = totals
	return nil
}

func cloneSupplyInstall(in entities.SupplyInstallInput) entities.SupplyInstallInput {
	in.Materials = append([]entities.CostLine(nil), in.Materials...)
	in.LaborFab = append([]entities.CostLine(nil), in.LaborFab...)
	in.LaborInst = append([]entities.CostLine(nil), in.LaborInst...)
	return in
}
