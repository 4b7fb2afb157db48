package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strconv"
	"strings"

	"cotizador/internal/domain/entities"
	"cotizador/internal/domain/pricing"
	"cotizador/internal/usecase/interfaces"
)

var (
	ErrClientNotFound   = errors.New("client not found")
	ErrClientHasQuotes  = errors.New("client has dependent quotes")
	ErrMaterialNotFound = errors.New("material not found")
	ErrLaborNotFound    = errors.New("labor not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrDuplicateCode    = errors.New("code already in use")
	ErrInvalidStatus    = errors.New("invalid quote status")
	ErrInvalidImport    = errors.New("invalid import data")
)

type ICatalogUseCase interface {
	ListClients(ctx context.Context) ([]entities.Client, error)
	GetClient(ctx context.Context, id int64) (entities.Client, error)
	SaveClient(ctx context.Context, client entities.Client) (entities.Client, error)
	DeleteClient(ctx context.Context, id int64) error

	ListMaterials(ctx context.Context) ([]entities.Material, error)
	GetMaterial(ctx context.Context, id int64) (entities.Material, error)
	SaveMaterial(ctx context.Context, material entities.Material) (entities.Material, error)
	DeleteMaterial(ctx context.Context, id int64) error

	ListLabor(ctx context.Context) ([]entities.Labor, error)
	GetLabor(ctx context.Context, id int64) (entities.Labor, error)
	SaveLabor(ctx context.Context, labor entities.Labor) (entities.Labor, error)
	DeleteLabor(ctx context.Context, id int64) error

	ListProducts(ctx context.Context) ([]entities.Product, error)
	GetProduct(ctx context.Context, id int64) (entities.Product, error)
	SaveProduct(ctx context.Context, product entities.Product) (entities.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	DuplicateProduct(ctx context.Context, id int64) (entities.Product, error)
	ProductMargins(ctx context.Context) (pricing.ProductMarginSummary, error)

	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	GetQuote(ctx context.Context, id int64) (entities.Quote, error)
	SaveQuote(ctx context.Context, quote entities.Quote) (entities.Quote, error)
	DeleteQuote(ctx context.Context, id int64) error
	DuplicateQuote(ctx context.Context, id int64) (entities.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id int64, status entities.QuoteStatus) (entities.Quote, error)

	GetSettings(ctx context.Context) (entities.Settings, error)
	UpdateSettings(ctx context.Context, patch SettingsPatch) (entities.Settings, error)
	Dashboard(ctx context.Context) (DashboardStats, error)

	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, raw []byte) (entities.AppData, error)
	Reset(ctx context.Context, seed bool) (entities.AppData, error)
}

// CatalogUseCase owns every catalog mutation. Committed changes are handed to
// the recorder, which queues them for the remote store; a nil recorder keeps
// the catalog purely local.
type CatalogUseCase struct {
	state    interfaces.IAppStateRepository
	recorder interfaces.IChangeRecorder
	ids      interfaces.IIDGenerator
	clock    interfaces.IClock
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(state interfaces.IAppStateRepository, recorder interfaces.IChangeRecorder, ids interfaces.IIDGenerator, clock interfaces.IClock) *CatalogUseCase {
	return &CatalogUseCase{state: state, recorder: recorder, ids: ids, clock: clock}
}

func (u *CatalogUseCase) commit(ctx context.Context, fn func(d *entities.AppData) error) error {
	_, err := u.state.Update(ctx, fn)
	return err
}

func (u *CatalogUseCase) recordUpsert(ctx context.Context, kind entities.EntityKind, r entities.Record) {
	if u.recorder == nil {
		return
	}
	if err := u.recorder.RecordUpsert(ctx, kind, r); err != nil {
		log.Printf("[catalog][usecase] failed to queue upsert kind=%s id=%d err=%v", kind, r.GetID(), err)
	}
}

func (u *CatalogUseCase) recordDelete(ctx context.Context, kind entities.EntityKind, id int64) {
	if u.recorder == nil {
		return
	}
	if err := u.recorder.RecordDelete(ctx, kind, id); err != nil {
		log.Printf("[catalog][usecase] failed to queue delete kind=%s id=%d err=%v", kind, id, err)
	}
}

// Clients

func (u *CatalogUseCase) ListClients(ctx context.Context) ([]entities.Client, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := d.Snapshot().Clients
	sort.SliceStable(out, func(i, j int) bool { return lessFold(out[i].Name, out[j].Name) })
	return out, nil
}

func (u *CatalogUseCase) GetClient(ctx context.Context, id int64) (entities.Client, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return entities.Client{}, err
	}
	c, ok := d.Clients[id]
	if !ok {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *CatalogUseCase) SaveClient(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.TaxID = strings.TrimSpace(c.TaxID)
	c.Email = strings.TrimSpace(c.Email)
	if msgs := structErrors(c); len(msgs) > 0 {
		return entities.Client{}, newValidationError(msgs...)
	}

	err := u.commit(ctx, func(d *entities.AppData) error {
		if c.ID == 0 {
			c.ID = u.ids.NextID()
		} else if _, ok := d.Clients[c.ID]; !ok {
			return ErrClientNotFound
		}
		c.LastModified = u.clock.Now()
		d.Clients[c.ID] = c
		return nil
	})
	if err != nil {
		return entities.Client{}, err
	}
	log.Printf("[catalog][usecase] client saved id=%d", c.ID)
	u.recordUpsert(ctx, entities.KindClients, c)
	return c, nil
}

func (u *CatalogUseCase) DeleteClient(ctx context.Context, id int64) error {
	err := u.commit(ctx, func(d *entities.AppData) error {
		if _, ok := d.Clients[id]; !ok {
			return ErrClientNotFound
		}
		for _, q := range d.Quotes {
			if q.ClientID == id {
				return ErrClientHasQuotes
			}
		}
		delete(d.Clients, id)
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("[catalog][usecase] client deleted id=%d", id)
	u.recordDelete(ctx, entities.KindClients, id)
	return nil
}

// Materials

func (u *CatalogUseCase) ListMaterials(ctx context.Context) ([]entities.Material, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := d.Snapshot().Materials
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (u *CatalogUseCase) GetMaterial(ctx context.Context, id int64) (entities.Material, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return entities.Material{}, err
	}
	m, ok := d.Materials[id]
	if !ok {
		return entities.Material{}, ErrMaterialNotFound
	}
	return m, nil
}

func (u *CatalogUseCase) SaveMaterial(ctx context.Context, m entities.Material) (entities.Material, error) {
	m.Code = strings.ToUpper(strings.TrimSpace(m.Code))
	m.Description = strings.TrimSpace(m.Description)
	m.Category = strings.TrimSpace(m.Category)
	if msgs := structErrors(m); len(msgs) > 0 {
		return entities.Material{}, newValidationError(msgs...)
	}

	err := u.commit(ctx, func(d *entities.AppData) error {
		if m.ID == 0 {
			m.ID = u.ids.NextID()
		} else {
			prev, ok := d.Materials[m.ID]
			if !ok {
				return ErrMaterialNotFound
			}
			if m.Code == "" {
				m.Code = prev.Code
			}
		}
		codes := make([]string, 0, len(d.Materials))
		for _, other := range d.Materials {
			if other.ID == m.ID {
				continue
			}
			if m.Code != "" && strings.EqualFold(other.Code, m.Code) {
				return ErrDuplicateCode
			}
			codes = append(codes, other.Code)
		}
		if m.Code == "" {
			m.Code = nextCode(entities.MaterialCodePrefix, codes)
		}
		m.LastModified = u.clock.Now()
		d.Materials[m.ID] = m
		return nil
	})
	if err != nil {
		return entities.Material{}, err
	}
	log.Printf("[catalog][usecase] material saved id=%d code=%s", m.ID, m.Code)
	u.recordUpsert(ctx, entities.KindMaterials, m)
	return m, nil
}

// DeleteMaterial removes a material. Products keep their price snapshots, so
// no dependency check is made.
func (u *CatalogUseCase) DeleteMaterial(ctx context.Context, id int64) error {
	err := u.commit(ctx, func(d *entities.AppData) error {
		if _, ok := d.Materials[id]; !ok {
			return ErrMaterialNotFound
		}
		delete(d.Materials, id)
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("[catalog][usecase] material deleted id=%d", id)
	u.recordDelete(ctx, entities.KindMaterials, id)
	return nil
}

// Labor

func (u *CatalogUseCase) ListLabor(ctx context.Context) ([]entities.Labor, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := d.Snapshot().Labor
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (u *CatalogUseCase) GetLabor(ctx context.Context, id int64) (entities.Labor, error) {
	d, err := u.state.Load(ctx)
	if err != nil {
		return entities.Labor{}, err
	}
	l, ok := d.Labor[id]
	if !ok {
		return entities.Labor{}, ErrLaborNotFound
	}
	return l, nil
}

func (u *CatalogUseCase) SaveLabor(ctx context.Context, l entities.Labor) (entities.Labor, error) {
	l.Code = strings.ToUpper(strings.TrimSpace(l.Code))
	l.Description = strings.TrimSpace(l.Description)
	if msgs := structErrors(l); len(msgs) > 0 {
		return entities.Labor{}, newValidationError(msgs...)
	}

	err := u.commit(ctx, func(d *entities.AppData) error {
		if l.ID == 0 {
			l.ID = u.ids.NextID()
		} else {
			prev, ok := d.Labor[l.ID]
			if !ok {
				return ErrLaborNotFound
			}
			if l.Code == "" && prev.Category == l.Category {
				l.Code = prev.Code
			}
		}
		codes := make([]string, 0, len(d.Labor))
		for _, other := range d.Labor {
			if other.ID == l.ID {
				continue
			}
			if l.Code != "" && strings.EqualFold(other.Code, l.Code) {
				return ErrDuplicateCode
			}
			codes = append(codes, other.Code)
		}
		if l.Code == "" {
			l.Code = nextCode(l.Category.CodePrefix(), codes)
		}
		l.LastModified = u.clock.Now()
		d.Labor[l.ID] = l
		return nil
	})
	if err != nil {
		return entities.Labor{}, err
	}
	log.Printf("[catalog][usecase] labor saved id=%d code=%s", l.ID, l.Code)
	u.recordUpsert(ctx, entities.KindLabor, l)
	return l, nil
}

func (u *CatalogUseCase) DeleteLabor(ctx context.Context, id int64) error {
	err := u.commit(ctx, func(d *entities.AppData) error {
		if _, ok := d.Labor[id]; !ok {
			return ErrLaborNotFound
		}
		delete(d.Labor, id)
		return nil
	})
	if err != nil {
		return err
	}
	log.Printf("[catalog][usecase] labor deleted id=%d", id)
	u.recordDelete(ctx, entities.KindLabor, id)
	return nil
}

// nextCode returns prefix followed by the highest numeric suffix in use plus one.
func nextCode(prefix string, codes []string) string {
	highest := 0
	for _, c := range codes {
		if !strings.HasPrefix(strings.ToUpper(c), prefix) {
			continue
		}
		n, err := strconv.Atoi(c[len(prefix):])
		if err == nil && n > highest {
			highest = n
		}
	}
	return entities.SequenceCode(prefix, highest+1)
}

func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
