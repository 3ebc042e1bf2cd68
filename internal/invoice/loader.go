package invoice

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cellmart/pos-client/internal/domain/entity"
)

// API is the slice of the gateway client the invoice view depends on.
type API interface {
	SaleInvoice(ctx context.Context, id int64) (*entity.Sale, error)
	CompanyProfile(ctx context.Context) (*entity.CompanyProfile, error)
	FetchMedia(ctx context.Context, mediaPath string) ([]byte, error)
}

// State is the terminal condition of a load.
type State int

const (
	StateLoading State = iota
	StateNotFound
	StateReady
)

func (s State) String() string {
	switch s {
	case StateNotFound:
		return "not_found"
	case StateReady:
		return "ready"
	default:
		return "loading"
	}
}

// Readiness tracks the three independent settle flags. The document is
// print-ready only when all three are set.
type Readiness struct {
	SaleLoaded     bool
	ProfileSettled bool
	LogoSettled    bool
}

// Ready reports whether every flag has settled.
func (r Readiness) Ready() bool {
	return r.SaleLoaded && r.ProfileSettled && r.LogoSettled
}

// Result is the outcome of loading an invoice view.
type Result struct {
	State     State
	Doc       *Document
	Readiness Readiness
	SaleErr   error
}

// Loader fetches everything an invoice view needs.
type Loader struct {
	api API
	log zerolog.Logger
}

func NewLoader(api API, log zerolog.Logger) *Loader {
	return &Loader{api: api, log: log}
}

// Load fetches the sale and company profile concurrently, then the logo.
// The profile and logo fetches are allowed to fail: both count as settled
// either way and the logo falls back to a placeholder. Only the sale is
// load-bearing: a failed or empty sale fetch is the terminal NotFound state.
func (l *Loader) Load(ctx context.Context, saleID int64) *Result {
	var (
		sale       *entity.Sale
		saleErr    error
		profile    *entity.CompanyProfile
		profileErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		sale, saleErr = l.api.SaleInvoice(ctx, saleID)
	}()
	go func() {
		defer wg.Done()
		profile, profileErr = l.api.CompanyProfile(ctx)
	}()
	wg.Wait()

	readiness := Readiness{ProfileSettled: true}

	if saleErr != nil || sale == nil || sale.ID == 0 {
		l.log.Warn().Int64("sale_id", saleID).Err(saleErr).Msg("sale not found")
		return &Result{State: StateNotFound, Readiness: readiness, SaleErr: saleErr}
	}
	readiness.SaleLoaded = true

	if profileErr != nil {
		l.log.Debug().Err(profileErr).Msg("company profile unavailable, using sale header")
		profile = nil
	}

	var logo []byte
	if profile != nil && profile.Logo != "" {
		data, err := l.api.FetchMedia(ctx, profile.Logo)
		if err != nil {
			l.log.Debug().Err(err).Msg("logo fetch failed, using placeholder")
		} else {
			logo = data
		}
	}
	readiness.LogoSettled = true

	return &Result{
		State:     StateReady,
		Doc:       BuildDocument(sale, profile, logo),
		Readiness: readiness,
	}
}
