package invoice

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Surface is anything a finished document can be printed to.
type Surface interface {
	Name() string
	Print(ctx context.Context, doc *Document) error
}

// TitleGuard hides the window title for the duration of a print so it does
// not leak into the printed page header. SuppressTitle returns the restore
// hook; callers defer it.
type TitleGuard interface {
	SuppressTitle() (restore func())
}

// Controller drives the invoice print lifecycle: a one-shot auto-print after
// the document settles, plus unlimited manual reprints.
type Controller struct {
	surface     Surface
	guard       TitleGuard
	settleDelay time.Duration
	onClose     func()
	log         zerolog.Logger

	mu        sync.Mutex
	autoFired bool
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

func WithTitleGuard(g TitleGuard) ControllerOption {
	return func(c *Controller) { c.guard = g }
}

// WithSettleDelay sets the pause between the document becoming ready and the
// automatic print firing, giving the render surface time to settle.
func WithSettleDelay(d time.Duration) ControllerOption {
	return func(c *Controller) { c.settleDelay = d }
}

// WithCloseHook runs after a successful auto-print, typically to dismiss the
// invoice view.
func WithCloseHook(fn func()) ControllerOption {
	return func(c *Controller) { c.onClose = fn }
}

const defaultSettleDelay = 300 * time.Millisecond

func NewController(surface Surface, log zerolog.Logger, opts ...ControllerOption) *Controller {
	c := &Controller{
		surface:     surface,
		settleDelay: defaultSettleDelay,
		log:         log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AutoPrint fires the one-shot automatic print. The latch is taken before the
// settle delay, so concurrent or repeated calls print at most once even while
// the first call is still waiting. Cancelling the context during the delay
// skips the print but leaves the latch set.
func (c *Controller) AutoPrint(ctx context.Context, doc *Document) error {
	c.mu.Lock()
	if c.autoFired {
		c.mu.Unlock()
		return nil
	}
	c.autoFired = true
	c.mu.Unlock()

	if c.settleDelay > 0 {
		timer := time.NewTimer(c.settleDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			c.log.Debug().Str("invoice", doc.InvoiceNo).Msg("auto-print cancelled during settle")
			return ctx.Err()
		case <-timer.C:
		}
	}

	if err := c.print(ctx, doc); err != nil {
		return err
	}
	if c.onClose != nil {
		c.onClose()
	}
	return nil
}

// Print is the manual reprint path. It never latches and never closes the
// view, so the operator can reprint as many times as needed.
func (c *Controller) Print(ctx context.Context, doc *Document) error {
	return c.print(ctx, doc)
}

func (c *Controller) print(ctx context.Context, doc *Document) error {
	if c.guard != nil {
		restore := c.guard.SuppressTitle()
		defer restore()
	}

	c.log.Info().
		Str("invoice", doc.InvoiceNo).
		Str("surface", c.surface.Name()).
		Msg("printing invoice")

	return c.surface.Print(ctx, doc)
}
