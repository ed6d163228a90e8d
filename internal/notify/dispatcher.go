package notify

import (
	"context"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"
	"github.com/sbilibin2017/gw-formation-admin/internal/logger"
	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

const welcomeSubject = "Bienvenue dans notre programme de formation en développement web"

// Options configures a Dispatcher.
type Options struct {
	QueueSize   int           // buffered jobs before new ones are dropped
	Workers     int           // concurrent deliveries
	SendTimeout time.Duration // per delivery
	AdminEmail  string        // recipient of submission alerts, alerts are skipped when empty
}

// Dispatcher sends emails in the background. Enqueueing never blocks; delivery
// failures and overflow are logged and never reported to the caller.
type Dispatcher struct {
	mailer     Mailer
	jobs       chan Message
	timeout    time.Duration
	adminEmail string
	now        func() time.Time

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher starts the worker goroutines. Call Close to stop them.
func NewDispatcher(mailer Mailer, opts Options) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 100
	}
	if opts.Workers <= 0 {
		opts.Workers = 2
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 15 * time.Second
	}

	d := &Dispatcher{
		mailer:     mailer,
		jobs:       make(chan Message, opts.QueueSize),
		timeout:    opts.SendTimeout,
		adminEmail: opts.AdminEmail,
		now:        time.Now,
	}

	d.wg.Add(opts.Workers)
	for i := 0; i < opts.Workers; i++ {
		go d.work()
	}
	return d
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for msg := range d.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		err := d.mailer.Send(ctx, msg)
		cancel()

		if err != nil {
			logger.Log.Errorw("failed to send email", "to", msg.To, "subject", msg.Subject, "error", err)
			continue
		}
		logger.Log.Infow("email sent", "to", msg.To, "subject", msg.Subject)
	}
}

// Send queues an HTML email.
func (d *Dispatcher) Send(to, subject, html string) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		logger.Log.Warnw("email dropped, dispatcher closed", "to", to, "subject", subject)
		return
	}

	select {
	case d.jobs <- Message{To: to, Subject: subject, HTML: html}:
	default:
		logger.Log.Warnw("email dropped, queue full", "to", to, "subject", subject)
	}
}

// Close stops accepting messages and waits for queued ones to be delivered.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.jobs)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) sendRendered(to, subject string, tpl *pongo2.Template, ctx pongo2.Context) {
	html, err := render(tpl, ctx, d.now().Year())
	if err != nil {
		logger.Log.Errorw("failed to render email", "subject", subject, "error", err)
		return
	}
	d.Send(to, subject, html)
}

func (d *Dispatcher) notifyAdmin(subject string, tpl *pongo2.Template, ctx pongo2.Context) {
	if d.adminEmail == "" {
		logger.Log.Debugw("admin email not configured, skipping alert", "subject", subject)
		return
	}
	d.sendRendered(d.adminEmail, subject, tpl, ctx)
}

// SendWelcome greets a new applicant.
func (d *Dispatcher) SendWelcome(name, email string) {
	d.sendRendered(email, welcomeSubject, welcomeTpl, pongo2.Context{"name": name})
}

// ContactReceived alerts the admin about a new contact message.
func (d *Dispatcher) ContactReceived(contact *models.Contact) {
	d.notifyAdmin("Nouveau message de contact de "+contact.FullName, contactTpl, pongo2.Context{"contact": contact})
}

// QuoteReceived alerts the admin about a new quote request.
func (d *Dispatcher) QuoteReceived(quote *models.Quote) {
	ctx := pongo2.Context{"quote": quote}
	if quote.CompanyName != nil {
		ctx["company"] = *quote.CompanyName
	}
	if quote.Budget != nil {
		ctx["budget"] = *quote.Budget
	}
	if quote.Timeline != nil {
		ctx["timeline"] = *quote.Timeline
	}
	d.notifyAdmin("Nouvelle demande de devis de "+quote.FullName, quoteTpl, ctx)
}

// TestimonialReceived alerts the admin that a testimonial awaits moderation.
func (d *Dispatcher) TestimonialReceived(t *models.Testimonial) {
	d.notifyAdmin("Nouveau témoignage de "+t.Name, testimonialTpl, pongo2.Context{"testimonial": t})
}
