package notify

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-formation-admin/internal/models"
)

type fakeMailer struct {
	mu      sync.Mutex
	sent    []Message
	err     error
	block   chan struct{}
	started chan struct{}
}

func (f *fakeMailer) Send(ctx context.Context, msg Message) error {
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	return f.err
}

func (f *fakeMailer) messages() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Message(nil), f.sent...)
}

func TestDispatcher_SendWelcome(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewDispatcher(mailer, Options{Workers: 1})

	d.SendWelcome("Ada <b>Obi</b>", "ada@example.com")
	d.Close()

	sent := mailer.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "ada@example.com", sent[0].To)
	assert.Equal(t, welcomeSubject, sent[0].Subject)
	assert.Contains(t, sent[0].HTML, "Bienvenue Ada &lt;b&gt;Obi&lt;/b&gt; !")
	assert.NotContains(t, sent[0].HTML, "<b>Obi</b>")
	assert.True(t, strings.HasPrefix(sent[0].HTML, "<html>"))
}

func TestDispatcher_AdminAlerts(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewDispatcher(mailer, Options{Workers: 1, AdminEmail: "admin@example.com"})

	company := "Acme"
	budget := 1500.0
	d.ContactReceived(&models.Contact{ID: uuid.New(), FullName: "Bola", Email: "bola@example.com", Message: "<script>x</script>"})
	d.QuoteReceived(&models.Quote{ID: uuid.New(), FullName: "Chi", Email: "chi@example.com", CompanyName: &company, Budget: &budget, ServiceType: "website"})
	d.TestimonialReceived(&models.Testimonial{ID: uuid.New(), Name: "Dayo", Role: "Student", Rating: 4.5, MediaURLs: models.MediaURLs{"https://img.example/1.png"}})
	d.Close()

	sent := mailer.messages()
	require.Len(t, sent, 3)

	bySubject := map[string]Message{}
	for _, m := range sent {
		assert.Equal(t, "admin@example.com", m.To)
		bySubject[m.Subject] = m
	}

	contact := bySubject["Nouveau message de contact de Bola"]
	assert.Contains(t, contact.HTML, "&lt;script&gt;")
	assert.NotContains(t, contact.HTML, "<script>")

	quote := bySubject["Nouvelle demande de devis de Chi"]
	assert.Contains(t, quote.HTML, "Acme")
	assert.Contains(t, quote.HTML, "1500.00")
	assert.NotContains(t, quote.HTML, "Délai")

	testimonial := bySubject["Nouveau témoignage de Dayo"]
	assert.Contains(t, testimonial.HTML, "4.5 / 5")
	assert.Contains(t, testimonial.HTML, "https://img.example/1.png")
}

func TestDispatcher_NoAdminEmail(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewDispatcher(mailer, Options{})

	d.ContactReceived(&models.Contact{FullName: "Bola"})
	d.Close()

	assert.Empty(t, mailer.messages())
}

func TestDispatcher_QueueFullDrops(t *testing.T) {
	mailer := &fakeMailer{block: make(chan struct{}), started: make(chan struct{}, 3)}
	d := NewDispatcher(mailer, Options{Workers: 1, QueueSize: 1, SendTimeout: time.Minute})

	d.Send("a@example.com", "first", "<p>1</p>")
	<-mailer.started // worker holds the first message

	d.Send("b@example.com", "second", "<p>2</p>") // fills the queue
	d.Send("c@example.com", "third", "<p>3</p>")  // dropped

	close(mailer.block)
	d.Close()

	sent := mailer.messages()
	require.Len(t, sent, 2)
	assert.Equal(t, "first", sent[0].Subject)
	assert.Equal(t, "second", sent[1].Subject)
}

func TestDispatcher_FailuresAreSwallowed(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	d := NewDispatcher(mailer, Options{Workers: 2})

	d.Send("a@example.com", "s", "<p>x</p>")
	d.Send("b@example.com", "s", "<p>y</p>")
	d.Close()

	assert.Len(t, mailer.messages(), 2)
}

func TestDispatcher_SendTimeout(t *testing.T) {
	mailer := &fakeMailer{block: make(chan struct{})}
	d := NewDispatcher(mailer, Options{Workers: 1, SendTimeout: 20 * time.Millisecond})

	start := time.Now()
	d.Send("a@example.com", "slow", "<p>x</p>")
	d.Close()

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Empty(t, mailer.messages())
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	mailer := &fakeMailer{}
	d := NewDispatcher(mailer, Options{})

	d.Close()
	d.Close()
	d.Send("late@example.com", "late", "<p>x</p>")

	assert.Empty(t, mailer.messages())
}
