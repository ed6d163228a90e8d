package notify

import (
	"github.com/flosch/pongo2/v6"
)

const layout = `<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
{{ body }}
<p style="text-align: center; margin-top: 20px; font-size: 12px; color: #666;">&copy; {{ year }} Formation Coding</p>
</div>
</body>
</html>`

var (
	welcomeTpl = pongo2.Must(pongo2.FromString(`<div style="background-color: #001F5C; color: white; padding: 20px; text-align: center;">
<h1>Bienvenue {{ name }} !</h1>
</div>
<div style="padding: 20px; background-color: #f9f9f9;">
<p>Bonjour {{ name }},</p>
<p>Nous avons bien reçu votre candidature pour notre programme de formation en développement web.</p>
<ol>
<li>Notre équipe va examiner votre candidature</li>
<li>Vous recevrez une réponse dans les prochains jours</li>
<li>Si votre candidature est retenue, vous serez invité(e) à la prochaine étape</li>
</ol>
<p>Si vous avez des questions, répondez simplement à cet email.</p>
<p>L'équipe de Formation Coding</p>
</div>`))

	contactTpl = pongo2.Must(pongo2.FromString(`<h2>Nouveau message de contact</h2>
<p><strong>Nom :</strong> {{ contact.FullName }}</p>
<p><strong>Email :</strong> {{ contact.Email }}</p>
<p><strong>Message :</strong></p>
<p style="white-space: pre-wrap;">{{ contact.Message }}</p>`))

	quoteTpl = pongo2.Must(pongo2.FromString(`<h2>Nouvelle demande de devis</h2>
<p><strong>Nom :</strong> {{ quote.FullName }}</p>
<p><strong>Email :</strong> {{ quote.Email }}</p>
<p><strong>Téléphone :</strong> {{ quote.Phone }}</p>
{% if company %}<p><strong>Entreprise :</strong> {{ company }}</p>{% endif %}
<p><strong>Service :</strong> {{ quote.ServiceType }}</p>
{% if budget %}<p><strong>Budget :</strong> {{ budget|floatformat:2 }}</p>{% endif %}
{% if timeline %}<p><strong>Délai :</strong> {{ timeline }}</p>{% endif %}
<p><strong>Description :</strong></p>
<p style="white-space: pre-wrap;">{{ quote.Description }}</p>`))

	testimonialTpl = pongo2.Must(pongo2.FromString(`<h2>Nouveau témoignage en attente de modération</h2>
<p><strong>Nom :</strong> {{ testimonial.Name }} ({{ testimonial.Role }})</p>
<p><strong>Note :</strong> {{ testimonial.Rating|floatformat:1 }} / 5</p>
<p style="white-space: pre-wrap;">{{ testimonial.Content }}</p>
{% if testimonial.MediaURLs %}<ul>{% for url in testimonial.MediaURLs %}<li>{{ url }}</li>{% endfor %}</ul>{% endif %}`))

	layoutTpl = pongo2.Must(pongo2.FromString(layout))
)

// render executes tpl with ctx and wraps the result in the common layout.
func render(tpl *pongo2.Template, ctx pongo2.Context, year int) (string, error) {
	body, err := tpl.Execute(ctx)
	if err != nil {
		return "", err
	}
	return layoutTpl.Execute(pongo2.Context{
		"body": pongo2.AsSafeValue(body),
		"year": year,
	})
}
