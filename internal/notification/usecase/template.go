package usecase

import (
	"html/template"
	texttemplate "text/template"
)

const layoutHTML = `{{define "layout"}}<div style="font-family: Arial, sans-serif; padding: 10px;">
  {{template "content" .}}
  <p style="color: #888; font-size: 12px;">&copy; {{.year}} {{.app_name}}</p>
</div>{{end}}`

var (
	welcomeHTML = template.Must(template.Must(template.New("welcome").Parse(layoutHTML)).Parse(`{{define "content"}}
  <h2>Welcome, {{.name}}</h2>
  <p>Your {{.app_name}} account is ready. Start writing your first story.</p>
  {{if .web_url}}<p><a href="{{.web_url}}">Open {{.app_name}}</a></p>{{end}}
{{end}}{{template "layout" .}}`))

	welcomeText = texttemplate.Must(texttemplate.New("welcome").Parse(
		`Welcome, {{.name}}. Your {{.app_name}} account is ready.`))

	commentHTML = template.Must(template.Must(template.New("comment").Parse(layoutHTML)).Parse(`{{define "content"}}
  <h2>New comment on "{{.blog_title}}"</h2>
  <p><strong>{{.commenter_name}}</strong> wrote:</p>
  <blockquote style="border-left: 3px solid #4CAF50; margin: 0; padding-left: 10px;">{{.content}}</blockquote>
  {{if .blog_url}}<p><a href="{{.blog_url}}">Read the discussion</a></p>{{end}}
{{end}}{{template "layout" .}}`))

	commentText = texttemplate.Must(texttemplate.New("comment").Parse(
		`{{.commenter_name}} commented on "{{.blog_title}}":

{{.content}}`))
)
