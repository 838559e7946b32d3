package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

type templateData map[string]interface{}

const welcomeTemplate = `<html>
<body>
  <h2>Welcome to Luvo, {{.Username}}!</h2>
  <p>Your account is ready. Sign in and pick your role to get started:</p>
  <ul>
    <li><b>Candidate</b> to browse and apply to jobs</li>
    <li><b>Recruiter</b> to post jobs and schedule interviews</li>
    <li><b>Career counselor</b> to guide students</li>
  </ul>
  <p>Good luck out there!</p>
</body>
</html>`

const interviewScheduledTemplate = `<html>
<body>
  <h2>Interview scheduled</h2>
  <p>Hi {{.CandidateName}},</p>
  <p>An interview has been scheduled for your application to
     <b>{{.JobTitle}}</b> at <b>{{.Company}}</b>.</p>
  <p><b>When:</b> {{.When}}<br>
     <b>Format:</b> {{.Type}}</p>
  {{if .MeetingLink}}<p><b>Join:</b> <a href="{{.MeetingLink}}">{{.MeetingLink}}</a></p>{{end}}
  {{if .Location}}<p><b>Where:</b> {{.Location}}</p>{{end}}
  <p>Good luck!</p>
</body>
</html>`

// templateManager parses and renders the built-in mail templates.
type templateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func newTemplateManager() (*templateManager, error) {
	tm := &templateManager{templates: make(map[string]*template.Template)}
	builtins := map[string]string{
		"welcome":             welcomeTemplate,
		"interview_scheduled": interviewScheduledTemplate,
	}
	for name, body := range builtins {
		if err := tm.add(name, body); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

func (tm *templateManager) add(name, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}

func (tm *templateManager) render(name string, data templateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[name]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
